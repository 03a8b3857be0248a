package testutil

import (
	"bytes"
	"fmt"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/require"
)

// NewIPv4Server starts an httptest server bound to 127.0.0.1.
func NewIPv4Server(t *testing.T, handler http.Handler) *httptest.Server {
	t.Helper()

	listener, err := net.Listen("tcp4", "127.0.0.1:0")
	require.NoError(t, err)

	server := httptest.NewUnstartedServer(handler)
	server.Listener = listener
	server.Start()

	t.Cleanup(server.Close)
	return server
}

// Gzip compresses data the way the API does for gzip>0 requests.
func Gzip(t *testing.T, data []byte) []byte {
	t.Helper()

	var buf bytes.Buffer
	zw, err := gzip.NewWriterLevel(&buf, gzip.BestSpeed)
	require.NoError(t, err)
	_, err = zw.Write(data)
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

// RequestLog records the query of every request a fake API received.
type RequestLog struct {
	mu      sync.Mutex
	queries []url.Values
}

// Add records q.
func (l *RequestLog) Add(q url.Values) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.queries = append(l.queries, q)
}

// Queries returns a copy of the recorded queries.
func (l *RequestLog) Queries() []url.Values {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]url.Values(nil), l.queries...)
}

// Len returns how many requests were recorded.
func (l *RequestLog) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.queries)
}

// NewAPIServer starts a fake API that answers every request with respond's
// JSON text, encoded the way the request asked for: gzip for gzip>0, a
// callback call for out=jsonp, and plain JSON otherwise.
func NewAPIServer(t *testing.T, log *RequestLog, respond func(q url.Values) string) *httptest.Server {
	t.Helper()

	return NewIPv4Server(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if log != nil {
			log.Add(q)
		}
		body := respond(q)

		if q.Get("out") == "jsonp" {
			w.Header().Set("Content-Type", "application/javascript")
			_, _ = fmt.Fprintf(w, "%s(%s);", q.Get("callback"), body)
			return
		}
		if level := q.Get("gzip"); level != "" && level != "0" {
			_, _ = w.Write(Gzip(t, []byte(body)))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
}
