package transport

import (
	"context"
	"encoding/json"
	stdErrors "errors"
	"net/http"
	"net/url"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lepinkainen/narou/internal/errors"
	"github.com/lepinkainen/narou/internal/params"
	"github.com/lepinkainen/narou/internal/testutil"
)

// stubDocument records appended tags and lets the test decide when (and
// whether) to answer.
type stubDocument struct {
	mu       sync.Mutex
	tags     []Tag
	removed  atomic.Int32
	err      error
	onAppend func(tag Tag, registry *Registry)
}

func (d *stubDocument) Append(_ context.Context, tag Tag, registry *Registry) (Element, error) {
	if d.err != nil {
		return nil, d.err
	}
	d.mu.Lock()
	d.tags = append(d.tags, tag)
	d.mu.Unlock()
	if d.onAppend != nil {
		d.onAppend(tag, registry)
	}
	return elementFunc(func() { d.removed.Add(1) }), nil
}

func TestScriptOverHTTPDocument(t *testing.T) {
	var log testutil.RequestLog
	server := testutil.NewAPIServer(t, &log, func(url.Values) string { return sampleBody })

	registry := NewRegistry()
	s := NewScript(NewHTTPDocument(server.Client(), "narou-test"), WithRegistry(registry))

	raw, err := s.Execute(context.Background(), server.URL, params.Bag{"word": "x", params.KeyGzip: "5"})
	require.NoError(t, err)
	assert.JSONEq(t, sampleBody, string(raw))

	q := log.Queries()[0]
	assert.Equal(t, "jsonp", q.Get("out"))
	assert.Equal(t, "0", q.Get("gzip"))
	assert.Equal(t, "x", q.Get("word"))
	assert.Contains(t, q.Get(CallbackParam), DefaultCallbackPrefix)
	assert.Zero(t, registry.Pending())
}

func TestScriptConcurrentRequestsDoNotCross(t *testing.T) {
	server := testutil.NewAPIServer(t, nil, func(q url.Values) string {
		return `{"word":"` + q.Get("word") + `"}`
	})

	s := NewScript(NewHTTPDocument(server.Client(), ""), WithRegistry(NewRegistry()))

	words := []string{"a", "b", "c", "d", "e", "f"}
	results := make([]string, len(words))

	var wg sync.WaitGroup
	for i, w := range words {
		wg.Add(1)
		go func(i int, w string) {
			defer wg.Done()
			raw, err := s.Execute(context.Background(), server.URL, params.Bag{"word": w})
			if err != nil {
				t.Error(err)
				return
			}
			var got struct{ Word string }
			_ = json.Unmarshal(raw, &got)
			results[i] = got.Word
		}(i, w)
	}
	wg.Wait()

	assert.Equal(t, words, results)
}

func TestScriptTimeout(t *testing.T) {
	registry := NewRegistry()
	doc := &stubDocument{}
	s := NewScript(doc, WithRegistry(registry), WithTimeout(30*time.Millisecond))

	start := time.Now()
	_, err := s.Execute(context.Background(), "https://example.invalid/api/", params.Bag{})
	elapsed := time.Since(start)

	require.Error(t, err)
	assert.True(t, errors.IsTimeoutError(err))
	assert.GreaterOrEqual(t, elapsed, 30*time.Millisecond)
	assert.Equal(t, int32(1), doc.removed.Load())
	assert.Zero(t, registry.Pending())

	// A response arriving after the timeout is ignored.
	assert.False(t, registry.Call(doc.tags[0].Callback, json.RawMessage(`[]`)))
}

func TestScriptResolvesBeforeTimeout(t *testing.T) {
	registry := NewRegistry()
	doc := &stubDocument{onAppend: func(tag Tag, r *Registry) {
		go r.Call(tag.Callback, json.RawMessage(`[{"allcount":0}]`))
	}}
	s := NewScript(doc, WithRegistry(registry), WithTimeout(time.Second))

	raw, err := s.Execute(context.Background(), "https://example.invalid/api/", params.Bag{})
	require.NoError(t, err)
	assert.JSONEq(t, `[{"allcount":0}]`, string(raw))
	assert.Equal(t, int32(1), doc.removed.Load())
}

func TestScriptZeroTimeoutWaits(t *testing.T) {
	doc := &stubDocument{onAppend: func(tag Tag, r *Registry) {
		go func() {
			time.Sleep(20 * time.Millisecond)
			r.Call(tag.Callback, json.RawMessage(`1`))
		}()
	}}
	s := NewScript(doc, WithRegistry(NewRegistry()), WithTimeout(0))

	raw, err := s.Execute(context.Background(), "https://example.invalid/", params.Bag{})
	require.NoError(t, err)
	assert.Equal(t, "1", string(raw))
}

func TestScriptContextCancelled(t *testing.T) {
	registry := NewRegistry()
	doc := &stubDocument{}
	s := NewScript(doc, WithRegistry(registry))

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	_, err := s.Execute(ctx, "https://example.invalid/", params.Bag{})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, registry.Pending())
	assert.Equal(t, int32(1), doc.removed.Load())
}

func TestScriptAppendFailure(t *testing.T) {
	registry := NewRegistry()
	s := NewScript(&stubDocument{err: stdErrors.New("no document")}, WithRegistry(registry))

	_, err := s.Execute(context.Background(), "https://example.invalid/", params.Bag{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no document")
	assert.Zero(t, registry.Pending())
}

func TestScriptCallbackPrefix(t *testing.T) {
	doc := &stubDocument{onAppend: func(tag Tag, r *Registry) {
		r.Call(tag.Callback, json.RawMessage(`null`))
	}}
	s := NewScript(doc, WithRegistry(NewRegistry()), WithCallbackPrefix("narou_cb"))

	_, err := s.Execute(context.Background(), "https://example.invalid/", params.Bag{})
	require.NoError(t, err)

	src, err := url.Parse(doc.tags[0].Src)
	require.NoError(t, err)
	assert.Equal(t, doc.tags[0].Callback, src.Query().Get(CallbackParam))
	assert.Contains(t, doc.tags[0].Callback, "narou_cb")
}

func TestHTTPDocumentRemoteError(t *testing.T) {
	server := testutil.NewIPv4Server(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("bad gateway"))
	}))

	s := NewScript(NewHTTPDocument(server.Client(), ""), WithRegistry(NewRegistry()))
	_, err := s.Execute(context.Background(), server.URL, params.Bag{})
	require.Error(t, err)
	assert.True(t, errors.IsRemoteError(err))
}
