package transport

import (
	"context"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lepinkainen/narou/internal/errors"
	"github.com/lepinkainen/narou/internal/params"
	"github.com/lepinkainen/narou/internal/ratelimit"
	"github.com/lepinkainen/narou/internal/testutil"
)

const sampleBody = `[{"allcount":1},{"title":"t","ncode":"N0001A"}]`

func TestFetchDefaultGzip(t *testing.T) {
	var log testutil.RequestLog
	server := testutil.NewAPIServer(t, &log, func(url.Values) string { return sampleBody })

	f := NewFetch(WithHTTPClient(server.Client()))
	raw, err := f.Execute(context.Background(), server.URL+"/novelapi/api/", params.Bag{"word": "異世界"})
	require.NoError(t, err)
	assert.JSONEq(t, sampleBody, string(raw))

	q := log.Queries()[0]
	assert.Equal(t, "json", q.Get("out"))
	assert.Equal(t, "5", q.Get("gzip"))
	assert.Equal(t, "異世界", q.Get("word"))
}

func TestFetchExplicitGzipLevel(t *testing.T) {
	var log testutil.RequestLog
	server := testutil.NewAPIServer(t, &log, func(url.Values) string { return sampleBody })

	f := NewFetch(WithHTTPClient(server.Client()))
	raw, err := f.Execute(context.Background(), server.URL, params.Bag{}.WithInt(params.KeyGzip, 3))
	require.NoError(t, err)
	assert.JSONEq(t, sampleBody, string(raw))
	assert.Equal(t, "3", log.Queries()[0].Get("gzip"))
}

func TestFetchGzipZeroIsPlainJSON(t *testing.T) {
	var log testutil.RequestLog
	server := testutil.NewAPIServer(t, &log, func(url.Values) string { return sampleBody })

	f := NewFetch(WithHTTPClient(server.Client()))
	raw, err := f.Execute(context.Background(), server.URL, params.Bag{params.KeyGzip: "0"})
	require.NoError(t, err)
	assert.JSONEq(t, sampleBody, string(raw))

	q := log.Queries()[0]
	assert.False(t, q.Has("gzip"))
	assert.Equal(t, "json", q.Get("out"))
}

func TestFetchSkipsEmptyParams(t *testing.T) {
	var log testutil.RequestLog
	server := testutil.NewAPIServer(t, &log, func(url.Values) string { return `[]` })

	f := NewFetch(WithHTTPClient(server.Client()))
	_, err := f.Execute(context.Background(), server.URL, params.Bag{"word": "", "title": "1"})
	require.NoError(t, err)

	q := log.Queries()[0]
	assert.False(t, q.Has("word"))
	assert.Equal(t, "1", q.Get("title"))
}

func TestFetchUserAgent(t *testing.T) {
	var agent string
	server := testutil.NewIPv4Server(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		agent = r.Header.Get("User-Agent")
		_, _ = w.Write([]byte(`[]`))
	}))

	f := NewFetch(WithHTTPClient(server.Client()), WithUserAgent("narou-test"))
	_, err := f.Execute(context.Background(), server.URL, params.Bag{params.KeyGzip: "0"})
	require.NoError(t, err)
	assert.Equal(t, "narou-test", agent)
}

func TestFetchDecompressedNotJSON(t *testing.T) {
	server := testutil.NewIPv4Server(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(testutil.Gzip(t, []byte("<html>maintenance</html>")))
	}))

	f := NewFetch(WithHTTPClient(server.Client()))
	_, err := f.Execute(context.Background(), server.URL, params.Bag{})
	require.Error(t, err)

	decodeErr, ok := errors.AsDecodeError(err)
	require.True(t, ok)
	assert.Equal(t, errors.StageJSON, decodeErr.Stage)
	assert.Equal(t, "<html>maintenance</html>", decodeErr.Payload)
	assert.Equal(t, "<html>maintenance</html>", err.Error())
}

func TestFetchGunzipFailure(t *testing.T) {
	server := testutil.NewIPv4Server(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("definitely not gzip"))
	}))

	f := NewFetch(WithHTTPClient(server.Client()))
	_, err := f.Execute(context.Background(), server.URL, params.Bag{})

	decodeErr, ok := errors.AsDecodeError(err)
	require.True(t, ok)
	assert.Equal(t, errors.StageDecompress, decodeErr.Stage)
	assert.Equal(t, "definitely not gzip", decodeErr.Payload)
}

func TestFetchPlainNotJSON(t *testing.T) {
	server := testutil.NewIPv4Server(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("oops"))
	}))

	f := NewFetch(WithHTTPClient(server.Client()))
	_, err := f.Execute(context.Background(), server.URL, params.Bag{params.KeyGzip: "0"})

	decodeErr, ok := errors.AsDecodeError(err)
	require.True(t, ok)
	assert.Equal(t, errors.StageJSON, decodeErr.Stage)
}

func TestFetchRemoteError(t *testing.T) {
	server := testutil.NewIPv4Server(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write(testutil.Gzip(t, []byte(`{"error":"busy"}`)))
	}))

	f := NewFetch(WithHTTPClient(server.Client()))
	_, err := f.Execute(context.Background(), server.URL, params.Bag{})
	require.Error(t, err)
	require.True(t, errors.IsRemoteError(err))

	remoteErr := err.(*errors.RemoteError)
	assert.Equal(t, http.StatusServiceUnavailable, remoteErr.StatusCode)
	assert.Equal(t, `{"error":"busy"}`, remoteErr.Payload)
}

func TestFetchWithLimiterCancelled(t *testing.T) {
	server := testutil.NewAPIServer(t, nil, func(url.Values) string { return `[]` })

	limiter := ratelimit.NewWithBurst("test", 0.001, 1)
	require.NoError(t, limiter.Wait(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	f := NewFetch(WithHTTPClient(server.Client()), WithLimiter(limiter))
	_, err := f.Execute(ctx, server.URL, params.Bag{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate limit wait failed")
}

func TestFetchParams(t *testing.T) {
	t.Parallel()

	bag, level := fetchParams(params.Bag{})
	assert.Equal(t, 5, level)
	assert.Equal(t, "5", bag.Get(params.KeyGzip))

	bag, level = fetchParams(params.Bag{params.KeyGzip: "0", params.KeyOut: "jsonp"})
	assert.Equal(t, 0, level)
	assert.False(t, bag.Has(params.KeyGzip))
	assert.Equal(t, "json", bag.Get(params.KeyOut))
}
