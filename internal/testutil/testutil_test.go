package testutil

import (
	"bytes"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTestEnv_Path(t *testing.T) {
	env := NewTestEnv(t)

	path := env.Path("a", "b.json")
	assert.Equal(t, filepath.Join(env.RootDir(), "a", "b.json"), path)
}

func TestTestEnv_WriteReadFile(t *testing.T) {
	env := NewTestEnv(t)

	env.WriteFileString("out/result.json", `{"allcount":1}`)
	assert.True(t, env.FileExists("out/result.json"))
	assert.Equal(t, `{"allcount":1}`, env.ReadFileString("out/result.json"))
	assert.False(t, env.FileExists("missing"))
}

func TestTestEnv_SetEnv(t *testing.T) {
	env := NewTestEnv(t)

	env.SetEnv("NAROU_TESTUTIL_VALUE", "x")
	assert.Equal(t, "x", os.Getenv("NAROU_TESTUTIL_VALUE"))
}

func TestResetConfig(t *testing.T) {
	ResetConfig(t)
	assert.Equal(t, 300, viper.GetInt("narou.batch_size"))

	SetViperValue(t, "narou.batch_size", 10)
	assert.Equal(t, 10, viper.GetInt("narou.batch_size"))
}

func TestGzip(t *testing.T) {
	compressed := Gzip(t, []byte(`[{"allcount":0}]`))

	zr, err := gzip.NewReader(bytes.NewReader(compressed))
	require.NoError(t, err)
	plain, err := io.ReadAll(zr)
	require.NoError(t, err)
	assert.Equal(t, `[{"allcount":0}]`, string(plain))
}

func TestNewAPIServer_Encodings(t *testing.T) {
	var log RequestLog
	server := NewAPIServer(t, &log, func(url.Values) string { return `[1]` })

	get := func(query string) []byte {
		resp, err := http.Get(server.URL + "/?" + query)
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		return body
	}

	assert.Equal(t, "[1]", string(get("out=json")))
	assert.Equal(t, "cb7([1]);", string(get("out=jsonp&callback=cb7")))
	assert.NotEqual(t, "[1]", string(get("out=json&gzip=5")))
	assert.Equal(t, 3, log.Len())
	assert.Equal(t, "cb7", log.Queries()[1].Get("callback"))
}
