package transport

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"

	"github.com/lepinkainen/narou/internal/errors"
)

// gunzip decompresses a gzip body.
func gunzip(raw []byte) ([]byte, error) {
	zr, err := gzip.NewReader(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("failed to open gzip stream: %w", err)
	}
	defer func() { _ = zr.Close() }()

	out, err := io.ReadAll(zr)
	if err != nil {
		return nil, fmt.Errorf("failed to decompress response: %w", err)
	}
	return out, nil
}

// decodeJSON checks that text is a single JSON value.
func decodeJSON(text []byte, stage errors.Stage) (json.RawMessage, error) {
	var raw json.RawMessage
	if err := json.Unmarshal(text, &raw); err != nil {
		return nil, errors.NewDecodeError(stage, string(text), err)
	}
	return raw, nil
}

// decodeBody turns a fetch response body into JSON. Compressed bodies are
// gunzipped first; a gunzip failure reports the raw text, a JSON failure the
// decompressed text.
func decodeBody(body []byte, compressed bool) (json.RawMessage, error) {
	if !compressed {
		return decodeJSON(body, errors.StageJSON)
	}
	text, err := gunzip(body)
	if err != nil {
		return nil, errors.NewDecodeError(errors.StageDecompress, string(body), err)
	}
	return decodeJSON(text, errors.StageJSON)
}

// parseJSONP extracts the argument of a `callback(...)` script body.
func parseJSONP(body []byte, callback string) (json.RawMessage, error) {
	text := bytes.TrimSpace(body)
	text = bytes.TrimSuffix(text, []byte(";"))
	text = bytes.TrimSpace(text)

	prefix := []byte(callback + "(")
	if !bytes.HasPrefix(text, prefix) || !bytes.HasSuffix(text, []byte(")")) {
		return nil, errors.NewDecodeError(errors.StageJSONP, string(body),
			fmt.Errorf("response is not a call to %s", callback))
	}
	inner := text[len(prefix) : len(text)-1]
	return decodeJSON(inner, errors.StageJSONP)
}
