package transport

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/lepinkainen/narou/internal/errors"
)

// HTTPDocument loads scripts with a plain HTTP client and evaluates the one
// thing a JSONP body does: call the named callback with a JSON argument.
type HTTPDocument struct {
	client    *http.Client
	userAgent string
}

// NewHTTPDocument creates an HTTPDocument. A nil client uses the package
// default.
func NewHTTPDocument(client *http.Client, userAgent string) *HTTPDocument {
	if client == nil {
		client = httpClientNew()
	}
	return &HTTPDocument{client: client, userAgent: userAgent}
}

// Append starts loading tag.Src in the background. Removing the element
// aborts a load still in flight.
func (d *HTTPDocument) Append(ctx context.Context, tag Tag, registry *Registry) (Element, error) {
	loadCtx, cancel := context.WithCancel(ctx)

	req, err := http.NewRequestWithContext(loadCtx, http.MethodGet, tag.Src, nil)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if d.userAgent != "" {
		req.Header.Set("User-Agent", d.userAgent)
	}

	go func() {
		payload, err := d.load(req, tag.Callback)
		if loadCtx.Err() != nil {
			return
		}
		if err != nil {
			slog.Debug("Script load failed", "callback", tag.Callback, "error", err)
			registry.Fail(tag.Callback, err)
			return
		}
		registry.Call(tag.Callback, payload)
	}()

	return elementFunc(cancel), nil
}

func (d *HTTPDocument) load(req *http.Request, callback string) ([]byte, error) {
	resp, err := d.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("script request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read script body: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errors.NewRemoteError(resp.StatusCode, string(body))
	}
	return parseJSONP(body, callback)
}
