package transport

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/lepinkainen/narou/internal/errors"
	"github.com/lepinkainen/narou/internal/params"
	"github.com/lepinkainen/narou/internal/ratelimit"
)

// DefaultUserAgent is sent when no other agent is configured.
const DefaultUserAgent = "narou-go/1.0"

var httpClientNew = func() *http.Client {
	return &http.Client{
		Timeout: 30 * time.Second,
	}
}

// Fetch performs direct HTTP GET requests with out=json and optional gzip.
type Fetch struct {
	client    *http.Client
	userAgent string
	limiter   *ratelimit.Limiter
}

// FetchOption configures a Fetch transport.
type FetchOption func(*Fetch)

// WithHTTPClient sets the client used for requests.
func WithHTTPClient(c *http.Client) FetchOption {
	return func(f *Fetch) { f.client = c }
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) FetchOption {
	return func(f *Fetch) { f.userAgent = ua }
}

// WithLimiter paces requests through l. A nil limiter disables pacing.
func WithLimiter(l *ratelimit.Limiter) FetchOption {
	return func(f *Fetch) { f.limiter = l }
}

// NewFetch creates a fetch transport.
func NewFetch(opts ...FetchOption) *Fetch {
	f := &Fetch{userAgent: DefaultUserAgent}
	for _, opt := range opts {
		opt(f)
	}
	if f.client == nil {
		f.client = httpClientNew()
	}
	return f
}

// fetchParams adds out=json and settles the gzip level. A missing level
// means the default; level 0 removes the parameter so the service answers
// with plain JSON.
func fetchParams(p params.Bag) (params.Bag, int) {
	bag := p.With(params.KeyOut, "json")

	level := int(params.GzipDefault)
	if n, ok := bag.Int(params.KeyGzip); ok {
		level = n
	}
	if level <= 0 {
		return bag.Without(params.KeyGzip), 0
	}
	return bag.WithInt(params.KeyGzip, level), level
}

// Execute implements Transport.
func (f *Fetch) Execute(ctx context.Context, endpoint string, p params.Bag) (json.RawMessage, error) {
	bag, level := fetchParams(p)

	target, err := buildURL(endpoint, bag)
	if err != nil {
		return nil, err
	}

	if err := f.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait failed: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}

	slog.Debug("Fetching", "url", target, "gzip", level)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request to %s failed: %w", endpoint, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	// The client already inflated bodies sent with Content-Encoding: gzip.
	compressed := level > 0 && !resp.Uncompressed

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		payload := body
		if compressed {
			if text, gzErr := gunzip(body); gzErr == nil {
				payload = text
			}
		}
		return nil, errors.NewRemoteError(resp.StatusCode, string(payload))
	}

	return decodeBody(body, compressed)
}
