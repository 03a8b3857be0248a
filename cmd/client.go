package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/lepinkainen/narou/internal/config"
	"github.com/lepinkainen/narou/internal/params"
	"github.com/lepinkainen/narou/internal/ratelimit"
	"github.com/lepinkainen/narou/internal/search"
	"github.com/lepinkainen/narou/internal/transport"
)

// newBrowserDocument is replaced in tests; it starts a real browser.
var newBrowserDocument = func(ctx context.Context, opts transport.BrowserOptions) (transport.Document, func(), error) {
	doc, err := transport.NewBrowserDocument(ctx, opts)
	if err != nil {
		return nil, nil, err
	}
	return doc, doc.Close, nil
}

// newTransport builds the transport named by cfg.Transport. The returned
// func releases whatever the transport holds open.
func newTransport(ctx context.Context, cfg config.Config) (transport.Transport, func(), error) {
	limiter := ratelimit.New("narou", cfg.RateLimit)
	client := &http.Client{Timeout: cfg.Timeout}

	switch cfg.Transport {
	case "", config.TransportFetch:
		return transport.NewFetch(
			transport.WithHTTPClient(client),
			transport.WithUserAgent(cfg.UserAgent),
			transport.WithLimiter(limiter),
		), func() {}, nil

	case config.TransportScript:
		doc := transport.NewHTTPDocument(client, cfg.UserAgent)
		return paced(transport.NewScript(doc, transport.WithTimeout(cfg.Timeout)), limiter), func() {}, nil

	case config.TransportBrowser:
		doc, closeDoc, err := newBrowserDocument(ctx, transport.BrowserOptions{Headless: cfg.Browser.Headless})
		if err != nil {
			return nil, nil, fmt.Errorf("failed to start browser: %w", err)
		}
		return paced(transport.NewScript(doc, transport.WithTimeout(cfg.Timeout)), limiter), closeDoc, nil
	}

	return nil, nil, fmt.Errorf("unknown transport %q (want %s, %s or %s)",
		cfg.Transport, config.TransportFetch, config.TransportScript, config.TransportBrowser)
}

// paced makes every request wait for limiter first.
func paced(t transport.Transport, limiter *ratelimit.Limiter) transport.Transport {
	if limiter == nil {
		return t
	}
	return transport.Func(func(ctx context.Context, endpoint string, p params.Bag) (json.RawMessage, error) {
		if err := limiter.Wait(ctx); err != nil {
			return nil, err
		}
		return t.Execute(ctx, endpoint, p)
	})
}

// newAPI loads the configuration and returns an API over the configured
// transport.
func newAPI(ctx context.Context) (*search.API, config.Config, func(), error) {
	cfg := config.Load()
	t, closeFn, err := newTransport(ctx, cfg)
	if err != nil {
		return nil, cfg, nil, err
	}
	slog.Debug("Using transport", "transport", cfg.Transport, "rate_limit", cfg.RateLimit)

	api := search.NewAPI(t, search.Endpoints{
		Novel:          cfg.Endpoints.Novel,
		Novel18:        cfg.Endpoints.Novel18,
		Ranking:        cfg.Endpoints.Ranking,
		RankingHistory: cfg.Endpoints.RankingHistory,
		User:           cfg.Endpoints.User,
	})
	return api, cfg, closeFn, nil
}
