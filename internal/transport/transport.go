// Package transport moves a parameter bag to an API endpoint and brings back
// the JSON answer, either with a direct HTTP fetch or through JSONP script
// injection.
package transport

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/lepinkainen/narou/internal/params"
)

// Transport sends p to endpoint and returns the decoded response. The
// returned bytes are always valid JSON.
type Transport interface {
	Execute(ctx context.Context, endpoint string, p params.Bag) (json.RawMessage, error)
}

// Func adapts a plain function to Transport.
type Func func(ctx context.Context, endpoint string, p params.Bag) (json.RawMessage, error)

// Execute calls f.
func (f Func) Execute(ctx context.Context, endpoint string, p params.Bag) (json.RawMessage, error) {
	return f(ctx, endpoint, p)
}

// buildURL appends every non-empty parameter of p to endpoint's query.
func buildURL(endpoint string, p params.Bag) (string, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return "", fmt.Errorf("invalid endpoint %q: %w", endpoint, err)
	}
	query := u.Query()
	for key, values := range p.Values() {
		for _, v := range values {
			query.Set(key, v)
		}
	}
	u.RawQuery = query.Encode()
	return u.String(), nil
}
