package search

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/lepinkainen/narou/internal/params"
)

// SearchBuilder queries the general novel API. R is the row type results
// decode into; Select changes it.
type SearchBuilder[R any] struct {
	novelFilters[*SearchBuilder[R]]
	api *API
}

func newSearchBuilder[R any](api *API, bag params.Bag) *SearchBuilder[R] {
	b := &SearchBuilder[R]{api: api}
	b.bag = bag
	b.wrap = func(next params.Bag) *SearchBuilder[R] {
		return newSearchBuilder[R](api, next)
	}
	return b
}

// Search starts a novel search. An empty word leaves the word filter unset.
func (a *API) Search(word string) *SearchBuilder[NovelResult] {
	b := newSearchBuilder[NovelResult](a, params.Bag{})
	if word == "" {
		return b
	}
	return b.Word(word)
}

// BigGenre restricts to the given top-level genres.
func (b *SearchBuilder[R]) BigGenre(g ...params.BigGenre) *SearchBuilder[R] {
	return setList(b.core, "biggenre", g)
}

// NotBigGenre excludes the given top-level genres.
func (b *SearchBuilder[R]) NotBigGenre(g ...params.BigGenre) *SearchBuilder[R] {
	return setList(b.core, "notbiggenre", g)
}

// Genre restricts to the given genres.
func (b *SearchBuilder[R]) Genre(g ...params.Genre) *SearchBuilder[R] {
	return setList(b.core, "genre", g)
}

// NotGenre excludes the given genres.
func (b *SearchBuilder[R]) NotGenre(g ...params.Genre) *SearchBuilder[R] {
	return setList(b.core, "notgenre", g)
}

// UserID restricts to novels by the given authors.
func (b *SearchBuilder[R]) UserID(ids ...int) *SearchBuilder[R] {
	return setList(b.core, "userid", ids)
}

// IsR15 restricts to (true) or excludes (false) R15 novels.
func (b *SearchBuilder[R]) IsR15(on bool) *SearchBuilder[R] {
	return b.setFlag(on, "isr15", "notr15")
}

// Fields limits the returned fields without changing the row type.
func (b *SearchBuilder[R]) Fields(fields ...params.Field) *SearchBuilder[R] {
	return setList(b.core, params.KeyOf, fields)
}

// Execute runs the search.
func (b *SearchBuilder[R]) Execute(ctx context.Context) (*Results[R], error) {
	return execute[R](ctx, b.api, b.api.endpoints.Novel, b.bag)
}

func execute[R any](ctx context.Context, api *API, endpoint string, bag params.Bag) (*Results[R], error) {
	if api == nil || api.transport == nil {
		return nil, fmt.Errorf("no transport configured")
	}
	slog.Debug("Executing search", "endpoint", endpoint, "params", bag)

	raw, err := api.transport.Execute(ctx, endpoint, bag)
	if err != nil {
		return nil, fmt.Errorf("search request failed: %w", err)
	}
	return NewResults[R](raw, bag)
}
