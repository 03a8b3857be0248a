package search

import (
	"context"

	"github.com/lepinkainen/narou/internal/params"
)

// R18Builder queries the R18 novel API. It has no genre or R15 filters; the
// site family takes their place.
type R18Builder[R any] struct {
	novelFilters[*R18Builder[R]]
	api *API
}

func newR18Builder[R any](api *API, bag params.Bag) *R18Builder[R] {
	b := &R18Builder[R]{api: api}
	b.bag = bag
	b.wrap = func(next params.Bag) *R18Builder[R] {
		return newR18Builder[R](api, next)
	}
	return b
}

// SearchR18 starts an R18 novel search.
func (a *API) SearchR18(word string) *R18Builder[R18NovelResult] {
	b := newR18Builder[R18NovelResult](a, params.Bag{})
	if word == "" {
		return b
	}
	return b.Word(word)
}

// R18Site restricts to the given sites (nocgenre).
func (b *R18Builder[R]) R18Site(sites ...params.R18Site) *R18Builder[R] {
	return setList(b.core, "nocgenre", sites)
}

// NotR18Site excludes the given sites.
func (b *R18Builder[R]) NotR18Site(sites ...params.R18Site) *R18Builder[R] {
	return setList(b.core, "notnocgenre", sites)
}

// XID restricts to novels by the given X-IDs.
func (b *R18Builder[R]) XID(ids ...int) *R18Builder[R] {
	return setList(b.core, "xid", ids)
}

// Fields limits the returned fields without changing the row type.
func (b *R18Builder[R]) Fields(fields ...params.Field) *R18Builder[R] {
	return setList(b.core, params.KeyOf, fields)
}

// Execute runs the search against the R18 endpoint.
func (b *R18Builder[R]) Execute(ctx context.Context) (*Results[R], error) {
	return execute[R](ctx, b.api, b.api.endpoints.Novel18, b.bag)
}
