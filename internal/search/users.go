package search

import (
	"context"

	"github.com/lepinkainen/narou/internal/params"
)

// UserSearchBuilder queries the user API.
type UserSearchBuilder[R any] struct {
	core[*UserSearchBuilder[R]]
	api *API
}

func newUserSearchBuilder[R any](api *API, bag params.Bag) *UserSearchBuilder[R] {
	b := &UserSearchBuilder[R]{api: api}
	b.bag = bag
	b.wrap = func(next params.Bag) *UserSearchBuilder[R] {
		return newUserSearchBuilder[R](api, next)
	}
	return b
}

// SearchUsers starts a user search.
func (a *API) SearchUsers(word string) *UserSearchBuilder[UserResult] {
	b := newUserSearchBuilder[UserResult](a, params.Bag{})
	if word == "" {
		return b
	}
	return b.Word(word)
}

// Word matches user names and their readings.
func (b *UserSearchBuilder[R]) Word(word string) *UserSearchBuilder[R] {
	return b.set("word", word)
}

// NotWord excludes users whose name matches word.
func (b *UserSearchBuilder[R]) NotWord(word string) *UserSearchBuilder[R] {
	return b.set("notword", word)
}

// UserID restricts to the given user.
func (b *UserSearchBuilder[R]) UserID(id int) *UserSearchBuilder[R] {
	return b.setInt("userid", id)
}

// Name1st filters by the first kana of the name reading.
func (b *UserSearchBuilder[R]) Name1st(kana string) *UserSearchBuilder[R] {
	return b.set("name1st", kana)
}

// MinNovel requires at least n published novels.
func (b *UserSearchBuilder[R]) MinNovel(n int) *UserSearchBuilder[R] {
	return b.setInt("minnovel", n)
}

// MaxNovel allows at most n published novels.
func (b *UserSearchBuilder[R]) MaxNovel(n int) *UserSearchBuilder[R] {
	return b.setInt("maxnovel", n)
}

// MinReview requires at least n written reviews.
func (b *UserSearchBuilder[R]) MinReview(n int) *UserSearchBuilder[R] {
	return b.setInt("minreview", n)
}

// MaxReview allows at most n written reviews.
func (b *UserSearchBuilder[R]) MaxReview(n int) *UserSearchBuilder[R] {
	return b.setInt("maxreview", n)
}

// Order sets the sort order.
func (b *UserSearchBuilder[R]) Order(o params.UserOrder) *UserSearchBuilder[R] {
	return b.set(params.KeyOrder, string(o))
}

// Fields limits the returned fields without changing the row type.
func (b *UserSearchBuilder[R]) Fields(fields ...params.UserField) *UserSearchBuilder[R] {
	return setList(b.core, params.KeyOf, fields)
}

// Execute runs the user search.
func (b *UserSearchBuilder[R]) Execute(ctx context.Context) (*Results[R], error) {
	return execute[R](ctx, b.api, b.api.endpoints.User, b.bag)
}
