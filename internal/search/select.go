package search

import "github.com/lepinkainen/narou/internal/params"

// Select requests only fields and retypes the builder so rows decode into R.
// R should declare exactly the requested fields; anything else stays at its
// zero value.
//
//	type titleRow struct {
//		NCode string `json:"ncode"`
//		Title string `json:"title"`
//	}
//	res, err := search.Select[titleRow](api.Search("異世界"), params.FieldNCode, params.FieldTitle).Execute(ctx)
func Select[R any, Q any](b *SearchBuilder[Q], fields ...params.Field) *SearchBuilder[R] {
	return newSearchBuilder[R](b.api, b.Fields(fields...).bag)
}

// SelectR18 is Select for R18 searches.
func SelectR18[R any, Q any](b *R18Builder[Q], fields ...params.Field) *R18Builder[R] {
	return newR18Builder[R](b.api, b.Fields(fields...).bag)
}

// SelectUsers is Select for user searches.
func SelectUsers[R any, Q any](b *UserSearchBuilder[Q], fields ...params.UserField) *UserSearchBuilder[R] {
	return newUserSearchBuilder[R](b.api, b.Fields(fields...).bag)
}
