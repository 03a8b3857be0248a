// Package params holds the wire vocabulary of the Narou APIs: the parameter
// bag sent with every request, the list encoding and the enumerations.
package params

import (
	"fmt"
	"strings"
)

// Joinable is any scalar that can appear in a hyphen-joined list parameter.
type Joinable interface {
	~string | ~int | ~int64 | ~uint | ~float64
}

// Join encodes one or more values the way list parameters are sent on the
// wire: duplicates are dropped keeping the first occurrence and the rest are
// joined with "-". A single value is returned in its plain string form.
//
// Join of nothing returns "". The API has no empty-list token, so callers
// should leave the parameter out instead of sending the empty string.
func Join[T Joinable](values ...T) string {
	switch len(values) {
	case 0:
		return ""
	case 1:
		return fmt.Sprint(values[0])
	}

	unique := Distinct(values)
	parts := make([]string, len(unique))
	for i, v := range unique {
		parts[i] = fmt.Sprint(v)
	}
	return strings.Join(parts, "-")
}

// Distinct returns values without duplicates, keeping first occurrences.
func Distinct[T comparable](values []T) []T {
	seen := make(map[T]struct{}, len(values))
	out := make([]T, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// Range formats an inclusive "min-max" range parameter.
func Range[T Joinable](lo, hi T) string {
	return fmt.Sprintf("%v-%v", lo, hi)
}
