package params

import (
	"net/url"
	"strconv"
)

// Wire parameter names shared by every endpoint.
const (
	KeyOut   = "out"
	KeyGzip  = "gzip"
	KeyLimit = "lim"
	KeyStart = "st"
	KeyOrder = "order"
	KeyOf    = "of"
	KeyOpt   = "opt"
)

// Bag is the set of query parameters for one request.
//
// A Bag is treated as immutable: With and Without return modified copies and
// never touch the receiver, so builders derived from a common base cannot
// change each other's parameters.
type Bag map[string]string

// With returns a copy of b with key set to value.
func (b Bag) With(key, value string) Bag {
	out := make(Bag, len(b)+1)
	for k, v := range b {
		out[k] = v
	}
	out[key] = value
	return out
}

// WithInt is With for integer values.
func (b Bag) WithInt(key string, value int) Bag {
	return b.With(key, strconv.Itoa(value))
}

// Without returns a copy of b with key removed.
func (b Bag) Without(key string) Bag {
	out := make(Bag, len(b))
	for k, v := range b {
		if k != key {
			out[k] = v
		}
	}
	return out
}

// Merge returns a copy of b overlaid with every entry of other.
func (b Bag) Merge(other Bag) Bag {
	out := make(Bag, len(b)+len(other))
	for k, v := range b {
		out[k] = v
	}
	for k, v := range other {
		out[k] = v
	}
	return out
}

// Get returns the value stored under key, or "".
func (b Bag) Get(key string) string {
	return b[key]
}

// Has reports whether key is present.
func (b Bag) Has(key string) bool {
	_, ok := b[key]
	return ok
}

// Int returns the integer stored under key. ok is false when the key is
// missing or not a number.
func (b Bag) Int(key string) (n int, ok bool) {
	v, present := b[key]
	if !present {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Values renders the bag as url.Values, skipping empty values.
func (b Bag) Values() url.Values {
	values := make(url.Values, len(b))
	for k, v := range b {
		if v == "" {
			continue
		}
		values.Set(k, v)
	}
	return values
}
