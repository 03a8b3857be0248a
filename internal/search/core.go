package search

import (
	"strconv"

	"github.com/lepinkainen/narou/internal/params"
)

// DefaultPageSize is the page size Page uses and the limit the service
// applies when none is sent.
const DefaultPageSize = 20

// core carries the parameter bag and the setters every endpoint shares. B is
// the concrete builder type; wrap rebuilds one around a new bag so every
// setter returns a fresh builder.
type core[B any] struct {
	bag  params.Bag
	wrap func(params.Bag) B
}

func (c core[B]) set(key, value string) B {
	return c.wrap(c.bag.With(key, value))
}

func (c core[B]) setInt(key string, value int) B {
	return c.wrap(c.bag.WithInt(key, value))
}

func (c core[B]) setBool(key string, on bool) B {
	return c.setInt(key, int(params.Bool(on)))
}

// setFlag writes isKey=1 for true and notKey=1 for false. The opposite key
// is left alone.
func (c core[B]) setFlag(on bool, isKey, notKey string) B {
	if on {
		return c.setInt(isKey, int(params.True))
	}
	return c.setInt(notKey, int(params.True))
}

// setList stores values joined; an empty list leaves the bag unchanged.
func setList[B any, T params.Joinable](c core[B], key string, values []T) B {
	if len(values) == 0 {
		return c.wrap(c.bag)
	}
	return c.set(key, params.Join(values...))
}

// Params returns the parameters collected so far.
func (c core[B]) Params() params.Bag {
	return c.bag
}

// Limit sets the maximum number of rows (lim).
func (c core[B]) Limit(n int) B {
	return c.setInt(params.KeyLimit, n)
}

// Start sets the offset of the first row (st).
func (c core[B]) Start(n int) B {
	return c.setInt(params.KeyStart, n)
}

// Page selects page no (zero based) of size rows. A size of zero or less
// means DefaultPageSize.
func (c core[B]) Page(no, size int) B {
	if size <= 0 {
		size = DefaultPageSize
	}
	return c.wrap(c.bag.WithInt(params.KeyLimit, size).WithInt(params.KeyStart, no*size))
}

// Gzip sets the compression level. Level 0 asks for plain JSON.
func (c core[B]) Gzip(level params.GzipLevel) B {
	return c.set(params.KeyGzip, strconv.Itoa(int(level)))
}
