package search

import (
	"strconv"
	"time"

	"github.com/lepinkainen/narou/internal/params"
)

// novelFilters holds the setters shared by the general and R18 novel
// searches.
type novelFilters[B any] struct {
	core[B]
}

// Word sets the search words; spaces separate AND terms.
func (n novelFilters[B]) Word(word string) B { return n.set("word", word) }

// NotWord excludes novels containing word.
func (n novelFilters[B]) NotWord(word string) B { return n.set("notword", word) }

// ByTitle includes the title in word matching.
func (n novelFilters[B]) ByTitle(on bool) B { return n.setBool("title", on) }

// ByOutline includes the story in word matching.
func (n novelFilters[B]) ByOutline(on bool) B { return n.setBool("ex", on) }

// ByKeyword includes keywords in word matching.
func (n novelFilters[B]) ByKeyword(on bool) B { return n.setBool("keyword", on) }

// ByAuthor includes the author name in word matching.
func (n novelFilters[B]) ByAuthor(on bool) B { return n.setBool("wname", on) }

// IsBL restricts to (true) or excludes (false) boys' love novels.
func (n novelFilters[B]) IsBL(on bool) B { return n.setFlag(on, "isbl", "notbl") }

// IsGL restricts to (true) or excludes (false) girls' love novels.
func (n novelFilters[B]) IsGL(on bool) B { return n.setFlag(on, "isgl", "notgl") }

// IsZankoku restricts to (true) or excludes (false) novels tagged as cruel.
func (n novelFilters[B]) IsZankoku(on bool) B { return n.setFlag(on, "iszankoku", "notzankoku") }

// IsTensei restricts to (true) or excludes (false) reincarnation novels.
func (n novelFilters[B]) IsTensei(on bool) B { return n.setFlag(on, "istensei", "nottensei") }

// IsTenni restricts to (true) or excludes (false) transfer-to-another-world novels.
func (n novelFilters[B]) IsTenni(on bool) B { return n.setFlag(on, "istenni", "nottenni") }

// IsTT matches novels that are either tensei or tenni.
func (n novelFilters[B]) IsTT() B { return n.setInt("istt", int(params.True)) }

// Length filters by character count; two values form a min-max range.
func (n novelFilters[B]) Length(values ...int) B { return setList(n.core, "length", values) }

// LengthRange filters by character count between lo and hi.
func (n novelFilters[B]) LengthRange(lo, hi int) B { return n.set("length", params.Range(lo, hi)) }

// Kaiwaritu filters by dialogue ratio in percent.
func (n novelFilters[B]) Kaiwaritu(pct int) B { return n.set("kaiwaritu", strconv.Itoa(pct)) }

// KaiwarituRange filters by dialogue ratio between lo and hi percent.
func (n novelFilters[B]) KaiwarituRange(lo, hi int) B {
	return n.set("kaiwaritu", params.Range(lo, hi))
}

// Sasie filters by illustration count.
func (n novelFilters[B]) Sasie(values ...int) B { return setList(n.core, "sasie", values) }

// Time filters by reading time in minutes.
func (n novelFilters[B]) Time(values ...int) B { return setList(n.core, "time", values) }

// NCode restricts the search to the given novel codes.
func (n novelFilters[B]) NCode(codes ...string) B { return setList(n.core, "ncode", codes) }

// Type filters by serialisation state.
func (n novelFilters[B]) Type(t params.NovelType) B { return n.set("type", string(t)) }

// Buntai filters by writing style.
func (n novelFilters[B]) Buntai(values ...params.Buntai) B {
	return setList(n.core, "buntai", values)
}

// IsStop restricts to (true) or excludes (false) long-paused novels.
func (n novelFilters[B]) IsStop(on bool) B {
	if on {
		return n.setInt("stop", int(params.StopStopping))
	}
	return n.setInt("stop", int(params.StopNoStopping))
}

// IsPickup restricts to pickup novels.
func (n novelFilters[B]) IsPickup(on bool) B { return n.setBool("ispickup", on) }

// LastUpdate filters by last publication with a named term.
func (n novelFilters[B]) LastUpdate(term params.UpdateTerm) B { return n.set("lastup", string(term)) }

// LastUpdateBetween filters by last publication between two instants.
func (n novelFilters[B]) LastUpdateBetween(from, to time.Time) B {
	return n.set("lastup", params.Range(from.Unix(), to.Unix()))
}

// LastNovelUpdate filters by last novel update with a named term.
func (n novelFilters[B]) LastNovelUpdate(term params.UpdateTerm) B {
	return n.set("lastupdate", string(term))
}

// LastNovelUpdateBetween filters by last novel update between two instants.
func (n novelFilters[B]) LastNovelUpdateBetween(from, to time.Time) B {
	return n.set("lastupdate", params.Range(from.Unix(), to.Unix()))
}

// Order sets the sort order.
func (n novelFilters[B]) Order(o params.Order) B { return n.set(params.KeyOrder, string(o)) }

// Opt requests optional fields. It composes with Fields and Select.
func (n novelFilters[B]) Opt(fields ...params.OptionalField) B {
	return setList(n.core, params.KeyOpt, fields)
}
