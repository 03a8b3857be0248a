package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lepinkainen/narou/internal/params"
)

// PageFlags control paging and compression of a search.
type PageFlags struct {
	Limit int `short:"l" help:"Rows per page" default:"20"`
	Page  int `help:"Page number, starting from 0" default:"0"`
	Gzip  int `help:"Response compression level, 0 disables it" default:"5"`
}

// NovelFilterFlags are the filters shared by the novel and R18 searches.
type NovelFilterFlags struct {
	NotWord     string   `help:"Exclude novels containing these words"`
	InTitle     bool     `name:"title" help:"Match words against titles"`
	InOutline   bool     `name:"outline" help:"Match words against outlines"`
	InKeyword   bool     `name:"keyword" help:"Match words against keywords"`
	InAuthor    bool     `name:"author" help:"Match words against author names"`
	NCode       []string `name:"ncode" help:"Only these ncodes"`
	Length      string   `help:"Length in characters, either N or MIN-MAX"`
	Type        string   `help:"Novel type: t, r, er, re or ter"`
	Pickup      bool     `help:"Only pickup novels"`
	TenseiTenni bool     `name:"tensei-tenni" help:"Only reincarnation or transfer novels"`
	LastUpdate  string   `help:"Last update term: thisweek, lastweek, sevenday, thismonth or lastmonth"`
	Order       string   `help:"Sort order, e.g. new, hyoka or weeklypoint"`
	Fields      []string `short:"f" help:"Fields to return, as codes (t, n) or names (title, ncode)"`
	Weekly      bool     `help:"Include unique weekly readers"`
}

// novelQuery is what the novel and R18 builders have in common.
type novelQuery[B any] interface {
	NotWord(word string) B
	ByTitle(on bool) B
	ByOutline(on bool) B
	ByKeyword(on bool) B
	ByAuthor(on bool) B
	NCode(codes ...string) B
	Length(values ...int) B
	LengthRange(lo, hi int) B
	Type(t params.NovelType) B
	IsPickup(on bool) B
	IsTT() B
	LastUpdate(term params.UpdateTerm) B
	Order(o params.Order) B
	Opt(fields ...params.OptionalField) B
	Fields(fields ...params.Field) B
	Page(no, size int) B
	Gzip(level params.GzipLevel) B
}

func applyNovelFilters[B novelQuery[B]](b B, f NovelFilterFlags, p PageFlags) (B, error) {
	if f.NotWord != "" {
		b = b.NotWord(f.NotWord)
	}
	if f.InTitle {
		b = b.ByTitle(true)
	}
	if f.InOutline {
		b = b.ByOutline(true)
	}
	if f.InKeyword {
		b = b.ByKeyword(true)
	}
	if f.InAuthor {
		b = b.ByAuthor(true)
	}
	b = b.NCode(f.NCode...)

	if f.Length != "" {
		lo, hi, isRange, err := parseRange(f.Length)
		if err != nil {
			return b, fmt.Errorf("invalid --length: %w", err)
		}
		if isRange {
			b = b.LengthRange(lo, hi)
		} else {
			b = b.Length(lo)
		}
	}
	if f.Type != "" {
		b = b.Type(params.NovelType(f.Type))
	}
	if f.Pickup {
		b = b.IsPickup(true)
	}
	if f.TenseiTenni {
		b = b.IsTT()
	}
	if f.LastUpdate != "" {
		b = b.LastUpdate(params.UpdateTerm(f.LastUpdate))
	}
	if f.Order != "" {
		b = b.Order(params.Order(f.Order))
	}

	fields, err := parseFields(f.Fields)
	if err != nil {
		return b, err
	}
	b = b.Fields(fields...)
	if f.Weekly {
		b = b.Opt(params.OptionalWeeklyUnique)
	}

	return b.Page(p.Page, p.Limit).Gzip(params.GzipLevel(p.Gzip)), nil
}

// parseFields accepts field codes or JSON names.
func parseFields(values []string) ([]params.Field, error) {
	fields := make([]params.Field, 0, len(values))
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			field, ok := params.ParseField(part)
			if !ok {
				return nil, fmt.Errorf("unknown field %q", part)
			}
			fields = append(fields, field)
		}
	}
	return fields, nil
}

// parseRange reads "N" or "MIN-MAX".
func parseRange(s string) (lo, hi int, isRange bool, err error) {
	loText, hiText, isRange := strings.Cut(s, "-")
	if lo, err = strconv.Atoi(strings.TrimSpace(loText)); err != nil {
		return 0, 0, false, err
	}
	if !isRange {
		return lo, 0, false, nil
	}
	if hi, err = strconv.Atoi(strings.TrimSpace(hiText)); err != nil {
		return 0, 0, false, err
	}
	return lo, hi, true, nil
}

func toEnum[T ~int](values []int) []T {
	out := make([]T, len(values))
	for i, v := range values {
		out[i] = T(v)
	}
	return out
}
