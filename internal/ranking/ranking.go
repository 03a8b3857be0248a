package ranking

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/lepinkainen/narou/internal/dates"
	"github.com/lepinkainen/narou/internal/params"
	"github.com/lepinkainen/narou/internal/search"
)

// Row is one ranking entry.
type Row struct {
	NCode string `json:"ncode"`
	Rank  int    `json:"rank"`
	Pt    int    `json:"pt"`
}

// Builder configures a ranking request. Setters return a modified copy.
type Builder struct {
	api       *search.API
	bag       params.Bag
	date      time.Time
	rtype     params.RankingType
	now       func() time.Time
	batchSize int
}

// New creates a daily ranking request for yesterday.
func New(api *search.API) *Builder {
	return &Builder{
		api:   api,
		bag:   params.Bag{},
		rtype: params.RankingDaily,
		now:   time.Now,
	}
}

func (b *Builder) clone() *Builder {
	c := *b
	return &c
}

// Date selects the ranking day. Weekly rankings are keyed on Tuesdays,
// monthly ones on the 1st and quarterly ones on the 1st of the quarter.
func (b *Builder) Date(date time.Time) *Builder {
	c := b.clone()
	c.date = date
	return c
}

// Type selects the ranking period.
func (b *Builder) Type(t params.RankingType) *Builder {
	c := b.clone()
	c.rtype = t
	return c
}

// Gzip sets the response compression level.
func (b *Builder) Gzip(level params.GzipLevel) *Builder {
	c := b.clone()
	c.bag = b.bag.With(params.KeyGzip, strconv.Itoa(int(level)))
	return c
}

// WithClock replaces the clock used for the default date.
func (b *Builder) WithClock(now func() time.Time) *Builder {
	c := b.clone()
	c.now = now
	return c
}

// BatchSize sets how many novels ExecuteWithFields looks up per request.
func (b *Builder) BatchSize(n int) *Builder {
	c := b.clone()
	c.batchSize = n
	return c
}

// Key returns the rtype value the request will send.
func (b *Builder) Key() string {
	date := b.date
	if date.IsZero() {
		date = dates.Yesterday(b.now())
	}
	return FormatKey(date, b.rtype)
}

// Params returns the parameters the request will send.
func (b *Builder) Params() params.Bag {
	return b.bag.With("rtype", b.Key())
}

// Execute fetches the ranking.
func (b *Builder) Execute(ctx context.Context) ([]Row, error) {
	bag := b.Params()
	slog.Debug("Fetching ranking", "rtype", bag.Get("rtype"))

	raw, err := b.api.Transport().Execute(ctx, b.api.Endpoints().Ranking, bag)
	if err != nil {
		return nil, fmt.Errorf("ranking request failed: %w", err)
	}

	var rows []Row
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode ranking: %w", err)
	}
	return rows, nil
}

// ExecuteWithFields fetches the ranking and joins every row with the
// requested novel fields.
func ExecuteWithFields[R any](ctx context.Context, b *Builder, fields []params.Field, opt ...params.OptionalField) ([]Enriched[R], error) {
	rows, err := b.Execute(ctx)
	if err != nil {
		return nil, err
	}
	return Enrich[R](ctx, NewEnricher(b.api, b.batchSize), rows, fields, opt...)
}
