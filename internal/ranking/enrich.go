package ranking

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/lepinkainen/narou/internal/params"
	"github.com/lepinkainen/narou/internal/search"
)

const (
	// DefaultBatchSize is how many novels one lookup request asks for.
	DefaultBatchSize = 300
	// MaxLimit is the largest lim the novel API accepts.
	MaxLimit = 500
)

// Enriched is a ranking row with the details of its novel. Novel is nil when
// the novel no longer exists.
type Enriched[R any] struct {
	Row
	Novel *R
}

// MarshalJSON renders the novel fields and the ranking fields as one object;
// ranking fields win on conflict.
func (e Enriched[R]) MarshalJSON() ([]byte, error) {
	merged := map[string]json.RawMessage{}
	if e.Novel != nil {
		novel, err := json.Marshal(e.Novel)
		if err != nil {
			return nil, err
		}
		if err := json.Unmarshal(novel, &merged); err != nil {
			return nil, fmt.Errorf("novel does not encode as an object: %w", err)
		}
	}

	row, err := json.Marshal(e.Row)
	if err != nil {
		return nil, err
	}
	var rowFields map[string]json.RawMessage
	if err := json.Unmarshal(row, &rowFields); err != nil {
		return nil, err
	}
	for k, v := range rowFields {
		merged[k] = v
	}
	return json.Marshal(merged)
}

// Enricher looks up novel details for ranking rows in batches.
type Enricher struct {
	api       *search.API
	batchSize int
}

// NewEnricher creates an Enricher. Non-positive sizes use DefaultBatchSize;
// sizes above MaxLimit are clamped.
func NewEnricher(api *search.API, batchSize int) *Enricher {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	if batchSize > MaxLimit {
		batchSize = MaxLimit
	}
	return &Enricher{api: api, batchSize: batchSize}
}

// BatchSize returns the effective batch size.
func (e *Enricher) BatchSize() int {
	return e.batchSize
}

type ncodeKey struct {
	NCode string `json:"ncode"`
}

// Enrich joins rows with novel details decoded into R. Output order follows
// rows; a novel missing from the response leaves Novel nil. Any failed batch
// fails the whole call.
func Enrich[R any](ctx context.Context, e *Enricher, rows []Row, fields []params.Field, opt ...params.OptionalField) ([]Enriched[R], error) {
	out := make([]Enriched[R], len(rows))
	for i, row := range rows {
		out[i].Row = row
	}
	if len(rows) == 0 {
		return out, nil
	}

	var of []params.Field
	if len(fields) > 0 {
		of = append(slices.Clone(fields), params.FieldNCode)
	}

	batches := slices.Collect(slices.Chunk(rows, e.batchSize))
	found := make([]map[string]*R, len(batches))
	slog.Debug("Enriching ranking", "rows", len(rows), "batches", len(batches), "batch_size", e.batchSize)

	g, gctx := errgroup.WithContext(ctx)
	for i, batch := range batches {
		g.Go(func() error {
			novels, err := lookup[R](gctx, e.api, batch, of, opt)
			if err != nil {
				return fmt.Errorf("batch %d: %w", i, err)
			}
			found[i] = novels
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to enrich ranking: %w", err)
	}

	byCode := make(map[string]*R, len(rows))
	for _, novels := range found {
		for code, novel := range novels {
			byCode[code] = novel
		}
	}
	for i := range out {
		out[i].Novel = byCode[out[i].NCode]
	}
	return out, nil
}

// lookup fetches the novels of one batch keyed by ncode.
func lookup[R any](ctx context.Context, api *search.API, batch []Row, of []params.Field, opt []params.OptionalField) (map[string]*R, error) {
	ncodes := make([]string, len(batch))
	for i, row := range batch {
		ncodes[i] = row.NCode
	}

	b := api.Search("").NCode(ncodes...).Limit(len(batch))
	if len(of) > 0 {
		b = b.Fields(of...)
	}
	if len(opt) > 0 {
		b = b.Opt(opt...)
	}

	res, err := search.Select[json.RawMessage](b).Execute(ctx)
	if err != nil {
		return nil, err
	}

	novels := make(map[string]*R, len(res.Values))
	for _, raw := range res.Values {
		var key ncodeKey
		if err := json.Unmarshal(raw, &key); err != nil {
			return nil, fmt.Errorf("failed to read ncode: %w", err)
		}
		novel := new(R)
		if err := json.Unmarshal(raw, novel); err != nil {
			return nil, fmt.Errorf("failed to decode novel %s: %w", key.NCode, err)
		}
		novels[key.NCode] = novel
	}
	return novels, nil
}
