package search

import (
	"encoding/json"
	"fmt"

	"github.com/lepinkainen/narou/internal/params"
)

// Results is one page of a search: the total hit count from the response
// header plus the rows that followed it.
type Results[R any] struct {
	AllCount int     `json:"allcount"`
	Limit    int     `json:"limit"`
	Start    int     `json:"start"`
	Page     float64 `json:"page"`
	Length   int     `json:"length"`
	Values   []R     `json:"values"`
}

type resultHeader struct {
	AllCount int `json:"allcount"`
}

// NewResults wraps a decoded `[header, ...rows]` response. Limit and Start
// report what was requested in p (default 20 and 0), not what the server
// applied.
func NewResults[R any](raw json.RawMessage, p params.Bag) (*Results[R], error) {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("failed to decode search response: %w", err)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("search response has no header")
	}

	var header resultHeader
	if err := json.Unmarshal(items[0], &header); err != nil {
		return nil, fmt.Errorf("failed to decode search header: %w", err)
	}

	limit := DefaultPageSize
	if n, ok := p.Int(params.KeyLimit); ok {
		limit = n
	}
	start := 0
	if n, ok := p.Int(params.KeyStart); ok {
		start = n
	}

	rows := items[1:]
	values := make([]R, 0, len(rows))
	for i, row := range rows {
		var v R
		if err := json.Unmarshal(row, &v); err != nil {
			return nil, fmt.Errorf("failed to decode search row %d: %w", i, err)
		}
		values = append(values, v)
	}

	res := &Results[R]{
		AllCount: header.AllCount,
		Limit:    limit,
		Start:    start,
		Length:   len(values),
		Values:   values,
	}
	if limit > 0 {
		res.Page = float64(start) / float64(limit)
	}
	return res, nil
}
