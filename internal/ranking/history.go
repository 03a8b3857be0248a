package ranking

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/lepinkainen/narou/internal/params"
	"github.com/lepinkainen/narou/internal/search"
)

// HistoryEntry is one appearance of a novel in a ranking.
type HistoryEntry struct {
	Type params.RankingType `json:"type"`
	Date time.Time          `json:"date"`
	Pt   int                `json:"pt"`
	Rank int                `json:"rank"`
}

type rawHistoryEntry struct {
	RType string `json:"rtype"`
	Pt    int    `json:"pt"`
	Rank  int    `json:"rank"`
}

// History lists every ranking the novel ncode appeared in.
func History(ctx context.Context, api *search.API, ncode string) ([]HistoryEntry, error) {
	bag := params.Bag{"ncode": ncode}

	raw, err := api.Transport().Execute(ctx, api.Endpoints().RankingHistory, bag)
	if err != nil {
		return nil, fmt.Errorf("ranking history request failed: %w", err)
	}
	return decodeHistory(raw)
}

func decodeHistory(raw json.RawMessage) ([]HistoryEntry, error) {
	var entries []rawHistoryEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("unexpected ranking history response %s: %w", string(raw), err)
	}

	out := make([]HistoryEntry, 0, len(entries))
	for _, e := range entries {
		date, t, err := ParseKey(e.RType)
		if err != nil {
			return nil, err
		}
		out = append(out, HistoryEntry{Type: t, Date: date, Pt: e.Pt, Rank: e.Rank})
	}
	return out, nil
}
