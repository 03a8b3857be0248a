package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/lepinkainen/narou/internal/cmdutil"
	"github.com/lepinkainen/narou/internal/dates"
	"github.com/lepinkainen/narou/internal/datastore"
	"github.com/lepinkainen/narou/internal/params"
	"github.com/lepinkainen/narou/internal/ranking"
	"github.com/lepinkainen/narou/internal/search"
)

// RankingCmd shows a ranking joined with the details of every novel in it.
type RankingCmd struct {
	Date        string   `help:"Ranking date as yyyyMMdd (defaults to yesterday)"`
	Type        string   `short:"t" help:"Ranking period: d, w, m or q" enum:"d,w,m,q" default:"d"`
	Fields      []string `short:"f" help:"Novel fields to join, as codes or names (all when empty)"`
	Weekly      bool     `help:"Include unique weekly readers"`
	BatchSize   int      `help:"Novels looked up per request (defaults to narou.batch_size)"`
	Gzip        int      `help:"Response compression level, 0 disables it" default:"5"`
	Interactive bool     `short:"i" help:"Pick a novel interactively and show its ranking history"`

	OutputFlags `embed:""`
}

func (r *RankingCmd) Run(ctx context.Context) error {
	fields, err := parseFields(r.Fields)
	if err != nil {
		return err
	}

	api, cfg, closeFn, err := newAPI(ctx)
	if err != nil {
		return err
	}
	defer closeFn()

	batchSize := r.BatchSize
	if batchSize <= 0 {
		batchSize = cfg.BatchSize
	}
	b := ranking.New(api).
		Type(params.RankingType(r.Type)).
		Gzip(params.GzipLevel(r.Gzip)).
		BatchSize(batchSize)
	if r.Date != "" {
		date, err := dates.Parse(r.Date)
		if err != nil {
			return fmt.Errorf("invalid --date: %w", err)
		}
		b = b.Date(date)
	}

	var opt []params.OptionalField
	if r.Weekly {
		opt = append(opt, params.OptionalWeeklyUnique)
	}

	key := b.Key()
	rows, err := ranking.ExecuteWithFields[search.NovelResult](ctx, b, fields, opt...)
	if err != nil {
		return err
	}

	novels := make([]search.NovelResult, 0, len(rows))
	for _, row := range rows {
		if row.Novel != nil {
			novels = append(novels, *row.Novel)
		}
	}

	if r.Interactive {
		return pickNovel(ctx, api, "Ranking "+key, novels, r.OutputFlags)
	}

	if err := exportRanking(ctx, key, rows, novels); err != nil {
		return err
	}

	return r.emit(rows, func() string {
		table := make([][]string, len(rows))
		for i, row := range rows {
			title, writer := "(deleted)", ""
			if row.Novel != nil {
				title, writer = row.Novel.Title, row.Novel.Writer
			}
			table[i] = []string{strconv.Itoa(row.Rank), row.NCode, strconv.Itoa(row.Pt), title, writer}
		}
		return renderTable([]string{"RANK", "NCODE", "PT", "TITLE", "WRITER"}, table,
			fmt.Sprintf("ranking %s, %d novels", key, len(rows)))
	})
}

func exportRanking(ctx context.Context, key string, rows []ranking.Enriched[search.NovelResult], novels []search.NovelResult) error {
	err := cmdutil.WriteToDatastore(ctx, rows, datastore.RankingSchema, datastore.RankingTable, "ranking "+key,
		func(row ranking.Enriched[search.NovelResult]) map[string]any {
			record := map[string]any{
				"rtype":  key,
				"ncode":  row.NCode,
				"rank":   row.Rank,
				"pt":     row.Pt,
				"title":  nil,
				"writer": nil,
			}
			if row.Novel != nil {
				record["title"] = row.Novel.Title
				record["writer"] = row.Novel.Writer
			}
			return record
		})
	if err != nil {
		return err
	}
	return cmdutil.WriteToDatastore(ctx, novels, datastore.NovelsSchema, datastore.NovelsTable, "ranked novels", novelRecord[search.NovelResult])
}

// HistoryCmd lists every ranking a novel appeared in.
type HistoryCmd struct {
	NCode string `arg:"" name:"ncode" help:"Novel code, e.g. N1234AB"`

	OutputFlags `embed:""`
}

func (h *HistoryCmd) Run(ctx context.Context) error {
	api, _, closeFn, err := newAPI(ctx)
	if err != nil {
		return err
	}
	defer closeFn()

	entries, err := ranking.History(ctx, api, h.NCode)
	if err != nil {
		return err
	}

	if err := cmdutil.WriteToDatastore(ctx, entries, datastore.HistorySchema, datastore.HistoryTable, "ranking history", func(e ranking.HistoryEntry) map[string]any {
		record := cmdutil.StructToMap(e, cmdutil.StructToMapOptions{})
		record["ncode"] = h.NCode
		record["date"] = dates.Format(e.Date)
		return record
	}); err != nil {
		return err
	}

	return h.emit(entries, func() string { return historyTable(entries) })
}
