package cmd

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/lepinkainen/narou/internal/cmdutil"
	"github.com/lepinkainen/narou/internal/dates"
	"github.com/lepinkainen/narou/internal/errors"
	"github.com/lepinkainen/narou/internal/params"
	"github.com/lepinkainen/narou/internal/ranking"
	"github.com/lepinkainen/narou/internal/search"
	"github.com/lepinkainen/narou/internal/tui"
)

var selectNovel = tui.Select

var novelHeaders = []string{"NCODE", "TITLE", "WRITER", "GENRE", "POINTS"}

func novelRow(n search.NovelResult) []string {
	return []string{n.NCode, n.Title, n.Writer, genreLabel(n.Genre), strconv.Itoa(n.GlobalPoint)}
}

func novelRecord[T any](n T) map[string]any {
	return cmdutil.StructToMap(n, cmdutil.StructToMapOptions{})
}

func genreLabel(g params.Genre) string {
	if label, ok := params.GenreNotation[g]; ok {
		return label
	}
	if g == 0 {
		return ""
	}
	return strconv.Itoa(int(g))
}

func siteLabel(s params.R18Site) string {
	if label, ok := params.R18SiteNotation[s]; ok {
		return label
	}
	if s == 0 {
		return ""
	}
	return strconv.Itoa(int(s))
}

func resultSummary(length, allCount, start int, what string) string {
	if length == 0 {
		return fmt.Sprintf("no %s (%d total)", what, allCount)
	}
	return fmt.Sprintf("%s %d-%d of %d", what, start+1, start+length, allCount)
}

// NovelHistory is a novel together with its ranking appearances.
type NovelHistory struct {
	Novel   search.NovelResult     `json:"novel"`
	History []ranking.HistoryEntry `json:"history"`
}

func novelDetail(n search.NovelResult) string {
	lines := [][]string{
		{"ncode", n.NCode},
		{"title", n.Title},
		{"writer", n.Writer},
		{"genre", genreLabel(n.Genre)},
		{"episodes", strconv.Itoa(n.GeneralAllNo)},
		{"length", strconv.Itoa(n.Length)},
		{"points", strconv.Itoa(n.GlobalPoint)},
		{"updated", n.GeneralLastUp},
	}
	return renderTable([]string{"FIELD", "VALUE"}, lines, strings.TrimSpace(n.Story))
}

func historyTable(entries []ranking.HistoryEntry) string {
	rows := make([][]string, len(entries))
	for i, e := range entries {
		rows[i] = []string{dates.Format(e.Date), string(e.Type), strconv.Itoa(e.Rank), strconv.Itoa(e.Pt)}
	}
	return renderTable([]string{"DATE", "TYPE", "RANK", "PT"}, rows, fmt.Sprintf("%d ranking appearances", len(entries)))
}

func chosenNovel(selection tui.SelectionResult) *search.NovelResult {
	if selection.Action == tui.ActionSelected {
		return selection.Selection
	}
	return nil
}

// selectionError turns a stop in the picker into a StopProcessingError.
func selectionError(selection tui.SelectionResult) error {
	if selection.Action == tui.ActionStopped {
		return errors.NewStopProcessingError("selection stopped by user")
	}
	return nil
}

// pickNovel lets the user choose one of novels and prints it with its
// ranking history.
func pickNovel(ctx context.Context, api *search.API, heading string, novels []search.NovelResult, out OutputFlags) error {
	selection, err := selectNovel(heading, novels)
	if err != nil {
		return err
	}
	chosen := chosenNovel(selection)
	if chosen == nil {
		return selectionError(selection)
	}

	history, err := ranking.History(ctx, api, chosen.NCode)
	if err != nil {
		return err
	}

	detail := NovelHistory{Novel: *chosen, History: history}
	return out.emit(detail, func() string {
		return novelDetail(detail.Novel) + "\n\n" + historyTable(detail.History)
	})
}
