package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lepinkainen/narou/internal/cmdutil"
	"github.com/lepinkainen/narou/internal/fileutil"
)

const maxColumnWidth = 40

var stdout io.Writer = os.Stdout

// OutputFlags select how a command prints its results.
type OutputFlags struct {
	JSON      bool   `help:"Print results as JSON"`
	YAML      bool   `name:"yaml" help:"Print results as YAML"`
	Output    string `short:"o" help:"Write results to a file instead; .yaml or .yml selects YAML"`
	Overwrite bool   `help:"Overwrite an existing output file"`
}

// emit writes data in the selected format. table renders the default
// human-readable view.
func (o OutputFlags) emit(data any, table func() string) error {
	if o.Output != "" {
		return o.writeFile(data)
	}

	switch {
	case o.JSON:
		out, err := json.MarshalIndent(data, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		_, err = fmt.Fprintln(stdout, string(out))
		return err
	case o.YAML:
		out, err := fileutil.MarshalYAML(data)
		if err != nil {
			return err
		}
		_, err = stdout.Write(out)
		return err
	}

	_, err := fmt.Fprintln(stdout, table())
	return err
}

func (o OutputFlags) writeFile(data any) error {
	cfg := cmdutil.OutputConfig{Path: o.Output}
	switch {
	case o.YAML:
		cfg.Format = cmdutil.FormatYAML
	case o.JSON:
		cfg.Format = cmdutil.FormatJSON
	}
	if err := cmdutil.SetupOutput(&cfg); err != nil {
		return err
	}

	var written bool
	var err error
	if cfg.Format == cmdutil.FormatYAML {
		written, err = fileutil.WriteYAMLFile(data, cfg.Path, o.Overwrite)
	} else {
		written, err = fileutil.WriteJSONFile(data, cfg.Path, o.Overwrite)
	}
	if err != nil {
		return err
	}
	if !written {
		slog.Warn("Output file exists, pass --overwrite to replace it", "path", cfg.Path)
	}
	return nil
}

var (
	tableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("214"))

	tableRuleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	tableSummaryStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("244"))
)

// renderTable lays rows out in columns sized to their widest cell. Cells
// wider than maxColumnWidth are cut.
func renderTable(headers []string, rows [][]string, summary string) string {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) {
				widths[i] = min(max(widths[i], lipgloss.Width(cell)), maxColumnWidth)
			}
		}
	}

	var b strings.Builder
	b.WriteString(tableHeaderStyle.Render(joinCells(headers, widths)))
	b.WriteByte('\n')

	total := 0
	for _, w := range widths {
		total += w
	}
	total += 2 * (len(widths) - 1)
	b.WriteString(tableRuleStyle.Render(strings.Repeat("─", max(total, 0))))

	for _, row := range rows {
		b.WriteByte('\n')
		b.WriteString(joinCells(row, widths))
	}

	if summary != "" {
		b.WriteString("\n\n")
		b.WriteString(tableSummaryStyle.Render(summary))
	}
	return b.String()
}

func joinCells(cells []string, widths []int) string {
	padded := make([]string, len(widths))
	for i, w := range widths {
		var cell string
		if i < len(cells) {
			cell = strings.Join(strings.Fields(cells[i]), " ")
		}
		cell = lipgloss.NewStyle().MaxWidth(w).Render(cell)
		padded[i] = cell + strings.Repeat(" ", max(w-lipgloss.Width(cell), 0))
	}
	return strings.TrimRight(strings.Join(padded, "  "), " ")
}
