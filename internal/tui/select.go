// Package tui provides interactive terminal UI components.
package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lepinkainen/narou/internal/params"
	"github.com/lepinkainen/narou/internal/search"
)

const (
	defaultListWidth  = 72
	defaultListHeight = 20
)

var runProgram = func(m tea.Model) (tea.Model, error) {
	return tea.NewProgram(m).Run()
}

// SelectionAction represents the user's action in the selection UI.
type SelectionAction int

const (
	// ActionNone indicates no action was taken.
	ActionNone SelectionAction = iota
	// ActionSelected indicates the user selected a novel.
	ActionSelected
	// ActionSkipped indicates the user left without choosing.
	ActionSkipped
	// ActionStopped indicates the user stopped processing entirely.
	ActionStopped
)

// SelectionResult holds the result of a TUI selection.
type SelectionResult struct {
	Action    SelectionAction
	Selection *search.NovelResult
}

type novelItem struct {
	search.NovelResult
}

func (i novelItem) Title() string {
	return fmt.Sprintf("%s [%s]", i.NovelResult.Title, i.NCode)
}

func (i novelItem) FilterValue() string {
	return i.NovelResult.Title
}

func (i novelItem) Description() string {
	return i.Story
}

type itemStyles struct {
	normal        lipgloss.Style
	selected      lipgloss.Style
	genreStyle    lipgloss.Style
	titleStyle    lipgloss.Style
	pointStyle    lipgloss.Style
	metadataStyle lipgloss.Style
	storyStyle    lipgloss.Style
}

func newItemStyles() itemStyles {
	asciiBorder := lipgloss.Border{
		Top:         "-",
		Bottom:      "-",
		Left:        "|",
		Right:       "|",
		TopLeft:     "+",
		TopRight:    "+",
		BottomLeft:  "+",
		BottomRight: "+",
	}

	container := lipgloss.NewStyle().
		Border(asciiBorder).
		BorderForeground(lipgloss.Color("62")).
		Padding(0, 1).
		Foreground(lipgloss.Color("252"))

	selected := container.Copy().
		BorderForeground(lipgloss.Color("214")).
		Foreground(lipgloss.Color("230")).
		Background(lipgloss.Color("237"))

	return itemStyles{
		normal:   container,
		selected: selected,
		genreStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("110")),
		titleStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("254")),
		pointStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("178")),
		metadataStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("247")).
			Faint(true),
		storyStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("248")),
	}
}

type novelDelegate struct {
	styles itemStyles
}

func newDelegate() novelDelegate {
	return novelDelegate{styles: newItemStyles()}
}

func (d novelDelegate) Height() int                         { return 5 }
func (d novelDelegate) Spacing() int                        { return 1 }
func (d novelDelegate) Update(tea.Msg, *list.Model) tea.Cmd { return nil }

func (d novelDelegate) Render(w io.Writer, m list.Model, idx int, item list.Item) {
	novel, ok := item.(novelItem)
	if !ok {
		return
	}

	genreLine := d.styles.genreStyle.Render(fmt.Sprintf("[%s]", genreLabel(novel.Genre)))
	metadataLine := d.styles.metadataStyle.Render(formatMetadata(novel.NovelResult, m.Width()-4))
	titleLine := d.styles.titleStyle.Render(truncate(novel.Title(), m.Width()-4))
	pointLine := d.styles.pointStyle.Render(fmt.Sprintf("%dpt", novel.GlobalPoint))
	storyLine := d.styles.storyStyle.Render(truncate(novel.Story, m.Width()-4))

	content := lipgloss.JoinVertical(lipgloss.Left, genreLine, metadataLine, titleLine, pointLine, storyLine)

	container := d.styles.normal
	if idx == m.Index() {
		container = d.styles.selected
	}
	_, _ = fmt.Fprint(w, container.Render(content))
}

type model struct {
	list    list.Model
	heading string
	result  SelectionResult
}

func newModel(heading string, items []novelItem) *model {
	listItems := make([]list.Item, len(items))
	for i, item := range items {
		listItems[i] = item
	}

	l := list.New(listItems, newDelegate(), defaultListWidth, defaultListHeight)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.SetShowTitle(false)
	l.SetShowPagination(false)
	l.DisableQuitKeybindings()
	l.Styles.NoItems = lipgloss.NewStyle()

	return &model{
		list:    l,
		heading: heading,
		result:  SelectionResult{Action: ActionNone},
	}
}

func (m *model) Init() tea.Cmd { return nil }

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			if selected, ok := m.list.SelectedItem().(novelItem); ok {
				novel := selected.NovelResult
				m.result = SelectionResult{Action: ActionSelected, Selection: &novel}
				return m, tea.Quit
			}
		case "s", "esc":
			m.result = SelectionResult{Action: ActionSkipped}
			return m, tea.Quit
		case "ctrl+c", "q":
			m.result = SelectionResult{Action: ActionStopped}
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		width := clamp(defaultListWidth, msg.Width-4, 40)
		height := clamp(defaultListHeight, msg.Height-6, 5)
		m.list.SetSize(width, height)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m *model) View() string {
	header := headerStyle.Render(m.heading)
	buttons := lipgloss.JoinHorizontal(
		lipgloss.Left,
		skipButtonStyle.Render(" Skip "),
		lipgloss.NewStyle().Padding(0, 2).Render(""),
		stopButtonStyle.Render(" Stop "),
	)
	help := helpStyle.Render("Up/Down navigate | Enter select | s skip | q stop")
	return lipgloss.JoinVertical(lipgloss.Left, header, m.list.View(), buttons, help)
}

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("214")).
			MarginBottom(1)

	skipButtonStyle = lipgloss.NewStyle().
			MarginTop(1).
			Padding(0, 2).
			Background(lipgloss.Color("178")).
			Foreground(lipgloss.Color("0")).
			Bold(true)

	stopButtonStyle = lipgloss.NewStyle().
			MarginTop(1).
			Padding(0, 2).
			Background(lipgloss.Color("161")).
			Foreground(lipgloss.Color("230")).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			MarginTop(1).
			Foreground(lipgloss.Color("244"))
)

// Select lets the user pick one novel out of novels. Rows without an ncode
// cannot be looked up later and are not offered.
func Select(heading string, novels []search.NovelResult) (SelectionResult, error) {
	items := make([]novelItem, 0, len(novels))
	for _, novel := range novels {
		if novel.NCode == "" {
			continue
		}
		items = append(items, novelItem{NovelResult: novel})
	}
	if len(items) == 0 {
		return SelectionResult{Action: ActionSkipped}, nil
	}

	finalModel, err := runProgram(newModel(heading, items))
	if err != nil {
		return SelectionResult{}, err
	}

	if typed, ok := finalModel.(*model); ok {
		return typed.result, nil
	}

	return SelectionResult{}, fmt.Errorf("unexpected program result")
}

func genreLabel(genre params.Genre) string {
	if label, ok := params.GenreNotation[genre]; ok {
		return label
	}
	return "?"
}

// truncate cuts value to at most width runes, collapsing whitespace.
func truncate(value string, width int) string {
	value = strings.Join(strings.Fields(value), " ")
	runes := []rune(value)
	if width <= 0 || len(runes) <= width {
		return value
	}
	if width <= 3 {
		return string(runes[:width])
	}
	return string(runes[:width-3]) + "..."
}

// formatMetadata builds the writer, episode count, length and update line.
func formatMetadata(novel search.NovelResult, availableWidth int) string {
	var parts []string

	if novel.Writer != "" {
		parts = append(parts, novel.Writer)
	}
	if novel.GeneralAllNo > 0 {
		parts = append(parts, fmt.Sprintf("%d eps", novel.GeneralAllNo))
	}
	if novel.Length > 0 {
		parts = append(parts, formatLength(novel.Length))
	}
	if novel.GeneralLastUp != "" {
		parts = append(parts, novel.GeneralLastUp)
	}

	if len(parts) == 0 {
		return "No metadata available"
	}

	return truncate(strings.Join(parts, " | "), availableWidth)
}

// formatLength formats a character count in a compact way
func formatLength(length int) string {
	if length >= 10000 {
		return fmt.Sprintf("%.1f万字", float64(length)/10000)
	}
	return fmt.Sprintf("%d字", length)
}

func clamp(defaultValue, available, minimum int) int {
	width := defaultValue
	if available > 0 && available < defaultValue {
		width = available
	}
	if width < minimum {
		width = minimum
	}
	return width
}
