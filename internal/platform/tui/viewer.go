// Package tui provides the interactive map viewer built on Bubble Tea.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/labmap/internal/grid"
	"github.com/vovakirdan/labmap/internal/region"
	"github.com/vovakirdan/labmap/internal/render"
	"github.com/vovakirdan/labmap/internal/report"
)

// Lines used by the header and footer around the main pane.
const chromeHeight = 6

// Pane identifies what the main area shows.
type Pane int

const (
	PaneMap Pane = iota
	PaneRegions
)

// ViewerModel is the Bubble Tea model for browsing an analyzed map.
type ViewerModel struct {
	title    string
	theme    render.Theme
	stats    region.Stats
	summary  string
	viewport viewport.Model
	table    table.Model
	help     help.Model
	keys     ViewerKeyMap
	pane     Pane
	width    int
	height   int
	quitting bool
}

// NewViewerModel creates a viewer for bitmap b and its statistics.
func NewViewerModel(title string, b *grid.Bitmap, stats region.Stats, theme render.Theme, width, height int) ViewerModel {
	m := ViewerModel{
		title:   title,
		theme:   theme,
		stats:   stats,
		summary: strings.TrimRight(report.Format(stats), "\n"),
		help:    help.New(),
		keys:    DefaultViewerKeyMap(),
		width:   width,
		height:  height,
	}

	m.viewport = viewport.New(width, m.paneHeight())
	m.viewport.SetContent(strings.Join(render.StyledLines(b, theme), "\n"))
	m.table = m.createTable()

	return m
}

// createTable builds the per-region table.
func (m *ViewerModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Region", Width: 8},
		{Title: "Start", Width: 12},
		{Title: "Cells", Width: 8},
		{Title: "Characters", Width: 30},
	}

	rows := make([]table.Row, 0, len(m.stats.Details))
	for _, r := range report.RegionTable(m.stats) {
		rows = append(rows, table.Row(r))
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(m.paneHeight()),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

func (m ViewerModel) paneHeight() int {
	return max(1, m.height-chromeHeight)
}

// Init implements tea.Model.
func (m ViewerModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m ViewerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width
		m.viewport.Height = m.paneHeight()
		m.table.SetHeight(m.paneHeight())
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Toggle):
			if m.pane == PaneMap {
				m.pane = PaneRegions
			} else {
				m.pane = PaneMap
			}
			return m, nil
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case m.pane == PaneMap && key.Matches(msg, m.keys.Top):
			m.viewport.GotoTop()
			return m, nil
		case m.pane == PaneMap && key.Matches(msg, m.keys.Bottom):
			m.viewport.GotoBottom()
			return m, nil
		}
	}

	var cmd tea.Cmd
	if m.pane == PaneRegions {
		m.table, cmd = m.table.Update(msg)
	} else {
		m.viewport, cmd = m.viewport.Update(msg)
	}
	return m, cmd
}

// View renders the viewer.
func (m ViewerModel) View() string {
	if m.quitting {
		return ""
	}

	var sb strings.Builder

	label := "map"
	if m.pane == PaneRegions {
		label = fmt.Sprintf("regions (%d)", len(m.stats.Details))
	}
	sb.WriteString(m.theme.Header.Render(m.title))
	sb.WriteString(m.theme.Muted.Render(" - " + label))
	sb.WriteString("\n\n")

	if m.pane == PaneRegions {
		sb.WriteString(m.table.View())
	} else {
		sb.WriteString(m.viewport.View())
	}

	sb.WriteString("\n")
	sb.WriteString(m.summary)
	sb.WriteString("\n")
	sb.WriteString(m.help.View(m.keys))
	return sb.String()
}

// Pane returns the pane currently shown.
func (m ViewerModel) Pane() Pane {
	return m.pane
}

// Quitting reports whether the user asked to leave.
func (m ViewerModel) Quitting() bool {
	return m.quitting
}

// RunViewer starts the Bubble Tea program for the viewer.
func RunViewer(model ViewerModel) error {
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
