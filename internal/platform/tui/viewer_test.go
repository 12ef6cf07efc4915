package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/labmap/internal/grid"
	"github.com/vovakirdan/labmap/internal/region"
	"github.com/vovakirdan/labmap/internal/render"
)

func newTestViewer(t *testing.T) ViewerModel {
	t.Helper()
	b, invalid := grid.Assemble(grid.Matrix{
		Rows:  2,
		Cols:  2,
		Codes: [][]string{{"2", "a"}, {"5", "B"}},
	})
	require.Empty(t, invalid)
	return NewViewerModel("demo", b, region.Analyze(b), render.DefaultTheme(), 80, 24)
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestViewerShowsMapAndSummary(t *testing.T) {
	m := newTestViewer(t)
	view := ansi.Strip(m.View())

	assert.Contains(t, view, "demo - map")
	assert.Contains(t, view, "#A# .A.")
	assert.Contains(t, view, "Walkable areas: 2")
	assert.Contains(t, view, "Most used character in a single region: A (used 1 times)")
}

func TestViewerToggleRegions(t *testing.T) {
	m := newTestViewer(t)

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Nil(t, cmd)
	m = updated.(ViewerModel)
	assert.Equal(t, PaneRegions, m.Pane())
	assert.Contains(t, ansi.Strip(m.View()), "regions (2)")

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, PaneMap, updated.(ViewerModel).Pane())
}

func TestViewerQuit(t *testing.T) {
	for _, msg := range []tea.KeyMsg{runeKey('q'), {Type: tea.KeyEsc}, {Type: tea.KeyCtrlC}} {
		m := newTestViewer(t)
		updated, cmd := m.Update(msg)
		require.NotNil(t, cmd, "key %q", msg.String())

		_, isQuit := cmd().(tea.QuitMsg)
		assert.True(t, isQuit, "key %q", msg.String())
		assert.True(t, updated.(ViewerModel).Quitting())
		assert.Empty(t, updated.(ViewerModel).View())
	}
}

func TestViewerResize(t *testing.T) {
	m := newTestViewer(t)

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m = updated.(ViewerModel)
	assert.Equal(t, 100, m.viewport.Width)
	assert.Equal(t, 40-chromeHeight, m.viewport.Height)

	updated, _ = m.Update(tea.WindowSizeMsg{Width: 10, Height: 2})
	assert.Equal(t, 1, updated.(ViewerModel).viewport.Height)
}

func TestViewerHelpToggle(t *testing.T) {
	m := newTestViewer(t)
	assert.False(t, m.help.ShowAll)

	updated, _ := m.Update(runeKey('?'))
	assert.True(t, updated.(ViewerModel).help.ShowAll)
}

func TestViewerKeyMapHelp(t *testing.T) {
	keys := DefaultViewerKeyMap()
	assert.Len(t, keys.ShortHelp(), 5)
	assert.Len(t, keys.FullHelp(), 3)
}
