package render_test

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/labmap/internal/grid"
	"github.com/vovakirdan/labmap/internal/render"
	"github.com/vovakirdan/labmap/internal/tiles"
)

func assemble(t *testing.T, rows ...[]string) *grid.Bitmap {
	t.Helper()
	b, _ := grid.Assemble(grid.Matrix{Rows: len(rows), Cols: len(rows[0]), Codes: rows})
	return b
}

func TestLinesGroupsByTile(t *testing.T) {
	b := assemble(t,
		[]string{"2", "a"},
		[]string{"z", "5"},
	)

	expected := []string{
		"### ...",
		"#A# .A.",
		"### ...",
		"... #.#",
		"... ...",
		"... #.#",
	}
	assert.Equal(t, expected, render.Lines(b))
}

func TestLinesHaveNoTrailingSeparator(t *testing.T) {
	b := assemble(t, []string{"1", "1", "1"})
	for _, line := range render.Lines(b) {
		assert.False(t, strings.HasSuffix(line, " "), "line %q has trailing space", line)
		assert.Len(t, line, 11)
	}
}

func TestLinesPartialGroup(t *testing.T) {
	b := grid.FromRows("#.#.")
	assert.Equal(t, []string{"#.# ."}, render.Lines(b))
}

func TestASCII(t *testing.T) {
	b := assemble(t, []string{"F"})
	assert.Equal(t, "#.#\n.F.\n#.#\n", render.ASCII(b))
	assert.Equal(t, "", render.ASCII(grid.NewBitmap(0, 0)))
}

func TestStyledMatchesPlainLayout(t *testing.T) {
	b := assemble(t,
		[]string{"A", "b", "3"},
		[]string{"7", "8", "q"},
	)

	for _, name := range render.ThemeNames() {
		theme, ok := render.ThemeByName(name)
		require.True(t, ok)
		assert.Equal(t, render.ASCII(b), ansi.Strip(render.Styled(b, theme)), "theme %s", name)
	}
}

func TestThemeByName(t *testing.T) {
	theme, ok := render.ThemeByName("mono")
	require.True(t, ok)
	assert.Equal(t, "mono", theme.Name)

	_, ok = render.ThemeByName("neon")
	assert.False(t, ok)

	assert.Equal(t, []string{"default", "mono"}, render.ThemeNames())
}

func TestThemeStyleCoversAllCells(t *testing.T) {
	theme := render.DefaultTheme()
	for c := tiles.CellFloor; c < tiles.CellCount; c++ {
		out := ansi.Strip(theme.Style(c).Render(c.String()))
		assert.Equal(t, c.String(), out)
	}
}
