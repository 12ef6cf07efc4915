// Package render turns a bitmap back into display text, either as plain
// glyphs or with lipgloss styles per cell class.
package render

import (
	"strings"

	"github.com/vovakirdan/labmap/internal/grid"
	"github.com/vovakirdan/labmap/internal/tiles"
)

// GroupSeparator separates the 3-cell groups of adjacent tiles in a line.
const GroupSeparator = " "

// Lines renders the bitmap as one string per row.
// Cells are grouped by tile column (3 cells) and groups are joined with a
// single space, without a trailing separator.
func Lines(b *grid.Bitmap) []string {
	return lines(b, func(c tiles.Cell) string { return string(c.Glyph()) })
}

// ASCII renders the bitmap as newline-terminated lines.
func ASCII(b *grid.Bitmap) string {
	return join(Lines(b))
}

// lines walks the bitmap row by row and lets cell decide how each cell is drawn.
func lines(b *grid.Bitmap, cell func(tiles.Cell) string) []string {
	out := make([]string, 0, b.H)
	var sb strings.Builder
	for y := 0; y < b.H; y++ {
		sb.Reset()
		for x := 0; x < b.W; x++ {
			if x > 0 && x%tiles.Size == 0 {
				sb.WriteString(GroupSeparator)
			}
			sb.WriteString(cell(b.Get(grid.C(x, y))))
		}
		out = append(out, sb.String())
	}
	return out
}

func join(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}
