// Package grid expands a matrix of tile codes into the cell bitmap used for
// rendering and region analysis.
package grid

import "github.com/vovakirdan/labmap/internal/tiles"

// Matrix is the rectangular tile-code input: Rows x Cols codes, row-major.
// Rows shorter than Cols are tolerated; missing codes are treated as invalid.
type Matrix struct {
	Rows  int
	Cols  int
	Codes [][]string
}

// Code returns the tile code at (row, col), or "" if the row is too short.
func (m Matrix) Code(row, col int) string {
	if row < 0 || row >= len(m.Codes) || col < 0 || col >= len(m.Codes[row]) {
		return ""
	}
	return m.Codes[row][col]
}

// Bitmap is the expanded cell grid.
// Cells are stored in row-major order: index = y*W + x.
type Bitmap struct {
	W     int          // Width in cells (3 * Matrix.Cols)
	H     int          // Height in cells (3 * Matrix.Rows)
	Cells []tiles.Cell // Flat array of cells, length W*H
}

// NewBitmap creates an all-floor bitmap with the given dimensions.
func NewBitmap(w, h int) *Bitmap {
	return &Bitmap{
		W:     w,
		H:     h,
		Cells: make([]tiles.Cell, w*h),
	}
}

// FromRows builds a bitmap from rows of glyphs. Unknown glyphs become floor.
// Rows are padded with floor to the longest row.
func FromRows(rows ...string) *Bitmap {
	w := 0
	for _, row := range rows {
		w = max(w, len([]rune(row)))
	}
	b := NewBitmap(w, len(rows))
	for y, row := range rows {
		for x, r := range []rune(row) {
			cell, _ := tiles.ParseGlyph(r)
			b.Set(C(x, y), cell)
		}
	}
	return b
}

// index converts a coordinate to a flat array index.
func (b *Bitmap) index(c Coord) int {
	return c.Y*b.W + c.X
}

// InBounds returns true if the coordinate is within the bitmap.
func (b *Bitmap) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < b.W && c.Y >= 0 && c.Y < b.H
}

// Get returns the cell at the given coordinate.
// Out-of-bounds coordinates read as wall so they never join a region.
func (b *Bitmap) Get(c Coord) tiles.Cell {
	if !b.InBounds(c) {
		return tiles.CellWall
	}
	return b.Cells[b.index(c)]
}

// Set sets the cell at the given coordinate.
func (b *Bitmap) Set(c Coord, cell tiles.Cell) {
	if b.InBounds(c) {
		b.Cells[b.index(c)] = cell
	}
}

// Clone returns a deep copy of the bitmap.
func (b *Bitmap) Clone() *Bitmap {
	cells := make([]tiles.Cell, len(b.Cells))
	copy(cells, b.Cells)
	return &Bitmap{
		W:     b.W,
		H:     b.H,
		Cells: cells,
	}
}

// Equal returns true if two bitmaps have the same dimensions and contents.
func (b *Bitmap) Equal(other *Bitmap) bool {
	if b.W != other.W || b.H != other.H {
		return false
	}
	for i, cell := range b.Cells {
		if cell != other.Cells[i] {
			return false
		}
	}
	return true
}

// CountByCell returns the number of cells holding each value.
func (b *Bitmap) CountByCell() map[tiles.Cell]int {
	counts := make(map[tiles.Cell]int)
	for _, cell := range b.Cells {
		counts[cell]++
	}
	return counts
}

// TileAt returns the tile-matrix position that owns a bitmap coordinate.
func TileAt(c Coord) (row, col int) {
	return c.Y / tiles.Size, c.X / tiles.Size
}
