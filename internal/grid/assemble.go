package grid

import (
	"fmt"

	"github.com/vovakirdan/labmap/internal/tiles"
)

// InvalidTile records a tile code that is not in the catalog.
// The tile's block is filled with floor instead.
type InvalidTile struct {
	Row  int
	Col  int
	Code string
}

func (t InvalidTile) String() string {
	if t.Code == "" {
		return fmt.Sprintf("missing tile code at row %d, col %d", t.Row, t.Col)
	}
	return fmt.Sprintf("invalid tile code %q at row %d, col %d", t.Code, t.Row, t.Col)
}

// Assemble expands every tile of m into its 3x3 pattern.
// The bitmap is always (3*Rows) x (3*Cols). Unknown or missing codes never
// fail the call; they are reported in scan order and expand to all floor.
// Codes beyond Cols in a long row are ignored.
func Assemble(m Matrix) (*Bitmap, []InvalidTile) {
	b := NewBitmap(m.Cols*tiles.Size, m.Rows*tiles.Size)
	var invalid []InvalidTile

	for i := 0; i < m.Rows; i++ {
		for j := 0; j < m.Cols; j++ {
			code := m.Code(i, j)
			pattern, ok := tiles.Lookup(code)
			if !ok {
				invalid = append(invalid, InvalidTile{Row: i, Col: j, Code: code})
				pattern = tiles.FloorPattern
			}
			b.placePattern(i, j, pattern)
		}
	}

	return b, invalid
}

// placePattern copies p into the block owned by tile (row, col).
func (b *Bitmap) placePattern(row, col int, p tiles.Pattern) {
	origin := C(col*tiles.Size, row*tiles.Size)
	for dy := range tiles.Size {
		for dx := range tiles.Size {
			b.Set(origin.Add(dx, dy), p[dy][dx])
		}
	}
}
