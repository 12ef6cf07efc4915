// Package tiles defines bitmap cell values and the fixed catalog of 3x3 tile
// patterns. It has no dependencies outside the standard library.
package tiles

// Cell is a single bitmap cell value.
type Cell uint8

const (
	CellFloor Cell = iota // walkable, never counted
	CellWall              // blocks movement
	CellA
	CellB
	CellC
	CellD
	CellE
	CellF
	CellCount // Sentinel value for iteration
)

// Walkable returns true for every cell that is not a wall.
func (c Cell) Walkable() bool {
	return c != CellWall
}

// IsCharacter returns true for the counted character classes A..F.
func (c Cell) IsCharacter() bool {
	return c >= CellA && c <= CellF
}

// Glyph returns the display rune for the cell.
func (c Cell) Glyph() rune {
	switch c {
	case CellFloor:
		return '.'
	case CellWall:
		return '#'
	case CellA:
		return 'A'
	case CellB:
		return 'B'
	case CellC:
		return 'C'
	case CellD:
		return 'D'
	case CellE:
		return 'E'
	case CellF:
		return 'F'
	default:
		return '?'
	}
}

// String returns the glyph as a string.
func (c Cell) String() string {
	return string(c.Glyph())
}

// ParseGlyph converts a display rune back to a Cell.
// Returns CellFloor and false if the rune is not in the glyph table.
func ParseGlyph(r rune) (Cell, bool) {
	for c := CellFloor; c < CellCount; c++ {
		if c.Glyph() == r {
			return c, true
		}
	}
	return CellFloor, false
}

// Characters returns the character classes in ascending order.
func Characters() []Cell {
	return []Cell{CellA, CellB, CellC, CellD, CellE, CellF}
}
