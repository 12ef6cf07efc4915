package tiles

import "fmt"

// Size is the edge length of a tile pattern in cells.
const Size = 3

// Pattern is the fixed 3x3 block of cells a tile code expands to.
type Pattern [Size][Size]Cell

// FloorPattern is substituted for tile codes missing from the catalog.
var FloorPattern = Pattern{}

// catalog maps every accepted tile code to its pattern.
// Rows are written top to bottom using the glyph table.
var catalog = map[string]Pattern{
	"1": mustPattern("###", "###", "###"),
	"2": mustPattern("###", "#A#", "###"),
	"3": mustPattern("#.#", "#.#", "#.#"),
	"4": mustPattern("###", "...", "###"),
	"5": mustPattern("#.#", "...", "#.#"),
	"6": mustPattern("###", "#..", "#.#"),
	"7": mustPattern("###", "..#", "#.#"),
	"8": mustPattern("#.#", "#..", "###"),
	"9": mustPattern("#.#", "..#", "###"),

	"a": mustPattern("...", ".A.", "..."),
	"b": mustPattern("...", ".B.", "..."),
	"c": mustPattern("...", ".C.", "..."),
	"d": mustPattern("...", ".D.", "..."),
	"e": mustPattern("...", ".E.", "..."),
	"f": mustPattern("...", ".F.", "..."),

	"A": mustPattern("#.#", ".A.", "#.#"),
	"B": mustPattern("#.#", ".B.", "#.#"),
	"C": mustPattern("#.#", ".C.", "#.#"),
	"D": mustPattern("#.#", ".D.", "#.#"),
	"E": mustPattern("#.#", ".E.", "#.#"),
	"F": mustPattern("#.#", ".F.", "#.#"),
}

// codeOrder is the listing order for Codes.
var codeOrder = []string{
	"1", "2", "3", "4", "5", "6", "7", "8", "9",
	"a", "b", "c", "d", "e", "f",
	"A", "B", "C", "D", "E", "F",
}

// Lookup returns the pattern for a tile code.
// Codes are case-sensitive; "a" and "A" are different tiles.
func Lookup(code string) (Pattern, bool) {
	p, ok := catalog[code]
	return p, ok
}

// Codes returns all accepted tile codes in a stable order.
func Codes() []string {
	out := make([]string, len(codeOrder))
	copy(out, codeOrder)
	return out
}

// ParsePattern builds a pattern from three rows of glyphs.
func ParsePattern(rows ...string) (Pattern, error) {
	var p Pattern
	if len(rows) != Size {
		return p, fmt.Errorf("pattern needs %d rows, got %d", Size, len(rows))
	}
	for y, row := range rows {
		runes := []rune(row)
		if len(runes) != Size {
			return p, fmt.Errorf("pattern row %d: need %d cells, got %d", y, Size, len(runes))
		}
		for x, r := range runes {
			cell, ok := ParseGlyph(r)
			if !ok {
				return p, fmt.Errorf("pattern row %d: unknown glyph %q", y, r)
			}
			p[y][x] = cell
		}
	}
	return p, nil
}

func mustPattern(rows ...string) Pattern {
	p, err := ParsePattern(rows...)
	if err != nil {
		panic(fmt.Sprintf("tiles: %v", err))
	}
	return p
}

// Rows returns the pattern as three glyph strings, top to bottom.
func (p Pattern) Rows() []string {
	rows := make([]string, Size)
	for y := range Size {
		buf := make([]rune, Size)
		for x := range Size {
			buf[x] = p[y][x].Glyph()
		}
		rows[y] = string(buf)
	}
	return rows
}

// CountByCell returns how many cells of each value the pattern holds.
func (p Pattern) CountByCell() map[Cell]int {
	counts := make(map[Cell]int)
	for _, row := range p {
		for _, c := range row {
			counts[c]++
		}
	}
	return counts
}
