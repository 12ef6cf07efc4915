package tiles_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/labmap/internal/tiles"
)

func TestLookupKnownCodes(t *testing.T) {
	testCases := []struct {
		code string
		rows []string
	}{
		{"1", []string{"###", "###", "###"}},
		{"2", []string{"###", "#A#", "###"}},
		{"5", []string{"#.#", "...", "#.#"}},
		{"8", []string{"#.#", "#..", "###"}},
		{"9", []string{"#.#", "..#", "###"}},
		{"a", []string{"...", ".A.", "..."}},
		{"f", []string{"...", ".F.", "..."}},
		{"A", []string{"#.#", ".A.", "#.#"}},
		{"E", []string{"#.#", ".E.", "#.#"}},
	}

	for _, tc := range testCases {
		t.Run(tc.code, func(t *testing.T) {
			p, ok := tiles.Lookup(tc.code)
			require.True(t, ok, "code %q should be in the catalog", tc.code)
			assert.Equal(t, tc.rows, p.Rows())
		})
	}
}

func TestLookupUnknownCodes(t *testing.T) {
	for _, code := range []string{"", "0", "10", "g", "G", "z", "##", " 1"} {
		_, ok := tiles.Lookup(code)
		assert.False(t, ok, "code %q should not be in the catalog", code)
	}
}

func TestLookupIsCaseSensitive(t *testing.T) {
	lower, ok := tiles.Lookup("c")
	require.True(t, ok)
	upper, ok := tiles.Lookup("C")
	require.True(t, ok)
	assert.NotEqual(t, lower, upper)
}

func TestCodesCoverCatalog(t *testing.T) {
	codes := tiles.Codes()
	assert.Len(t, codes, 21)

	seen := make(map[string]bool)
	for _, code := range codes {
		assert.False(t, seen[code], "duplicate code %q", code)
		seen[code] = true

		_, ok := tiles.Lookup(code)
		assert.True(t, ok, "listed code %q missing from catalog", code)
	}

	// Callers must not be able to mutate the listing.
	codes[0] = "x"
	assert.Equal(t, "1", tiles.Codes()[0])
}

func TestPatternsUseOnlyGlyphTableValues(t *testing.T) {
	for _, code := range tiles.Codes() {
		p, _ := tiles.Lookup(code)
		for c := range p.CountByCell() {
			assert.Less(t, c, tiles.CellCount, "code %q has out-of-range cell %d", code, c)
		}
	}
}

func TestParsePatternErrors(t *testing.T) {
	_, err := tiles.ParsePattern("###", "###")
	assert.Error(t, err)

	_, err = tiles.ParsePattern("###", "##", "###")
	assert.Error(t, err)

	_, err = tiles.ParsePattern("###", "#x#", "###")
	assert.Error(t, err)
}

func TestCellProperties(t *testing.T) {
	assert.True(t, tiles.CellFloor.Walkable())
	assert.False(t, tiles.CellWall.Walkable())
	assert.False(t, tiles.CellFloor.IsCharacter())
	assert.False(t, tiles.CellWall.IsCharacter())

	for _, c := range tiles.Characters() {
		assert.True(t, c.Walkable())
		assert.True(t, c.IsCharacter())
	}

	assert.Equal(t, '?', tiles.Cell(9).Glyph())
	assert.Equal(t, "#", tiles.CellWall.String())
}

func TestParseGlyphRoundTrip(t *testing.T) {
	for c := tiles.CellFloor; c < tiles.CellCount; c++ {
		got, ok := tiles.ParseGlyph(c.Glyph())
		require.True(t, ok)
		assert.Equal(t, c, got)
	}

	_, ok := tiles.ParseGlyph('x')
	assert.False(t, ok)
}
