package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/labmap/internal/grid"
	"github.com/vovakirdan/labmap/internal/tiles"
)

func TestAssembleDimensionsAndPatterns(t *testing.T) {
	m := grid.Matrix{
		Rows: 2,
		Cols: 3,
		Codes: [][]string{
			{"1", "2", "a"},
			{"A", "5", "9"},
		},
	}

	b, invalid := grid.Assemble(m)
	require.Empty(t, invalid)
	assert.Equal(t, 9, b.W)
	assert.Equal(t, 6, b.H)
	assert.Len(t, b.Cells, 54)

	for i := 0; i < m.Rows; i++ {
		for j := 0; j < m.Cols; j++ {
			p, ok := tiles.Lookup(m.Codes[i][j])
			require.True(t, ok)
			for dy := 0; dy < 3; dy++ {
				for dx := 0; dx < 3; dx++ {
					c := grid.C(j*3+dx, i*3+dy)
					assert.Equal(t, p[dy][dx], b.Get(c), "tile (%d,%d) cell %v", i, j, c)
				}
			}
		}
	}
}

func TestAssembleInvalidCodeBecomesFloor(t *testing.T) {
	m := grid.Matrix{
		Rows:  1,
		Cols:  2,
		Codes: [][]string{{"1", "z"}},
	}

	b, invalid := grid.Assemble(m)
	require.Len(t, invalid, 1)
	assert.Equal(t, grid.InvalidTile{Row: 0, Col: 1, Code: "z"}, invalid[0])
	assert.Contains(t, invalid[0].String(), `"z"`)

	for y := 0; y < 3; y++ {
		for x := 3; x < 6; x++ {
			assert.Equal(t, tiles.CellFloor, b.Get(grid.C(x, y)))
		}
	}
}

func TestAssembleShortRowReportsMissingCodes(t *testing.T) {
	m := grid.Matrix{
		Rows: 2,
		Cols: 2,
		Codes: [][]string{
			{"1", "1"},
			{"1"},
		},
	}

	b, invalid := grid.Assemble(m)
	require.Len(t, invalid, 1)
	assert.Equal(t, grid.InvalidTile{Row: 1, Col: 1, Code: ""}, invalid[0])
	assert.Contains(t, invalid[0].String(), "missing")
	assert.Equal(t, tiles.CellFloor, b.Get(grid.C(4, 4)))
}

func TestAssembleLongRowIgnoresExtraCodes(t *testing.T) {
	m := grid.Matrix{
		Rows:  1,
		Cols:  1,
		Codes: [][]string{{"1", "zzz"}},
	}

	b, invalid := grid.Assemble(m)
	assert.Empty(t, invalid)
	assert.Equal(t, 3, b.W)
}

func TestAssembleReportsInScanOrder(t *testing.T) {
	m := grid.Matrix{
		Rows: 2,
		Cols: 2,
		Codes: [][]string{
			{"x", "1"},
			{"y", "z"},
		},
	}

	_, invalid := grid.Assemble(m)
	require.Len(t, invalid, 3)
	assert.Equal(t, "x", invalid[0].Code)
	assert.Equal(t, "y", invalid[1].Code)
	assert.Equal(t, "z", invalid[2].Code)
}

func TestAssembleEmptyMatrix(t *testing.T) {
	b, invalid := grid.Assemble(grid.Matrix{})
	assert.Empty(t, invalid)
	assert.Equal(t, 0, b.W)
	assert.Equal(t, 0, b.H)
	assert.Empty(t, b.Cells)
}

func TestTileAt(t *testing.T) {
	row, col := grid.TileAt(grid.C(7, 2))
	assert.Equal(t, 0, row)
	assert.Equal(t, 2, col)
}
