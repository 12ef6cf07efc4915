package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/labmap/internal/grid"
	"github.com/vovakirdan/labmap/internal/tiles"
)

func TestBitmapInBounds(t *testing.T) {
	b := grid.NewBitmap(3, 2)

	testCases := []struct {
		coord    grid.Coord
		expected bool
	}{
		{grid.C(0, 0), true},
		{grid.C(2, 1), true},
		{grid.C(-1, 0), false},
		{grid.C(0, -1), false},
		{grid.C(3, 0), false},
		{grid.C(0, 2), false},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, b.InBounds(tc.coord), "InBounds(%v)", tc.coord)
	}
}

func TestBitmapOutOfBoundsReadsWall(t *testing.T) {
	b := grid.NewBitmap(1, 1)
	assert.Equal(t, tiles.CellFloor, b.Get(grid.C(0, 0)))
	assert.Equal(t, tiles.CellWall, b.Get(grid.C(1, 0)))

	// Writes outside the bitmap are ignored.
	b.Set(grid.C(5, 5), tiles.CellA)
	assert.Equal(t, map[tiles.Cell]int{tiles.CellFloor: 1}, b.CountByCell())
}

func TestBitmapFromRows(t *testing.T) {
	b := grid.FromRows(
		"#A",
		".",
	)
	assert.Equal(t, 2, b.W)
	assert.Equal(t, 2, b.H)
	assert.Equal(t, tiles.CellWall, b.Get(grid.C(0, 0)))
	assert.Equal(t, tiles.CellA, b.Get(grid.C(1, 0)))
	assert.Equal(t, tiles.CellFloor, b.Get(grid.C(1, 1)))
}

func TestBitmapCloneIsIndependent(t *testing.T) {
	b := grid.FromRows("..", "..")
	clone := b.Clone()
	assert.True(t, b.Equal(clone))

	b.Set(grid.C(0, 0), tiles.CellWall)
	assert.False(t, b.Equal(clone))
	assert.Equal(t, tiles.CellFloor, clone.Get(grid.C(0, 0)))
}

func TestBitmapEqualDimensions(t *testing.T) {
	assert.False(t, grid.NewBitmap(2, 1).Equal(grid.NewBitmap(1, 2)))
}

func TestCoordNeighbors4(t *testing.T) {
	n := grid.C(1, 1).Neighbors4()
	assert.ElementsMatch(t, []grid.Coord{
		grid.C(1, 2), grid.C(1, 0), grid.C(2, 1), grid.C(0, 1),
	}, n[:])
	assert.Equal(t, "(1,1)", grid.C(1, 1).String())
}
