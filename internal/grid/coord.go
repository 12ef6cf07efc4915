package grid

import "fmt"

// Coord is a position in the bitmap.
// X increases to the right, Y increases downward.
type Coord struct {
	X int
	Y int
}

// C is a convenience constructor for Coord.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Add returns a new Coord offset by (dx, dy).
func (c Coord) Add(dx, dy int) Coord {
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// Neighbors4 returns the orthogonal neighbours in down, up, right, left order.
// Out-of-bounds coordinates are included; callers filter with InBounds.
func (c Coord) Neighbors4() [4]Coord {
	return [4]Coord{
		c.Add(0, 1),
		c.Add(0, -1),
		c.Add(1, 0),
		c.Add(-1, 0),
	}
}
