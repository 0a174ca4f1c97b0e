package core

import "fmt"

// Coord is a cell coordinate on the board.
// X increases to the right, Y increases upward (row 0 is the floor of the well).
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

// Up returns the coordinate one row above.
func (c Coord) Up() Coord {
	return c.Add(0, 1)
}

// Right returns the coordinate one column to the right.
func (c Coord) Right() Coord {
	return c.Add(1, 0)
}
