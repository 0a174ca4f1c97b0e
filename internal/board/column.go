package board

import "github.com/vovakirdan/columns/internal/core"

// ColumnSize is the number of jewels in a column.
const ColumnSize = 3

// Column is a vertical stack of three jewels. Jewels[0] sits at Position,
// each following jewel one row above the previous one.
type Column struct {
	Position core.Coord
	Jewels   [ColumnSize]Jewel
}

// Cells returns the three cells covered by the column, bottom first.
func (c Column) Cells() [ColumnSize]core.Coord {
	var cells [ColumnSize]core.Coord
	p := c.Position
	for i := range cells {
		cells[i] = p
		p = p.Up()
	}
	return cells
}

// Rotate cycles the jewels upward: the top jewel moves to the bottom.
func (c Column) Rotate() Column {
	c.Jewels[0], c.Jewels[1], c.Jewels[2] = c.Jewels[2], c.Jewels[0], c.Jewels[1]
	return c
}

// Moved returns the column shifted by (dx, dy).
func (c Column) Moved(dx, dy int) Column {
	c.Position = c.Position.Add(dx, dy)
	return c
}
