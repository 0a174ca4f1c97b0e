package board

import (
	"strings"

	"github.com/vovakirdan/columns/internal/core"
)

// Board is the well of settled jewels.
// Cells are stored column-major: index = x*H + y, with y = 0 at the floor.
type Board struct {
	w, h   int
	filled []bool
	jewels []Jewel
}

// New creates an empty board with the given dimensions.
func New(w, h int) *Board {
	return &Board{
		w:      w,
		h:      h,
		filled: make([]bool, w*h),
		jewels: make([]Jewel, w*h),
	}
}

// Width returns the number of columns.
func (b *Board) Width() int {
	return b.w
}

// Height returns the number of rows.
func (b *Board) Height() int {
	return b.h
}

func (b *Board) index(c core.Coord) int {
	return c.X*b.h + c.Y
}

// InBounds returns true if the coordinate is inside the well.
func (b *Board) InBounds(c core.Coord) bool {
	return c.X >= 0 && c.X < b.w && c.Y >= 0 && c.Y < b.h
}

// At returns the jewel at c and whether the cell is occupied.
// Out-of-bounds cells are reported as empty.
func (b *Board) At(c core.Coord) (Jewel, bool) {
	if !b.InBounds(c) {
		return 0, false
	}
	i := b.index(c)
	return b.jewels[i], b.filled[i]
}

// Occupied reports whether c holds a jewel.
func (b *Board) Occupied(c core.Coord) bool {
	_, ok := b.At(c)
	return ok
}

// Set places a jewel at c.
func (b *Board) Set(c core.Coord, j Jewel) {
	if b.InBounds(c) {
		i := b.index(c)
		b.jewels[i] = j
		b.filled[i] = true
	}
}

// Remove clears the cell at c.
func (b *Board) Remove(c core.Coord) {
	if b.InBounds(c) {
		b.filled[b.index(c)] = false
	}
}

// Count returns the number of occupied cells.
func (b *Board) Count() int {
	n := 0
	for _, f := range b.filled {
		if f {
			n++
		}
	}
	return n
}

// Collapse lets every jewel fall to the lowest free cell of its column.
// Returns true if anything moved.
func (b *Board) Collapse() bool {
	moved := false
	for x := 0; x < b.w; x++ {
		dst := 0
		for y := 0; y < b.h; y++ {
			j, ok := b.At(core.C(x, y))
			if !ok {
				continue
			}
			if y != dst {
				b.Remove(core.C(x, y))
				b.Set(core.C(x, dst), j)
				moved = true
			}
			dst++
		}
	}
	return moved
}

// String renders the board top row first, '.' for empty cells.
func (b *Board) String() string {
	var sb strings.Builder
	for y := b.h - 1; y >= 0; y-- {
		for x := 0; x < b.w; x++ {
			if j, ok := b.At(core.C(x, y)); ok {
				sb.WriteRune(j.Char())
			} else {
				sb.WriteRune('.')
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// Parse builds a board from rows written top row first, as produced by String.
// Unknown characters are treated as empty cells.
func Parse(rows ...string) *Board {
	h := len(rows)
	w := 0
	for _, r := range rows {
		w = max(w, len(r))
	}
	b := New(w, h)
	for i, r := range rows {
		y := h - 1 - i
		for x, ch := range r {
			if j, ok := ParseJewel(string(ch)); ok {
				b.Set(core.C(x, y), j)
			}
		}
	}
	return b
}
