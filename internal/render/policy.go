package render

import "github.com/vovakirdan/columns/internal/core"

// CellPolicy selects how occupied board cells are colored. The variants are
// Plain, Highlighted, GlobalFade and PerCellFade; exactly one applies to a
// tessellation call.
type CellPolicy interface {
	isCellPolicy()
}

// Plain draws every jewel in its own color.
type Plain struct{}

// Highlighted draws matched cells as opaque white.
type Highlighted struct {
	Matches MatchSet
}

// GlobalFade draws matched cells in their own color with alpha replaced by Alpha.
type GlobalFade struct {
	Matches MatchSet
	Alpha   float32
}

// PerCellFade blends listed cells toward gray by their own fraction.
// The first entry for a cell wins.
type PerCellFade struct {
	Table []FadeEntry
}

func (Plain) isCellPolicy()       {}
func (Highlighted) isCellPolicy() {}
func (GlobalFade) isCellPolicy()  {}
func (PerCellFade) isCellPolicy() {}

// MatchSet is a set of board cells.
type MatchSet map[core.Coord]struct{}

// NewMatchSet builds a set from the given cells.
func NewMatchSet(cells ...core.Coord) MatchSet {
	m := make(MatchSet, len(cells))
	for _, c := range cells {
		m[c] = struct{}{}
	}
	return m
}

// Contains reports whether c is in the set. A nil set is empty.
func (m MatchSet) Contains(c core.Coord) bool {
	_, ok := m[c]
	return ok
}

// Add inserts c into the set.
func (m MatchSet) Add(c core.Coord) {
	m[c] = struct{}{}
}

// Cells returns the members sorted by column, then row.
func (m MatchSet) Cells() []core.Coord {
	out := make([]core.Coord, 0, len(m))
	for c := range m {
		out = append(out, c)
	}
	sortCoords(out)
	return out
}

// FadeEntry pairs a cell with its fade fraction: 1 is the jewel's own color,
// 0 is fully gray.
type FadeEntry struct {
	Cell     core.Coord
	Fraction float32
}

// lookupFade scans the table in order and returns the first fraction for c.
func lookupFade(table []FadeEntry, c core.Coord) (float32, bool) {
	for _, e := range table {
		if e.Cell == c {
			return e.Fraction, true
		}
	}
	return 0, false
}
