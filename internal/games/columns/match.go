package columns

import (
	"github.com/vovakirdan/columns/internal/board"
	"github.com/vovakirdan/columns/internal/core"
	"github.com/vovakirdan/columns/internal/render"
)

// MinRun is the shortest line of equal jewels that clears.
const MinRun = 3

// directions scanned for runs: horizontal, vertical and both diagonals.
var directions = [4]core.Coord{
	{X: 1, Y: 0},
	{X: 0, Y: 1},
	{X: 1, Y: 1},
	{X: 1, Y: -1},
}

// FindMatches returns every cell that belongs to a run of at least MinRun
// equal jewels in any direction. A cell can belong to several runs.
func FindMatches(b *board.Board) render.MatchSet {
	matches := render.NewMatchSet()

	for x := 0; x < b.Width(); x++ {
		for y := 0; y < b.Height(); y++ {
			start := core.C(x, y)
			j, ok := b.At(start)
			if !ok {
				continue
			}
			for _, d := range directions {
				// only count from the first cell of a run
				if prev, ok := b.At(start.Add(-d.X, -d.Y)); ok && prev == j {
					continue
				}
				n := 1
				for {
					next, ok := b.At(start.Add(d.X*n, d.Y*n))
					if !ok || next != j {
						break
					}
					n++
				}
				if n < MinRun {
					continue
				}
				for i := 0; i < n; i++ {
					matches.Add(start.Add(d.X*i, d.Y*i))
				}
			}
		}
	}

	return matches
}

// ClearMatches removes every matched cell from b and returns how many were removed.
func ClearMatches(b *board.Board, matches render.MatchSet) int {
	n := 0
	for c := range matches {
		if b.Occupied(c) {
			b.Remove(c)
			n++
		}
	}
	return n
}

// FadeWave builds the per-cell fade table for tick t of a fade lasting
// fadeTicks per cell. Cells start fading stagger ticks apart, ordered by
// anti-diagonal from the bottom-left, so the clear sweeps across the well.
// Fractions are kept in [0, 1].
func FadeWave(matches render.MatchSet, t, fadeTicks, stagger int) []render.FadeEntry {
	cells := matches.Cells()
	if len(cells) == 0 {
		return nil
	}

	first := cells[0].X + cells[0].Y
	for _, c := range cells {
		first = min(first, c.X+c.Y)
	}

	table := make([]render.FadeEntry, 0, len(cells))
	for _, c := range cells {
		delay := (c.X + c.Y - first) * stagger
		table = append(table, render.FadeEntry{
			Cell:     c,
			Fraction: fadeFraction(t-delay, fadeTicks),
		})
	}
	return table
}

// FadeWaveDuration is the number of ticks until the last cell of the wave is gray.
func FadeWaveDuration(matches render.MatchSet, fadeTicks, stagger int) int {
	cells := matches.Cells()
	if len(cells) == 0 {
		return 0
	}
	lo, hi := cells[0].X+cells[0].Y, cells[0].X+cells[0].Y
	for _, c := range cells {
		lo = min(lo, c.X+c.Y)
		hi = max(hi, c.X+c.Y)
	}
	return (hi-lo)*stagger + fadeTicks
}

// fadeFraction is 1 before the fade starts and 0 once it is done.
func fadeFraction(elapsed, fadeTicks int) float32 {
	if elapsed <= 0 {
		return 1
	}
	if fadeTicks <= 0 || elapsed >= fadeTicks {
		return 0
	}
	return 1 - float32(elapsed)/float32(fadeTicks)
}
