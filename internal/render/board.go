package render

import (
	"fmt"
	"slices"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/vovakirdan/columns/internal/board"
	"github.com/vovakirdan/columns/internal/core"
)

// TessellateBoard appends one quad per occupied cell of b, colored according
// to policy, followed by three quads for the falling column when it is not nil.
// The falling column always uses the board transform and plain jewel colors.
// A nil policy is treated as Plain.
func TessellateBoard(batch *Batch, b *board.Board, falling *board.Column, policy CellPolicy, l Layout) {
	if policy == nil {
		policy = Plain{}
	}

	for x := 0; x < b.Width(); x++ {
		for y := 0; y < b.Height(); y++ {
			cell := core.C(x, y)
			jewel, ok := b.At(cell)
			if !ok {
				continue
			}
			EmitQuad(batch, l.CellOrigin(cell), l.TileSize, cellColor(policy, cell, jewel, l))
		}
	}

	if falling != nil {
		p := falling.Position
		for i := 0; i < board.ColumnSize; i++ {
			EmitQuad(batch, l.CellOrigin(p), l.TileSize, l.jewelColor(falling.Jewels[i]))
			p = p.Up()
		}
	}
}

// cellColor resolves the quad color of an occupied cell under policy.
func cellColor(policy CellPolicy, cell core.Coord, jewel board.Jewel, l Layout) mgl32.Vec4 {
	switch p := policy.(type) {
	case Plain:
		return l.jewelColor(jewel)
	case Highlighted:
		if p.Matches.Contains(cell) {
			return White
		}
		return l.jewelColor(jewel)
	case GlobalFade:
		c := l.jewelColor(jewel)
		if p.Matches.Contains(cell) {
			c[3] = p.Alpha
		}
		return c
	case PerCellFade:
		c := l.jewelColor(jewel)
		if f, ok := lookupFade(p.Table, cell); ok {
			return FadeColor(c, f)
		}
		return c
	default:
		panic(fmt.Sprintf("render: unknown cell policy %T", policy))
	}
}

// FadeColor blends the RGB of c toward neutral gray with weight fraction on
// the jewel color and forces alpha to 1. Fractions below 0 are clamped to
// 0; fractions above 1 are not clamped and overshoot past the jewel color.
func FadeColor(c mgl32.Vec4, fraction float32) mgl32.Vec4 {
	if fraction < 0 {
		fraction = 0
	}
	keep := fraction
	gray := 1 - fraction
	return mgl32.Vec4{
		float32(fadeGray[0]*gray) + float32(c[0]*keep),
		float32(fadeGray[1]*gray) + float32(c[1]*keep),
		float32(fadeGray[2]*gray) + float32(c[2]*keep),
		1,
	}
}

// DrawBoard tessellates the board with plain colors plus the optional falling column.
func DrawBoard(batch *Batch, b *board.Board, falling *board.Column, l Layout) {
	TessellateBoard(batch, b, falling, Plain{}, l)
}

// DrawBoardHighlightMatches draws matched cells as flat white.
func DrawBoardHighlightMatches(batch *Batch, b *board.Board, matches MatchSet, l Layout) {
	TessellateBoard(batch, b, nil, Highlighted{Matches: matches}, l)
}

// DrawBoardFadeMatches draws matched cells with their alpha set to alpha.
func DrawBoardFadeMatches(batch *Batch, b *board.Board, matches MatchSet, alpha float32, l Layout) {
	TessellateBoard(batch, b, nil, GlobalFade{Matches: matches, Alpha: alpha}, l)
}

// DrawBoardAllFading blends every listed cell toward gray by its own fraction.
func DrawBoardAllFading(batch *Batch, b *board.Board, fading []FadeEntry, l Layout) {
	TessellateBoard(batch, b, nil, PerCellFade{Table: fading}, l)
}

// sortCoords orders cells by column, then row: the order of the board walk.
func sortCoords(cells []core.Coord) {
	slices.SortFunc(cells, func(a, b core.Coord) int {
		if a.X != b.X {
			return a.X - b.X
		}
		return a.Y - b.Y
	})
}
