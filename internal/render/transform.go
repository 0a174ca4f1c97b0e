package render

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/vovakirdan/columns/internal/board"
	"github.com/vovakirdan/columns/internal/core"
)

// Layout places the board grid in screen space.
type Layout struct {
	// Target is the screen-space origin of cell (0, 0) before padding.
	Target mgl32.Vec2
	// TileSize is the size of one jewel quad.
	TileSize mgl32.Vec2
	// Padding is the gap placed before every tile along both axes.
	Padding mgl32.Vec2
	// Palette overrides the default jewel colors when non-nil.
	Palette *board.Palette
}

// jewelColor looks up the display color of j under the layout's palette.
func (l Layout) jewelColor(j board.Jewel) mgl32.Vec4 {
	if l.Palette == nil {
		return j.Color()
	}
	return j.ColorIn(*l.Palette)
}

// CellToScreen maps a board cell to the screen origin of its tile.
// A padding margin precedes every tile, including the first row and column:
//
//	origin[i] = cell[i]*(tileSize[i]+padding[i]) + padding[i] + target[i]
func CellToScreen(cell core.Coord, target, tileSize, padding mgl32.Vec2) mgl32.Vec2 {
	// The float32 conversions round each product before the adds (no FMA).
	return mgl32.Vec2{
		float32(float32(cell.X)*(tileSize[0]+padding[0])) + padding[0] + target[0],
		float32(float32(cell.Y)*(tileSize[1]+padding[1])) + padding[1] + target[1],
	}
}

// PieceCellToScreen is the padding-free mapping used for free-standing
// columns (the next-piece preview):
//
//	origin[i] = target[i] + cell[i]*tileSize[i]
//
// It deliberately differs from CellToScreen; a piece drawn with it does not
// line up with the padded board grid.
func PieceCellToScreen(cell core.Coord, target, tileSize mgl32.Vec2) mgl32.Vec2 {
	return mgl32.Vec2{
		target[0] + float32(float32(cell.X)*tileSize[0]),
		target[1] + float32(float32(cell.Y)*tileSize[1]),
	}
}

// CellOrigin is CellToScreen with the layout's parameters.
func (l Layout) CellOrigin(cell core.Coord) mgl32.Vec2 {
	return CellToScreen(cell, l.Target, l.TileSize, l.Padding)
}

// PieceOrigin is PieceCellToScreen with the layout's parameters.
func (l Layout) PieceOrigin(cell core.Coord) mgl32.Vec2 {
	return PieceCellToScreen(cell, l.Target, l.TileSize)
}
