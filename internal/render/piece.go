package render

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/vovakirdan/columns/internal/board"
)

// EmitPiece appends three quads for col, bottom jewel first, using the
// padding-free PieceCellToScreen transform. Each jewel keeps its RGB and
// takes alpha as its alpha channel. The layout's padding is ignored.
func EmitPiece(batch *Batch, col board.Column, l Layout, alpha float32) {
	p := col.Position
	for i := 0; i < board.ColumnSize; i++ {
		color := l.jewelColor(col.Jewels[i])
		color[3] = alpha
		EmitQuad(batch, l.PieceOrigin(p), l.TileSize, color)
		p = p.Up()
	}
}

// DrawColumn is EmitPiece with the target, tile size and padding given
// separately.
func DrawColumn(batch *Batch, col board.Column, target, tileSize, padding mgl32.Vec2, alpha float32) {
	EmitPiece(batch, col, Layout{Target: target, TileSize: tileSize, Padding: padding}, alpha)
}
