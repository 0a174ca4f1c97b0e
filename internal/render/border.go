package render

import "github.com/vovakirdan/columns/internal/core"

// BuildBorder tessellates the outline of a w×h well: a wall column at x = -1
// and x = w, and a floor row at y = -1, placed with the board transform so
// the walls sit flush with the padded grid.
func BuildBorder(l Layout, w, h int) Batch {
	var batch Batch
	for y := -1; y < h; y++ {
		EmitQuad(&batch, l.CellOrigin(core.C(-1, y)), l.TileSize, BorderColor)
		EmitQuad(&batch, l.CellOrigin(core.C(w, y)), l.TileSize, BorderColor)
	}
	for x := 0; x < w; x++ {
		EmitQuad(&batch, l.CellOrigin(core.C(x, -1)), l.TileSize, BorderColor)
	}
	return batch
}
