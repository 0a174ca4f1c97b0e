// Package charset is the text collaborator of the renderer: a 16×16 grid
// glyph atlas covering all 256 byte values, rasterized from basicfont.
package charset

import (
	"image"
	"image/draw"
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/vovakirdan/columns/internal/render"
)

// Atlas geometry. Glyph g lives in grid column g%16 and grid row g/16,
// counted from the top of the image.
const (
	GridSize   = 16
	CellWidth  = 8
	CellHeight = 16
)

// Charset maps bytes to glyph rectangles in its atlas image.
type Charset struct {
	atlas *image.RGBA
}

// New rasterizes the atlas. Printable ASCII comes from basicfont.Face7x13;
// bytes without a glyph stay blank.
func New() *Charset {
	atlas := image.NewRGBA(image.Rect(0, 0, GridSize*CellWidth, GridSize*CellHeight))
	draw.Draw(atlas, atlas.Bounds(), image.Transparent, image.Point{}, draw.Src)

	face := basicfont.Face7x13
	d := &font.Drawer{
		Dst:  atlas,
		Src:  image.White,
		Face: face,
	}
	baseline := (CellHeight-face.Height)/2 + face.Ascent

	for g := 0; g < GridSize*GridSize; g++ {
		r := rune(g)
		if r < ' ' || r > '~' {
			continue
		}
		col, row := g%GridSize, g/GridSize
		d.Dot = fixed.P(col*CellWidth, row*CellHeight+baseline)
		d.DrawString(string(r))
	}

	return &Charset{atlas: atlas}
}

// Image returns the atlas. Callers must not modify it.
func (c *Charset) Image() *image.RGBA {
	return c.atlas
}

// GlyphUV returns the texture rectangle of glyph g: uv0 is its bottom-left
// corner, uv1 its top-right, with v increasing upward.
func GlyphUV(g byte) (uv0, uv1 mgl32.Vec2) {
	col := float32(int(g) % GridSize)
	row := float32(int(g) / GridSize)
	return mgl32.Vec2{col / GridSize, 1 - (row+1)/GridSize},
		mgl32.Vec2{(col + 1) / GridSize, 1 - row/GridSize}
}

// Lookup returns the glyph whose texture rectangle contains uv.
// Coordinates outside the unit square are clamped to the edge glyphs.
func Lookup(uv mgl32.Vec2) byte {
	col := clampCell(math.Floor(float64(uv[0]) * GridSize))
	row := clampCell(math.Floor(float64(1-uv[1]) * GridSize))
	return byte(row*GridSize + col)
}

func clampCell(v float64) int {
	if v < 0 {
		return 0
	}
	if v > GridSize-1 {
		return GridSize - 1
	}
	return int(v)
}

// PushTextVertices appends one quad per byte of text, left to right from
// anchor, each glyphSize wide and tall. Implements render.TextRenderer.
func (c *Charset) PushTextVertices(batch *render.Batch, text []byte, anchor, glyphSize mgl32.Vec2, color mgl32.Vec4) {
	for i, g := range text {
		origin := mgl32.Vec2{anchor[0] + float32(float32(i)*glyphSize[0]), anchor[1]}
		uv0, uv1 := GlyphUV(g)
		render.EmitQuadUV(batch, origin, glyphSize, uv0, uv1, color)
	}
}
