// Package tui is the terminal front end: a render.Device that rasterizes
// quads onto character cells, the Bubble Tea game loop, the scoreboard and
// the Wish SSH server.
package tui

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/vovakirdan/columns/internal/core"
	"github.com/vovakirdan/columns/internal/render"
	"github.com/vovakirdan/columns/internal/render/charset"
)

// Runes painted for the two tile textures.
const (
	pillarRune = '█'
	blockRune  = '▓'
)

// Device rasterizes textured quads onto a character Screen. A terminal cell
// is painted by a quad when the cell's centre lies inside it, so every tile
// and glyph lands on whole cells regardless of the logical layout.
type Device struct {
	screen *core.Screen
	window render.Rect
	cellW  float32
	cellH  float32
}

// NewDevice creates a device drawing into screen. Each terminal cell covers
// cellW×cellH logical units, counted from the window's top-left corner.
func NewDevice(screen *core.Screen, window render.Rect, cellW, cellH float32) *Device {
	return &Device{
		screen: screen,
		window: window,
		cellW:  cellW,
		cellH:  cellH,
	}
}

// Screen returns the raster target.
func (d *Device) Screen() *core.Screen {
	return d.screen
}

// Clear implements render.Device.
func (d *Device) Clear() {
	d.screen.Clear()
}

// DrawTexturedColoredQuads implements render.Device. Quads are painted in
// order; a later quad covering the same cell wins, blended by its alpha.
func (d *Device) DrawTexturedColoredQuads(vertices render.Batch, _ render.Shader, texture render.Texture) {
	for i := range vertices.QuadCount() {
		d.drawQuad(vertices.Quad(i), texture)
	}
}

func (d *Device) drawQuad(q render.Batch, texture render.Texture) {
	minP, maxP := q[0].Position, q[1].Position
	color := q[0].Color
	if color[3] <= 0 || maxP[0] <= minP[0] || maxP[1] <= minP[1] {
		return
	}

	// Terminal rows grow downward from the window top.
	col0 := firstCell(minP[0]-d.window.Left, d.cellW)
	col1 := firstCell(maxP[0]-d.window.Left, d.cellW)
	row0 := firstCell(d.window.Top-maxP[1], d.cellH)
	row1 := firstCell(d.window.Top-minP[1], d.cellH)

	src := core.Color{R: color[0], G: color[1], B: color[2]}
	for row := row0; row < row1; row++ {
		for col := col0; col < col1; col++ {
			if !d.screen.InBounds(col, row) {
				continue
			}
			cx := d.window.Left + (float32(col)+0.5)*d.cellW
			cy := d.window.Top - (float32(row)+0.5)*d.cellH
			d.paint(col, row, texture, src, color[3], q, mgl32.Vec2{cx, cy})
		}
	}
}

func (d *Device) paint(col, row int, texture render.Texture, src core.Color, alpha float32, q render.Batch, p mgl32.Vec2) {
	cell := d.screen.GetCell(col, row)
	base := cell.Bg
	if cell.Rune == pillarRune || cell.Rune == blockRune {
		base = cell.Fg
	}

	switch texture {
	case render.TexturePillar:
		d.screen.SetCell(col, row, core.Cell{Rune: pillarRune, Fg: base.Blend(src, alpha), Bg: cell.Bg})
	case render.TextureBlock:
		d.screen.SetCell(col, row, core.Cell{Rune: blockRune, Fg: base.Blend(src, alpha), Bg: cell.Bg})
	case render.TextureCharset:
		g := charset.Lookup(sampleUV(q, p))
		if g <= ' ' || g > '~' {
			return
		}
		d.screen.SetCell(col, row, core.Cell{Rune: rune(g), Fg: cell.Bg.Blend(src, alpha), Bg: cell.Bg})
	}
}

// sampleUV interpolates the texture coordinate of p inside quad q, whose
// first two vertices are its min and max corners.
func sampleUV(q render.Batch, p mgl32.Vec2) mgl32.Vec2 {
	minP, maxP := q[0].Position, q[1].Position
	uv0, uv1 := q[0].TexCoord, q[1].TexCoord
	tx := (p[0] - minP[0]) / (maxP[0] - minP[0])
	ty := (p[1] - minP[1]) / (maxP[1] - minP[1])
	return mgl32.Vec2{
		uv0[0] + tx*(uv1[0]-uv0[0]),
		uv0[1] + ty*(uv1[1]-uv0[1]),
	}
}

// firstCell returns the index of the first cell of size step whose centre
// is at or beyond offset.
func firstCell(offset, step float32) int {
	return int(math.Ceil(float64(offset/step - 0.5)))
}
