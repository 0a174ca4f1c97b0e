//go:build !headless

package window

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/columns/internal/render"
	"github.com/vovakirdan/columns/internal/render/textures"
)

// Device implements render.Device on top of Ebitengine. SetTarget must be
// called with the frame's screen image before drawing.
type Device struct {
	window render.Rect
	images map[render.Texture]*ebiten.Image
	target *ebiten.Image

	vertices []ebiten.Vertex
	indices  []uint16
}

// NewDevice uploads one image per texture.
func NewDevice(window render.Rect, set textures.Set) (*Device, error) {
	d := &Device{
		window: window,
		images: make(map[render.Texture]*ebiten.Image, len(set)),
	}
	for _, t := range []render.Texture{render.TexturePillar, render.TextureBlock, render.TextureCharset} {
		img, ok := set[t]
		if !ok {
			return nil, fmt.Errorf("window: no image for texture %s", t)
		}
		d.images[t] = ebiten.NewImageFromImage(img)
	}
	return d, nil
}

// SetTarget sets the image subsequent calls draw into.
func (d *Device) SetTarget(screen *ebiten.Image) {
	d.target = screen
}

// Clear implements render.Device.
func (d *Device) Clear() {
	if d.target != nil {
		d.target.Clear()
	}
}

// DrawTexturedColoredQuads implements render.Device.
func (d *Device) DrawTexturedColoredQuads(vertices render.Batch, _ render.Shader, texture render.Texture) {
	img := d.images[texture]
	if d.target == nil || img == nil || len(vertices) == 0 {
		return
	}

	b := img.Bounds()
	p := Projection{
		Window:  d.window,
		TexSize: mgl32.Vec2{float32(b.Dx()), float32(b.Dy())},
	}
	opts := &ebiten.DrawTrianglesOptions{
		ColorScaleMode: ebiten.ColorScaleModeStraightAlpha,
	}

	for _, c := range chunks(len(vertices)) {
		part := vertices[c[0]:c[1]]
		d.vertices = d.vertices[:0]
		for _, v := range part {
			d.vertices = append(d.vertices, toEbiten(p, v))
		}
		d.indices = sequentialIndices(d.indices, len(part))
		d.target.DrawTriangles(d.vertices, d.indices, img, opts)
	}
}

func toEbiten(p Projection, v render.Vertex) ebiten.Vertex {
	dst := p.Dst(v.Position)
	src := p.Src(v.TexCoord)
	return ebiten.Vertex{
		DstX:   dst[0],
		DstY:   dst[1],
		SrcX:   src[0],
		SrcY:   src[1],
		ColorR: v.Color[0],
		ColorG: v.Color[1],
		ColorB: v.Color[2],
		ColorA: v.Color[3],
	}
}
