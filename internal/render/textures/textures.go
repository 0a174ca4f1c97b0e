// Package textures generates the images bound to each render.Texture.
// Tiles are drawn in grayscale so the vertex color tints them.
package textures

import (
	"image"
	"image/color"

	"github.com/vovakirdan/columns/internal/render"
	"github.com/vovakirdan/columns/internal/render/charset"
)

// TileSize is the edge length of the pillar and block images in pixels.
const TileSize = 32

// Pillar returns a bevelled jewel tile: a bright top-left rim, a dark
// bottom-right rim and a white face.
func Pillar() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, TileSize, TileSize))
	const rim = 3
	for y := 0; y < TileSize; y++ {
		for x := 0; x < TileSize; x++ {
			v := uint8(0xe0)
			switch {
			case x < rim || y < rim:
				v = 0xff
			case x >= TileSize-rim || y >= TileSize-rim:
				v = 0x80
			}
			img.SetRGBA(x, y, color.RGBA{v, v, v, 0xff})
		}
	}
	// highlight
	for i := rim; i < rim+4; i++ {
		img.SetRGBA(i, rim, color.RGBA{0xff, 0xff, 0xff, 0xff})
		img.SetRGBA(rim, i, color.RGBA{0xff, 0xff, 0xff, 0xff})
	}
	return img
}

// Block returns the wall tile: two courses of offset bricks with dark mortar.
func Block() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, TileSize, TileSize))
	const course = TileSize / 2
	for y := 0; y < TileSize; y++ {
		offset := 0
		if (y/course)%2 == 1 {
			offset = course / 2
		}
		for x := 0; x < TileSize; x++ {
			v := uint8(0xd0)
			if y%course == 0 || (x+offset)%course == 0 {
				v = 0x50
			}
			img.SetRGBA(x, y, color.RGBA{v, v, v, 0xff})
		}
	}
	return img
}

// Set holds one image per render.Texture.
type Set map[render.Texture]image.Image

// Default builds the pillar, block and charset images.
func Default(cs *charset.Charset) Set {
	return Set{
		render.TexturePillar:  Pillar(),
		render.TextureBlock:   Block(),
		render.TextureCharset: cs.Image(),
	}
}
