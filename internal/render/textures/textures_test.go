package textures

import (
	"image"
	"testing"

	"github.com/vovakirdan/columns/internal/render"
	"github.com/vovakirdan/columns/internal/render/charset"
)

func TestDefaultCoversAllTextures(t *testing.T) {
	set := Default(charset.New())

	for _, tex := range []render.Texture{render.TexturePillar, render.TextureBlock, render.TextureCharset} {
		if img, ok := set[tex]; !ok || img == nil {
			t.Errorf("missing image for %v", tex)
		}
	}
}

func TestTilesAreGrayscaleAndOpaque(t *testing.T) {
	tests := []struct {
		name string
		img  *image.RGBA
	}{
		{"pillar", Pillar()},
		{"block", Block()},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := tc.img.Bounds()
			if b.Dx() != TileSize || b.Dy() != TileSize {
				t.Fatalf("bounds = %v, expected %dx%d", b, TileSize, TileSize)
			}
			for y := b.Min.Y; y < b.Max.Y; y++ {
				for x := b.Min.X; x < b.Max.X; x++ {
					c := tc.img.RGBAAt(x, y)
					if c.A != 0xff {
						t.Fatalf("pixel (%d, %d) alpha = %d, expected 255", x, y, c.A)
					}
					if c.R != c.G || c.G != c.B {
						t.Fatalf("pixel (%d, %d) = %v, expected gray", x, y, c)
					}
				}
			}
		})
	}
}

func TestBlockHasMortar(t *testing.T) {
	img := Block()
	if img.RGBAAt(5, 0).R != 0x50 {
		t.Errorf("top row should be mortar, got %v", img.RGBAAt(5, 0))
	}
	if img.RGBAAt(5, 5).R != 0xd0 {
		t.Errorf("brick face should be light, got %v", img.RGBAAt(5, 5))
	}
}
