package tui

import (
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/vovakirdan/columns/internal/board"
	"github.com/vovakirdan/columns/internal/config"
	"github.com/vovakirdan/columns/internal/core"
	"github.com/vovakirdan/columns/internal/render"
	"github.com/vovakirdan/columns/internal/render/charset"
)

// newTestDevice returns a device sized for the default layout.
func newTestDevice(t *testing.T) (*Device, *render.Context) {
	t.Helper()
	cfg := config.Default()
	win := cfg.Layout.Window
	screen := core.NewScreen(cfg.Terminal.Columns(win), cfg.Terminal.Rows(win))
	dev := NewDevice(screen, cfg.WindowRect(), cfg.Terminal.CellWidth, cfg.Terminal.CellHeight)
	ctx, err := cfg.RenderContext(dev, charset.New())
	if err != nil {
		t.Fatalf("RenderContext() error = %v", err)
	}
	return dev, ctx
}

func TestDeviceDefaultScreenSize(t *testing.T) {
	dev, _ := newTestDevice(t)
	s := dev.Screen()
	if s.Width() != 25 || s.Height() != 17 {
		t.Errorf("screen = %dx%d, expected 25x17", s.Width(), s.Height())
	}
}

func TestDeviceDrawsFrame(t *testing.T) {
	dev, ctx := newTestDevice(t)

	b := board.New(6, 13)
	b.Set(core.C(0, 0), board.JewelRed)
	render.DrawGame(ctx, render.Frame{Board: b, Score: 42, HighScore: 1234})

	s := dev.Screen()

	t.Run("hud", func(t *testing.T) {
		expected := "   000042    001234      "
		if got := s.Row(0); got != expected {
			t.Errorf("Row(0) = %q, expected %q", got, expected)
		}
	})

	t.Run("jewel", func(t *testing.T) {
		red := board.JewelRed.Color()
		want := core.Color{R: red[0], G: red[1], B: red[2]}
		for _, x := range []int{3, 4} {
			c := s.GetCell(x, 14)
			if c.Rune != pillarRune {
				t.Errorf("cell (%d,14) rune = %q, expected %q", x, c.Rune, pillarRune)
			}
			if c.Fg != want {
				t.Errorf("cell (%d,14) fg = %v, expected %v", x, c.Fg, want)
			}
		}
		if r := s.Get(5, 14); r != ' ' {
			t.Errorf("cell (5,14) = %q, expected gap between tiles", r)
		}
	})

	t.Run("border", func(t *testing.T) {
		for _, pos := range [][2]int{{0, 14}, {1, 14}, {0, 15}, {15, 15}, {16, 14}} {
			if r := s.Get(pos[0], pos[1]); r != blockRune {
				t.Errorf("cell %v = %q, expected %q", pos, r, blockRune)
			}
		}
		if r := s.Get(2, 14); r != ' ' {
			t.Errorf("cell (2,14) = %q, expected empty", r)
		}
	})
}

func TestDeviceSkipsSpaceGlyphs(t *testing.T) {
	dev, ctx := newTestDevice(t)
	s := dev.Screen()
	s.SetCell(0, 0, core.Cell{Rune: '#', Fg: core.ColorWhite, Bg: core.ColorBlack})

	var batch render.Batch
	ctx.Charset.PushTextVertices(&batch, []byte(" "), mgl32.Vec2{0, 536}, mgl32.Vec2{16, 16}, render.White)
	dev.DrawTexturedColoredQuads(batch, render.ShaderTexturedColored, render.TextureCharset)

	if r := s.Get(0, 0); r != '#' {
		t.Errorf("space glyph overwrote cell: got %q", r)
	}
}

func TestDeviceBlendsAlpha(t *testing.T) {
	screen := core.NewScreen(2, 2)
	dev := NewDevice(screen, render.Rect{Left: 0, Top: 68, Right: 32, Bottom: 0}, 16, 34)

	tests := []struct {
		name     string
		color    mgl32.Vec4
		expected core.Cell
	}{
		{"half alpha", mgl32.Vec4{1, 0, 0, 0.5}, core.Cell{Rune: pillarRune, Fg: core.Color{R: 0.5}, Bg: core.ColorBlack}},
		{"opaque", mgl32.Vec4{0, 1, 0, 1}, core.Cell{Rune: pillarRune, Fg: core.Color{G: 1}, Bg: core.ColorBlack}},
		{"invisible", mgl32.Vec4{0, 0, 1, 0}, core.Cell{Rune: ' ', Fg: core.ColorWhite, Bg: core.ColorBlack}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			dev.Clear()
			var batch render.Batch
			render.EmitQuad(&batch, mgl32.Vec2{0, 34}, mgl32.Vec2{16, 34}, tc.color)
			dev.DrawTexturedColoredQuads(batch, render.ShaderTexturedColored, render.TexturePillar)

			if got := screen.GetCell(0, 0); got != tc.expected {
				t.Errorf("GetCell(0,0) = %+v, expected %+v", got, tc.expected)
			}
			if got := screen.Get(1, 1); got != ' ' {
				t.Errorf("Get(1,1) = %q, expected untouched", got)
			}
		})
	}
}

func TestDeviceIgnoresDegenerateQuads(t *testing.T) {
	screen := core.NewScreen(4, 4)
	dev := NewDevice(screen, render.Rect{Left: 0, Top: 64, Right: 64, Bottom: 0}, 16, 16)

	var batch render.Batch
	render.EmitQuad(&batch, mgl32.Vec2{16, 16}, mgl32.Vec2{0, 16}, render.White)
	render.EmitQuad(&batch, mgl32.Vec2{48, 48}, mgl32.Vec2{-32, -32}, render.White)
	dev.DrawTexturedColoredQuads(batch, render.ShaderTexturedColored, render.TextureBlock)

	if strings.TrimSpace(screen.String()) != "" {
		t.Errorf("degenerate quads painted cells:\n%s", screen.String())
	}
}

func TestFirstCell(t *testing.T) {
	tests := []struct {
		offset, step float32
		expected     int
	}{
		{0, 16, 0},
		{8, 16, 0}, // centre on the edge is inside
		{9, 16, 1},
		{42, 16, 3},
		{-40, 16, -3},
	}

	for _, tc := range tests {
		if got := firstCell(tc.offset, tc.step); got != tc.expected {
			t.Errorf("firstCell(%v, %v) = %d, expected %d", tc.offset, tc.step, got, tc.expected)
		}
	}
}
