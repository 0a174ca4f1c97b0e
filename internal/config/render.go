package config

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/vovakirdan/columns/internal/board"
	"github.com/vovakirdan/columns/internal/render"
)

// JewelPalette returns the default jewel palette with the configured overrides applied.
func (c Config) JewelPalette() (board.Palette, error) {
	p, err := board.DefaultPalette().WithOverrides(c.Palette)
	if err != nil {
		return p, fmt.Errorf("config: palette: %w", err)
	}
	return p, nil
}

// RenderLayout converts the layout section into a render.Layout.
func (c Config) RenderLayout() (render.Layout, error) {
	p, err := c.JewelPalette()
	if err != nil {
		return render.Layout{}, err
	}
	return render.Layout{
		Target:   mgl32.Vec2(c.Layout.Target),
		TileSize: mgl32.Vec2(c.Layout.CellSize),
		Padding:  mgl32.Vec2(c.Layout.CellPadding),
		Palette:  &p,
	}, nil
}

// WindowRect returns the window as a render.Rect.
func (c Config) WindowRect() render.Rect {
	w := c.Layout.Window
	return render.Rect{Left: w.Left, Top: w.Top, Right: w.Right, Bottom: w.Bottom}
}

// RenderContext builds a render context for dev, including the border batch
// for the configured board size.
func (c Config) RenderContext(dev render.Device, text render.TextRenderer) (*render.Context, error) {
	l, err := c.RenderLayout()
	if err != nil {
		return nil, err
	}
	return render.NewContext(dev, text, l, c.WindowRect(), mgl32.Vec2(c.Layout.CharSize), c.Game.BoardWidth, c.Game.BoardHeight), nil
}
