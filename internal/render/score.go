package render

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Rect is a window rectangle in screen space. Top is greater than Bottom.
type Rect struct {
	Left, Top, Right, Bottom float32
}

// Width returns Right - Left.
func (r Rect) Width() float32 {
	return r.Right - r.Left
}

// Height returns Top - Bottom.
func (r Rect) Height() float32 {
	return r.Top - r.Bottom
}

// DisplayString is a line of HUD text and the screen position of its first glyph.
type DisplayString struct {
	Text   []byte
	Anchor mgl32.Vec2
}

// HUD offsets in character cells, measured from the window's top-left corner.
const (
	highScoreColumn = 13
	scoreColumn     = 3
	hudRow          = 1.5
)

// ScoreDisplayStrings formats the high score and the current score as
// six-digit zero-padded numbers, high score first. Values of a million or
// more are printed in full and overflow the field.
func ScoreDisplayStrings(score, highScore uint64, window Rect, charSize mgl32.Vec2) []DisplayString {
	y := window.Top - float32(charSize[1]*hudRow)
	return []DisplayString{
		{
			Text:   fmt.Appendf(nil, "%06d", highScore),
			Anchor: mgl32.Vec2{window.Left + float32(charSize[0]*highScoreColumn), y},
		},
		{
			Text:   fmt.Appendf(nil, "%06d", score),
			Anchor: mgl32.Vec2{window.Left + float32(charSize[0]*scoreColumn), y},
		},
	}
}
