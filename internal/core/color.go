package core

// Color is an RGB triple with channels in [0, 1].
// Screen cells carry a foreground and background Color.
type Color struct {
	R, G, B float32
}

// Predefined colors.
var (
	ColorBlack = Color{0, 0, 0}
	ColorWhite = Color{1, 1, 1}
	ColorGray  = Color{0.5, 0.5, 0.5}
)

// Blend composites src over c with the given alpha (straight alpha).
func (c Color) Blend(src Color, alpha float32) Color {
	if alpha <= 0 {
		return c
	}
	if alpha >= 1 {
		return src
	}
	inv := 1 - alpha
	return Color{
		R: src.R*alpha + c.R*inv,
		G: src.G*alpha + c.G*inv,
		B: src.B*alpha + c.B*inv,
	}
}
