// Package board defines the read-only shapes the renderer consumes: jewels,
// the board of settled jewels and the falling column.
package board

import (
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/lucasb-eyer/go-colorful"
)

// Jewel identifies the kind of a jewel.
type Jewel uint8

const (
	JewelRed Jewel = iota
	JewelGreen
	JewelBlue
	JewelYellow
	JewelPurple
	JewelOrange
	JewelCount // Sentinel value for iteration
)

// defaultHex is the display palette, indexed by Jewel.
var defaultHex = [JewelCount]string{
	JewelRed:    "#e8383d",
	JewelGreen:  "#3fbf5a",
	JewelBlue:   "#3a6ee8",
	JewelYellow: "#f2d13a",
	JewelPurple: "#a04fd6",
	JewelOrange: "#f28a2e",
}

// Palette maps every jewel kind to an RGBA display color.
type Palette [JewelCount]mgl32.Vec4

// DefaultPalette returns the built-in jewel colors.
func DefaultPalette() Palette {
	var p Palette
	for j, hex := range defaultHex {
		c, err := colorful.Hex(hex)
		if err != nil {
			panic(fmt.Sprintf("board: bad palette entry %q: %v", hex, err))
		}
		p[j] = toVec4(c)
	}
	return p
}

// WithOverrides returns a copy of p where every named jewel takes the given
// hex color. Unknown names and malformed colors are reported as errors.
func (p Palette) WithOverrides(hex map[string]string) (Palette, error) {
	out := p
	for name, value := range hex {
		j, ok := ParseJewel(name)
		if !ok {
			return p, fmt.Errorf("board: unknown jewel %q", name)
		}
		c, err := colorful.Hex(value)
		if err != nil {
			return p, fmt.Errorf("board: bad color %q for %s: %w", value, name, err)
		}
		out[j] = toVec4(c)
	}
	return out, nil
}

func toVec4(c colorful.Color) mgl32.Vec4 {
	return mgl32.Vec4{float32(c.R), float32(c.G), float32(c.B), 1}
}

var palette = DefaultPalette()

// Color returns the display color of the jewel in the default palette.
func (j Jewel) Color() mgl32.Vec4 {
	return j.ColorIn(palette)
}

// ColorIn returns the display color of the jewel in p.
func (j Jewel) ColorIn(p Palette) mgl32.Vec4 {
	if j >= JewelCount {
		return mgl32.Vec4{1, 1, 1, 1}
	}
	return p[j]
}

// String returns the string representation of a jewel.
func (j Jewel) String() string {
	switch j {
	case JewelRed:
		return "red"
	case JewelGreen:
		return "green"
	case JewelBlue:
		return "blue"
	case JewelYellow:
		return "yellow"
	case JewelPurple:
		return "purple"
	case JewelOrange:
		return "orange"
	default:
		return "unknown"
	}
}

// Char returns a single character representation for text dumps.
func (j Jewel) Char() rune {
	switch j {
	case JewelRed:
		return 'R'
	case JewelGreen:
		return 'G'
	case JewelBlue:
		return 'B'
	case JewelYellow:
		return 'Y'
	case JewelPurple:
		return 'P'
	case JewelOrange:
		return 'O'
	default:
		return '?'
	}
}

// ParseJewel converts a name or its first letter to a Jewel.
func ParseJewel(s string) (Jewel, bool) {
	switch strings.ToLower(s) {
	case "red", "r":
		return JewelRed, true
	case "green", "g":
		return JewelGreen, true
	case "blue", "b":
		return JewelBlue, true
	case "yellow", "y":
		return JewelYellow, true
	case "purple", "p":
		return JewelPurple, true
	case "orange", "o":
		return JewelOrange, true
	default:
		return JewelRed, false
	}
}
