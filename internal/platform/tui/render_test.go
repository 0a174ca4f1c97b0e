package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/columns/internal/core"
)

func TestHexColor(t *testing.T) {
	tests := []struct {
		name     string
		color    core.Color
		expected string
	}{
		{"black", core.ColorBlack, "#000000"},
		{"white", core.ColorWhite, "#ffffff"},
		{"red", core.Color{R: 1}, "#ff0000"},
		{"out of range", core.Color{R: 2, G: -1}, "#ff0000"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := string(hexColor(tc.color)); got != tc.expected {
				t.Errorf("hexColor(%v) = %q, expected %q", tc.color, got, tc.expected)
			}
		})
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(12, 2)
	s.DrawText(0, 0, "000120")
	s.SetCell(7, 0, core.Cell{Rune: pillarRune, Fg: core.Color{R: 1}, Bg: core.ColorBlack})

	out := RenderScreen(s)

	if !strings.Contains(out, "000120") {
		t.Errorf("RenderScreen() lost text:\n%s", out)
	}
	if !strings.ContainsRune(out, pillarRune) {
		t.Errorf("RenderScreen() lost tile rune:\n%s", out)
	}
	if n := strings.Count(out, "\n"); n != 1 {
		t.Errorf("RenderScreen() has %d newlines, expected 1", n)
	}
}

func TestStyleCacheReuses(t *testing.T) {
	c := make(styleCache)
	k := cellStyle{fg: core.ColorWhite, bg: core.ColorBlack}
	c.get(k)
	c.get(k)
	c.get(cellStyle{fg: core.ColorGray, bg: core.ColorBlack})
	if len(c) != 2 {
		t.Errorf("cache has %d styles, expected 2", len(c))
	}
}
