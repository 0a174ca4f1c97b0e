package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/columns/internal/core"
)

// cellStyle is the color pair shared by a run of cells.
type cellStyle struct {
	fg, bg core.Color
}

// styleCache memoizes lipgloss styles per color pair; a frame only uses a
// handful of distinct colors.
type styleCache map[cellStyle]lipgloss.Style

func (c styleCache) get(k cellStyle) lipgloss.Style {
	if s, ok := c[k]; ok {
		return s
	}
	s := lipgloss.NewStyle().Foreground(hexColor(k.fg))
	if k.bg != core.ColorBlack {
		s = s.Background(hexColor(k.bg))
	}
	c[k] = s
	return s
}

// hexColor converts a cell color to a lipgloss true-color value.
func hexColor(c core.Color) lipgloss.Color {
	return lipgloss.Color(colorful.Color{R: float64(c.R), G: float64(c.G), B: float64(c.B)}.Clamped().Hex())
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	styles := make(styleCache)

	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*4 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			start := cellStyle{fg: cell.Fg, bg: cell.Bg}

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if (cellStyle{fg: cell.Fg, bg: cell.Bg}) != start {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styles.get(start).Render(run.String()))
		}
	}
	return sb.String()
}
