package core

import "strings"

// Cell is a single character cell of a Screen.
type Cell struct {
	Rune rune
	Fg   Color
	Bg   Color
}

// blankCell is the value every cell takes after Clear.
var blankCell = Cell{Rune: ' ', Fg: ColorWhite, Bg: ColorBlack}

// Screen is a fixed-size grid of cells, the raster target of the terminal
// front end. Row 0 is the top of the terminal. Writes outside the grid are
// dropped and reads outside it return a blank cell.
type Screen struct {
	width, height int
	cells         []Cell // row-major
}

// NewScreen creates a blank screen.
func NewScreen(width, height int) *Screen {
	s := &Screen{width: width, height: height, cells: make([]Cell, width*height)}
	s.Clear()
	return s
}

// Width returns the screen width in cells.
func (s *Screen) Width() int { return s.width }

// Height returns the screen height in cells.
func (s *Screen) Height() int { return s.height }

// InBounds reports whether (x, y) lies on the screen.
func (s *Screen) InBounds(x, y int) bool {
	return x >= 0 && x < s.width && y >= 0 && y < s.height
}

func (s *Screen) at(x, y int) *Cell {
	if !s.InBounds(x, y) {
		return nil
	}
	return &s.cells[y*s.width+x]
}

// Clear resets every cell to a blank space on black.
func (s *Screen) Clear() {
	for i := range s.cells {
		s.cells[i] = blankCell
	}
}

// Set places a rune at (x, y), keeping the cell colors.
func (s *Screen) Set(x, y int, r rune) {
	if c := s.at(x, y); c != nil {
		c.Rune = r
	}
}

// SetCell replaces the whole cell at (x, y).
func (s *Screen) SetCell(x, y int, cell Cell) {
	if c := s.at(x, y); c != nil {
		*c = cell
	}
}

// Get returns the rune at (x, y).
func (s *Screen) Get(x, y int) rune {
	return s.GetCell(x, y).Rune
}

// GetCell returns the cell at (x, y).
func (s *Screen) GetCell(x, y int) Cell {
	if c := s.at(x, y); c != nil {
		return *c
	}
	return blankCell
}

// DrawText writes text left to right from (x, y), clipped to the screen.
func (s *Screen) DrawText(x, y int, text string) {
	for _, r := range text {
		s.Set(x, y, r)
		x++
	}
}

// DrawTextCentered writes text centered on row y.
func (s *Screen) DrawTextCentered(y int, text string) {
	s.DrawText((s.width-len([]rune(text)))/2, y, text)
}

// DrawRect fills r with the given rune, resetting colors.
func (s *Screen) DrawRect(r Rect, fill rune) {
	c := blankCell
	c.Rune = fill
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			s.SetCell(x, y, c)
		}
	}
}

// DrawBox outlines r with box-drawing runes.
func (s *Screen) DrawBox(r Rect) {
	right, bottom := r.Right()-1, r.Bottom()-1
	for x := r.X + 1; x < right; x++ {
		s.Set(x, r.Y, '─')
		s.Set(x, bottom, '─')
	}
	for y := r.Y + 1; y < bottom; y++ {
		s.Set(r.X, y, '│')
		s.Set(right, y, '│')
	}
	s.Set(r.X, r.Y, '┌')
	s.Set(right, r.Y, '┐')
	s.Set(r.X, bottom, '└')
	s.Set(right, bottom, '┘')
}

// Row returns the runes of row y; rows off the screen are blank.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	var sb strings.Builder
	for _, c := range s.cells[y*s.width : (y+1)*s.width] {
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}

// String returns the runes of every row joined by newlines, without colors.
func (s *Screen) String() string {
	rows := make([]string, s.height)
	for y := range rows {
		rows[y] = s.Row(y)
	}
	return strings.Join(rows, "\n")
}
