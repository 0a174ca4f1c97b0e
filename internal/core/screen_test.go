package core

import (
	"strings"
	"testing"
)

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(25, 17)

	if s.Width() != 25 || s.Height() != 17 {
		t.Fatalf("size = %dx%d, expected 25x17", s.Width(), s.Height())
	}
	for y := 0; y < s.Height(); y++ {
		if got := s.GetCell(0, y); got != blankCell {
			t.Errorf("GetCell(0, %d) = %+v, expected blank", y, got)
		}
	}
}

func TestScreenBounds(t *testing.T) {
	s := NewScreen(4, 3)

	tests := []struct {
		name string
		x, y int
		in   bool
	}{
		{"origin", 0, 0, true},
		{"bottom-right", 3, 2, true},
		{"left", -1, 0, false},
		{"right", 4, 0, false},
		{"above", 0, -1, false},
		{"below", 0, 3, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := s.InBounds(tc.x, tc.y); got != tc.in {
				t.Errorf("InBounds(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.in)
			}
			s.Set(tc.x, tc.y, 'X')
			expected := ' '
			if tc.in {
				expected = 'X'
			}
			if got := s.Get(tc.x, tc.y); got != expected {
				t.Errorf("Get(%d, %d) = %q, expected %q", tc.x, tc.y, got, expected)
			}
		})
	}
}

func TestScreenSetKeepsColors(t *testing.T) {
	s := NewScreen(3, 1)
	s.SetCell(1, 0, Cell{Rune: '█', Fg: ColorGray, Bg: ColorWhite})
	s.Set(1, 0, 'A')

	got := s.GetCell(1, 0)
	if got.Rune != 'A' || got.Fg != ColorGray || got.Bg != ColorWhite {
		t.Errorf("GetCell(1, 0) = %+v, expected 'A' with colors kept", got)
	}

	s.Clear()
	if got := s.GetCell(1, 0); got != blankCell {
		t.Errorf("after Clear GetCell(1, 0) = %+v, expected blank", got)
	}
}

func TestScreenDrawText(t *testing.T) {
	tests := []struct {
		name     string
		x        int
		text     string
		expected string
	}{
		{"inside", 1, "ab", " ab  "},
		{"clipped right", 3, "abc", "   ab"},
		{"clipped left", -1, "abc", "bc   "},
		{"multibyte", 0, "│█", "│█   "},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewScreen(5, 1)
			s.DrawText(tc.x, 0, tc.text)
			if got := s.Row(0); got != tc.expected {
				t.Errorf("Row(0) = %q, expected %q", got, tc.expected)
			}
		})
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(10, 1)
	s.DrawTextCentered(0, "PAUSED")
	if got := s.Row(0); got != "  PAUSED  " {
		t.Errorf("Row(0) = %q, expected %q", got, "  PAUSED  ")
	}
}

func TestScreenDrawRect(t *testing.T) {
	s := NewScreen(5, 4)
	s.SetCell(2, 2, Cell{Rune: 'x', Fg: ColorGray, Bg: ColorWhite})
	s.DrawRect(NewRect(1, 1, 3, 2), '#')

	expected := "     \n ### \n ### \n     "
	if got := s.String(); got != expected {
		t.Errorf("String() = %q, expected %q", got, expected)
	}
	if got := s.GetCell(2, 2); got.Bg != ColorBlack || got.Fg != ColorWhite {
		t.Errorf("DrawRect should reset colors, got %+v", got)
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(6, 4)
	s.DrawBox(NewRect(0, 0, 5, 3))

	expected := []string{
		"┌───┐ ",
		"│   │ ",
		"└───┘ ",
		"      ",
	}
	for y, row := range expected {
		if got := s.Row(y); got != row {
			t.Errorf("Row(%d) = %q, expected %q", y, got, row)
		}
	}
}

func TestScreenRowAndString(t *testing.T) {
	s := NewScreen(3, 2)
	s.DrawText(0, 0, "abc")
	s.DrawText(0, 1, "de")

	if got := s.String(); got != "abc\nde " {
		t.Errorf("String() = %q, expected %q", got, "abc\nde ")
	}
	if got := s.Row(5); got != strings.Repeat(" ", 3) {
		t.Errorf("Row(5) = %q, expected blanks", got)
	}
}
