package core

import (
	"strings"
	"testing"
)

func TestNewScreenIsBlank(t *testing.T) {
	tests := []struct {
		name string
		w, h int
		ew   int
		eh   int
	}{
		{"normal", 8, 3, 8, 3},
		{"empty", 0, 0, 0, 0},
		{"negative", -4, 2, 0, 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewScreen(tc.w, tc.h)
			if s.Width() != tc.ew || s.Height() != tc.eh {
				t.Fatalf("size = %dx%d, expected %dx%d", s.Width(), s.Height(), tc.ew, tc.eh)
			}
			for y := range s.Height() {
				if got := s.Row(y); got != strings.Repeat(" ", tc.ew) {
					t.Errorf("Row(%d) = %q, expected blank", y, got)
				}
			}
		})
	}
}

func TestScreenSetColor(t *testing.T) {
	s := NewScreen(4, 4)
	s.SetColor(1, 2, '█', ColorGreen)

	if c := s.GetCell(1, 2); c.Rune != '█' || c.Color != ColorGreen {
		t.Errorf("GetCell(1, 2) = %+v, expected green block", c)
	}
	// Set goes back to the default color
	s.Set(1, 2, 'x')
	if c := s.GetCell(1, 2); c.Rune != 'x' || c.Color != ColorDefault {
		t.Errorf("GetCell(1, 2) = %+v, expected default x", c)
	}
}

func TestScreenOutOfBounds(t *testing.T) {
	s := NewScreen(3, 3)
	for _, p := range [][2]int{{-1, 0}, {3, 0}, {0, -1}, {0, 3}} {
		s.SetColor(p[0], p[1], '#', ColorRed)
		if c := s.GetCell(p[0], p[1]); c != blankCell {
			t.Errorf("GetCell(%d, %d) = %+v, expected blank", p[0], p[1], c)
		}
	}
	if s.String() != "   \n   \n   " {
		t.Errorf("out of bounds writes leaked: %q", s.String())
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(5, 5)
	s.FillRect(NewRect(0, 0, 5, 5), 'X', ColorRed)
	s.Clear()

	for x, y := range NewRect(0, 0, 5, 5).Points() {
		if c := s.GetCell(x, y); c != blankCell {
			t.Errorf("after Clear (%d, %d) = %+v, expected blank", x, y, c)
		}
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 2)
	s.DrawTextColor(1, 0, "Score", ColorWhite)
	s.DrawText(7, 1, "Level") // clipped to "Lev"

	if got := s.Row(0); got != " Score    " {
		t.Errorf("Row(0) = %q", got)
	}
	if got := s.Row(1); got != "       Lev" {
		t.Errorf("Row(1) = %q, expected clipped text", got)
	}
	if s.GetCell(1, 0).Color != ColorWhite {
		t.Error("DrawTextColor should color every rune")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(12, 1)
	s.DrawTextCentered(0, "ok✓")
	if got := s.Row(0); got != "    ok✓     " {
		t.Errorf("Row(0) = %q, expected centered by runes", got)
	}
}

func TestScreenFillRect(t *testing.T) {
	s := NewScreen(10, 10)
	s.FillRect(NewRect(2, 2, 3, 3), '#', ColorYellow)

	for x, y := range NewRect(0, 0, 10, 10).Points() {
		inside := x >= 2 && x < 5 && y >= 2 && y < 5
		c := s.GetCell(x, y)
		if inside && (c.Rune != '#' || c.Color != ColorYellow) {
			t.Errorf("FillRect: expected yellow '#' at (%d, %d), got %+v", x, y, c)
		}
		if !inside && c != blankCell {
			t.Errorf("FillRect should not touch (%d, %d), got %+v", x, y, c)
		}
	}

	// Clipped at the edges
	s.FillRect(NewRect(8, 8, 5, 5), '#', ColorRed)
	if s.GetCell(9, 9).Color != ColorRed {
		t.Error("FillRect should draw the visible part")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(6, 4)
	s.DrawBox(NewRect(0, 0, 6, 4))

	expected := strings.Join([]string{
		"┌────┐",
		"│    │",
		"│    │",
		"└────┘",
	}, "\n")
	if got := s.String(); got != expected {
		t.Errorf("DrawBox:\n%s\nexpected:\n%s", got, expected)
	}
}

func TestScreenBlit(t *testing.T) {
	src := NewScreen(3, 2)
	src.DrawTextColor(0, 0, "abc", ColorCyan)
	src.DrawText(0, 1, "def")

	dst := NewScreen(6, 4)
	dst.Blit(src, 2, 1)

	if got := dst.Row(1); got != "  abc " {
		t.Errorf("Row(1) = %q, expected %q", got, "  abc ")
	}
	if got := dst.Row(2); got != "  def " {
		t.Errorf("Row(2) = %q, expected %q", got, "  def ")
	}
	if c := dst.GetCell(3, 1); c.Color != ColorCyan {
		t.Errorf("Blit should keep colors, got %v", c.Color)
	}

	// Partially off-screen
	dst.Blit(src, 4, 3)
	if got := dst.Row(3); got != "    ab" {
		t.Errorf("Row(3) = %q, expected clipped %q", got, "    ab")
	}
}

func TestScreenResizeKeepsTopLeft(t *testing.T) {
	s := NewScreen(6, 3)
	s.DrawTextColor(0, 0, "snake", ColorGreen)
	s.DrawText(0, 2, "tail")

	s.Resize(3, 2)
	if got := s.String(); got != "sna\n   " {
		t.Errorf("after shrink String() = %q", got)
	}

	s.Resize(5, 3)
	if got := s.Row(0); got != "sna  " {
		t.Errorf("after grow Row(0) = %q", got)
	}
	if got := s.Row(2); got != "     " {
		t.Errorf("cropped content should not come back, Row(2) = %q", got)
	}
	if s.GetCell(0, 0).Color != ColorGreen {
		t.Error("Resize should keep colors")
	}
}

func TestScreenRowOutside(t *testing.T) {
	s := NewScreen(4, 1)
	if got := s.Row(-1); got != "    " {
		t.Errorf("Row(-1) = %q, expected spaces", got)
	}
	if got := s.Row(1); got != "    " {
		t.Errorf("Row(1) = %q, expected spaces", got)
	}
}
