package core

import (
	"strings"
	"testing"
)

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.Set(3, 2, '@')
	if got := s.Get(3, 2); got != '@' {
		t.Errorf("Get(3,2) = %q, want '@'", got)
	}

	// Untouched cells are spaces
	if got := s.Get(0, 0); got != ' ' {
		t.Errorf("Get(0,0) = %q, want ' '", got)
	}
}

func TestScreenSetCellColor(t *testing.T) {
	s := NewScreen(10, 5)

	s.SetCell(1, 1, '●', ColorGreen)
	cell := s.GetCell(1, 1)
	if cell.Rune != '●' || cell.Color != ColorGreen {
		t.Errorf("GetCell(1,1) = %+v, want green '●'", cell)
	}
}

func TestScreenOutOfBounds(t *testing.T) {
	s := NewScreen(10, 5)

	// These should not panic
	s.Set(-1, 0, 'x')
	s.Set(0, -1, 'x')
	s.Set(10, 0, 'x')
	s.Set(0, 5, 'x')

	if got := s.Get(-1, 0); got != ' ' {
		t.Errorf("out-of-bounds Get = %q, want ' '", got)
	}
	if cell := s.GetCell(99, 99); cell.Rune != ' ' || cell.Color != ColorDefault {
		t.Errorf("out-of-bounds GetCell = %+v, want blank", cell)
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(4, 4)
	s.SetCell(2, 2, '#', ColorRed)

	s.Clear()

	cell := s.GetCell(2, 2)
	if cell.Rune != ' ' || cell.Color != ColorDefault {
		t.Errorf("after Clear, GetCell = %+v, want blank", cell)
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 3)

	s.DrawText(2, 1, "hi")
	if s.Get(2, 1) != 'h' || s.Get(3, 1) != 'i' {
		t.Errorf("DrawText placed %q%q", s.Get(2, 1), s.Get(3, 1))
	}

	// Text extending past the edge is clipped, not wrapped
	s.DrawText(8, 0, "abc")
	if s.Get(8, 0) != 'a' || s.Get(9, 0) != 'b' {
		t.Error("DrawText should clip at the right edge")
	}
	if s.Get(0, 1) == 'c' {
		t.Error("DrawText must not wrap to the next row")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(10, 3)
	s.DrawTextCentered(1, "abcd")

	row := s.Row(1)
	if !strings.Contains(row, "abcd") {
		t.Errorf("Row(1) = %q, want it to contain \"abcd\"", row)
	}
	if !strings.HasPrefix(row, "   ") {
		t.Errorf("Row(1) = %q, text not centered", row)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 5)
	s.Set(2, 2, 'x')

	s.Resize(20, 10)
	if s.Width() != 20 || s.Height() != 10 {
		t.Errorf("size after resize = %dx%d, want 20x10", s.Width(), s.Height())
	}
	if got := s.Get(2, 2); got != 'x' {
		t.Errorf("content not preserved across grow, Get(2,2) = %q", got)
	}

	s.Resize(3, 3)
	if got := s.Get(2, 2); got != 'x' {
		t.Errorf("content not preserved across shrink, Get(2,2) = %q", got)
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	want := "a  \n  b"
	if got := s.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
