package core

import (
	"strings"
	"testing"
)

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(8, 3)
	if s.Width() != 8 || s.Height() != 3 {
		t.Fatalf("dimensions = %dx%d, want 8x3", s.Width(), s.Height())
	}
	for y := 0; y < 3; y++ {
		for x := 0; x < 8; x++ {
			c := s.GetCell(x, y)
			if c.Rune != ' ' || c.Color != ColorDefault {
				t.Fatalf("cell (%d,%d) = %+v, want blank default", x, y, c)
			}
		}
	}
}

func TestSetCellAndBounds(t *testing.T) {
	s := NewScreen(5, 5)
	s.SetCell(2, 3, '@', ColorGreen)
	got := s.GetCell(2, 3)
	if got.Rune != '@' || got.Color != ColorGreen {
		t.Errorf("GetCell = %+v", got)
	}

	// Out-of-bounds writes are ignored, reads return blanks.
	s.SetCell(-1, 0, 'x', ColorRed)
	s.SetCell(0, 99, 'x', ColorRed)
	if s.Get(-1, 0) != ' ' || s.Get(0, 99) != ' ' {
		t.Error("out-of-bounds read should return space")
	}
}

func TestDrawTextClipsAtEdge(t *testing.T) {
	s := NewScreen(5, 1)
	s.DrawText(3, 0, "abcdef")
	if got := s.Row(0); got != "   ab" {
		t.Errorf("Row(0) = %q, want %q", got, "   ab")
	}
}

func TestDrawTextColored(t *testing.T) {
	s := NewScreen(10, 1)
	s.DrawTextColored(0, 0, "hp", ColorRed)
	if c := s.GetCell(1, 0); c.Rune != 'p' || c.Color != ColorRed {
		t.Errorf("colored cell = %+v", c)
	}
}

func TestDrawRectFills(t *testing.T) {
	s := NewScreen(6, 6)
	s.DrawRect(NewRect(1, 1, 3, 2), '#', ColorBlue)
	for y := 1; y < 3; y++ {
		for x := 1; x < 4; x++ {
			if c := s.GetCell(x, y); c.Rune != '#' || c.Color != ColorBlue {
				t.Fatalf("cell (%d,%d) = %+v", x, y, c)
			}
		}
	}
	if s.Get(4, 1) != ' ' || s.Get(1, 3) != ' ' {
		t.Error("fill leaked outside the rect")
	}
}

func TestDrawBox(t *testing.T) {
	s := NewScreen(4, 3)
	s.DrawBox(NewRect(0, 0, 4, 3))
	want := "┌──┐\n│  │\n└──┘"
	if got := s.String(); got != want {
		t.Errorf("box:\n%s\nwant:\n%s", got, want)
	}
}

func TestResizePreservesContent(t *testing.T) {
	s := NewScreen(4, 4)
	s.SetCell(1, 1, 'x', ColorYellow)
	s.SetCell(3, 3, 'y', ColorYellow)

	s.Resize(2, 2)
	if s.Get(1, 1) != 'x' {
		t.Error("shrink lost surviving cell")
	}

	s.Resize(6, 6)
	if s.Get(1, 1) != 'x' {
		t.Error("grow lost surviving cell")
	}
	if s.Get(3, 3) != ' ' {
		t.Error("cell clipped by shrink should not reappear")
	}
	if s.Get(5, 5) != ' ' {
		t.Error("new area should be blank")
	}
}

func TestClear(t *testing.T) {
	s := NewScreen(3, 3)
	s.DrawRect(NewRect(0, 0, 3, 3), '*', ColorCyan)
	s.Clear()
	if strings.TrimSpace(s.String()) != "" {
		t.Errorf("screen not blank after Clear:\n%s", s.String())
	}
}

func TestDrawLines(t *testing.T) {
	s := NewScreen(5, 5)
	s.DrawHLine(1, 2, 3, '-')
	s.DrawVLine(2, 1, 3, '|')
	if s.Get(1, 2) != '-' || s.Get(3, 2) != '-' {
		t.Error("horizontal line incomplete")
	}
	if s.Get(2, 1) != '|' || s.Get(2, 3) != '|' {
		t.Error("vertical line incomplete")
	}
}

func TestDrawTextCentered(t *testing.T) {
	s := NewScreen(10, 1)
	s.DrawTextCentered(0, "abcd")
	if got := s.Row(0); got != "   abcd   " {
		t.Errorf("Row(0) = %q", got)
	}
}
