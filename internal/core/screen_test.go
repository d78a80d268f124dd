package core

import (
	"testing"
)

var (
	testRed  = Hex(0xFF0000)
	testGray = Hex(0x808080)
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(64, 40)

	if s.Width() != 64 {
		t.Errorf("Width() = %d, expected 64", s.Width())
	}
	if s.Height() != 40 {
		t.Errorf("Height() = %d, expected 40", s.Height())
	}

	// Check that it's initialized with blank cells
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.GetCell(x, y) != blank {
				t.Errorf("New screen should be blank, got %+v at (%d, %d)", s.GetCell(x, y), x, y)
			}
		}
	}
}

func TestScreenSetGetCell(t *testing.T) {
	s := NewScreen(10, 10)
	c := Cell{Rune: 'X', FG: testRed, BG: testGray}

	s.SetCell(5, 5, c)
	if s.GetCell(5, 5) != c {
		t.Errorf("GetCell(5, 5) = %+v, expected %+v", s.GetCell(5, 5), c)
	}

	// Out of bounds should be silent
	s.SetCell(-1, 0, c)
	s.SetCell(100, 0, c)
	s.SetCell(0, -1, c)
	s.SetCell(0, 100, c)

	if s.GetCell(-1, 0) != blank {
		t.Error("Out of bounds GetCell should return a blank cell")
	}
	if s.GetCell(100, 0) != blank {
		t.Error("Out of bounds GetCell should return a blank cell")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 10)

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			s.SetCell(x, y, Cell{Rune: 'X', FG: testRed, BG: testGray})
		}
	}

	s.Clear()

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if s.GetCell(x, y) != blank {
				t.Errorf("After Clear, expected blank at (%d, %d), got %+v", x, y, s.GetCell(x, y))
			}
		}
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "Hello", testRed)

	expected := "Hello"
	for i, ch := range expected {
		c := s.GetCell(2+i, 1)
		if c.Rune != ch || c.FG != testRed {
			t.Errorf("DrawText: expected red %q at (%d, 1), got %+v", ch, 2+i, c)
		}
	}

	// Text should be clipped at boundaries
	s.DrawText(18, 0, "Hello", testRed)
	if s.GetCell(18, 0).Rune != 'H' || s.GetCell(19, 0).Rune != 'e' {
		t.Error("Text should be clipped at right boundary")
	}
	s.DrawText(-2, 2, "Hello", testRed)
	if s.GetCell(0, 2).Rune != 'l' {
		t.Errorf("Text should be clipped at left boundary, got %q", s.GetCell(0, 2).Rune)
	}
}

func TestScreenDrawTextKeepsBackground(t *testing.T) {
	s := NewScreen(4, 4)
	s.SetCell(1, 1, Cell{Rune: ' ', FG: ColorWhite, BG: testRed})
	s.DrawText(1, 1, "3", testGray)

	c := s.GetCell(1, 1)
	if c.Rune != '3' || c.FG != testGray {
		t.Errorf("cell = %+v, expected gray '3'", c)
	}
	if c.BG != testRed {
		t.Errorf("background = %v, expected %v", c.BG, testRed)
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextCentered(2, "Hi", ColorWhite)

	x := (20 - 2) / 2
	if s.GetCell(x, 2).Rune != 'H' || s.GetCell(x+1, 2).Rune != 'i' {
		t.Errorf("DrawTextCentered failed, text not at expected position")
	}
	if s.GetCell(x-1, 2).Rune != ' ' {
		t.Errorf("DrawTextCentered wrote left of the text")
	}
}

func TestScreenDrawRect(t *testing.T) {
	s := NewScreen(10, 10)
	fill := Cell{Rune: '#', FG: ColorWhite, BG: testGray}
	s.DrawRect(NewRect(2, 2, 3, 3), fill)

	for y := 2; y < 5; y++ {
		for x := 2; x < 5; x++ {
			if s.GetCell(x, y) != fill {
				t.Errorf("DrawRect: expected fill at (%d, %d), got %+v", x, y, s.GetCell(x, y))
			}
		}
	}

	if s.GetCell(1, 1) != blank {
		t.Error("DrawRect should not affect outside area")
	}
	if s.GetCell(5, 5) != blank {
		t.Error("DrawRect should not affect outside area")
	}

	// Partly outside the screen is clipped
	s.DrawRect(NewRect(8, 8, 5, 5), fill)
	if s.GetCell(9, 9) != fill {
		t.Error("DrawRect should fill the visible part")
	}
}

func TestColorConversions(t *testing.T) {
	c := Hex(0x808080)
	if c != RGB(0x80, 0x80, 0x80) {
		t.Errorf("Hex(0x808080) = %+v, expected gray", c)
	}
	if c.String() != "#808080" {
		t.Errorf("String() = %q, expected #808080", c.String())
	}

	rgba := testRed.ToRGBA()
	if rgba.R != 0xFF || rgba.G != 0 || rgba.B != 0 || rgba.A != 0xFF {
		t.Errorf("ToRGBA() = %+v, expected opaque red", rgba)
	}
}

func TestActionSliderDelta(t *testing.T) {
	tests := []struct {
		action   Action
		left     bool
		steps    int
		moveable bool
	}{
		{ActionLeftUp, true, -1, true},
		{ActionLeftDown, true, 1, true},
		{ActionRightUp, false, -1, true},
		{ActionRightDown, false, 1, true},
		{ActionQuit, false, 0, false},
		{ActionNone, false, 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.action.String(), func(t *testing.T) {
			left, steps, ok := tc.action.SliderDelta()
			if left != tc.left || steps != tc.steps || ok != tc.moveable {
				t.Errorf("SliderDelta() = (%v, %d, %v), expected (%v, %d, %v)",
					left, steps, ok, tc.left, tc.steps, tc.moveable)
			}
		})
	}
}
