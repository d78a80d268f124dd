package core

// Cell is one character position of a Screen.
type Cell struct {
	Rune rune
	FG   Color
	BG   Color
}

// blank is the cell a cleared screen is filled with.
var blank = Cell{Rune: ' ', FG: ColorWhite, BG: ColorBlack}

// Screen is a 2D character buffer the terminal simulator rasterises the
// playfield into. It decouples drawing from the terminal; the platform turns
// it into styled text.
type Screen struct {
	width  int
	height int
	cells  [][]Cell
}

// NewScreen creates a new screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  width,
		height: height,
	}
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
	s.Clear()
	return s
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// Clear fills the entire screen with blank cells.
func (s *Screen) Clear() {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = blank
		}
	}
}

// SetCell places a cell at the given position.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) SetCell(x, y int, c Cell) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y][x] = c
}

// GetCell returns the cell at the given position, or a blank cell when out
// of bounds.
func (s *Screen) GetCell(x, y int) Cell {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return blank
	}
	return s.cells[y][x]
}

// DrawText writes text in fg starting at (x, y), keeping each cell's
// background. Characters beyond the screen bounds are clipped.
func (s *Screen) DrawText(x, y int, text string, fg Color) {
	for i, r := range []rune(text) {
		if x+i < 0 || x+i >= s.width || y < 0 || y >= s.height {
			continue
		}
		c := &s.cells[y][x+i]
		c.Rune = r
		c.FG = fg
	}
}

// DrawTextCentered draws text centered horizontally on row y.
func (s *Screen) DrawTextCentered(y int, text string, fg Color) {
	x := (s.width - len([]rune(text))) / 2
	s.DrawText(x, y, text, fg)
}

// DrawRect fills a rectangular area with the given cell.
func (s *Screen) DrawRect(r Rect, c Cell) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			s.SetCell(x, y, c)
		}
	}
}
