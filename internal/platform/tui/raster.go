package tui

import (
	"github.com/vovakirdan/slider-pong/internal/core"
	"github.com/vovakirdan/slider-pong/internal/pong"
	"github.com/vovakirdan/slider-pong/internal/scene"
)

// Playfield pixels per terminal cell. Cells are roughly twice as tall as
// wide, so 2x4 keeps the 128x160 field close to its real aspect.
const (
	CellW = 2
	CellH = 4
)

// Field dimensions in cells.
const (
	FieldCols = pong.ScreenWidth / CellW
	FieldRows = pong.ScreenHeight / CellH
)

// Minimum terminal size: the field plus the score, status and help lines.
const (
	MinWidth  = FieldCols
	MinHeight = FieldRows + 3
)

// Glyphs for sprites.
const (
	SolidGlyph  = '█'
	DashedGlyph = '┆'
)

// Rasterize draws the scene into dst, which must be FieldCols x FieldRows.
// A cell shows the topmost sprite covering any of its pixels; otherwise
// the background gradient at the cell's middle row.
func Rasterize(sc *scene.Scene, dst *core.Screen) {
	for cy := 0; cy < dst.Height(); cy++ {
		bg := scene.Background(cy*CellH + CellH/2)
		dst.DrawRect(core.NewRect(0, cy, dst.Width(), 1), core.Cell{Rune: ' ', FG: bg, BG: bg})
	}

	for _, sp := range sc.Layers() {
		drawSprite(sp, dst)
	}
}

func drawSprite(sp *scene.Sprite, dst *core.Screen) {
	r := sp.Rect()
	glyph := DashedGlyph
	if sp.Solid() {
		glyph = SolidGlyph
	}

	for cy := floorDiv(r.Y, CellH); cy <= floorDiv(r.Bottom()-1, CellH); cy++ {
		for cx := floorDiv(r.X, CellW); cx <= floorDiv(r.Right()-1, CellW); cx++ {
			if !coversCell(sp, cx, cy) {
				continue
			}
			c := dst.GetCell(cx, cy)
			c.Rune = glyph
			c.FG = sp.Color()
			dst.SetCell(cx, cy, c)
		}
	}
}

func coversCell(sp *scene.Sprite, cx, cy int) bool {
	for y := cy * CellH; y < (cy+1)*CellH; y++ {
		for x := cx * CellW; x < (cx+1)*CellW; x++ {
			if sp.Covers(x, y) {
				return true
			}
		}
	}
	return false
}

// floorDiv divides rounding towards negative infinity, so a ball two pixels
// past the left edge lands in column -1 rather than 0.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}
