package core

import (
	"fmt"
	"image/color"
)

// Color is a 24-bit RGB colour. The TFT receives it as color.RGBA, the
// terminal as a lipgloss hex colour.
type Color struct {
	R, G, B uint8
}

// Colours of a blank screen cell.
var (
	ColorBlack = Color{0x00, 0x00, 0x00}
	ColorWhite = Color{0xFF, 0xFF, 0xFF}
)

// RGB builds a Color from its components.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// Hex parses a 0xRRGGBB value, the notation display palettes use.
func Hex(v uint32) Color {
	return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}
}

// String returns the colour as "#rrggbb".
func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ToRGBA converts to an opaque image/color value.
func (c Color) ToRGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xFF}
}
