// Package tft draws the scene on the ST7735R panel. The painter itself is
// plain Go and talks to any Display; the device setup in device.go only
// builds under TinyGo.
package tft

import (
	"image/color"

	"github.com/vovakirdan/slider-pong/internal/core"
	"github.com/vovakirdan/slider-pong/internal/scene"
)

// Display is the part of the st7735 driver the painter uses.
type Display interface {
	FillRectangle(x, y, width, height int16, c color.RGBA) error
}

// Painter keeps the panel in step with a scene.
type Painter struct {
	display Display
	scene   *scene.Scene
	err     error
}

// Attach paints the whole scene once, then repaints every region the scene
// reports as damaged.
func Attach(d Display, sc *scene.Scene) (*Painter, error) {
	p := &Painter{display: d, scene: sc}
	if err := p.Paint(sc.Bounds()); err != nil {
		return nil, err
	}
	sc.OnDamage(func(r core.Rect) {
		if err := p.Paint(r); err != nil && p.err == nil {
			p.err = err
		}
	})
	return p, nil
}

// Paint redraws r. Each row is sent as runs of equal colour.
func (p *Painter) Paint(r core.Rect) error {
	r = r.Clip(p.scene.Bounds())
	for y := r.Y; y < r.Bottom(); y++ {
		x := r.X
		for x < r.Right() {
			c := p.scene.ColorAt(x, y)
			end := x + 1
			for end < r.Right() && p.scene.ColorAt(end, y) == c {
				end++
			}
			if err := p.display.FillRectangle(int16(x), int16(y), int16(end-x), 1, c.ToRGBA()); err != nil {
				return err
			}
			x = end
		}
	}
	return nil
}

// Err returns the first error hit while repainting damage, if any.
func (p *Painter) Err() error {
	return p.err
}
