// Package controllers provides the host-side stand-ins for the two
// physical sliders. Each registers itself with the controller registry.
package controllers

import (
	"github.com/vovakirdan/slider-pong/internal/core"
	"github.com/vovakirdan/slider-pong/internal/pong"
	"github.com/vovakirdan/slider-pong/internal/registry"
)

// Nudger is implemented by controllers a person moves by hand.
type Nudger interface {
	Nudge(steps int)
}

// Slider is a virtual slider moved in fixed raw-unit steps.
type Slider struct {
	raw  int
	step int
}

// NewSlider creates a slider resting at mid travel.
func NewSlider(step int) *Slider {
	return &Slider{
		raw:  pong.MaxAnalog / 2,
		step: core.Clamp(step, 1, pong.MaxAnalog),
	}
}

// Get returns the current reading.
func (s *Slider) Get() uint16 {
	return uint16(s.raw)
}

// Nudge moves the slider by the given number of steps. Negative values move
// the paddle up.
func (s *Slider) Nudge(steps int) {
	s.raw = core.Clamp(s.raw+steps*s.step, 0, pong.MaxAnalog)
}

func init() {
	registry.Register("keyboard", "Keyboard slider", func(_ pong.Side, _ *pong.GameState, opts registry.Options) pong.AnalogInput {
		return NewSlider(opts.Step)
	})
}
