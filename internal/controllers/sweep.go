package controllers

import (
	"github.com/vovakirdan/slider-pong/internal/pong"
	"github.com/vovakirdan/slider-pong/internal/registry"
)

// Sweep moves a slider end to end and back as a triangle wave.
type Sweep struct {
	tick   int
	period int
}

// NewSweep creates a sweep with the given period in ticks. The right side
// starts half a period ahead so both paddles are not mirrored.
func NewSweep(side pong.Side, period int) *Sweep {
	period = max(period, 2)
	s := &Sweep{period: period}
	if side == pong.Right {
		s.tick = period / 2
	}
	return s
}

// Get returns the reading for the current tick, then advances one tick.
func (s *Sweep) Get() uint16 {
	phase := s.tick % s.period
	s.tick++

	half := s.period / 2
	if phase > half {
		phase = s.period - phase
	}
	return uint16(phase * pong.MaxAnalog / half)
}

func init() {
	registry.Register("sweep", "Sweep demo", func(side pong.Side, _ *pong.GameState, opts registry.Options) pong.AnalogInput {
		return NewSweep(side, opts.SweepPeriod)
	})
}
