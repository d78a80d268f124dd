package controllers

import (
	"math"

	"github.com/vovakirdan/slider-pong/internal/core"
	"github.com/vovakirdan/slider-pong/internal/pong"
	"github.com/vovakirdan/slider-pong/internal/registry"
)

// CPU drives a slider so its paddle chases the ball, with limited speed.
type CPU struct {
	side  pong.Side
	state *pong.GameState
	y     float64 // Paddle position the CPU is aiming for
	speed float64 // Pixels per tick
}

// NewCPU creates a CPU controller for the given side watching state.
func NewCPU(side pong.Side, state *pong.GameState, skill, speed float64) *CPU {
	return &CPU{
		side:  side,
		state: state,
		y:     float64(state.Paddle(side).Y),
		speed: speed * core.ClampF(skill, 0, 1),
	}
}

// Get advances the CPU one tick and returns the reading for its paddle.
// Call it once per tick.
func (c *CPU) Get() uint16 {
	ball := c.state.Ball

	// Only move while the ball is coming towards us
	incoming := (c.side == pong.Left && ball.DX < 0) || (c.side == pong.Right && ball.DX > 0)
	if incoming {
		_, cy := ball.Rect().Center()
		target := float64(cy - pong.PaddleHeight/2)
		diff := target - c.y
		if math.Abs(diff) > c.speed {
			c.y += math.Copysign(c.speed, diff)
		}
	}

	travel := float64(pong.ScreenHeight - pong.PaddleHeight)
	c.y = core.ClampF(c.y, 0, travel)
	return uint16(math.Round(c.y / travel * pong.MaxAnalog))
}

func init() {
	registry.Register("cpu", "CPU opponent", func(side pong.Side, state *pong.GameState, opts registry.Options) pong.AnalogInput {
		return NewCPU(side, state, opts.CPUSkill, opts.CPUSpeed)
	})
}
