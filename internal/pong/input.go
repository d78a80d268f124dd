package pong

import "math"

// MaxAnalog is the largest reading an analog channel reports.
const MaxAnalog = 65535

// AnalogInput is one slider channel. TinyGo's machine.ADC satisfies it.
type AnalogInput interface {
	Get() uint16
}

// Inputs holds the raw slider readings of one tick.
type Inputs struct {
	Left  uint16
	Right uint16
}

// Sample reads both channels once.
func Sample(left, right AnalogInput) Inputs {
	return Inputs{
		Left:  left.Get(),
		Right: right.Get(),
	}
}

// PaddleY maps a raw reading onto the paddle travel [0, ScreenHeight-PaddleHeight].
// The reading range bounds the result, so no clamp is needed.
func PaddleY(raw uint16) int {
	travel := float64(ScreenHeight - PaddleHeight)
	return int(math.Round(float64(raw) / MaxAnalog * travel))
}

// ApplyInputs moves both paddles to the positions the readings select.
func (s *GameState) ApplyInputs(in Inputs) {
	s.Left.Y = PaddleY(in.Left)
	s.Right.Y = PaddleY(in.Right)
}
