// Package pong implements the slider-controlled Pong simulation: the game
// state, the mapping from analog readings to paddles, ball physics and
// scoring. It owns no timing and no hardware; callers feed it one tick at a
// time.
package pong

import "github.com/vovakirdan/slider-pong/internal/core"

// Playfield geometry, in display pixels.
const (
	ScreenWidth  = 128
	ScreenHeight = 160
	PaddleWidth  = 3
	PaddleHeight = 20
	PaddleOffset = 5 // Distance from edge
	BallSize     = 3
)

// Ball velocity limits.
const (
	MaxBallDY = 3
	ServeDX   = 2
	ServeDY   = 1
)

// Side identifies a player, a paddle or a score counter.
type Side int

const (
	Left Side = iota
	Right
)

// String returns "Left" or "Right".
func (s Side) String() string {
	if s == Right {
		return "Right"
	}
	return "Left"
}

// Ball is the moving square.
type Ball struct {
	X, Y   int
	DX, DY int
}

// Rect returns the area covered by the ball.
func (b Ball) Rect() core.Rect {
	return core.NewRect(b.X, b.Y, BallSize, BallSize)
}

// Paddle only has a vertical position; its column is fixed by its side.
type Paddle struct {
	Y int
}

// Score holds both counters.
type Score struct {
	Left  int
	Right int
}

// GameState is the complete mutable state of a match. A single loop owns
// it and passes it by pointer to every step.
type GameState struct {
	Ball  Ball
	Left  Paddle
	Right Paddle
	Score Score
}

// NewGameState returns the power-on state: ball centred heading down-right,
// paddles centred, no points.
func NewGameState() *GameState {
	paddleY := ScreenHeight/2 - PaddleHeight/2
	return &GameState{
		Ball: Ball{
			X:  ScreenWidth / 2,
			Y:  ScreenHeight / 2,
			DX: ServeDX,
			DY: ServeDY,
		},
		Left:  Paddle{Y: paddleY},
		Right: Paddle{Y: paddleY},
	}
}

// PaddleX returns the fixed column of the paddle on the given side.
func PaddleX(side Side) int {
	if side == Right {
		return ScreenWidth - PaddleOffset - PaddleWidth
	}
	return PaddleOffset
}

// Paddle returns the paddle of the given side.
func (s *GameState) Paddle(side Side) Paddle {
	if side == Right {
		return s.Right
	}
	return s.Left
}

// PaddleRect returns the area covered by the paddle of the given side.
func (s *GameState) PaddleRect(side Side) core.Rect {
	return core.NewRect(PaddleX(side), s.Paddle(side).Y, PaddleWidth, PaddleHeight)
}
