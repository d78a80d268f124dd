package pong

import "github.com/vovakirdan/slider-pong/internal/core"

// Rand is the randomness the simulation consumes. *math/rand.Rand
// satisfies it; tests pass scripted sequences.
type Rand interface {
	Intn(n int) int
}

// StepPhysics advances the ball one tick: move, bounce off the top and
// bottom walls, then resolve at most one paddle hit.
func (s *GameState) StepPhysics(rng Rand) {
	b := &s.Ball
	b.X += b.DX
	b.Y += b.DY

	// Reflect only; the ball may sit past the wall for one tick.
	if b.Y <= 0 || b.Y >= ScreenHeight-BallSize {
		b.DY = -b.DY
	}

	ball := b.Rect()
	switch {
	case ball.Touches(s.PaddleRect(Left)):
		b.DX = core.Abs(b.DX)
		s.deflect(rng)
	case ball.Touches(s.PaddleRect(Right)):
		b.DX = -core.Abs(b.DX)
		s.deflect(rng)
	}
}

// deflect adds a random -1, 0 or +1 to the vertical speed and keeps it
// within MaxBallDY.
func (s *GameState) deflect(rng Rand) {
	jitter := rng.Intn(3) - 1
	s.Ball.DY = core.Clamp(s.Ball.DY+jitter, -MaxBallDY, MaxBallDY)
}
