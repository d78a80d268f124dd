package pong

import "fmt"

// ScoreEvent describes a point: who scored and the counters after it.
type ScoreEvent struct {
	Scorer Side
	Score  Score
}

// String formats the console announcement for the point.
func (e ScoreEvent) String() string {
	return fmt.Sprintf("%s player scores! Score: %d - %d", e.Scorer, e.Score.Left, e.Score.Right)
}

// CheckScore awards a point when the ball has left the field horizontally
// and serves a new ball. ok is false when play continues.
func (s *GameState) CheckScore(rng Rand) (ev ScoreEvent, ok bool) {
	switch {
	case s.Ball.X < 0:
		s.Score.Right++
		ev.Scorer = Right
	case s.Ball.X > ScreenWidth:
		s.Score.Left++
		ev.Scorer = Left
	default:
		return ScoreEvent{}, false
	}

	ev.Score = s.Score
	s.Serve(rng)
	return ev, true
}

// Serve puts the ball back in the centre with a random diagonal direction.
func (s *GameState) Serve(rng Rand) {
	s.Ball = Ball{
		X:  ScreenWidth / 2,
		Y:  ScreenHeight / 2,
		DX: pick(rng, -ServeDX, ServeDX),
		DY: pick(rng, -ServeDY, ServeDY),
	}
}

// pick returns a or b with equal probability.
func pick(rng Rand, a, b int) int {
	if rng.Intn(2) == 0 {
		return a
	}
	return b
}
