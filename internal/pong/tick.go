package pong

// StepResult is returned by Tick after each simulation step.
type StepResult struct {
	Scored bool
	Event  ScoreEvent // Valid when Scored is set
}

// Tick runs one simulation step: paddles follow the readings, the ball
// moves and collides, then scoring is evaluated. It does not wait; the
// caller decides how long the serve pause lasts.
func Tick(s *GameState, in Inputs, rng Rand) StepResult {
	s.ApplyInputs(in)
	s.StepPhysics(rng)

	ev, scored := s.CheckScore(rng)
	return StepResult{Scored: scored, Event: ev}
}
