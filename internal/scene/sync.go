package scene

import "github.com/vovakirdan/slider-pong/internal/pong"

// Positioner is a movable display element.
type Positioner interface {
	SetPosition(x, y int)
}

// Sprites groups the three handles the loop moves every tick.
type Sprites struct {
	Ball  Positioner
	Left  Positioner
	Right Positioner
}

// Sync pushes the ball and paddle positions to their display elements.
func Sync(sp Sprites, s *pong.GameState) {
	sp.Ball.SetPosition(s.Ball.X, s.Ball.Y)
	sp.Left.SetPosition(pong.PaddleX(pong.Left), s.Left.Y)
	sp.Right.SetPosition(pong.PaddleX(pong.Right), s.Right.Y)
}
