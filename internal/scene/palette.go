package scene

import (
	"github.com/vovakirdan/slider-pong/internal/core"
	"github.com/vovakirdan/slider-pong/internal/pong"
)

// Background returns the gradient colour of row y: dim purple at the top
// fading to dim blue at the bottom, quantised to a 256-entry palette.
func Background(y int) core.Color {
	i := core.Clamp(y, 0, pong.ScreenHeight-1) * 255 / pong.ScreenHeight
	return core.RGB(uint8((255-i)/4), 0, uint8(i/4))
}
