// Package scene describes what the display shows: a gradient background,
// two paddles, the ball and the centre divider. Platforms rasterise it;
// the main loop only moves its sprites.
package scene

import (
	"github.com/vovakirdan/slider-pong/internal/core"
	"github.com/vovakirdan/slider-pong/internal/pong"
)

// Element colours.
var (
	PaddleColor  = core.Hex(0xFFFFFF)
	BallColor    = core.Hex(0xFF0000)
	DividerColor = core.Hex(0x808080)
)

// Sprite is a movable solid (or patterned) rectangle.
type Sprite struct {
	name  string
	rect  core.Rect
	color core.Color
	lit   func(x, y int) bool // Local coordinates; nil means solid
	scene *Scene
}

// Name identifies the sprite in logs and tests.
func (s *Sprite) Name() string {
	return s.name
}

// Rect returns the area the sprite occupies.
func (s *Sprite) Rect() core.Rect {
	return s.rect
}

// Color returns the sprite's fill colour.
func (s *Sprite) Color() core.Color {
	return s.color
}

// Solid reports whether the sprite paints every pixel of its rect.
func (s *Sprite) Solid() bool {
	return s.lit == nil
}

// Covers reports whether the sprite paints the pixel (x, y).
func (s *Sprite) Covers(x, y int) bool {
	if !s.rect.Contains(x, y) {
		return false
	}
	return s.lit == nil || s.lit(x-s.rect.X, y-s.rect.Y)
}

// SetPosition moves the sprite's top-left corner and reports the damaged
// region to the scene.
func (s *Sprite) SetPosition(x, y int) {
	if x == s.rect.X && y == s.rect.Y {
		return
	}
	old := s.rect
	s.rect.X, s.rect.Y = x, y
	if s.scene != nil {
		s.scene.damage(old.Union(s.rect))
	}
}

// Scene is the layer stack for one playfield. Layers are drawn in order;
// later layers cover earlier ones.
type Scene struct {
	Left    *Sprite
	Right   *Sprite
	Ball    *Sprite
	Divider *Sprite

	layers   []*Sprite
	onDamage func(core.Rect)
}

// New builds the scene for the given state.
func New(state *pong.GameState) *Scene {
	sc := &Scene{}

	sc.Left = sc.add("left paddle", state.PaddleRect(pong.Left), PaddleColor, nil)
	sc.Right = sc.add("right paddle", state.PaddleRect(pong.Right), PaddleColor, nil)
	sc.Ball = sc.add("ball", state.Ball.Rect(), BallColor, nil)
	sc.Divider = sc.add("divider",
		core.NewRect(pong.ScreenWidth/2, 0, 1, pong.ScreenHeight),
		DividerColor,
		func(_, y int) bool { return y%4 < 2 },
	)

	return sc
}

func (sc *Scene) add(name string, r core.Rect, c core.Color, lit func(x, y int) bool) *Sprite {
	s := &Sprite{name: name, rect: r, color: c, lit: lit, scene: sc}
	sc.layers = append(sc.layers, s)
	return s
}

// Bounds returns the playfield rectangle.
func (sc *Scene) Bounds() core.Rect {
	return core.NewRect(0, 0, pong.ScreenWidth, pong.ScreenHeight)
}

// Layers returns the sprites in draw order.
func (sc *Scene) Layers() []*Sprite {
	return sc.layers
}

// Sprites returns the handles the render sync moves.
func (sc *Scene) Sprites() Sprites {
	return Sprites{Ball: sc.Ball, Left: sc.Left, Right: sc.Right}
}

// OnDamage registers the callback invoked with the invalidated region after
// every sprite move. Only one callback is kept.
func (sc *Scene) OnDamage(fn func(core.Rect)) {
	sc.onDamage = fn
}

func (sc *Scene) damage(r core.Rect) {
	if sc.onDamage == nil {
		return
	}
	r = r.Clip(sc.Bounds())
	if r.Empty() {
		return
	}
	sc.onDamage(r)
}

// ColorAt returns the colour of pixel (x, y) with all layers composed.
func (sc *Scene) ColorAt(x, y int) core.Color {
	for i := len(sc.layers) - 1; i >= 0; i-- {
		if sc.layers[i].Covers(x, y) {
			return sc.layers[i].color
		}
	}
	return Background(y)
}
