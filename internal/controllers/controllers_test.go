package controllers

import (
	"testing"

	"github.com/vovakirdan/slider-pong/internal/pong"
	"github.com/vovakirdan/slider-pong/internal/registry"
)

func TestSliderNudge(t *testing.T) {
	s := NewSlider(4096)

	if s.Get() != 32767 {
		t.Fatalf("initial reading = %d, expected 32767", s.Get())
	}

	s.Nudge(1)
	if s.Get() != 36863 {
		t.Errorf("after one step down = %d, expected 36863", s.Get())
	}

	s.Nudge(100)
	if s.Get() != pong.MaxAnalog {
		t.Errorf("slider should stop at %d, got %d", pong.MaxAnalog, s.Get())
	}

	s.Nudge(-100)
	if s.Get() != 0 {
		t.Errorf("slider should stop at 0, got %d", s.Get())
	}
}

func TestSliderStepClamped(t *testing.T) {
	s := NewSlider(0)
	s.Nudge(1)
	if s.Get() != 32768 {
		t.Errorf("zero step should be raised to 1, reading = %d", s.Get())
	}
}

func TestCPUTracksIncomingBall(t *testing.T) {
	state := pong.NewGameState()
	state.Ball = pong.Ball{X: 64, Y: 20, DX: 2, DY: 0}

	cpu := NewCPU(pong.Right, state, 1.0, 2.0)
	if got := pong.PaddleY(cpu.Get()); got != 68 {
		t.Errorf("after one tick paddle = %d, expected 68", got)
	}
	if got := pong.PaddleY(cpu.Get()); got != 66 {
		t.Errorf("after two ticks paddle = %d, expected 66", got)
	}
}

func TestCPUIgnoresOutgoingBall(t *testing.T) {
	state := pong.NewGameState()
	state.Ball = pong.Ball{X: 64, Y: 20, DX: -2, DY: 0}

	cpu := NewCPU(pong.Right, state, 1.0, 2.0)
	for i := 0; i < 10; i++ {
		if got := pong.PaddleY(cpu.Get()); got != 70 {
			t.Fatalf("tick %d: paddle = %d, expected to hold at 70", i, got)
		}
	}

	left := NewCPU(pong.Left, state, 1.0, 2.0)
	if got := pong.PaddleY(left.Get()); got != 68 {
		t.Errorf("left CPU paddle = %d, expected 68", got)
	}
}

func TestCPUSkillScalesSpeed(t *testing.T) {
	state := pong.NewGameState()
	state.Ball = pong.Ball{X: 64, Y: 150, DX: 2, DY: 0}

	cpu := NewCPU(pong.Right, state, 0.5, 4.0)
	if got := pong.PaddleY(cpu.Get()); got != 72 {
		t.Errorf("paddle = %d, expected 72", got)
	}
}

func TestCPUStaysInTravel(t *testing.T) {
	state := pong.NewGameState()
	state.Ball = pong.Ball{X: 64, Y: 0, DX: 2, DY: 0}

	cpu := NewCPU(pong.Right, state, 1.0, 3.0)
	for i := 0; i < 100; i++ {
		cpu.Get()
	}
	if got := pong.PaddleY(cpu.Get()); got != 0 {
		t.Errorf("paddle = %d, expected to rest at 0", got)
	}

	state.Ball.Y = 157
	for i := 0; i < 100; i++ {
		cpu.Get()
	}
	if got := pong.PaddleY(cpu.Get()); got != 140 {
		t.Errorf("paddle = %d, expected to rest at 140", got)
	}
}

func TestSweepTriangle(t *testing.T) {
	left := NewSweep(pong.Left, 4)
	want := []uint16{0, 32767, 65535, 32767, 0, 32767}
	for i, w := range want {
		if got := left.Get(); got != w {
			t.Errorf("tick %d: reading = %d, expected %d", i, got, w)
		}
	}

	right := NewSweep(pong.Right, 4)
	if got := right.Get(); got != 65535 {
		t.Errorf("right sweep should start half a period ahead, got %d", got)
	}
}

func TestControllersRegistered(t *testing.T) {
	for _, id := range []string{"keyboard", "cpu", "sweep"} {
		in, err := registry.Create(id, pong.Left, pong.NewGameState(), registry.DefaultOptions())
		if err != nil {
			t.Errorf("Create(%q) failed: %v", id, err)
			continue
		}
		if y := pong.PaddleY(in.Get()); y < 0 || y > 140 {
			t.Errorf("%s: paddle %d outside travel", id, y)
		}
	}

	in, _ := registry.Create("keyboard", pong.Left, pong.NewGameState(), registry.DefaultOptions())
	if _, ok := in.(Nudger); !ok {
		t.Error("keyboard controller should implement Nudger")
	}
}

func TestCPUSettlesOnBallCentre(t *testing.T) {
	state := pong.NewGameState()
	state.Ball = pong.Ball{X: 64, Y: 40, DX: 2, DY: 0}

	cpu := NewCPU(pong.Right, state, 1.0, 2.0)
	for i := 0; i < 100; i++ {
		cpu.Get()
	}

	// Ball centre row 41 lines up with the paddle's middle at y=31.
	if got := pong.PaddleY(cpu.Get()); got < 29 || got > 33 {
		t.Errorf("paddle = %d, expected within 2 of 31", got)
	}
}
