// Package config provides YAML-based configuration loading for the
// terminal simulator. The firmware has no filesystem and runs on
// core.DefaultConfig.
package config

import (
	"fmt"
	"time"

	"github.com/vovakirdan/slider-pong/internal/core"
	"github.com/vovakirdan/slider-pong/internal/registry"
)

// PongConfig contains all simulator configuration.
type PongConfig struct {
	Timing      TimingConfig     `yaml:"timing"`
	Controllers ControllerConfig `yaml:"controllers"`
	Slider      SliderConfig     `yaml:"slider"`
	CPU         CPUConfig        `yaml:"cpu"`
	Sweep       SweepConfig      `yaml:"sweep"`
}

// TimingConfig defines the main loop cadence.
type TimingConfig struct {
	TickMS       int `yaml:"tick_ms"`
	ServeDelayMS int `yaml:"serve_delay_ms"`
}

// ControllerConfig names the registered controller driving each slider.
type ControllerConfig struct {
	Left  string `yaml:"left"`
	Right string `yaml:"right"`
}

// SliderConfig defines the keyboard slider.
type SliderConfig struct {
	Step int `yaml:"step"` // Raw units per key press
}

// CPUConfig defines the CPU opponent.
type CPUConfig struct {
	Skill float64 `yaml:"skill"` // 0-1, 1 = perfect tracking speed
	Speed float64 `yaml:"speed"` // Pixels per tick at full skill
}

// SweepConfig defines the demo sweep controller.
type SweepConfig struct {
	PeriodTicks int `yaml:"period_ticks"`
}

// Validate checks that every value is usable.
func (c PongConfig) Validate() error {
	switch {
	case c.Timing.TickMS <= 0:
		return fmt.Errorf("timing.tick_ms must be positive, got %d", c.Timing.TickMS)
	case c.Timing.ServeDelayMS < 0:
		return fmt.Errorf("timing.serve_delay_ms must not be negative, got %d", c.Timing.ServeDelayMS)
	case c.Controllers.Left == "" || c.Controllers.Right == "":
		return fmt.Errorf("controllers.left and controllers.right are required")
	case c.Slider.Step < 1 || c.Slider.Step > 65535:
		return fmt.Errorf("slider.step must be in [1, 65535], got %d", c.Slider.Step)
	case c.CPU.Skill <= 0 || c.CPU.Skill > 1:
		return fmt.Errorf("cpu.skill must be in (0, 1], got %g", c.CPU.Skill)
	case c.CPU.Speed <= 0:
		return fmt.Errorf("cpu.speed must be positive, got %g", c.CPU.Speed)
	case c.Sweep.PeriodTicks <= 0:
		return fmt.Errorf("sweep.period_ticks must be positive, got %d", c.Sweep.PeriodTicks)
	}
	return nil
}

// RuntimeConfig converts the timing section for the main loop.
func (c PongConfig) RuntimeConfig(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		TickInterval: time.Duration(c.Timing.TickMS) * time.Millisecond,
		ServeDelay:   time.Duration(c.Timing.ServeDelayMS) * time.Millisecond,
		Seed:         seed,
	}
}

// ControllerOptions converts the controller sections for the registry.
func (c PongConfig) ControllerOptions() registry.Options {
	return registry.Options{
		Step:        c.Slider.Step,
		CPUSkill:    c.CPU.Skill,
		CPUSpeed:    c.CPU.Speed,
		SweepPeriod: c.Sweep.PeriodTicks,
	}
}
