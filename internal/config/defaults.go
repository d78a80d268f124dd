package config

import (
	_ "embed"
)

//go:embed defaults/pong.yaml
var defaultPongYAML []byte

// DefaultPongConfig returns the default configuration.
func DefaultPongConfig() PongConfig {
	return PongConfig{
		Timing: TimingConfig{
			TickMS:       50,
			ServeDelayMS: 1000,
		},
		Controllers: ControllerConfig{
			Left:  "keyboard",
			Right: "cpu",
		},
		Slider: SliderConfig{
			Step: 4096,
		},
		CPU: CPUConfig{
			Skill: 0.75,
			Speed: 2.0,
		},
		Sweep: SweepConfig{
			PeriodTicks: 120,
		},
	}
}
