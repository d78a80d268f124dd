package core

import "time"

// RuntimeConfig contains the timing parameters of the main loop.
// Both the firmware and the terminal simulator build one of these.
type RuntimeConfig struct {
	TickInterval time.Duration // Delay between two ticks
	ServeDelay   time.Duration // Extra pause after a point is scored
	Seed         int64         // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with the stock timing.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		TickInterval: 50 * time.Millisecond,
		ServeDelay:   time.Second,
		Seed:         0, // 0 means use current time in platform layer
	}
}
