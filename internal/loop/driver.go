// Package loop runs the fixed-rate main loop: sample the sliders, advance
// the game, announce points, move the sprites, wait. It depends only on
// interfaces so the same driver runs on the Pico and in the terminal.
package loop

import (
	"context"
	"time"

	"github.com/vovakirdan/slider-pong/internal/core"
	"github.com/vovakirdan/slider-pong/internal/pong"
	"github.com/vovakirdan/slider-pong/internal/scene"
)

// Logger is the subset of *log.Logger (charmbracelet/log) the driver uses.
type Logger interface {
	Debug(msg interface{}, keyvals ...interface{})
}

type nopLogger struct{}

func (nopLogger) Debug(interface{}, ...interface{}) {}

// SleepFunc waits for d or until ctx is done.
type SleepFunc func(ctx context.Context, d time.Duration) error

// Config wires the driver to its collaborators.
type Config struct {
	Left      pong.AnalogInput
	Right     pong.AnalogInput
	Sprites   scene.Sprites
	Rand      pong.Rand
	Announcer Announcer
	Runtime   core.RuntimeConfig
	Logger    Logger    // Optional
	Sleep     SleepFunc // Optional, defaults to a timer
}

// Driver owns the game state and steps it one tick at a time.
type Driver struct {
	state     *pong.GameState
	left      pong.AnalogInput
	right     pong.AnalogInput
	sprites   scene.Sprites
	rng       pong.Rand
	announcer Announcer
	runtime   core.RuntimeConfig
	logger    Logger
	sleep     SleepFunc
	ticks     uint64
}

// New creates a driver for state.
func New(state *pong.GameState, cfg Config) *Driver {
	d := &Driver{
		state:     state,
		left:      cfg.Left,
		right:     cfg.Right,
		sprites:   cfg.Sprites,
		rng:       cfg.Rand,
		announcer: cfg.Announcer,
		runtime:   cfg.Runtime,
		logger:    cfg.Logger,
		sleep:     cfg.Sleep,
	}
	if d.logger == nil {
		d.logger = nopLogger{}
	}
	if d.sleep == nil {
		d.sleep = sleepTimer
	}
	return d
}

// State returns the game state the driver mutates.
func (d *Driver) State() *pong.GameState {
	return d.state
}

// Ticks returns the number of completed ticks.
func (d *Driver) Ticks() uint64 {
	return d.ticks
}

// Step runs one tick and returns how long to wait before the next one:
// the tick interval, plus the serve delay when a point was scored.
func (d *Driver) Step() time.Duration {
	in := pong.Sample(d.left, d.right)
	res := pong.Tick(d.state, in, d.rng)
	d.ticks++

	wait := d.runtime.TickInterval
	if res.Scored {
		d.announcer.Announce(res.Event)
		d.logger.Debug("serve",
			"tick", d.ticks,
			"scorer", res.Event.Scorer,
			"dx", d.state.Ball.DX,
			"dy", d.state.Ball.DY,
		)
		wait += d.runtime.ServeDelay
	}

	scene.Sync(d.sprites, d.state)
	return wait
}

// Run steps forever at the configured cadence. It only returns when ctx is
// done; on the device ctx is never cancelled.
func (d *Driver) Run(ctx context.Context) error {
	for {
		if err := d.sleep(ctx, d.Step()); err != nil {
			return err
		}
	}
}

func sleepTimer(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
