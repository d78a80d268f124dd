package main

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/slider-pong/internal/config"
	"github.com/vovakirdan/slider-pong/internal/core"
	"github.com/vovakirdan/slider-pong/internal/logging"
	"github.com/vovakirdan/slider-pong/internal/pong"
	"github.com/vovakirdan/slider-pong/internal/registry"
)

// game holds everything a command needs to start the loop.
type game struct {
	cfg     config.PongConfig
	runtime core.RuntimeConfig
	state   *pong.GameState
	left    pong.AnalogInput
	right   pong.AnalogInput
	rng     *rand.Rand
}

// newGame loads the configuration, applies the controller overrides and
// creates both sliders.
func newGame(logger *log.Logger, leftID, rightID string) (*game, error) {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}
	logger.Info("config loaded", "source", source)

	if leftID != "" {
		cfg.Controllers.Left = leftID
	}
	if rightID != "" {
		cfg.Controllers.Right = rightID
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Debug("rng", "seed", seed)

	g := &game{
		cfg:     cfg,
		runtime: cfg.RuntimeConfig(seed),
		state:   pong.NewGameState(),
	}
	g.rng = rand.New(rand.NewSource(g.runtime.Seed))

	opts := cfg.ControllerOptions()
	if g.left, err = registry.Create(cfg.Controllers.Left, pong.Left, g.state, opts); err != nil {
		return nil, fmt.Errorf("left slider: %w", err)
	}
	if g.right, err = registry.Create(cfg.Controllers.Right, pong.Right, g.state, opts); err != nil {
		return nil, fmt.Errorf("right slider: %w", err)
	}
	logger.Info("controllers", "left", cfg.Controllers.Left, "right", cfg.Controllers.Right)

	return g, nil
}

// openLogger opens the diagnostics logger. Without --log-file it writes to
// fallback. The returned func closes the log file, if any.
func openLogger(fallback io.Writer) (*log.Logger, func() error, error) {
	w := fallback
	closeFn := func() error { return nil }
	if flagLogFile != "" {
		f, err := logging.OpenFile(flagLogFile)
		if err != nil {
			return nil, nil, err
		}
		w, closeFn = f, f.Close
	}

	logger, err := logging.New(w, flagLogLevel)
	if err != nil {
		closeFn()
		return nil, nil, err
	}
	return logger, closeFn, nil
}
