package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/slider-pong/internal/loop"
	"github.com/vovakirdan/slider-pong/internal/platform/tui"
	"github.com/vovakirdan/slider-pong/internal/pong"
	"github.com/vovakirdan/slider-pong/internal/scene"
)

var (
	flagPlayLeft  string
	flagPlayRight string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start an interactive game. Each paddle follows a virtual slider.

Controls (keyboard sliders):
  W/S        - Left slider up/down
  Up/Down    - Right slider up/down (also K/J)
  ?          - Toggle help
  Q/Ctrl+C   - Quit

Controllers are set in the config or with --left/--right.
Run 'pong controllers' to see the choices.

Examples:
  pong play
  pong play --right keyboard
  pong play --left sweep --right cpu --log-file /tmp/pong.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagPlayLeft, "left", "", "Left slider controller ID")
	playCmd.Flags().StringVar(&flagPlayRight, "right", "", "Right slider controller ID")
}

func runPlay(cmd *cobra.Command, args []string) error {
	// The alt screen owns the terminal, so diagnostics only go to --log-file.
	logger, closeLog, err := openLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		if w < tui.MinWidth || h < tui.MinHeight {
			return fmt.Errorf("terminal is %dx%d, need at least %dx%d", w, h, tui.MinWidth, tui.MinHeight)
		}
	}

	g, err := newGame(logger, flagPlayLeft, flagPlayRight)
	if err != nil {
		return err
	}

	sc := scene.New(g.state)
	status := tui.NewStatus(loop.AnnouncerFunc(func(ev pong.ScoreEvent) {
		logger.Info("point", "scorer", ev.Scorer, "left", ev.Score.Left, "right", ev.Score.Right)
	}))
	driver := loop.New(g.state, loop.Config{
		Left:      g.left,
		Right:     g.right,
		Sprites:   sc.Sprites(),
		Rand:      g.rng,
		Announcer: status,
		Runtime:   g.runtime,
		Logger:    logger,
	})

	return tui.Run(tui.Options{
		Driver:       driver,
		Scene:        sc,
		Left:         g.left,
		Right:        g.right,
		Status:       status,
		TickInterval: g.runtime.TickInterval,
	})
}
