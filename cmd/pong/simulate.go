package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/slider-pong/internal/logging"
	"github.com/vovakirdan/slider-pong/internal/loop"
	"github.com/vovakirdan/slider-pong/internal/scene"
)

var (
	flagTicks     int
	flagSimLeft   string
	flagSimRight  string
	flagSimBanner bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run the game headless",
	Long: `Run the game for a fixed number of ticks without waiting between them.
Score announcements are printed as they happen, followed by the final score.
Keyboard sliders stay centred.

Examples:
  pong simulate --ticks 10000
  pong simulate --ticks 2000 --left cpu --right sweep --seed 7`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagTicks, "ticks", 1000, "Number of ticks to run")
	simulateCmd.Flags().StringVar(&flagSimLeft, "left", "", "Left slider controller ID")
	simulateCmd.Flags().StringVar(&flagSimRight, "right", "", "Right slider controller ID")
	simulateCmd.Flags().BoolVar(&flagSimBanner, "banner", false, "Print the start-up banner first")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	if flagTicks < 0 {
		return fmt.Errorf("--ticks must not be negative, got %d", flagTicks)
	}

	logger, closeLog, err := openLogger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer closeLog()

	g, err := newGame(logger, flagSimLeft, flagSimRight)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if flagSimBanner {
		loop.Banner(out)
	}

	sc := scene.New(g.state)
	driver := loop.New(g.state, loop.Config{
		Left:      g.left,
		Right:     g.right,
		Sprites:   sc.Sprites(),
		Rand:      g.rng,
		Announcer: logging.NewAnnouncer(out),
		Runtime:   g.runtime,
		Logger:    logger,
	})

	for range flagTicks {
		driver.Step()
	}

	score := driver.State().Score
	fmt.Fprintf(out, "Final score after %d ticks: %d - %d\n", driver.Ticks(), score.Left, score.Right)
	return nil
}
