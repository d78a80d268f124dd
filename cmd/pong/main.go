// pong is the terminal simulator for the slider Pong game.
//
// Usage:
//
//	pong play                - Play in the terminal
//	pong simulate --ticks N  - Run N ticks headless and print the score
//	pong controllers         - List available slider controllers
//
// Global flags:
//
//	--config <path>     - Custom config YAML
//	--seed <value>      - RNG seed for reproducible serves (0 = time based)
//	--log-file <path>   - Diagnostics log file
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import controllers to register them
	_ "github.com/vovakirdan/slider-pong/internal/controllers"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pong",
	Short: "Slider Pong - two-slider Pong in your terminal",
	Long: `Slider Pong simulates the two-slider Pong console in the terminal.
Each paddle follows a virtual slider, moved by the keyboard or by a
controller algorithm.

Available commands:
  play         - Play interactively
  simulate     - Run headless and print score announcements
  controllers  - Show available slider controllers

Examples:
  pong play
  pong play --left keyboard --right keyboard
  pong simulate --ticks 5000 --left cpu --right sweep --seed 42
  pong controllers`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write diagnostics to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(controllersCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
}
