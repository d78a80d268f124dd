package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/slider-pong/internal/registry"
)

var controllersCmd = &cobra.Command{
	Use:   "controllers",
	Short: "List all available slider controllers",
	Long:  `Shows a list of all slider controllers registered with the simulator.`,
	Run:   runControllers,
}

func runControllers(cmd *cobra.Command, args []string) {
	controllers := registry.List()

	if len(controllers) == 0 {
		fmt.Println("No controllers available.")
		return
	}

	fmt.Println("Available controllers:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, c := range controllers {
		if len(c.ID) > maxIDLen {
			maxIDLen = len(c.ID)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")

	for _, c := range controllers {
		fmt.Printf("  %-*s  %s\n", maxIDLen, c.ID, c.Title)
	}

	fmt.Println()
	fmt.Println("Use 'pong play --left <id> --right <id>' to pick controllers.")
}
