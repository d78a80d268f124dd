package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/slider-pong/internal/core"
)

type colorPair struct {
	fg, bg core.Color
}

// styleCache maps colour pairs to lipgloss styles so each pair is built once.
var styleCache = map[colorPair]lipgloss.Style{}

func styleFor(p colorPair) lipgloss.Style {
	if s, ok := styleCache[p]; ok {
		return s
	}
	s := lipgloss.NewStyle().
		Foreground(lipgloss.Color(p.fg.String())).
		Background(lipgloss.Color(p.bg.String()))
	styleCache[p] = s
	return s
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colours to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same colours for efficiency
		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			pair := colorPair{cell.FG, cell.BG}

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if (colorPair{cell.FG, cell.BG}) != pair {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styleFor(pair).Render(run.String()))
		}
	}
	return sb.String()
}
