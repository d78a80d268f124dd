package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/slider-pong/internal/controllers"
	"github.com/vovakirdan/slider-pong/internal/core"
	"github.com/vovakirdan/slider-pong/internal/loop"
	"github.com/vovakirdan/slider-pong/internal/pong"
	"github.com/vovakirdan/slider-pong/internal/scene"
)

// Status remembers the latest score announcement for the status line and
// forwards every event to the next announcer.
type Status struct {
	last string
	next loop.Announcer
}

// NewStatus creates a Status forwarding to next, which may be nil.
func NewStatus(next loop.Announcer) *Status {
	return &Status{next: next}
}

// Announce records the event.
func (s *Status) Announce(ev pong.ScoreEvent) {
	s.last = ev.String()
	if s.next != nil {
		s.next.Announce(ev)
	}
}

// Last returns the latest announcement, or "" before the first point.
func (s *Status) Last() string {
	return s.last
}

// Options wires the model to a running game.
type Options struct {
	Driver       *loop.Driver
	Scene        *scene.Scene
	Left         pong.AnalogInput
	Right        pong.AnalogInput
	Status       *Status
	TickInterval time.Duration
}

// Model is the Bubble Tea model for the simulator.
type Model struct {
	opts     Options
	screen   *core.Screen
	header   *core.Screen
	status   *core.Screen
	keys     KeyMap
	help     help.Model
	quitting bool
}

// HUD colours.
var (
	scoreColor  = core.Hex(0xFFFFAF)
	statusColor = core.Hex(0x8A8A8A)
)

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// NewModel creates a new Bubble Tea model.
func NewModel(opts Options) Model {
	return Model{
		opts:   opts,
		screen: core.NewScreen(FieldCols, FieldRows),
		header: core.NewScreen(FieldCols, 1),
		status: core.NewScreen(FieldCols, 1),
		keys:   DefaultKeyMap(),
		help:   help.New(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.opts.TickInterval)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		// The driver reports how long to wait, including the serve pause.
		return m, tickCmd(m.opts.Driver.Step())
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)

	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	if left, steps, ok := action.SliderDelta(); ok {
		in := m.opts.Right
		if left {
			in = m.opts.Left
		}
		// Sliders driven by an algorithm ignore the keyboard.
		if n, isNudger := in.(controllers.Nudger); isNudger {
			n.Nudge(steps)
		}
	}

	return m, nil
}

// View renders the playfield, the score and the help line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	Rasterize(m.opts.Scene, m.screen)
	m.drawHUD()

	return lipgloss.JoinVertical(lipgloss.Left,
		RenderScreen(m.header),
		RenderScreen(m.screen),
		RenderScreen(m.status),
		helpStyle.Render(m.help.View(m.keys)),
	)
}

// drawHUD writes the score above the field and the latest announcement
// below it.
func (m Model) drawHUD() {
	score := m.opts.Driver.State().Score
	m.header.Clear()
	m.header.DrawTextCentered(0, fmt.Sprintf("Left %d - %d Right", score.Left, score.Right), scoreColor)

	status := m.opts.Status.Last()
	if status == "" {
		status = "Score: Left - Right"
	}
	m.status.Clear()
	m.status.DrawText(0, 0, status, statusColor)
}

// Run starts the Bubble Tea program and blocks until the player quits.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
