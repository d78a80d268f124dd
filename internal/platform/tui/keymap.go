package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/slider-pong/internal/core"
)

// KeyMap defines the simulator key bindings.
type KeyMap struct {
	LeftUp    key.Binding
	LeftDown  key.Binding
	RightUp   key.Binding
	RightDown key.Binding
	Help      key.Binding
	Quit      key.Binding
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		LeftUp: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "left up"),
		),
		LeftDown: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "left down"),
		),
		RightUp: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "right up"),
		),
		RightDown: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "right down"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.LeftUp, k.LeftDown, k.RightUp, k.RightDown, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.LeftUp, k.LeftDown},
		{k.RightUp, k.RightDown},
		{k.Help, k.Quit},
	}
}

// Action translates a key message to a simulator action.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.LeftUp):
		return core.ActionLeftUp
	case key.Matches(msg, k.LeftDown):
		return core.ActionLeftDown
	case key.Matches(msg, k.RightUp):
		return core.ActionRightUp
	case key.Matches(msg, k.RightDown):
		return core.ActionRightDown
	case key.Matches(msg, k.Help):
		return core.ActionHelp
	}
	return core.ActionNone
}
