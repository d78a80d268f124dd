package core

// Action represents a semantic simulator action, abstracted from physical
// key presses. The firmware has no actions: its sliders are read directly.
type Action int

const (
	ActionNone      Action = iota
	ActionLeftUp           // W - move left slider up
	ActionLeftDown         // S - move left slider down
	ActionRightUp          // Up arrow - move right slider up
	ActionRightDown        // Down arrow - move right slider down
	ActionHelp             // ? - toggle full help
	ActionQuit             // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeftUp:
		return "LeftUp"
	case ActionLeftDown:
		return "LeftDown"
	case ActionRightUp:
		return "RightUp"
	case ActionRightDown:
		return "RightDown"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// SliderDelta returns which slider an action moves and in which direction.
// Up on screen means a smaller raw reading. ok is false for actions that
// do not move a slider.
func (a Action) SliderDelta() (left bool, steps int, ok bool) {
	switch a {
	case ActionLeftUp:
		return true, -1, true
	case ActionLeftDown:
		return true, 1, true
	case ActionRightUp:
		return false, -1, true
	case ActionRightDown:
		return false, 1, true
	}
	return false, 0, false
}
