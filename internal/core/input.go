package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the game to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, K, Up arrow - steer up
	ActionDown           // S, J, Down arrow - steer down
	ActionLeft           // A, H, Left arrow - steer left
	ActionRight          // D, L, Right arrow - steer right
	ActionPause          // P - pause/unpause
	ActionRestart        // R - start a fresh board
	ActionQuit           // Q, Ctrl+C - exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame is the batch of actions collected during one simulation tick.
// Actions keep the order in which they arrived; the game applies them in
// that order, so a later steering key overrides an earlier one.
type InputFrame struct {
	actions []Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set appends an action to this frame. ActionNone is ignored.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone {
		return
	}
	f.actions = append(f.actions, a)
}

// Actions returns the actions of this frame in arrival order.
func (f InputFrame) Actions() []Action {
	return f.actions
}

// Len returns the number of actions in the frame.
func (f InputFrame) Len() int {
	return len(f.actions)
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	f.actions = f.actions[:0]
}
