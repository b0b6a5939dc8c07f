package core

// Action represents a logical input action, decoupled from physical keys.
type Action int

const (
	ActionNone Action = iota
	ActionLeft
	ActionRight
	ActionJump
	ActionConfirm
	ActionCancel
	ActionRestart
	ActionQuit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionJump:
		return "Jump"
	case ActionConfirm:
		return "Confirm"
	case ActionCancel:
		return "Cancel"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "None"
	}
}

// InputFrame is the set of actions active during a single tick. The
// platform layer accumulates key events into a frame and clears it after
// every simulation step, so the game only ever sees per-tick booleans.
type InputFrame map[Action]bool

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return make(InputFrame)
}

// Set marks an action as active for this frame.
func (f InputFrame) Set(a Action) {
	f[a] = true
}

// Has reports whether an action is active in this frame.
func (f InputFrame) Has(a Action) bool {
	return f[a]
}

// Clear removes all actions from the frame.
func (f InputFrame) Clear() {
	for a := range f {
		delete(f, a)
	}
}

// Clone returns an independent copy of the frame.
func (f InputFrame) Clone() InputFrame {
	c := make(InputFrame, len(f))
	for a, v := range f {
		c[a] = v
	}
	return c
}
