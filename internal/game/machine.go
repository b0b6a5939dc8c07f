package game

import "github.com/vovakirdan/tui-platformer/internal/core"

// Phase is the top-level game state.
type Phase int

const (
	PhaseMenu Phase = iota
	PhasePlaying
	PhaseGameOver
	PhaseWin
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game_over"
	case PhaseWin:
		return "win"
	default:
		return "unknown"
	}
}

// Machine drives the menu / playing / game-over / win flow. Transitions
// happen only through the table in Step; inputs with no entry for the
// current phase are ignored.
type Machine struct {
	phase   Phase
	level   *Level
	records []Record
}

// NewMachine creates a machine starting in the menu. Records must have
// passed ValidateRecords; they are reloaded into the level on every
// transition into PhasePlaying.
func NewMachine(level *Level, records []Record) *Machine {
	return &Machine{
		phase:   PhaseMenu,
		level:   level,
		records: records,
	}
}

// Phase returns the current phase.
func (m *Machine) Phase() Phase {
	return m.phase
}

// Step processes one tick of input. In PhasePlaying it also advances the
// level. Returns the sound events of the tick and whether the player
// asked to terminate.
func (m *Machine) Step(in core.InputFrame) ([]core.SoundEvent, bool) {
	switch m.phase {
	case PhaseMenu:
		switch {
		case in.Has(core.ActionConfirm):
			m.level.Load(m.records)
			m.phase = PhasePlaying
		case in.Has(core.ActionCancel):
			return nil, true
		}

	case PhasePlaying:
		if in.Has(core.ActionCancel) {
			m.phase = PhaseMenu
			return nil, false
		}

		var sounds []core.SoundEvent
		if in.Has(core.ActionJump) && m.level.Player.Jump() {
			sounds = append(sounds, core.SoundJump)
		}

		outcome, coinSounds := m.level.Update(in.Has(core.ActionLeft), in.Has(core.ActionRight))
		sounds = append(sounds, coinSounds...)

		switch outcome {
		case OutcomeWin:
			m.phase = PhaseWin
		case OutcomeLose:
			m.phase = PhaseGameOver
		}
		return sounds, false

	case PhaseGameOver, PhaseWin:
		switch {
		case in.Has(core.ActionConfirm):
			m.phase = PhaseMenu
		case in.Has(core.ActionCancel):
			return nil, true
		}
	}

	return nil, false
}
