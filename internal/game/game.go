// Package game implements the platformer simulation kernel: fixed-step
// actor physics, axis-separated AABB collision, a scroll-and-clamp
// camera, win/lose evaluation and the menu/playing/game-over/win state
// machine. The kernel is deterministic and free of I/O; rendering,
// audio, persistence and input decoding live in the platform layer.
package game

import (
	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Game ties the level and the state machine into the platform's
// Reset / Step / Render / State contract.
type Game struct {
	machine *Machine
	level   *Level

	levelName string
	records   []Record

	tuning  config.Tuning
	runtime core.RuntimeConfig
	tick    uint64
	quit    bool
}

// New creates a game on the built-in World 1-1 with the given tuning.
// The tuning is fixed for the game's lifetime; callers resolve it once
// at startup (config.Load) and pass it down.
func New(tuning config.Tuning) *Game {
	g := &Game{tuning: tuning}
	g.SetLevel("World 1-1", World1Records())
	return g
}

// SetLevel replaces the level definition used on the next run. Records
// must have passed ValidateRecords.
func (g *Game) SetLevel(name string, records []Record) {
	g.levelName = name
	g.records = records
	if g.machine != nil {
		g.machine.records = records
	}
}

// LevelName returns the display name of the configured level.
func (g *Game) LevelName() string {
	return g.levelName
}

// Reset prepares a fresh session in the menu phase.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.runtime = cfg
	g.level = NewLevel(g.tuning)
	g.machine = NewMachine(g.level, g.records)
	g.tick = 0
	g.quit = false
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if in.Has(core.ActionQuit) {
		g.quit = true
		return core.StepResult{State: g.State(), Quit: true}
	}

	sounds, quit := g.machine.Step(in)
	if quit {
		g.quit = true
	}
	return core.StepResult{
		State:  g.State(),
		Sounds: sounds,
		Quit:   quit,
	}
}

// State returns the externally visible game state.
func (g *Game) State() core.GameState {
	phase := g.machine.Phase()
	return core.GameState{
		Score:    g.level.Score,
		GameOver: phase == PhaseGameOver || phase == PhaseWin,
	}
}

// Level exposes the live level, read-only by convention. Collaborators
// (renderer, tests) must not mutate it.
func (g *Game) Level() *Level {
	return g.level
}

// Phase returns the machine's current phase.
func (g *Game) Phase() Phase {
	return g.machine.Phase()
}

// Tick returns the number of steps since Reset.
func (g *Game) Tick() uint64 {
	return g.tick
}
