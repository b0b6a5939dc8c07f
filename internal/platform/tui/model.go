package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-platformer/internal/audio"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/game"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

// Model is the Bubble Tea model driving the platformer: it accumulates
// key events into the per-tick input frame, steps the simulation on
// every TickMsg, forwards sound events to the audio manager and saves
// the score once per finished run.
type Model struct {
	game       *game.Game
	levelID    string
	screen     *core.Screen
	store      *storage.Store
	sound      *audio.Manager
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
	runSaved   bool // whether the current finished run is persisted
}

// NewModel creates a new Bubble Tea model for the given game. The store
// and sound manager may be nil; play then continues without persistence
// or audio.
func NewModel(g *game.Game, levelID string, store *storage.Store, sound *audio.Manager, cfg core.RuntimeConfig) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		game:       g,
		levelID:    levelID,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		sound:      sound,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
	}
}

// Init initializes the model and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey accumulates input for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize adapts the screen buffer; the simulation keeps running,
// the renderer projects the world onto whatever size we have.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick runs one simulation step.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	// Platform-level restart: start the run over from the end screens.
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.inputFrame.Clear()
		m.inputFrame.Set(core.ActionConfirm)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if m.sound != nil {
		m.sound.PlayAll(result.Sounds)
	}

	if m.gameState.GameOver && !m.runSaved {
		m.saveRun()
		m.runSaved = true
	}
	if !m.gameState.GameOver {
		m.runSaved = false
	}

	m.inputFrame.Clear()

	if result.Quit {
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(m.config.TickRate)
}

// saveRun persists the finished run, best effort.
func (m Model) saveRun() {
	if m.store == nil {
		return
	}
	outcome := storage.OutcomeLose
	if m.game.Phase() == game.PhaseWin {
		outcome = storage.OutcomeWin
	}
	//nolint:errcheck // Best-effort save, game continues regardless
	m.store.SaveRun(m.levelID, m.gameState.Score, outcome)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".platformer", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.levelID, timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given model.
func Run(g *game.Game, levelID string, store *storage.Store, sound *audio.Manager, cfg core.RuntimeConfig) error {
	model := NewModel(g, levelID, store, sound, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
