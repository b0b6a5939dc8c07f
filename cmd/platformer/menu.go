package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-platformer/internal/audio"
	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/game"
	"github.com/vovakirdan/tui-platformer/internal/levels"
	"github.com/vovakirdan/tui-platformer/internal/platform/tui"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the platformer with a level picker menu",
	Long: `Start the platformer in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to pick a level.
After a run ends, you return to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select level
  Tab          - Show best runs
  Q            - Quit

Examples:
  platformer menu
  platformer menu --fps 30
  platformer menu --levels-dir ./levels`,
	Run: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom tuning YAML")
	menuCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound effects")
}

func runMenu(_ *cobra.Command, _ []string) {
	reg := levels.NewRegistry(flagLevelsDir)

	// Open run storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		store = nil
	}

	var sound *audio.Manager
	if !flagMute {
		sound = audio.NewManager()
		if soundErr := sound.Initialize(); soundErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: sound disabled: %v\n", soundErr)
			sound = nil
		}
	}

	// Get terminal size
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	tuning, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading tuning: %v\n", err)
		os.Exit(1)
	}

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(reg, store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			break
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(reg, store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue // Back to menu
			}
			break // User quit from scoreboard
		}

		selected := menuResult.Level
		if selected == nil {
			break
		}

		parsed, err := reg.Load(selected.ID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading level: %v\n", err)
			continue
		}

		g := game.New(tuning)
		g.SetLevel(parsed.Name, parsed.Records)

		// Update seed for each run
		cfg.Seed = time.Now().UnixNano()

		if err := tui.Run(g, parsed.ID, store, sound, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}

		// Loop back to menu
	}

	// Cleanup
	if sound != nil {
		sound.Close()
	}
	if store != nil {
		store.Close()
	}
}
