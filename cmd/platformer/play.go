package main

import (
	"fmt"
	"os"

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

var (
	flagConfig string
	flagMute   bool
)

var playCmd = &cobra.Command{
	Use:   "play [level]",
	Short: "Play a level",
	Long: `Start playing the specified level, or World 1-1 when none is named.

Controls:
  Left/Right/A/D - Move
  Space/Up/W     - Jump
  Enter          - Confirm (start, back to menu)
  Esc            - Back / leave the run
  R              - Restart (after a finished run)
  Q/Ctrl+C       - Quit

Examples:
  platformer play
  platformer play world-1-1
  platformer play my-level --levels-dir ./levels
  platformer play --config ./my-tuning.yaml
  platformer play --mute`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom tuning YAML")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound effects")
}

func runPlay(cmd *cobra.Command, args []string) {
	levelID := levels.DefaultID
	if len(args) > 0 {
		levelID = args[0]
	}

	reg := levels.NewRegistry(flagLevelsDir)
	parsed, err := reg.Load(levelID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: unknown level %q\n", levelID)
		fmt.Fprintln(os.Stderr, "Run 'platformer levels' to see available levels.")
		os.Exit(1)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
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

	g := game.New(tuning)
	g.SetLevel(parsed.Name, parsed.Records)

	// Open run storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	// Sound is best effort; play silently when the device is unavailable
	var sound *audio.Manager
	if !flagMute {
		sound = audio.NewManager()
		if soundErr := sound.Initialize(); soundErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: sound disabled: %v\n", soundErr)
			sound = nil
		}
	}

	runErr := tui.Run(g, parsed.ID, store, sound, cfg)

	if sound != nil {
		sound.Close()
	}
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
