// platformer is a TUI side-scrolling platformer for the terminal.
//
// Usage:
//
//	platformer play [level]   - Play a level (default: world-1-1)
//	platformer menu           - Start the interactive level picker
//	platformer levels         - List available levels
//	platformer scores <level> - Show best runs for a level
//	platformer serve          - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>       - Set tick rate (default: 60)
//	--seed <value>     - Set RNG seed for reproducible gameplay
//	--db <path>        - Set database path (default: ~/.platformer/scores.db)
//	--levels-dir <dir> - Directory with custom level YAML files
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS       int
	flagSeed      int64
	flagDBPath    string
	flagLevelsDir string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "platformer",
	Short: "TUI Platformer - Run and jump in your terminal",
	Long: `TUI Platformer is a terminal-based side-scrolling platformer.
Run right, jump over gaps, collect coins and reach the goal flag.

Available commands:
  play     - Play a level directly
  menu     - Interactive level picker
  levels   - Show all available levels
  scores   - View best runs for a level
  serve    - Start SSH server for remote play

Examples:
  platformer play
  platformer play world-1-1
  platformer menu
  platformer serve --ssh :2222
  platformer scores world-1-1`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.platformer/scores.db", "Path to runs database")
	rootCmd.PersistentFlags().StringVar(&flagLevelsDir, "levels-dir", "", "Directory with custom level YAML files")

	// Add subcommands
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
