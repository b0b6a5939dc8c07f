package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/levels"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List all available levels",
	Long:  `Shows the built-in levels plus any YAML levels from --levels-dir.`,
	Run:   runLevels,
}

func runLevels(cmd *cobra.Command, args []string) {
	reg := levels.NewRegistry(flagLevelsDir)
	list := reg.List()

	if len(list) == 0 {
		fmt.Println("No levels available.")
		return
	}

	fmt.Println("Available levels:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, l := range list {
		if len(l.ID) > maxIDLen {
			maxIDLen = len(l.ID)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %-20s  %s\n", maxIDLen, "ID", "Name", "Source")
	fmt.Printf("  %-*s  %-20s  %s\n", maxIDLen, "--", "----", "------")

	for _, l := range list {
		source := "builtin"
		if !l.Builtin {
			source = l.Path
		}
		fmt.Printf("  %-*s  %-20s  %s\n", maxIDLen, l.ID, l.Name, source)
	}

	fmt.Println()
	fmt.Println("Run 'platformer play <id>' to play a level.")
}
