package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// colorStyles holds one lipgloss style per core color. ColorBlack maps
// onto ANSI 0, ColorBrightWhite onto ANSI 15.
var colorStyles = buildColorStyles()

func buildColorStyles() map[core.Color]lipgloss.Style {
	styles := map[core.Color]lipgloss.Style{
		core.ColorDefault: lipgloss.NewStyle(),
	}
	for c := core.ColorBlack; c <= core.ColorBrightWhite; c++ {
		ansi := strconv.Itoa(int(c - core.ColorBlack))
		styles[c] = lipgloss.NewStyle().Foreground(lipgloss.Color(ansi))
	}
	return styles
}

func styleFor(c core.Color) lipgloss.Style {
	if style, ok := colorStyles[c]; ok {
		return style
	}
	return colorStyles[core.ColorDefault]
}

// RenderScreen converts a Screen buffer to a styled string for display.
func RenderScreen(s *core.Screen) string {
	var out strings.Builder
	out.Grow((s.Width() + 1) * s.Height() * 2)

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			out.WriteByte('\n')
		}
		writeRow(&out, s, y)
	}
	return out.String()
}

// writeRow emits one row, batching same-colored cells into a single
// styled segment to keep the escape-sequence count per frame low.
func writeRow(out *strings.Builder, s *core.Screen, y int) {
	var (
		run     []rune
		current core.Color
	)
	flush := func() {
		if len(run) == 0 {
			return
		}
		out.WriteString(styleFor(current).Render(string(run)))
		run = run[:0]
	}

	for x := 0; x < s.Width(); x++ {
		cell := s.GetCell(x, y)
		if cell.Color != current {
			flush()
			current = cell.Color
		}
		run = append(run, cell.Rune)
	}
	flush()
}
