package levels

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/game"
)

// yamlLevel is the on-disk level schema.
type yamlLevel struct {
	ID        string         `yaml:"id"`
	Name      string         `yaml:"name"`
	Platforms []yamlPlatform `yaml:"platforms"`
	Coins     []yamlCoin     `yaml:"coins"`
	Goal      *yamlGoal      `yaml:"goal"`
}

type yamlPlatform struct {
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	W     float64 `yaml:"w"`
	H     float64 `yaml:"h"`
	Color string  `yaml:"color"`
}

type yamlCoin struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type yamlGoal struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

// Parsed is a level definition ready to hand to the game.
type Parsed struct {
	ID      string
	Name    string
	Records []game.Record
}

// ParseYAML parses and validates a YAML level definition.
func ParseYAML(data []byte) (Parsed, error) {
	var lvl yamlLevel
	if err := yaml.Unmarshal(data, &lvl); err != nil {
		return Parsed{}, fmt.Errorf("parse yaml: %w", err)
	}
	if lvl.ID == "" {
		return Parsed{}, fmt.Errorf("level has no id")
	}
	if lvl.Name == "" {
		lvl.Name = lvl.ID
	}

	records := make([]game.Record, 0, len(lvl.Platforms)+len(lvl.Coins)+1)
	for _, p := range lvl.Platforms {
		color := core.ColorGreen
		if p.Color != "" {
			c, ok := core.ParseColor(p.Color)
			if !ok {
				return Parsed{}, fmt.Errorf("level %s: unknown color %q", lvl.ID, p.Color)
			}
			color = c
		}
		records = append(records, game.PlatformRecord{X: p.X, Y: p.Y, W: p.W, H: p.H, Color: color})
	}
	for _, c := range lvl.Coins {
		records = append(records, game.CoinRecord{X: c.X, Y: c.Y})
	}
	if lvl.Goal != nil {
		records = append(records, game.GoalRecord{X: lvl.Goal.X, Y: lvl.Goal.Y, W: lvl.Goal.W, H: lvl.Goal.H})
	}

	if err := game.ValidateRecords(records); err != nil {
		return Parsed{}, fmt.Errorf("level %s: %w", lvl.ID, err)
	}
	return Parsed{ID: lvl.ID, Name: lvl.Name, Records: records}, nil
}

// ParseFile reads and parses one level file.
func ParseFile(path string) (Parsed, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Parsed{}, fmt.Errorf("read level file: %w", err)
	}
	return ParseYAML(data)
}
