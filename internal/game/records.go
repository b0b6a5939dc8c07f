package game

import (
	"fmt"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Record is one entry of a level definition: a platform, a coin or a
// goal. Levels are ordered record sequences; iteration order of the
// built colliders follows record order.
type Record interface {
	isRecord()
}

// PlatformRecord places a solid platform by its top-left corner.
type PlatformRecord struct {
	X, Y, W, H float64
	Color      core.Color
}

// CoinRecord places a coin centered on (X, Y).
type CoinRecord struct {
	X, Y float64
}

// GoalRecord places the level exit by its top-left corner.
type GoalRecord struct {
	X, Y, W, H float64
}

func (PlatformRecord) isRecord() {}
func (CoinRecord) isRecord()     {}
func (GoalRecord) isRecord()     {}

// ValidateRecords rejects records no level can be built from: platforms
// and goals must have positive dimensions, and a level holds at most one
// goal. An empty or goal-less record list is valid; it just produces an
// unwinnable level.
func ValidateRecords(records []Record) error {
	goals := 0
	for i, rec := range records {
		switch r := rec.(type) {
		case PlatformRecord:
			if r.W <= 0 || r.H <= 0 {
				return fmt.Errorf("record %d: platform has non-positive size %gx%g", i, r.W, r.H)
			}
		case GoalRecord:
			if r.W <= 0 || r.H <= 0 {
				return fmt.Errorf("record %d: goal has non-positive size %gx%g", i, r.W, r.H)
			}
			goals++
			if goals > 1 {
				return fmt.Errorf("record %d: level has more than one goal", i)
			}
		case CoinRecord:
			// Coins are points; any coordinate is fine.
		default:
			return fmt.Errorf("record %d: unknown record type %T", i, rec)
		}
	}
	return nil
}
