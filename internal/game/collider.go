package game

import "github.com/vovakirdan/tui-platformer/internal/core"

// Tag classifies a static collider.
type Tag int

const (
	// TagNormal is a plain solid platform.
	TagNormal Tag = iota
	// TagGoal is solid like a platform and also ends the level with a
	// win when the actor reaches it.
	TagGoal
)

// Collider is a static axis-aligned obstacle. Colliders never move; the
// whole set is rebuilt when a level loads.
type Collider struct {
	Box   core.Rect
	Tag   Tag
	Color core.Color
}

// Coin is a static collectible. It stays in the level's coin list after
// collection so snapshots stay index-stable; Collected marks it inert.
type Coin struct {
	Box       core.Rect
	Collected bool
}
