package game

import (
	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Outcome is the result of a level tick.
type Outcome int

const (
	OutcomeContinue Outcome = iota
	OutcomeWin
	OutcomeLose
)

// Level owns the world for one run: the static colliders (including the
// goal), the coins, the actor and the camera. Update order per tick is
// fixed: actor physics, camera, coin sweep, goal check, fall check.
type Level struct {
	Player *Player
	Camera Camera

	// Colliders holds every solid box in record order; the goal, when
	// present, is one of them, tagged TagGoal.
	Colliders []Collider
	Coins     []Coin

	// Width is the level's horizontal extent: the rightmost edge of
	// any record, coins included.
	Width float64

	Score int

	cfg     config.Tuning
	outcome Outcome
}

// NewLevel creates an empty level; call Load before Update.
func NewLevel(cfg config.Tuning) *Level {
	return &Level{
		Player: NewPlayer(cfg),
		Camera: NewCamera(cfg),
		cfg:    cfg,
	}
}

// Load replaces the whole world with the given records and resets the
// actor to spawn, the score to zero and the camera to the level start.
// Records must already have passed ValidateRecords; degenerate but valid
// data (no goal, no platforms) loads into a playable, unwinnable level.
func (l *Level) Load(records []Record) {
	l.Colliders = l.Colliders[:0]
	l.Coins = l.Coins[:0]
	l.Width = 0

	half := l.cfg.World.CoinSize / 2
	for _, rec := range records {
		switch r := rec.(type) {
		case PlatformRecord:
			l.Colliders = append(l.Colliders, Collider{
				Box:   core.NewRect(r.X, r.Y, r.W, r.H),
				Tag:   TagNormal,
				Color: r.Color,
			})
			if right := r.X + r.W; right > l.Width {
				l.Width = right
			}
		case CoinRecord:
			l.Coins = append(l.Coins, Coin{
				Box: core.NewRect(r.X-half, r.Y-half, l.cfg.World.CoinSize, l.cfg.World.CoinSize),
			})
			if r.X > l.Width {
				l.Width = r.X
			}
		case GoalRecord:
			l.Colliders = append(l.Colliders, Collider{
				Box:   core.NewRect(r.X, r.Y, r.W, r.H),
				Tag:   TagGoal,
				Color: core.ColorRed,
			})
			if right := r.X + r.W; right > l.Width {
				l.Width = right
			}
		}
	}

	l.Player.Respawn(l.cfg.Player.SpawnX, l.cfg.Player.SpawnY)
	l.Camera.Reset()
	l.Score = 0
	l.outcome = OutcomeContinue
}

// Outcome returns the level's latched outcome.
func (l *Level) Outcome() Outcome {
	return l.outcome
}

// Update advances the world by one tick with the given directional
// input. Once a terminal outcome is reached it latches: further calls
// return it unchanged without simulating, until the next Load.
func (l *Level) Update(left, right bool) (Outcome, []core.SoundEvent) {
	if l.outcome != OutcomeContinue {
		return l.outcome, nil
	}

	contacts := l.Player.Update(left, right, l.Colliders, l.Width)
	l.Camera.Update(l.Player, l.Width)

	var sounds []core.SoundEvent
	box := l.Player.Bounds()
	for i := range l.Coins {
		if l.Coins[i].Collected {
			continue
		}
		if box.Intersects(l.Coins[i].Box) {
			l.Coins[i].Collected = true
			l.Score += l.cfg.World.CoinValue
			sounds = append(sounds, core.SoundCoin)
		}
	}

	if l.touchedGoal(contacts, box) {
		l.outcome = OutcomeWin
		return l.outcome, sounds
	}

	if l.Player.Pos.Y > l.cfg.World.ViewportH+l.Player.Height {
		l.outcome = OutcomeLose
		return l.outcome, sounds
	}

	return OutcomeContinue, sounds
}

// touchedGoal reports whether the actor reached the goal this tick. The
// goal is solid, so the resolver usually pushes the actor back out
// within the same tick; the contact list records the overlap before the
// correction. The direct box test covers overlaps the resolver leaves
// in place (zero velocity on the tested axis).
func (l *Level) touchedGoal(contacts []int, box core.Rect) bool {
	for _, i := range contacts {
		if l.Colliders[i].Tag == TagGoal {
			return true
		}
	}
	for i := range l.Colliders {
		if l.Colliders[i].Tag == TagGoal && box.Intersects(l.Colliders[i].Box) {
			return true
		}
	}
	return false
}

// CoinsRemaining counts coins not yet collected.
func (l *Level) CoinsRemaining() int {
	n := 0
	for i := range l.Coins {
		if !l.Coins[i].Collected {
			n++
		}
	}
	return n
}
