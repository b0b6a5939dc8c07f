package game

import (
	"math"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Player is the controllable actor. Position is the top-left corner of
// its box in world units and is always authoritative; the camera offset
// is applied only at render time.
type Player struct {
	Pos core.Vec2
	Vel core.Vec2
	// Acc is recomputed from scratch every tick and never persists
	// across ticks.
	Acc         core.Vec2
	Width       float64
	Height      float64
	OnGround    bool
	FacingRight bool

	phys config.PhysicsConfig
}

// NewPlayer creates the actor at the spawn point defined by the tuning.
func NewPlayer(cfg config.Tuning) *Player {
	p := &Player{
		Width:  cfg.Player.Width,
		Height: cfg.Player.Height,
		phys:   cfg.Physics,
	}
	p.Respawn(cfg.Player.SpawnX, cfg.Player.SpawnY)
	return p
}

// Respawn moves the actor to a spawn point and clears all motion state.
func (p *Player) Respawn(x, y float64) {
	p.Pos = core.Vec2{X: x, Y: y}
	p.Vel = core.Vec2{}
	p.Acc = core.Vec2{}
	p.OnGround = false
	p.FacingRight = true
}

// Bounds returns the actor's box.
func (p *Player) Bounds() core.Rect {
	return core.Rect{X: p.Pos.X, Y: p.Pos.Y, W: p.Width, H: p.Height}
}

// Jump launches the actor when it stands on a surface. Returns true if
// the jump actually happened; mid-air presses are ignored.
func (p *Player) Jump() bool {
	if !p.OnGround {
		return false
	}
	p.Vel.Y = p.phys.JumpStrength
	p.OnGround = false
	return true
}

// Update advances the actor by one tick: horizontal integration and
// resolution first, then vertical, then level-bounds clamping. The
// returned indices are the colliders the actor's box overlapped during
// the resolution passes, in collection order; the level uses them for
// goal detection.
//
// The position update uses pos += vel + 0.5*acc on each axis. Keep that
// exact form: the collision feel and all determinism tests depend on it.
func (p *Player) Update(left, right bool, colliders []Collider, levelWidth float64) []int {
	p.Acc = core.Vec2{X: 0, Y: p.phys.Gravity}

	if left {
		p.Acc.X -= p.phys.Accel
		p.FacingRight = false
	}
	if right {
		p.Acc.X += p.phys.Accel
		p.FacingRight = true
	}

	p.Acc.X += p.Vel.X * p.phys.Friction
	p.Vel.X += p.Acc.X
	if math.Abs(p.Vel.X) < p.phys.StopEpsilon {
		p.Vel.X = 0
	}
	p.Pos.X += p.Vel.X + 0.5*p.Acc.X
	contacts := ResolveHorizontal(p, colliders)

	p.Vel.Y += p.Acc.Y
	if p.Vel.Y > p.phys.MaxFallSpeed {
		p.Vel.Y = p.phys.MaxFallSpeed
	}
	p.Pos.Y += p.Vel.Y + 0.5*p.Acc.Y
	p.OnGround = false
	contacts = append(contacts, ResolveVertical(p, colliders)...)

	// Keep the actor inside the level's horizontal extent.
	if p.Pos.X < 0 {
		p.Pos.X = 0
		p.Vel.X = 0
	}
	if p.Pos.X+p.Width > levelWidth {
		p.Pos.X = levelWidth - p.Width
		p.Vel.X = 0
	}

	return contacts
}
