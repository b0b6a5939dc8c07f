package game

import "math"

// Snapshot captures the complete simulation state in primitive fields,
// for determinism tests and debugging.
type Snapshot struct {
	Tick  uint64
	Phase Phase
	Score int

	PlayerX     float64
	PlayerY     float64
	VelX        float64
	VelY        float64
	OnGround    bool
	FacingRight bool

	CameraOffset float64
	LevelWidth   float64
	Collected    []bool
}

// Snapshot returns the current state.
func (g *Game) Snapshot() Snapshot {
	collected := make([]bool, len(g.level.Coins))
	for i := range g.level.Coins {
		collected[i] = g.level.Coins[i].Collected
	}
	p := g.level.Player
	return Snapshot{
		Tick:         g.tick,
		Phase:        g.machine.Phase(),
		Score:        g.level.Score,
		PlayerX:      p.Pos.X,
		PlayerY:      p.Pos.Y,
		VelX:         p.Vel.X,
		VelY:         p.Vel.Y,
		OnGround:     p.OnGround,
		FacingRight:  p.FacingRight,
		CameraOffset: g.level.Camera.Offset,
		LevelWidth:   g.level.Width,
		Collected:    collected,
	}
}

// ApplySnapshot restores a previously captured state. The level must
// have been loaded from the same records the snapshot was taken with.
func (g *Game) ApplySnapshot(s Snapshot) {
	g.tick = s.Tick
	g.machine.phase = s.Phase
	g.level.Score = s.Score
	p := g.level.Player
	p.Pos.X = s.PlayerX
	p.Pos.Y = s.PlayerY
	p.Vel.X = s.VelX
	p.Vel.Y = s.VelY
	p.OnGround = s.OnGround
	p.FacingRight = s.FacingRight
	g.level.Camera.Offset = s.CameraOffset
	for i := range g.level.Coins {
		if i < len(s.Collected) {
			g.level.Coins[i].Collected = s.Collected[i]
		}
	}
	switch s.Phase {
	case PhaseWin:
		g.level.outcome = OutcomeWin
	case PhaseGameOver:
		g.level.outcome = OutcomeLose
	default:
		g.level.outcome = OutcomeContinue
	}
}

// Hash folds the snapshot into a single comparable value. Two runs with
// identical inputs must produce identical hashes at every tick.
func (s Snapshot) Hash() uint64 {
	h := uint64(17)
	mix := func(v uint64) {
		h = h*31 + v
	}
	mixF := func(v float64) {
		mix(math.Float64bits(v))
	}
	mixB := func(v bool) {
		if v {
			mix(1)
		} else {
			mix(0)
		}
	}

	mix(s.Tick)
	mix(uint64(s.Phase))
	mix(uint64(s.Score))
	mixF(s.PlayerX)
	mixF(s.PlayerY)
	mixF(s.VelX)
	mixF(s.VelY)
	mixB(s.OnGround)
	mixB(s.FacingRight)
	mixF(s.CameraOffset)
	mixF(s.LevelWidth)
	for _, c := range s.Collected {
		mixB(c)
	}
	return h
}
