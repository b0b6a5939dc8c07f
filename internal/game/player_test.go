package game

import (
	"testing"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
)

func testTuning() config.Tuning {
	return config.Default()
}

func rect(x, y, w, h float64) core.Rect {
	return core.NewRect(x, y, w, h)
}

func TestPlayerRestsOnPlatform(t *testing.T) {
	cfg := testTuning()
	p := NewPlayer(cfg)
	p.Pos.X = 50
	p.Pos.Y = 580 - p.Height
	p.OnGround = true

	ground := []Collider{{Box: rect(0, 580, 600, 20)}}

	// Without input the actor must stay put: gravity accumulates into
	// velocity each tick and the ground resolves it straight back.
	for i := 0; i < 10; i++ {
		p.Update(false, false, ground, 600)
		if p.Pos.Y != 580-p.Height {
			t.Fatalf("tick %d: Pos.Y = %v, want %v", i, p.Pos.Y, 580-p.Height)
		}
		if p.Vel.Y != 0 {
			t.Fatalf("tick %d: Vel.Y = %v, want 0", i, p.Vel.Y)
		}
		if !p.OnGround {
			t.Fatalf("tick %d: OnGround = false, want true", i)
		}
		if p.Pos.X != 50 {
			t.Fatalf("tick %d: Pos.X drifted to %v", i, p.Pos.X)
		}
	}
}

func TestPlayerJumpOnlyFromGround(t *testing.T) {
	cfg := testTuning()
	p := NewPlayer(cfg)
	p.OnGround = true

	if !p.Jump() {
		t.Fatal("grounded jump refused")
	}
	if p.Vel.Y != cfg.Physics.JumpStrength {
		t.Errorf("Vel.Y = %v, want %v", p.Vel.Y, cfg.Physics.JumpStrength)
	}
	if p.OnGround {
		t.Error("OnGround still true after jump")
	}

	// Mid-air press is a no-op.
	velY := p.Vel.Y
	if p.Jump() {
		t.Error("mid-air jump accepted")
	}
	if p.Vel.Y != velY {
		t.Errorf("mid-air jump changed Vel.Y to %v", p.Vel.Y)
	}
}

func TestPlayerStopEpsilonSnapsToRest(t *testing.T) {
	p := NewPlayer(testTuning())
	p.Vel.X = 0.09 // friction brings this under the stop threshold

	p.Update(false, false, nil, 10000)
	if p.Vel.X != 0 {
		t.Errorf("Vel.X = %v, want exactly 0", p.Vel.X)
	}
}

func TestPlayerFrictionDecaysToRest(t *testing.T) {
	p := NewPlayer(testTuning())
	p.Vel.X = 4.0

	for i := 0; i < 120; i++ {
		p.Update(false, false, nil, 100000)
		if p.Vel.X == 0 {
			return
		}
	}
	t.Errorf("Vel.X = %v after 120 coasting ticks, never reached rest", p.Vel.X)
}

func TestPlayerMaxFallSpeed(t *testing.T) {
	cfg := testTuning()
	p := NewPlayer(cfg)

	for i := 0; i < 60; i++ {
		p.Update(false, false, nil, 10000)
		if p.Vel.Y > cfg.Physics.MaxFallSpeed {
			t.Fatalf("tick %d: Vel.Y = %v exceeds max fall speed %v", i, p.Vel.Y, cfg.Physics.MaxFallSpeed)
		}
	}
	if p.Vel.Y != cfg.Physics.MaxFallSpeed {
		t.Errorf("Vel.Y = %v after long fall, want terminal %v", p.Vel.Y, cfg.Physics.MaxFallSpeed)
	}
}

func TestPlayerLevelBoundsClamp(t *testing.T) {
	p := NewPlayer(testTuning())
	p.Pos.X = 2
	p.Vel.X = -8

	p.Update(true, false, nil, 600)
	if p.Pos.X != 0 {
		t.Errorf("Pos.X = %v at left edge, want 0", p.Pos.X)
	}
	if p.Vel.X != 0 {
		t.Errorf("Vel.X = %v after left clamp, want 0", p.Vel.X)
	}

	p.Pos.X = 590
	p.Vel.X = 8
	p.Update(false, true, nil, 600)
	if p.Pos.X != 600-p.Width {
		t.Errorf("Pos.X = %v at right edge, want %v", p.Pos.X, 600-p.Width)
	}
	if p.Vel.X != 0 {
		t.Errorf("Vel.X = %v after right clamp, want 0", p.Vel.X)
	}
}

func TestPlayerFacingFollowsInput(t *testing.T) {
	p := NewPlayer(testTuning())
	if !p.FacingRight {
		t.Fatal("spawn facing should be right")
	}

	p.Update(true, false, nil, 10000)
	if p.FacingRight {
		t.Error("still facing right after left input")
	}
	p.Update(false, true, nil, 10000)
	if !p.FacingRight {
		t.Error("still facing left after right input")
	}
	// No input keeps the last facing.
	p.Update(false, false, nil, 10000)
	if !p.FacingRight {
		t.Error("facing changed without input")
	}
}
