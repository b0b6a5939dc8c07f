package game

import (
	"testing"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

func TestLevelLoadComputesWidth(t *testing.T) {
	l := NewLevel(testTuning())
	l.Load(World1Records())

	if l.Width != 2000 {
		t.Errorf("Width = %v, want 2000", l.Width)
	}
	if len(l.Coins) != 7 {
		t.Errorf("coins = %d, want 7", len(l.Coins))
	}
	goals := 0
	for _, c := range l.Colliders {
		if c.Tag == TagGoal {
			goals++
		}
	}
	if goals != 1 {
		t.Errorf("goal colliders = %d, want 1", goals)
	}
}

func TestLevelCoinCollectedOnce(t *testing.T) {
	l := NewLevel(testTuning())
	l.Load([]Record{
		PlatformRecord{X: 0, Y: 580, W: 600, H: 20, Color: core.ColorYellow},
		// Centered inside the spawn box so the first tick collects it.
		CoinRecord{X: 66, Y: 530},
	})

	_, sounds := l.Update(false, false)
	if l.Score != 100 {
		t.Fatalf("Score = %d after overlap, want 100", l.Score)
	}
	if len(sounds) != 1 || sounds[0] != core.SoundCoin {
		t.Errorf("sounds = %v, want one coin sound", sounds)
	}

	// The actor keeps standing on the coin's spot; no double count.
	for i := 0; i < 30; i++ {
		_, sounds = l.Update(false, false)
		if len(sounds) != 0 {
			t.Fatalf("tick %d: extra sounds %v", i, sounds)
		}
	}
	if l.Score != 100 {
		t.Errorf("Score = %d after loitering, want 100", l.Score)
	}
	if l.CoinsRemaining() != 0 {
		t.Errorf("CoinsRemaining = %d, want 0", l.CoinsRemaining())
	}
}

func TestLevelWinOnGoalContact(t *testing.T) {
	l := NewLevel(testTuning())
	// A goal right under the spawn: the actor lands on it.
	l.Load([]Record{
		GoalRecord{X: 0, Y: 561, W: 200, H: 39},
	})

	outcome := OutcomeContinue
	for i := 0; i < 60 && outcome == OutcomeContinue; i++ {
		outcome, _ = l.Update(false, false)
	}
	if outcome != OutcomeWin {
		t.Fatalf("outcome = %v, want win", outcome)
	}
}

func TestLevelLoseOnFall(t *testing.T) {
	l := NewLevel(testTuning())
	l.Load(nil) // nothing to stand on

	outcome := OutcomeContinue
	for i := 0; i < 300 && outcome == OutcomeContinue; i++ {
		outcome, _ = l.Update(false, false)
	}
	if outcome != OutcomeLose {
		t.Fatalf("outcome = %v, want lose", outcome)
	}
}

func TestLevelOutcomeLatches(t *testing.T) {
	l := NewLevel(testTuning())
	l.Load(nil)

	for i := 0; i < 300 && l.Outcome() == OutcomeContinue; i++ {
		l.Update(false, false)
	}
	if l.Outcome() != OutcomeLose {
		t.Fatal("setup: level never reached a terminal outcome")
	}

	posY := l.Player.Pos.Y
	for i := 0; i < 10; i++ {
		outcome, sounds := l.Update(false, true)
		if outcome != OutcomeLose {
			t.Fatalf("latched outcome changed to %v", outcome)
		}
		if sounds != nil {
			t.Fatalf("terminal tick produced sounds %v", sounds)
		}
	}
	if l.Player.Pos.Y != posY {
		t.Error("simulation kept running after the terminal outcome")
	}
}

func TestLevelLoadResetsRun(t *testing.T) {
	cfg := testTuning()
	l := NewLevel(cfg)
	l.Load(World1Records())

	// Dirty the run state.
	for i := 0; i < 120; i++ {
		l.Update(false, true)
	}
	if l.Player.Pos.X == cfg.Player.SpawnX {
		t.Fatal("setup: actor never moved")
	}

	l.Load(World1Records())
	if l.Player.Pos.X != cfg.Player.SpawnX || l.Player.Pos.Y != cfg.Player.SpawnY {
		t.Errorf("spawn = (%v, %v), want (%v, %v)",
			l.Player.Pos.X, l.Player.Pos.Y, cfg.Player.SpawnX, cfg.Player.SpawnY)
	}
	if l.Player.Vel != (core.Vec2{}) {
		t.Errorf("Vel = %v after reload, want zero", l.Player.Vel)
	}
	if l.Score != 0 {
		t.Errorf("Score = %d after reload, want 0", l.Score)
	}
	if l.Camera.Offset != 0 {
		t.Errorf("Camera.Offset = %v after reload, want 0", l.Camera.Offset)
	}
	if l.Outcome() != OutcomeContinue {
		t.Errorf("Outcome = %v after reload, want continue", l.Outcome())
	}
	if l.CoinsRemaining() != 7 {
		t.Errorf("CoinsRemaining = %d after reload, want 7", l.CoinsRemaining())
	}
}

func TestLevelDegenerateDataIsPlayable(t *testing.T) {
	l := NewLevel(testTuning())
	// Coins only: width comes from the rightmost coin, there is
	// nothing to stand on and no goal, so the run can only be lost.
	l.Load([]Record{
		CoinRecord{X: 300, Y: 400},
	})

	if l.Width != 300 {
		t.Errorf("Width = %v, want 300 from the rightmost coin", l.Width)
	}

	outcome := OutcomeContinue
	for i := 0; i < 300 && outcome == OutcomeContinue; i++ {
		outcome, _ = l.Update(false, false)
	}
	if outcome != OutcomeLose {
		t.Errorf("outcome = %v, want lose (unwinnable level)", outcome)
	}
}
