package game

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60}
}

// scriptFrame builds the input for a scripted tick: start on the first
// tick, then hold right with a jump every 45 ticks.
func scriptFrame(tick int) core.InputFrame {
	f := core.NewInputFrame()
	switch {
	case tick == 0:
		f.Set(core.ActionConfirm)
	default:
		f.Set(core.ActionRight)
		if tick%45 == 0 {
			f.Set(core.ActionJump)
		}
	}
	return f
}

func TestGameDeterminism(t *testing.T) {
	a := New(testTuning())
	b := New(testTuning())
	a.Reset(testRuntime())
	b.Reset(testRuntime())

	for tick := 0; tick < 900; tick++ {
		a.Step(scriptFrame(tick))
		b.Step(scriptFrame(tick))

		ha, hb := a.Snapshot().Hash(), b.Snapshot().Hash()
		if ha != hb {
			t.Fatalf("tick %d: snapshot hashes diverged: %x vs %x", tick, ha, hb)
		}
	}
}

func TestGameTuningIsPerInstance(t *testing.T) {
	heavy := testTuning()
	heavy.Physics.Gravity = 5.0

	a := New(testTuning())
	b := New(heavy)
	a.Reset(testRuntime())
	b.Reset(testRuntime())

	// Start both runs and let the actors fall for one tick; each game
	// must integrate with its own gravity.
	a.Step(frame(core.ActionConfirm))
	b.Step(frame(core.ActionConfirm))
	a.Step(frame())
	b.Step(frame())

	if got := b.Level().Player.Vel.Y; got != 5.0 {
		t.Errorf("Vel.Y = %v with gravity 5.0 tuning, want 5.0", got)
	}
	if a.Level().Player.Vel.Y == b.Level().Player.Vel.Y {
		t.Error("games with different tunings shared physics state")
	}
}

func TestGameNoOverlapDuringPlay(t *testing.T) {
	g := New(testTuning())
	g.Reset(testRuntime())

	for tick := 0; tick < 900; tick++ {
		g.Step(scriptFrame(tick))
		if g.Phase() != PhasePlaying {
			continue
		}
		box := g.Level().Player.Bounds()
		for i := range g.Level().Colliders {
			if box.Intersects(g.Level().Colliders[i].Box) {
				t.Fatalf("tick %d: actor box %v overlaps collider %d after resolution",
					tick, box, i)
			}
		}
	}
}

func TestGameResetRestoresInitialState(t *testing.T) {
	g := New(testTuning())
	g.Reset(testRuntime())

	for tick := 0; tick < 300; tick++ {
		g.Step(scriptFrame(tick))
	}

	g.Reset(testRuntime())
	if g.Phase() != PhaseMenu {
		t.Errorf("Phase = %v after Reset, want menu", g.Phase())
	}
	if g.Tick() != 0 {
		t.Errorf("Tick = %d after Reset, want 0", g.Tick())
	}
	if got := g.State(); got.Score != 0 || got.GameOver {
		t.Errorf("State = %+v after Reset, want zeroed", got)
	}
}

func TestGameStateReportsGameOver(t *testing.T) {
	g := New(testTuning())
	g.SetLevel("void", nil)
	g.Reset(testRuntime())

	g.Step(frame(core.ActionConfirm))
	for tick := 0; tick < 300 && g.Phase() == PhasePlaying; tick++ {
		g.Step(frame())
	}

	if !g.State().GameOver {
		t.Error("State.GameOver = false after the actor fell out of the level")
	}

	g.Step(frame(core.ActionConfirm))
	if g.State().GameOver {
		t.Error("State.GameOver = true back in the menu")
	}
}

func TestGameQuitAction(t *testing.T) {
	g := New(testTuning())
	g.Reset(testRuntime())

	res := g.Step(frame(core.ActionQuit))
	if !res.Quit {
		t.Error("StepResult.Quit = false after the quit action")
	}
}

func TestGameSnapshotRoundTrip(t *testing.T) {
	g := New(testTuning())
	g.Reset(testRuntime())
	for tick := 0; tick < 200; tick++ {
		g.Step(scriptFrame(tick))
	}

	snap := g.Snapshot()

	h := New(testTuning())
	h.Reset(testRuntime())
	h.Step(frame(core.ActionConfirm)) // load the level
	h.ApplySnapshot(snap)

	if got := h.Snapshot().Hash(); got != snap.Hash() {
		t.Errorf("restored hash %x != captured %x", got, snap.Hash())
	}
}

func TestGameRenderPhases(t *testing.T) {
	g := New(testTuning())
	g.Reset(testRuntime())
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	if !strings.Contains(screen.String(), "P L A T F O R M E R") {
		t.Error("menu screen missing title")
	}

	g.Step(frame(core.ActionConfirm))
	g.Render(screen)
	if !strings.Contains(screen.String(), "Score: 0") {
		t.Error("playing screen missing the HUD score")
	}

	// A tiny terminal falls back to a notice instead of garbage.
	small := core.NewScreen(20, 8)
	g.Render(small)
	if !strings.Contains(small.String(), "small") {
		t.Error("small-terminal notice missing")
	}
}
