package game

import "testing"

func TestResolveHorizontalMovingRight(t *testing.T) {
	p := NewPlayer(testTuning())
	p.Pos.X, p.Pos.Y = 90, 100
	p.Vel.X = 5

	wall := []Collider{{Box: rect(110, 90, 20, 60)}}
	hits := ResolveHorizontal(p, wall)

	if p.Pos.X != 110-p.Width {
		t.Errorf("Pos.X = %v, want %v (right edge on wall's left)", p.Pos.X, 110-p.Width)
	}
	if p.Vel.X != 0 {
		t.Errorf("Vel.X = %v, want 0", p.Vel.X)
	}
	if len(hits) != 1 || hits[0] != 0 {
		t.Errorf("hits = %v, want [0]", hits)
	}
}

func TestResolveHorizontalMovingLeft(t *testing.T) {
	p := NewPlayer(testTuning())
	p.Pos.X, p.Pos.Y = 60, 100
	p.Vel.X = -5

	wall := []Collider{{Box: rect(50, 90, 20, 60)}}
	ResolveHorizontal(p, wall)

	if p.Pos.X != 70 {
		t.Errorf("Pos.X = %v, want 70 (left edge on wall's right)", p.Pos.X)
	}
	if p.Vel.X != 0 {
		t.Errorf("Vel.X = %v, want 0", p.Vel.X)
	}
}

func TestResolveHorizontalZeroVelocityLeavesOverlap(t *testing.T) {
	p := NewPlayer(testTuning())
	p.Pos.X, p.Pos.Y = 100, 100
	p.Vel.X = 0

	wall := []Collider{{Box: rect(110, 90, 20, 60)}}
	hits := ResolveHorizontal(p, wall)

	if p.Pos.X != 100 {
		t.Errorf("Pos.X = %v, want 100 (no correction at zero velocity)", p.Pos.X)
	}
	if len(hits) != 1 {
		t.Errorf("hits = %v, overlap must still be reported", hits)
	}
}

func TestResolveVerticalLanding(t *testing.T) {
	p := NewPlayer(testTuning())
	p.Pos.X, p.Pos.Y = 100, 70
	p.Vel.Y = 5

	floor := []Collider{{Box: rect(80, 110, 100, 20)}}
	ResolveVertical(p, floor)

	if p.Pos.Y != 110-p.Height {
		t.Errorf("Pos.Y = %v, want %v (bottom on floor's top)", p.Pos.Y, 110-p.Height)
	}
	if p.Vel.Y != 0 {
		t.Errorf("Vel.Y = %v, want 0", p.Vel.Y)
	}
	if !p.OnGround {
		t.Error("OnGround = false after landing")
	}
}

func TestResolveVerticalHeadBump(t *testing.T) {
	p := NewPlayer(testTuning())
	p.Pos.X, p.Pos.Y = 100, 40
	p.Vel.Y = -5

	ceiling := []Collider{{Box: rect(80, 30, 100, 20)}}
	ResolveVertical(p, ceiling)

	if p.Pos.Y != 50 {
		t.Errorf("Pos.Y = %v, want 50 (top on ceiling's bottom)", p.Pos.Y)
	}
	if p.Vel.Y != 0 {
		t.Errorf("Vel.Y = %v, want 0", p.Vel.Y)
	}
	if p.OnGround {
		t.Error("OnGround = true after a head bump")
	}
}

// When several colliders overlap at once the first one in collection
// order decides the correction; its snap zeroes the velocity, so later
// colliders in the list get no snap of their own.
func TestResolveHorizontalCollectionOrderDecidesTies(t *testing.T) {
	a := Collider{Box: rect(110, 90, 20, 60)}
	b := Collider{Box: rect(105, 90, 20, 60)}

	p := NewPlayer(testTuning())
	p.Pos.X, p.Pos.Y = 100, 100
	p.Vel.X = 5
	ResolveHorizontal(p, []Collider{a, b})
	if p.Pos.X != 110-p.Width {
		t.Errorf("order [a b]: Pos.X = %v, want %v", p.Pos.X, 110-p.Width)
	}

	p = NewPlayer(testTuning())
	p.Pos.X, p.Pos.Y = 100, 100
	p.Vel.X = 5
	ResolveHorizontal(p, []Collider{b, a})
	if p.Pos.X != 105-p.Width {
		t.Errorf("order [b a]: Pos.X = %v, want %v", p.Pos.X, 105-p.Width)
	}
}

// A full actor tick against the ground must end with no overlap left.
func TestUpdateLeavesNoOverlapAfterLanding(t *testing.T) {
	p := NewPlayer(testTuning())
	p.Pos.X, p.Pos.Y = 100, 400

	ground := []Collider{{Box: rect(0, 580, 2000, 20)}}
	for i := 0; i < 300; i++ {
		p.Update(false, false, ground, 2000)
		if p.Bounds().Intersects(ground[0].Box) {
			t.Fatalf("tick %d: actor box %v overlaps ground after resolution", i, p.Bounds())
		}
	}
	if !p.OnGround {
		t.Error("actor never landed")
	}
}
