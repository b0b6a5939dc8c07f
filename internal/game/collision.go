package game

// Axis-separated collision resolution: the horizontal pass runs after
// the X position update, the vertical pass after the Y update. Each pass
// tests the actor against every collider in collection order and applies
// corrections one at a time, so when several colliders overlap at once
// the outcome is decided by collection order, not penetration depth.
// Both passes are purely discrete; a fast enough actor can cross a thin
// collider between ticks.

// ResolveHorizontal snaps the actor out of horizontal overlaps. Moving
// right, its right edge snaps to the collider's left edge; moving left,
// its left edge to the collider's right edge. Velocity.X is zeroed on
// correction. An overlap with zero horizontal velocity is left alone,
// deferring to the vertical pass.
//
// Returns the indices of every collider the actor overlapped, corrected
// or not.
func ResolveHorizontal(p *Player, colliders []Collider) []int {
	var hits []int
	for i := range colliders {
		if !p.Bounds().Intersects(colliders[i].Box) {
			continue
		}
		hits = append(hits, i)
		switch {
		case p.Vel.X > 0:
			p.Pos.X = colliders[i].Box.X - p.Width
			p.Vel.X = 0
		case p.Vel.X < 0:
			p.Pos.X = colliders[i].Box.Right()
			p.Vel.X = 0
		}
	}
	return hits
}

// ResolveVertical snaps the actor out of vertical overlaps. Falling, its
// bottom edge snaps to the collider's top and OnGround becomes true;
// rising, its top edge snaps to the collider's bottom. Velocity.Y is
// zeroed on correction.
//
// Returns the indices of every collider the actor overlapped.
func ResolveVertical(p *Player, colliders []Collider) []int {
	var hits []int
	for i := range colliders {
		if !p.Bounds().Intersects(colliders[i].Box) {
			continue
		}
		hits = append(hits, i)
		switch {
		case p.Vel.Y > 0:
			p.Pos.Y = colliders[i].Box.Y - p.Height
			p.Vel.Y = 0
			p.OnGround = true
		case p.Vel.Y < 0:
			p.Pos.Y = colliders[i].Box.Bottom()
			p.Vel.Y = 0
		}
	}
	return hits
}
