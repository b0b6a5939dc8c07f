package game

import "github.com/vovakirdan/tui-platformer/internal/config"

// Camera tracks a horizontal display offset. The offset is added to
// world X coordinates at render time; it never feeds back into the
// simulation, so the actor's world position stays authoritative.
//
// Invariant after every Update: Offset is in
// [-(max(levelWidth-viewportW, 0)), 0].
type Camera struct {
	Offset float64

	viewportW float64
	rightMark float64
	leftMark  float64
}

// NewCamera creates a camera for the configured viewport.
func NewCamera(cfg config.Tuning) Camera {
	return Camera{
		viewportW: cfg.World.ViewportW,
		rightMark: cfg.Camera.RightMark,
		leftMark:  cfg.Camera.LeftMark,
	}
}

// Reset returns the camera to the level start.
func (c *Camera) Reset() {
	c.Offset = 0
}

// Update scrolls toward the actor and clamps to the level. Moving right,
// the actor's on-screen right edge pins at the right mark; moving left,
// its left edge pins at the left mark. Levels not wider than the
// viewport never scroll.
func (c *Camera) Update(p *Player, levelWidth float64) {
	if right := p.Pos.X + p.Width + c.Offset; right > c.viewportW*c.rightMark && p.Vel.X > 0 {
		c.Offset -= right - c.viewportW*c.rightMark
	}
	if left := p.Pos.X + c.Offset; left < c.viewportW*c.leftMark && p.Vel.X < 0 {
		c.Offset += c.viewportW*c.leftMark - left
	}

	if levelWidth <= c.viewportW {
		c.Offset = 0
		return
	}
	if c.Offset > 0 {
		c.Offset = 0
	}
	if minOffset := -(levelWidth - c.viewportW); c.Offset < minOffset {
		c.Offset = minOffset
	}
}
