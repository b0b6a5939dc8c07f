// Package config loads the gameplay tuning for the platformer from YAML,
// with an embedded default and user overrides.
package config

// Tuning holds every gameplay constant of the simulation. Values are in
// world units (the 800x600 world the renderer projects onto the
// terminal), velocities in units per tick.
type Tuning struct {
	Physics PhysicsConfig `yaml:"physics"`
	Player  PlayerConfig  `yaml:"player"`
	Camera  CameraConfig  `yaml:"camera"`
	World   WorldConfig   `yaml:"world"`
}

// PhysicsConfig tunes the actor's movement integration.
type PhysicsConfig struct {
	// Gravity is added to vertical acceleration every tick.
	Gravity float64 `yaml:"gravity"`
	// Accel is the horizontal acceleration applied while an arrow key
	// is held.
	Accel float64 `yaml:"accel"`
	// Friction is the (negative) velocity-proportional deceleration.
	Friction float64 `yaml:"friction"`
	// JumpStrength is the (negative, upward) velocity set by a jump.
	JumpStrength float64 `yaml:"jump_strength"`
	// MaxFallSpeed caps downward velocity.
	MaxFallSpeed float64 `yaml:"max_fall_speed"`
	// StopEpsilon snaps small horizontal velocities to zero so the
	// actor comes to rest instead of creeping.
	StopEpsilon float64 `yaml:"stop_epsilon"`
}

// PlayerConfig tunes the actor's box and spawn point.
type PlayerConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	SpawnX float64 `yaml:"spawn_x"`
	SpawnY float64 `yaml:"spawn_y"`
}

// CameraConfig tunes the scroll marks, as fractions of viewport width.
type CameraConfig struct {
	// RightMark is where the actor's right edge pins while moving
	// right.
	RightMark float64 `yaml:"right_mark"`
	// LeftMark is where the actor's left edge pins while moving left.
	LeftMark float64 `yaml:"left_mark"`
}

// WorldConfig tunes the viewport and collectibles.
type WorldConfig struct {
	ViewportW float64 `yaml:"viewport_w"`
	ViewportH float64 `yaml:"viewport_h"`
	CoinValue int     `yaml:"coin_value"`
	// CoinSize is the edge length of a coin's box, centered on the
	// coin's level coordinate.
	CoinSize float64 `yaml:"coin_size"`
}
