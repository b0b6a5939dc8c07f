package config

import (
	_ "embed"
)

//go:embed defaults/platformer.yaml
var defaultTuningYAML []byte

// Default returns the built-in tuning, matching the embedded YAML.
func Default() Tuning {
	return Tuning{
		Physics: PhysicsConfig{
			Gravity:      0.9,
			Accel:        0.6,
			Friction:     -0.15,
			JumpStrength: -18.0,
			MaxFallSpeed: 15.0,
			StopEpsilon:  0.1,
		},
		Player: PlayerConfig{
			Width:  32.0,
			Height: 48.0,
			SpawnX: 50.0,
			SpawnY: 512.0,
		},
		Camera: CameraConfig{
			RightMark: 0.6,
			LeftMark:  0.4,
		},
		World: WorldConfig{
			ViewportW: 800.0,
			ViewportH: 600.0,
			CoinValue: 100,
			CoinSize:  15.0,
		},
	}
}

// DefaultYAML returns the embedded default tuning file.
func DefaultYAML() []byte {
	return defaultTuningYAML
}
