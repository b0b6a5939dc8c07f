package core

// RuntimeConfig carries the runtime parameters the platform hands to a
// game on Reset.
type RuntimeConfig struct {
	ScreenW  int
	ScreenH  int
	TickRate int
	Seed     int64
}

// GameState is the externally visible state after a step.
type GameState struct {
	// Score is the current run's score.
	Score int
	// GameOver is true once the run has finished, by winning or losing.
	// The platform uses the rising edge to persist the score once.
	GameOver bool
}

// SoundEvent identifies a sound effect the simulation requests. The
// kernel never touches the audio device; it only reports events.
type SoundEvent int

const (
	SoundJump SoundEvent = iota
	SoundCoin
)

// StepResult is returned by a game's Step for each simulation tick.
type StepResult struct {
	State GameState
	// Sounds are the effects triggered this tick, in order.
	Sounds []SoundEvent
	// Quit is true when the game asks the platform to terminate.
	Quit bool
}
