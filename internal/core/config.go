package core

// RuntimeConfig is what a platform hands a game on Reset.
type RuntimeConfig struct {
	ScreenW  int   // terminal columns
	ScreenH  int   // terminal rows
	TickRate int   // frames per second, 60 when unset
	Seed     int64 // 0 lets the platform pick a time-based seed
}

// DefaultConfig returns an 80x24 terminal at 60 Hz.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState is the slice of a game the platform cares about: the score it
// saves and whether the game is stopped.
type GameState struct {
	Score    int
	GameOver bool
	Paused   bool
}

// StepResult reports the state after one Step.
type StepResult struct {
	State GameState
}
