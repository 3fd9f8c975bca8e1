package core

// RuntimeConfig contains configuration passed to the game at initialization.
type RuntimeConfig struct {
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState summarizes the game for the platform after each tick.
type GameState struct {
	Screen   string // Name of the active state machine state
	Score    int    // Current run score
	HiScore  int    // Best score across runs
	Wave     int    // Current wave counter
	Coins    int    // Coins held by the player
	GameOver bool   // Whether the run has ended
	Paused   bool   // Whether the game is paused
	Quit     bool   // Whether the player asked to leave the program
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any sounds triggered during the tick.
type StepResult struct {
	State  GameState
	Sounds []Sound
}
