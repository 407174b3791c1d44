package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Clock ticks per second (default 100)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 100,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score      int  // Current score
	RoundOver  bool // Round ended (win or loss), waiting for restart or end
	Terminated bool // Player asked to end the game; stop consuming states
	Restarting bool // The last step performed a restart
	Tick       int  // Simulation time of the last state
}

// StepResult is returned by Game.Step() after each input.
type StepResult struct {
	State GameState
}
