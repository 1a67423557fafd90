package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int    // Screen width in characters
	ScreenH  int    // Screen height in characters
	TickRate int    // Platform ticks per second
	Seed     string // Run seed; empty means generate one
	Level    int    // Starting level, 1-based
	Theme    string // Terminal color theme; empty means the default
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
		Seed:     "",
		Level:    1,
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the run has ended
	Won      bool // Whether the run ended in a win
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each tick.
type StepResult struct {
	State GameState
	// Message is a short status line for the HUD, empty if nothing happened.
	Message string
}

// RunOutcome summarizes a finished run for the run log.
type RunOutcome struct {
	RunID     string
	Level     int
	Tier      string
	Seed      string
	Status    string
	Picks     int
	Matches   int
	ToolsUsed int
	Score     int
	Ticks     int
}
