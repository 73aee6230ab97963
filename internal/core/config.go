package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// FrameMillis returns the length of tick n in milliseconds. Remainders are
// carried between ticks so the total after TickRate ticks is exactly 1000.
func (c RuntimeConfig) FrameMillis(n uint64) uint32 {
	rate := uint64(c.TickRate)
	if rate == 0 {
		rate = 60
	}
	return uint32((n+1)*1000/rate - n*1000/rate) //#nosec G115 -- bounded by 1000
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current (or last finished) score
	Level    int  // Level reached
	GameOver bool // A match has ended and its score is final
	Paused   bool // Whether the game is paused
	Exit     bool // The game asked the platform to close
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
