package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
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

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is suspended (e.g. window too small)
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}

// MaxTickRate is the highest supported simulation rate.
const MaxTickRate = 1000

// ClampTickRate maps non-positive rates to the default and caps the rest at
// MaxTickRate.
func ClampTickRate(tickRate int) int {
	if tickRate <= 0 {
		return DefaultConfig().TickRate
	}
	return min(tickRate, MaxTickRate)
}

// Ticks converts a wall-clock duration to a whole number of simulation ticks,
// rounding up so that any positive duration lasts at least one tick.
func Ticks(d time.Duration, tickRate int) int {
	if d <= 0 {
		return 0
	}
	perTick := time.Second / time.Duration(ClampTickRate(tickRate))
	return int((d + perTick - 1) / perTick)
}
