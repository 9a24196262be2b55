package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Render ticks per second (default 60)
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
	Scene    string  // Name of the active scene
	Score    int     // Meters walked across the whole run
	Level    int     // Current level number (1-based)
	Meters   float64 // Meters walked in the current level
	GameOver bool    // Whether the run has ended
	Paused   bool    // Whether the game is paused
	Quit     bool    // Whether the game asked the platform to exit
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}

// MaxFrameDelta bounds a single simulation step so a suspended terminal
// does not produce one huge step when it resumes.
const MaxFrameDelta = 50 * time.Millisecond

// FrameDelta returns the clamped delta between two tick timestamps in seconds.
// A zero prev (first tick) or a negative delta yields 0.
func FrameDelta(prev, now time.Time, max time.Duration) float64 {
	if prev.IsZero() {
		return 0
	}
	d := now.Sub(prev)
	if d < 0 {
		return 0
	}
	if d > max {
		d = max
	}
	return d.Seconds()
}
