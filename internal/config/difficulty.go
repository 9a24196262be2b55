package config

import "math"

// DifficultyManager calculates dynamic game parameters based on the level reached.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: cfg.InitialLevel,
	}
}

// SetInitialLevel overrides the initial difficulty level (0.0 to 1.0).
func (d *DifficultyManager) SetInitialLevel(level float64) {
	d.initialLevel = clampF(level, 0.0, 1.0)
}

// SetEnabled enables or disables difficulty progression.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty (0.0 to 1.0) for a level number.
func (d *DifficultyManager) Level(levelNumber int) float64 {
	if !d.IsEnabled() || d.cfg.Progression.Type != "level" {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt - 1)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	progress := clampF(float64(levelNumber-1)/maxAt, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// Speed returns an NPC speed scaled by difficulty.
func (d *DifficultyManager) Speed(baseSpeed float64, levelNumber int) float64 {
	return baseSpeed * (1.0 + d.Level(levelNumber)*d.cfg.Scaling.SpeedMultiplier)
}

// Interval returns the NPC spawn interval range for a level number.
// Both bounds shrink as difficulty rises; the range never inverts.
func (d *DifficultyManager) Interval(minSec, maxSec float64, levelNumber int) (float64, float64) {
	keep := 1.0 - d.Level(levelNumber)*clampF(d.cfg.Scaling.IntervalReduction, 0, 0.9)
	lo := minSec * keep
	hi := maxSec * keep
	if lo < 1 {
		lo = 1 // Minimum playable interval
	}
	if hi < lo {
		hi = lo
	}
	return lo, hi
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
