package config

import "math"

// Ramp calculates dynamic game parameters from elapsed play time.
// The engine owns the difficulty clock (it freezes while paused); the ramp
// only maps elapsed seconds to concrete speeds and intervals.
type Ramp struct {
	cfg          Difficulty
	initialLevel float64
}

// NewRamp creates a new difficulty ramp.
func NewRamp(cfg Difficulty) *Ramp {
	return &Ramp{
		cfg:          cfg,
		initialLevel: cfg.InitialLevel,
	}
}

// SetInitialLevel overrides the initial difficulty level (0.0 to 1.0).
func (r *Ramp) SetInitialLevel(level float64) {
	r.initialLevel = clampF(level, 0.0, 1.0)
}

// SetEnabled enables or disables difficulty progression.
func (r *Ramp) SetEnabled(enabled bool) {
	r.cfg.Enabled = enabled
}

// IsEnabled returns whether difficulty progression is active.
func (r *Ramp) IsEnabled() bool {
	return r.cfg.Enabled
}

// Level returns the current difficulty level (0.0 to 1.0) for the given
// elapsed play time in seconds.
func (r *Ramp) Level(elapsed float64) float64 {
	if !r.cfg.Enabled {
		return r.initialLevel
	}

	maxAt := r.cfg.MaxAt
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	progress := clampF(elapsed/maxAt, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return r.initialLevel + progress*(1.0-r.initialLevel)
}

// Speed returns the current scroll speed for the given elapsed play time.
func (r *Ramp) Speed(baseSpeed, elapsed float64) float64 {
	level := r.Level(elapsed)
	return baseSpeed * (1.0 + level*r.cfg.SpeedMultiplier)
}

// SpawnInterval returns the target obstacle spawn interval, shrinking
// linearly from base toward min as difficulty rises. The result never goes
// below min.
func (r *Ramp) SpawnInterval(base, min, elapsed float64) float64 {
	level := r.Level(elapsed)
	result := base - level*(base-min)
	if result < min {
		result = min
	}
	return result
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
