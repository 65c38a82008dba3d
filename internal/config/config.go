// Package config provides YAML-based game configuration loading and
// difficulty management. All gameplay "feel" parameters live here rather
// than as hard constants so they can be tuned without recompiling.
package config

// Game contains all tunable configuration for Glimmerwood Dash.
// Distances and sizes are in terminal cells at the reference viewport
// height; the engine scales them with the resolution unit.
type Game struct {
	Physics    Physics    `yaml:"physics"`
	Player     Player     `yaml:"player"`
	Obstacles  Obstacles  `yaml:"obstacles"`
	Hearts     Hearts     `yaml:"hearts"`
	Collision  Collision  `yaml:"collision"`
	Fireflies  Fireflies  `yaml:"fireflies"`
	Difficulty Difficulty `yaml:"difficulty"`
}

// Physics defines movement parameters.
type Physics struct {
	Gravity         float64 `yaml:"gravity"`          // Downward acceleration, cells/s^2
	JumpImpulse     float64 `yaml:"jump_impulse"`     // Jump velocity, cells/s (negative = up)
	MaxFallSpeed    float64 `yaml:"max_fall_speed"`   // Terminal velocity, cells/s
	BaseSpeed       float64 `yaml:"base_speed"`       // World scroll speed, cells/s
	ReferenceHeight float64 `yaml:"reference_height"` // Viewport height the constants are tuned for
}

// Player defines player parameters.
type Player struct {
	X            float64 `yaml:"x"`             // Fixed horizontal position (left edge)
	Width        float64 `yaml:"width"`         // Visual/collision width
	Height       float64 `yaml:"height"`        // Visual/collision height
	GroundOffset int     `yaml:"ground_offset"` // Rows between viewport bottom and ground line
	MaxJumps     int     `yaml:"max_jumps"`     // 2 = single + one mid-air jump
}

// Obstacles defines obstacle spawn parameters.
type Obstacles struct {
	SmallWidth     float64 `yaml:"small_width"`
	SmallHeight    float64 `yaml:"small_height"`
	LargeWidth     float64 `yaml:"large_width"`
	LargeHeight    float64 `yaml:"large_height"`
	SmallChance    float64 `yaml:"small_chance"`    // Probability of a Small spawn
	MinGap         float64 `yaml:"min_gap"`         // Spacing guard, cells
	BaseInterval   float64 `yaml:"base_interval"`   // Spawn interval at level 0, seconds
	MinInterval    float64 `yaml:"min_interval"`    // Spawn interval floor, seconds
	IntervalJitter float64 `yaml:"interval_jitter"` // Uniform jitter half-width, seconds
}

// Hearts defines heart pickup parameters.
type Hearts struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Cap          int     `yaml:"cap"`           // Maximum hearts the player can hold
	Start        int     `yaml:"start"`         // Hearts at session start
	BaseInterval float64 `yaml:"base_interval"` // First spawn check delay, seconds
	MinInterval  float64 `yaml:"min_interval"`  // Reroll range lower bound, seconds
	MaxInterval  float64 `yaml:"max_interval"`  // Reroll range upper bound, seconds
	Chance       float64 `yaml:"chance"`        // Spawn probability per elapsed interval
	SpawnWindow  float64 `yaml:"spawn_window"`  // Candidate x window ahead of the right edge
	Buffer       float64 `yaml:"buffer"`        // Extra clearance around obstacle lanes
	MaxTries     int     `yaml:"max_tries"`     // Placement retries before dropping the spawn
	ShiftStep    float64 `yaml:"shift_step"`    // Rightward shift per retry, cells
	MinAltitude  float64 `yaml:"min_altitude"`  // Lowest hover height above ground
	MaxAltitude  float64 `yaml:"max_altitude"`  // Highest hover height above ground
}

// Collision defines collision-feel parameters.
type Collision struct {
	HitboxInset float64 `yaml:"hitbox_inset"` // Fraction of each extent removed before AABB tests
	HitCooldown float64 `yaml:"hit_cooldown"` // Invulnerability window after a hit, seconds
}

// Fireflies defines the decorative firefly field.
type Fireflies struct {
	Count       int     `yaml:"count"`
	TwinkleMin  float64 `yaml:"twinkle_min"`  // Slowest phase speed, rad/s
	TwinkleMax  float64 `yaml:"twinkle_max"`  // Fastest phase speed, rad/s
	DriftFactor float64 `yaml:"drift_factor"` // Fraction of scroll speed they drift at
}

// Difficulty defines the ramp that makes the game harder over time.
type Difficulty struct {
	Enabled         bool    `yaml:"enabled"`
	InitialLevel    float64 `yaml:"initial_level"`    // 0.0 = easy, 1.0 = hard
	MaxAt           float64 `yaml:"max_at"`           // Seconds of play to reach max difficulty
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Extra speed fraction at max difficulty
}

// Preset represents a named difficulty level.
type Preset string

const (
	PresetEasy   Preset = "easy"
	PresetNormal Preset = "normal"
	PresetHard   Preset = "hard"
	PresetFixed  Preset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset Preset) float64 {
	switch preset {
	case PresetEasy:
		return 0.0
	case PresetNormal:
		return 0.3
	case PresetHard:
		return 0.7
	default:
		return 0.0
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *Game, preset Preset) {
	if preset == PresetFixed {
		cfg.Difficulty.Enabled = false
		return
	}
	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
}
