package config

import (
	_ "embed"
)

//go:embed defaults/glimmerwood.yaml
var defaultGameYAML []byte

// DefaultGame returns the default configuration. Kept in sync with the
// embedded YAML; used as the last-resort fallback if the embed fails to
// parse.
func DefaultGame() Game {
	return Game{
		Physics: Physics{
			Gravity:         60.0,
			JumpImpulse:     -21.0,
			MaxFallSpeed:    30.0,
			BaseSpeed:       14.0,
			ReferenceHeight: 24,
		},
		Player: Player{
			X:            8,
			Width:        3,
			Height:       3,
			GroundOffset: 2,
			MaxJumps:     2,
		},
		Obstacles: Obstacles{
			SmallWidth:     2,
			SmallHeight:    2,
			LargeWidth:     3,
			LargeHeight:    3,
			SmallChance:    0.7,
			MinGap:         18,
			BaseInterval:   2.4,
			MinInterval:    1.1,
			IntervalJitter: 0.3,
		},
		Hearts: Hearts{
			Width:        2,
			Height:       1,
			Cap:          6,
			Start:        3,
			BaseInterval: 5.5,
			MinInterval:  5.0,
			MaxInterval:  8.5,
			Chance:       0.6,
			SpawnWindow:  30,
			Buffer:       2,
			MaxTries:     12,
			ShiftStep:    4,
			MinAltitude:  4,
			MaxAltitude:  6,
		},
		Collision: Collision{
			HitboxInset: 0.1,
			HitCooldown: 0.6,
		},
		Fireflies: Fireflies{
			Count:       12,
			TwinkleMin:  2.0,
			TwinkleMax:  6.0,
			DriftFactor: 0.35,
		},
		Difficulty: Difficulty{
			Enabled:         true,
			InitialLevel:    0.0,
			MaxAt:           90,
			SpeedMultiplier: 0.6,
		},
	}
}
