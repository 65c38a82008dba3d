package config

import (
	"testing"

	"gopkg.in/yaml.v3"
)

func TestRampLevel(t *testing.T) {
	r := NewRamp(Difficulty{
		Enabled:         true,
		InitialLevel:    0.0,
		MaxAt:           100,
		SpeedMultiplier: 1.0,
	})

	tests := []struct {
		elapsed  float64
		expected float64
	}{
		{0, 0.0},
		{50, 0.5},
		{100, 1.0},
		{200, 1.0}, // clamped past max
	}

	for _, tc := range tests {
		if got := r.Level(tc.elapsed); got != tc.expected {
			t.Errorf("Level(%f) = %f, expected %f", tc.elapsed, got, tc.expected)
		}
	}
}

func TestRampDisabled(t *testing.T) {
	r := NewRamp(Difficulty{
		Enabled:      false,
		InitialLevel: 0.4,
		MaxAt:        100,
	})

	if got := r.Level(1000); got != 0.4 {
		t.Errorf("disabled ramp should stay at initial level, got %f", got)
	}
}

func TestRampInitialLevel(t *testing.T) {
	r := NewRamp(Difficulty{
		Enabled:      true,
		InitialLevel: 0.5,
		MaxAt:        100,
	})

	if got := r.Level(0); got != 0.5 {
		t.Errorf("Level(0) = %f, expected 0.5", got)
	}
	if got := r.Level(100); got != 1.0 {
		t.Errorf("Level(max) = %f, expected 1.0", got)
	}
	// Halfway progresses halfway between initial and 1.0
	if got := r.Level(50); got != 0.75 {
		t.Errorf("Level(50) = %f, expected 0.75", got)
	}
}

func TestRampSpeed(t *testing.T) {
	r := NewRamp(Difficulty{
		Enabled:         true,
		InitialLevel:    0.0,
		MaxAt:           100,
		SpeedMultiplier: 0.5,
	})

	if got := r.Speed(10, 0); got != 10 {
		t.Errorf("Speed at level 0 = %f, expected 10", got)
	}
	if got := r.Speed(10, 100); got != 15 {
		t.Errorf("Speed at max level = %f, expected 15", got)
	}
}

func TestRampSpawnInterval(t *testing.T) {
	r := NewRamp(Difficulty{
		Enabled: true,
		MaxAt:   100,
	})

	if got := r.SpawnInterval(2.4, 1.1, 0); got != 2.4 {
		t.Errorf("SpawnInterval at level 0 = %f, expected 2.4", got)
	}
	got := r.SpawnInterval(2.4, 1.1, 100)
	if got < 1.1-1e-9 || got > 1.1+1e-9 {
		t.Errorf("SpawnInterval at max level = %f, expected 1.1", got)
	}
	// Never below the floor
	if got := r.SpawnInterval(2.4, 1.1, 1e6); got < 1.1 {
		t.Errorf("SpawnInterval below floor: %f", got)
	}
}

func TestApplyPreset(t *testing.T) {
	cfg := DefaultGame()

	ApplyPreset(&cfg, PresetHard)
	if !cfg.Difficulty.Enabled || cfg.Difficulty.InitialLevel != 0.7 {
		t.Errorf("hard preset not applied: %+v", cfg.Difficulty)
	}

	ApplyPreset(&cfg, PresetFixed)
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}
}

func TestDefaultGameMatchesEmbedded(t *testing.T) {
	// The embedded YAML must parse and agree with the hardcoded fallback on
	// the load-bearing values.
	var cfg Game
	if err := yaml.Unmarshal(defaultGameYAML, &cfg); err != nil {
		t.Fatalf("embedded default YAML does not parse: %v", err)
	}

	def := DefaultGame()
	if cfg.Hearts.Cap != def.Hearts.Cap {
		t.Errorf("heart cap mismatch: yaml=%d default=%d", cfg.Hearts.Cap, def.Hearts.Cap)
	}
	if cfg.Obstacles.SmallChance != def.Obstacles.SmallChance {
		t.Errorf("small chance mismatch: yaml=%f default=%f", cfg.Obstacles.SmallChance, def.Obstacles.SmallChance)
	}
	if cfg.Collision.HitCooldown != def.Collision.HitCooldown {
		t.Errorf("hit cooldown mismatch: yaml=%f default=%f", cfg.Collision.HitCooldown, def.Collision.HitCooldown)
	}
}
