package core

// RuntimeConfig contains configuration passed to the simulation at
// initialization. The engine uses this to adapt to the viewport size and
// for deterministic simulation.
type RuntimeConfig struct {
	ViewW    int   // Viewport width in cells
	ViewH    int   // Viewport height in cells
	TickRate int   // Fixed simulation steps per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay (0 = time in platform layer)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ViewW:    80,
		ViewH:    24,
		TickRate: 60,
		Seed:     0,
	}
}
