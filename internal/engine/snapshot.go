package engine

// Snapshot is a read-only copy of the simulation state for the presentation
// adapter. Entity slices are copied so the renderer can never mutate (or
// race with) live simulation state.
type Snapshot struct {
	State    State
	Score    int
	Hearts   int
	HeartCap int

	T        float64 // World clock, seconds of play
	BGOffset float64 // Background scroll offset, cells
	Speed    float64 // Current scroll speed, cells/s

	ViewW, ViewH float64
	GroundY      float64
	Unit         float64

	Player    Player
	Obstacles []Obstacle
	Pickups   []Heart
	Fireflies []Firefly
}

// Snapshot captures the current simulation state.
func (s *Sim) Snapshot() Snapshot {
	snap := Snapshot{
		State:    s.state,
		Score:    s.score,
		Hearts:   s.hearts,
		HeartCap: s.cfg.Hearts.Cap,
		T:        s.t,
		BGOffset: s.bgOffset,
		Speed:    s.speed,
		ViewW:    s.viewW,
		ViewH:    s.viewH,
		GroundY:  s.groundY,
		Unit:     s.unit,
		Player:   s.player,
	}

	snap.Obstacles = make([]Obstacle, len(s.obstacles))
	copy(snap.Obstacles, s.obstacles)
	snap.Pickups = make([]Heart, len(s.pickups))
	copy(snap.Pickups, s.pickups)
	snap.Fireflies = make([]Firefly, len(s.fireflies))
	copy(snap.Fireflies, s.fireflies)

	return snap
}
