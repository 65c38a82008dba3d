package engine

// Procedural spawning. Obstacles follow a ramped timer with a spacing guard;
// hearts follow an independent slower timer with lane-overlap rejection.
// All randomness flows through the seeded Sim RNG in a fixed order, keeping
// spawn sequences reproducible.

// spawnRetryFraction partially rewinds the obstacle timer when the spacing
// guard blocks a spawn, so a retry happens soon without bursting.
const spawnRetryFraction = 0.7

// stepObstacleSpawner accumulates the obstacle timer and spawns when the
// interval elapses, subject to the spacing guard: the most recent obstacle
// must already be at least the minimum gap left of the right edge.
func (s *Sim) stepObstacleSpawner(dt float64) {
	s.obstacleTimer += dt
	if s.obstacleTimer < s.obstacleInterval {
		return
	}

	if s.lastObstacleX > s.viewW-s.cfg.Obstacles.MinGap*s.unit {
		s.obstacleTimer = s.obstacleInterval * spawnRetryFraction
		return
	}

	s.spawnObstacle()
	s.obstacleTimer = 0
	s.obstacleInterval = s.nextObstacleInterval()
}

// spawnObstacle creates one obstacle at the right edge of the world.
func (s *Sim) spawnObstacle() {
	u := s.unit
	o := Obstacle{Kind: KindLarge, X: s.viewW}
	if s.rng.Float64() < s.cfg.Obstacles.SmallChance {
		o.Kind = KindSmall
	}
	switch o.Kind {
	case KindSmall:
		o.W = s.cfg.Obstacles.SmallWidth * u
		o.H = s.cfg.Obstacles.SmallHeight * u
	case KindLarge:
		o.W = s.cfg.Obstacles.LargeWidth * u
		o.H = s.cfg.Obstacles.LargeHeight * u
	}
	o.Y = s.groundY - o.H

	s.obstacles = append(s.obstacles, o)
	s.lastObstacleX = o.X
}

// nextObstacleInterval picks the next spawn interval: the difficulty-ramped
// target clamped to [min, base], plus uniform jitter.
func (s *Sim) nextObstacleInterval() float64 {
	cfg := s.cfg.Obstacles
	target := s.ramp.SpawnInterval(cfg.BaseInterval, cfg.MinInterval, s.difficultyT)
	if target > cfg.BaseInterval {
		target = cfg.BaseInterval
	}
	jitter := (s.rng.Float64()*2 - 1) * cfg.IntervalJitter
	return target + jitter
}

// stepHeartSpawner accumulates the heart timer; when it elapses, the
// interval is rerolled and a spawn is attempted, gated by the heart cap and
// a random chance roll.
func (s *Sim) stepHeartSpawner(dt float64) {
	s.heartTimer += dt
	if s.heartTimer < s.heartInterval {
		return
	}

	s.heartTimer = 0
	cfg := s.cfg.Hearts
	s.heartInterval = cfg.MinInterval + s.rng.Float64()*(cfg.MaxInterval-cfg.MinInterval)

	if s.hearts >= cfg.Cap {
		return
	}
	if s.rng.Float64() >= cfg.Chance {
		return
	}

	s.placeHeart()
}

// placeHeart tries to place a heart in a window ahead of the right edge,
// shifting right on each retry to avoid obstacle lanes. If no clear lane is
// found within the retry budget, the spawn is dropped for this interval.
func (s *Sim) placeHeart() {
	u := s.unit
	cfg := s.cfg.Hearts
	w := cfg.Width * u
	h := cfg.Height * u

	x := s.viewW + s.rng.Float64()*cfg.SpawnWindow*u

	for try := 0; try < cfg.MaxTries; try++ {
		if s.heartLaneClear(x, w) {
			altitude := cfg.MinAltitude + s.rng.Float64()*(cfg.MaxAltitude-cfg.MinAltitude)
			s.pickups = append(s.pickups, Heart{
				X:        x,
				Y:        s.groundY - h - altitude*u,
				W:        w,
				H:        h,
				Altitude: altitude,
				BobPhase: s.rng.Float64() * 6.28318,
			})
			return
		}
		x += cfg.ShiftStep * u
	}
}

// heartLaneClear reports whether a heart spanning [x, x+w] avoids every
// obstacle's lane zone, widened by the heart's half-width plus the
// configured buffer.
func (s *Sim) heartLaneClear(x, w float64) bool {
	margin := w/2 + s.cfg.Hearts.Buffer*s.unit
	for i := range s.obstacles {
		o := &s.obstacles[i]
		if o.Remove {
			continue
		}
		lo := o.X - margin
		hi := o.Right() + margin
		if x < hi && x+w > lo {
			return false
		}
	}
	return true
}
