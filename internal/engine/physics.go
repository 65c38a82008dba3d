package engine

// Player physics and collision resolution. Gravity and the jump impulse are
// scaled by the resolution unit so gameplay feel is independent of the
// viewport height.

// stepPlayer integrates gravity, clamps to the ground, and then applies a
// jump request. The impulse is applied after integration so the vertical
// velocity at the end of a jump step is exactly the configured impulse.
func (s *Sim) stepPlayer(jumpRequested bool, dt float64) {
	p := &s.player
	u := s.unit

	p.VY += s.cfg.Physics.Gravity * u * dt
	maxFall := s.cfg.Physics.MaxFallSpeed * u
	if p.VY > maxFall {
		p.VY = maxFall
	}
	p.Y += p.VY * dt

	// Ground clamp. Jumps replenish only on the airborne->grounded edge.
	if p.Y+p.H >= s.groundY {
		p.Y = s.groundY - p.H
		p.VY = 0
		if !p.OnGround {
			p.OnGround = true
			p.JumpsRemaining = s.cfg.Player.MaxJumps
		}
	}

	if jumpRequested {
		s.jump()
	}
}

// jump performs a jump if any jumps remain. One mid-air jump is allowed
// after leaving the ground; further requests are silently ignored.
func (s *Sim) jump() {
	p := &s.player
	if p.JumpsRemaining <= 0 {
		return
	}
	p.VY = s.cfg.Physics.JumpImpulse * s.unit
	p.OnGround = false
	p.JumpsRemaining--
	s.emit(Event{Kind: EventJumped})
}

// resolveObstacles handles obstacle collisions and clean passes, in that
// order per obstacle so a hit obstacle can never also score. A fatal hit
// ends the run immediately; nothing else is processed that step.
func (s *Sim) resolveObstacles() {
	p := &s.player
	inset := s.cfg.Collision.HitboxInset
	pBox := p.Rect().Inset(inset)

	for i := range s.obstacles {
		o := &s.obstacles[i]
		if o.Hit || o.Remove {
			continue
		}

		if p.HitCooldown <= 0 && pBox.Intersects(o.Rect().Inset(inset)) {
			o.Hit = true
			o.Remove = true
			p.HitCooldown = s.cfg.Collision.HitCooldown
			s.setHearts(s.hearts - 1)
			s.emit(Event{Kind: EventHitTaken})
			if s.hearts <= 0 {
				s.finishRun()
				return
			}
			continue
		}

		// Scoring is independent of collision: award once the player's
		// leading edge has passed the obstacle's trailing edge.
		if !o.Scored && p.X+p.W > o.Right() {
			o.Scored = true
			s.score++
			s.emit(Event{Kind: EventScoreChanged, Value: s.score})
		}
	}
}

// resolveHearts consumes untaken hearts overlapping the player. At the
// heart cap a pickup is left on-field, consuming nothing, until the cap
// frees up or it scrolls away.
func (s *Sim) resolveHearts() {
	p := &s.player
	inset := s.cfg.Collision.HitboxInset
	pBox := p.Rect().Inset(inset)

	for i := range s.pickups {
		h := &s.pickups[i]
		if h.Taken || h.Remove {
			continue
		}
		if s.hearts >= s.cfg.Hearts.Cap {
			continue
		}
		if pBox.Intersects(h.Rect().Inset(inset)) {
			h.Taken = true
			h.Remove = true
			s.setHearts(s.hearts + 1)
			s.emit(Event{Kind: EventHeartCollected})
		}
	}
}
