// Package engine implements the Glimmerwood Dash simulation: a
// deterministic fixed-timestep endless-runner core. It contains no external
// dependencies so the game logic stays pure and testable; the platform layer
// owns timing, input mapping, rendering, and persistence.
package engine

import (
	"math"
	"math/rand"

	"github.com/JStanoeva/glimmerwood-dash/internal/config"
	"github.com/JStanoeva/glimmerwood-dash/internal/core"
)

// State is the current phase of the game.
type State int

const (
	StateTitle State = iota
	StatePlaying
	StatePaused
	StateGameOver
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateTitle:
		return "Title"
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	case StateGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// firstObstacleX is the sentinel "no obstacle spawned yet" tracker value;
// far enough left that the spacing guard always passes.
const firstObstacleX = -1e9

// Sim is the single owned simulation state. It is mutated only inside Step
// (and SetViewport between steps) and read by the presentation adapter via
// Snapshot; there is no concurrent access by construction.
type Sim struct {
	cfg  config.Game
	ramp *config.Ramp
	rng  *rand.Rand
	dt   float64 // Fixed step, seconds

	state State

	player    Player
	obstacles []Obstacle
	pickups   []Heart
	fireflies []Firefly

	t           float64 // World clock, frozen while paused
	bgOffset    float64 // Background scroll offset
	speed       float64 // Current scroll speed, cells/s
	difficultyT float64 // Elapsed difficulty time, frozen while paused

	obstacleTimer    float64
	obstacleInterval float64
	lastObstacleX    float64 // Spacing guard tracker; scrolls left until reset by a spawn

	heartTimer    float64
	heartInterval float64

	score  int
	hearts int

	viewW, viewH float64
	unit         float64 // Resolution unit: viewH / reference height
	groundY      float64

	events []Event
}

// New creates a simulation in the Title state. The seed fully determines
// every spawn decision, making runs reproducible.
func New(cfg config.Game, rc core.RuntimeConfig) *Sim {
	if rc.TickRate <= 0 {
		rc.TickRate = 60
	}
	s := &Sim{
		cfg:   cfg,
		ramp:  config.NewRamp(cfg.Difficulty),
		rng:   rand.New(rand.NewSource(rc.Seed)),
		dt:    1.0 / float64(rc.TickRate),
		state: StateTitle,
	}
	s.applyViewport(float64(rc.ViewW), float64(rc.ViewH))
	s.spawnFireflies()

	// The player exists on the title screen too, idling on the ground.
	s.player = s.newPlayer()
	s.hearts = cfg.Hearts.Start
	s.speed = cfg.Physics.BaseSpeed * s.unit
	s.obstacleInterval = cfg.Obstacles.BaseInterval
	s.heartInterval = cfg.Hearts.BaseInterval
	s.lastObstacleX = firstObstacleX
	return s
}

// Ramp exposes the difficulty ramp for preset adjustments before play.
func (s *Sim) Ramp() *config.Ramp {
	return s.ramp
}

// State returns the current game state.
func (s *Sim) State() State {
	return s.state
}

// Score returns the current score.
func (s *Sim) Score() int {
	return s.score
}

// Hearts returns the current heart count.
func (s *Sim) Hearts() int {
	return s.hearts
}

// Step advances the simulation by exactly one fixed tick. Within a step the
// update order is load-bearing: decoration tick, then (Playing only)
// difficulty ramp, player physics, spawners, world scroll, obstacle
// collisions, heart pickups, cleanup. A hit that ends the game stops all
// further processing for that step.
func (s *Sim) Step(in core.InputFrame) StepResult {
	s.events = s.events[:0]
	dt := s.dt

	// Decorative ticking runs in every state.
	for i := range s.fireflies {
		s.fireflies[i].Phase += s.fireflies[i].Twinkle * dt
	}

	// Hit cooldown decays in every state.
	if s.player.HitCooldown > 0 {
		s.player.HitCooldown = math.Max(0, s.player.HitCooldown-dt)
	}

	switch s.state {
	case StateTitle, StateGameOver:
		if in.Has(core.ActionStart) {
			s.startRun()
		}

	case StatePaused:
		if in.Has(core.ActionPause) {
			s.setState(StatePlaying)
		}

	case StatePlaying:
		if in.Has(core.ActionPause) {
			s.setState(StatePaused)
			break
		}
		s.stepPlaying(in, dt)
	}

	return StepResult{
		State:  s.state,
		Score:  s.score,
		Hearts: s.hearts,
		Events: s.events,
	}
}

// stepPlaying runs one fixed tick of active gameplay.
func (s *Sim) stepPlaying(in core.InputFrame, dt float64) {
	s.t += dt
	s.difficultyT += dt
	s.speed = s.ramp.Speed(s.cfg.Physics.BaseSpeed, s.difficultyT) * s.unit

	s.stepPlayer(in.Has(core.ActionJump), dt)

	s.stepObstacleSpawner(dt)
	s.stepHeartSpawner(dt)

	s.scrollWorld(dt)

	s.resolveObstacles()
	if s.state == StatePlaying {
		s.resolveHearts()
	}
	s.cleanup()
}

// scrollWorld translates every scrolling entity left by this step's scroll
// distance and advances the decorative background.
func (s *Sim) scrollWorld(dt float64) {
	dx := s.speed * dt

	for i := range s.obstacles {
		s.obstacles[i].X -= dx
	}
	for i := range s.pickups {
		s.pickups[i].X -= dx
		s.pickups[i].BobPhase += 3.0 * dt
	}
	s.lastObstacleX -= dx
	s.bgOffset += dx

	// Fireflies drift slower than the world for a parallax feel and wrap
	// around to the right edge.
	drift := dx * s.cfg.Fireflies.DriftFactor
	for i := range s.fireflies {
		s.fireflies[i].X -= drift
		if s.fireflies[i].X < 0 {
			s.fireflies[i].X += s.viewW
		}
	}
}

// cleanup drops entities flagged for removal or fully off-screen left.
// In-place filtering keeps the backing arrays.
func (s *Sim) cleanup() {
	obstacles := s.obstacles[:0]
	for _, o := range s.obstacles {
		if o.Remove || o.Right() <= 0 {
			continue
		}
		obstacles = append(obstacles, o)
	}
	s.obstacles = obstacles

	pickups := s.pickups[:0]
	for _, h := range s.pickups {
		if h.Remove || h.X+h.W <= 0 {
			continue
		}
		pickups = append(pickups, h)
	}
	s.pickups = pickups
}

// startRun resets all mutable simulation fields and enters Playing.
// Used for both Title->Playing and GameOver->Playing; the two transitions
// are identical by design.
func (s *Sim) startRun() {
	s.player = s.newPlayer()
	s.obstacles = s.obstacles[:0]
	s.pickups = s.pickups[:0]

	s.t = 0
	s.bgOffset = 0
	s.difficultyT = 0
	s.speed = s.cfg.Physics.BaseSpeed * s.unit

	s.obstacleTimer = 0
	s.obstacleInterval = s.nextObstacleInterval()
	s.lastObstacleX = firstObstacleX
	s.heartTimer = 0
	s.heartInterval = s.cfg.Hearts.BaseInterval

	s.score = 0
	s.emit(Event{Kind: EventScoreChanged, Value: 0})
	s.hearts = s.cfg.Hearts.Start
	s.emit(Event{Kind: EventHeartsChanged, Value: s.hearts})

	s.setState(StatePlaying)
}

// newPlayer builds a fresh grounded player from config and the current
// resolution unit.
func (s *Sim) newPlayer() Player {
	u := s.unit
	p := Player{
		X:              s.cfg.Player.X * u,
		W:              s.cfg.Player.Width * u,
		H:              s.cfg.Player.Height * u,
		OnGround:       true,
		JumpsRemaining: s.cfg.Player.MaxJumps,
	}
	p.Y = s.groundY - p.H
	return p
}

// finishRun transitions to GameOver and reports the final score.
// Heart-change events for the fatal hit are already queued, preserving the
// required ordering.
func (s *Sim) finishRun() {
	s.setState(StateGameOver)
	s.emit(Event{Kind: EventGameOver, Value: s.score})
}

// setState transitions the state machine; repeated transitions to the
// current state are no-ops and emit nothing.
func (s *Sim) setState(next State) {
	if s.state == next {
		return
	}
	s.state = next
	s.emit(Event{Kind: EventStateChanged, State: next})
}

// setHearts clamps and applies a new heart count, emitting a change event
// when the value actually moves.
func (s *Sim) setHearts(n int) {
	n = clampInt(n, 0, s.cfg.Hearts.Cap)
	if n == s.hearts {
		return
	}
	s.hearts = n
	s.emit(Event{Kind: EventHeartsChanged, Value: n})
}

func (s *Sim) emit(e Event) {
	s.events = append(s.events, e)
}

// SetViewport applies new viewport metrics. Zero or negative dimensions are
// treated as "no resize". Ground-relative entities are re-anchored to the
// new ground line, not re-simulated.
func (s *Sim) SetViewport(w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	s.applyViewport(float64(w), float64(h))

	for i := range s.obstacles {
		s.obstacles[i].Y = s.groundY - s.obstacles[i].H
	}
	for i := range s.pickups {
		p := &s.pickups[i]
		p.Y = s.groundY - p.H - p.Altitude*s.unit
		if p.Y < 0 {
			p.Y = 0
		}
	}

	p := &s.player
	if p.OnGround {
		p.Y = s.groundY - p.H
	} else if p.Y+p.H > s.groundY {
		p.Y = s.groundY - p.H
	}

	for i := range s.fireflies {
		f := &s.fireflies[i]
		f.X = core.ClampF(f.X, 0, s.viewW)
		f.Y = core.ClampF(f.Y, 0, math.Max(0, s.groundY-1))
	}
}

// applyViewport recomputes the resolution unit and ground line.
func (s *Sim) applyViewport(w, h float64) {
	s.viewW = w
	s.viewH = h

	ref := s.cfg.Physics.ReferenceHeight
	if ref <= 0 {
		ref = 24
	}
	s.unit = h / ref
	s.groundY = h - float64(s.cfg.Player.GroundOffset)
}

// spawnFireflies populates the decorative firefly field once at creation.
// Fireflies persist across restarts.
func (s *Sim) spawnFireflies() {
	n := s.cfg.Fireflies.Count
	s.fireflies = make([]Firefly, 0, n)
	for i := 0; i < n; i++ {
		twinkle := s.cfg.Fireflies.TwinkleMin +
			s.rng.Float64()*(s.cfg.Fireflies.TwinkleMax-s.cfg.Fireflies.TwinkleMin)
		s.fireflies = append(s.fireflies, Firefly{
			X:       s.rng.Float64() * s.viewW,
			Y:       s.rng.Float64() * math.Max(1, s.groundY-2),
			Radius:  0.5 + s.rng.Float64(),
			Phase:   s.rng.Float64() * 2 * math.Pi,
			Twinkle: twinkle,
		})
	}
}

func clampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
