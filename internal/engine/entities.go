package engine

import "github.com/JStanoeva/glimmerwood-dash/internal/core"

// Player is the runner character. X stays fixed at a near-constant screen
// offset; only Y moves. Replaced wholesale on restart, never reused.
type Player struct {
	X, Y           float64 // Top-left corner in world cells
	W, H           float64
	VY             float64 // Vertical velocity, cells/s (negative = up)
	OnGround       bool
	JumpsRemaining int     // 0..MaxJumps; replenished only on the airborne->grounded edge
	HitCooldown    float64 // Invulnerability seconds remaining, >= 0
}

// Rect returns the player's visual bounding box.
func (p Player) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.W, p.H)
}

// ObstacleKind discriminates obstacle variants.
type ObstacleKind int

const (
	KindSmall ObstacleKind = iota // stump
	KindLarge                     // bramble
)

// String returns a human-readable name for the obstacle kind.
func (k ObstacleKind) String() string {
	switch k {
	case KindSmall:
		return "Small"
	case KindLarge:
		return "Large"
	default:
		return "Unknown"
	}
}

// Obstacle is a ground hazard scrolling toward the player. Hit and Scored
// each transition at most once and are mutually exclusive outcomes: an
// obstacle that causes a hit is removed before any scoring check can see it.
type Obstacle struct {
	Kind       ObstacleKind
	X, Y, W, H float64
	Hit        bool // Already collided with the player
	Scored     bool // Already passed cleanly and awarded score
	Remove     bool // Flagged for cleanup at the end of the step
}

// Rect returns the obstacle's visual bounding box.
func (o Obstacle) Rect() core.Rect {
	return core.NewRect(o.X, o.Y, o.W, o.H)
}

// Right returns the x-coordinate of the obstacle's right edge.
func (o Obstacle) Right() float64 {
	return o.X + o.W
}

// Heart is a collectible pickup hovering above the ground.
type Heart struct {
	X, Y, W, H float64
	Altitude   float64 // Hover height above the ground line, preserved across resizes
	BobPhase   float64 // Decorative bobbing, radians
	Taken      bool
	Remove     bool
}

// Rect returns the heart's visual bounding box.
func (h Heart) Rect() core.Rect {
	return core.NewRect(h.X, h.Y, h.W, h.H)
}

// Firefly is purely decorative: no collision relevance. Phase advances in
// every state; position only advances while Playing.
type Firefly struct {
	X, Y    float64
	Radius  float64
	Phase   float64 // Oscillation phase, radians
	Twinkle float64 // Phase speed, rad/s
}
