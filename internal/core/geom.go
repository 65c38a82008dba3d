// Package core provides fundamental types and utilities for the game.
// It contains no external dependencies (especially no Bubble Tea) to keep
// simulation logic pure and testable.
package core

// Rect is an axis-aligned bounding box in world units.
// World units are terminal cells, but fractional positions are kept so the
// simulation stays smooth at any tick rate.
type Rect struct {
	X, Y float64 // Top-left corner position
	W, H float64 // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Intersects returns true if this rectangle overlaps with another.
// Uses standard AABB collision detection; touching edges do not count.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Inset returns a copy of the rectangle shrunk symmetrically by the given
// fraction of its extent on each axis. Inset(0.1) removes 10% of the width
// and 10% of the height, split evenly between the two sides. Used for
// forgiving hitboxes: collision boxes are smaller than visual bounds.
func (r Rect) Inset(frac float64) Rect {
	dx := r.W * frac / 2
	dy := r.H * frac / 2
	return Rect{
		X: r.X + dx,
		Y: r.Y + dy,
		W: r.W - 2*dx,
		H: r.H - 2*dy,
	}
}

// OverlapsX returns true if the horizontal spans of the two rectangles
// overlap, ignoring the vertical axis. Used by spawn placement checks.
func (r Rect) OverlapsX(other Rect) bool {
	return r.X < other.Right() && other.X < r.Right()
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
