// Package core provides fundamental types and utilities shared by the game,
// its scenes and the terminal platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// AABB is an axis-aligned bounding box in world space, stored as a center
// point plus half extents. World space is Y-up with the ground at y = 0.
type AABB struct {
	X, Y         float64 // Center
	HalfW, HalfH float64 // Half extents
}

// NewAABB creates a box centered on (x, y).
func NewAABB(x, y, halfW, halfH float64) AABB {
	return AABB{X: x, Y: y, HalfW: halfW, HalfH: halfH}
}

// Empty reports whether the box has no area. Empty boxes never overlap.
func (b AABB) Empty() bool {
	return b.HalfW <= 0 || b.HalfH <= 0
}

// Left returns the world-x of the left edge.
func (b AABB) Left() float64 {
	return b.X - b.HalfW
}

// Right returns the world-x of the right edge.
func (b AABB) Right() float64 {
	return b.X + b.HalfW
}

// Bottom returns the world-y of the bottom edge.
func (b AABB) Bottom() float64 {
	return b.Y - b.HalfH
}

// Top returns the world-y of the top edge.
func (b AABB) Top() float64 {
	return b.Y + b.HalfH
}

// Overlap reports whether two boxes overlap. Touching edges do not count.
func Overlap(a, b AABB) bool {
	if a.Empty() || b.Empty() {
		return false
	}
	return math.Abs(a.X-b.X) < a.HalfW+b.HalfW &&
		math.Abs(a.Y-b.Y) < a.HalfH+b.HalfH
}

// Rect represents an integer rectangle in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
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

// Lerp interpolates between a and b by t.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
