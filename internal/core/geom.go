// Package core provides fundamental types and utilities for the invaders platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Rect represents an axis-aligned box in screen cells.
// Used for HUD layout (message boxes, borders).
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

// Circle is a collision body in canvas space.
type Circle struct {
	X, Y float64 // Center
	R    float64 // Radius
}

// Dist returns the Euclidean distance between the centers of two circles.
func (c Circle) Dist(other Circle) float64 {
	return math.Hypot(c.X-other.X, c.Y-other.Y)
}

// Overlaps reports whether two circles collide.
// The inequality is strict: circles that only touch do not overlap.
func (c Circle) Overlaps(other Circle) bool {
	return c.Dist(other) < c.R+other.R
}

// Wrap maps v into [0, size) by adding offset before taking the modulo.
// offset must be a multiple of size large enough to keep v+offset non-negative.
func Wrap(v, offset, size float64) float64 {
	return math.Mod(offset+v, size)
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
