// Package core provides fundamental types and utilities for the arcade platform:
// geometry, the cell screen and its world-space canvas, colors and input frames.
// It has no external dependencies to keep game logic pure and testable.
package core

// Rect is an axis-aligned box with a top-left corner (Pos) and a Size.
// Size components are expected to be non-negative.
type Rect struct {
	Pos  Vector2
	Size Vector2
}

// NewRect creates a rectangle from position and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{Pos: Vector2{X: x, Y: y}, Size: Vector2{X: w, Y: h}}
}

// Left returns the x of the left edge.
func (r Rect) Left() float64 {
	return r.Pos.X
}

// Right returns the x of the right edge.
func (r Rect) Right() float64 {
	return r.Pos.X + r.Size.X
}

// Top returns the y of the top edge.
func (r Rect) Top() float64 {
	return r.Pos.Y
}

// Bottom returns the y of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Pos.Y + r.Size.Y
}

// HorizontalCenter returns the x of the rectangle's center.
func (r Rect) HorizontalCenter() float64 {
	return r.Pos.X + r.Size.X*0.5
}

// VerticalCenter returns the y of the rectangle's center.
func (r Rect) VerticalCenter() float64 {
	return r.Pos.Y + r.Size.Y*0.5
}

// Center returns the center point.
func (r Rect) Center() Vector2 {
	return Vector2{X: r.HorizontalCenter(), Y: r.VerticalCenter()}
}

// TopLeft returns the top-left corner.
func (r Rect) TopLeft() Vector2 {
	return r.Pos
}

// BottomRight returns the bottom-right corner.
func (r Rect) BottomRight() Vector2 {
	return Vector2{X: r.Right(), Y: r.Bottom()}
}

// Intersects reports whether the interiors of r and other overlap.
// Rectangles that only share an edge do not intersect.
func (r Rect) Intersects(other Rect) bool {
	return r.Left() < other.Right() && r.Right() > other.Left() &&
		r.Top() < other.Bottom() && r.Bottom() > other.Top()
}

// Contains reports whether other lies strictly inside r. Every edge comparison
// is strict, so a rect touching any of r's edges is not contained, and neither
// is r itself.
func (r Rect) Contains(other Rect) bool {
	return other.Right() < r.Right() && other.Left() > r.Left() &&
		other.Top() > r.Top() && other.Bottom() < r.Bottom()
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
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

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
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
