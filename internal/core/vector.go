package core

import "math"

// Vector2 is a 2D point or vector: positions, velocities, sizes and
// directions all use it. Values are never mutated in place by its methods.
type Vector2 struct {
	X, Y float64
}

// Vec2 is a shorthand constructor for Vector2.
func Vec2(x, y float64) Vector2 {
	return Vector2{X: x, Y: y}
}

// FromAngleMagnitude builds a vector from an angle in radians and a length.
func FromAngleMagnitude(angle, magnitude float64) Vector2 {
	return Vector2{
		X: math.Cos(angle) * magnitude,
		Y: math.Sin(angle) * magnitude,
	}
}

// Add returns v + o.
func (v Vector2) Add(o Vector2) Vector2 {
	return Vector2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vector2) Sub(o Vector2) Vector2 {
	return Vector2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Mul multiplies per component.
func (v Vector2) Mul(o Vector2) Vector2 {
	return Vector2{X: v.X * o.X, Y: v.Y * o.Y}
}

// Scale multiplies both components by f.
func (v Vector2) Scale(f float64) Vector2 {
	return Vector2{X: v.X * f, Y: v.Y * f}
}

// MagnitudeSq returns the squared length.
func (v Vector2) MagnitudeSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Magnitude returns the length of the vector.
func (v Vector2) Magnitude() float64 {
	return math.Sqrt(v.MagnitudeSq())
}

// Angle returns the direction of the vector in radians, in (-π, π].
func (v Vector2) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}
