package core

import "math"

// Epsilon is the length below which a vector is treated as zero.
const Epsilon = 1e-9

// Vec2 is a 2D vector in world space. It is an immutable value type:
// every operation returns a new vector.
type Vec2 struct {
	X, Y float64
}

// V2 creates a new Vec2.
func V2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns a + b.
func (a Vec2) Add(b Vec2) Vec2 {
	return Vec2{a.X + b.X, a.Y + b.Y}
}

// Sub returns a - b.
func (a Vec2) Sub(b Vec2) Vec2 {
	return Vec2{a.X - b.X, a.Y - b.Y}
}

// Scale returns a * s.
func (a Vec2) Scale(s float64) Vec2 {
	return Vec2{a.X * s, a.Y * s}
}

// Neg returns -a.
func (a Vec2) Neg() Vec2 {
	return Vec2{-a.X, -a.Y}
}

// Dot returns the dot product a · b.
func (a Vec2) Dot(b Vec2) float64 {
	return a.X*b.X + a.Y*b.Y
}

// Len returns the Euclidean length.
func (a Vec2) Len() float64 {
	return math.Hypot(a.X, a.Y)
}

// LenSq returns the squared length.
func (a Vec2) LenSq() float64 {
	return a.X*a.X + a.Y*a.Y
}

// Dist returns the distance between a and b.
func (a Vec2) Dist(b Vec2) float64 {
	return a.Sub(b).Len()
}

// IsZero reports whether both components are exactly zero.
func (a Vec2) IsZero() bool {
	return a.X == 0 && a.Y == 0
}

// Perp returns a rotated 90 degrees counter-clockwise (in y-down screen
// coordinates this points to the left of a).
func (a Vec2) Perp() Vec2 {
	return Vec2{-a.Y, a.X}
}

// Rotate returns a rotated by rad radians.
func (a Vec2) Rotate(rad float64) Vec2 {
	sin, cos := math.Sincos(rad)
	return Vec2{a.X*cos - a.Y*sin, a.X*sin + a.Y*cos}
}

// Angle returns the heading of a in radians.
func (a Vec2) Angle() float64 {
	return math.Atan2(a.Y, a.X)
}

// FromAngle returns the unit vector with the given heading in radians.
func FromAngle(rad float64) Vec2 {
	sin, cos := math.Sincos(rad)
	return Vec2{cos, sin}
}

// DefaultDirection is returned by Normalize for near-zero vectors.
// It points up on screen.
var DefaultDirection = Vec2{0, -1}

// Normalize returns the unit vector in the direction of a.
// Near-zero vectors yield DefaultDirection instead of NaN.
func (a Vec2) Normalize() Vec2 {
	return a.NormalizeOr(DefaultDirection)
}

// NormalizeOr is like Normalize but returns fallback for near-zero vectors.
func (a Vec2) NormalizeOr(fallback Vec2) Vec2 {
	l := a.Len()
	if l < Epsilon {
		return fallback
	}
	return Vec2{a.X / l, a.Y / l}
}

// DegToRad converts degrees to radians.
func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// RadToDeg converts radians to degrees.
func RadToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}
