// Package core provides fundamental types and utilities for the golf playground.
// It contains no external dependencies (especially no Bubble Tea) to keep the
// simulation pure and testable.
package core

import "math"

// Rect is an integer cell-space rectangle used for drawing on a Screen.
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

// Contains returns true if the cell (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Bounds is a world-space axis-aligned bounding box.
type Bounds struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// BoundsFromCenter builds the box of the given full size centered on c.
func BoundsFromCenter(c, size Vec2) Bounds {
	hw, hh := size.X/2, size.Y/2
	return Bounds{MinX: c.X - hw, MinY: c.Y - hh, MaxX: c.X + hw, MaxY: c.Y + hh}
}

// BoundsFromPoints returns the smallest box enclosing all points.
// An empty slice yields the zero box.
func BoundsFromPoints(pts ...Vec2) Bounds {
	if len(pts) == 0 {
		return Bounds{}
	}
	b := Bounds{MinX: pts[0].X, MinY: pts[0].Y, MaxX: pts[0].X, MaxY: pts[0].Y}
	for _, p := range pts[1:] {
		b.MinX = math.Min(b.MinX, p.X)
		b.MinY = math.Min(b.MinY, p.Y)
		b.MaxX = math.Max(b.MaxX, p.X)
		b.MaxY = math.Max(b.MaxY, p.Y)
	}
	return b
}

// Width returns the horizontal extent.
func (b Bounds) Width() float64 {
	return b.MaxX - b.MinX
}

// Height returns the vertical extent.
func (b Bounds) Height() float64 {
	return b.MaxY - b.MinY
}

// Center returns the midpoint of the box.
func (b Bounds) Center() Vec2 {
	return Vec2{(b.MinX + b.MaxX) / 2, (b.MinY + b.MaxY) / 2}
}

// Expand grows the box by pad on every side.
func (b Bounds) Expand(pad float64) Bounds {
	return Bounds{MinX: b.MinX - pad, MinY: b.MinY - pad, MaxX: b.MaxX + pad, MaxY: b.MaxY + pad}
}

// Intersects reports whether two boxes overlap. Boxes that only touch
// along an edge count as intersecting.
func (b Bounds) Intersects(o Bounds) bool {
	return !(b.MaxX < o.MinX || o.MaxX < b.MinX || b.MaxY < o.MinY || o.MaxY < b.MinY)
}

// Contains reports whether p lies inside the box (edges inclusive).
func (b Bounds) Contains(p Vec2) bool {
	return p.X >= b.MinX && p.X <= b.MaxX && p.Y >= b.MinY && p.Y <= b.MaxY
}

// ClosestPoint clamps p into the box.
func (b Bounds) ClosestPoint(p Vec2) Vec2 {
	return Vec2{ClampF(p.X, b.MinX, b.MaxX), ClampF(p.Y, b.MinY, b.MaxY)}
}

// DistancePointSegment returns the distance from p to the segment a-b and
// the closest point on that segment. A zero-length segment is treated as
// the single point a.
func DistancePointSegment(p, a, b Vec2) (float64, Vec2) {
	ab := b.Sub(a)
	lenSq := ab.LenSq()
	if lenSq < Epsilon*Epsilon {
		return p.Dist(a), a
	}
	t := ClampF(p.Sub(a).Dot(ab)/lenSq, 0, 1)
	closest := a.Add(ab.Scale(t))
	return p.Dist(closest), closest
}

// RotatedRectCorners returns the corners of a rectangle of the given full
// size rotated by rotationDeg about its center. Under zero rotation the
// order is top-left, top-right, bottom-right, bottom-left (y grows down).
func RotatedRectCorners(center, size Vec2, rotationDeg float64) [4]Vec2 {
	hw, hh := size.X/2, size.Y/2
	local := [4]Vec2{{-hw, -hh}, {hw, -hh}, {hw, hh}, {-hw, hh}}

	rad := DegToRad(rotationDeg)
	var out [4]Vec2
	for i, c := range local {
		out[i] = center.Add(c.Rotate(rad))
	}
	return out
}

// PointInPolygon reports whether p is inside the convex polygon given in
// consistent winding order.
func PointInPolygon(p Vec2, poly []Vec2) bool {
	if len(poly) < 3 {
		return false
	}
	sign := 0.0
	for i := range poly {
		a := poly[i]
		b := poly[(i+1)%len(poly)]
		cross := (b.X-a.X)*(p.Y-a.Y) - (b.Y-a.Y)*(p.X-a.X)
		if cross == 0 {
			continue
		}
		if sign == 0 {
			sign = cross
		} else if (cross > 0) != (sign > 0) {
			return false
		}
	}
	return true
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
