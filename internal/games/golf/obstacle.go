package golf

import (
	"errors"
	"fmt"
	"math"

	"github.com/vovakirdan/tui-golf/internal/core"
)

// ErrInvalidObstacleSize is returned when an obstacle is built with a
// non-positive width or height.
var ErrInvalidObstacleSize = errors.New("golf: obstacle size must be positive")

// Contact describes where a circle touches an obstacle.
type Contact struct {
	Point    core.Vec2 // Closest point on the obstacle boundary
	Normal   core.Vec2 // Unit vector from Point toward the circle center
	Distance float64   // Distance from the circle center to Point
}

// Obstacle is a static, optionally rotated rectangle.
// Position is the center; size is the full width and height.
type Obstacle struct {
	center   core.Vec2
	size     core.Vec2
	rotation float64 // degrees
	color    core.Color
}

// NewObstacle creates an obstacle. Sizes that are not strictly positive
// are rejected with ErrInvalidObstacleSize.
func NewObstacle(center, size core.Vec2, color core.Color, rotationDeg float64) (*Obstacle, error) {
	if !(size.X > 0) || !(size.Y > 0) || math.IsInf(size.X, 0) || math.IsInf(size.Y, 0) {
		return nil, fmt.Errorf("%w: got %.2fx%.2f", ErrInvalidObstacleSize, size.X, size.Y)
	}
	return &Obstacle{
		center:   center,
		size:     size,
		rotation: rotationDeg,
		color:    color,
	}, nil
}

// Position returns the obstacle center.
func (o *Obstacle) Position() core.Vec2 {
	return o.center
}

// Size returns the full width and height before rotation.
func (o *Obstacle) Size() core.Vec2 {
	return o.size
}

// Rotation returns the rotation in degrees.
func (o *Obstacle) Rotation() float64 {
	return o.rotation
}

// SetRotation sets the rotation in degrees. Only meant for level setup,
// before the obstacle is handed to a World.
func (o *Obstacle) SetRotation(deg float64) {
	o.rotation = deg
}

// Color returns the cosmetic color tag.
func (o *Obstacle) Color() core.Color {
	return o.color
}

// Corners returns the four rotated corners in winding order.
func (o *Obstacle) Corners() [4]core.Vec2 {
	return core.RotatedRectCorners(o.center, o.size, o.rotation)
}

// Bounds returns the smallest axis-aligned box enclosing the rotated rectangle.
// Coarse overlap checks only; use CheckCircleCollision for contact.
func (o *Obstacle) Bounds() core.Bounds {
	c := o.Corners()
	return core.BoundsFromPoints(c[:]...)
}

// Contains reports whether p lies inside the rotated rectangle.
func (o *Obstacle) Contains(p core.Vec2) bool {
	c := o.Corners()
	return core.PointInPolygon(p, c[:])
}

// CheckCircleCollision tests a circle against the rectangle edges.
// The nearest point over all four edges decides: a contact is reported
// when it is within radius of the center.
func (o *Obstacle) CheckCircleCollision(center core.Vec2, radius float64) (Contact, bool) {
	corners := o.Corners()

	best := Contact{Distance: math.Inf(1)}
	for i := range corners {
		d, p := core.DistancePointSegment(center, corners[i], corners[(i+1)%4])
		if d < best.Distance {
			best.Distance = d
			best.Point = p
		}
	}
	if best.Distance > radius {
		return Contact{}, false
	}

	// Coincident center and contact point: fall back to straight up.
	best.Normal = center.Sub(best.Point).NormalizeOr(core.V2(0, -1))
	return best, true
}
