package golf

import (
	"errors"
	"math"
	"testing"

	"github.com/vovakirdan/tui-golf/internal/core"
)

const eps = 1e-9

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func approxVec(a, b core.Vec2) bool {
	return approx(a.X, b.X) && approx(a.Y, b.Y)
}

func mustObstacle(t *testing.T, center, size core.Vec2, rot float64) *Obstacle {
	t.Helper()
	o, err := NewObstacle(center, size, core.ColorGray, rot)
	if err != nil {
		t.Fatalf("NewObstacle() error = %v", err)
	}
	return o
}

func TestNewObstacleInvalidSize(t *testing.T) {
	tests := []struct {
		name string
		size core.Vec2
	}{
		{"zero width", core.V2(0, 10)},
		{"negative height", core.V2(10, -1)},
		{"NaN", core.V2(math.NaN(), 10)},
		{"Inf", core.V2(10, math.Inf(1))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewObstacle(core.V2(0, 0), tt.size, core.ColorGray, 0)
			if !errors.Is(err, ErrInvalidObstacleSize) {
				t.Errorf("NewObstacle() error = %v, expected ErrInvalidObstacleSize", err)
			}
		})
	}
}

// An unrotated obstacle must agree with the plain clamp-to-box test for
// every circle whose center is outside the box.
func TestCheckCircleCollisionMatchesAABB(t *testing.T) {
	o := mustObstacle(t, core.V2(0, 0), core.V2(100, 40), 0)
	box := o.Bounds()
	const radius = 15.0

	for x := -90.0; x <= 90; x += 7 {
		for y := -60.0; y <= 60; y += 7 {
			p := core.V2(x, y)
			if o.Contains(p) {
				continue
			}
			closest := box.ClosestPoint(p)
			expected := p.Dist(closest) <= radius

			contact, hit := o.CheckCircleCollision(p, radius)
			if hit != expected {
				t.Fatalf("CheckCircleCollision(%v) = %v, expected %v", p, hit, expected)
			}
			if hit && !approxVec(contact.Point, closest) {
				t.Errorf("contact point for %v = %v, expected %v", p, contact.Point, closest)
			}
		}
	}
}

func TestCheckCircleCollisionRotated(t *testing.T) {
	// 100x20 turned upright spans x in [-10, 10], y in [-50, 50].
	o := mustObstacle(t, core.V2(0, 0), core.V2(100, 20), 90)

	if _, hit := o.CheckCircleCollision(core.V2(25, 0), 10); hit {
		t.Error("CheckCircleCollision((25,0), 10) = true, expected false")
	}

	contact, hit := o.CheckCircleCollision(core.V2(18, 0), 10)
	if !hit {
		t.Fatal("CheckCircleCollision((18,0), 10) = false, expected true")
	}
	if !approxVec(contact.Point, core.V2(10, 0)) {
		t.Errorf("Point = %v, expected (10,0)", contact.Point)
	}
	if !approxVec(contact.Normal, core.V2(1, 0)) {
		t.Errorf("Normal = %v, expected (1,0)", contact.Normal)
	}
	if !approx(contact.Distance, 8) {
		t.Errorf("Distance = %v, expected 8", contact.Distance)
	}
}

func TestCheckCircleCollisionTouching(t *testing.T) {
	o := mustObstacle(t, core.V2(0, 0), core.V2(40, 40), 0)
	if _, hit := o.CheckCircleCollision(core.V2(30, 0), 10); !hit {
		t.Error("touching circle should collide")
	}
}

func TestContactNormalIsUnit(t *testing.T) {
	o := mustObstacle(t, core.V2(50, 50), core.V2(120, 30), 33)
	probes := []core.Vec2{core.V2(50, 20), core.V2(120, 60), core.V2(0, 50), core.V2(50, 80)}
	for _, p := range probes {
		contact, hit := o.CheckCircleCollision(p, 40)
		if !hit {
			continue
		}
		if !approx(contact.Normal.Len(), 1) {
			t.Errorf("|Normal| for %v = %v, expected 1", p, contact.Normal.Len())
		}
	}
}

func TestObstacleContains(t *testing.T) {
	o := mustObstacle(t, core.V2(0, 0), core.V2(100, 20), 45)
	if !o.Contains(core.V2(30, 30)) {
		t.Error("Contains((30,30)) = false, expected true on the diagonal")
	}
	if o.Contains(core.V2(30, -30)) {
		t.Error("Contains((30,-30)) = true, expected false")
	}
}
