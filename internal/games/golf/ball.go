package golf

import (
	"errors"
	"fmt"
	"math"

	"github.com/vovakirdan/tui-golf/internal/core"
)

// ErrInvalidBallRadius is returned when a ball is built with a non-positive radius.
var ErrInvalidBallRadius = errors.New("golf: ball radius must be positive")

// BallState is the drag state machine of the ball.
type BallState int

const (
	BallFree     BallState = iota // Integrating under velocity and friction
	BallDragging                  // Held for a slingshot launch; velocity pinned to zero
)

// String returns a human-readable name for the state.
func (s BallState) String() string {
	if s == BallDragging {
		return "Dragging"
	}
	return "Free"
}

// BallParams holds the tunables of the ball.
type BallParams struct {
	Radius          float64 // Fixed at creation
	Friction        float64 // Velocity decay factor in (0, 1]
	LaunchFactor    float64 // Drag distance to launch speed
	StopSpeed       float64 // Per-axis speed below which the ball snaps to rest
	Restitution     float64 // Fraction of the normal reflection kept on bounce
	ImpactThreshold float64 // Minimum impact speed reported to observers
	// ReferenceDT makes friction frame-rate independent when positive:
	// decay becomes Friction^(dt/ReferenceDT). Zero applies Friction once
	// per Update regardless of dt.
	ReferenceDT float64
}

// DefaultBallParams returns the classic playground tuning.
func DefaultBallParams() BallParams {
	return BallParams{
		Radius:          20,
		Friction:        0.99,
		LaunchFactor:    2.5,
		StopSpeed:       1.0,
		Restitution:     0.8,
		ImpactThreshold: 50,
	}
}

// Ball is the single dynamic body of the playground.
type Ball struct {
	params     BallParams
	position   core.Vec2
	velocity   core.Vec2
	state      BallState
	dragAnchor core.Vec2
	cursor     core.Vec2
}

// NewBall creates a resting ball at pos.
func NewBall(pos core.Vec2, params BallParams) (*Ball, error) {
	if !(params.Radius > 0) {
		return nil, fmt.Errorf("%w: got %.2f", ErrInvalidBallRadius, params.Radius)
	}
	return &Ball{
		params:   params,
		position: pos,
		cursor:   pos,
	}, nil
}

// Position returns the ball center in world space.
func (b *Ball) Position() core.Vec2 { return b.position }

// Velocity returns the velocity in units per second.
func (b *Ball) Velocity() core.Vec2 { return b.velocity }

// Radius returns the ball radius.
func (b *Ball) Radius() float64 { return b.params.Radius }

// Params returns the tunables the ball was built with.
func (b *Ball) Params() BallParams { return b.params }

// State returns the current drag state.
func (b *Ball) State() BallState { return b.state }

// IsDragging reports whether the ball is held for a launch.
func (b *Ball) IsDragging() bool { return b.state == BallDragging }

// DragAnchor returns the ball position recorded when the drag started.
func (b *Ball) DragAnchor() core.Vec2 { return b.dragAnchor }

// Cursor returns the last tracked pointer position while dragging.
func (b *Ball) Cursor() core.Vec2 { return b.cursor }

// Bounds returns the axis-aligned box around the ball.
func (b *Ball) Bounds() core.Bounds {
	d := b.params.Radius * 2
	return core.BoundsFromCenter(b.position, core.V2(d, d))
}

// SetPosition teleports the ball. Used by level setup and tests.
func (b *Ball) SetPosition(p core.Vec2) { b.position = p }

// SetVelocity overrides the velocity. Ignored while dragging.
func (b *Ball) SetVelocity(v core.Vec2) {
	if b.state == BallDragging {
		return
	}
	b.velocity = v
}

// AimVector is the velocity a release at the current cursor would produce.
// Zero when not dragging.
func (b *Ball) AimVector() core.Vec2 {
	if b.state != BallDragging {
		return core.Vec2{}
	}
	return b.launchVelocity(b.cursor)
}

func (b *Ball) launchVelocity(release core.Vec2) core.Vec2 {
	return b.position.Sub(release).Scale(b.params.LaunchFactor)
}

// Press starts a drag when p lies within the ball. Returns whether the
// event was consumed.
func (b *Ball) Press(p core.Vec2) bool {
	if b.state == BallDragging || p.Dist(b.position) > b.params.Radius {
		return false
	}
	b.state = BallDragging
	b.dragAnchor = b.position
	b.cursor = p
	b.velocity = core.Vec2{}
	return true
}

// Move tracks the pointer while dragging. The ball itself stays put;
// the cursor only feeds the aim indicator.
func (b *Ball) Move(p core.Vec2) bool {
	if b.state != BallDragging {
		return false
	}
	b.cursor = p
	return true
}

// Release ends a drag and launches the ball away from the release point,
// slingshot style. Returns the launch velocity and whether the event was consumed.
func (b *Ball) Release(p core.Vec2) (core.Vec2, bool) {
	if b.state != BallDragging {
		return core.Vec2{}, false
	}
	b.state = BallFree
	b.cursor = p
	b.velocity = b.launchVelocity(p)
	return b.velocity, true
}

// Update integrates one step. Nothing moves while dragging.
func (b *Ball) Update(dt float64) {
	if b.state == BallDragging {
		return
	}
	b.applyFriction(dt)
	b.advance(dt)
}

// applyFriction decays the velocity once and snaps slow motion to rest.
func (b *Ball) applyFriction(dt float64) {
	decay := b.params.Friction
	if b.params.ReferenceDT > 0 {
		decay = math.Pow(b.params.Friction, dt/b.params.ReferenceDT)
	}
	b.velocity = b.velocity.Scale(decay)

	if math.Abs(b.velocity.X) < b.params.StopSpeed && math.Abs(b.velocity.Y) < b.params.StopSpeed {
		b.velocity = core.Vec2{}
	}
}

// advance moves the ball along its velocity for dt seconds.
func (b *Ball) advance(dt float64) {
	b.position = b.position.Add(b.velocity.Scale(dt))
}

// maxSubSteps bounds the work of one World.Step at extreme speeds.
const maxSubSteps = 64

// subSteps returns how many slices dt must be cut into so that no slice
// moves the ball more than half its radius.
func (b *Ball) subSteps(dt float64) int {
	travel := b.velocity.Len() * dt
	n := int(math.Ceil(travel / (b.params.Radius / 2)))
	return min(max(n, 1), maxSubSteps)
}

// ResolveCollision pushes the ball out of o and reflects its velocity.
// A resting ball is never pushed. Returns the contact, the ball speed
// before reflection (zero when it was already separating), and whether a
// collision was resolved.
func (b *Ball) ResolveCollision(o *Obstacle) (Contact, float64, bool) {
	if b.velocity.IsZero() {
		return Contact{}, 0, false
	}

	contact, ok := o.CheckCircleCollision(b.position, b.params.Radius)
	if !ok {
		return Contact{}, 0, false
	}

	overlap := b.params.Radius - contact.Distance
	if contact.Distance > core.Epsilon && o.Contains(b.position) {
		// Center already inside: the edge normal points inward, so push out
		// through the nearest edge instead.
		contact.Normal = contact.Normal.Neg()
		overlap = b.params.Radius + contact.Distance
	}
	b.position = b.position.Add(contact.Normal.Scale(overlap))

	// Only reflect while approaching, otherwise a ball resting against the
	// surface after a bounce would be turned back into it.
	vn := b.velocity.Dot(contact.Normal)
	if vn >= 0 {
		return contact, 0, true
	}
	speed := b.velocity.Len()
	b.velocity = b.velocity.Sub(contact.Normal.Scale(2 * vn * b.params.Restitution))

	return contact, speed, true
}
