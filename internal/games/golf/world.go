package golf

import (
	"github.com/vovakirdan/tui-golf/internal/core"
)

// CollisionListener is notified of a hard bounce at pos with the given wall normal.
type CollisionListener func(pos, normal core.Vec2)

// LaunchListener is notified when the ball is launched from pos along dir (unit).
type LaunchListener func(pos, dir core.Vec2)

// Stats accumulates per-session numbers used for the HUD and persistence.
type Stats struct {
	Shots    int     // Launches with non-zero velocity
	Bounces  int     // Reflections off obstacles
	Distance float64 // Total path length travelled by the ball
	Furthest float64 // Largest straight-line distance from the start
	MaxSpeed float64 // Highest launch or travel speed seen
	Ticks    int     // Simulation steps taken
}

// BallSnapshot is a value copy of the ball for rendering and camera follow.
type BallSnapshot struct {
	Position core.Vec2
	Velocity core.Vec2
	Radius   float64
	State    BallState
	Aim      core.Vec2 // Launch preview while dragging
	Cursor   core.Vec2
}

// Snapshot is a read-only copy of the simulation state.
type Snapshot struct {
	Ball      BallSnapshot
	Obstacles []*Obstacle // Obstacles are immutable once in the world
	Stats     Stats
}

// World owns the ball, the obstacles and the optional corridor generator,
// and advances them in a fixed order each frame. Single-threaded.
type World struct {
	ball      *Ball
	obstacles []*Obstacle
	gen       *Generator
	start     core.Vec2
	stats     Stats

	collisionListeners []CollisionListener
	launchListeners    []LaunchListener
}

// NewWorld creates a world around ball. gen may be nil for a fixed level.
func NewWorld(ball *Ball, gen *Generator) *World {
	return &World{
		ball:  ball,
		gen:   gen,
		start: ball.Position(),
	}
}

// Ball returns the simulated ball.
func (w *World) Ball() *Ball { return w.ball }

// Generator returns the corridor generator, or nil.
func (w *World) Generator() *Generator { return w.gen }

// Obstacles returns the current obstacles. Callers must not modify them.
func (w *World) Obstacles() []*Obstacle { return w.obstacles }

// Stats returns the accumulated session stats.
func (w *World) Stats() Stats { return w.stats }

// AddObstacle inserts an obstacle, typically during initial level setup.
func (w *World) AddObstacle(o *Obstacle) {
	w.obstacles = append(w.obstacles, o)
}

// OnCollision registers a bounce listener.
func (w *World) OnCollision(l CollisionListener) {
	w.collisionListeners = append(w.collisionListeners, l)
}

// OnLaunch registers a launch listener.
func (w *World) OnLaunch(l LaunchListener) {
	w.launchListeners = append(w.launchListeners, l)
}

// Prime runs a generation pass at the current ball position so the
// corridor exists before the first shot. No-op without a generator.
func (w *World) Prime() int {
	if w.gen == nil {
		return 0
	}
	placed := w.gen.Generate(w.ball.Position(), w.ball.Radius(), w.obstacles)
	w.obstacles = append(w.obstacles, placed...)
	return len(placed)
}

// PointerDown forwards a press in world space. Returns whether it was consumed.
func (w *World) PointerDown(p core.Vec2) bool {
	return w.ball.Press(p)
}

// PointerMove forwards a pointer move in world space.
func (w *World) PointerMove(p core.Vec2) bool {
	return w.ball.Move(p)
}

// PointerUp forwards a release in world space and fires launch listeners
// when the ball actually leaves.
func (w *World) PointerUp(p core.Vec2) bool {
	v, ok := w.ball.Release(p)
	if !ok {
		return false
	}
	if v.IsZero() {
		return true
	}

	w.stats.Shots++
	if s := v.Len(); s > w.stats.MaxSpeed {
		w.stats.MaxSpeed = s
	}
	pos, dir := w.ball.Position(), v.Normalize()
	for _, l := range w.launchListeners {
		l(pos, dir)
	}
	return true
}

// Step advances the simulation by dt seconds: integrate the ball, resolve
// collisions against every obstacle, then let the generator extend the corridor.
func (w *World) Step(dt float64) {
	w.stats.Ticks++
	prev := w.ball.Position()

	// Friction applies once per step. Movement is sliced into sub-steps of
	// at most half a radius, each followed by collision resolution.
	if !w.ball.IsDragging() {
		w.ball.applyFriction(dt)
		n := w.ball.subSteps(dt)
		sub := dt / float64(n)
		for i := 0; i < n; i++ {
			w.ball.advance(sub)
			w.resolveCollisions()
		}
	}

	pos := w.ball.Position()
	w.stats.Distance += prev.Dist(pos)
	if d := pos.Dist(w.start); d > w.stats.Furthest {
		w.stats.Furthest = d
	}
	if s := w.ball.Velocity().Len(); s > w.stats.MaxSpeed {
		w.stats.MaxSpeed = s
	}

	if w.gen != nil && w.gen.ShouldGenerate(pos) {
		placed := w.gen.Generate(pos, w.ball.Radius(), w.obstacles)
		w.obstacles = append(w.obstacles, placed...)
	}
}

func (w *World) resolveCollisions() {
	threshold := w.ball.Params().ImpactThreshold
	for _, o := range w.obstacles {
		if !o.Bounds().Intersects(w.ball.Bounds()) {
			continue
		}
		contact, speed, ok := w.ball.ResolveCollision(o)
		if !ok || speed == 0 {
			continue
		}
		w.stats.Bounces++
		if speed <= threshold {
			continue
		}
		for _, l := range w.collisionListeners {
			l(contact.Point, contact.Normal)
		}
	}
}

// Snapshot returns a copy of the state for rendering.
func (w *World) Snapshot() Snapshot {
	obs := make([]*Obstacle, len(w.obstacles))
	copy(obs, w.obstacles)
	return Snapshot{
		Ball: BallSnapshot{
			Position: w.ball.Position(),
			Velocity: w.ball.Velocity(),
			Radius:   w.ball.Radius(),
			State:    w.ball.State(),
			Aim:      w.ball.AimVector(),
			Cursor:   w.ball.Cursor(),
		},
		Obstacles: obs,
		Stats:     w.stats,
	}
}
