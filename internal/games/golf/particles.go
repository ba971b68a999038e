package golf

import (
	"math/rand"

	"github.com/vovakirdan/tui-golf/internal/core"
)

// Particle motion constants.
const (
	particleGravity = 50.0 // Downward acceleration, units/s²
	particleDrag    = 0.98 // Velocity kept per update
	maxTrailBurst   = 5
)

// Particle is a short-lived cosmetic dot.
type Particle struct {
	Pos     core.Vec2
	Vel     core.Vec2
	Life    float64 // Seconds remaining
	MaxLife float64
	Size    float64
	Color   core.Color
}

// Alive reports whether the particle still has lifetime left.
func (p *Particle) Alive() bool {
	return p.Life > 0
}

// Fade returns the remaining life fraction in [0, 1].
func (p *Particle) Fade() float64 {
	if p.MaxLife <= 0 {
		return 0
	}
	return core.ClampF(p.Life/p.MaxLife, 0, 1)
}

// Update advances the particle: integrate, fall, drag.
func (p *Particle) Update(dt float64) {
	p.Life -= dt
	p.Pos = p.Pos.Add(p.Vel.Scale(dt))
	p.Vel.Y += particleGravity * dt
	p.Vel = p.Vel.Scale(particleDrag)
}

// ParticleSystem spawns and ages particles. It has its own RNG so
// effects never disturb the corridor generator's sequence.
type ParticleSystem struct {
	particles []Particle
	rng       *rand.Rand
	max       int
}

// NewParticleSystem creates an empty system holding at most max particles.
// Non-positive max means unbounded.
func NewParticleSystem(seed int64, max int) *ParticleSystem {
	return &ParticleSystem{
		particles: make([]Particle, 0, 64),
		rng:       rand.New(rand.NewSource(seed)),
		max:       max,
	}
}

// Particles returns the live particles. The slice is reused between updates.
func (ps *ParticleSystem) Particles() []Particle {
	return ps.particles
}

// Len returns the number of live particles.
func (ps *ParticleSystem) Len() int {
	return len(ps.particles)
}

// Clear drops all particles.
func (ps *ParticleSystem) Clear() {
	ps.particles = ps.particles[:0]
}

func (ps *ParticleSystem) spawn(p Particle) {
	if ps.max > 0 && len(ps.particles) >= ps.max {
		return
	}
	ps.particles = append(ps.particles, p)
}

func (ps *ParticleSystem) between(lo, hi float64) float64 {
	return lo + ps.rng.Float64()*(hi-lo)
}

func (ps *ParticleSystem) intBetween(lo, hi int) int {
	return lo + ps.rng.Intn(hi-lo+1)
}

// RandomDirectionInCone returns a unit vector within spreadDeg degrees
// (total aperture) around base.
func (ps *ParticleSystem) RandomDirectionInCone(base core.Vec2, spreadDeg float64) core.Vec2 {
	half := core.DegToRad(spreadDeg) / 2
	angle := ps.between(-half, half)
	return base.Normalize().Rotate(angle)
}

// EmitCollision sprays white sparks off a wall along its normal.
func (ps *ParticleSystem) EmitCollision(pos, normal core.Vec2) {
	n := ps.intBetween(8, 12)
	for i := 0; i < n; i++ {
		dir := ps.RandomDirectionInCone(normal, 60)
		life := ps.between(0.3, 0.7)
		ps.spawn(Particle{
			Pos:     pos,
			Vel:     dir.Scale(ps.between(50, 150)),
			Life:    life,
			MaxLife: life,
			Size:    ps.between(1.5, 3.5),
			Color:   core.ColorBrightWhite,
		})
	}
}

// EmitLaunch leaves a green puff behind a freshly launched ball.
func (ps *ParticleSystem) EmitLaunch(pos, dir core.Vec2) {
	n := ps.intBetween(15, 20)
	back := dir.Neg()
	for i := 0; i < n; i++ {
		d := ps.RandomDirectionInCone(back, 90)
		life := ps.between(0.4, 0.8)
		ps.spawn(Particle{
			Pos:     pos,
			Vel:     d.Scale(ps.between(20, 80)),
			Life:    life,
			MaxLife: life,
			Size:    ps.between(2, 4),
			Color:   ps.greenShade(),
		})
	}
}

// EmitTrail drops a few particles behind a moving ball; faster balls
// leave denser trails.
func (ps *ParticleSystem) EmitTrail(pos, dir core.Vec2, speed float64) {
	n := 2 + int(speed/50)
	if n > maxTrailBurst {
		n = maxTrailBurst
	}
	back := dir.Neg()
	for i := 0; i < n; i++ {
		offset := core.V2(ps.between(-5, 5), ps.between(-5, 5))
		d := ps.RandomDirectionInCone(back, 30)
		life := ps.between(0.2, 0.5)
		ps.spawn(Particle{
			Pos:     pos.Add(offset),
			Vel:     d.Scale(ps.between(10, 30)),
			Life:    life,
			MaxLife: life,
			Size:    ps.between(1.5, 3),
			Color:   ps.greenShade(),
		})
	}
}

func (ps *ParticleSystem) greenShade() core.Color {
	if ps.rng.Intn(2) == 0 {
		return core.ColorGreen
	}
	return core.ColorBrightGreen
}

// Update ages every particle and removes the dead ones in place.
func (ps *ParticleSystem) Update(dt float64) {
	alive := ps.particles[:0]
	for i := range ps.particles {
		p := ps.particles[i]
		p.Update(dt)
		if p.Alive() {
			alive = append(alive, p)
		}
	}
	ps.particles = alive
}
