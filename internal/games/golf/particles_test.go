package golf

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-golf/internal/core"
)

func TestEmitCollision(t *testing.T) {
	ps := NewParticleSystem(1, 0)
	normal := core.V2(0, -1)
	ps.EmitCollision(core.V2(10, 10), normal)

	if n := ps.Len(); n < 8 || n > 12 {
		t.Fatalf("Len() = %d, expected 8..12", n)
	}
	for _, p := range ps.Particles() {
		speed := p.Vel.Len()
		if speed < 50-eps || speed > 150+eps {
			t.Errorf("speed = %v, expected 50..150", speed)
		}
		angle := math.Acos(core.ClampF(p.Vel.Normalize().Dot(normal), -1, 1))
		if core.RadToDeg(angle) > 30+1e-6 {
			t.Errorf("spark %v deg off the normal, expected <= 30", core.RadToDeg(angle))
		}
		if p.Color != core.ColorBrightWhite {
			t.Errorf("Color = %v, expected bright white", p.Color)
		}
		if p.Life < 0.3 || p.Life > 0.7 {
			t.Errorf("Life = %v, expected 0.3..0.7", p.Life)
		}
	}
}

func TestEmitLaunchGoesBackwards(t *testing.T) {
	ps := NewParticleSystem(2, 0)
	ps.EmitLaunch(core.V2(0, 0), core.V2(1, 0))

	if n := ps.Len(); n < 15 || n > 20 {
		t.Fatalf("Len() = %d, expected 15..20", n)
	}
	for _, p := range ps.Particles() {
		if p.Vel.X > eps {
			t.Errorf("launch particle moving forward: %v", p.Vel)
		}
	}
}

func TestEmitTrailCount(t *testing.T) {
	tests := []struct {
		speed    float64
		expected int
	}{
		{0, 2},
		{100, 4},
		{149, 4},
		{1000, maxTrailBurst},
	}

	for _, tt := range tests {
		ps := NewParticleSystem(3, 0)
		ps.EmitTrail(core.V2(0, 0), core.V2(1, 0), tt.speed)
		if ps.Len() != tt.expected {
			t.Errorf("EmitTrail(speed=%v) spawned %d, expected %d", tt.speed, ps.Len(), tt.expected)
		}
	}
}

func TestParticleSystemCap(t *testing.T) {
	ps := NewParticleSystem(4, 5)
	ps.EmitLaunch(core.V2(0, 0), core.V2(0, 1))
	if ps.Len() != 5 {
		t.Errorf("Len() = %d, expected cap of 5", ps.Len())
	}
}

func TestParticleSystemUpdateRemovesDead(t *testing.T) {
	ps := NewParticleSystem(5, 0)
	ps.EmitCollision(core.V2(0, 0), core.V2(1, 0))
	ps.Update(0.01)
	if ps.Len() == 0 {
		t.Fatal("particles died after 10ms")
	}
	ps.Update(1.0)
	if ps.Len() != 0 {
		t.Errorf("Len() = %d after all lifetimes expired, expected 0", ps.Len())
	}
}

func TestParticleUpdate(t *testing.T) {
	p := Particle{Vel: core.V2(10, 0), Life: 1, MaxLife: 2}
	p.Update(0.5)

	if !approxVec(p.Pos, core.V2(5, 0)) {
		t.Errorf("Pos = %v, expected (5,0)", p.Pos)
	}
	expected := core.V2(10*particleDrag, particleGravity*0.5*particleDrag)
	if !approxVec(p.Vel, expected) {
		t.Errorf("Vel = %v, expected %v", p.Vel, expected)
	}
	if !approx(p.Fade(), 0.25) {
		t.Errorf("Fade() = %v, expected 0.25", p.Fade())
	}
}

func TestRandomDirectionInConeZeroBase(t *testing.T) {
	ps := NewParticleSystem(6, 0)
	for i := 0; i < 20; i++ {
		d := ps.RandomDirectionInCone(core.Vec2{}, 10)
		if !approx(d.Len(), 1) {
			t.Fatalf("|d| = %v, expected 1", d.Len())
		}
		if d.Dot(core.DefaultDirection) < math.Cos(core.DegToRad(5))-1e-6 {
			t.Errorf("direction %v outside the cone around the default", d)
		}
	}
}

func TestParticleSystemDeterministic(t *testing.T) {
	a := NewParticleSystem(7, 0)
	b := NewParticleSystem(7, 0)
	a.EmitCollision(core.V2(1, 2), core.V2(0, 1))
	b.EmitCollision(core.V2(1, 2), core.V2(0, 1))
	if a.Len() != b.Len() {
		t.Fatalf("Len() = %d vs %d", a.Len(), b.Len())
	}
	for i := range a.Particles() {
		if a.Particles()[i] != b.Particles()[i] {
			t.Errorf("particle %d differs", i)
		}
	}
}
