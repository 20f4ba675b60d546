package gas

import (
	"math"
	"testing"
)

func singleParticleSim(p Particle) *Simulator {
	s := New(Params{Particles: 1})
	s.particles[0] = p
	return s
}

func TestWallHitCountPerAxis(t *testing.T) {
	s := New(Params{Particles: 1})
	box := s.Box()

	// Touching the left edge only.
	s.particles[0] = Particle{X: box.X + 5, Y: box.Y + box.Height/2, DX: -2, DY: 0, Mass: 1, Radius: 5}
	s.wallHits = 0
	s.resolveWalls(box)

	if s.wallHits != 1 {
		t.Errorf("expected 1 wall hit, got %d", s.wallHits)
	}
	if s.particles[0].DX != 2 {
		t.Errorf("expected reflected DX 2, got %f", s.particles[0].DX)
	}
}

func TestWallHitCornerCountsTwice(t *testing.T) {
	s := New(Params{Particles: 1})
	box := s.Box()

	s.particles[0] = Particle{X: box.X - 10, Y: box.Y - 10, DX: -1, DY: -1, Mass: 1, Radius: 5}
	s.wallHits = 0
	s.resolveWalls(box)

	if s.wallHits != 2 {
		t.Errorf("expected 2 wall hits in a corner, got %d", s.wallHits)
	}
	if s.particles[0].DX != 1 || s.particles[0].DY != 1 {
		t.Errorf("expected inward velocity (1, 1), got (%f, %f)", s.particles[0].DX, s.particles[0].DY)
	}
}

// Two discs of radius 5 overlapping vertically by one unit swap velocities
// and end exactly touching.
func TestVelocityExchangeScenario(t *testing.T) {
	s := New(Params{Particles: 2})
	s.particles[0] = Particle{X: 100, Y: 100, DX: 1, DY: 0, Mass: 1, Radius: 5}
	s.particles[1] = Particle{X: 100, Y: 109, DX: -1, DY: 0, Mass: 1, Radius: 5}

	s.resolvePairs()

	a, b := s.particles[0], s.particles[1]
	if a.DX != -1 || a.DY != 0 || b.DX != 1 || b.DY != 0 {
		t.Errorf("expected swapped velocities, got (%f, %f) and (%f, %f)", a.DX, a.DY, b.DX, b.DY)
	}

	gap := math.Hypot(b.X-a.X, b.Y-a.Y)
	if math.Abs(gap-10) > 1e-9 {
		t.Errorf("expected center gap 10, got %.12f", gap)
	}
}

func TestVelocityExchangeConservesKineticEnergy(t *testing.T) {
	s := New(Params{Particles: 2})
	s.particles[0] = Particle{X: 200, Y: 200, DX: 2.5, DY: -1.5, Mass: 1, Radius: 5}
	s.particles[1] = Particle{X: 206, Y: 204, DX: -0.5, DY: 3, Mass: 1, Radius: 5}

	before := s.TotalKineticEnergy()
	s.resolvePairs()
	after := s.TotalKineticEnergy()

	if math.Abs(before-after) > 1e-12 {
		t.Errorf("kinetic energy changed: %f -> %f", before, after)
	}
}

func TestSeparatedPairUntouched(t *testing.T) {
	s := New(Params{Particles: 2})
	s.particles[0] = Particle{X: 200, Y: 200, DX: 1, DY: 0, Mass: 1, Radius: 5}
	s.particles[1] = Particle{X: 220, Y: 200, DX: -1, DY: 0, Mass: 1, Radius: 5}

	s.resolvePairs()

	if s.particles[0].DX != 1 || s.particles[1].DX != -1 {
		t.Error("non-overlapping pair must not exchange velocities")
	}
	if s.particles[0].X != 200 || s.particles[1].X != 220 {
		t.Error("non-overlapping pair must not move")
	}
}

func TestSettleClampsIntoInsetBounds(t *testing.T) {
	s := singleParticleSim(Particle{X: 0, Y: 0, Mass: 1, Radius: 5})
	box := s.Box()

	s.settle(box)

	p := s.particles[0]
	if p.X != box.X+5 || p.Y != box.Y+5 {
		t.Errorf("expected (%f, %f), got (%f, %f)", box.X+5, box.Y+5, p.X, p.Y)
	}
}
