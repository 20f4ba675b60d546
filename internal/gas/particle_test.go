package gas

import (
	"math"
	"testing"
)

var testBox = Rect{X: 0, Y: 0, Width: 400, Height: 300}

func TestParticleMoveFree(t *testing.T) {
	p := Particle{X: 100, Y: 100, DX: 3, DY: -4, Mass: 1, Radius: 5}
	p.Move(testBox)

	if p.X != 103 || p.Y != 96 {
		t.Errorf("expected (103, 96), got (%f, %f)", p.X, p.Y)
	}
	if p.DX != 3 || p.DY != -4 {
		t.Error("velocity should be unchanged away from walls")
	}
}

func TestParticleMoveReflects(t *testing.T) {
	tests := []struct {
		name         string
		p            Particle
		wantX, wantY float64
		wantDX       float64
		wantDY       float64
	}{
		{"left wall", Particle{X: 6, Y: 150, DX: -10, DY: 0, Radius: 5}, 5, 150, 10, 0},
		{"right wall", Particle{X: 394, Y: 150, DX: 10, DY: 0, Radius: 5}, 395, 150, -10, 0},
		{"top wall", Particle{X: 200, Y: 6, DX: 0, DY: -10, Radius: 5}, 200, 5, 0, 10},
		{"bottom wall", Particle{X: 200, Y: 294, DX: 0, DY: 10, Radius: 5}, 200, 295, 0, -10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.p.Move(testBox)
			if tt.p.X != tt.wantX || tt.p.Y != tt.wantY {
				t.Errorf("expected position (%f, %f), got (%f, %f)", tt.wantX, tt.wantY, tt.p.X, tt.p.Y)
			}
			if tt.p.DX != tt.wantDX || tt.p.DY != tt.wantDY {
				t.Errorf("expected velocity (%f, %f), got (%f, %f)", tt.wantDX, tt.wantDY, tt.p.DX, tt.p.DY)
			}
		})
	}
}

func TestParticleSpeed(t *testing.T) {
	p := Particle{DX: 3, DY: 4}
	if p.Speed() != 5 {
		t.Errorf("expected speed 5, got %f", p.Speed())
	}
}

func TestSetSpeedPreservesDirection(t *testing.T) {
	p := Particle{DX: 3, DY: 4}
	p.SetSpeed(10)

	if math.Abs(p.Speed()-10) > 1e-12 {
		t.Errorf("expected speed 10, got %f", p.Speed())
	}
	if math.Abs(p.DX-6) > 1e-12 || math.Abs(p.DY-8) > 1e-12 {
		t.Errorf("direction not preserved: got (%f, %f)", p.DX, p.DY)
	}
}

func TestSetSpeedZeroGuard(t *testing.T) {
	p := Particle{DX: 0, DY: 0}
	p.SetSpeed(10)

	if p.DX != 0 || p.DY != 0 {
		t.Error("a particle at rest must stay at rest")
	}
}

func TestKineticEnergy(t *testing.T) {
	p := Particle{DX: 3, DY: 4, Mass: 2}
	if math.Abs(p.KineticEnergy()-25) > 1e-12 {
		t.Errorf("expected KE 25, got %f", p.KineticEnergy())
	}
}
