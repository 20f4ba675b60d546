package gas

import "math"

// Particle is a rigid disc. Position is in viewport coordinates; velocity is
// displacement per tick.
type Particle struct {
	X, Y   float64
	DX, DY float64
	Mass   float64
	Radius float64
}

// Move advances the particle by one tick and reflects it off the container
// walls: a proposed coordinate past an edge is clamped to the edge and the
// corresponding velocity component is forced to point back inside.
func (p *Particle) Move(box Rect) {
	x := p.X + p.DX*Dt
	y := p.Y + p.DY*Dt

	if x-p.Radius < box.X {
		x = box.X + p.Radius
		p.DX = math.Abs(p.DX)
	} else if x+p.Radius > box.X+box.Width {
		x = box.X + box.Width - p.Radius
		p.DX = -math.Abs(p.DX)
	}

	if y-p.Radius < box.Y {
		y = box.Y + p.Radius
		p.DY = math.Abs(p.DY)
	} else if y+p.Radius > box.Y+box.Height {
		y = box.Y + box.Height - p.Radius
		p.DY = -math.Abs(p.DY)
	}

	p.X = x
	p.Y = y
}

// Speed returns the magnitude of the velocity.
func (p *Particle) Speed() float64 {
	return math.Hypot(p.DX, p.DY)
}

// SetSpeed rescales the velocity to the target magnitude, preserving
// direction exactly. A particle at rest stays at rest: there is no direction
// to preserve and rescaling would divide by zero.
func (p *Particle) SetSpeed(target float64) {
	speed := p.Speed()
	if speed == 0 {
		return
	}
	p.DX = p.DX * target / speed
	p.DY = p.DY * target / speed
}

// KineticEnergy returns ½mv².
func (p *Particle) KineticEnergy() float64 {
	s := p.Speed()
	return 0.5 * p.Mass * s * s
}
