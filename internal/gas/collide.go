package gas

import "math"

// resolveWalls clamps every particle into the box and forces the velocity
// component of each touched axis to point inward. Every touched axis counts
// one wall hit, so a particle wedged into a corner counts twice. The clamp is
// idempotent when Move already reflected the particle.
func (s *Simulator) resolveWalls(box Rect) {
	for i := range s.particles {
		p := &s.particles[i]
		p.X, p.Y = box.Clamp(p.X, p.Y, p.Radius)

		if p.X-p.Radius <= box.X {
			p.DX = math.Abs(p.DX)
			s.wallHits++
		} else if p.X+p.Radius >= box.X+box.Width {
			p.DX = -math.Abs(p.DX)
			s.wallHits++
		}

		if p.Y-p.Radius <= box.Y {
			p.DY = math.Abs(p.DY)
			s.wallHits++
		} else if p.Y+p.Radius >= box.Y+box.Height {
			p.DY = -math.Abs(p.DY)
			s.wallHits++
		}
	}
}

// resolvePairs runs one pass over all unordered particle pairs in index
// order. An overlapping pair swaps velocity vectors outright (idealized
// equal-mass exchange, intentionally not an impulse along the contact
// normal) and both discs are pushed apart along the center line by half the
// overlap each, so the pair ends exactly touching. There is no convergence
// iteration; a particle may be moved by several pairs in the same tick.
func (s *Simulator) resolvePairs() {
	for i := range s.particles {
		for j := i + 1; j < len(s.particles); j++ {
			a, b := &s.particles[i], &s.particles[j]

			dx := b.X - a.X
			dy := b.Y - a.Y
			dist := math.Hypot(dx, dy)
			minDist := a.Radius + b.Radius
			if dist >= minDist {
				continue
			}

			a.DX, b.DX = b.DX, a.DX
			a.DY, b.DY = b.DY, a.DY

			angle := math.Atan2(dy, dx)
			half := (minDist - dist) / 2
			a.X -= half * math.Cos(angle)
			a.Y -= half * math.Sin(angle)
			b.X += half * math.Cos(angle)
			b.Y += half * math.Sin(angle)
		}
	}
}

// settle re-clamps particles the pairwise separation may have pushed past
// the inset bounds. Positions only; velocities and the wall-hit count are
// untouched, so this does not inflate the pressure statistic.
func (s *Simulator) settle(box Rect) {
	for i := range s.particles {
		p := &s.particles[i]
		p.X, p.Y = box.Clamp(p.X, p.Y, p.Radius)
	}
}
