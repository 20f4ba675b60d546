package gas

import (
	"math"
	"math/rand"
)

// Engine constants, fixed for the lifetime of a Simulator.
const (
	// Dt is the simulation time step: one tick moves each particle by one
	// velocity unit, independent of the display frame rate.
	Dt = 1.0

	// BoxAspect is the container height-to-width ratio.
	BoxAspect = 0.75

	// MinScale and MaxScale bound the container scale factor.
	MinScale = 0.3
	MaxScale = 0.9

	// MinTemperature and MaxTemperature bound the temperature multiplier.
	MinTemperature = 0.1
	MaxTemperature = 2.0

	// PressureWindow is the number of ticks in the trailing pressure average.
	PressureWindow = 60
)

// Params configures a Simulator at construction. Zero values for the
// physical fields fall back to the defaults.
type Params struct {
	Particles   int
	Radius      float64
	Mass        float64
	MinSpeed    float64
	MaxSpeed    float64
	Scale       float64
	Temperature float64
	ViewportW   float64
	ViewportH   float64
	Seed        int64
}

// DefaultParams mirrors the classic setup: 50 unit-mass discs of radius 5
// in an 800×600 viewport at scale 0.8, initial speeds drawn from [1, 5].
func DefaultParams() Params {
	return Params{
		Particles:   50,
		Radius:      5,
		Mass:        1.0,
		MinSpeed:    1,
		MaxSpeed:    5,
		Scale:       0.8,
		Temperature: 1.0,
		ViewportW:   800,
		ViewportH:   600,
	}
}

func (p Params) withDefaults() Params {
	def := DefaultParams()
	if p.Particles <= 0 {
		p.Particles = def.Particles
	}
	if p.Radius <= 0 {
		p.Radius = def.Radius
	}
	if p.Mass <= 0 {
		p.Mass = def.Mass
	}
	if p.MaxSpeed <= 0 {
		p.MinSpeed, p.MaxSpeed = def.MinSpeed, def.MaxSpeed
	}
	if p.ViewportW <= 0 || p.ViewportH <= 0 {
		p.ViewportW, p.ViewportH = def.ViewportW, def.ViewportH
	}
	return p
}

// Observer receives the aggregated statistics after every tick.
type Observer interface {
	OnStep(tick int, stats Stats)
}

// Simulator owns the full simulation state: the particle population, the
// container scale, the temperature multiplier and the pressure bookkeeping.
// It is constructed once, stepped repeatedly, and discarded.
type Simulator struct {
	params      Params
	particles   []Particle
	temperature float64
	scale       float64
	viewportW   float64
	viewportH   float64
	wallHits    int
	pressure    []int
	tick        int
	observers   []Observer
	rng         *rand.Rand
}

// New constructs a simulator and fills the container with particles at
// uniformly random positions, each with a uniformly random direction and a
// speed drawn uniformly from [MinSpeed, MaxSpeed]. Scale and temperature are
// clamped into their documented ranges. The same seed yields the same
// initial population.
func New(params Params) *Simulator {
	params = params.withDefaults()
	s := &Simulator{
		params:      params,
		temperature: clamp(params.Temperature, MinTemperature, MaxTemperature),
		scale:       clamp(params.Scale, MinScale, MaxScale),
		viewportW:   params.ViewportW,
		viewportH:   params.ViewportH,
		pressure:    make([]int, 0, PressureWindow),
		rng:         rand.New(rand.NewSource(params.Seed)),
	}

	box := s.Box()
	s.particles = make([]Particle, params.Particles)
	for i := range s.particles {
		angle := s.rng.Float64() * 2 * math.Pi
		speed := params.MinSpeed + s.rng.Float64()*(params.MaxSpeed-params.MinSpeed)
		s.particles[i] = Particle{
			X:      box.X + params.Radius + s.rng.Float64()*(box.Width-2*params.Radius),
			Y:      box.Y + params.Radius + s.rng.Float64()*(box.Height-2*params.Radius),
			DX:     speed * math.Cos(angle),
			DY:     speed * math.Sin(angle),
			Mass:   params.Mass,
			Radius: params.Radius,
		}
	}
	return s
}

// AddObserver registers an observer notified after every tick.
func (s *Simulator) AddObserver(o Observer) { s.observers = append(s.observers, o) }

// Step advances the simulation by one tick: reset the wall-hit counter,
// integrate every particle, resolve wall and pairwise collisions, settle any
// particle the pairwise separation pushed out of bounds, then record the
// tick's wall hits in the pressure window and notify observers.
func (s *Simulator) Step() {
	s.wallHits = 0
	box := s.Box()

	for i := range s.particles {
		s.particles[i].Move(box)
	}

	s.resolveWalls(box)
	s.resolvePairs()
	s.settle(box)

	s.recordPressure()
	s.tick++

	if len(s.observers) > 0 {
		stats := s.Stats()
		for _, o := range s.observers {
			o.OnStep(s.tick, stats)
		}
	}
}

// AdjustTemperature moves the temperature multiplier by delta, clamped into
// [MinTemperature, MaxTemperature], then sets every moving particle's speed
// to sqrt(T)·MaxSpeed. This is a direct speed setpoint, not a
// Maxwell-Boltzmann redistribution.
func (s *Simulator) AdjustTemperature(delta float64) {
	s.temperature = clamp(s.temperature+delta, MinTemperature, MaxTemperature)
	target := math.Sqrt(s.temperature) * s.params.MaxSpeed
	for i := range s.particles {
		s.particles[i].SetSpeed(target)
	}
}

// AdjustBoxSize nudges the scale factor by delta/1000, clamped into
// [MinScale, MaxScale], and remaps every particle to the same fractional
// position inside the new rectangle before re-clamping it into the inset
// bounds.
func (s *Simulator) AdjustBoxSize(delta float64) {
	oldBox := s.Box()
	s.scale = clamp(s.scale+delta/1000, MinScale, MaxScale)
	newBox := s.Box()

	for i := range s.particles {
		p := &s.particles[i]
		relX := (p.X - oldBox.X) / oldBox.Width
		relY := (p.Y - oldBox.Y) / oldBox.Height
		p.X, p.Y = newBox.Clamp(newBox.X+relX*newBox.Width, newBox.Y+relY*newBox.Height, p.Radius)
	}
}

// SetViewport resizes the viewport. Unlike AdjustBoxSize this is clamp-only:
// particles keep their absolute positions and are pulled back in only if the
// new rectangle no longer contains them.
func (s *Simulator) SetViewport(w, h float64) {
	if w <= 0 || h <= 0 {
		return
	}
	s.viewportW, s.viewportH = w, h
	box := s.Box()
	for i := range s.particles {
		p := &s.particles[i]
		p.X, p.Y = box.Clamp(p.X, p.Y, p.Radius)
	}
}

// Reset rebuilds the population from the construction parameters. Observers
// stay registered; the random sequence restarts from the seed, so a reset
// run replays deterministically.
func (s *Simulator) Reset() {
	obs := s.observers
	*s = *New(s.params)
	s.observers = obs
}

// Box returns the current container rectangle.
func (s *Simulator) Box() Rect {
	return Box(s.viewportW, s.viewportH, s.scale)
}

// Particles returns the particle population. The slice is a read-only view
// for rendering; all mutation goes through Step and the commands.
func (s *Simulator) Particles() []Particle { return s.particles }

// Temperature returns the current temperature multiplier.
func (s *Simulator) Temperature() float64 { return s.temperature }

// Scale returns the current container scale factor.
func (s *Simulator) Scale() float64 { return s.scale }

// Tick returns the number of completed steps.
func (s *Simulator) Tick() int { return s.tick }

// Params returns the construction parameters.
func (s *Simulator) Params() Params { return s.params }
