package gas

// Display unit labels for the aggregate statistics. Cosmetic only, not
// dimensionally checked.
const (
	SpeedUnit       = "m/s"
	TemperatureUnit = "T"
	PressureUnit    = "Pa"
	EnergyUnit      = "J"
)

// Stats is a snapshot of the macroscopic quantities after a tick.
type Stats struct {
	AverageSpeed         float64 `json:"avg_speed"`
	Temperature          float64 `json:"temperature"`
	Pressure             float64 `json:"pressure"`
	AverageKineticEnergy float64 `json:"avg_ke"`
	TotalKineticEnergy   float64 `json:"total_ke"`
	WallHits             int     `json:"wall_hits"`
}

// AverageSpeed returns the mean particle speed.
func (s *Simulator) AverageSpeed() float64 {
	sum := 0.0
	for i := range s.particles {
		sum += s.particles[i].Speed()
	}
	return sum / float64(len(s.particles))
}

// TotalKineticEnergy returns the summed kinetic energy of the population.
func (s *Simulator) TotalKineticEnergy() float64 {
	sum := 0.0
	for i := range s.particles {
		sum += s.particles[i].KineticEnergy()
	}
	return sum
}

// AverageKineticEnergy returns the mean per-particle kinetic energy.
func (s *Simulator) AverageKineticEnergy() float64 {
	return s.TotalKineticEnergy() / float64(len(s.particles))
}

// Pressure returns the trailing mean of wall hits over the retained window.
// It is a collision-rate proxy, not force per area. Zero before the first
// tick.
func (s *Simulator) Pressure() float64 {
	if len(s.pressure) == 0 {
		return 0
	}
	sum := 0
	for _, n := range s.pressure {
		sum += n
	}
	return float64(sum) / float64(len(s.pressure))
}

// PressureSamples returns a copy of the retained wall-hit window, oldest
// first. At most PressureWindow entries.
func (s *Simulator) PressureSamples() []int {
	out := make([]int, len(s.pressure))
	copy(out, s.pressure)
	return out
}

// recordPressure appends the tick's wall-hit count, evicting the oldest
// sample once the window is full.
func (s *Simulator) recordPressure() {
	s.pressure = append(s.pressure, s.wallHits)
	if len(s.pressure) > PressureWindow {
		s.pressure = s.pressure[1:]
	}
}

// Stats assembles the five display statistics in one snapshot.
func (s *Simulator) Stats() Stats {
	return Stats{
		AverageSpeed:         s.AverageSpeed(),
		Temperature:          s.temperature,
		Pressure:             s.Pressure(),
		AverageKineticEnergy: s.AverageKineticEnergy(),
		TotalKineticEnergy:   s.TotalKineticEnergy(),
		WallHits:             s.wallHits,
	}
}
