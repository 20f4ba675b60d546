package gas_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/stanislausjustin/Computational-Physics/internal/gas"
)

func contained(s *gas.Simulator) bool {
	box := s.Box()
	for _, p := range s.Particles() {
		if p.X < box.X+p.Radius-1e-9 || p.X > box.X+box.Width-p.Radius+1e-9 ||
			p.Y < box.Y+p.Radius-1e-9 || p.Y > box.Y+box.Height-p.Radius+1e-9 {
			return false
		}
	}
	return true
}

var _ = Describe("Simulator", func() {
	var sim *gas.Simulator

	BeforeEach(func() {
		params := gas.DefaultParams()
		params.Seed = 42
		sim = gas.New(params)
	})

	It("keeps every particle inside the inset box across steps and commands", func() {
		for i := 0; i < 300; i++ {
			switch i % 60 {
			case 10:
				sim.AdjustBoxSize(-20)
			case 25:
				sim.AdjustTemperature(0.3)
			case 40:
				sim.SetViewport(640, 480)
			case 55:
				sim.AdjustBoxSize(30)
				sim.SetViewport(800, 600)
			}
			sim.Step()
			Expect(contained(sim)).To(BeTrue(), "containment broke at tick %d", i)
		}
	})

	It("conserves the particle population", func() {
		n := len(sim.Particles())
		for i := 0; i < 120; i++ {
			sim.Step()
			if i%30 == 0 {
				sim.AdjustBoxSize(-50)
				sim.SetViewport(1024, 768)
			}
		}
		Expect(sim.Particles()).To(HaveLen(n))
	})

	It("never retains more pressure samples than the window", func() {
		for i := 0; i < 4*gas.PressureWindow; i++ {
			sim.Step()
		}
		Expect(len(sim.PressureSamples())).To(BeNumerically("<=", gas.PressureWindow))
	})

	It("pins the temperature multiplier at its bounds", func() {
		for i := 0; i < 10; i++ {
			sim.AdjustTemperature(5)
		}
		Expect(sim.Temperature()).To(Equal(gas.MaxTemperature))

		for i := 0; i < 10; i++ {
			sim.AdjustTemperature(-5)
		}
		Expect(sim.Temperature()).To(Equal(gas.MinTemperature))
	})

	It("replays deterministically from the same seed", func() {
		params := gas.DefaultParams()
		params.Seed = 42
		other := gas.New(params)

		for i := 0; i < 100; i++ {
			sim.Step()
			other.Step()
		}
		Expect(sim.Stats()).To(Equal(other.Stats()))
		Expect(sim.Particles()).To(Equal(other.Particles()))
	})
})
