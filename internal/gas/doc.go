// Package gas implements a 2D hard-disc ideal-gas simulation confined to a
// resizable rectangular container.
//
// A [Simulator] owns a fixed population of particles and advances them one
// tick at a time:
//
//   - explicit Euler integration with unit time step and wall reflection
//   - a wall re-clamp pass that counts boundary impacts for the pressure
//     statistic
//   - an O(n²) pairwise pass that swaps velocities of overlapping discs and
//     separates them geometrically
//
// The velocity swap models an idealized equal-mass head-on exchange. It is a
// deliberate simplification, not an impulse along the contact normal.
//
// Between ticks the driving layer issues discrete commands:
//
//	sim := gas.New(gas.DefaultParams())
//	sim.Step()
//	sim.AdjustTemperature(0.1)
//	sim.AdjustBoxSize(20)
//	sim.SetViewport(1024, 768)
//
// All state is owned by the Simulator; presentation layers read particle
// positions and the aggregate statistics and never mutate them. The package
// is single-threaded: one tick is an uninterruptible bounded computation.
package gas
