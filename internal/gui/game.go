// Package gui renders the gas simulation in a resizable Ebitengine window.
package gui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/stanislausjustin/Computational-Physics/internal/gas"
)

var (
	colBackground = color.RGBA{245, 245, 245, 255}
	colBox        = color.RGBA{210, 215, 225, 255}
	colBoxBorder  = color.RGBA{100, 105, 120, 255}
	colParticle   = color.RGBA{40, 90, 200, 255}
)

// Game implements ebiten.Game around a gas simulator. Resizing the
// window flows through Layout into the simulator viewport, which keeps
// the container centered and clamps particles into the new bounds.
type Game struct {
	sim    *gas.Simulator
	paused bool
	lastW  int
	lastH  int
}

func NewGame(sim *gas.Simulator) *Game {
	params := sim.Params()
	return &Game{
		sim:   sim,
		lastW: int(params.ViewportW),
		lastH: int(params.ViewportH),
	}
}

// Update is called each tick by Ebitengine.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.sim.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		g.sim.AdjustTemperature(0.1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		g.sim.AdjustTemperature(-0.1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyKPAdd) {
		g.sim.AdjustBoxSize(20)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract) {
		g.sim.AdjustBoxSize(-20)
	}

	if g.paused {
		return nil
	}
	g.sim.Step()
	return nil
}

// Draw is called each frame by Ebitengine.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colBackground)

	box := g.sim.Box()
	vector.DrawFilledRect(screen,
		float32(box.X), float32(box.Y),
		float32(box.Width), float32(box.Height),
		colBox, true)
	vector.StrokeRect(screen,
		float32(box.X), float32(box.Y),
		float32(box.Width), float32(box.Height),
		1, colBoxBorder, true)

	for _, p := range g.sim.Particles() {
		vector.DrawFilledCircle(screen,
			float32(p.X), float32(p.Y), float32(p.Radius),
			colParticle, true)
	}

	stats := g.sim.Stats()
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Average Speed: %.2f %s", stats.AverageSpeed, gas.SpeedUnit), 8, 8)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Temperature: %.2f %s", stats.Temperature, gas.TemperatureUnit), 8, 24)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Pressure: %.2f %s", stats.Pressure, gas.PressureUnit), 8, 40)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Total KE: %.0f %s", stats.TotalKineticEnergy, gas.EnergyUnit), 8, 56)
	if g.paused {
		ebitenutil.DebugPrintAt(screen, "PAUSED", 8, 72)
	}
}

// Layout reports the logical screen size and forwards window resizes to
// the simulator.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.lastW || outsideHeight != g.lastH {
		g.lastW = outsideWidth
		g.lastH = outsideHeight
		g.sim.SetViewport(float64(outsideWidth), float64(outsideHeight))
	}
	return g.lastW, g.lastH
}

// Run opens the window and blocks until the game exits.
func Run(sim *gas.Simulator) error {
	params := sim.Params()
	ebiten.SetWindowSize(int(params.ViewportW), int(params.ViewportH))
	ebiten.SetWindowTitle("Ideal Gas")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(60)
	return ebiten.RunGame(NewGame(sim))
}
