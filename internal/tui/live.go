package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/stanislausjustin/Computational-Physics/internal/gas"
)

const (
	canvasW = 80
	canvasH = 24
)

type TickMsg time.Time

// Model drives a gas simulator at 60 ticks per second and renders the
// container on a braille canvas next to the live statistics.
type Model struct {
	sim      *gas.Simulator
	canvas   *Canvas
	running  bool
	showHelp bool
}

func NewModel(sim *gas.Simulator) Model {
	return Model{
		sim:     sim,
		canvas:  NewCanvas(canvasW, canvasH),
		running: true,
	}
}

func tick() tea.Cmd {
	return tea.Tick(time.Second/60, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return tick()
}

// Update handles input events and steps the simulation once per frame.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.sim.Reset()
		case "up", "k":
			m.sim.AdjustTemperature(0.1)
		case "down", "j":
			m.sim.AdjustTemperature(-0.1)
		case "+", "=":
			m.sim.AdjustBoxSize(20)
		case "-", "_":
			m.sim.AdjustBoxSize(-20)
		case "?":
			m.showHelp = !m.showHelp
		}
	case TickMsg:
		if m.running {
			m.sim.Step()
		}
		return m, tick()
	}
	return m, nil
}

// draw projects the world viewport onto the canvas sub-pixel grid.
func (m Model) draw() {
	m.canvas.Clear()
	params := m.sim.Params()
	sx := float64(canvasW*2) / params.ViewportW
	sy := float64(canvasH*4) / params.ViewportH

	box := m.sim.Box()
	m.canvas.DrawRect(int(box.X*sx), int(box.Y*sy), int(box.Width*sx), int(box.Height*sy))

	for _, p := range m.sim.Particles() {
		r := int(p.Radius * sx)
		if r < 1 {
			r = 1
		}
		m.canvas.FillCircle(int(p.X*sx), int(p.Y*sy), r)
	}
}

// View renders the canvas and the stats panel.
func (m Model) View() string {
	m.draw()
	canvasView := canvasStyle.Render(m.canvas.String())

	stats := m.sim.Stats()
	var s strings.Builder
	s.WriteString(headerStyle.Render("KINETIC GAS") + "\n")
	if m.running {
		s.WriteString("RUNNING\n\n")
	} else {
		s.WriteString(pausedStyle.Render("PAUSED") + "\n\n")
	}

	s.WriteString(labelStyle.Render("Avg speed") + valueStyle.Render(fmt.Sprintf("%.2f %s", stats.AverageSpeed, gas.SpeedUnit)) + "\n")
	s.WriteString(labelStyle.Render("Temperature") + valueStyle.Render(fmt.Sprintf("%.2f %s", stats.Temperature, gas.TemperatureUnit)) + "\n")
	s.WriteString(labelStyle.Render("Pressure") + valueStyle.Render(fmt.Sprintf("%.2f %s", stats.Pressure, gas.PressureUnit)) + "\n")
	s.WriteString(labelStyle.Render("Avg KE") + valueStyle.Render(fmt.Sprintf("%.0f %s", stats.AverageKineticEnergy, gas.EnergyUnit)) + "\n")
	s.WriteString(labelStyle.Render("Total KE") + valueStyle.Render(fmt.Sprintf("%.0f %s", stats.TotalKineticEnergy, gas.EnergyUnit)) + "\n")
	s.WriteString(labelStyle.Render("Box scale") + valueStyle.Render(fmt.Sprintf("%.2f", m.sim.Scale())) + "\n")
	s.WriteString(labelStyle.Render("Tick") + valueStyle.Render(fmt.Sprintf("%d", m.sim.Tick())) + "\n")

	if samples := m.sim.PressureSamples(); len(samples) > 1 {
		data := make([]float64, len(samples))
		for i, n := range samples {
			data[i] = float64(n)
		}
		chart := asciigraph.Plot(data,
			asciigraph.Height(4),
			asciigraph.Width(28),
			asciigraph.Caption("wall hits / tick"),
		)
		s.WriteString(graphStyle.Render(chart) + "\n")
	}

	s.WriteString(helpStyle.Render("↑↓:Temp +/-:Size SP:Pause R:Reset Q:Quit"))
	mainView := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsStyle.Render(s.String()))

	if m.showHelp {
		return `
  Space    pause/resume
  R        reset to the seeded initial state
  Up/K     temperature +0.1
  Down/J   temperature -0.1
  + / -    container size ±0.02 scale
  ?        toggle this help
  Q        quit
` + "\n" + mainView
	}
	return mainView
}
