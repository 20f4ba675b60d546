package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/stanislausjustin/Computational-Physics/internal/config"
	"github.com/stanislausjustin/Computational-Physics/internal/gas"
	"github.com/stanislausjustin/Computational-Physics/internal/gui"
	"github.com/stanislausjustin/Computational-Physics/internal/storage"
	"github.com/stanislausjustin/Computational-Physics/internal/tui"
)

var (
	dataDir     string
	particles   int
	radius      float64
	mass        float64
	minSpeed    float64
	maxSpeed    float64
	scale       float64
	temperature float64
	seed        int64
	steps       int
	configFile  string
	preset      string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "gassim",
		Short: "2D ideal gas simulation lab",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := buildConfig(cmd)
			if err != nil {
				return err
			}
			model := tui.NewModel(gas.New(cfg.ToParams()))
			_, err = tea.NewProgram(model, tea.WithAltScreen()).Run()
			return err
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".gassim", "data directory")
	rootCmd.PersistentFlags().IntVar(&particles, "particles", 50, "number of particles")
	rootCmd.PersistentFlags().Float64Var(&radius, "radius", 5, "particle radius")
	rootCmd.PersistentFlags().Float64Var(&mass, "mass", 1.0, "particle mass")
	rootCmd.PersistentFlags().Float64Var(&minSpeed, "min-speed", 1, "minimum initial speed")
	rootCmd.PersistentFlags().Float64Var(&maxSpeed, "max-speed", 5, "maximum initial speed")
	rootCmd.PersistentFlags().Float64Var(&scale, "scale", 0.8, "container scale factor")
	rootCmd.PersistentFlags().Float64Var(&temperature, "temperature", 1.0, "initial temperature")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run a headless simulation and store the results",
		RunE:  runSimulation,
	}
	runCmd.Flags().IntVar(&steps, "steps", 600, "number of ticks to simulate")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot run statistics",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "print run samples as csv",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "print run metadata and samples as json",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				fmt.Println(name)
			}
		},
	}

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "open the windowed simulation",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := buildConfig(cmd)
			if err != nil {
				return err
			}
			return gui.Run(gas.New(cfg.ToParams()))
		},
	}

	rootCmd.AddCommand(runCmd, listCmd, plotCmd, exportCSVCmd, exportJSONCmd, presetsCmd, guiCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// buildConfig resolves the effective configuration. Precedence is
// explicit flags, then config file, then preset, then defaults.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset %q (see 'gassim presets')", preset)
		}
		c := *p
		cfg = &c
	}
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("particles") {
		cfg.Particles = particles
	}
	if flags.Changed("radius") {
		cfg.Radius = radius
	}
	if flags.Changed("mass") {
		cfg.Mass = mass
	}
	if flags.Changed("min-speed") {
		cfg.MinSpeed = minSpeed
	}
	if flags.Changed("max-speed") {
		cfg.MaxSpeed = maxSpeed
	}
	if flags.Changed("scale") {
		cfg.Scale = scale
	}
	if flags.Changed("temperature") {
		cfg.Temperature = temperature
	}
	cfg.Seed = seed

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	if steps < 1 {
		return fmt.Errorf("steps must be positive, got %d", steps)
	}

	sim := gas.New(cfg.ToParams())
	rec := &storage.Recorder{}
	sim.AddObserver(rec)

	for i := 0; i < steps; i++ {
		sim.Step()
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save(sim.Params(), steps, rec.Samples)
	if err != nil {
		return err
	}

	stats := sim.Stats()
	fmt.Printf("run: %s\n", runID)
	fmt.Printf("steps: %d, particles: %d\n", steps, cfg.Particles)
	fmt.Printf("avg speed: %.3f %s\n", stats.AverageSpeed, gas.SpeedUnit)
	fmt.Printf("pressure: %.3f %s\n", stats.Pressure, gas.PressureUnit)
	fmt.Printf("total ke: %.1f %s\n", stats.TotalKineticEnergy, gas.EnergyUnit)
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tSTEPS\tPARTICLES\tAVG SPEED\tPRESSURE")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%.3f\t%.3f\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Steps,
			run.Particles,
			run.Final.AverageSpeed,
			run.Final.Pressure,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	samples, err := st.LoadSamples(runID)
	if err != nil {
		return err
	}
	if len(samples) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("samples: %d\n\n", len(samples))

	series := []struct {
		caption string
		pick    func(gas.Stats) float64
	}{
		{"average speed (" + gas.SpeedUnit + ")", func(st gas.Stats) float64 { return st.AverageSpeed }},
		{"pressure (" + gas.PressureUnit + ")", func(st gas.Stats) float64 { return st.Pressure }},
		{"total kinetic energy (" + gas.EnergyUnit + ")", func(st gas.Stats) float64 { return st.TotalKineticEnergy }},
	}

	for _, ser := range series {
		data := make([]float64, len(samples))
		for i, s := range samples {
			data[i] = ser.pick(s.Stats)
		}
		graph := asciigraph.Plot(data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(ser.caption),
		)
		fmt.Println(graph)
		fmt.Println()
	}
	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	samples, err := st.LoadSamples(args[0])
	if err != nil {
		return err
	}
	return storage.WriteCSV(os.Stdout, samples)
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	samples, err := st.LoadSamples(args[0])
	if err != nil {
		return err
	}
	return storage.ExportJSONStdout(meta, samples)
}
