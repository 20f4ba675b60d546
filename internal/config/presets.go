package config

import "sort"

// Presets are named starting points for the simulation.
var Presets = map[string]*Config{
	"default": DefaultConfig(),
	"dense": {
		Particles: 120, Radius: 4, Mass: 1.0,
		MinSpeed: 1, MaxSpeed: 4, Scale: 0.9, Temperature: 1.0,
	},
	"sparse": {
		Particles: 15, Radius: 6, Mass: 1.0,
		MinSpeed: 2, MaxSpeed: 6, Scale: 0.8, Temperature: 1.0,
	},
	"hot": {
		Particles: 50, Radius: 5, Mass: 1.0,
		MinSpeed: 1, MaxSpeed: 5, Scale: 0.8, Temperature: 2.0,
	},
	"cold": {
		Particles: 50, Radius: 5, Mass: 1.0,
		MinSpeed: 1, MaxSpeed: 5, Scale: 0.8, Temperature: 0.1,
	},
	"heavy": {
		Particles: 40, Radius: 8, Mass: 4.0,
		MinSpeed: 1, MaxSpeed: 3, Scale: 0.7, Temperature: 1.0,
	},
}

func init() {
	// Presets declared without a viewport get the default one.
	for _, cfg := range Presets {
		if cfg.Viewport.Width == 0 {
			cfg.Viewport.Width = 800
			cfg.Viewport.Height = 600
		}
	}
}

// GetPreset returns the named preset, or nil if it does not exist.
func GetPreset(name string) *Config {
	return Presets[name]
}

// ListPresets returns the preset names in sorted order.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
