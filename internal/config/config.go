package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/stanislausjustin/Computational-Physics/internal/gas"
)

// Validation errors.
var (
	ErrNoParticles = errors.New("config: particle count must be positive")
	ErrBadGeometry = errors.New("config: radius and mass must be positive")
	ErrSpeedRange  = errors.New("config: min_speed must not exceed max_speed")
	ErrBadViewport = errors.New("config: viewport dimensions must be positive")
)

// Config is the user-facing simulation configuration. Scale and temperature
// are clamped into the engine ranges rather than rejected, matching the
// engine's own command behavior.
type Config struct {
	Particles   int     `yaml:"particles"`
	Radius      float64 `yaml:"radius"`
	Mass        float64 `yaml:"mass"`
	MinSpeed    float64 `yaml:"min_speed"`
	MaxSpeed    float64 `yaml:"max_speed"`
	Scale       float64 `yaml:"scale"`
	Temperature float64 `yaml:"temperature"`
	Seed        int64   `yaml:"seed"`
	Viewport    struct {
		Width  float64 `yaml:"width"`
		Height float64 `yaml:"height"`
	} `yaml:"viewport"`
}

// DefaultConfig mirrors the classic setup: 50 discs of radius 5 and unit
// mass in an 800×600 viewport at scale 0.8.
func DefaultConfig() *Config {
	cfg := &Config{
		Particles:   50,
		Radius:      5,
		Mass:        1.0,
		MinSpeed:    1,
		MaxSpeed:    5,
		Scale:       0.8,
		Temperature: 1.0,
	}
	cfg.Viewport.Width = 800
	cfg.Viewport.Height = 600
	return cfg
}

// Load reads a yaml config file over the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the config as yaml.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate rejects non-physical values. Scale and temperature are not
// checked here; the engine clamps them on construction and on every change.
func (c *Config) Validate() error {
	if c.Particles < 1 {
		return fmt.Errorf("%w: got %d", ErrNoParticles, c.Particles)
	}
	if c.Radius <= 0 || c.Mass <= 0 {
		return fmt.Errorf("%w: radius=%g mass=%g", ErrBadGeometry, c.Radius, c.Mass)
	}
	if c.MinSpeed < 0 || c.MinSpeed > c.MaxSpeed {
		return fmt.Errorf("%w: [%g, %g]", ErrSpeedRange, c.MinSpeed, c.MaxSpeed)
	}
	if c.Viewport.Width <= 0 || c.Viewport.Height <= 0 {
		return fmt.Errorf("%w: %gx%g", ErrBadViewport, c.Viewport.Width, c.Viewport.Height)
	}
	return nil
}

// ToParams bridges the yaml config to the engine's construction parameters.
func (c *Config) ToParams() gas.Params {
	return gas.Params{
		Particles:   c.Particles,
		Radius:      c.Radius,
		Mass:        c.Mass,
		MinSpeed:    c.MinSpeed,
		MaxSpeed:    c.MaxSpeed,
		Scale:       c.Scale,
		Temperature: c.Temperature,
		ViewportW:   c.Viewport.Width,
		ViewportH:   c.Viewport.Height,
		Seed:        c.Seed,
	}
}
