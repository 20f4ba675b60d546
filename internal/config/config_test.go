package config

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Particles != 50 {
		t.Errorf("expected 50 particles, got %d", cfg.Particles)
	}
	if cfg.Radius != 5 {
		t.Errorf("expected radius 5, got %f", cfg.Radius)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"zero particles", func(c *Config) { c.Particles = 0 }, ErrNoParticles},
		{"negative radius", func(c *Config) { c.Radius = -1 }, ErrBadGeometry},
		{"zero mass", func(c *Config) { c.Mass = 0 }, ErrBadGeometry},
		{"inverted speeds", func(c *Config) { c.MinSpeed = 6 }, ErrSpeedRange},
		{"zero viewport", func(c *Config) { c.Viewport.Width = 0 }, ErrBadViewport},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gas.yaml")

	cfg := DefaultConfig()
	cfg.Particles = 99
	cfg.Temperature = 1.5
	cfg.Seed = 42

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if loaded.Particles != 99 || loaded.Temperature != 1.5 || loaded.Seed != 42 {
		t.Errorf("round trip lost values: %+v", loaded)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("dense")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Particles != 120 {
		t.Errorf("expected 120 particles, got %d", cfg.Particles)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("preset should validate: %v", err)
	}

	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for unknown preset")
	}
}

func TestToParams(t *testing.T) {
	cfg := DefaultConfig()
	params := cfg.ToParams()

	if params.Particles != cfg.Particles || params.ViewportW != cfg.Viewport.Width {
		t.Errorf("params do not match config: %+v", params)
	}
}
