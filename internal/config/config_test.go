package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg := DefaultGolfConfig()
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded yaml: %v", err)
	}
	if cfg != DefaultGolfConfig() {
		t.Errorf("embedded defaults = %+v, expected %+v", cfg, DefaultGolfConfig())
	}
}

func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultGolfConfig().Validate(); err != nil {
		t.Errorf("Validate() = %v, expected nil", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*GolfConfig)
	}{
		{"zero radius", func(c *GolfConfig) { c.Ball.Radius = 0 }},
		{"NaN radius", func(c *GolfConfig) { c.Ball.Radius = math.NaN() }},
		{"friction above one", func(c *GolfConfig) { c.Ball.Friction = 1.01 }},
		{"zero friction", func(c *GolfConfig) { c.Ball.Friction = 0 }},
		{"frictionless", func(c *GolfConfig) { c.Ball.Friction = 1 }},
		{"negative restitution", func(c *GolfConfig) { c.Collision.Restitution = -0.1 }},
		{"inverted segment range", func(c *GolfConfig) { c.Generator.MinSegmentLength = 500 }},
		{"inverted width range", func(c *GolfConfig) { c.Generator.MaxPathWidth = 10 }},
		{"unknown overlap", func(c *GolfConfig) { c.Generator.Overlap = "sweep" }},
		{"tiny range", func(c *GolfConfig) { c.Range.Width = 50 }},
		{"unknown progression", func(c *GolfConfig) { c.Difficulty.Progression.Type = "score" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultGolfConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, expected ErrInvalidConfig", err)
			}
		})
	}
}

func TestLoadGolfCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "golf.yaml")
	data := []byte("ball:\n  radius: 12\ngenerator:\n  overlap: center\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadGolf(path)
	if err != nil {
		t.Fatalf("LoadGolf() error = %v", err)
	}
	if cfg.Ball.Radius != 12 {
		t.Errorf("Ball.Radius = %v, expected 12", cfg.Ball.Radius)
	}
	if cfg.Generator.Overlap != "center" {
		t.Errorf("Generator.Overlap = %q, expected center", cfg.Generator.Overlap)
	}
	// Untouched keys keep their defaults.
	if cfg.Ball.Friction != 0.99 {
		t.Errorf("Ball.Friction = %v, expected 0.99", cfg.Ball.Friction)
	}
}

func TestLoadGolfCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadGolf(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("LoadGolf(missing) expected error")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("ball: [1, 2"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadGolf(bad); err == nil {
		t.Error("LoadGolf(malformed) expected error")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("ball:\n  friction: 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadGolf(invalid); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("LoadGolf(invalid) = %v, expected ErrInvalidConfig", err)
	}
}

func TestApplyGolfPreset(t *testing.T) {
	tests := []struct {
		preset  DifficultyPreset
		enabled bool
		level   float64
	}{
		{DifficultyEasy, true, 0.0},
		{DifficultyNormal, true, 0.3},
		{DifficultyHard, true, 0.7},
		{DifficultyFixed, false, 0.0},
	}

	for _, tt := range tests {
		cfg := DefaultGolfConfig()
		ApplyGolfPreset(&cfg, tt.preset)
		if cfg.Difficulty.Enabled != tt.enabled {
			t.Errorf("%s: Enabled = %v, expected %v", tt.preset, cfg.Difficulty.Enabled, tt.enabled)
		}
		if cfg.Difficulty.InitialLevel != tt.level {
			t.Errorf("%s: InitialLevel = %v, expected %v", tt.preset, cfg.Difficulty.InitialLevel, tt.level)
		}
		if err := cfg.Validate(); err != nil {
			t.Errorf("%s: Validate() = %v", tt.preset, err)
		}
	}
}

func TestParsePreset(t *testing.T) {
	if got := ParsePreset("hard"); got != DifficultyHard {
		t.Errorf("ParsePreset(hard) = %q, expected hard", got)
	}
	if got := ParsePreset("insane"); got != "" {
		t.Errorf("ParsePreset(insane) = %q, expected empty", got)
	}
}

func TestDifficultyLevel(t *testing.T) {
	tests := []struct {
		name     string
		cfg      DifficultyConfig
		tiles    int
		ticks    int
		expected float64
	}{
		{"disabled", DifficultyConfig{Enabled: false, InitialLevel: 0.3}, 1000, 0, 0.3},
		{"none", DifficultyConfig{Enabled: true, InitialLevel: 0.2, Progression: ProgressionConfig{Type: "none"}}, 1000, 0, 0.2},
		{"distance half", DifficultyConfig{Enabled: true, Progression: ProgressionConfig{Type: "distance", MaxAt: 100}}, 50, 0, 0.5},
		{"distance capped", DifficultyConfig{Enabled: true, Progression: ProgressionConfig{Type: "distance", MaxAt: 100}}, 500, 0, 1.0},
		{"time from initial", DifficultyConfig{Enabled: true, InitialLevel: 0.5, Progression: ProgressionConfig{Type: "time", MaxAt: 100}}, 0, 50, 0.75},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDifficultyManager(tt.cfg)
			if got := d.Level(tt.tiles, tt.ticks); math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("Level() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(DefaultGolfConfig())
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	var cfg GolfConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if cfg != DefaultGolfConfig() {
		t.Errorf("round trip = %+v, expected defaults", cfg)
	}
}
