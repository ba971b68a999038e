// Package config provides YAML-based configuration loading and
// difficulty management for the golf playground.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned by Validate for out-of-range values.
var ErrInvalidConfig = errors.New("config: invalid value")

// GolfConfig contains all configuration for the golf playground.
type GolfConfig struct {
	Ball       BallConfig       `yaml:"ball"`
	Collision  CollisionConfig  `yaml:"collision"`
	Generator  GeneratorConfig  `yaml:"generator"`
	Range      RangeConfig      `yaml:"range"`
	Effects    EffectsConfig    `yaml:"effects"`
	Camera     CameraConfig     `yaml:"camera"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BallConfig defines the ball body and its motion.
type BallConfig struct {
	Radius       float64 `yaml:"radius"`
	Friction     float64 `yaml:"friction"`      // Velocity kept per update, in (0, 1)
	LaunchFactor float64 `yaml:"launch_factor"` // Drag distance to launch speed
	StopSpeed    float64 `yaml:"stop_speed"`    // Per-axis snap-to-rest threshold
	ReferenceDT  float64 `yaml:"reference_dt"`  // >0 makes friction frame-rate independent
	StartX       float64 `yaml:"start_x"`
	StartY       float64 `yaml:"start_y"`
}

// CollisionConfig defines bounce behavior.
type CollisionConfig struct {
	Restitution     float64 `yaml:"restitution"`
	ImpactThreshold float64 `yaml:"impact_threshold"` // Minimum speed reported to observers
}

// GeneratorConfig defines the endless corridor generator.
type GeneratorConfig struct {
	GenerationDistance  float64 `yaml:"generation_distance"`
	MinObstacleDistance float64 `yaml:"min_obstacle_distance"`
	MaxObstacleCount    int     `yaml:"max_obstacle_count"`
	MaxTurnAngle        float64 `yaml:"max_turn_angle"` // Degrees
	MinSegmentLength    float64 `yaml:"min_segment_length"`
	MaxSegmentLength    float64 `yaml:"max_segment_length"`
	MinPathWidth        float64 `yaml:"min_path_width"`
	MaxPathWidth        float64 `yaml:"max_path_width"`
	WallThickness       float64 `yaml:"wall_thickness"`
	SegmentsPerBatch    int     `yaml:"segments_per_batch"`
	SeedOffset          float64 `yaml:"seed_offset"`
	Padding             float64 `yaml:"padding"`
	Overlap             string  `yaml:"overlap"` // "padded" or "center"
}

// RangeConfig defines the walled practice range.
type RangeConfig struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	WallThickness float64 `yaml:"wall_thickness"`
	Bumpers       int     `yaml:"bumpers"` // Rotated blocks scattered inside
}

// EffectsConfig defines cosmetic particles.
type EffectsConfig struct {
	Enabled      bool `yaml:"enabled"`
	Trail        bool `yaml:"trail"`
	MaxParticles int  `yaml:"max_particles"`
}

// CameraConfig defines how world units map to terminal cells.
type CameraConfig struct {
	UnitsPerCellX float64 `yaml:"units_per_cell_x"`
	UnitsPerCellY float64 `yaml:"units_per_cell_y"`
	Smoothing     float64 `yaml:"smoothing"` // 1 snaps to the ball
	TileSize      float64 `yaml:"tile_size"` // Checkerboard tile, also the score unit
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
}

// ProgressionConfig defines how difficulty increases over a session.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "distance", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Tiles or ticks at which max difficulty is reached
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI value to a preset. Unknown values give "".
func ParsePreset(s string) DifficultyPreset {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// Validate checks the values the simulation depends on.
func (c GolfConfig) Validate() error {
	b := c.Ball
	switch {
	case !(b.Radius > 0):
		return fmt.Errorf("%w: ball.radius must be positive, got %v", ErrInvalidConfig, b.Radius)
	case !(b.Friction > 0) || b.Friction >= 1:
		return fmt.Errorf("%w: ball.friction must be in (0, 1), got %v", ErrInvalidConfig, b.Friction)
	case b.LaunchFactor < 0:
		return fmt.Errorf("%w: ball.launch_factor must not be negative", ErrInvalidConfig)
	case b.StopSpeed < 0 || b.ReferenceDT < 0:
		return fmt.Errorf("%w: ball.stop_speed and ball.reference_dt must not be negative", ErrInvalidConfig)
	}

	if r := c.Collision.Restitution; r < 0 || r > 1 {
		return fmt.Errorf("%w: collision.restitution must be in [0, 1], got %v", ErrInvalidConfig, r)
	}

	g := c.Generator
	switch {
	case g.MinSegmentLength <= 0 || g.MinSegmentLength > g.MaxSegmentLength:
		return fmt.Errorf("%w: generator segment length range [%v, %v]", ErrInvalidConfig, g.MinSegmentLength, g.MaxSegmentLength)
	case g.MinPathWidth <= 0 || g.MinPathWidth > g.MaxPathWidth:
		return fmt.Errorf("%w: generator path width range [%v, %v]", ErrInvalidConfig, g.MinPathWidth, g.MaxPathWidth)
	case g.WallThickness <= 0:
		return fmt.Errorf("%w: generator.wall_thickness must be positive", ErrInvalidConfig)
	case g.MaxObstacleCount < 0 || g.SegmentsPerBatch <= 0:
		return fmt.Errorf("%w: generator counts must be positive", ErrInvalidConfig)
	case g.Overlap != "" && g.Overlap != "padded" && g.Overlap != "center":
		return fmt.Errorf("%w: generator.overlap must be padded or center, got %q", ErrInvalidConfig, g.Overlap)
	}

	if c.Range.Width <= 4*b.Radius || c.Range.Height <= 4*b.Radius || c.Range.WallThickness <= 0 {
		return fmt.Errorf("%w: range must fit the ball", ErrInvalidConfig)
	}

	switch c.Difficulty.Progression.Type {
	case "", "distance", "time", "none":
	default:
		return fmt.Errorf("%w: difficulty.progression.type %q", ErrInvalidConfig, c.Difficulty.Progression.Type)
	}
	return nil
}
