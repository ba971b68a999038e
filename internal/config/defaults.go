package config

import (
	_ "embed"
)

//go:embed defaults/golf.yaml
var defaultGolfYAML []byte

// DefaultGolfConfig returns the default golf configuration.
// Mirrors defaults/golf.yaml and is used when the embedded file cannot be parsed.
func DefaultGolfConfig() GolfConfig {
	return GolfConfig{
		Ball: BallConfig{
			Radius:       20,
			Friction:     0.99,
			LaunchFactor: 2.5,
			StopSpeed:    1.0,
			ReferenceDT:  0,
			StartX:       300,
			StartY:       300,
		},
		Collision: CollisionConfig{
			Restitution:     0.8,
			ImpactThreshold: 50,
		},
		Generator: GeneratorConfig{
			GenerationDistance:  400,
			MinObstacleDistance: 100,
			MaxObstacleCount:    100,
			MaxTurnAngle:        45,
			MinSegmentLength:    250,
			MaxSegmentLength:    450,
			MinPathWidth:        180,
			MaxPathWidth:        250,
			WallThickness:       20,
			SegmentsPerBatch:    3,
			SeedOffset:          150,
			Padding:             20,
			Overlap:             "padded",
		},
		Range: RangeConfig{
			Width:         600,
			Height:        600,
			WallThickness: 20,
			Bumpers:       3,
		},
		Effects: EffectsConfig{
			Enabled:      true,
			Trail:        true,
			MaxParticles: 400,
		},
		Camera: CameraConfig{
			UnitsPerCellX: 10,
			UnitsPerCellY: 20,
			Smoothing:     0.15,
			TileSize:      50,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "distance",
				MaxAt: 400, // tiles
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultGolfYAML
}
