package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in the search directories.
const FileName = "golf.yaml"

// LoadGolf loads the golf configuration. Values missing from a file keep
// their defaults.
// Search order: customPath -> ~/.golf/configs/golf.yaml -> ./configs/golf.yaml -> embedded default
func LoadGolf(customPath string) (GolfConfig, error) {
	// Try custom path first
	if customPath != "" {
		cfg := DefaultGolfConfig()
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then local configs directory
	for _, path := range []string{userConfigPath(FileName), filepath.Join("configs", FileName)} {
		if path == "" {
			continue
		}
		if cfg, ok := tryLoad(path); ok {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg := DefaultGolfConfig()
	if err := yaml.Unmarshal(defaultGolfYAML, &cfg); err != nil {
		return DefaultGolfConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// tryLoad reads an optional config file. Unreadable or invalid files are skipped.
func tryLoad(path string) (GolfConfig, bool) {
	cfg := DefaultGolfConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	if err := cfg.Validate(); err != nil {
		return cfg, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".golf", "configs", filename)
}

// ApplyGolfPreset modifies the config based on a difficulty preset.
func ApplyGolfPreset(cfg *GolfConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust the corridor based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Generator.MinPathWidth += 40
		cfg.Generator.MaxPathWidth += 40
		cfg.Generator.MaxTurnAngle = 30
	case DifficultyHard:
		cfg.Generator.MinPathWidth = max(cfg.Ball.Radius*4, cfg.Generator.MinPathWidth-40)
		cfg.Generator.MaxPathWidth = max(cfg.Generator.MinPathWidth, cfg.Generator.MaxPathWidth-40)
		cfg.Generator.MaxTurnAngle = 60
	}
}

// Marshal renders the config as YAML.
func Marshal(cfg GolfConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: marshal: %w", err)
	}
	return data, nil
}
