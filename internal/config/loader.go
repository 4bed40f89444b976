package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// load resolves a game config.
// Search order: customPath -> ~/.arcade/configs/<id>.yaml -> ./configs/<id>.yaml -> embedded default -> hardcoded default
func load[T any](gameID, customPath string, embedded []byte, fallback func() T) (T, error) {
	filename := gameID + ".yaml"

	// Try custom path first; an explicit path must work
	if customPath != "" {
		cfg := fallback()
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		if cfg, ok := readOptional(userCfgPath, fallback); ok {
			return cfg, nil
		}
	}

	// Try local configs directory
	if cfg, ok := readOptional(filepath.Join("configs", filename), fallback); ok {
		return cfg, nil
	}

	// Use embedded default YAML
	cfg := fallback()
	if err := yaml.Unmarshal(embedded, &cfg); err != nil {
		return fallback(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// readOptional parses path over the hardcoded defaults, so a file only needs
// the keys it overrides. Missing or broken files are skipped.
func readOptional[T any](path string, fallback func() T) (T, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		var zero T
		return zero, false
	}
	cfg := fallback()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		var zero T
		return zero, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// LoadPong loads and validates Pong configuration.
func LoadPong(customPath string) (PongConfig, error) {
	cfg, err := load("pong", customPath, defaultPongYAML, DefaultPongConfig)
	if err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// LoadBreakton loads and validates Breakton configuration.
func LoadBreakton(customPath string) (BreaktonConfig, error) {
	cfg, err := load("breakton", customPath, defaultBreaktonYAML, DefaultBreaktonConfig)
	if err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// applyPreset turns progression on or off and sets the starting level.
func applyPreset(d *DifficultyConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		d.Enabled = false
	} else {
		d.Enabled = true
		d.InitialLevel = InitialLevelForPreset(preset)
	}
}

// ApplyPongPreset modifies the config based on a difficulty preset.
func ApplyPongPreset(cfg *PongConfig, preset DifficultyPreset) {
	applyPreset(&cfg.Difficulty, preset)

	// The CPU gets sharper on harder presets
	switch preset {
	case DifficultyEasy:
		cfg.CPU.MinSkill, cfg.CPU.MaxSkill = 0.4, 0.6
	case DifficultyHard:
		cfg.CPU.MinSkill, cfg.CPU.MaxSkill = 0.8, 0.95
	}
}

// ApplyBreaktonPreset modifies the config based on a difficulty preset.
func ApplyBreaktonPreset(cfg *BreaktonConfig, preset DifficultyPreset) {
	applyPreset(&cfg.Difficulty, preset)

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Paddle.Width = 100
		cfg.Physics.BallVelocityX, cfg.Physics.BallVelocityY = 250, 170
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Paddle.Width = 60
		cfg.Physics.BallVelocityX, cfg.Physics.BallVelocityY = 380, 250
	}
}
