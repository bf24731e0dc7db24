package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned when a configuration fails validation.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// LoadCatcher loads Bottle Catcher configuration.
// Search order: customPath -> ~/.catcher/configs/catcher.yaml -> ./configs/catcher.yaml -> embedded default
//
// Fields missing from a file keep their default values. Only an explicit
// customPath produces an error; discovered files that fail to parse or
// validate are skipped.
func LoadCatcher(customPath string) (CatcherConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return CatcherConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := ParseCatcher(data)
		if err != nil {
			return CatcherConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("catcher.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := ParseCatcher(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "catcher.yaml")); err == nil {
		if cfg, err := ParseCatcher(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := ParseCatcher(defaultCatcherYAML)
	if err != nil {
		return DefaultCatcherConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// ParseCatcher decodes YAML on top of the defaults and validates the result.
func ParseCatcher(data []byte) (CatcherConfig, error) {
	cfg := DefaultCatcherConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return CatcherConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return CatcherConfig{}, err
	}
	return cfg, nil
}

// Marshal encodes the configuration as YAML.
func (c CatcherConfig) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// Validate checks that all values describe a playable game.
func (c CatcherConfig) Validate() error {
	switch {
	case c.Player.Width <= 0 || c.Player.Width > 2:
		return fmt.Errorf("%w: player.width must be in (0, 2], got %v", ErrInvalidConfig, c.Player.Width)
	case c.Player.MoveStep <= 0:
		return fmt.Errorf("%w: player.move_step must be positive, got %v", ErrInvalidConfig, c.Player.MoveStep)
	case c.Bottle.Width <= 0 || c.Bottle.Width > 2:
		return fmt.Errorf("%w: bottle.width must be in (0, 2], got %v", ErrInvalidConfig, c.Bottle.Width)
	case c.Fall.BaseSpeed <= 0:
		return fmt.Errorf("%w: fall.base_speed must be positive, got %v", ErrInvalidConfig, c.Fall.BaseSpeed)
	case c.Fall.SpeedIncrement < 0:
		return fmt.Errorf("%w: fall.speed_increment must not be negative, got %v", ErrInvalidConfig, c.Fall.SpeedIncrement)
	case c.Fall.MissY >= c.Bottle.SpawnY:
		return fmt.Errorf("%w: fall.miss_y (%v) must be below bottle.spawn_y (%v)", ErrInvalidConfig, c.Fall.MissY, c.Bottle.SpawnY)
	case c.Gameplay.WinScore < 1:
		return fmt.Errorf("%w: gameplay.win_score must be at least 1, got %d", ErrInvalidConfig, c.Gameplay.WinScore)
	case c.Spawn.BaseIntervalMS <= 0:
		return fmt.Errorf("%w: spawn.base_interval_ms must be positive, got %d", ErrInvalidConfig, c.Spawn.BaseIntervalMS)
	case !c.Spawn.Scaling.Valid():
		return fmt.Errorf("%w: unknown spawn.scaling %q", ErrInvalidConfig, c.Spawn.Scaling)
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".catcher", "configs", filename)
}
