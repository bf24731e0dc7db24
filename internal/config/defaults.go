package config

import (
	_ "embed"
)

//go:embed defaults/catcher.yaml
var defaultCatcherYAML []byte

// DefaultCatcherConfig returns the default Bottle Catcher configuration.
func DefaultCatcherConfig() CatcherConfig {
	return CatcherConfig{
		Player: CatcherPlayer{
			Width:    0.2,
			MoveStep: 0.05,
			BaseY:    -0.9,
		},
		Bottle: CatcherBottle{
			Width:  0.05,
			SpawnY: 1.0,
		},
		Fall: CatcherFall{
			BaseSpeed:      0.01,
			SpeedIncrement: 0.0005,
			MissY:          -1.0,
		},
		Gameplay: CatcherGameplay{
			WinScore: 100,
		},
		Spawn: CatcherSpawn{
			BaseIntervalMS: 2000,
			Scaling:        SpawnScalingLiteral,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "catcher":
		return defaultCatcherYAML
	default:
		return nil
	}
}
