// Package config provides YAML-based game configuration loading for the
// catcher game.
package config

// CatcherConfig contains all configuration for the Bottle Catcher game.
type CatcherConfig struct {
	Player   CatcherPlayer   `yaml:"player"`
	Bottle   CatcherBottle   `yaml:"bottle"`
	Fall     CatcherFall     `yaml:"fall"`
	Gameplay CatcherGameplay `yaml:"gameplay"`
	Spawn    CatcherSpawn    `yaml:"spawn"`
}

// CatcherPlayer defines the catcher (bowl) parameters.
type CatcherPlayer struct {
	Width    float64 `yaml:"width"`     // Full bowl width in world units
	MoveStep float64 `yaml:"move_step"` // Distance moved per left/right key press
	BaseY    float64 `yaml:"base_y"`    // Vertical position of the bowl's flat edge
}

// CatcherBottle defines falling bottle parameters.
type CatcherBottle struct {
	Width  float64 `yaml:"width"`
	SpawnY float64 `yaml:"spawn_y"` // Top edge where bottles enter
}

// CatcherFall defines fall speed progression.
type CatcherFall struct {
	BaseSpeed      float64 `yaml:"base_speed"`      // Units per tick at session start
	SpeedIncrement float64 `yaml:"speed_increment"` // Added per catch
	MissY          float64 `yaml:"miss_y"`          // Bottles below this are lost
}

// CatcherGameplay defines win conditions.
type CatcherGameplay struct {
	WinScore int `yaml:"win_score"`
}

// CatcherSpawn defines spawn scheduling.
type CatcherSpawn struct {
	BaseIntervalMS int          `yaml:"base_interval_ms"`
	Scaling        SpawnScaling `yaml:"scaling"`
}

// SpawnScaling selects how the spawn interval reacts to score.
type SpawnScaling string

const (
	// SpawnScalingLiteral evaluates 2/100 with integer division, which is
	// always zero, so the interval never changes.
	SpawnScalingLiteral SpawnScaling = "literal"

	// SpawnScalingScaled shortens the interval by one step per 50 points.
	SpawnScalingScaled SpawnScaling = "scaled"
)

// Valid returns true for a known scaling mode.
func (s SpawnScaling) Valid() bool {
	return s == SpawnScalingLiteral || s == SpawnScalingScaled
}
