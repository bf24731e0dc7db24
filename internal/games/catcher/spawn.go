package catcher

import (
	"time"

	"github.com/vovakirdan/bottle-catcher/internal/config"
)

// SpawnScheduler decides when the next bottle enters.
// It is a countdown advanced by simulation time, so spawning is deterministic
// for a given tick interval.
type SpawnScheduler struct {
	baseInterval time.Duration
	scaling      config.SpawnScaling
	remaining    time.Duration // Time until the next spawn; <= 0 means due
}

// NewSpawnScheduler creates a scheduler whose first spawn is due immediately.
func NewSpawnScheduler(cfg config.CatcherSpawn) *SpawnScheduler {
	return &SpawnScheduler{
		baseInterval: time.Duration(cfg.BaseIntervalMS) * time.Millisecond,
		scaling:      cfg.Scaling,
	}
}

// Interval returns the delay between spawns at the given score.
func (s *SpawnScheduler) Interval(score int) time.Duration {
	var steps int
	switch s.scaling {
	case config.SpawnScalingScaled:
		steps = 2 * score / 100
	default:
		// 2/100 truncates to zero, so the interval stays at its base value.
		steps = 2 / 100 * score
	}
	baseMS := int(s.baseInterval / time.Millisecond)
	return time.Duration(baseMS/(steps+1)) * time.Millisecond
}

// Advance moves the countdown forward by elapsed and reports whether a spawn
// fired. The next interval is taken at the score when the spawn fires.
func (s *SpawnScheduler) Advance(elapsed time.Duration, score int) bool {
	fired := false
	if s.remaining <= 0 {
		s.remaining += s.Interval(score)
		fired = true
	}
	s.remaining -= elapsed
	return fired
}

// Remaining returns the time until the next spawn.
func (s *SpawnScheduler) Remaining() time.Duration {
	return s.remaining
}

// Reset makes the next spawn due immediately.
func (s *SpawnScheduler) Reset() {
	s.remaining = 0
}
