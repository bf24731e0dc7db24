package catcher

import "math"

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick          uint64
	Score         int
	FallSpeed     float64
	Phase         Phase
	Paused        bool
	PlayerX       float64
	Bottles       []Bottle
	NextSpawnInMS int64
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:          g.tickCount,
		Score:         g.session.Score(),
		FallSpeed:     g.session.FallSpeed(),
		Phase:         g.session.Phase(),
		Paused:        g.paused,
		PlayerX:       g.session.PlayerX(),
		Bottles:       g.session.Bottles(),
		NextSpawnInMS: g.spawner.Remaining().Milliseconds(),
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Score) //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.FallSpeed)
	h = h*31 + uint64(snap.Phase) //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.PlayerX)
	h = h*31 + uint64(snap.NextSpawnInMS) //#nosec G115 -- hash computation

	for _, b := range snap.Bottles {
		h = h*31 + math.Float64bits(b.X)
		h = h*31 + math.Float64bits(b.Y)
		if b.Active {
			h = h*31 + 1
		}
	}

	return h
}
