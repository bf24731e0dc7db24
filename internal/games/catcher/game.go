// Package catcher implements Bottle Catcher: bottles fall from the top of the
// screen and the player moves a bowl left and right to catch them. Catching
// 100 wins; letting one fall past the bottom loses.
package catcher

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/bottle-catcher/internal/config"
	"github.com/vovakirdan/bottle-catcher/internal/core"
	"github.com/vovakirdan/bottle-catcher/internal/registry"
)

// TickInterval is the fixed simulation cadence. Fall speeds are tuned per tick
// at this rate, so the platform must call Step at this interval.
const TickInterval = core.DefaultTickInterval

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// Game adapts a Session to the registry.Game contract: it turns input frames
// into session commands and drives the spawn scheduler off simulation time.
type Game struct {
	session *Session
	spawner *SpawnScheduler
	rng     *rand.Rand

	cfg      config.CatcherConfig
	override *config.CatcherConfig // Set by NewWithConfig; skips file loading
	runtime  core.RuntimeConfig

	paused    bool
	tickCount uint64
}

// New creates a new Bottle Catcher game that loads its config on Reset.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a game with fixed tuning.
func NewWithConfig(cfg config.CatcherConfig) *Game {
	return &Game{override: &cfg}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "catcher"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Bottle Catcher"
}

// TickInterval returns the fixed cadence Step expects.
func (g *Game) TickInterval() time.Duration {
	return TickInterval
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	if g.override != nil {
		g.cfg = *g.override
	} else {
		cfg, err := config.LoadCatcher(configPath)
		if err != nil {
			cfg = config.DefaultCatcherConfig()
		}
		g.cfg = cfg
	}

	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.session = NewSession(g.cfg)
	g.spawner = NewSpawnScheduler(g.cfg.Spawn)
	g.paused = false
	g.tickCount = 0
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.session.Phase().GameOver() {
		if in.Has(core.ActionRestart) && g.session.Restart() {
			g.spawner.Reset()
			g.paused = false
		}
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++

	// Absolute pointer position first, then relative key movement on top
	if x, ok := in.Pointer(); ok {
		g.session.SetPlayerX(x)
	}
	if in.Has(core.ActionLeft) {
		g.session.MovePlayer(-1)
	}
	if in.Has(core.ActionRight) {
		g.session.MovePlayer(1)
	}

	result := core.StepResult{}

	if g.spawner.Advance(TickInterval, g.session.Score()) {
		if _, ok := g.session.TrySpawn(g.rng); ok {
			result.Spawned = 1
		}
	}

	result.Caught = g.session.Tick()
	result.State = g.State()
	return result
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	phase := g.session.Phase()
	return core.GameState{
		Score:    g.session.Score(),
		GameOver: phase.GameOver(),
		Won:      phase == PhaseWon,
		Paused:   g.paused,
	}
}

// Session exposes the underlying session for read-only queries.
func (g *Game) Session() *Session {
	return g.session
}

// Register the game with the registry
func init() {
	registry.Register("catcher", func() registry.Game {
		return New()
	})
}
