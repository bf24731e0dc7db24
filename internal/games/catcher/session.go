package catcher

import (
	"github.com/vovakirdan/bottle-catcher/internal/config"
	"github.com/vovakirdan/bottle-catcher/internal/core"
)

// Shape ratios taken from how the bowl and bottle are drawn.
const (
	bowlHeightRatio    = 0.5 // Bowl height relative to its width
	bottleCenterFactor = 0.8 // Body center above the bottle base, in bottle widths
)

// Session holds the complete state of one play session: score, fall speed,
// phase, the catcher and the bottles. All mutation goes through its methods.
// A Session is not safe for concurrent use.
type Session struct {
	cfg       config.CatcherConfig
	score     int
	fallSpeed float64
	phase     Phase
	playerX   float64
	bottles   *Bottles
}

// NewSession creates a session in the Playing phase.
func NewSession(cfg config.CatcherConfig) *Session {
	s := &Session{
		cfg:     cfg,
		bottles: NewBottles(cfg.Bottle.Width, cfg.Bottle.SpawnY),
	}
	s.reinit()
	return s
}

// reinit restores the initial session state.
func (s *Session) reinit() {
	s.score = 0
	s.fallSpeed = s.cfg.Fall.BaseSpeed
	s.phase = PhasePlaying
	s.playerX = 0
	s.bottles.Clear()
}

// Restart returns a finished session to Playing with a fresh score, fall
// speed, centered catcher and no bottles. It is ignored while playing.
func (s *Session) Restart() bool {
	if !s.phase.AcceptsRestart() {
		return false
	}
	s.reinit()
	return true
}

// MovePlayer shifts the catcher by dir move steps (negative is left).
// Ignored unless playing.
func (s *Session) MovePlayer(dir int) bool {
	if !s.phase.AcceptsMovement() {
		return false
	}
	s.playerX = s.clampPlayer(s.playerX + float64(dir)*s.cfg.Player.MoveStep)
	return true
}

// SetPlayerX places the catcher at an absolute position. Ignored unless playing.
func (s *Session) SetPlayerX(x float64) bool {
	if !s.phase.AcceptsMovement() {
		return false
	}
	s.playerX = s.clampPlayer(x)
	return true
}

// clampPlayer keeps the full catcher width on screen.
func (s *Session) clampPlayer(x float64) float64 {
	half := s.cfg.Player.Width / 2
	return core.ClampF(x, -1.0+half, 1.0-half)
}

// TrySpawn adds a new bottle at the top. Ignored unless playing.
func (s *Session) TrySpawn(rng Source) (Bottle, bool) {
	if s.phase != PhasePlaying {
		return Bottle{}, false
	}
	return s.bottles.Spawn(rng), true
}

// Tick advances the session by one frame and returns the number of bottles
// caught. Bottles are processed in registry order: a catch scores, speeds up
// the fall and may win the game; then the bottle falls and may lose the game.
// Either terminal transition stops processing for the rest of the frame and
// skips the prune.
func (s *Session) Tick() int {
	if s.phase != PhasePlaying {
		return 0
	}

	catcher := s.CatcherCircle()
	caught := 0

	for i := range s.bottles.items {
		b := &s.bottles.items[i]
		if !b.Active {
			continue
		}

		if catcher.Collides(s.bottleCircle(*b)) {
			s.score++
			s.fallSpeed += s.cfg.Fall.SpeedIncrement
			b.Active = false
			caught++

			if s.score >= s.cfg.Gameplay.WinScore {
				s.phase = PhaseWon
				return caught
			}
		}

		// A bottle caught this frame still falls and can still cross the miss line.
		b.Fall(s.fallSpeed)

		if b.Y < s.cfg.Fall.MissY {
			s.phase = PhaseLost
			return caught
		}
	}

	s.bottles.Prune()
	return caught
}

// CatcherCircle returns the catcher's bounding circle.
func (s *Session) CatcherCircle() core.Circle {
	bowlHeight := s.cfg.Player.Width * bowlHeightRatio
	return core.Circle{
		X: s.playerX,
		Y: s.cfg.Player.BaseY + bowlHeight/2,
		R: s.cfg.Player.Width / 2,
	}
}

// bottleCircle returns the bounding circle around a bottle's body.
func (s *Session) bottleCircle(b Bottle) core.Circle {
	w := s.cfg.Bottle.Width
	return core.Circle{
		X: b.X,
		Y: b.Y + w*bottleCenterFactor,
		R: w / 2,
	}
}

// Score returns the number of bottles caught this session.
func (s *Session) Score() int {
	return s.score
}

// FallSpeed returns the current per-tick fall speed.
func (s *Session) FallSpeed() float64 {
	return s.fallSpeed
}

// Phase returns the current state machine phase.
func (s *Session) Phase() Phase {
	return s.phase
}

// PlayerX returns the catcher's horizontal center.
func (s *Session) PlayerX() float64 {
	return s.playerX
}

// Bottles returns a read-only copy of the live bottles.
func (s *Session) Bottles() []Bottle {
	return s.bottles.All()
}

// Config returns the tuning the session runs with.
func (s *Session) Config() config.CatcherConfig {
	return s.cfg
}
