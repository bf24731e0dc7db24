package catcher

import (
	"strings"
	"testing"

	"github.com/vovakirdan/bottle-catcher/internal/config"
	"github.com/vovakirdan/bottle-catcher/internal/core"
	"github.com/vovakirdan/bottle-catcher/internal/registry"
)

func newTestGame(seed int64) *Game {
	g := NewWithConfig(config.DefaultCatcherConfig())
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickInterval: TickInterval, Seed: seed})
	return g
}

func TestGameRegistered(t *testing.T) {
	g, err := registry.Create("catcher")
	if err != nil {
		t.Fatalf("Create(catcher) error: %v", err)
	}
	if g.ID() != "catcher" {
		t.Errorf("ID() = %q, expected catcher", g.ID())
	}
	if g.Title() != "Bottle Catcher" {
		t.Errorf("Title() = %q", g.Title())
	}
	if g.TickInterval() != core.DefaultTickInterval {
		t.Errorf("TickInterval() = %v, expected %v", g.TickInterval(), core.DefaultTickInterval)
	}
}

func TestDeterminism(t *testing.T) {
	// Same seed and input script produce identical snapshots
	const seed = 12345
	const ticks = 600

	run := func() []uint64 {
		g := newTestGame(seed)
		hashes := make([]uint64, 0, ticks)
		for i := 0; i < ticks; i++ {
			in := core.NewInputFrame()
			switch {
			case i%40 < 10:
				in.Set(core.ActionLeft)
			case i%40 < 20:
				in.Set(core.ActionRight)
			}
			g.Step(in)
			snap := g.Snapshot()
			hashes = append(hashes, snap.Hash())
		}
		return hashes
	}

	a := run()
	b := run()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("determinism broken at tick %d: %d != %d", i, a[i], b[i])
		}
	}
}

func TestFirstStepSpawns(t *testing.T) {
	g := newTestGame(1)

	result := g.Step(core.NewInputFrame())
	if result.Spawned != 1 {
		t.Fatalf("first Step spawned %d, expected 1", result.Spawned)
	}

	bottles := g.Session().Bottles()
	if len(bottles) != 1 {
		t.Fatalf("expected 1 bottle, got %d", len(bottles))
	}
	expectedY := g.cfg.Bottle.SpawnY - g.cfg.Fall.BaseSpeed
	if bottles[0].Y != expectedY {
		t.Errorf("bottle Y = %v, expected %v after one fall", bottles[0].Y, expectedY)
	}

	result = g.Step(core.NewInputFrame())
	if result.Spawned != 0 {
		t.Errorf("second Step spawned %d, expected 0", result.Spawned)
	}
}

func TestKeyMovement(t *testing.T) {
	g := newTestGame(1)
	step := g.cfg.Player.MoveStep

	in := core.NewInputFrame()
	in.Set(core.ActionRight)
	g.Step(in)
	if g.Session().PlayerX() != step {
		t.Errorf("PlayerX() = %v, expected %v", g.Session().PlayerX(), step)
	}

	in = core.NewInputFrame()
	in.Set(core.ActionLeft)
	g.Step(in)
	if g.Session().PlayerX() != 0 {
		t.Errorf("PlayerX() = %v, expected 0", g.Session().PlayerX())
	}
}

func TestPointerMovement(t *testing.T) {
	g := newTestGame(1)

	in := core.NewInputFrame()
	in.SetPointer(0.4)
	g.Step(in)

	if g.Session().PlayerX() != 0.4 {
		t.Errorf("PlayerX() = %v, expected 0.4", g.Session().PlayerX())
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	g := newTestGame(1)
	g.Step(core.NewInputFrame())

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	g.Step(pause)

	if !g.State().Paused {
		t.Fatal("game should be paused")
	}

	before := g.Snapshot()
	for i := 0; i < 50; i++ {
		in := core.NewInputFrame()
		in.Set(core.ActionRight)
		g.Step(in)
	}
	after := g.Snapshot()

	if before.Hash() != after.Hash() {
		t.Error("state changed while paused")
	}

	g.Step(pause)
	if g.State().Paused {
		t.Error("second pause toggle should resume")
	}
	if g.Snapshot().Tick != before.Tick+1 {
		t.Errorf("Tick = %d, expected %d after resume", g.Snapshot().Tick, before.Tick+1)
	}
}

func TestRestartAfterGameOver(t *testing.T) {
	g := newTestGame(1)
	for i := 0; i < 10; i++ {
		g.Step(core.NewInputFrame())
	}
	g.session.phase = PhaseLost

	// Movement and spawning stop once the game is over
	in := core.NewInputFrame()
	in.Set(core.ActionRight)
	g.Step(in)
	if g.Session().PlayerX() != 0 {
		t.Errorf("PlayerX() = %v, movement should be ignored after game over", g.Session().PlayerX())
	}

	restart := core.NewInputFrame()
	restart.Set(core.ActionRestart)
	g.Step(restart)

	state := g.State()
	if state.GameOver || state.Score != 0 {
		t.Errorf("after restart: %+v, expected fresh playing state", state)
	}
	if len(g.Session().Bottles()) != 0 {
		t.Errorf("expected no bottles after restart, got %d", len(g.Session().Bottles()))
	}
	if g.spawner.Remaining() != 0 {
		t.Errorf("spawner should be due after restart, remaining %v", g.spawner.Remaining())
	}

	if result := g.Step(core.NewInputFrame()); result.Spawned != 1 {
		t.Errorf("first Step after restart spawned %d, expected 1", result.Spawned)
	}
}

func TestRestartIgnoredWhilePlayingGame(t *testing.T) {
	g := newTestGame(1)
	for i := 0; i < 5; i++ {
		g.Step(core.NewInputFrame())
	}
	tick := g.Snapshot().Tick

	restart := core.NewInputFrame()
	restart.Set(core.ActionRestart)
	g.Step(restart)

	if g.Snapshot().Tick != tick+1 {
		t.Errorf("restart while playing should be a normal step, tick %d", g.Snapshot().Tick)
	}
	if len(g.Session().Bottles()) == 0 {
		t.Error("restart while playing should keep the bottles")
	}
}

func TestTrackingPlayerWins(t *testing.T) {
	cfg := config.DefaultCatcherConfig()
	cfg.Gameplay.WinScore = 3
	g := NewWithConfig(cfg)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 7})

	for i := 0; i < 5000 && !g.State().GameOver; i++ {
		in := core.NewInputFrame()
		if target, ok := lowestBottle(g.Session().Bottles()); ok {
			in.SetPointer(target.X)
		}
		g.Step(in)
	}

	state := g.State()
	if !state.Won {
		t.Fatalf("tracking player should win, got %+v", state)
	}
	if state.Score != 3 {
		t.Errorf("Score = %d, expected 3", state.Score)
	}
}

func TestIdlePlayerLoses(t *testing.T) {
	g := newTestGame(99)

	for i := 0; i < 20000 && !g.State().GameOver; i++ {
		in := core.NewInputFrame()
		in.SetPointer(-1)
		g.Step(in)
	}

	state := g.State()
	if !state.GameOver || state.Won {
		t.Errorf("player parked at the edge should lose, got %+v", state)
	}
}

func lowestBottle(bottles []Bottle) (Bottle, bool) {
	var low Bottle
	found := false
	for _, b := range bottles {
		if b.Active && (!found || b.Y < low.Y) {
			low = b
			found = true
		}
	}
	return low, found
}

func TestRenderPlaying(t *testing.T) {
	g := newTestGame(1)
	for i := 0; i < 20; i++ {
		g.Step(core.NewInputFrame())
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	if !strings.Contains(screen.Row(0), "Score: 0") {
		t.Errorf("HUD row = %q, expected score", screen.Row(0))
	}
	if !strings.ContainsRune(screen.String(), BowlLeftChar) {
		t.Error("bowl should be drawn")
	}
	if !strings.ContainsRune(screen.String(), BottleBodyChar) {
		t.Error("bottle should be drawn")
	}
}

func TestRenderResult(t *testing.T) {
	tests := []struct {
		phase Phase
		title string
	}{
		{PhaseLost, LoseTitle},
		{PhaseWon, WinTitle},
	}

	for _, tc := range tests {
		t.Run(tc.phase.String(), func(t *testing.T) {
			g := newTestGame(1)
			g.session.score = 12
			g.session.phase = tc.phase

			screen := core.NewScreen(80, 24)
			g.Render(screen)
			out := screen.String()

			for _, want := range []string{tc.title, "Final Score: 12", "Press 'r' to Restart"} {
				if !strings.Contains(out, want) {
					t.Errorf("result screen missing %q", want)
				}
			}
			if strings.ContainsRune(out, BowlLeftChar) {
				t.Error("result screen should not draw the bowl")
			}
		})
	}
}
