package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/bottle-catcher/internal/core"
	"github.com/vovakirdan/bottle-catcher/internal/registry"
)

// helpRows is the number of rows below the playfield reserved for key help.
const helpRows = 1

// GameOverFunc is called once each time a game reaches game over.
type GameOverFunc func(gameID string, state core.GameState)

// Option configures a Model.
type Option func(*Model)

// WithGameOverHook registers a callback for finished games.
func WithGameOverHook(fn GameOverFunc) Option {
	return func(m *Model) {
		m.onGameOver = fn
	}
}

// WithScreenshotDir overrides where ctrl+s captures are written.
func WithScreenshotDir(dir string) Option {
	return func(m *Model) {
		m.screenshotDir = dir
	}
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	help       help.Model

	onGameOver    GameOverFunc
	screenshotDir string

	quitting       bool
	gameOverLogged bool // Whether onGameOver fired for the current game over
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts ...Option) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickInterval == 0 {
		cfg.TickInterval = game.TickInterval()
	}

	h := help.New()
	h.Width = cfg.ScreenW

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, playfieldHeight(cfg.ScreenH)),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
		help:       h,
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// playfieldHeight returns the rows left for the game once help is drawn.
func playfieldHeight(total int) int {
	return core.Max(1, total-helpRows)
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickInterval)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keyMapper.IsScreenshot(msg) {
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handleMouse maps pointer movement over the playfield to a world x.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Action {
	case tea.MouseActionMotion, tea.MouseActionPress:
		m.inputFrame.SetPointer(core.ColToWorld(msg.X, m.screen.Width()))
	}
	return m, nil
}

// handleResize processes window resize events. The game keeps running;
// world coordinates are independent of the screen size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, playfieldHeight(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	// Report game over once per finished game
	switch {
	case m.gameState.GameOver && !m.gameOverLogged:
		if m.onGameOver != nil {
			m.onGameOver(m.game.ID(), m.gameState)
		}
		m.gameOverLogged = true
	case !m.gameState.GameOver:
		m.gameOverLogged = false
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickInterval)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := m.screenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return
		}
		dir = filepath.Join(home, ".catcher", "screenshots")
	}
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// State returns the last game state observed by the model.
func (m Model) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if the user requested to quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keyMapper.Keys())
}

// Run starts the Bubble Tea program with the given game and returns the
// state it was left in.
func Run(game registry.Game, cfg core.RuntimeConfig, opts ...Option) (core.GameState, error) {
	model := NewModel(game, cfg, opts...)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),      // Use alternate screen buffer
		tea.WithMouseAllMotion(), // Pointer steers the catcher without a button held
	)

	final, err := p.Run()
	if err != nil {
		return core.GameState{}, err
	}
	if fm, ok := final.(Model); ok {
		return fm.State(), nil
	}
	return core.GameState{}, nil
}
