package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/bottle-catcher/internal/config"
	"github.com/vovakirdan/bottle-catcher/internal/core"
	"github.com/vovakirdan/bottle-catcher/internal/games/catcher"
	"github.com/vovakirdan/bottle-catcher/internal/platform/tui"
	"github.com/vovakirdan/bottle-catcher/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing in this terminal. The game defaults to catcher.

Controls:
  Left/A/H     - Move bowl left
  Right/D/L    - Move bowl right
  Mouse        - Bowl follows the pointer
  P/Esc        - Pause
  R            - Restart (after game over)
  Ctrl+S       - Save a screenshot to ~/.catcher/screenshots
  Q/Ctrl+C     - Quit

Config lookup order:
  --config path, ~/.catcher/configs/catcher.yaml, ./configs/catcher.yaml,
  then built-in defaults.

Examples:
  catcher play
  catcher play --seed 42
  catcher play --config ./my-catcher.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "catcher",
	})

	gameID := "catcher"
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'catcher list' to see available games.")
		os.Exit(1)
	}

	// Surface config errors before the terminal switches to the alt screen
	if _, err := config.LoadCatcher(flagConfig); err != nil {
		logger.Error("cannot load config", "path", flagConfig, "error", err)
		os.Exit(1)
	}
	catcher.SetConfigPath(flagConfig)

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	cfg := core.RuntimeConfig{
		ScreenW:      width,
		ScreenH:      height,
		TickInterval: game.TickInterval(),
		Seed:         flagSeed,
	}

	state, err := tui.Run(game, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}

	logger.Info("session finished",
		"game", gameID,
		"score", state.Score,
		"game_over", state.GameOver,
		"won", state.Won,
	)
}
