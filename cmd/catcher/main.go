// catcher is a terminal Bottle Catcher game: move the bowl, catch falling
// bottles, and reach the winning score before one hits the ground.
//
// Usage:
//
//	catcher play             - Play locally in this terminal
//	catcher list             - List available games
//	catcher serve            - Start SSH server for remote play
//	catcher config           - Print the effective game config
//
// Global flags:
//
//	--seed <value>    - Set RNG seed for reproducible gameplay
//	--config <path>   - Custom game config YAML
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/bottle-catcher/internal/games/catcher"
)

var (
	// Global flags
	flagSeed   int64
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "catcher",
	Short: "Bottle Catcher - catch falling bottles in your terminal",
	Long: `Bottle Catcher is a terminal arcade game. Bottles fall from the top of
the screen; steer the bowl with the arrow keys or the mouse to catch them.
Catch 100 to win. Miss one and the game is over.

Available commands:
  play     - Play in this terminal
  list     - Show all available games
  serve    - Start SSH server for remote play
  config   - Print the effective game config

Examples:
  catcher play
  catcher play --seed 42
  catcher play --config ./my-catcher.yaml
  catcher serve --ssh :2222
  catcher config > ~/.catcher/configs/catcher.yaml`,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}
