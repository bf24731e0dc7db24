package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bottle-catcher/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective game config",
	Long: `Prints the config the game would run with, as YAML. The output is a
complete config file that can be edited and passed back with --config.`,
	Run: runConfig,
}

func runConfig(_ *cobra.Command, _ []string) {
	cfg, err := config.LoadCatcher(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	data, err := cfg.Marshal()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding config: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(data) //nolint:errcheck // Nothing useful to do on a stdout failure
}
