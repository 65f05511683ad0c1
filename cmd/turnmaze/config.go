package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/turnmaze/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Print the built-in configuration file. Redirect it to
~/.turnmaze/config.yaml or ./configs/turnmaze.yaml and edit it to
change the defaults.

Examples:
  turnmaze config > ~/.turnmaze/config.yaml`,
	Args: cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		if _, err := os.Stdout.Write(config.DefaultYAML()); err != nil {
			fail("%v", err)
		}
	},
}
