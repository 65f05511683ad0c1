// turnmaze finds the cheapest route through a grid maze for an agent that
// can only move forward or turn in place, where turning is expensive.
//
// Usage:
//
//	turnmaze solve <maze>...   - Solve one or more maze files
//	turnmaze list [dir]        - List maze files in a directory
//	turnmaze watch <maze>      - Step through a search interactively
//	turnmaze history [maze]    - Show recorded runs
//	turnmaze serve [maze]      - Host the visualiser over SSH
//	turnmaze config            - Print the default configuration
//
// Global flags:
//
//	--config <path>     - Config file (default: search ~/.turnmaze, ./configs)
//	--db <path>         - Run history database (default from config)
//	--log-level <lvl>   - debug, info, warn or error
//	--preset <name>     - default, parity or reverse
//	--key <mode>        - Visited key mode override
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/turnmaze/internal/config"
	"github.com/vovakirdan/turnmaze/internal/storage"
)

var (
	// Global flags
	flagConfig   string
	flagDBPath   string
	flagLogLevel string
	flagPreset   string
	flagKeyMode  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "turnmaze",
	Short: "turnmaze - cheapest routes for a turning agent",
	Long: `turnmaze searches grid mazes for the cheapest action sequence that
takes an agent from S to E. The agent starts facing right; moving forward
costs 1 and turning 90 degrees in place costs 1000.

Maze files use '#' for walls, '.' for open cells, 'S' for the start and
'E' for the goal (.txt or .maze), or a YAML document with a 'rows' list
(.yaml or .yml).

Available commands:
  solve    - Solve maze files and print the cost
  list     - List the mazes in a directory
  watch    - Watch the search expand step by step
  history  - Show recorded runs
  serve    - Start SSH server hosting the visualiser
  config   - Print the default configuration

Examples:
  turnmaze solve mazes/wall.txt
  turnmaze solve --render=plain --save mazes/*.txt
  turnmaze watch mazes/wall.txt
  turnmaze history wall`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to run history database (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagPreset, "preset", "", "Search preset: default, parity, reverse")
	rootCmd.PersistentFlags().StringVar(&flagKeyMode, "key", "", "Visited key mode: position-heading-turn, position-heading, position")

	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig loads the config file and applies global flag overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	preset, err := config.ParsePreset(flagPreset)
	if err != nil {
		return cfg, err
	}
	config.ApplyPreset(&cfg.Search, preset)

	if flagKeyMode != "" {
		cfg.Search.KeyMode = flagKeyMode
	}
	if flagDBPath != "" {
		cfg.Storage.DBPath = flagDBPath
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	return cfg, nil
}

// runSettings describes the configured search for recording and
// comparing runs.
func runSettings(cfg config.Config) storage.Settings {
	return storage.SettingsOf(cfg.Search.KeyMode, cfg.Search.Costs(), cfg.Search.Pruning())
}

// closeStore closes an optional history database before the process exits.
func closeStore(store *storage.Store) {
	if store != nil {
		store.Close()
	}
}

// newLogger creates the CLI logger at the configured level.
func newLogger(cfg config.Config) (*log.Logger, error) {
	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Log.Level, err)
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "turnmaze",
		Level:           level,
	}), nil
}

// fail prints an error and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
