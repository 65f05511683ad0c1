package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/turnmaze/internal/levels"
	"github.com/vovakirdan/turnmaze/internal/storage"
)

var flagListBest bool

var listCmd = &cobra.Command{
	Use:   "list [dir]",
	Short: "List the mazes in a directory",
	Long: `Recursively loads every maze file under dir (default: ./mazes) and
shows them sorted by ID. Files that fail to parse are skipped.

Examples:
  turnmaze list
  turnmaze list ./puzzles --best

The best cost only counts runs made with the current search settings
(key mode, costs and pruning).`,
	Args: cobra.MaximumNArgs(1),
	Run:  runList,
}

func init() {
	listCmd.Flags().BoolVar(&flagListBest, "best", false, "Show the best recorded cost for each maze")
}

func runList(_ *cobra.Command, args []string) {
	dir := "mazes"
	if len(args) > 0 {
		dir = args[0]
	}

	mazes, err := levels.NewLoader(dir).LoadAll()
	if err != nil {
		fail("%v", err)
	}

	if len(mazes) == 0 {
		fmt.Printf("No mazes found in %s.\n", dir)
		return
	}

	var (
		store    *storage.Store
		settings storage.Settings
	)
	if flagListBest {
		cfg, err := loadConfig()
		if err != nil {
			fail("%v", err)
		}
		settings = runSettings(cfg)
		store, err = storage.Open(cfg.Storage.DBPath)
		if err != nil {
			fail("opening history database: %v", err)
		}
		defer store.Close()
	}

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, m := range mazes {
		if len(m.ID) > maxIDLen {
			maxIDLen = len(m.ID)
		}
	}

	fmt.Printf("  %-*s  %-7s  %-5s  %-6s  %s\n", maxIDLen, "ID", "Size", "Open", "Best", "Name")
	fmt.Printf("  %-*s  %-7s  %-5s  %-6s  %s\n", maxIDLen, "--", "----", "----", "----", "----")

	for _, m := range mazes {
		size := fmt.Sprintf("%dx%d", m.Grid.Width(), m.Grid.Height())
		best := "-"
		if store != nil {
			if run, err := store.BestRun(m.ID, settings); err == nil && run != nil {
				best = fmt.Sprintf("%d", run.Cost)
			}
		}
		fmt.Printf("  %-*s  %-7s  %-5d  %-6s  %s\n", maxIDLen, m.ID, size, m.Grid.OpenCount(), best, m.Name)
	}

	fmt.Println()
	fmt.Println("Run 'turnmaze solve <file>' to solve a maze.")
}
