package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/turnmaze/internal/core"
	"github.com/vovakirdan/turnmaze/internal/levels"
	"github.com/vovakirdan/turnmaze/internal/render"
	"github.com/vovakirdan/turnmaze/internal/search"
	"github.com/vovakirdan/turnmaze/internal/storage"
	"github.com/vovakirdan/turnmaze/internal/tui"
)

var (
	flagHistoryLimit int
	flagHistoryTUI   bool
	flagHistoryClear bool
	flagHistoryAll   bool
	flagHistoryShow  bool
	flagHistoryDir   string
)

var historyCmd = &cobra.Command{
	Use:   "history [maze]",
	Short: "Show recorded runs",
	Long: `Display runs recorded with 'solve --save' or in the visualiser.

With a maze ID, shows that maze's runs made with the current search
settings (key mode, costs and pruning), cheapest first. Costs from other
settings are not comparable; use --all to list every run of the maze,
most recent first. Without a maze ID, shows the most recent runs across
all mazes.

Examples:
  turnmaze history
  turnmaze history wall --limit 5
  turnmaze history wall --show          # draw the best path on mazes/wall.txt
  turnmaze history wall --all
  turnmaze history --tui
  turnmaze history wall --clear`,
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completeMazeIDs,
	Run:               runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 10, "Number of runs to show")
	historyCmd.Flags().BoolVar(&flagHistoryTUI, "tui", false, "Browse runs interactively")
	historyCmd.Flags().BoolVar(&flagHistoryClear, "clear", false, "Delete the recorded runs of the given maze")
	historyCmd.Flags().BoolVar(&flagHistoryAll, "all", false, "List runs made with any settings, most recent first")
	historyCmd.Flags().BoolVar(&flagHistoryShow, "show", false, "Draw the best run on its maze")
	historyCmd.Flags().StringVar(&flagHistoryDir, "dir", "mazes", "Maze directory used by --show and completion")
}

// completeMazeIDs offers the IDs of the mazes in --dir.
func completeMazeIDs(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	ids, err := levels.NewLoader(flagHistoryDir).ListIDs()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	return ids, cobra.ShellCompDirectiveNoFileComp
}

func runHistory(_ *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fail("%v", err)
	}
	settings := runSettings(cfg)

	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		fail("opening history database: %v", err)
	}

	mazeID := ""
	if len(args) > 0 {
		mazeID = args[0]
	}

	if err := showHistory(store, settings, mazeID); err != nil {
		store.Close()
		fail("%v", err)
	}
	store.Close()
}

// showHistory runs the action selected by the flags.
func showHistory(store *storage.Store, settings storage.Settings, mazeID string) error {
	if flagHistoryClear {
		if mazeID == "" {
			return fmt.Errorf("--clear needs a maze ID")
		}
		if err := store.ClearRuns(mazeID); err != nil {
			return err
		}
		fmt.Printf("Cleared runs for %s.\n", mazeID)
		return nil
	}

	if flagHistoryTUI {
		width, height := 100, 30
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunHistory(store, settings, mazeID, width, height)
	}

	var (
		runs []storage.RunEntry
		err  error
	)
	switch {
	case mazeID == "":
		runs, err = store.RecentRuns("", flagHistoryLimit)
		fmt.Println("Recent runs")
	case flagHistoryAll:
		runs, err = store.RecentRuns(mazeID, flagHistoryLimit)
		fmt.Printf("Runs - %s (all settings)\n", mazeID)
	default:
		runs, err = store.RunsForMaze(mazeID, settings, flagHistoryLimit)
		fmt.Printf("Runs - %s (%s)\n", mazeID, settings)
	}
	if err != nil {
		return fmt.Errorf("retrieving runs: %w", err)
	}
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Run 'turnmaze solve --save <file>' to record one.")
		return nil
	}

	fmt.Printf("  %-4s  %-12s  %-8s  %-6s  %-6s  %-9s  %-50s  %s\n", "#", "Maze", "Cost", "Moves", "Turns", "Expanded", "Settings", "Date")
	fmt.Printf("  %-4s  %-12s  %-8s  %-6s  %-6s  %-9s  %-50s  %s\n", "-", "----", "----", "-----", "-----", "--------", "--------", "----")

	for i, r := range runs {
		cost := "-"
		if r.Found {
			cost = fmt.Sprintf("%d", r.Cost)
		}
		fmt.Printf("  %-4d  %-12s  %-8s  %-6d  %-6d  %-9d  %-50s  %s\n",
			i+1, r.MazeID, cost, r.Steps, r.Turns, r.Expanded, r.Settings, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	if mazeID == "" {
		return nil
	}

	best, err := store.BestRun(mazeID, settings)
	if err != nil || best == nil {
		return err
	}
	fmt.Println()
	fmt.Printf("Best: %d %s\n", best.Cost, best.Actions)

	if flagHistoryShow {
		drawing, err := drawRun(flagHistoryDir, *best)
		if err != nil {
			return err
		}
		fmt.Println()
		fmt.Println(drawing)
	}
	return nil
}

// drawRun replays a stored run on the maze with the same ID in dir.
func drawRun(dir string, run storage.RunEntry) (string, error) {
	maze, err := levels.NewLoader(dir).LoadByID(run.MazeID)
	if err != nil {
		return "", err
	}

	actions, err := search.ParseActions(run.Actions)
	if err != nil {
		return "", fmt.Errorf("stored actions of %s: %w", run.MazeID, err)
	}

	p := search.Path{
		Actions: actions,
		Cost:    run.Cost,
		Start:   maze.Grid.Start(),
		Heading: core.DefaultHeading,
	}
	if !p.Fits(maze.Grid) {
		return "", fmt.Errorf("stored path of %s no longer fits %s", run.MazeID, maze.FilePath)
	}
	return render.ASCII(maze.Grid, render.PathOverlay(p)), nil
}
