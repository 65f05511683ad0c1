package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"slices"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/turnmaze/internal/levels"
	"github.com/vovakirdan/turnmaze/internal/render"
	"github.com/vovakirdan/turnmaze/internal/search"
	"github.com/vovakirdan/turnmaze/internal/storage"
	"github.com/vovakirdan/turnmaze/internal/trace"
)

var (
	flagRender        string
	flagSave          bool
	flagTrace         bool
	flagTimeout       time.Duration
	flagMaxExpansions int
)

var solveCmd = &cobra.Command{
	Use:   "solve <maze>...",
	Short: "Solve maze files",
	Long: `Search each maze for its cheapest path and print the cost.

Several mazes are solved concurrently; results are printed in argument
order. The command exits with status 1 if any maze fails to load or has
no path.

Render modes:
  none   - Only print the cost line
  plain  - Also print the maze with the path marked 'X'
  color  - Like plain, with colours
  auto   - color on a terminal, none otherwise (default)

Examples:
  turnmaze solve mazes/wall.txt
  turnmaze solve --render=plain mazes/*.txt
  turnmaze solve --key position --save mazes/wall.txt
  turnmaze solve --trace --timeout 5s big.txt`,
	Args: cobra.MinimumNArgs(1),
	Run:  runSolve,
}

func init() {
	solveCmd.Flags().StringVar(&flagRender, "render", "auto", "Render mode: none, plain, color, auto")
	solveCmd.Flags().BoolVar(&flagSave, "save", false, "Record runs in the history database")
	solveCmd.Flags().BoolVar(&flagTrace, "trace", false, "Log every frontier pop at debug level")
	solveCmd.Flags().DurationVar(&flagTimeout, "timeout", 0, "Abort each search after this long (0 = no limit)")
	solveCmd.Flags().IntVar(&flagMaxExpansions, "max-expansions", -1, "Expansion cap (-1 = from config, 0 = unlimited)")
}

// solveOutcome is the result of solving one maze file.
type solveOutcome struct {
	path   string
	maze   levels.Maze
	result search.Result
	stats  trace.Stats
	took   time.Duration
	err    error
}

func runSolve(_ *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fail("%v", err)
	}
	if flagMaxExpansions >= 0 {
		cfg.Search.MaxExpansions = flagMaxExpansions
	}
	if flagTrace {
		cfg.Log.Level = "debug"
	}

	logger, err := newLogger(cfg)
	if err != nil {
		fail("%v", err)
	}

	opts, err := cfg.Search.Options()
	if err != nil {
		fail("%v", err)
	}

	mode, err := renderMode(flagRender)
	if err != nil {
		fail("%v", err)
	}

	var store *storage.Store
	if flagSave {
		store, err = storage.Open(cfg.Storage.DBPath)
		if err != nil {
			fail("opening history database: %v", err)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	outcomes := make([]solveOutcome, len(args))
	var wg sync.WaitGroup
	for i, path := range args {
		wg.Add(1)
		go func(i int, path string) {
			defer wg.Done()
			outcomes[i] = solveFile(ctx, path, opts, logger)
		}(i, path)
	}
	wg.Wait()

	failed := false
	for _, out := range outcomes {
		if !printOutcome(out, mode) {
			failed = true
		}
		if store != nil && out.maze.Grid != nil && (out.err == nil || errors.Is(out.err, search.ErrNoPath)) {
			run := storage.RunFromResult(out.maze.ID, runSettings(cfg), out.result, out.took)
			if _, err := store.SaveRun(run); err != nil {
				logger.Warn("could not save run", "maze", out.maze.ID, "error", err)
			}
		}
	}

	closeStore(store)
	if failed {
		os.Exit(1)
	}
}

// solveFile loads and solves one maze. Each call runs its own search.
func solveFile(ctx context.Context, path string, opts []search.Option, logger *log.Logger) solveOutcome {
	out := solveOutcome{path: path}

	maze, err := levels.LoadFile(path)
	if err != nil {
		out.err = err
		return out
	}
	out.maze = maze

	if flagTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, flagTimeout)
		defer cancel()
	}

	mazeLogger := logger.With("maze", maze.ID)
	observers := trace.Multi{&out.stats}
	if flagTrace {
		observers = append(observers, trace.NewLogObserver(mazeLogger))
	}

	mazeLogger.Debug("solving", "file", path, "size", fmt.Sprintf("%dx%d", maze.Grid.Width(), maze.Grid.Height()))

	start := time.Now()
	res, err := search.Run(ctx, maze.Grid, append(slices.Clip(opts), search.WithObserver(observers))...)
	out.took = time.Since(start)
	out.result = res
	out.err = err

	mazeLogger.Info("search finished",
		"status", res.Status,
		"expanded", res.Expanded,
		"discarded", res.Discarded,
		"max_frontier", out.stats.MaxFrontier,
		"took", out.took,
	)
	return out
}

type outputMode int

const (
	renderNone outputMode = iota
	renderPlain
	renderColor
)

// renderMode resolves the --render flag.
func renderMode(name string) (outputMode, error) {
	switch name {
	case "none":
		return renderNone, nil
	case "plain":
		return renderPlain, nil
	case "color":
		return renderColor, nil
	case "auto", "":
		if term.IsTerminal(int(os.Stdout.Fd())) {
			return renderColor, nil
		}
		return renderNone, nil
	default:
		return renderNone, fmt.Errorf("unknown render mode %q", name)
	}
}

// printOutcome prints one result and reports whether a path was found.
func printOutcome(out solveOutcome, mode outputMode) bool {
	if out.err != nil && out.maze.Grid == nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", out.path, out.err)
		return false
	}

	name := out.maze.ID
	switch {
	case out.err == nil:
		p := out.result.Path
		fmt.Printf("%s: cost %d (%d moves, %d turns, %d expanded) %s\n",
			name, p.Cost, p.Steps(), p.Turns(), out.result.Expanded, search.FormatActions(p.Actions))
	case errors.Is(out.err, search.ErrNoPath):
		fmt.Printf("%s: no path (%d expanded)\n", name, out.result.Expanded)
	default:
		fmt.Fprintf(os.Stderr, "%s: %v (status %s)\n", name, out.err, out.result.Status)
		return false
	}

	if mode != renderNone {
		ov := render.Overlay{}
		if out.err == nil {
			ov = render.PathOverlay(out.result.Path)
		}
		canvas := render.Draw(out.maze.Grid, ov)
		if mode == renderColor {
			fmt.Println(render.Styled(canvas, render.DefaultTheme()))
		} else {
			fmt.Println(canvas.String())
		}
		fmt.Println()
	}
	return out.err == nil
}
