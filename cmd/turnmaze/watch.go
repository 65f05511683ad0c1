package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/turnmaze/internal/levels"
	"github.com/vovakirdan/turnmaze/internal/storage"
	"github.com/vovakirdan/turnmaze/internal/tui"
)

var (
	flagWatchRate int
	flagWatchSave bool
)

var watchCmd = &cobra.Command{
	Use:   "watch <maze>",
	Short: "Watch the search step by step",
	Long: `Run the search on a timer and draw its progress: explored cells 'o',
frontier cells '+', the state being expanded as an arrow, and the final
path 'X'.

Controls:
  Space/P    - Pause
  N/Right    - Single step
  +/-        - Faster/slower
  F          - Run to the end
  R          - Restart
  Q/Esc      - Quit

Examples:
  turnmaze watch mazes/wall.txt
  turnmaze watch --rate 200 big.txt
  turnmaze watch --key position mazes/loop.txt`,
	Args: cobra.ExactArgs(1),
	Run:  runWatch,
}

func init() {
	watchCmd.Flags().IntVar(&flagWatchRate, "rate", 0, "Steps per second (default from config)")
	watchCmd.Flags().BoolVar(&flagWatchSave, "save", false, "Record the finished run in the history database")
}

func runWatch(_ *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fail("%v", err)
	}

	maze, err := levels.LoadFile(args[0])
	if err != nil {
		fail("%v", err)
	}

	opts, err := cfg.Search.Options()
	if err != nil {
		fail("%v", err)
	}

	rate := cfg.Watch.TickRate
	if flagWatchRate > 0 {
		rate = flagWatchRate
	}

	var store *storage.Store
	if flagWatchSave {
		store, err = storage.Open(cfg.Storage.DBPath)
		if err != nil {
			fail("opening history database: %v", err)
		}
	}

	err = tui.RunWatch(tui.WatchConfig{
		Maze:     maze,
		Options:  opts,
		Settings: runSettings(cfg),
		TickRate: rate,
		Store:    store,
	})
	closeStore(store)
	if err != nil {
		fail("%v", err)
	}
}
