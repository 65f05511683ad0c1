package storage

import (
	"time"

	"github.com/vovakirdan/turnmaze/internal/search"
)

// RunFromResult builds a RunEntry for a finished search.
func RunFromResult(mazeID string, settings Settings, res search.Result, took time.Duration) RunEntry {
	run := RunEntry{
		MazeID:   mazeID,
		Found:    res.Found(),
		Cost:     -1,
		Expanded: res.Expanded,
		Settings: settings,
		Duration: took,
	}
	if run.Found {
		run.Cost = res.Path.Cost
		run.Steps = res.Path.Steps()
		run.Turns = res.Path.Turns()
		run.Actions = search.FormatActions(res.Path.Actions)
	}
	return run
}
