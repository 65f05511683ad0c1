// Package trace provides search observers for logging and statistics.
package trace

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/turnmaze/internal/search"
)

// LogObserver logs every frontier pop at debug level.
type LogObserver struct {
	logger *log.Logger
}

// NewLogObserver creates an observer writing to logger.
func NewLogObserver(logger *log.Logger) *LogObserver {
	return &LogObserver{logger: logger}
}

// Observe implements search.Observer.
func (o *LogObserver) Observe(snap search.Snapshot) {
	st := snap.State
	if st == nil {
		return
	}
	o.logger.Debug("pop",
		"step", snap.Step,
		"pos", st.Pos,
		"heading", st.Heading,
		"cost", st.Cost(),
		"discarded", snap.Discarded,
		"frontier", snap.FrontierLen,
		"status", snap.Status,
	)
}

// Stats accumulates counters over a run.
type Stats struct {
	Pops        int
	Discarded   int
	MaxFrontier int
	// CostLevels counts the distinct costs popped, i.e. how many cost
	// "rings" the search went through.
	CostLevels int
	LastCost   int
}

// Observe implements search.Observer.
func (s *Stats) Observe(snap search.Snapshot) {
	if snap.State == nil {
		return
	}
	s.Pops++
	if snap.Discarded {
		s.Discarded++
	}
	if snap.FrontierLen > s.MaxFrontier {
		s.MaxFrontier = snap.FrontierLen
	}
	if c := snap.State.Cost(); s.Pops == 1 || c != s.LastCost {
		s.CostLevels++
		s.LastCost = c
	}
}

// Multi fans every snapshot out to each observer in order.
type Multi []search.Observer

// Observe implements search.Observer.
func (m Multi) Observe(snap search.Snapshot) {
	for _, o := range m {
		o.Observe(snap)
	}
}
