package search

import (
	"errors"

	"github.com/vovakirdan/turnmaze/internal/core"
)

var (
	// ErrNoPath is returned when the frontier empties before the goal is reached.
	ErrNoPath = errors.New("search: no path to goal")

	// ErrExpansionLimit is returned when the goal was not among the states
	// popped before a further expansion would exceed MaxExpansions.
	ErrExpansionLimit = errors.New("search: expansion limit reached")

	// ErrIncomplete is returned by Result before the search has finished.
	ErrIncomplete = errors.New("search: not finished")
)

// Status is the state of a search run.
type Status int

const (
	StatusIdle Status = iota
	StatusRunning
	StatusFound
	StatusExhausted
	StatusLimited
	StatusCancelled
)

// String returns the string representation of a status.
func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusRunning:
		return "running"
	case StatusFound:
		return "found"
	case StatusExhausted:
		return "exhausted"
	case StatusLimited:
		return "limited"
	case StatusCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Done reports whether the status is terminal.
func (s Status) Done() bool {
	return s >= StatusFound
}

// Snapshot describes one step of the search.
type Snapshot struct {
	Status Status
	// State is the state popped this step, nil when nothing was popped.
	State *State
	// Discarded is true when State's key had already been closed.
	Discarded   bool
	FrontierLen int
	Expanded    int
	Step        int
}

// Result is the outcome of a finished search.
type Result struct {
	Path      Path
	Status    Status
	Expanded  int
	Discarded int
	Pushed    int
	Visited   int
}

// Found reports whether a path was found.
func (r Result) Found() bool { return r.Status == StatusFound }

// Stepper runs the search one frontier pop at a time.
// A Stepper is not safe for concurrent use; independent searches should
// each use their own Stepper.
type Stepper struct {
	grid     *core.Grid
	opts     Options
	expander *Expander
	frontier *Frontier
	visited  *VisitedSet

	status    Status
	goal      *State
	current   *State
	steps     int
	expanded  int
	discarded int
	pushed    int
}

// NewStepper prepares a search over grid. The grid must have been built with
// core.New, which guarantees its start and goal are valid.
func NewStepper(grid *core.Grid, options ...Option) (*Stepper, error) {
	if grid == nil {
		return nil, errors.New("search: nil grid")
	}

	opts := DefaultOptions()
	for _, option := range options {
		option(&opts)
	}
	if err := opts.Costs.Validate(); err != nil {
		return nil, err
	}
	if opts.MaxExpansions < 0 {
		opts.MaxExpansions = 0
	}

	return &Stepper{
		grid:     grid,
		opts:     opts,
		expander: NewExpander(grid, opts.Costs, opts.Pruning),
		frontier: NewFrontier(),
		visited:  NewVisitedSet(opts.Projection),
	}, nil
}

// Status returns the current status.
func (s *Stepper) Status() Status { return s.status }

// Current returns the most recently popped state, or nil.
func (s *Stepper) Current() *State { return s.current }

// Grid returns the grid being searched.
func (s *Stepper) Grid() *core.Grid { return s.grid }

// start seeds the frontier with the one-action children of the start state.
func (s *Stepper) start() {
	s.status = StatusRunning
	root := Root(s.grid.Start(), core.DefaultHeading)
	if root.Pos == s.grid.Goal() {
		s.goal = root
		s.current = root
		s.status = StatusFound
		return
	}
	for _, child := range s.expander.Expand(root) {
		s.frontier.Push(child)
		s.pushed++
	}
}

// Step pops the cheapest pending state and either discards it, accepts it
// as the goal, or expands it. A pop that would need an expansion beyond
// MaxExpansions ends the search as StatusLimited instead. Once the status is terminal, Step does nothing
// and keeps returning the terminal snapshot.
func (s *Stepper) Step() Snapshot {
	if s.status == StatusIdle {
		s.start()
		if s.status.Done() {
			return s.snapshot(s.current, false)
		}
	}
	if s.status.Done() {
		return s.snapshot(nil, false)
	}

	st, ok := s.frontier.Pop()
	if !ok {
		s.status = StatusExhausted
		return s.snapshot(nil, false)
	}
	s.steps++
	s.current = st

	discarded := false
	switch {
	case !s.visited.Insert(st):
		discarded = true
		s.discarded++
	case st.Pos == s.grid.Goal():
		s.goal = st
		s.status = StatusFound
	case s.opts.MaxExpansions > 0 && s.expanded >= s.opts.MaxExpansions:
		s.status = StatusLimited
	default:
		s.expanded++
		for _, child := range s.expander.Expand(st) {
			s.frontier.Push(child)
			s.pushed++
		}
	}

	snap := s.snapshot(st, discarded)
	if s.opts.Observer != nil {
		s.opts.Observer.Observe(snap)
	}
	return snap
}

func (s *Stepper) snapshot(st *State, discarded bool) Snapshot {
	return Snapshot{
		Status:      s.status,
		State:       st,
		Discarded:   discarded,
		FrontierLen: s.frontier.Len(),
		Expanded:    s.expanded,
		Step:        s.steps,
	}
}

// cancel marks an unfinished search as cancelled.
func (s *Stepper) cancel() {
	if !s.status.Done() {
		s.status = StatusCancelled
	}
}

// Explored returns the cells of all closed states.
func (s *Stepper) Explored() map[core.Coord]bool {
	return s.visited.Cells()
}

// Pending returns the cells of all states still on the frontier.
func (s *Stepper) Pending() map[core.Coord]bool {
	cells := make(map[core.Coord]bool, s.frontier.Len())
	s.frontier.Each(func(st *State) {
		cells[st.Pos] = true
	})
	return cells
}

// Result returns the outcome so far. The error is nil when a path was found,
// ErrNoPath or ErrExpansionLimit for the other terminal outcomes, and
// ErrIncomplete while the search is still idle or running.
func (s *Stepper) Result() (Result, error) {
	res := Result{
		Status:    s.status,
		Expanded:  s.expanded,
		Discarded: s.discarded,
		Pushed:    s.pushed,
		Visited:   s.visited.Len(),
	}

	switch s.status {
	case StatusFound:
		res.Path = pathOf(s.goal, s.grid.Start(), core.DefaultHeading)
		return res, nil
	case StatusExhausted:
		return res, ErrNoPath
	case StatusLimited:
		return res, ErrExpansionLimit
	default:
		return res, ErrIncomplete
	}
}
