package search

import "github.com/vovakirdan/turnmaze/internal/core"

// Pruning controls which action sequences the expander refuses to generate.
type Pruning struct {
	// MaxTurnRun is the longest run of consecutive rotations allowed.
	// A rotation is rejected when the last MaxTurnRun actions are already
	// rotations. Zero or negative disables the limit.
	MaxTurnRun int

	// ForbidRepeatTurn rejects a rotation identical to the action just taken.
	ForbidRepeatTurn bool
}

// DefaultPruning allows at most three rotations in a row and never the same
// rotation twice in a row.
func DefaultPruning() Pruning {
	return Pruning{MaxTurnRun: 3, ForbidRepeatTurn: true}
}

// Expander generates the legal successors of a state on a grid.
type Expander struct {
	grid    *core.Grid
	costs   CostModel
	pruning Pruning
}

// NewExpander creates an expander for grid.
func NewExpander(grid *core.Grid, costs CostModel, pruning Pruning) *Expander {
	return &Expander{grid: grid, costs: costs, pruning: pruning}
}

// Allowed reports whether a may follow s, applying the legality checks and
// then the pruning policy.
func (e *Expander) Allowed(s *State, a Action) bool {
	if a == Move {
		return e.grid.IsOpen(s.Pos.Step(s.Heading))
	}

	if last, ok := s.Last(); ok && e.pruning.ForbidRepeatTurn && last == a {
		return false
	}
	if e.pruning.MaxTurnRun > 0 && s.TrailingTurns() >= e.pruning.MaxTurnRun {
		return false
	}
	return true
}

// Expand returns the children of s in the order Move, TurnRight, TurnLeft,
// skipping candidates rejected by Allowed.
func (e *Expander) Expand(s *State) []*State {
	children := make([]*State, 0, len(candidateOrder))
	for _, a := range candidateOrder {
		if e.Allowed(s, a) {
			children = append(children, s.Child(a, e.costs))
		}
	}
	return children
}
