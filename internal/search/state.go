package search

import "github.com/vovakirdan/turnmaze/internal/core"

// State is a node of the search graph: a cell, a heading, and the history of
// actions that led there. The history is held as a link to the parent state
// plus the last action, so expanding a state never copies its history.
// States are never mutated after creation and may be shared between branches.
type State struct {
	Pos     core.Coord
	Heading core.Heading

	parent  *State
	action  Action
	depth   int
	cost    int
	turns   int
	turnRun int // consecutive turns at the end of the history
}

// Root returns the state at pos/heading with an empty history.
func Root(pos core.Coord, heading core.Heading) *State {
	return &State{Pos: pos, Heading: heading}
}

// Child returns the state reached by applying a to s. The caller is
// responsible for legality; see Expander.
func (s *State) Child(a Action, costs CostModel) *State {
	next := &State{
		Pos:     s.Pos,
		Heading: s.Heading,
		parent:  s,
		action:  a,
		depth:   s.depth + 1,
		cost:    s.cost + costs.Cost(a),
		turns:   s.turns,
	}

	switch a {
	case Move:
		next.Pos = s.Pos.Step(s.Heading)
	case TurnRight:
		next.Heading = s.Heading.Clockwise()
	case TurnLeft:
		next.Heading = s.Heading.CounterClockwise()
	}

	if a.IsTurn() {
		next.turns++
		next.turnRun = s.turnRun + 1
	}
	return next
}

// Last returns the most recent action. ok is false for a root state.
func (s *State) Last() (a Action, ok bool) {
	if s.parent == nil {
		return 0, false
	}
	return s.action, true
}

// Cost returns the accumulated cost of the history.
func (s *State) Cost() int { return s.cost }

// Len returns the number of actions in the history.
func (s *State) Len() int { return s.depth }

// TurnCount returns the number of rotations in the history.
func (s *State) TurnCount() int { return s.turns }

// StepCount returns the number of moves in the history.
func (s *State) StepCount() int { return s.depth - s.turns }

// TrailingTurns returns how many of the most recent actions are rotations
// with no move in between.
func (s *State) TrailingTurns() int { return s.turnRun }

// Actions reconstructs the history by walking parent links.
func (s *State) Actions() []Action {
	actions := make([]Action, s.depth)
	for cur := s; cur.parent != nil; cur = cur.parent {
		actions[cur.depth-1] = cur.action
	}
	return actions
}
