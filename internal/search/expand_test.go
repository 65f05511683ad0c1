package search

import (
	"testing"

	"github.com/vovakirdan/turnmaze/internal/core"
)

func actionsOf(children []*State) string {
	codes := make([]Action, len(children))
	for i, c := range children {
		codes[i], _ = c.Last()
	}
	return FormatActions(codes)
}

func TestExpandOrderAndLegality(t *testing.T) {
	g := gridOf(t,
		"S.#",
		"..E",
	)
	costs := DefaultCostModel()
	e := NewExpander(g, costs, DefaultPruning())

	root := Root(g.Start(), core.DefaultHeading)
	if got := actionsOf(e.Expand(root)); got != "MRL" {
		t.Errorf("root expansions = %s, expected MRL", got)
	}

	// (1,0) facing right looks at a wall.
	atWall := root.Child(Move, costs)
	if got := actionsOf(e.Expand(atWall)); got != "RL" {
		t.Errorf("expansions facing wall = %s, expected RL", got)
	}

	// (0,0) facing up looks out of bounds.
	facingOut := root.Child(TurnLeft, costs)
	if got := actionsOf(e.Expand(facingOut)); got != "R" {
		t.Errorf("expansions facing edge after TurnLeft = %s, expected R", got)
	}
}

func TestExpandForbidsRepeatedTurn(t *testing.T) {
	g := gridOf(t, "S..E")
	costs := DefaultCostModel()
	e := NewExpander(g, costs, DefaultPruning())

	turned := Root(g.Start(), core.DefaultHeading).Child(TurnRight, costs)
	if e.Allowed(turned, TurnRight) {
		t.Error("TurnRight allowed right after TurnRight")
	}
	if !e.Allowed(turned, TurnLeft) {
		t.Error("TurnLeft rejected after TurnRight")
	}

	moved := Root(g.Start(), core.DefaultHeading).Child(Move, costs)
	if !e.Allowed(moved, Move) {
		t.Error("Move rejected after Move")
	}

	lenient := NewExpander(g, costs, Pruning{MaxTurnRun: 3})
	if !lenient.Allowed(turned, TurnRight) {
		t.Error("TurnRight rejected with ForbidRepeatTurn off")
	}
}

func TestExpandLimitsTurnRuns(t *testing.T) {
	g := gridOf(t, "S..E")
	costs := DefaultCostModel()

	s := Root(g.Start(), core.DefaultHeading)
	for _, a := range []Action{TurnRight, TurnLeft, TurnRight} {
		s = s.Child(a, costs)
	}
	// Facing down after three alternating turns.

	tests := []struct {
		name    string
		pruning Pruning
		turn    bool
	}{
		{"default", DefaultPruning(), false},
		{"run of four", Pruning{MaxTurnRun: 4, ForbidRepeatTurn: true}, true},
		{"unlimited", Pruning{ForbidRepeatTurn: true}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := NewExpander(g, costs, tc.pruning)
			if got := e.Allowed(s, TurnLeft); got != tc.turn {
				t.Errorf("Allowed(TurnLeft) = %v, expected %v", got, tc.turn)
			}
		})
	}

	// A move resets the run.
	corridor := gridOf(t,
		"S..",
		"...",
		"..E",
	)
	e := NewExpander(corridor, costs, DefaultPruning())
	s = Root(corridor.Start(), core.DefaultHeading)
	for _, a := range []Action{TurnRight, TurnLeft, TurnRight, Move} {
		s = s.Child(a, costs)
	}
	if s.TrailingTurns() != 0 {
		t.Fatalf("TrailingTurns() = %d after a move", s.TrailingTurns())
	}
	if !e.Allowed(s, TurnLeft) {
		t.Error("turn rejected after a move reset the run")
	}
}
