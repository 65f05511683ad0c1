package search

import (
	"fmt"

	"github.com/vovakirdan/turnmaze/internal/core"
)

// Path is the action sequence of a winning state and its total cost.
type Path struct {
	Actions []Action
	Cost    int
	Start   core.Coord
	Heading core.Heading
}

// pathOf reconstructs the path ending at s.
func pathOf(s *State, start core.Coord, heading core.Heading) Path {
	return Path{
		Actions: s.Actions(),
		Cost:    s.Cost(),
		Start:   start,
		Heading: heading,
	}
}

// Steps returns the number of Move actions.
func (p Path) Steps() int {
	n := 0
	for _, a := range p.Actions {
		if a == Move {
			n++
		}
	}
	return n
}

// Turns returns the number of rotations.
func (p Path) Turns() int {
	return len(p.Actions) - p.Steps()
}

// Replay applies the actions from the path's start and calls visit with the
// state after each action.
func (p Path) Replay(visit func(pos core.Coord, heading core.Heading, a Action)) {
	pos, heading := p.Start, p.Heading
	for _, a := range p.Actions {
		switch a {
		case Move:
			pos = pos.Step(heading)
		case TurnRight:
			heading = heading.Clockwise()
		case TurnLeft:
			heading = heading.CounterClockwise()
		}
		visit(pos, heading, a)
	}
}

// End returns the final cell and heading.
func (p Path) End() (core.Coord, core.Heading) {
	pos, heading := p.Start, p.Heading
	p.Replay(func(c core.Coord, h core.Heading, _ Action) {
		pos, heading = c, h
	})
	return pos, heading
}

// Cells returns the traversed cells in order, starting with Start.
// Rotations do not add cells.
func (p Path) Cells() []core.Coord {
	cells := make([]core.Coord, 1, p.Steps()+1)
	cells[0] = p.Start
	p.Replay(func(c core.Coord, _ core.Heading, a Action) {
		if a == Move {
			cells = append(cells, c)
		}
	})
	return cells
}

// Fits reports whether replaying p on g starts at g's start facing
// core.DefaultHeading, stays on open cells and ends on g's goal.
func (p Path) Fits(g *core.Grid) bool {
	if p.Start != g.Start() || p.Heading != core.DefaultHeading {
		return false
	}
	ok := true
	p.Replay(func(c core.Coord, _ core.Heading, _ Action) {
		if !g.IsOpen(c) {
			ok = false
		}
	})
	end, _ := p.End()
	return ok && end == g.Goal()
}

// String returns "cost=N MMRMM".
func (p Path) String() string {
	return fmt.Sprintf("cost=%d %s", p.Cost, FormatActions(p.Actions))
}
