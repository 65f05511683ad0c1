package search

import (
	"fmt"

	"github.com/vovakirdan/turnmaze/internal/core"
)

// Key identifies states that count as the same for deduplication.
type Key struct {
	Pos     core.Coord
	Heading core.Heading
	// Oriented is false when the projection ignores heading.
	Oriented bool
	// Turned is set by ByPositionHeadingTurn when the state was reached by
	// a rotation.
	Turned bool
}

// Projection reduces a state to its deduplication key.
type Projection func(*State) Key

// ByPositionHeadingTurn keys states on (cell, heading, reached by rotation).
// When repeated rotations are forbidden, a state reached by a rotation may
// only move on or rotate back, while a state reached by a move may rotate
// either way, so the two must be closed separately. This is the default.
func ByPositionHeadingTurn(s *State) Key {
	last, ok := s.Last()
	return Key{Pos: s.Pos, Heading: s.Heading, Oriented: true, Turned: ok && last.IsTurn()}
}

// ByPositionHeading keys states on (cell, heading). It finds optimal paths
// when Pruning.ForbidRepeatTurn is off; with it on, a cell-heading pair first
// reached by a rotation hides later arrivals that could still rotate.
func ByPositionHeading(s *State) Key {
	return Key{Pos: s.Pos, Heading: s.Heading, Oriented: true}
}

// ByPosition keys states on cell alone. Once any state at a cell has been
// expanded, every later arrival there is dropped whatever its heading, so
// rotations away from the start cell are never expanded. The search can then
// return a costlier path, or none, where the oriented projections find one.
func ByPosition(s *State) Key {
	return Key{Pos: s.Pos}
}

// KeyMode names a projection in configuration.
type KeyMode string

const (
	KeyPositionHeadingTurn KeyMode = "position-heading-turn"
	KeyPositionHeading     KeyMode = "position-heading"
	KeyPosition            KeyMode = "position"
)

// KeyModes lists the accepted modes, default first.
var KeyModes = []KeyMode{KeyPositionHeadingTurn, KeyPositionHeading, KeyPosition}

// Projection returns the projection for the mode. The empty mode selects
// the default.
func (m KeyMode) Projection() (Projection, error) {
	switch m {
	case KeyPositionHeadingTurn, "":
		return ByPositionHeadingTurn, nil
	case KeyPositionHeading:
		return ByPositionHeading, nil
	case KeyPosition:
		return ByPosition, nil
	default:
		return nil, fmt.Errorf("search: unknown key mode %q", string(m))
	}
}

// VisitedSet records the keys of states that have been closed.
type VisitedSet struct {
	project Projection
	seen    map[Key]struct{}
}

// NewVisitedSet creates an empty set using project. A nil projection means
// ByPositionHeadingTurn.
func NewVisitedSet(project Projection) *VisitedSet {
	if project == nil {
		project = ByPositionHeadingTurn
	}
	return &VisitedSet{
		project: project,
		seen:    make(map[Key]struct{}),
	}
}

// Insert adds the key of s and reports whether it was not already present.
func (v *VisitedSet) Insert(s *State) bool {
	k := v.project(s)
	if _, ok := v.seen[k]; ok {
		return false
	}
	v.seen[k] = struct{}{}
	return true
}

// Len returns the number of distinct keys.
func (v *VisitedSet) Len() int { return len(v.seen) }

// Cells returns every cell that appears in a key.
func (v *VisitedSet) Cells() map[core.Coord]bool {
	cells := make(map[core.Coord]bool, len(v.seen))
	for k := range v.seen {
		cells[k.Pos] = true
	}
	return cells
}
