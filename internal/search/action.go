package search

import (
	"fmt"
	"strings"
)

// Action is an atomic move or rotation.
type Action uint8

const (
	Move Action = iota
	TurnRight
	TurnLeft
)

// candidateOrder is the fixed order in which actions are tried.
var candidateOrder = [...]Action{Move, TurnRight, TurnLeft}

// String returns the string representation of an action.
func (a Action) String() string {
	switch a {
	case Move:
		return "Move"
	case TurnRight:
		return "TurnRight"
	case TurnLeft:
		return "TurnLeft"
	default:
		return fmt.Sprintf("Action(%d)", uint8(a))
	}
}

// IsTurn reports whether the action rotates in place.
func (a Action) IsTurn() bool {
	return a == TurnRight || a == TurnLeft
}

// Code returns a one-letter code: M, R or L.
func (a Action) Code() byte {
	switch a {
	case Move:
		return 'M'
	case TurnRight:
		return 'R'
	case TurnLeft:
		return 'L'
	default:
		return '?'
	}
}

// FormatActions renders actions as a compact code string, e.g. "MMRMM".
func FormatActions(actions []Action) string {
	var sb strings.Builder
	sb.Grow(len(actions))
	for _, a := range actions {
		sb.WriteByte(a.Code())
	}
	return sb.String()
}

// ParseActions is the inverse of FormatActions.
func ParseActions(s string) ([]Action, error) {
	actions := make([]Action, 0, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case 'M':
			actions = append(actions, Move)
		case 'R':
			actions = append(actions, TurnRight)
		case 'L':
			actions = append(actions, TurnLeft)
		default:
			return nil, fmt.Errorf("search: invalid action code %q at %d", s[i], i)
		}
	}
	return actions, nil
}
