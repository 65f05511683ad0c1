package storage

import (
	"fmt"

	"github.com/vovakirdan/turnmaze/internal/search"
)

// Settings are the search parameters a run was made under. Costs of two
// runs are only compared when their settings are equal.
type Settings struct {
	KeyMode          string
	MoveCost         int
	TurnCost         int
	MaxTurnRun       int
	ForbidRepeatTurn bool
}

// SettingsOf describes a search configured with the given key mode, costs
// and pruning. An empty key mode is recorded as the default mode.
func SettingsOf(keyMode string, costs search.CostModel, p search.Pruning) Settings {
	if keyMode == "" {
		keyMode = string(search.KeyModes[0])
	}
	return Settings{
		KeyMode:          keyMode,
		MoveCost:         costs.Move,
		TurnCost:         costs.Turn,
		MaxTurnRun:       p.MaxTurnRun,
		ForbidRepeatTurn: p.ForbidRepeatTurn,
	}
}

// DefaultSettings describes a search run with default options.
func DefaultSettings() Settings {
	return SettingsOf("", search.DefaultCostModel(), search.DefaultPruning())
}

// String returns the fingerprint stored alongside each run, e.g.
// "position-heading-turn move=1 turn=1000 run=3 repeat=no".
func (s Settings) String() string {
	repeat := "yes"
	if s.ForbidRepeatTurn {
		repeat = "no"
	}
	return fmt.Sprintf("%s move=%d turn=%d run=%d repeat=%s", s.KeyMode, s.MoveCost, s.TurnCost, s.MaxTurnRun, repeat)
}
