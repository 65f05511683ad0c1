package config

import (
	"fmt"

	"github.com/vovakirdan/turnmaze/internal/search"
)

// Preset represents a named search behaviour.
type Preset string

const (
	// PresetDefault keeps the configured search settings.
	PresetDefault Preset = "default"
	// PresetParity reproduces the position-only visited key.
	PresetParity Preset = "parity"
	// PresetReverse allows repeated turns, so a 180° turn costs two turns.
	PresetReverse Preset = "reverse"
)

// Presets lists every known preset.
var Presets = []Preset{PresetDefault, PresetParity, PresetReverse}

// ParsePreset validates a preset name. The empty string means PresetDefault.
func ParsePreset(name string) (Preset, error) {
	if name == "" {
		return PresetDefault, nil
	}
	for _, p := range Presets {
		if string(p) == name {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown preset %q", name)
}

// ApplyPreset modifies the search config based on a preset.
func ApplyPreset(cfg *SearchConfig, preset Preset) {
	switch preset {
	case PresetParity:
		cfg.KeyMode = string(search.KeyPosition)
		cfg.ForbidRepeatTurn = true
		cfg.MaxTurnRun = 3
	case PresetReverse:
		cfg.KeyMode = string(search.KeyPositionHeading)
		cfg.ForbidRepeatTurn = false
	}
}
