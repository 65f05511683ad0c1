package config

import (
	_ "embed"

	"github.com/vovakirdan/turnmaze/internal/search"
)

//go:embed defaults/turnmaze.yaml
var defaultYAML []byte

// Default returns the hardcoded default configuration.
func Default() Config {
	return Config{
		Search: SearchConfig{
			MoveCost:         search.DefaultMoveCost,
			TurnCost:         search.DefaultTurnCost,
			KeyMode:          string(search.KeyPositionHeadingTurn),
			MaxTurnRun:       3,
			ForbidRepeatTurn: true,
		},
		Storage: StorageConfig{
			DBPath: "~/.turnmaze/runs.db",
		},
		Log: LogConfig{
			Level: "info",
		},
		Watch: WatchConfig{
			TickRate: 30,
		},
		Server: ServerConfig{
			Address:            "localhost:2323",
			HostKeyPath:        ".ssh/turnmaze_ed25519",
			IdleTimeoutMinutes: 30,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
