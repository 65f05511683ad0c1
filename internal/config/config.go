// Package config provides YAML-based configuration loading for turnmaze.
package config

import (
	"fmt"

	"github.com/vovakirdan/turnmaze/internal/search"
)

// Config contains all configuration for turnmaze.
type Config struct {
	Search  SearchConfig  `yaml:"search"`
	Storage StorageConfig `yaml:"storage"`
	Log     LogConfig     `yaml:"log"`
	Watch   WatchConfig   `yaml:"watch"`
	Server  ServerConfig  `yaml:"server"`
}

// SearchConfig defines cost weights and pruning for the search engine.
type SearchConfig struct {
	MoveCost         int    `yaml:"move_cost"`
	TurnCost         int    `yaml:"turn_cost"`
	KeyMode          string `yaml:"key_mode"` // "position-heading-turn", "position-heading" or "position"
	MaxTurnRun       int    `yaml:"max_turn_run"`
	ForbidRepeatTurn bool   `yaml:"forbid_repeat_turn"`
	MaxExpansions    int    `yaml:"max_expansions"` // 0 = unlimited
}

// StorageConfig defines where solve history is kept.
type StorageConfig struct {
	DBPath string `yaml:"db_path"`
}

// LogConfig defines logging output.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// WatchConfig defines the visualiser pacing.
type WatchConfig struct {
	TickRate int `yaml:"tick_rate"` // search steps per second
}

// ServerConfig defines the SSH visualiser server.
type ServerConfig struct {
	Address            string `yaml:"address"`
	HostKeyPath        string `yaml:"host_key_path"`
	IdleTimeoutMinutes int    `yaml:"idle_timeout_minutes"`
	Maze               string `yaml:"maze"`
}

// Costs returns the configured cost model.
func (c SearchConfig) Costs() search.CostModel {
	return search.CostModel{Move: c.MoveCost, Turn: c.TurnCost}
}

// Pruning returns the configured pruning policy.
func (c SearchConfig) Pruning() search.Pruning {
	return search.Pruning{MaxTurnRun: c.MaxTurnRun, ForbidRepeatTurn: c.ForbidRepeatTurn}
}

// Options converts the section into search options.
func (c SearchConfig) Options() ([]search.Option, error) {
	costs := c.Costs()
	if err := costs.Validate(); err != nil {
		return nil, fmt.Errorf("search config: %w", err)
	}
	if c.MaxTurnRun < 0 {
		return nil, fmt.Errorf("search config: max_turn_run must not be negative, got %d", c.MaxTurnRun)
	}
	project, err := search.KeyMode(c.KeyMode).Projection()
	if err != nil {
		return nil, fmt.Errorf("search config: %w", err)
	}

	return []search.Option{
		search.WithCosts(costs),
		search.WithPruning(c.Pruning()),
		search.WithProjection(project),
		search.WithMaxExpansions(c.MaxExpansions),
	}, nil
}
