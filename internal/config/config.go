// Package config provides YAML-based configuration loading for ghostmaze.
// A loaded GameConfig is validated once and then treated as immutable.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/ghostmaze/internal/maze"
)

var (
	// ErrBoardTooSmall is returned when the board cannot hold the spawn layout.
	ErrBoardTooSmall = errors.New("config: board too small")
	// ErrInvalidConfig is returned for any other out-of-range value.
	ErrInvalidConfig = errors.New("config: invalid value")
)

// GameConfig contains all configuration for a ghostmaze game.
type GameConfig struct {
	Board  BoardConfig  `yaml:"board"`
	Tokens TokenConfig  `yaml:"tokens"`
	Rules  RulesConfig  `yaml:"rules"`
	Timing TimingConfig `yaml:"timing"`
}

// BoardConfig defines the maze dimensions.
type BoardConfig struct {
	Width      int `yaml:"width"`
	Height     int `yaml:"height"`
	EmptySpace int `yaml:"empty_space"` // Distance between widened axes
}

// TokenConfig defines the points each token variant awards.
type TokenConfig struct {
	Blue   int `yaml:"blue"`
	Violet int `yaml:"violet"`
	Orange int `yaml:"orange"`
	Green  int `yaml:"green"`
}

// RulesConfig defines the game constants.
type RulesConfig struct {
	EventTimer      int `yaml:"event_timer"`       // Committed moves a power-up lasts
	InitialLives    int `yaml:"initial_lives"`     // Lives before bonuses and losses
	BonusLifeEvery  int `yaml:"bonus_life_every"`  // Score per extra life
	GhostTurnChance int `yaml:"ghost_turn_chance"` // A ghost turns at random with probability 1/N per tick
	Ghosts          int `yaml:"ghosts"`            // Must match the four corner spawns
}

// TimingConfig defines the host tick period.
type TimingConfig struct {
	TickMillis int `yaml:"tick_ms"`
}

// TickInterval returns the tick period as a duration.
func (t TimingConfig) TickInterval() time.Duration {
	return time.Duration(t.TickMillis) * time.Millisecond
}

// Validate checks that the configuration can build a playable game.
func (c GameConfig) Validate() error {
	if c.Board.Width < maze.MinDimension || c.Board.Height < maze.MinDimension {
		return fmt.Errorf("%w: %dx%d, need at least %dx%d", ErrBoardTooSmall,
			c.Board.Width, c.Board.Height, maze.MinDimension, maze.MinDimension)
	}

	checks := []struct {
		name  string
		value int
	}{
		{"board.empty_space", c.Board.EmptySpace},
		{"rules.event_timer", c.Rules.EventTimer},
		{"rules.initial_lives", c.Rules.InitialLives},
		{"rules.bonus_life_every", c.Rules.BonusLifeEvery},
		{"rules.ghost_turn_chance", c.Rules.GhostTurnChance},
		{"timing.tick_ms", c.Timing.TickMillis},
	}
	for _, chk := range checks {
		if chk.value <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %d", ErrInvalidConfig, chk.name, chk.value)
		}
	}

	if c.Rules.Ghosts != 4 {
		return fmt.Errorf("%w: rules.ghosts must be 4, got %d", ErrInvalidConfig, c.Rules.Ghosts)
	}
	for _, s := range []int{c.Tokens.Blue, c.Tokens.Violet, c.Tokens.Orange, c.Tokens.Green} {
		if s < 0 {
			return fmt.Errorf("%w: token scores must not be negative", ErrInvalidConfig)
		}
	}
	return nil
}
