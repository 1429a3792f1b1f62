package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables that override the loaded configuration.
const (
	EnvBoardWidth   = "GHOSTMAZE_BOARD_WIDTH"
	EnvBoardHeight  = "GHOSTMAZE_BOARD_HEIGHT"
	EnvEventTimer   = "GHOSTMAZE_EVENT_TIMER"
	EnvInitialLives = "GHOSTMAZE_INITIAL_LIVES"
	EnvTickMillis   = "GHOSTMAZE_TICK_MS"
)

// LoadEnvFile loads variables from a .env file into the process environment.
// An empty path means ".env" in the working directory, which may be absent.
// Variables already set in the environment are not overwritten.
func LoadEnvFile(path string) error {
	optional := path == ""
	if optional {
		path = ".env"
	}
	if err := godotenv.Load(path); err != nil {
		if optional && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("config: load env file %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overrides cfg with any GHOSTMAZE_* variables that are set.
func ApplyEnv(cfg *GameConfig) error {
	overrides := []struct {
		key string
		dst *int
	}{
		{EnvBoardWidth, &cfg.Board.Width},
		{EnvBoardHeight, &cfg.Board.Height},
		{EnvEventTimer, &cfg.Rules.EventTimer},
		{EnvInitialLives, &cfg.Rules.InitialLives},
		{EnvTickMillis, &cfg.Timing.TickMillis},
	}

	for _, o := range overrides {
		raw, ok := os.LookupEnv(o.key)
		if !ok || raw == "" {
			continue
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("%w: %s must be an integer: %v", ErrInvalidConfig, o.key, err)
		}
		*o.dst = v
	}
	return nil
}
