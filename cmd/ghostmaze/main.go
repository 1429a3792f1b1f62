// ghostmaze is a terminal maze chase: eat every token on a wrapping board
// while ghosts roam the corridors.
//
// Usage:
//
//	ghostmaze list               - List game variants
//	ghostmaze play [variant]     - Play (default: ghostmaze)
//	ghostmaze maze               - Print a generated maze
//	ghostmaze sim                - Run headless bot games and summarize them
//
// Global flags:
//
//	--seed <value>      - RNG seed for reproducible games (0 = time based)
//	--config <path>     - Rules YAML (default search: ~/.ghostmaze/configs, ./configs)
//	--env-file <path>   - .env file with GHOSTMAZE_* overrides (default: ./.env if present)
//	--log-level <lvl>   - debug, info, warn or error
//	--log-file <path>   - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/ghostmaze/internal/config"
	// Import games to register them
	_ "github.com/vovakirdan/ghostmaze/internal/games/ghostmaze"
)

var (
	// Global flags
	flagSeed     int64
	flagConfig   string
	flagEnvFile  string
	flagLogLevel string
	flagLogFile  string

	// Set up by the root command before any subcommand runs.
	gameCfg config.GameConfig
	logFile *os.File
)

func main() {
	err := rootCmd.Execute()
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "ghostmaze",
	Short: "Ghostmaze - a maze chase in your terminal",
	Long: `Ghostmaze is a terminal maze chase on a board whose edges wrap around.
Collect every token while four ghosts wander the corridors.

Available commands:
  list  - Show game variants
  play  - Play a variant
  maze  - Print a generated maze
  sim   - Run headless bot games

Examples:
  ghostmaze play
  ghostmaze play ghostmaze_large --seed 42
  ghostmaze maze --width 31 --height 15
  ghostmaze sim --games 50`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a rules YAML file")
	rootCmd.PersistentFlags().StringVar(&flagEnvFile, "env-file", "", "Path to a .env file with GHOSTMAZE_* overrides")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(mazeCmd)
	rootCmd.AddCommand(simCmd)
}

// setup loads the .env file and the rules configuration.
func setup(cmd *cobra.Command, args []string) error {
	if err := config.LoadEnvFile(flagEnvFile); err != nil {
		return err
	}
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	gameCfg = cfg
	return nil
}

// newLogger builds the command logger. Logs go to --log-file when set and
// to fallback otherwise.
func newLogger(fallback io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	w := fallback
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		logFile = f
		w = f
	}

	return log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
		Prefix:          "ghostmaze",
	}), nil
}
