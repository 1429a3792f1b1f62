package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/ghostmaze/internal/core"
	"github.com/vovakirdan/ghostmaze/internal/platform/tui"
	"github.com/vovakirdan/ghostmaze/internal/registry"
)

const defaultVariant = "ghostmaze"

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a game",
	Long: `Start playing. The variant defaults to "ghostmaze" (21x21);
"ghostmaze_large" plays on a 31x31 board.

Controls:
  Arrows/WASD/HJKL  - Steer
  P/Esc             - Pause
  R                 - Restart (after game over)
  Q/Ctrl+C          - Quit

Examples:
  ghostmaze play
  ghostmaze play ghostmaze_large
  ghostmaze play --seed 7 --log-file ghostmaze.log --log-level debug`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := defaultVariant
	if len(args) == 1 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown variant %q, run 'ghostmaze list' to see them", gameID)
	}

	// The alternate screen owns the terminal, so logs only go to --log-file.
	logger, err := newLogger(io.Discard)
	if err != nil {
		return err
	}

	game, err := registry.CreateConfigured(gameID, gameCfg, logger)
	if err != nil {
		return err
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := runtimeConfig(width, height)
	logger.Info("starting", "variant", gameID, "seed", cfg.Seed, "tick", cfg.TickInterval)

	return tui.Run(game, cfg, logger)
}

// runtimeConfig sizes the screen and takes the tick period from the rules.
func runtimeConfig(width, height int) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:      width,
		ScreenH:      height,
		TickInterval: gameCfg.Timing.TickInterval(),
		Seed:         flagSeed,
	}
}
