// Package sim plays headless games with a random-walk bot and records each
// run in a storage journal.
package sim

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/ghostmaze/internal/config"
	"github.com/vovakirdan/ghostmaze/internal/engine"
	"github.com/vovakirdan/ghostmaze/internal/storage"
)

// Run outcomes stored in the journal.
const (
	OutcomeWon     = "won"
	OutcomeLost    = "lost"
	OutcomeTimeout = "timeout"
)

// DefaultMaxTicks caps a single game when Options.MaxTicks is zero.
const DefaultMaxTicks = 2000

// turnChance is the 1-in-n chance the bot changes heading at an open cell.
const turnChance = 6

// Options controls a batch of games.
type Options struct {
	Games    int
	MaxTicks int
	Seed     int64 // Seeds the first game; later games use Seed+i
	Variant  string
}

// Runner plays games against one configuration.
type Runner struct {
	cfg   config.GameConfig
	store *storage.Store
	log   *log.Logger
}

// NewRunner creates a runner. A nil logger discards output.
func NewRunner(cfg config.GameConfig, store *storage.Store, logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Runner{cfg: cfg, store: store, log: logger}
}

// RunAll plays opts.Games games and saves each one. It stops between games
// when ctx is done and returns the runs played so far with ctx's error.
func (r *Runner) RunAll(ctx context.Context, opts Options) ([]storage.Run, error) {
	if opts.Games <= 0 {
		return nil, fmt.Errorf("sim: games must be positive, got %d", opts.Games)
	}

	runs := make([]storage.Run, 0, opts.Games)
	for i := 0; i < opts.Games; i++ {
		if err := ctx.Err(); err != nil {
			return runs, err
		}

		run, err := r.Play(opts.Seed+int64(i), opts.MaxTicks)
		if err != nil {
			return runs, err
		}
		run.Variant = opts.Variant
		if run.Variant == "" {
			run.Variant = "ghostmaze"
		}

		if err := r.store.SaveRun(run); err != nil {
			return runs, err
		}
		r.log.Info("run finished", "game", i+1, "outcome", run.Outcome, "score", run.Score, "ticks", run.Ticks)
		runs = append(runs, run)
	}
	return runs, nil
}

// Play runs one game to completion or until maxTicks ticks have passed.
// The same seed always plays the same game.
func (r *Runner) Play(seed int64, maxTicks int) (storage.Run, error) {
	if maxTicks <= 0 {
		maxTicks = DefaultMaxTicks
	}

	mgr, err := engine.New(r.cfg, engine.WithSeed(seed), engine.WithLogger(r.log))
	if err != nil {
		return storage.Run{}, fmt.Errorf("sim: %w", err)
	}

	bot := newWalker(seed)
	boards := 1
	for mgr.Status() == engine.StatusPlaying && mgr.Ticks() < maxTicks {
		mgr.Tick(bot.next(mgr))
		if mgr.Reshuffled() {
			boards++
			mgr.AckReshuffle()
		}
	}

	return storage.Run{
		ID:         uuid.NewString(),
		Seed:       seed,
		Score:      mgr.Score(),
		Ticks:      mgr.Ticks(),
		Lives:      mgr.Lives(),
		TokensLeft: mgr.RemainingTokens(),
		Boards:     boards,
		Outcome:    outcome(mgr.Status()),
	}, nil
}

func outcome(s engine.Status) string {
	switch s {
	case engine.StatusWon:
		return OutcomeWon
	case engine.StatusLost:
		return OutcomeLost
	default:
		return OutcomeTimeout
	}
}
