// Package ghostmaze adapts the turn engine to the arcade game interface:
// it turns input actions into direction intents, drives one engine tick per
// step and draws the board into a core.Screen.
package ghostmaze

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/ghostmaze/internal/config"
	"github.com/vovakirdan/ghostmaze/internal/core"
	"github.com/vovakirdan/ghostmaze/internal/engine"
	"github.com/vovakirdan/ghostmaze/internal/registry"
)

// Variant selects the board size.
type Variant string

const (
	VariantClassic Variant = "classic"
	VariantLarge   Variant = "large"
)

// LargeSize is the board width and height of the large variant.
const LargeSize = 31

// Game implements registry.Game on top of engine.Manager.
type Game struct {
	variant Variant
	cfg     config.GameConfig
	logger  *log.Logger
	rng     *rand.Rand // Seeds restarts

	mgr    *engine.Manager
	intent engine.Intent
	err    error

	boards  int // Boards played, counting the first
	paused  bool
	screenW int
	screenH int
}

// New creates a classic 21x21 game.
func New() *Game {
	return newVariant(VariantClassic)
}

// NewLarge creates a game on a 31x31 board.
func NewLarge() *Game {
	return newVariant(VariantLarge)
}

func newVariant(v Variant) *Game {
	g := &Game{variant: v, logger: log.New(io.Discard)}
	g.Configure(config.DefaultGameConfig(), nil)
	return g
}

func init() {
	registry.Register("ghostmaze", func() registry.Game {
		return New()
	})
	registry.Register("ghostmaze_large", func() registry.Game {
		return NewLarge()
	})
}

// Configure sets the game configuration and logger used by the next Reset.
// The large variant overrides the board size. A nil logger keeps the
// current one.
func (g *Game) Configure(cfg config.GameConfig, logger *log.Logger) {
	if g.variant == VariantLarge {
		cfg.Board.Width = LargeSize
		cfg.Board.Height = LargeSize
	}
	g.cfg = cfg
	if logger != nil {
		g.logger = logger
	}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.variant == VariantLarge {
		return "ghostmaze_large"
	}
	return "ghostmaze"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.variant == VariantLarge {
		return "Ghostmaze (Large)"
	}
	return "Ghostmaze"
}

// Reset builds a fresh game from the configured rules.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.screenW = rc.ScreenW
	g.screenH = rc.ScreenH
	g.paused = false
	g.boards = 1
	g.intent.Take()

	g.mgr, g.err = engine.New(g.cfg, engine.WithSeed(rc.Seed), engine.WithLogger(g.logger))
	if g.err != nil {
		g.logger.Error("cannot start game", "err", g.err)
		return
	}
	g.logger.Info("game reset", "id", g.ID(), "seed", rc.Seed)
}

// Intent exposes the direction buffer so input can arrive from any goroutine.
func (g *Game) Intent() *engine.Intent {
	return &g.intent
}

// Step advances the game by one engine tick. Without a new request the
// player keeps its current heading.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.mgr == nil {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionRestart) && g.over() {
		g.Reset(core.RuntimeConfig{
			Seed:    g.rng.Int63(),
			ScreenW: g.screenW,
			ScreenH: g.screenH,
		})
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.over() {
		g.paused = !g.paused
		return core.StepResult{State: g.State()}
	}
	if g.paused || g.over() {
		return core.StepResult{State: g.State()}
	}

	if d := in.LastDirection(); d != core.DirNone {
		g.intent.Set(d)
	}
	dir := g.intent.Take()
	if dir == core.DirNone {
		dir = g.mgr.Player().Direction
	}
	g.mgr.Tick(dir)

	if g.mgr.Reshuffled() {
		g.boards++
		g.mgr.AckReshuffle()
		g.logger.Info("new board", "board", g.boards, "tokens", g.mgr.RemainingTokens())
	}
	if g.over() {
		g.logger.Info("game over", "status", g.mgr.Status(), "score", g.mgr.Score(), "ticks", g.mgr.Ticks())
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) over() bool {
	return g.mgr != nil && g.mgr.Status() != engine.StatusPlaying
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.mgr == nil {
		return core.GameState{GameOver: true}
	}
	return core.GameState{
		Score:    g.mgr.Score(),
		GameOver: g.over(),
		Won:      g.mgr.Status() == engine.StatusWon,
		Paused:   g.paused,
	}
}

// Snapshot returns the engine snapshot, or false before a successful Reset.
func (g *Game) Snapshot() (engine.Snapshot, bool) {
	if g.mgr == nil {
		return engine.Snapshot{}, false
	}
	return g.mgr.Snapshot(), true
}

// Boards returns how many boards have been played in this game.
func (g *Game) Boards() int {
	return g.boards
}
