// Package engine runs the ghostmaze turn loop. A Manager owns the board and
// every entity and advances them one tick at a time on a single goroutine.
package engine

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/ghostmaze/internal/board"
	"github.com/vovakirdan/ghostmaze/internal/config"
	"github.com/vovakirdan/ghostmaze/internal/core"
	"github.com/vovakirdan/ghostmaze/internal/entity"
)

// Rand is the randomness the engine consumes. *rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
	Shuffle(n int, swap func(i, j int))
}

// Status tells whether a game is still running.
type Status uint8

const (
	StatusPlaying Status = iota
	StatusWon
	StatusLost
)

func (s Status) String() string {
	switch s {
	case StatusPlaying:
		return "Playing"
	case StatusWon:
		return "Won"
	case StatusLost:
		return "Lost"
	default:
		return "Unknown"
	}
}

// Option customizes a Manager.
type Option func(*Manager)

// WithRand sets the random source. It takes precedence over WithSeed.
func WithRand(r Rand) Option {
	return func(m *Manager) { m.rng = r }
}

// WithSeed seeds a private math/rand source.
func WithSeed(seed int64) Option {
	return func(m *Manager) {
		m.seed = seed
		m.seeded = true
	}
}

// WithLogger sets the logger used for game events.
func WithLogger(l *log.Logger) Option {
	return func(m *Manager) { m.log = l }
}

// Manager is the turn engine. It is not safe for concurrent use; hosts
// forward input through an Intent.
type Manager struct {
	cfg    config.GameConfig
	rng    Rand
	seed   int64
	seeded bool
	log    *log.Logger

	board     *board.Board
	roster    *entity.Roster
	playerPos core.Pos

	eventTimer      int
	score           int
	lostLives       int
	tokensRemaining int
	reshuffled      bool
	ticks           int
}

// New validates cfg, generates the first board and places every entity.
func New(cfg config.GameConfig, opts ...Option) (*Manager, error) {
	m, err := newManager(cfg, opts)
	if err != nil {
		return nil, err
	}

	b, roster, pos, err := m.build(0)
	if err != nil {
		return nil, err
	}
	m.install(b, roster, pos)
	m.tokensRemaining = b.TokenCount()

	m.log.Debug("game started", "width", b.Width(), "height", b.Height(), "tokens", m.tokensRemaining)
	return m, nil
}

func newManager(cfg config.GameConfig, opts []Option) (*Manager, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("engine: %w", err)
	}

	m := &Manager{cfg: cfg}
	for _, opt := range opts {
		opt(m)
	}
	if m.rng == nil {
		if !m.seeded {
			m.seed = time.Now().UnixNano()
		}
		m.rng = rand.New(rand.NewSource(m.seed))
	}
	if m.log == nil {
		m.log = log.New(io.Discard)
	}
	return m, nil
}

func (m *Manager) install(b *board.Board, roster *entity.Roster, playerPos core.Pos) {
	m.board = b
	m.roster = roster
	m.playerPos = playerPos
}

// Tick advances the game by one step: every ghost moves, then the player
// tries to move in dir. DirNone is treated as DirStill. A finished game
// ignores ticks.
func (m *Manager) Tick(dir core.Direction) {
	if m.Status() != StatusPlaying {
		return
	}
	m.ticks++
	m.moveGhosts()
	m.movePlayer(dir)
}

// Config returns the configuration the game was built with.
func (m *Manager) Config() config.GameConfig { return m.cfg }

// Score returns the points collected so far.
func (m *Manager) Score() int { return m.score }

// LostLives returns how many ghost collisions cost a life.
func (m *Manager) LostLives() int { return m.lostLives }

// Lives returns initial lives plus one per bonus threshold minus lost lives.
func (m *Manager) Lives() int {
	return m.cfg.Rules.InitialLives + m.score/m.cfg.Rules.BonusLifeEvery - m.lostLives
}

// RemainingTokens returns how many tokens are left to collect.
func (m *Manager) RemainingTokens() int { return m.tokensRemaining }

// EventTimer returns the committed moves left on the active power-up.
func (m *Manager) EventTimer() int { return m.eventTimer }

// Ticks returns how many ticks have run.
func (m *Manager) Ticks() int { return m.ticks }

// Player returns a copy of the player entity.
func (m *Manager) Player() entity.Player { return m.roster.Player }

// PlayerPos returns the cell the player stands on.
func (m *Manager) PlayerPos() core.Pos { return m.playerPos }

// Ghost returns a copy of the ghost with the given id.
func (m *Manager) Ghost(id entity.GhostID) entity.Ghost { return *m.roster.Ghost(id) }

// Reshuffled reports whether the board was replaced since the last
// AckReshuffle.
func (m *Manager) Reshuffled() bool { return m.reshuffled }

// AckReshuffle clears the reshuffle flag once the host has redrawn.
func (m *Manager) AckReshuffle() { m.reshuffled = false }

// Status reports whether the game is running, won or lost.
func (m *Manager) Status() Status {
	switch {
	case m.tokensRemaining <= 0:
		return StatusWon
	case m.Lives() <= 0:
		return StatusLost
	default:
		return StatusPlaying
	}
}

// CanMove reports whether the player could step in dir right now.
// Non-moving directions are always allowed.
func (m *Manager) CanMove(dir core.Direction) bool {
	if !dir.Moving() {
		return true
	}
	return m.board.Walkable(m.board.Step(m.playerPos, dir))
}
