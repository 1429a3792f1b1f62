package engine

import (
	"fmt"

	"github.com/vovakirdan/ghostmaze/internal/board"
	"github.com/vovakirdan/ghostmaze/internal/core"
	"github.com/vovakirdan/ghostmaze/internal/entity"
	"github.com/vovakirdan/ghostmaze/internal/maze"
)

// maxBuildAttempts bounds the search for a board holding enough tokens.
const maxBuildAttempts = 8

// build generates a populated board with at least minTokens tokens when
// possible. After maxBuildAttempts it settles for the richest board seen.
func (m *Manager) build(minTokens int) (*board.Board, *entity.Roster, core.Pos, error) {
	params := maze.Params{
		Width:      m.cfg.Board.Width,
		Height:     m.cfg.Board.Height,
		EmptySpace: m.cfg.Board.EmptySpace,
	}

	var (
		best       *board.Board
		bestRoster *entity.Roster
		bestPos    core.Pos
	)
	for attempt := 0; attempt < maxBuildAttempts; attempt++ {
		grid, err := maze.Generate(params, m.rng)
		if err != nil {
			return nil, nil, core.Pos{}, fmt.Errorf("engine: generate board: %w", err)
		}

		b := board.New(grid)
		roster, pos := m.populate(b, grid)
		if best == nil || b.TokenCount() > best.TokenCount() {
			best, bestRoster, bestPos = b, roster, pos
		}
		if b.TokenCount() >= minTokens {
			return b, roster, pos, nil
		}
	}
	return best, bestRoster, bestPos, nil
}

// populate places the player on the spawn, one ghost per ghost spawn in
// row-major order and a random token on every Empty cell.
func (m *Manager) populate(b *board.Board, grid *maze.Grid) (*entity.Roster, core.Pos) {
	spawns := grid.Positions(maze.GhostSpawn)
	roster := entity.NewRoster(len(spawns))
	for i, p := range spawns {
		b.Cell(p).PushGhost(roster.Ghosts[i].ID)
	}

	pos := grid.Center()
	b.Cell(pos).SetPlayer(true)

	b.Each(func(_ core.Pos, c *board.Cell) {
		if c.Tile() == maze.Empty {
			c.SetToken(entity.RandomToken(m.rng))
		}
	})
	return roster, pos
}

// reshuffle replaces the board and every entity, keeping the score, lost
// lives and the number of tokens left to collect.
func (m *Manager) reshuffle() {
	b, roster, pos, err := m.build(m.tokensRemaining)
	if err != nil {
		// The config was validated in New, so generation cannot fail here.
		m.log.Error("reshuffle failed, keeping the current board", "err", err)
		return
	}

	m.stripTokens(b, m.tokensRemaining)
	if n := b.TokenCount(); n < m.tokensRemaining {
		m.log.Warn("fresh board holds fewer tokens than remain", "have", n, "want", m.tokensRemaining)
		m.tokensRemaining = n
	}

	m.install(b, roster, pos)
	m.eventTimer = 0
	m.reshuffled = true
	m.log.Debug("board reshuffled", "tokens", m.tokensRemaining, "score", m.score)
}

// stripTokens removes randomly chosen tokens until keep remain.
func (m *Manager) stripTokens(b *board.Board, keep int) {
	var withToken []*board.Cell
	b.Each(func(_ core.Pos, c *board.Cell) {
		if c.Token() != entity.TokenNone {
			withToken = append(withToken, c)
		}
	})

	excess := len(withToken) - keep
	if excess <= 0 {
		return
	}
	m.rng.Shuffle(len(withToken), func(i, j int) { withToken[i], withToken[j] = withToken[j], withToken[i] })
	for _, c := range withToken[:excess] {
		c.TakeToken()
	}
}
