package engine

import (
	"github.com/vovakirdan/ghostmaze/internal/board"
	"github.com/vovakirdan/ghostmaze/internal/core"
	"github.com/vovakirdan/ghostmaze/internal/entity"
	"github.com/vovakirdan/ghostmaze/internal/maze"
)

// CellView is a read-only copy of one cell for rendering.
type CellView struct {
	Tile   maze.Tile
	Token  entity.Token
	Player bool
	Ghosts int
	Afraid bool // At least one ghost here is afraid
}

// Snapshot is a read-only copy of the whole game, safe to hand to another
// goroutine.
type Snapshot struct {
	Width, Height int
	Cells         []CellView

	PlayerPos       core.Pos
	PlayerState     entity.PlayerState
	PlayerDirection core.Direction

	Score           int
	Lives           int
	RemainingTokens int
	EventTimer      int
	Ticks           int
	Status          Status
	Reshuffled      bool
}

// At returns the view of the cell at p, wrapping around the edges.
func (s Snapshot) At(p core.Pos) CellView {
	x := core.Wrap(p.X, s.Width)
	y := core.Wrap(p.Y, s.Height)
	return s.Cells[y*s.Width+x]
}

// Snapshot copies the current board and derived statistics.
func (m *Manager) Snapshot() Snapshot {
	s := Snapshot{
		Width:           m.board.Width(),
		Height:          m.board.Height(),
		Cells:           make([]CellView, 0, m.board.Width()*m.board.Height()),
		PlayerPos:       m.playerPos,
		PlayerState:     m.roster.Player.State,
		PlayerDirection: m.roster.Player.Direction,
		Score:           m.score,
		Lives:           m.Lives(),
		RemainingTokens: m.tokensRemaining,
		EventTimer:      m.eventTimer,
		Ticks:           m.ticks,
		Status:          m.Status(),
		Reshuffled:      m.reshuffled,
	}

	m.board.Each(func(_ core.Pos, c *board.Cell) {
		v := CellView{
			Tile:   c.Tile(),
			Token:  c.Token(),
			Player: c.HasPlayer(),
			Ghosts: c.GhostCount(),
		}
		for _, id := range c.Ghosts() {
			if m.roster.Ghost(id).State == entity.GhostAfraid {
				v.Afraid = true
				break
			}
		}
		s.Cells = append(s.Cells, v)
	})
	return s
}
