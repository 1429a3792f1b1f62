// Package board models the toroidal playing field: a grid of cells that hold
// a tile kind and identifiers of the entities standing on them.
package board

import (
	"github.com/vovakirdan/ghostmaze/internal/core"
	"github.com/vovakirdan/ghostmaze/internal/entity"
	"github.com/vovakirdan/ghostmaze/internal/maze"
)

// Cell is one square of the board. Ghost identifiers leave in the order they
// arrived.
type Cell struct {
	tile   maze.Tile
	player bool
	ghosts []entity.GhostID
	token  entity.Token
}

// Tile returns the static terrain kind.
func (c *Cell) Tile() maze.Tile { return c.tile }

// HasPlayer reports whether the player stands here.
func (c *Cell) HasPlayer() bool { return c.player }

// SetPlayer places or removes the player.
func (c *Cell) SetPlayer(present bool) { c.player = present }

// Token returns the token lying here, or TokenNone.
func (c *Cell) Token() entity.Token { return c.token }

// SetToken places a token, replacing any previous one.
func (c *Cell) SetToken(t entity.Token) { c.token = t }

// TakeToken removes and returns the token lying here.
func (c *Cell) TakeToken() entity.Token {
	t := c.token
	c.token = entity.TokenNone
	return t
}

// HasGhosts reports whether at least one ghost stands here.
func (c *Cell) HasGhosts() bool { return len(c.ghosts) > 0 }

// GhostCount returns how many ghosts stand here.
func (c *Cell) GhostCount() int { return len(c.ghosts) }

// Ghosts returns the ghost identifiers in arrival order. The slice is shared.
func (c *Cell) Ghosts() []entity.GhostID { return c.ghosts }

// PushGhost appends a ghost to the back of the queue.
func (c *Cell) PushGhost(id entity.GhostID) {
	c.ghosts = append(c.ghosts, id)
}

// PopGhost removes the ghost at the front of the queue.
func (c *Cell) PopGhost() (entity.GhostID, bool) {
	if len(c.ghosts) == 0 {
		return 0, false
	}
	id := c.ghosts[0]
	c.ghosts = c.ghosts[1:]
	if len(c.ghosts) == 0 {
		c.ghosts = nil
	}
	return id, true
}

// Board is the grid of cells. Every coordinate computation wraps around,
// so the field is a torus.
type Board struct {
	w, h  int
	cells []Cell
}

// New creates a board with the tiles of g and no occupants.
func New(g *maze.Grid) *Board {
	b := &Board{w: g.W, h: g.H, cells: make([]Cell, len(g.Tiles))}
	for i, t := range g.Tiles {
		b.cells[i].tile = t
	}
	return b
}

// Width returns the number of columns.
func (b *Board) Width() int { return b.w }

// Height returns the number of rows.
func (b *Board) Height() int { return b.h }

// Center returns the middle cell, which is the player spawn and the jail.
func (b *Board) Center() core.Pos {
	return core.Pos{X: b.w / 2, Y: b.h / 2}
}

// Wrap maps any position onto the board.
func (b *Board) Wrap(p core.Pos) core.Pos {
	return core.Pos{X: core.Wrap(p.X, b.w), Y: core.Wrap(p.Y, b.h)}
}

// Step returns the cell one step from p in dir, wrapping around the edges.
// Non-moving directions return p.
func (b *Board) Step(p core.Pos, dir core.Direction) core.Pos {
	return b.Wrap(p.Add(dir.Delta()))
}

// Cell returns the cell at p after wrapping.
func (b *Board) Cell(p core.Pos) *Cell {
	p = b.Wrap(p)
	return &b.cells[p.Y*b.w+p.X]
}

// Walkable reports whether the cell at p is not a wall.
func (b *Board) Walkable(p core.Pos) bool {
	return b.Cell(p).tile.Walkable()
}

// MovePlayer relocates the player flag from one cell to another.
func (b *Board) MovePlayer(from, to core.Pos) {
	b.Cell(from).SetPlayer(false)
	b.Cell(to).SetPlayer(true)
}

// Each calls fn for every cell in row-major order.
func (b *Board) Each(fn func(p core.Pos, c *Cell)) {
	for y := 0; y < b.h; y++ {
		for x := 0; x < b.w; x++ {
			fn(core.Pos{X: x, Y: y}, &b.cells[y*b.w+x])
		}
	}
}

// TokenCount returns the number of tokens lying on the board.
func (b *Board) TokenCount() int {
	n := 0
	for i := range b.cells {
		if b.cells[i].token != entity.TokenNone {
			n++
		}
	}
	return n
}

// GhostCount returns the number of ghosts standing on the board.
func (b *Board) GhostCount() int {
	n := 0
	for i := range b.cells {
		n += len(b.cells[i].ghosts)
	}
	return n
}

// PlayerCount returns the number of cells holding the player.
func (b *Board) PlayerCount() int {
	n := 0
	for i := range b.cells {
		if b.cells[i].player {
			n++
		}
	}
	return n
}
