// Package maze generates the tile layout of a ghostmaze board.
package maze

import (
	"strings"

	"github.com/vovakirdan/ghostmaze/internal/core"
)

// Tile is the static terrain kind of a cell.
type Tile uint8

const (
	Empty Tile = iota
	Wall
	Spawn
	GhostSpawn
)

func (t Tile) String() string {
	switch t {
	case Empty:
		return "Empty"
	case Wall:
		return "Wall"
	case Spawn:
		return "Spawn"
	case GhostSpawn:
		return "GhostSpawn"
	default:
		return "Unknown"
	}
}

// Walkable reports whether entities may stand on the tile.
func (t Tile) Walkable() bool {
	return t != Wall
}

// Glyph returns the ASCII character used by Grid.String.
func (t Tile) Glyph() rune {
	switch t {
	case Wall:
		return '#'
	case Spawn:
		return 'P'
	case GhostSpawn:
		return 'G'
	default:
		return '.'
	}
}

// Grid is a rectangular tile layout.
// Tiles are stored in row-major order: index = y*W + x.
type Grid struct {
	W     int
	H     int
	Tiles []Tile
}

// NewGrid creates a grid with every tile Empty.
func NewGrid(w, h int) *Grid {
	return &Grid{W: w, H: h, Tiles: make([]Tile, w*h)}
}

func (g *Grid) index(p core.Pos) int {
	return p.Y*g.W + p.X
}

// InBounds returns true if the position lies on the grid.
func (g *Grid) InBounds(p core.Pos) bool {
	return p.X >= 0 && p.X < g.W && p.Y >= 0 && p.Y < g.H
}

// At returns the tile at p. Off-grid positions read as Wall.
func (g *Grid) At(p core.Pos) Tile {
	if !g.InBounds(p) {
		return Wall
	}
	return g.Tiles[g.index(p)]
}

// Set changes the tile at p. Off-grid positions are ignored.
func (g *Grid) Set(p core.Pos, t Tile) {
	if g.InBounds(p) {
		g.Tiles[g.index(p)] = t
	}
}

// Center returns the middle cell, where the player spawns.
func (g *Grid) Center() core.Pos {
	return core.Pos{X: g.W / 2, Y: g.H / 2}
}

// Corners returns the four interior corner cells in row-major order.
func (g *Grid) Corners() [4]core.Pos {
	return [4]core.Pos{
		{X: 1, Y: 1},
		{X: g.W - 2, Y: 1},
		{X: 1, Y: g.H - 2},
		{X: g.W - 2, Y: g.H - 2},
	}
}

// Count returns the number of tiles of the given kind.
func (g *Grid) Count(t Tile) int {
	n := 0
	for _, x := range g.Tiles {
		if x == t {
			n++
		}
	}
	return n
}

// Positions returns every position holding the given tile, in row-major order.
func (g *Grid) Positions(t Tile) []core.Pos {
	var out []core.Pos
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			p := core.Pos{X: x, Y: y}
			if g.At(p) == t {
				out = append(out, p)
			}
		}
	}
	return out
}

// String renders the grid as rows of glyphs separated by newlines.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.W*g.H + g.H)
	for y := 0; y < g.H; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < g.W; x++ {
			sb.WriteRune(g.At(core.Pos{X: x, Y: y}).Glyph())
		}
	}
	return sb.String()
}
