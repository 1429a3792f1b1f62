package maze

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/ghostmaze/internal/core"
)

// MinDimension is the smallest width or height that leaves room for four
// distinct corner spawns around a separate center cell.
const MinDimension = 5

// DefaultEmptySpace is the distance between the widened axes.
const DefaultEmptySpace = 5

// ErrTooSmall is returned when the requested grid cannot hold the spawns.
var ErrTooSmall = errors.New("maze: dimensions too small")

// Rand is the randomness the generator consumes. *rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
	Shuffle(n int, swap func(i, j int))
}

// Params configures maze generation.
type Params struct {
	Width      int
	Height     int
	EmptySpace int // Distance between widened axes; <= 0 uses DefaultEmptySpace
}

// Generate builds a maze grid:
//  1. randomized depth-first carving of walls from (0,0)
//  2. a wall frame around the border
//  3. full rows and columns opened every EmptySpace cells from the middle
//  4. every patch but the largest walled off
//  5. corridors from the four interior corners, which become ghost spawns,
//     with the center as the player spawn
func Generate(p Params, rng Rand) (*Grid, error) {
	if p.Width < MinDimension || p.Height < MinDimension {
		return nil, fmt.Errorf("%w: %dx%d, need at least %dx%d",
			ErrTooSmall, p.Width, p.Height, MinDimension, MinDimension)
	}
	if p.EmptySpace <= 0 {
		p.EmptySpace = DefaultEmptySpace
	}

	g := NewGrid(p.Width, p.Height)
	carve(g, rng)
	frame(g)
	widen(g, p.EmptySpace)
	connect(g)
	placeSpawns(g)
	return g, nil
}

// carve runs a stack-based randomized DFS. A node turns into Wall when fewer
// than three of its eight neighbours are already Wall; its on-grid cardinal
// neighbours are then pushed in random order.
func carve(g *Grid, rng Rand) {
	stack := []core.Pos{{X: 0, Y: 0}}
	var next [4]core.Pos

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if g.At(p) == Wall || wallNeighbours(g, p) >= 3 {
			continue
		}
		g.Set(p, Wall)

		n := 0
		for _, d := range core.Cardinals {
			q := p.Add(d.Delta())
			if g.InBounds(q) {
				next[n] = q
				n++
			}
		}
		rng.Shuffle(n, func(i, j int) { next[i], next[j] = next[j], next[i] })
		stack = append(stack, next[:n]...)
	}
}

// wallNeighbours counts Wall tiles among the on-grid 8-neighbourhood of p.
func wallNeighbours(g *Grid, p core.Pos) int {
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			q := p.Add(dx, dy)
			if g.InBounds(q) && g.At(q) == Wall {
				n++
			}
		}
	}
	return n
}

func frame(g *Grid) {
	for x := 0; x < g.W; x++ {
		g.Set(core.Pos{X: x, Y: 0}, Wall)
		g.Set(core.Pos{X: x, Y: g.H - 1}, Wall)
	}
	for y := 0; y < g.H; y++ {
		g.Set(core.Pos{X: 0, Y: y}, Wall)
		g.Set(core.Pos{X: g.W - 1, Y: y}, Wall)
	}
}

// widen clears whole columns and rows at the middle and every step cells
// away from it, border included, which opens the wraparound tunnels.
func widen(g *Grid, step int) {
	mid := g.Center()

	for l := 0; l < mid.X; l += step {
		for y := 0; y < g.H; y++ {
			g.Set(core.Pos{X: mid.X + l, Y: y}, Empty)
			g.Set(core.Pos{X: mid.X - l, Y: y}, Empty)
		}
	}
	for l := 0; l < mid.Y; l += step {
		for x := 0; x < g.W; x++ {
			g.Set(core.Pos{X: x, Y: mid.Y + l}, Empty)
			g.Set(core.Pos{X: x, Y: mid.Y - l}, Empty)
		}
	}
}

// connect keeps the largest patch and walls off the rest. On a tie the
// patch holding the center wins.
func connect(g *Grid) {
	patches := Patches(g)
	if len(patches) <= 1 {
		return
	}

	center := g.Center()
	main := 0
	for i := 1; i < len(patches); i++ {
		switch {
		case len(patches[i]) > len(patches[main]):
			main = i
		case len(patches[i]) == len(patches[main]) && patches[i].Contains(center):
			main = i
		}
	}

	for i, patch := range patches {
		if i == main {
			continue
		}
		for _, p := range patch {
			g.Set(p, Wall)
		}
	}
}

// placeSpawns carves straight corridors from each interior corner along its
// row and its column until an Empty cell is reached, then marks the corners
// as ghost spawns and the center as the player spawn.
func placeSpawns(g *Grid) {
	left, right := 1, g.W-2
	top, bottom := 1, g.H-2

	corridor(g, core.Pos{X: left, Y: top}, core.DirRight)
	corridor(g, core.Pos{X: right, Y: top}, core.DirLeft)
	corridor(g, core.Pos{X: left, Y: bottom}, core.DirRight)
	corridor(g, core.Pos{X: right, Y: bottom}, core.DirLeft)

	corridor(g, core.Pos{X: left, Y: top}, core.DirDown)
	corridor(g, core.Pos{X: right, Y: top}, core.DirDown)
	corridor(g, core.Pos{X: left, Y: bottom}, core.DirUp)
	corridor(g, core.Pos{X: right, Y: bottom}, core.DirUp)

	for _, c := range g.Corners() {
		g.Set(c, GhostSpawn)
	}
	g.Set(g.Center(), Spawn)
}

// corridor walks from start in dir inside the frame, turning Wall into Empty
// until it meets a cell that was already Empty.
func corridor(g *Grid, start core.Pos, dir core.Direction) {
	dx, dy := dir.Delta()
	for p := start; p.X >= 1 && p.X <= g.W-2 && p.Y >= 1 && p.Y <= g.H-2; p = p.Add(dx, dy) {
		if g.At(p) == Empty {
			return
		}
		g.Set(p, Empty)
	}
}
