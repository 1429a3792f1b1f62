package board

import (
	"testing"

	"github.com/vovakirdan/ghostmaze/internal/core"
	"github.com/vovakirdan/ghostmaze/internal/entity"
	"github.com/vovakirdan/ghostmaze/internal/maze"
)

func TestStepWrapsAround(t *testing.T) {
	b := New(maze.NewGrid(21, 15))

	tests := []struct {
		name     string
		from     core.Pos
		dir      core.Direction
		expected core.Pos
	}{
		{"left off column 0", core.Pos{X: 0, Y: 4}, core.DirLeft, core.Pos{X: 20, Y: 4}},
		{"right off last column", core.Pos{X: 20, Y: 4}, core.DirRight, core.Pos{X: 0, Y: 4}},
		{"up off row 0", core.Pos{X: 3, Y: 0}, core.DirUp, core.Pos{X: 3, Y: 14}},
		{"down off last row", core.Pos{X: 3, Y: 14}, core.DirDown, core.Pos{X: 3, Y: 0}},
		{"interior", core.Pos{X: 5, Y: 5}, core.DirRight, core.Pos{X: 6, Y: 5}},
		{"still", core.Pos{X: 5, Y: 5}, core.DirStill, core.Pos{X: 5, Y: 5}},
		{"none", core.Pos{X: 5, Y: 5}, core.DirNone, core.Pos{X: 5, Y: 5}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := b.Step(tc.from, tc.dir); got != tc.expected {
				t.Errorf("Step(%v, %v) = %v, expected %v", tc.from, tc.dir, got, tc.expected)
			}
		})
	}
}

func TestCellWrapsCoordinates(t *testing.T) {
	b := New(maze.NewGrid(5, 5))
	b.Cell(core.Pos{X: 4, Y: 0}).SetToken(entity.TokenGreen)

	if got := b.Cell(core.Pos{X: -1, Y: 5}).Token(); got != entity.TokenGreen {
		t.Errorf("Cell(-1, 5) should alias (4, 0), got token %v", got)
	}
}

func TestGhostQueueIsFIFO(t *testing.T) {
	b := New(maze.NewGrid(5, 5))
	c := b.Cell(core.Pos{X: 2, Y: 2})

	for _, id := range []entity.GhostID{2, 0, 3} {
		c.PushGhost(id)
	}
	if c.GhostCount() != 3 {
		t.Fatalf("GhostCount() = %d, expected 3", c.GhostCount())
	}

	for _, expected := range []entity.GhostID{2, 0, 3} {
		id, ok := c.PopGhost()
		if !ok || id != expected {
			t.Errorf("PopGhost() = %d, %v, expected %d", id, ok, expected)
		}
	}
	if _, ok := c.PopGhost(); ok {
		t.Error("PopGhost on an empty queue should report false")
	}
	if c.HasGhosts() {
		t.Error("queue should be empty")
	}
}

func TestTakeToken(t *testing.T) {
	b := New(maze.NewGrid(5, 5))
	c := b.Cell(core.Pos{X: 1, Y: 1})
	c.SetToken(entity.TokenOrange)

	if got := c.TakeToken(); got != entity.TokenOrange {
		t.Errorf("TakeToken() = %v, expected Orange", got)
	}
	if got := c.TakeToken(); got != entity.TokenNone {
		t.Errorf("second TakeToken() = %v, expected None", got)
	}
}

func TestMovePlayerKeepsSingleOccupant(t *testing.T) {
	b := New(maze.NewGrid(5, 5))
	from := b.Center()
	b.Cell(from).SetPlayer(true)

	to := b.Step(from, core.DirLeft)
	b.MovePlayer(from, to)

	if b.Cell(from).HasPlayer() {
		t.Error("player should have left the source cell")
	}
	if !b.Cell(to).HasPlayer() {
		t.Error("player should stand on the destination cell")
	}
	if n := b.PlayerCount(); n != 1 {
		t.Errorf("PlayerCount() = %d, expected 1", n)
	}
}

func TestNewCopiesTiles(t *testing.T) {
	g := maze.NewGrid(5, 5)
	g.Set(core.Pos{X: 0, Y: 0}, maze.Wall)
	g.Set(core.Pos{X: 2, Y: 2}, maze.Spawn)
	b := New(g)

	if b.Walkable(core.Pos{X: 0, Y: 0}) {
		t.Error("wall tile should not be walkable")
	}
	if b.Cell(b.Center()).Tile() != maze.Spawn {
		t.Errorf("center tile = %v, expected Spawn", b.Cell(b.Center()).Tile())
	}
	if b.TokenCount() != 0 || b.GhostCount() != 0 || b.PlayerCount() != 0 {
		t.Error("new board should have no occupants")
	}
}
