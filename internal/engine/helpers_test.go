package engine

import (
	"testing"

	"github.com/vovakirdan/ghostmaze/internal/board"
	"github.com/vovakirdan/ghostmaze/internal/config"
	"github.com/vovakirdan/ghostmaze/internal/core"
	"github.com/vovakirdan/ghostmaze/internal/entity"
	"github.com/vovakirdan/ghostmaze/internal/maze"
)

// stubRand replays scripted Intn results and otherwise returns n-1, which
// never triggers a random ghost turn and always rolls a Blue token.
// Shuffle leaves the order unchanged.
type stubRand struct {
	rolls []int
}

func (r *stubRand) Intn(n int) int {
	if len(r.rolls) > 0 {
		v := r.rolls[0]
		r.rolls = r.rolls[1:]
		return v % n
	}
	return n - 1
}

func (r *stubRand) Shuffle(int, func(i, j int)) {}

// handmade builds a manager from a text board:
//
//	#  wall            .  empty
//	P  spawn + player  G  ghost spawn + ghost
//	M  empty + ghost   b v o g  empty + Blue/Violet/Orange/Green token
//
// Ghost ids follow row-major order and every ghost starts parked (Still).
func handmade(t *testing.T, rows ...string) (*Manager, *stubRand) {
	t.Helper()

	cfg := config.DefaultGameConfig()
	cfg.Board.Width = len(rows[0])
	cfg.Board.Height = len(rows)

	rng := &stubRand{}
	m, err := newManager(cfg, []Option{WithRand(rng)})
	if err != nil {
		t.Fatalf("newManager failed: %v", err)
	}

	grid := maze.NewGrid(cfg.Board.Width, cfg.Board.Height)
	tokens := map[core.Pos]entity.Token{}
	var ghosts []core.Pos
	var player core.Pos
	for y, row := range rows {
		if len(row) != cfg.Board.Width {
			t.Fatalf("row %d has width %d, expected %d", y, len(row), cfg.Board.Width)
		}
		for x, ch := range row {
			p := core.Pos{X: x, Y: y}
			switch ch {
			case '#':
				grid.Set(p, maze.Wall)
			case 'P':
				grid.Set(p, maze.Spawn)
				player = p
			case 'G':
				grid.Set(p, maze.GhostSpawn)
				ghosts = append(ghosts, p)
			case 'M':
				ghosts = append(ghosts, p)
			case 'b':
				tokens[p] = entity.TokenBlue
			case 'v':
				tokens[p] = entity.TokenViolet
			case 'o':
				tokens[p] = entity.TokenOrange
			case 'g':
				tokens[p] = entity.TokenGreen
			}
		}
	}

	b := board.New(grid)
	roster := entity.NewRoster(len(ghosts))
	for i, p := range ghosts {
		roster.Ghosts[i].Direction = core.DirStill
		b.Cell(p).PushGhost(roster.Ghosts[i].ID)
	}
	for p, tok := range tokens {
		b.Cell(p).SetToken(tok)
	}
	b.Cell(player).SetPlayer(true)

	m.install(b, roster, player)
	m.tokensRemaining = b.TokenCount()
	return m, rng
}

// ghostPos returns where the ghost with the given id stands.
func ghostPos(t *testing.T, m *Manager, id entity.GhostID) core.Pos {
	t.Helper()
	var found []core.Pos
	m.board.Each(func(p core.Pos, c *board.Cell) {
		for _, g := range c.Ghosts() {
			if g == id {
				found = append(found, p)
			}
		}
	})
	if len(found) != 1 {
		t.Fatalf("ghost %d found on %d cells, expected exactly 1", id, len(found))
	}
	return found[0]
}

func setGhostDirection(m *Manager, id entity.GhostID, d core.Direction) {
	m.roster.Ghost(id).Direction = d
}

func pos(x, y int) core.Pos {
	return core.Pos{X: x, Y: y}
}
