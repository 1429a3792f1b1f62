package sim

import (
	"math/rand"

	"github.com/vovakirdan/ghostmaze/internal/core"
	"github.com/vovakirdan/ghostmaze/internal/entity"
)

// Mover is what the bot needs to see of a game.
type Mover interface {
	CanMove(dir core.Direction) bool
	Player() entity.Player
}

// walker keeps its heading while the way is open and picks a random open
// cardinal when blocked or, occasionally, on a whim.
type walker struct {
	rng *rand.Rand
}

func newWalker(seed int64) *walker {
	return &walker{rng: rand.New(rand.NewSource(seed))}
}

func (w *walker) next(m Mover) core.Direction {
	cur := m.Player().Direction
	if cur.Moving() && m.CanMove(cur) && w.rng.Intn(turnChance) != 0 {
		return cur
	}

	open := make([]core.Direction, 0, len(core.Cardinals))
	for _, d := range core.Cardinals {
		if m.CanMove(d) {
			open = append(open, d)
		}
	}
	if len(open) == 0 {
		return core.DirStill
	}
	return open[w.rng.Intn(len(open))]
}
