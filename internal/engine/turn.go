package engine

import (
	"github.com/vovakirdan/ghostmaze/internal/board"
	"github.com/vovakirdan/ghostmaze/internal/core"
	"github.com/vovakirdan/ghostmaze/internal/entity"
)

type ghostAt struct {
	id  entity.GhostID
	pos core.Pos
}

// moveGhosts lifts every ghost off the board in row-major order first, so a
// ghost that lands on a later cell is not moved twice.
func (m *Manager) moveGhosts() {
	var lifted []ghostAt
	m.board.Each(func(p core.Pos, c *board.Cell) {
		for {
			id, ok := c.PopGhost()
			if !ok {
				break
			}
			lifted = append(lifted, ghostAt{id: id, pos: p})
		}
	})

	for _, ga := range lifted {
		g := m.roster.Ghost(ga.id)

		if g.Frozen {
			g.Frozen = false
			m.board.Cell(ga.pos).PushGhost(ga.id)
			continue
		}

		if !m.ghostCanContinue(ga.pos, g.Direction) || m.rng.Intn(m.cfg.Rules.GhostTurnChance) == 0 {
			g.Direction = m.newGhostDirection(ga.pos, g.Direction)
		}

		dest := m.board.Step(ga.pos, g.Direction)
		m.board.Cell(dest).PushGhost(ga.id)

		if g.State == entity.GhostAfraid {
			g.Frozen = true
		}
	}
}

// ghostCanContinue reports whether heading dir from p stays off walls.
// Standing still always can.
func (m *Manager) ghostCanContinue(p core.Pos, dir core.Direction) bool {
	if !dir.Moving() {
		return true
	}
	return m.board.Walkable(m.board.Step(p, dir))
}

// newGhostDirection tries the cardinals in random order, skipping the
// current heading, and returns the first one leading off walls.
func (m *Manager) newGhostDirection(p core.Pos, current core.Direction) core.Direction {
	dirs := core.Cardinals
	m.rng.Shuffle(len(dirs), func(i, j int) { dirs[i], dirs[j] = dirs[j], dirs[i] })

	for _, d := range dirs {
		if d == current {
			continue
		}
		if m.board.Walkable(m.board.Step(p, d)) {
			return d
		}
	}
	return core.DirStill
}

func (m *Manager) movePlayer(dir core.Direction) {
	if !dir.Moving() {
		return
	}

	dest := m.board.Step(m.playerPos, dir)
	if !m.board.Walkable(dest) {
		m.roster.Player.Direction = core.DirStill
		return
	}

	m.board.MovePlayer(m.playerPos, dest)
	m.playerPos = dest
	m.roster.Player.Direction = dir
	m.resolve(dest)
}

// resolve applies the effects of the player arriving on p.
func (m *Manager) resolve(p core.Pos) {
	if m.eventTimer > 0 {
		m.eventTimer--
	}

	cell := m.board.Cell(p)
	if tok := cell.TakeToken(); tok != entity.TokenNone {
		m.score += m.cfg.Tokens.TokenScore(tok)

		switch tok {
		case entity.TokenGreen:
			m.reshuffle()
			return
		case entity.TokenViolet:
			m.eventTimer = m.cfg.Rules.EventTimer
			m.roster.Player.State = entity.PlayerInvisible
			m.roster.SetGhostStates(entity.GhostNormal)
		case entity.TokenOrange:
			m.eventTimer = m.cfg.Rules.EventTimer
			m.roster.Player.State = entity.PlayerSuper
			m.roster.SetGhostStates(entity.GhostAfraid)
		case entity.TokenBlue:
		}
		m.tokensRemaining--
	}

	if cell.HasGhosts() {
		switch m.roster.Player.State {
		case entity.PlayerNormal:
			m.lostLives++
			m.log.Debug("life lost", "pos", p, "lives", m.Lives())
		case entity.PlayerSuper:
			n := m.jail(p)
			m.log.Debug("ghosts jailed", "pos", p, "count", n)
		case entity.PlayerInvisible:
		}
	}

	if m.eventTimer == 0 {
		if m.roster.Player.State != entity.PlayerNormal {
			m.log.Debug("power-up expired", "state", m.roster.Player.State)
		}
		m.roster.Calm()
	}
}

// jail sends every ghost on p to the center cell and returns how many moved.
// Ghosts already on the center stay where they are.
func (m *Manager) jail(p core.Pos) int {
	if p == m.board.Center() {
		return 0
	}
	from := m.board.Cell(p)
	to := m.board.Cell(m.board.Center())
	n := 0
	for {
		id, ok := from.PopGhost()
		if !ok {
			return n
		}
		to.PushGhost(id)
		n++
	}
}
