// Package entity holds the player, ghost and token state machines and the
// arena that owns them. Cells refer to entities by identifier only.
package entity

import "github.com/vovakirdan/ghostmaze/internal/core"

// PlayerState is the power-up mode of the player.
type PlayerState uint8

const (
	PlayerNormal PlayerState = iota
	PlayerSuper
	PlayerInvisible
)

func (s PlayerState) String() string {
	switch s {
	case PlayerNormal:
		return "Normal"
	case PlayerSuper:
		return "Super"
	case PlayerInvisible:
		return "Invisible"
	default:
		return "Unknown"
	}
}

// GhostState is the mode of a ghost.
type GhostState uint8

const (
	GhostNormal GhostState = iota
	GhostAfraid
)

func (s GhostState) String() string {
	switch s {
	case GhostNormal:
		return "Normal"
	case GhostAfraid:
		return "Afraid"
	default:
		return "Unknown"
	}
}

// Player is the user-controlled entity.
type Player struct {
	Direction core.Direction
	State     PlayerState
}

// NewPlayer returns a standing player in Normal state.
func NewPlayer() Player {
	return Player{Direction: core.DirStill, State: PlayerNormal}
}

// GhostID identifies a ghost inside a Roster.
type GhostID int

// Ghost is an autonomous roaming entity. Frozen only matters while Afraid:
// an afraid ghost that moved sits out the following tick.
type Ghost struct {
	ID        GhostID
	Direction core.Direction
	State     GhostState
	Frozen    bool
}

// SetState changes the ghost mode. Leaving Afraid clears Frozen.
func (g *Ghost) SetState(s GhostState) {
	g.State = s
	if s != GhostAfraid {
		g.Frozen = false
	}
}

// Roster is the arena owning the player and every ghost.
type Roster struct {
	Player Player
	Ghosts []Ghost
}

// NewRoster creates a fresh player and n ghosts heading Up.
func NewRoster(n int) *Roster {
	r := &Roster{
		Player: NewPlayer(),
		Ghosts: make([]Ghost, n),
	}
	for i := range r.Ghosts {
		r.Ghosts[i] = Ghost{ID: GhostID(i), Direction: core.DirUp, State: GhostNormal}
	}
	return r
}

// Ghost returns the ghost with the given id.
func (r *Roster) Ghost(id GhostID) *Ghost {
	return &r.Ghosts[id]
}

// SetGhostStates moves every ghost into state s.
func (r *Roster) SetGhostStates(s GhostState) {
	for i := range r.Ghosts {
		r.Ghosts[i].SetState(s)
	}
}

// Calm returns the player and every ghost to Normal.
func (r *Roster) Calm() {
	r.Player.State = PlayerNormal
	r.SetGhostStates(GhostNormal)
}
