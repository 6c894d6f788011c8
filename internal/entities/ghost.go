package entities

import "pacman/internal/maze"

// Role selects a ghost's targeting strategy.
type Role int

const (
	RoleDirect Role = iota // chases the player's live cell
	RoleAmbush             // aims ahead of the player's facing
	RolePatrol             // wanders, with occasional direct pursuit
)

func (r Role) String() string {
	switch r {
	case RoleDirect:
		return "direct"
	case RoleAmbush:
		return "ambush"
	case RolePatrol:
		return "patrol"
	default:
		return "unknown"
	}
}

// Mode is a ghost's behavioral phase.
type Mode int

const (
	ModeScatter Mode = iota
	ModeChase
	ModeFrightened
	ModeEaten
	ModeRegenerating
)

func (m Mode) String() string {
	switch m {
	case ModeScatter:
		return "scatter"
	case ModeChase:
		return "chase"
	case ModeFrightened:
		return "frightened"
	case ModeEaten:
		return "eaten"
	case ModeRegenerating:
		return "regenerating"
	default:
		return "unknown"
	}
}

// Ghost is a pursuer. The Eaten flag gates respawn and is distinct from
// Mode: it stays set from the moment of being eaten until regeneration
// completes, across the Eaten->Regenerating hop.
type Ghost struct {
	Mover
	Role    Role
	Mode    Mode
	Spawn   maze.Cell
	ExitDir Direction
	Eaten   bool

	// Remaining seconds on the per-ghost timers. Timers only ever advance
	// by the session's pause-clamped dt.
	FrightenedLeft float64
	RegenLeft      float64

	// Target committed at the last junction; held between junctions.
	Target    maze.Cell
	HasTarget bool
}

// Collidable reports whether the ghost currently interacts with the player.
func (g *Ghost) Collidable() bool {
	return g.Mode != ModeEaten && g.Mode != ModeRegenerating
}
