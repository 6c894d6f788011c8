package game

import (
	"time"

	"github.com/google/uuid"

	"pacman/internal/entities"
	"pacman/internal/maze"
)

// EventKind identifies a score-affecting or lifecycle occurrence.
type EventKind int

const (
	EventDotEaten EventKind = iota
	EventPelletEaten
	EventGhostEaten
	EventPlayerCaptured
	EventLevelCleared
	EventGameOver
)

func (k EventKind) String() string {
	switch k {
	case EventDotEaten:
		return "dot_eaten"
	case EventPelletEaten:
		return "pellet_eaten"
	case EventGhostEaten:
		return "ghost_eaten"
	case EventPlayerCaptured:
		return "player_captured"
	case EventLevelCleared:
		return "level_cleared"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Event is a discrete, timestamped occurrence for score/UI collaborators.
// At is simulation time since the session started, so paused frames never
// advance it.
type Event struct {
	Kind    EventKind
	At      time.Duration
	Session uuid.UUID
	Cell    maze.Cell
	Role    entities.Role // set on ghost-related events
	Points  int
	Lives   int
}
