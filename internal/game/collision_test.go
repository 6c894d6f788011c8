package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pacman/internal/entities"
	"pacman/internal/maze"
)

func ghostCells(s *Session) []maze.Cell {
	cells := make([]maze.Cell, len(s.ghosts))
	for i, gh := range s.ghosts {
		cells[i] = gh.Cell
	}
	return cells
}

func TestCollisionFrightenedGhostIsEaten(t *testing.T) {
	s := newTestSession(t, corridorRows, testConfig())
	gh := s.ghosts[0]

	s.frightenAll()
	gh.PlaceAt(s.player.Cell, entities.DirLeft)
	s.resolveCollisions(s.player.Cell, ghostCells(s))

	assert.Equal(t, entities.ModeEaten, gh.Mode)
	assert.True(t, gh.Eaten)
	assert.False(t, gh.Collidable())
	// being eaten never costs a life
	assert.Equal(t, 3, s.Lives())
	assert.Equal(t, 200, s.Score())

	evs := s.DrainEvents()
	eaten := eventsOfKind(evs, EventGhostEaten)
	require.Len(t, eaten, 1)
	assert.Equal(t, 200, eaten[0].Points)
	assert.Equal(t, entities.RoleDirect, eaten[0].Role)
	assert.Empty(t, eventsOfKind(evs, EventPlayerCaptured))
}

func TestCollisionComboDoublesPerGhost(t *testing.T) {
	s := newTestSession(t, []string{
		"##########",
		"#P..G..G.#",
		"##########",
	}, testConfig())

	s.frightenAll()
	for _, gh := range s.ghosts {
		gh.PlaceAt(s.player.Cell, entities.DirLeft)
	}
	s.resolveCollisions(s.player.Cell, ghostCells(s))

	eaten := eventsOfKind(s.DrainEvents(), EventGhostEaten)
	require.Len(t, eaten, 2)
	assert.Equal(t, 200, eaten[0].Points)
	assert.Equal(t, 400, eaten[1].Points)
	assert.Equal(t, 600, s.Score())
	assert.Equal(t, 2, s.ghostCombo)
}

func TestCollisionComboIsCapped(t *testing.T) {
	s := newTestSession(t, corridorRows, testConfig())
	gh := s.ghosts[0]

	s.frightenAll()
	s.ghostCombo = 4 // uncapped this would be 3200
	gh.PlaceAt(s.player.Cell, entities.DirLeft)
	s.resolveCollisions(s.player.Cell, ghostCells(s))

	eaten := eventsOfKind(s.DrainEvents(), EventGhostEaten)
	require.Len(t, eaten, 1)
	assert.Equal(t, 1600, eaten[0].Points)
}

func TestCollisionCaptureResetsPositions(t *testing.T) {
	s := newTestSession(t, corridorRows, testConfig())
	gh := s.ghosts[0]

	s.player.Powered = true
	s.poweredLeft = 3
	gh.PlaceAt(s.player.Cell, entities.DirLeft)
	s.resolveCollisions(s.player.Cell, ghostCells(s))

	assert.Equal(t, 2, s.Lives())
	assert.Equal(t, gh.Spawn, gh.Cell)
	assert.Equal(t, gh.ExitDir, gh.Dir)
	assert.Equal(t, s.maze.PlayerSpawn, s.player.Cell)
	assert.Equal(t, entities.DirNone, s.player.Dir)
	// power state does not survive a capture
	assert.False(t, s.player.Powered)
	assert.Equal(t, 0.0, s.poweredLeft)

	captured := eventsOfKind(s.DrainEvents(), EventPlayerCaptured)
	require.Len(t, captured, 1)
	assert.Equal(t, 2, captured[0].Lives)
}

func TestEatenGhostRegeneratesAtSpawn(t *testing.T) {
	s := newTestSession(t, corridorRows, testConfig())
	gh := s.ghosts[0]

	away := maze.Cell{Col: 4, Row: 1}
	gh.PlaceAt(away, entities.DirLeft)
	gh.Mode = entities.ModeEaten
	gh.Eaten = true

	// the mover stays frozen while the regeneration timer runs
	runFrames(s, 10, entities.DirNone)
	assert.Equal(t, entities.ModeRegenerating, gh.Mode)
	assert.Equal(t, away, gh.Cell)
	assert.False(t, gh.Collidable())

	// a pellet mid-regeneration changes nothing
	s.frightenAll()
	assert.Equal(t, entities.ModeRegenerating, gh.Mode)

	// one second of regeneration in total, then respawn facing the exit
	runFrames(s, 54, entities.DirNone)
	assert.Equal(t, gh.Spawn, gh.Cell)
	assert.Equal(t, gh.ExitDir, gh.Dir)
	assert.Equal(t, entities.ModeChase, gh.Mode)
	assert.False(t, gh.Eaten)
	assert.Equal(t, 0.0, gh.RegenLeft)
}

func TestEatenGhostPassesThroughPlayer(t *testing.T) {
	s := newTestSession(t, corridorRows, testConfig())
	gh := s.ghosts[0]

	gh.PlaceAt(s.player.Cell, entities.DirLeft)
	gh.Mode = entities.ModeRegenerating
	gh.RegenLeft = 5

	evs := runFrames(s, 10, entities.DirNone)
	assert.Empty(t, evs)
	assert.Equal(t, 3, s.Lives())
}
