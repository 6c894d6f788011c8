package game

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pacman/internal/entities"
	"pacman/internal/maze"
)

func TestTargetDirect(t *testing.T) {
	p := &entities.Player{}
	p.Cell = maze.Cell{Col: 4, Row: 9}
	assert.Equal(t, p.Cell, targetDirect(p))
}

func TestTargetAmbush(t *testing.T) {
	m := maze.Default()
	p := &entities.Player{}
	p.Cell = maze.Cell{Col: 5, Row: 5}

	p.Dir = entities.DirUp
	assert.Equal(t, maze.Cell{Col: 5, Row: 1}, targetAmbush(m, p, 4))

	p.Dir = entities.DirRight
	assert.Equal(t, maze.Cell{Col: 9, Row: 5}, targetAmbush(m, p, 4))

	// projection past the edge clamps into bounds
	p.Cell = maze.Cell{Col: 1, Row: 1}
	p.Dir = entities.DirUp
	assert.Equal(t, maze.Cell{Col: 1, Row: 0}, targetAmbush(m, p, 4))

	// a stationary player degrades to direct chase
	p.Dir = entities.DirNone
	assert.Equal(t, p.Cell, targetAmbush(m, p, 4))
}

func TestTargetPatrolChanceAndFloors(t *testing.T) {
	m := maze.Default()
	rng := rand.New(rand.NewSource(42))
	p := &entities.Player{}
	p.Cell = maze.Cell{Col: 10, Row: 13}

	const trials = 2000
	hits := 0
	for i := 0; i < trials; i++ {
		target := targetPatrol(rng, m, p, 0.3)
		assert.False(t, m.IsWall(target))
		if target == p.Cell {
			hits++
		}
	}
	// random floor picks can coincide with the player cell, so allow slack
	assert.InDelta(t, 0.3, float64(hits)/trials, 0.05)
}

func TestChooseDirectionMinimizesDistance(t *testing.T) {
	m, err := maze.Parse([]string{
		"#####",
		"##.##",
		"#P.G#",
		"##.##",
		"#####",
	})
	require.NoError(t, err)
	at := maze.Cell{Col: 2, Row: 2}

	got := chooseDirection(m, at, entities.DirNone, maze.Cell{Col: 2, Row: 1}, false)
	assert.Equal(t, entities.DirUp, got)

	got = chooseDirection(m, at, entities.DirNone, maze.Cell{Col: 3, Row: 2}, false)
	assert.Equal(t, entities.DirRight, got)
}

func TestChooseDirectionTieBreaksBySteeringOrder(t *testing.T) {
	m, err := maze.Parse([]string{
		"#####",
		"##.##",
		"#P.G#",
		"##.##",
		"#####",
	})
	require.NoError(t, err)

	// (1,1) is equidistant from the up and left neighbors; up wins the tie.
	got := chooseDirection(m, maze.Cell{Col: 2, Row: 2}, entities.DirNone, maze.Cell{Col: 1, Row: 1}, false)
	assert.Equal(t, entities.DirUp, got)
}

func TestChooseDirectionExcludesReversal(t *testing.T) {
	m, err := maze.Parse([]string{
		"#####",
		"##.##",
		"#P.G#",
		"##.##",
		"#####",
	})
	require.NoError(t, err)
	at := maze.Cell{Col: 2, Row: 2}

	// heading down, the up neighbor is off the table even when it is best;
	// left and right tie at distance 2 and left wins on steering order
	got := chooseDirection(m, at, entities.DirDown, maze.Cell{Col: 2, Row: 1}, false)
	assert.Equal(t, entities.DirLeft, got)
}

func TestChooseDirectionFleeMaximizes(t *testing.T) {
	m, err := maze.Parse([]string{
		"#####",
		"##.##",
		"#P.G#",
		"##.##",
		"#####",
	})
	require.NoError(t, err)

	got := chooseDirection(m, maze.Cell{Col: 2, Row: 2}, entities.DirNone, maze.Cell{Col: 2, Row: 3}, true)
	assert.Equal(t, entities.DirUp, got)
}

func TestChooseDirectionDeadEndForcesReversal(t *testing.T) {
	m, err := maze.Parse([]string{
		"#####",
		"#P.G#",
		"#####",
	})
	require.NoError(t, err)

	// (1,1) only opens to the right; heading left, reversal is forced.
	got := chooseDirection(m, maze.Cell{Col: 1, Row: 1}, entities.DirLeft, maze.Cell{Col: 3, Row: 1}, false)
	assert.Equal(t, entities.DirRight, got)
}
