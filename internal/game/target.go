package game

import (
	"math/rand"

	"pacman/internal/entities"
	"pacman/internal/maze"
)

// Targeting strategies are pure functions from game state to a target cell.
// They are only consulted at junction cells; between junctions a ghost
// commits to its last target.

func targetDirect(player *entities.Player) maze.Cell {
	return player.Cell
}

// targetAmbush aims a fixed number of cells ahead of the player's facing,
// clamped to the maze bounds. A stationary player degrades to direct chase.
func targetAmbush(m *maze.Maze, player *entities.Player, lead int) maze.Cell {
	if player.Dir == entities.DirNone {
		return player.Cell
	}
	dc, dr := player.Dir.Delta()
	return m.Clamp(maze.Cell{
		Col: player.Cell.Col + dc*lead,
		Row: player.Cell.Row + dr*lead,
	})
}

// targetPatrol chases the player with the given probability, otherwise picks
// a uniformly random floor cell. The draw happens once per decision point,
// not per frame.
func targetPatrol(rng *rand.Rand, m *maze.Maze, player *entities.Player, chance float64) maze.Cell {
	if rng.Float64() < chance {
		return player.Cell
	}
	return m.RandomFloor(rng)
}

// chooseDirection picks the legal neighbor direction minimizing (or, when
// fleeing, maximizing) straight-line distance to the target. Reversals are
// excluded unless no other direction is open; ties fall to the fixed
// steering order.
func chooseDirection(m *maze.Maze, at maze.Cell, cur entities.Direction, target maze.Cell, flee bool) entities.Direction {
	best := entities.DirNone
	bestDist := 0
	for _, d := range entities.SteeringOrder {
		if cur != entities.DirNone && d == cur.Opposite() {
			continue
		}
		dc, dr := d.Delta()
		next, ok := m.Step(at, dc, dr)
		if !ok {
			continue
		}
		dist := sqDist(next, target)
		if best == entities.DirNone || (flee && dist > bestDist) || (!flee && dist < bestDist) {
			best, bestDist = d, dist
		}
	}
	if best == entities.DirNone {
		// dead end: reversal is forced
		return cur.Opposite()
	}
	return best
}

func sqDist(a, b maze.Cell) int {
	dc := a.Col - b.Col
	dr := a.Row - b.Row
	return dc*dc + dr*dr
}
