// Package maze holds the static walkable topology of a level: cell
// classification, tunnel wraparound, junction detection and shortest-path
// distances. A Maze is immutable after Parse.
package maze

import (
	"errors"
	"math/rand"
)

type Kind uint8

const (
	KindWall Kind = iota
	KindFloor
	KindTunnel
)

// Cell is a discrete maze coordinate.
type Cell struct {
	Col, Row int
}

// Unreachable is returned by PathLength when no path exists.
const Unreachable = -1

var (
	ErrRaggedRows     = errors.New("maze: rows must all have the same length")
	ErrTooSmall       = errors.New("maze: layout must be at least 3x3")
	ErrNoPlayerSpawn  = errors.New("maze: layout needs exactly one player spawn")
	ErrNoGhostSpawn   = errors.New("maze: layout needs at least one ghost spawn")
	ErrUnpairedTunnel = errors.New("maze: tunnel cells must come in pairs")
	ErrDisconnected   = errors.New("maze: not every open cell is reachable from the player spawn")
)

// neighborDeltas is the fixed visitation order {up, left, down, right} used
// everywhere a deterministic tie-break is needed.
var neighborDeltas = [4][2]int{{0, -1}, {-1, 0}, {0, 1}, {1, 0}}

// Maze is a fixed 2-D classification of cells plus tunnel pairs, spawn cells
// and per-role scatter corners.
type Maze struct {
	Width, Height int

	kinds   [][]Kind // indexed [row][col]
	tunnels map[Cell]Cell
	floors  []Cell // every non-wall cell, scan order

	PlayerSpawn Cell
	GhostSpawns []Cell

	// Dots and Pellets record the layout's consumable placement; the
	// mutable grid built from them belongs to the game session.
	Dots    []Cell
	Pellets []Cell

	scatter []Cell
}

func (m *Maze) InBounds(c Cell) bool {
	return c.Col >= 0 && c.Col < m.Width && c.Row >= 0 && c.Row < m.Height
}

// KindAt classifies a cell. Out-of-bounds cells count as walls.
func (m *Maze) KindAt(c Cell) Kind {
	if !m.InBounds(c) {
		return KindWall
	}
	return m.kinds[c.Row][c.Col]
}

func (m *Maze) IsWall(c Cell) bool {
	return m.KindAt(c) == KindWall
}

// TunnelPair returns the paired cell of a tunnel cell.
func (m *Maze) TunnelPair(c Cell) (Cell, bool) {
	p, ok := m.tunnels[c]
	return p, ok
}

// Step resolves the cell one step from c along (dc, dr). Stepping off the
// grid from a tunnel cell lands on its paired cell; any other wall or
// out-of-bounds target returns false.
func (m *Maze) Step(c Cell, dc, dr int) (Cell, bool) {
	n := Cell{Col: c.Col + dc, Row: c.Row + dr}
	if !m.InBounds(n) {
		if p, ok := m.tunnels[c]; ok {
			return p, true
		}
		return Cell{}, false
	}
	if m.kinds[n.Row][n.Col] == KindWall {
		return Cell{}, false
	}
	return n, true
}

// Neighbors returns the up-to-4 adjacent non-wall cells of c in the fixed
// order up, left, down, right, with tunnel wraparound applied.
func (m *Maze) Neighbors(c Cell) []Cell {
	out := make([]Cell, 0, 4)
	for _, d := range neighborDeltas {
		if n, ok := m.Step(c, d[0], d[1]); ok {
			out = append(out, n)
		}
	}
	return out
}

func (m *Maze) OpenDegree(c Cell) int {
	n := 0
	for _, d := range neighborDeltas {
		if _, ok := m.Step(c, d[0], d[1]); ok {
			n++
		}
	}
	return n
}

// IsJunction reports whether c has three or more open neighbors. Junctions
// are the only cells where a ghost re-evaluates its target.
func (m *Maze) IsJunction(c Cell) bool {
	return m.OpenDegree(c) >= 3
}

// PathLength returns the breadth-first shortest path length between a and b
// in cells, or Unreachable if b is a wall or cannot be reached. Results are
// deterministic because neighbors are always visited in the fixed order.
func (m *Maze) PathLength(a, b Cell) int {
	if m.IsWall(a) || m.IsWall(b) {
		return Unreachable
	}
	if a == b {
		return 0
	}
	dist := map[Cell]int{a: 0}
	queue := []Cell{a}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, n := range m.Neighbors(cur) {
			if _, seen := dist[n]; seen {
				continue
			}
			dist[n] = dist[cur] + 1
			if n == b {
				return dist[n]
			}
			queue = append(queue, n)
		}
	}
	return Unreachable
}

// ScatterCorner returns the scatter target for the i-th ghost role.
func (m *Maze) ScatterCorner(i int) Cell {
	return m.scatter[i%len(m.scatter)]
}

// Clamp forces c into the maze bounds.
func (m *Maze) Clamp(c Cell) Cell {
	if c.Col < 0 {
		c.Col = 0
	}
	if c.Col >= m.Width {
		c.Col = m.Width - 1
	}
	if c.Row < 0 {
		c.Row = 0
	}
	if c.Row >= m.Height {
		c.Row = m.Height - 1
	}
	return c
}

// NearestFloor returns the closest non-wall cell to c, searching outward in
// growing rings. Falls back to c itself if nothing is found nearby.
func (m *Maze) NearestFloor(c Cell) Cell {
	if m.InBounds(c) && !m.IsWall(c) {
		return c
	}
	const maxR = 8
	for r := 1; r <= maxR; r++ {
		for dy := -r; dy <= r; dy++ {
			for dx := -r; dx <= r; dx++ {
				n := Cell{Col: c.Col + dx, Row: c.Row + dy}
				if m.InBounds(n) && !m.IsWall(n) {
					return n
				}
			}
		}
	}
	return c
}

// RandomFloor picks a uniformly random non-wall cell.
func (m *Maze) RandomFloor(rng *rand.Rand) Cell {
	return m.floors[rng.Intn(len(m.floors))]
}

// Validate checks the connectivity invariant: every non-wall cell must be
// reachable from the player spawn. Failures are fatal configuration errors.
func (m *Maze) Validate() error {
	if m.IsWall(m.PlayerSpawn) {
		return ErrNoPlayerSpawn
	}
	seen := map[Cell]bool{m.PlayerSpawn: true}
	queue := []Cell{m.PlayerSpawn}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, n := range m.Neighbors(cur) {
			if !seen[n] {
				seen[n] = true
				queue = append(queue, n)
			}
		}
	}
	if len(seen) != len(m.floors) {
		return ErrDisconnected
	}
	return nil
}
