package entities

import (
	"pacman/internal/maze"
)

// centerEps is the tolerance for "sitting on a cell center". Crossings land
// on exact centers before leftover progress is applied, so this only guards
// against accumulated float noise.
const centerEps = 1e-9

// Mover is the kinematic primitive shared by the player and the ghosts:
// a discrete cell, a continuous offset in [0,1) toward the next cell along
// the current direction, and a speed in cells per second.
type Mover struct {
	Cell   maze.Cell
	Offset float64
	Dir    Direction
	Speed  float64
}

// AtCenter reports whether the mover sits on a cell center.
func (m *Mover) AtCenter() bool {
	return m.Offset <= centerEps
}

// Position returns the continuous position in cell units.
func (m *Mover) Position() (x, y float64) {
	dc, dr := m.Dir.Delta()
	return float64(m.Cell.Col) + m.Offset*float64(dc),
		float64(m.Cell.Row) + m.Offset*float64(dr)
}

// PlaceAt puts the mover on the center of c facing d.
func (m *Mover) PlaceAt(c maze.Cell, d Direction) {
	m.Cell = c
	m.Offset = 0
	m.Dir = d
}

// Reverse flips the direction of travel. Mid-cell the frame of reference
// swaps to the cell being approached, so the offset invariant holds.
func (m *Mover) Reverse(mz *maze.Maze) {
	if m.Dir == DirNone {
		return
	}
	if m.AtCenter() {
		m.Dir = m.Dir.Opposite()
		return
	}
	dc, dr := m.Dir.Delta()
	next, ok := mz.Step(m.Cell, dc, dr)
	if !ok {
		return
	}
	m.Cell = next
	m.Offset = 1 - m.Offset
	m.Dir = m.Dir.Opposite()
}

// Advance moves the mover by Speed*dt, honoring a single requested
// direction: reversals apply immediately, any other turn only on a cell
// center. When the path ahead is blocked the mover halts on the center with
// direction none until a legal direction is requested.
func (m *Mover) Advance(dt float64, want Direction, mz *maze.Maze) {
	if want != DirNone && want == m.Dir.Opposite() && !m.AtCenter() {
		m.Reverse(mz)
	}
	m.AdvanceSteer(dt, mz, func(maze.Cell) Direction { return want })
}

// AdvanceSteer moves the mover by Speed*dt, consulting steer on every cell
// center passed during the frame. Leftover progress after a crossing carries
// into the next cell so total distance is independent of dt granularity.
func (m *Mover) AdvanceSteer(dt float64, mz *maze.Maze, steer func(at maze.Cell) Direction) {
	if dt <= 0 || m.Speed <= 0 {
		return
	}
	remaining := m.Speed * dt
	for remaining > 0 {
		if m.AtCenter() {
			m.Offset = 0
			if want := steer(m.Cell); want != DirNone && m.open(want, mz) {
				m.Dir = want
			}
			if !m.open(m.Dir, mz) {
				m.Dir = DirNone
				return
			}
		}
		rest := 1 - m.Offset
		if remaining < rest {
			m.Offset += remaining
			return
		}
		remaining -= rest
		dc, dr := m.Dir.Delta()
		// Legality was checked on the last center; tunnel exits land on the
		// paired cell with direction and residual progress preserved.
		next, _ := mz.Step(m.Cell, dc, dr)
		m.Cell = next
		m.Offset = 0
	}
}

func (m *Mover) open(d Direction, mz *maze.Maze) bool {
	if d == DirNone {
		return false
	}
	dc, dr := d.Delta()
	_, ok := mz.Step(m.Cell, dc, dr)
	return ok
}
