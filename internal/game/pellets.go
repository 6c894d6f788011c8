package game

import "pacman/internal/maze"

// Consumable is what occupies a cell of the pellet grid.
type Consumable uint8

const (
	ConsumableNone Consumable = iota
	ConsumableDot
	ConsumablePellet
)

// PelletGrid is the mutable dot/pellet state of a level. It is owned by the
// session and survives life loss unchanged.
type PelletGrid struct {
	cells     map[maze.Cell]Consumable
	remaining int
}

// NewPelletGrid builds the grid from the layout's placement.
func NewPelletGrid(m *maze.Maze) *PelletGrid {
	g := &PelletGrid{cells: make(map[maze.Cell]Consumable, len(m.Dots)+len(m.Pellets))}
	for _, c := range m.Dots {
		g.cells[c] = ConsumableDot
	}
	for _, c := range m.Pellets {
		g.cells[c] = ConsumablePellet
	}
	g.remaining = len(g.cells)
	return g
}

// At reports what currently occupies c.
func (g *PelletGrid) At(c maze.Cell) Consumable {
	return g.cells[c]
}

// ConsumeAt empties c and returns what was eaten, if anything.
func (g *PelletGrid) ConsumeAt(c maze.Cell) Consumable {
	got := g.cells[c]
	if got != ConsumableNone {
		delete(g.cells, c)
		g.remaining--
	}
	return got
}

func (g *PelletGrid) Remaining() int {
	return g.remaining
}

// AllConsumed reports whether no dot or pellet is left; the session treats
// this as level-clear.
func (g *PelletGrid) AllConsumed() bool {
	return g.remaining == 0
}
