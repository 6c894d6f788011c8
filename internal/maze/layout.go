package maze

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Layout is the on-disk YAML form of a level.
//
// Row runes: '#' wall, '.' dot, 'o' power pellet, ' ' bare floor,
// 'P' player spawn, 'G' ghost spawn, 'T' tunnel cell. Tunnel cells pair up
// in reading order.
type Layout struct {
	Name string   `yaml:"name"`
	Rows []string `yaml:"rows"`
}

// LoadFile reads and parses a YAML level file.
func LoadFile(path string) (*Maze, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("maze: read layout: %w", err)
	}
	var l Layout
	if err := yaml.Unmarshal(b, &l); err != nil {
		return nil, fmt.Errorf("maze: parse layout yaml: %w", err)
	}
	m, err := Parse(l.Rows)
	if err != nil {
		return nil, fmt.Errorf("maze: layout %q: %w", l.Name, err)
	}
	log.WithFields(log.Fields{
		"layout":  l.Name,
		"size":    fmt.Sprintf("%dx%d", m.Width, m.Height),
		"dots":    len(m.Dots),
		"pellets": len(m.Pellets),
		"ghosts":  len(m.GhostSpawns),
	}).Debug("layout loaded")
	return m, nil
}

// Parse builds and validates a Maze from layout rows.
func Parse(rows []string) (*Maze, error) {
	if len(rows) < 3 || len(rows[0]) < 3 {
		return nil, ErrTooSmall
	}
	h := len(rows)
	w := len(rows[0])

	m := &Maze{
		Width:   w,
		Height:  h,
		kinds:   make([][]Kind, h),
		tunnels: make(map[Cell]Cell),
	}

	var tunnelCells []Cell
	playerSpawns := 0
	for r, row := range rows {
		if len(row) != w {
			return nil, ErrRaggedRows
		}
		m.kinds[r] = make([]Kind, w)
		for c, ch := range row {
			cell := Cell{Col: c, Row: r}
			kind := KindFloor
			switch ch {
			case '#':
				kind = KindWall
			case '.':
				m.Dots = append(m.Dots, cell)
			case 'o':
				m.Pellets = append(m.Pellets, cell)
			case 'P':
				m.PlayerSpawn = cell
				playerSpawns++
			case 'G':
				m.GhostSpawns = append(m.GhostSpawns, cell)
			case 'T':
				kind = KindTunnel
				tunnelCells = append(tunnelCells, cell)
			case ' ':
			default:
				return nil, fmt.Errorf("maze: unknown layout rune %q at col %d row %d", ch, c, r)
			}
			m.kinds[r][c] = kind
			if kind != KindWall {
				m.floors = append(m.floors, cell)
			}
		}
	}

	if playerSpawns != 1 {
		return nil, ErrNoPlayerSpawn
	}
	if len(m.GhostSpawns) == 0 {
		return nil, ErrNoGhostSpawn
	}
	if len(tunnelCells)%2 != 0 {
		return nil, ErrUnpairedTunnel
	}
	for i := 0; i < len(tunnelCells); i += 2 {
		a, b := tunnelCells[i], tunnelCells[i+1]
		m.tunnels[a] = b
		m.tunnels[b] = a
	}

	// Scatter corners, one per role: top-right, top-left, bottom-left,
	// bottom-right, snapped to the nearest open cell.
	for _, corner := range []Cell{
		{Col: w - 1, Row: 0},
		{Col: 0, Row: 0},
		{Col: 0, Row: h - 1},
		{Col: w - 1, Row: h - 1},
	} {
		m.scatter = append(m.scatter, m.NearestFloor(corner))
	}

	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// Default returns the built-in level so the game runs with no files on disk.
func Default() *Maze {
	m, err := Parse(defaultRows)
	if err != nil {
		panic(fmt.Sprintf("maze: default layout invalid: %v", err))
	}
	return m
}

var defaultRows = []string{
	"#####################",
	"#o........#........o#",
	"#.###.###.#.###.###.#",
	"#.....#...#...#.....#",
	"###.#.#.#####.#.#.###",
	"#...#.....#.....#...#",
	"#.###.###.#.###.###.#",
	"T......G..#..G......T",
	"#.###.###.#.###.###.#",
	"#...#..G..#.....#...#",
	"###.#.#.#####.#.#.###",
	"#.....#...#...#.....#",
	"#.###.###.#.###.###.#",
	"#o........P........o#",
	"#####################",
}
