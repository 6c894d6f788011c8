// Package game is the headless simulation core: a Session owns the player,
// the ghosts, the consumable grid and the mode schedule, and advances them
// all in a fixed order once per frame. Rendering, input devices and
// persistence live outside and talk to it through read-only views and
// drained events.
package game

import (
	"errors"
	"math/rand"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"pacman/internal/entities"
	"pacman/internal/maze"
)

var ErrSpawnOnWall = errors.New("game: ghost spawn cell is a wall")

// Session is one run of a level. Everything in it is mutated only inside
// Update, so distinct sessions never interfere and tests can run them
// side by side.
type Session struct {
	id  uuid.UUID
	cfg Config
	log *log.Entry

	maze    *maze.Maze
	player  *entities.Player
	ghosts  []*entities.Ghost
	pellets *PelletGrid
	coord   *coordinator
	rng     *rand.Rand

	clock        time.Duration
	score        int
	poweredLeft  float64
	ghostCombo   int
	paused       bool
	gameOver     bool
	levelCleared bool

	events []Event
}

// NewSession validates the configuration and builds a session on the given
// maze. Malformed layouts or configs are fatal here, never at runtime.
func NewSession(m *maze.Maze, cfg Config) (*Session, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	for _, c := range m.GhostSpawns {
		if m.IsWall(c) {
			return nil, ErrSpawnOnWall
		}
	}
	phases, err := phasesFromConfig(cfg.Schedule)
	if err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	id := uuid.New()
	s := &Session{
		id:      id,
		cfg:     cfg,
		log:     log.WithField("session", id.String()[:8]),
		maze:    m,
		pellets: NewPelletGrid(m),
		coord:   newCoordinator(phases),
		rng:     rand.New(rand.NewSource(seed)),
	}

	s.player = &entities.Player{Lives: cfg.Lives}
	s.player.PlaceAt(m.PlayerSpawn, entities.DirNone)
	s.player.Speed = cfg.PlayerSpeed

	for i, spawn := range m.GhostSpawns {
		gh := &entities.Ghost{
			Role:    entities.Role(i % 3),
			Mode:    s.coord.Current(),
			Spawn:   spawn,
			ExitDir: exitDirection(m, spawn),
		}
		gh.PlaceAt(spawn, gh.ExitDir)
		gh.Speed = cfg.GhostSpeed
		s.ghosts = append(s.ghosts, gh)
	}

	s.log.WithFields(log.Fields{
		"ghosts": len(s.ghosts),
		"dots":   s.pellets.Remaining(),
		"lives":  cfg.Lives,
	}).Info("session started")
	return s, nil
}

// exitDirection is the first open direction from a spawn cell in the fixed
// steering order; used as the default facing after spawn and regeneration.
func exitDirection(m *maze.Maze, spawn maze.Cell) entities.Direction {
	for _, d := range entities.SteeringOrder {
		dc, dr := d.Delta()
		if _, ok := m.Step(spawn, dc, dr); ok {
			return d
		}
	}
	return entities.DirNone
}

// Update advances the whole simulation by dt seconds. The order is fixed:
// schedule timers, player mover, ghosts in role order, consumables, then
// collision resolution. Pausing clamps dt to zero for every component so
// nothing desynchronizes.
func (s *Session) Update(dt float64, input entities.Direction) {
	if s.paused || s.gameOver || s.levelCleared {
		dt = 0
	}
	if dt <= 0 {
		return
	}
	s.clock += time.Duration(dt * float64(time.Second))

	if s.coord.Advance(dt) {
		s.broadcastMode()
	}
	if s.poweredLeft > 0 {
		s.poweredLeft -= dt
		if s.poweredLeft <= 0 {
			s.poweredLeft = 0
			s.player.Powered = false
			s.ghostCombo = 0
		}
	}

	prevPlayer := s.player.Cell
	s.player.Speed = s.cfg.PlayerSpeed
	s.player.Advance(dt, input, s.maze)

	prevGhosts := make([]maze.Cell, len(s.ghosts))
	for i, gh := range s.ghosts {
		prevGhosts[i] = gh.Cell
	}
	for _, gh := range s.ghosts {
		s.updateGhost(gh, dt)
	}

	s.consume()
	s.resolveCollisions(prevPlayer, prevGhosts)
}

// consume eats whatever the player's cell holds and raises the frightened
// broadcast on a power pellet.
func (s *Session) consume() {
	switch s.pellets.ConsumeAt(s.player.Cell) {
	case ConsumableDot:
		s.score += s.cfg.DotPoints
		s.emit(Event{Kind: EventDotEaten, Cell: s.player.Cell, Points: s.cfg.DotPoints})
	case ConsumablePellet:
		s.score += s.cfg.PelletPoints
		s.emit(Event{Kind: EventPelletEaten, Cell: s.player.Cell, Points: s.cfg.PelletPoints})
		s.frightenAll()
	default:
		return
	}
	if s.pellets.AllConsumed() {
		s.levelCleared = true
		s.emit(Event{Kind: EventLevelCleared, Points: s.score})
		s.log.WithField("score", s.score).Info("level cleared")
	}
}

// resetPositions returns every mover to its spawn after a life loss. The
// pellet grid is deliberately left untouched.
func (s *Session) resetPositions() {
	s.player.PlaceAt(s.maze.PlayerSpawn, entities.DirNone)
	s.player.Powered = false
	s.poweredLeft = 0
	s.ghostCombo = 0
	mode := s.coord.Current()
	for _, gh := range s.ghosts {
		gh.PlaceAt(gh.Spawn, gh.ExitDir)
		gh.Mode = mode
		gh.Eaten = false
		gh.FrightenedLeft = 0
		gh.RegenLeft = 0
		gh.HasTarget = false
	}
}

func (s *Session) emit(ev Event) {
	ev.At = s.clock
	ev.Session = s.id
	s.events = append(s.events, ev)
}

// DrainEvents returns and clears the events accumulated since the last
// drain. Collaborators call it once per frame.
func (s *Session) DrainEvents() []Event {
	ev := s.events
	s.events = nil
	return ev
}

// SetPaused gates the whole simulation; while paused no timer or mover
// advances.
func (s *Session) SetPaused(p bool) { s.paused = p }

func (s *Session) ID() uuid.UUID      { return s.id }
func (s *Session) Paused() bool       { return s.paused }
func (s *Session) Score() int         { return s.score }
func (s *Session) Lives() int         { return s.player.Lives }
func (s *Session) GameOver() bool     { return s.gameOver }
func (s *Session) LevelCleared() bool { return s.levelCleared }
func (s *Session) Clock() time.Duration { return s.clock }

// Maze exposes the immutable topology for rendering.
func (s *Session) Maze() *maze.Maze { return s.maze }

// ConsumableAt reports what currently occupies a cell, for rendering.
func (s *Session) ConsumableAt(c maze.Cell) Consumable { return s.pellets.At(c) }

// MoverView is a read-only drawing snapshot of one mover. X and Y are the
// continuous position in cell units.
type MoverView struct {
	Cell maze.Cell
	X, Y float64
	Dir  entities.Direction
}

// GhostView adds the per-ghost visual state.
type GhostView struct {
	MoverView
	Role           entities.Role
	Mode           entities.Mode
	FrightenedLeft float64
}

// View is the per-frame read-only snapshot handed to renderers.
type View struct {
	Player       MoverView
	Powered      bool
	Ghosts       []GhostView
	Score        int
	Lives        int
	PelletsLeft  int
	Paused       bool
	GameOver     bool
	LevelCleared bool
}

// View snapshots the session for drawing; it allocates a fresh slice so the
// renderer can never reach back into live state.
func (s *Session) View() View {
	px, py := s.player.Position()
	v := View{
		Player:       MoverView{Cell: s.player.Cell, X: px, Y: py, Dir: s.player.Dir},
		Powered:      s.player.Powered,
		Score:        s.score,
		Lives:        s.player.Lives,
		PelletsLeft:  s.pellets.Remaining(),
		Paused:       s.paused,
		GameOver:     s.gameOver,
		LevelCleared: s.levelCleared,
	}
	for _, gh := range s.ghosts {
		gx, gy := gh.Position()
		v.Ghosts = append(v.Ghosts, GhostView{
			MoverView:      MoverView{Cell: gh.Cell, X: gx, Y: gy, Dir: gh.Dir},
			Role:           gh.Role,
			Mode:           gh.Mode,
			FrightenedLeft: gh.FrightenedLeft,
		})
	}
	return v
}
