// Package ui is the thin presentation layer: it samples the input direction
// once per frame, steps the session, and draws from its read-only view. All
// game rules live in the session; nothing here mutates game state directly.
package ui

import (
	"fmt"
	"image/color"
	"math"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	log "github.com/sirupsen/logrus"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"golang.org/x/image/font/basicfont"

	"pacman/internal/entities"
	"pacman/internal/game"
	"pacman/internal/maze"
)

const (
	tileSize = 16
	// ghosts start flashing this many seconds before frightened expires
	flashWarning = 2.0
	flashPeriod  = 0.25
)

var (
	wallColor   = color.RGBA{R: 33, G: 33, B: 255, A: 255}
	pelletColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	playerColor = color.RGBA{R: 255, G: 221, B: 0, A: 255}
	frightColor = color.RGBA{R: 0, G: 0, B: 255, A: 255}
	flashColor  = color.RGBA{R: 240, G: 240, B: 240, A: 255}
	eyesColor   = color.RGBA{R: 200, G: 200, B: 200, A: 255}

	roleColors = map[entities.Role]color.RGBA{
		entities.RoleDirect: {R: 255, G: 0, B: 0, A: 255},
		entities.RoleAmbush: {R: 255, G: 128, B: 255, A: 255},
		entities.RolePatrol: {R: 255, G: 128, B: 0, A: 255},
	}
)

// UI adapts a game session to ebiten's Game interface.
type UI struct {
	mu      sync.Mutex
	session *game.Session

	flash      *gween.Tween
	flashOn    bool
	fullscreen bool
	scale      float64
}

func New(s *game.Session) *UI {
	u := &UI{
		session: s,
		flash:   gween.New(0, 1, flashPeriod, ease.Linear),
	}

	// Fit the native resolution into ~75% of the display.
	m := s.Maze()
	nativeW := m.Width * tileSize
	nativeH := m.Height * tileSize
	sw, sh := ebiten.ScreenSizeInFullscreen()
	scaleW := 0.75 * float64(sw) / float64(nativeW)
	scaleH := 0.75 * float64(sh) / float64(nativeH)
	u.scale = math.Min(scaleW, scaleH)
	if u.scale <= 0 || math.IsNaN(u.scale) || math.IsInf(u.scale, 0) {
		u.scale = 1.0
	}
	return u
}

// Swap replaces the running session (used by the level hot-reload watcher).
func (u *UI) Swap(s *game.Session) {
	u.mu.Lock()
	u.session = s
	u.mu.Unlock()
}

func (u *UI) ScreenWidth() int {
	return int(float64(u.session.Maze().Width*tileSize) * u.scale)
}

func (u *UI) ScreenHeight() int {
	return int(float64(u.session.Maze().Height*tileSize) * u.scale)
}

func (u *UI) Update() error {
	u.mu.Lock()
	defer u.mu.Unlock()
	s := u.session

	var dir entities.Direction
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		dir = entities.DirUp
	} else if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		dir = entities.DirDown
	} else if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		dir = entities.DirLeft
	} else if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		dir = entities.DirRight
	}

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		s.SetPaused(!s.Paused())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		u.fullscreen = !u.fullscreen
		ebiten.SetFullscreen(u.fullscreen)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	dt := 1.0 / float64(ebiten.TPS())
	s.Update(dt, dir)

	for _, ev := range s.DrainEvents() {
		log.WithFields(log.Fields{
			"event":  ev.Kind.String(),
			"at":     ev.At,
			"points": ev.Points,
		}).Debug("game event")
	}

	if _, done := u.flash.Update(float32(dt)); done {
		u.flashOn = !u.flashOn
		u.flash.Reset()
	}
	return nil
}

func (u *UI) Draw(screen *ebiten.Image) {
	u.mu.Lock()
	s := u.session
	v := s.View()
	m := s.Maze()
	u.mu.Unlock()

	screen.Fill(color.Black)

	nativeW := m.Width * tileSize
	nativeH := m.Height * tileSize
	off := ebiten.NewImage(nativeW, nativeH)

	u.drawMaze(off, s, m)

	// player
	px, py := cellToPixels(v.Player.X, v.Player.Y)
	vector.DrawFilledCircle(off, px, py, tileSize/2-2, playerColor, true)

	for _, gh := range v.Ghosts {
		gx, gy := cellToPixels(gh.X, gh.Y)
		switch gh.Mode {
		case entities.ModeEaten, entities.ModeRegenerating:
			// just the eyes heading home
			vector.DrawFilledCircle(off, gx, gy, tileSize/4, eyesColor, true)
		case entities.ModeFrightened:
			c := frightColor
			if gh.FrightenedLeft < flashWarning && u.flashOn {
				c = flashColor
			}
			vector.DrawFilledCircle(off, gx, gy, tileSize/2-2, c, true)
		default:
			vector.DrawFilledCircle(off, gx, gy, tileSize/2-2, roleColors[gh.Role], true)
		}
	}

	hud := fmt.Sprintf("Score: %d  Lives: %d  Left: %d  FPS: %0.0f",
		v.Score, v.Lives, v.PelletsLeft, ebiten.ActualFPS())
	text.Draw(off, hud, basicfont.Face7x13, 4, 12, color.White)

	switch {
	case v.GameOver:
		drawCentered(off, "GAME OVER", nativeW, nativeH)
	case v.LevelCleared:
		drawCentered(off, "LEVEL CLEARED", nativeW, nativeH)
	case v.Paused:
		drawCentered(off, "PAUSED", nativeW, nativeH)
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(u.scale, u.scale)
	screen.DrawImage(off, op)
}

func (u *UI) Layout(outsideWidth, outsideHeight int) (int, int) {
	return u.ScreenWidth(), u.ScreenHeight()
}

func (u *UI) drawMaze(dst *ebiten.Image, s *game.Session, m *maze.Maze) {
	for row := 0; row < m.Height; row++ {
		for col := 0; col < m.Width; col++ {
			c := maze.Cell{Col: col, Row: row}
			px := float32(col * tileSize)
			py := float32(row * tileSize)
			if m.IsWall(c) {
				vector.DrawFilledRect(dst, px, py, tileSize, tileSize, wallColor, false)
				continue
			}
			switch s.ConsumableAt(c) {
			case game.ConsumableDot:
				vector.DrawFilledCircle(dst, px+tileSize/2, py+tileSize/2, tileSize/8, pelletColor, true)
			case game.ConsumablePellet:
				vector.DrawFilledCircle(dst, px+tileSize/2, py+tileSize/2, tileSize/4, pelletColor, true)
			}
		}
	}
}

func cellToPixels(x, y float64) (float32, float32) {
	return float32((x + 0.5) * tileSize), float32((y + 0.5) * tileSize)
}

func drawCentered(dst *ebiten.Image, msg string, w, h int) {
	// basicfont.Face7x13 is roughly 7 pixels per character
	tw := len(msg) * 7
	text.Draw(dst, msg, basicfont.Face7x13, (w-tw)/2, h/2, color.White)
}
