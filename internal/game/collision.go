package game

import (
	log "github.com/sirupsen/logrus"

	"pacman/internal/entities"
	"pacman/internal/maze"
)

// resolveCollisions runs once per frame after every mover has advanced.
// Collisions are cell-level, plus a crossing check so two movers swapping
// cells within one frame still collide at any speed. Ghosts are visited in
// role-priority order, so simultaneous contacts resolve deterministically.
func (s *Session) resolveCollisions(prevPlayer maze.Cell, prevGhosts []maze.Cell) {
	for i, gh := range s.ghosts {
		if !gh.Collidable() {
			continue
		}
		hit := gh.Cell == s.player.Cell ||
			(gh.Cell == prevPlayer && s.player.Cell == prevGhosts[i])
		if !hit {
			continue
		}

		if gh.Mode == entities.ModeFrightened {
			points := s.cfg.GhostPoints << s.ghostCombo
			if points > s.cfg.GhostPointsCap {
				points = s.cfg.GhostPointsCap
			}
			s.ghostCombo++
			s.score += points
			gh.Mode = entities.ModeEaten
			gh.Eaten = true
			s.emit(Event{Kind: EventGhostEaten, Cell: gh.Cell, Role: gh.Role, Points: points})
			s.log.WithFields(log.Fields{
				"role":   gh.Role.String(),
				"points": points,
			}).Debug("ghost eaten")
			continue
		}

		// Scatter or chase: the player is captured.
		s.player.Lives--
		s.emit(Event{Kind: EventPlayerCaptured, Cell: s.player.Cell, Role: gh.Role, Lives: s.player.Lives})
		s.log.WithFields(log.Fields{
			"role":  gh.Role.String(),
			"lives": s.player.Lives,
		}).Info("player captured")
		if s.player.Lives <= 0 {
			s.gameOver = true
			s.emit(Event{Kind: EventGameOver, Points: s.score})
			s.log.WithField("score", s.score).Info("game over")
		} else {
			s.resetPositions()
		}
		return
	}
}
