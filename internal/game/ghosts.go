package game

import (
	"pacman/internal/entities"
	"pacman/internal/maze"
)

// updateGhost advances one ghost's mode timers and movement for the frame.
func (s *Session) updateGhost(gh *entities.Ghost, dt float64) {
	switch gh.Mode {
	case entities.ModeEaten:
		// Relocation to the spawn cell is modeled as a timer with no
		// navigation; the mover stays frozen until it elapses.
		gh.Mode = entities.ModeRegenerating
		gh.RegenLeft = s.cfg.RegenSeconds
		fallthrough
	case entities.ModeRegenerating:
		gh.RegenLeft -= dt
		if gh.RegenLeft <= 0 {
			gh.RegenLeft = 0
			gh.Eaten = false
			gh.PlaceAt(gh.Spawn, gh.ExitDir)
			gh.Mode = s.coord.Current()
			gh.HasTarget = false
		}
		return
	case entities.ModeFrightened:
		gh.FrightenedLeft -= dt
		if gh.FrightenedLeft <= 0 {
			gh.FrightenedLeft = 0
			gh.Mode = s.coord.Current()
			gh.HasTarget = false
		}
	}

	gh.Speed = s.cfg.GhostSpeed
	if gh.Mode == entities.ModeFrightened {
		gh.Speed *= s.cfg.FrightenedSpeedFactor
	}

	frightened := gh.Mode == entities.ModeFrightened
	gh.AdvanceSteer(dt, s.maze, func(at maze.Cell) entities.Direction {
		if frightened {
			// flee: maximize distance to the player's live cell
			return chooseDirection(s.maze, at, gh.Dir, s.player.Cell, true)
		}
		if !gh.HasTarget || s.maze.IsJunction(at) {
			gh.Target = s.targetFor(gh)
			gh.HasTarget = true
		}
		return chooseDirection(s.maze, at, gh.Dir, gh.Target, false)
	})
}

// targetFor picks the ghost's target cell for its current mode and role.
func (s *Session) targetFor(gh *entities.Ghost) maze.Cell {
	if gh.Mode == entities.ModeScatter {
		return s.maze.ScatterCorner(int(gh.Role))
	}
	switch gh.Role {
	case entities.RoleAmbush:
		return targetAmbush(s.maze, s.player, s.cfg.AmbushLead)
	case entities.RolePatrol:
		return targetPatrol(s.rng, s.maze, s.player, s.cfg.PatrolChaseChance)
	default:
		return targetDirect(s.player)
	}
}

// frightenAll is the global power-pellet broadcast. Ghosts already
// frightened get their timer reset to the full duration; eaten and
// regenerating ghosts ignore it.
func (s *Session) frightenAll() {
	for _, gh := range s.ghosts {
		switch gh.Mode {
		case entities.ModeScatter, entities.ModeChase:
			gh.Mode = entities.ModeFrightened
			gh.FrightenedLeft = s.cfg.FrightenedSeconds
			gh.Reverse(s.maze)
			gh.HasTarget = false
		case entities.ModeFrightened:
			gh.FrightenedLeft = s.cfg.FrightenedSeconds
		}
	}
	s.poweredLeft = s.cfg.FrightenedSeconds
	s.player.Powered = true
	s.ghostCombo = 0
}

// broadcastMode applies a scatter/chase schedule flip to every ghost that is
// not eaten, regenerating or frightened.
func (s *Session) broadcastMode() {
	mode := s.coord.Current()
	for _, gh := range s.ghosts {
		if gh.Mode != entities.ModeScatter && gh.Mode != entities.ModeChase {
			continue
		}
		if gh.Mode != mode {
			gh.Mode = mode
			gh.HasTarget = false
		}
	}
	s.log.WithField("mode", mode.String()).Debug("schedule mode flipped")
}
