package game

import (
	"fmt"

	"pacman/internal/entities"
)

type phase struct {
	mode    entities.Mode
	seconds float64
}

func phasesFromConfig(cfgs []PhaseConfig) ([]phase, error) {
	phases := make([]phase, 0, len(cfgs))
	for i, pc := range cfgs {
		var mode entities.Mode
		switch pc.Mode {
		case "scatter":
			mode = entities.ModeScatter
		case "chase":
			mode = entities.ModeChase
		default:
			return nil, fmt.Errorf("game: schedule phase %d: mode must be scatter or chase, got %q", i, pc.Mode)
		}
		if pc.Seconds < 0 {
			return nil, fmt.Errorf("game: schedule phase %d: negative duration", i)
		}
		if pc.Seconds == 0 && i != len(cfgs)-1 {
			return nil, fmt.Errorf("game: schedule phase %d: only the final phase may be open-ended", i)
		}
		phases = append(phases, phase{mode: mode, seconds: pc.Seconds})
	}
	return phases, nil
}

// coordinator walks the scatter/chase schedule. Phases are consumed once and
// never restart; a zero-second final phase holds its mode forever, and a
// timed final phase holds after it elapses.
type coordinator struct {
	phases []phase
	idx    int
	left   float64
}

func newCoordinator(phases []phase) *coordinator {
	return &coordinator{phases: phases, left: phases[0].seconds}
}

// Current returns the mode the schedule currently dictates.
func (c *coordinator) Current() entities.Mode {
	return c.phases[c.idx].mode
}

// Advance moves the schedule clock and reports whether the active mode
// flipped this frame. Underflow is clamped so a phase elapses exactly once
// even with a large dt.
func (c *coordinator) Advance(dt float64) bool {
	if dt <= 0 || c.phases[c.idx].seconds == 0 {
		return false
	}
	before := c.phases[c.idx].mode
	c.left -= dt
	for c.left <= 0 && c.idx < len(c.phases)-1 {
		c.idx++
		if c.phases[c.idx].seconds == 0 {
			c.left = 0
			break
		}
		c.left += c.phases[c.idx].seconds
	}
	if c.left < 0 {
		c.left = 0
	}
	return c.phases[c.idx].mode != before
}
