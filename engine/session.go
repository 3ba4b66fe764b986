package engine

import (
	"time"

	"github.com/lixenwraith/cursor-chase/component"
)

// Session is the single owned state of one play-through
// Reset on every transition into Playing and into Waiting
type Session struct {
	ID     string
	Mode   component.GameMode
	Score  int
	Level  int
	Reason component.GameOverReason

	// Now is simulation time since the session was created
	Now time.Duration

	// Hazard state: reversed while Now < ReverseUntil
	ControlsReversed bool
	ReverseUntil     time.Duration

	// Generation increments on every reset; deferred tasks from older generations are stale
	Generation uint64
}

// reset clears per-session values, keeping the generation counter moving forward
func (s *Session) reset(id string, mode component.GameMode) {
	*s = Session{
		ID:         id,
		Mode:       mode,
		Level:      1,
		Generation: s.Generation + 1,
	}
}

// ReverseRemaining returns hazard time left, zero when inactive
func (s *Session) ReverseRemaining() time.Duration {
	if !s.ControlsReversed || s.Now >= s.ReverseUntil {
		return 0
	}
	return s.ReverseUntil - s.Now
}
