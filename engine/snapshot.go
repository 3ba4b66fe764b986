package engine

import (
	"time"

	"github.com/lixenwraith/cursor-chase/component"
	"github.com/lixenwraith/cursor-chase/input"
	"github.com/lixenwraith/cursor-chase/vmath"
)

// Snapshot is a read-only copy of everything a frame needs
// Safe to hold after the step returns; slices are not shared with the game
type Snapshot struct {
	SessionID string
	Mode      component.GameMode
	Reason    component.GameOverReason
	Score     int
	Level     int
	HighScore int
	Now       time.Duration

	Viewport component.Viewport
	Arena    component.Arena
	Pursuer  component.Pursuer
	Player   vmath.Vec2
	Pickups  []component.Pickup

	ControlsReversed bool
	ReverseRemaining time.Duration
	ReverseFraction  float64 // Remaining over full duration, 0..1

	Device input.Device
	Policy input.BoundaryPolicy
}

// Renderer draws one frame
type Renderer interface {
	Render(snap Snapshot)
}
