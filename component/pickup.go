package component

import (
	"time"

	"github.com/lixenwraith/cursor-chase/vmath"
)

// PickupKind discriminates collectible behavior
type PickupKind uint8

const (
	PickupNormal PickupKind = iota
	PickupHazardous
)

func (k PickupKind) String() string {
	if k == PickupHazardous {
		return "hazardous"
	}
	return "normal"
}

// Pickup is a collectible star
// SpawnTime is simulation time since session start
type Pickup struct {
	ID       uint64
	Position vmath.Vec2
	Radius   float64
	Kind     PickupKind

	SpawnTime time.Duration
	Lifetime  time.Duration

	Collected bool
	Blinking  bool
	Visible   bool // Render phase; false during the hidden half of a blink
}

// Remaining returns lifetime left at now, negative once expired
func (p *Pickup) Remaining(now time.Duration) time.Duration {
	return p.Lifetime - (now - p.SpawnTime)
}
