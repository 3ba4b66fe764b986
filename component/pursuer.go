package component

import (
	"math"

	"github.com/lixenwraith/cursor-chase/parameter"
	"github.com/lixenwraith/cursor-chase/vmath"
)

// Pursuer is the chasing ball; velocity is displacement per fixed step
type Pursuer struct {
	Position vmath.Vec2
	Velocity vmath.Vec2
	Radius   float64

	BaseSpeed float64
	SpeedCap  float64 // Current cap from the difficulty curve

	Color uint32 // 0xRRGGBB
}

// NewPursuer creates a pursuer with default physical parameters, not yet placed
func NewPursuer() Pursuer {
	return Pursuer{
		Radius:    parameter.PursuerRadius,
		BaseSpeed: parameter.PursuerBaseSpeed,
		SpeedCap:  parameter.PursuerBaseSpeed,
		Color:     0xFFFFFF,
	}
}

// Reset places the pursuer above the arena center at rest
// The offset shrinks on small arenas so the pursuer always starts inside the wall
func (p *Pursuer) Reset(a Arena) {
	offset := math.Min(parameter.PursuerStartOffset, a.Radius/2)
	p.Position = vmath.V2(a.Center.X, a.Center.Y-offset)
	p.Velocity = vmath.Vec2{}
	p.SpeedCap = p.BaseSpeed
}
