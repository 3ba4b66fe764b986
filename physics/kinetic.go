package physics

import (
	"github.com/lixenwraith/cursor-chase/component"
	"github.com/lixenwraith/cursor-chase/vmath"
)

// Integrate advances position by one step of velocity: p = p + v
// Velocity is already a per-step displacement
func Integrate(p *component.Pursuer) {
	p.Position = vmath.V2Add(p.Position, p.Velocity)
}

// ApplyImpulse adds velocity delta
func ApplyImpulse(p *component.Pursuer, dv vmath.Vec2) {
	p.Velocity = vmath.V2Add(p.Velocity, dv)
}

// Damp scales velocity by factor, modelling drag
func Damp(p *component.Pursuer, factor float64) {
	p.Velocity = vmath.V2Scale(p.Velocity, factor)
}

// CapSpeed rescales velocity to maxSpeed when exceeded, preserving direction
// Returns true if the cap was applied
func CapSpeed(p *component.Pursuer, maxSpeed float64) bool {
	if vmath.V2MagSq(p.Velocity) <= maxSpeed*maxSpeed {
		return false
	}
	p.Velocity = vmath.ClampMagnitude(p.Velocity, maxSpeed)
	return true
}
