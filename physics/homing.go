package physics

import (
	"github.com/lixenwraith/cursor-chase/component"
	"github.com/lixenwraith/cursor-chase/parameter"
	"github.com/lixenwraith/cursor-chase/vmath"
)

// ChaseProfile defines pursuer steering parameters
type ChaseProfile struct {
	ForceBase  float64 // Acceleration at score zero (px/step²)
	ForceScale float64 // Growth per ln(score+1)
	Damping    float64 // Velocity multiplier per step
}

// DefaultChase matches the tuned arcade feel
var DefaultChase = ChaseProfile{
	ForceBase:  parameter.ChaseForceBase,
	ForceScale: parameter.ChaseForceScale,
	Damping:    parameter.PursuerDamping,
}

// ChaseForce returns acceleration magnitude for the given score, sub-linear in score
func (c *ChaseProfile) ChaseForce(score int) float64 {
	return c.ForceBase + vmath.LogGrowth(score)*c.ForceScale
}

// ApplyChase accelerates the pursuer toward target
// Returns false when pursuer sits exactly on target and no direction exists
func ApplyChase(p *component.Pursuer, target vmath.Vec2, force float64) bool {
	dir, dist := vmath.V2Normalize(vmath.V2Sub(target, p.Position))
	if dist == 0 {
		return false
	}
	ApplyImpulse(p, vmath.V2Scale(dir, force))
	return true
}
