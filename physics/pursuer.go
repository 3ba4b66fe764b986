package physics

import (
	"github.com/lixenwraith/cursor-chase/component"
	"github.com/lixenwraith/cursor-chase/vmath"
)

// StepResult reports what happened during one pursuer step
type StepResult struct {
	Capped  bool
	Bounced bool
}

// StepPursuer runs one fixed step of chase physics in order:
// chase acceleration, damping, speed cap, integration, wall bounce
func StepPursuer(
	p *component.Pursuer,
	target vmath.Vec2,
	arena component.Arena,
	score int,
	chase *ChaseProfile,
	bounce *BounceProfile,
) StepResult {
	var res StepResult

	ApplyChase(p, target, chase.ChaseForce(score))
	Damp(p, chase.Damping)
	res.Capped = CapSpeed(p, p.SpeedCap)
	Integrate(p)
	res.Bounced = BounceInCircle(p, arena, bounce)

	return res
}
