package physics

import (
	"github.com/lixenwraith/cursor-chase/component"
	"github.com/lixenwraith/cursor-chase/parameter"
	"github.com/lixenwraith/cursor-chase/vmath"
)

// BounceProfile defines wall collision response
type BounceProfile struct {
	Restitution float64 // Velocity multiplier after reflection, < 1 for inelastic
}

var DefaultBounce = BounceProfile{Restitution: parameter.PursuerRestitution}

// BounceInCircle keeps the pursuer inside the arena
// On overlap: push back along the center→position normal, reflect velocity, apply restitution
// Returns true if a bounce occurred
func BounceInCircle(p *component.Pursuer, arena component.Arena, profile *BounceProfile) bool {
	n, dist := vmath.V2Normalize(vmath.V2Sub(p.Position, arena.Center))
	overlap := dist + p.Radius - arena.Radius
	if overlap <= 0 {
		return false
	}
	// No room to move, or no normal to reflect about: pin at center
	if dist == 0 || p.Radius >= arena.Radius {
		p.Position = arena.Center
		p.Velocity = vmath.Vec2{}
		return true
	}

	p.Position = vmath.V2Sub(p.Position, vmath.V2Scale(n, overlap))
	p.Velocity = vmath.V2Scale(vmath.Reflect(p.Velocity, n), profile.Restitution)
	return true
}
