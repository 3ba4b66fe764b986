package component

import (
	"math"

	"github.com/lixenwraith/cursor-chase/parameter"
	"github.com/lixenwraith/cursor-chase/vmath"
)

// Viewport is the input surface size in pixels
type Viewport struct {
	Width, Height float64
}

// Arena is the circular play area, fixed for the duration of a session
type Arena struct {
	Center vmath.Vec2
	Radius float64
}

// ResolveArena derives arena geometry from the viewport
// The canvas is the largest square fitting the viewport fractions (capped at ArenaCanvasMax),
// centered in the viewport; the arena radius is a fixed fraction of its edge
// Degenerate viewports still produce a positive radius
func ResolveArena(v Viewport) Arena {
	size := math.Min(v.Width*parameter.ArenaWidthFraction, v.Height*parameter.ArenaHeightFraction)
	size = math.Min(size, parameter.ArenaCanvasMax)
	radius := size * parameter.ArenaRadiusFraction
	if radius <= 0 {
		radius = 1
	}
	return Arena{
		Center: vmath.V2(v.Width/2, v.Height/2),
		Radius: radius,
	}
}

// Contains reports whether a disc of radius r at p lies fully inside the arena (with float tolerance)
func (a Arena) Contains(p vmath.Vec2, r float64) bool {
	return vmath.Distance(a.Center, p)+r <= a.Radius+1e-6
}
