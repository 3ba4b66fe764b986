package system

import (
	"github.com/lixenwraith/cursor-chase/component"
	"github.com/lixenwraith/cursor-chase/parameter"
	"github.com/lixenwraith/cursor-chase/vmath"
)

// Caught reports whether the pursuer reached the player
// Strict inequality: exactly at radius+margin is a miss
func Caught(p *component.Pursuer, player vmath.Vec2) bool {
	return vmath.CirclesOverlap(p.Position, player, p.Radius+parameter.CatchMargin)
}
