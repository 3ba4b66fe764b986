package system

import (
	"testing"

	"github.com/lixenwraith/cursor-chase/component"
	"github.com/lixenwraith/cursor-chase/parameter"
	"github.com/lixenwraith/cursor-chase/vmath"
)

// TestCaughtThreshold places the player just outside and just inside catch range
func TestCaughtThreshold(t *testing.T) {
	arena := component.Arena{Center: vmath.V2(300, 300), Radius: 300}
	p := component.NewPursuer()
	p.Position = arena.Center
	reach := p.Radius + parameter.CatchMargin

	if Caught(&p, vmath.V2(arena.Center.X+reach+1, arena.Center.Y)) {
		t.Error("Expected no catch at reach+1")
	}
	if Caught(&p, vmath.V2(arena.Center.X+reach, arena.Center.Y)) {
		t.Error("Expected no catch exactly at reach")
	}
	if !Caught(&p, vmath.V2(arena.Center.X+reach-1, arena.Center.Y)) {
		t.Error("Expected catch at reach-1")
	}
}
