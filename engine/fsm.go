package engine

import (
	"github.com/lixenwraith/cursor-chase/component"
	"github.com/lixenwraith/cursor-chase/input"
)

// transition is one edge of the session state graph
type transition struct {
	from component.GameMode
	on   input.IntentType
	to   component.GameMode
}

// transitions is the complete graph; pairs not listed are ignored
// GameOver is entered only from Playing by collision, never by intent
var transitions = []transition{
	{component.ModeWaiting, input.IntentStart, component.ModePlaying},
	{component.ModeGameOver, input.IntentRestart, component.ModeWaiting},
}

// resolveIntent maps the activate gesture onto the semantic intent for mode
// The input source cannot see the mode, so click/tap/space always arrive as IntentStart
func resolveIntent(mode component.GameMode, it input.IntentType) input.IntentType {
	if it == input.IntentStart && mode == component.ModeGameOver {
		return input.IntentRestart
	}
	return it
}

// nextMode returns the target mode for an intent, ok=false if the pair has no edge
func nextMode(mode component.GameMode, it input.IntentType) (component.GameMode, bool) {
	for _, t := range transitions {
		if t.from == mode && t.on == it {
			return t.to, true
		}
	}
	return mode, false
}
