package system

import (
	"math"

	"github.com/lixenwraith/cursor-chase/parameter"
	"github.com/lixenwraith/cursor-chase/vmath"
)

// Speed is the difficulty curve output for a score
type Speed struct {
	Cap   float64 // Pursuer speed cap (px per step)
	Level int     // Display level, >= 1
}

// SpeedPolicy maps cumulative score to pursuer speed cap and display level
// Both grow with ln(score+1): smooth, monotone non-decreasing, cap saturates at PursuerMaxSpeed
func SpeedPolicy(score int) Speed {
	growth := vmath.LogGrowth(score)
	return Speed{
		Cap:   math.Min(parameter.PursuerBaseSpeed+growth*parameter.SpeedGrowthScale, parameter.PursuerMaxSpeed),
		Level: int(math.Floor(growth*parameter.LevelGrowthScale)) + 1,
	}
}

// LevelTracker reports display level changes only when the level actually moves
type LevelTracker struct {
	level int
}

func NewLevelTracker() *LevelTracker {
	return &LevelTracker{level: 1}
}

// Update stores level and returns true if it differs from the previous value
func (t *LevelTracker) Update(level int) bool {
	if level == t.level {
		return false
	}
	t.level = level
	return true
}

func (t *LevelTracker) Reset() { t.level = 1 }
