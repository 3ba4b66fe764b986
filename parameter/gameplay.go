package parameter

import "time"

// Arena Geometry
const (
	// ArenaCanvasMax is the largest canvas edge in pixels
	ArenaCanvasMax = 600.0

	// ArenaWidthFraction and ArenaHeightFraction bound the canvas inside the viewport
	ArenaWidthFraction  = 0.9
	ArenaHeightFraction = 0.8

	// ArenaRadiusFraction is arena radius relative to canvas edge
	ArenaRadiusFraction = 0.45

	// BoundaryMargin is the inset from the arena wall where the player is clamped
	BoundaryMargin = 10.0
)

// Player
const (
	// PlayerRadius is the drawn marker radius, also used for pickup reach
	PlayerRadius = 6.0
)

// Pursuer
const (
	PursuerRadius = 15.0

	// PursuerBaseSpeed is the speed cap at score zero (px per step)
	PursuerBaseSpeed = 3.5

	// PursuerMaxSpeed is the absolute speed cap (px per step)
	PursuerMaxSpeed = 12.0

	// PursuerStartOffset places the pursuer above the arena center at session start
	PursuerStartOffset = 100.0

	// ChaseForceBase and ChaseForceScale define force = base + ln(score+1)*scale
	ChaseForceBase  = 0.3
	ChaseForceScale = 0.05

	// PursuerDamping is applied to velocity every step after acceleration
	PursuerDamping = 0.97

	// PursuerRestitution scales velocity after a wall bounce
	PursuerRestitution = 0.85

	// CatchMargin extends pursuer radius for the catch test
	CatchMargin = 8.0
)

// Difficulty Curve
const (
	// SpeedGrowthScale is cap growth per ln(score+1)
	SpeedGrowthScale = 0.5

	// LevelGrowthScale buckets ln(score+1) into display levels
	LevelGrowthScale = 2.0
)

// Hazard
const (
	// ReverseDuration is how long controls stay mirrored after a hazardous pickup
	ReverseDuration = 3000 * time.Millisecond
)

// HighScoreKey is the store key for the persisted record
const HighScoreKey = "cursorChaseHighScore"
