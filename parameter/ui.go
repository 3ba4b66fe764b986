package parameter

// Terminal Cell Geometry
const (
	// CellWidth and CellHeight convert terminal cells to input pixels
	// 1:2 keeps the arena round on typical monospace fonts
	CellWidth  = 8.0
	CellHeight = 16.0
)

// Text
const (
	InstructionsMouse = "Click or press SPACE to start playing!"
	InstructionsTouch = "Tap to start playing!"

	ReasonBoundaryText = "You hit the wall!"
	ReasonCaughtText   = "The ball caught you!"

	HazardWarningText = "CONTROLS REVERSED"
	RestartHintText   = "Click or press SPACE to continue"
)

// Glyphs
const (
	GlyphArena   = '·'
	GlyphPlayer  = '◎'
	GlyphPursuer = '●'
	GlyphPickup  = '★'
	GlyphBarFull = '█'
	GlyphBarEmpt = '░'
)

// Layout
const (
	// HazardBarWidth is the hazard countdown bar length in cells
	HazardBarWidth = 24

	// ArenaRingThickness is the ring half-width in pixels
	ArenaRingThickness = 6.0
)
