package input

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/lixenwraith/cursor-chase/component"
	"github.com/lixenwraith/cursor-chase/parameter"
	"github.com/lixenwraith/cursor-chase/vmath"
)

// ErrUnknownPolicy is returned for a boundary policy name that is not recognized
var ErrUnknownPolicy = errors.New("unknown boundary policy")

// BoundaryPolicy decides what touching the arena wall does to the player
type BoundaryPolicy uint8

const (
	// BoundaryStrict clamps and ends the game
	BoundaryStrict BoundaryPolicy = iota
	// BoundaryLenient only clamps
	BoundaryLenient
)

func (p BoundaryPolicy) String() string {
	if p == BoundaryLenient {
		return "lenient"
	}
	return "strict"
}

// ParseBoundaryPolicy converts a config string into a policy
func ParseBoundaryPolicy(s string) (BoundaryPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "strict":
		return BoundaryStrict, nil
	case "lenient":
		return BoundaryLenient, nil
	default:
		return BoundaryStrict, errors.Wrapf(ErrUnknownPolicy, "%q", s)
	}
}

// MapResult is the outcome of mapping one raw point
type MapResult struct {
	Position vmath.Vec2
	// Touched is set when the point reached the boundary ring while playing
	Touched bool
}

// Mapper converts raw device coordinates into the arena-space player position
type Mapper struct {
	Margin float64
	last   vmath.Vec2
}

// NewMapper creates a mapper with the default boundary margin
func NewMapper() *Mapper {
	return &Mapper{Margin: parameter.BoundaryMargin}
}

// Map applies inversion and boundary clamp for the current mode
// Outside of play the raw point passes through untouched, for idle visualization
// Mirroring is a pure function of the reversed flag, never cumulative
func (m *Mapper) Map(raw vmath.Vec2, arena component.Arena, reversed bool, mode component.GameMode) MapResult {
	if mode != component.ModePlaying {
		m.last = raw
		return MapResult{Position: raw}
	}

	p := raw
	if reversed {
		p = vmath.MirrorThrough(raw, arena.Center)
	}

	limit := arena.Radius - m.Margin
	if limit < 0 {
		limit = 0
	}
	clamped, outside := vmath.ClampToCircle(p, arena.Center, limit)

	m.last = clamped
	return MapResult{Position: clamped, Touched: outside}
}

// Last returns the most recently emitted position
func (m *Mapper) Last() vmath.Vec2 {
	return m.last
}
