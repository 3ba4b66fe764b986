package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Palette, matching the browser original where it had one
var (
	ColBackground = mustParseHex("#000000")
	ColArenaFloor = mustParseHex("#111111")
	ColArenaRing  = mustParseHex("#ffffff")
	ColPickup     = mustParseHex("#ffffff")
	ColHazard     = mustParseHex("#ff4444")
	ColPlayer     = mustParseHex("#ffffff")
	ColHUDText    = mustParseHex("#e0e0e0")
	ColHUDDim     = mustParseHex("#808080")
	ColWarning    = mustParseHex("#ffd000")
	ColGameOver   = mustParseHex("#ff5555")
)

// Tcell converts a colorful color to a tcell truecolor
func Tcell(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// FromRGB converts a packed 0xRRGGBB value
func FromRGB(v uint32) colorful.Color {
	return colorful.Color{
		R: float64((v>>16)&0xFF) / 255,
		G: float64((v>>8)&0xFF) / 255,
		B: float64(v&0xFF) / 255,
	}
}

// Blend mixes a toward b in Lab space, t in [0,1]
func Blend(a, b colorful.Color, t float64) colorful.Color {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	return a.BlendLab(b, t).Clamped()
}

// HazardBarColor fades from warning yellow to hazard red as the countdown drains
func HazardBarColor(percent float64) tcell.Color {
	return Tcell(Blend(ColHazard, ColWarning, percent/100))
}

// BlinkColor dims a pickup during its final second so the blink reads on low-contrast terminals
func BlinkColor(c colorful.Color, blinking bool) tcell.Color {
	if !blinking {
		return Tcell(c)
	}
	return Tcell(Blend(c, ColArenaFloor, 0.35))
}

// mustParseHex parses a hex color, panicking on malformed input
func mustParseHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic("MustParseHex: " + err.Error())
	}
	return c
}
