package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// drawText writes s starting at (x, y), honoring wide runes, clipped to maxWidth cells
// Returns the number of cells used
func drawText(screen tcell.Screen, x, y, maxWidth int, s string, style tcell.Style) int {
	if maxWidth <= 0 {
		return 0
	}
	if runewidth.StringWidth(s) > maxWidth {
		s = runewidth.Truncate(s, maxWidth, "…")
	}
	used := 0
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		screen.SetContent(x+used, y, r, nil, style)
		used += w
	}
	return used
}

// drawCentered writes s centered on row y within [0, width)
func drawCentered(screen tcell.Screen, width, y int, s string, style tcell.Style) {
	w := runewidth.StringWidth(s)
	x := (width - w) / 2
	if x < 0 {
		x = 0
	}
	drawText(screen, x, y, width-x, s, style)
}
