package render

import (
	"fmt"
	"math"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/cursor-chase/component"
	"github.com/lixenwraith/cursor-chase/engine"
	"github.com/lixenwraith/cursor-chase/parameter"
	"github.com/lixenwraith/cursor-chase/status"
	"github.com/lixenwraith/cursor-chase/vmath"
	"github.com/mattn/go-runewidth"
)

// TerminalRenderer draws snapshots onto a tcell screen and keeps HUD state pushed through the display sink
// Sink calls and Render run on the simulation goroutine; only the mute flag is shared
type TerminalRenderer struct {
	screen tcell.Screen
	status *status.Registry
	debug  bool
	muted  atomic.Bool

	score, level int

	hazardVisible bool
	hazardPercent float64

	instrVisible bool
	instrText    string

	overVisible bool
	overFinal   int
	overHigh    int
	overReason  string
}

// NewTerminalRenderer creates a renderer on an initialized screen
// reg may be nil; with debug set the metric summary is drawn on the last row
func NewTerminalRenderer(screen tcell.Screen, reg *status.Registry, debug bool) *TerminalRenderer {
	return &TerminalRenderer{
		screen: screen,
		status: reg,
		debug:  debug,
		level:  1,
	}
}

// Viewport reports the screen size in input pixels
func (r *TerminalRenderer) Viewport() component.Viewport {
	cols, rows := r.screen.Size()
	return component.Viewport{
		Width:  float64(cols) * parameter.CellWidth,
		Height: float64(rows) * parameter.CellHeight,
	}
}

func (r *TerminalRenderer) SetMuted(m bool) { r.muted.Store(m) }

// Sink

func (r *TerminalRenderer) Score(score int) { r.score = score }

func (r *TerminalRenderer) Level(level int) { r.level = level }

func (r *TerminalRenderer) Hazard(visible bool, percent float64) {
	r.hazardVisible = visible
	r.hazardPercent = percent
}

func (r *TerminalRenderer) Instructions(visible bool, text string) {
	r.instrVisible = visible
	r.instrText = text
}

func (r *TerminalRenderer) GameOver(visible bool, final, high int, reason string) {
	r.overVisible = visible
	r.overFinal = final
	r.overHigh = high
	r.overReason = reason
}

// Render draws one frame
func (r *TerminalRenderer) Render(snap engine.Snapshot) {
	bg := tcell.StyleDefault.Background(Tcell(ColBackground))
	r.screen.SetStyle(bg)
	r.screen.Clear()

	cols, rows := r.screen.Size()
	if cols <= 0 || rows <= 0 {
		return
	}

	r.drawArena(snap.Arena, cols, rows)
	r.drawPickups(snap.Pickups, cols, rows)
	r.drawPursuer(snap.Pursuer, cols, rows)
	r.drawPlayer(snap.Player, cols, rows)

	r.drawHUD(snap, cols)
	if r.hazardVisible {
		r.drawHazardBar(cols)
	}
	if r.instrVisible && rows > 2 {
		drawCentered(r.screen, cols, rows-2, r.instrText, bg.Foreground(Tcell(ColHUDText)).Bold(true))
	}
	if r.overVisible {
		r.drawGameOver(cols, rows)
	}
	if r.debug && r.status != nil {
		drawText(r.screen, 0, rows-1, cols, r.status.Summary(), bg.Foreground(Tcell(ColHUDDim)))
	}

	r.screen.Show()
}

// cellOf maps an arena pixel to the containing cell
func cellOf(p vmath.Vec2) (int, int) {
	return int(math.Floor(p.X / parameter.CellWidth)), int(math.Floor(p.Y / parameter.CellHeight))
}

func (r *TerminalRenderer) put(x, y, cols, rows int, ch rune, style tcell.Style) {
	if x < 0 || y < 0 || x >= cols || y >= rows {
		return
	}
	r.screen.SetContent(x, y, ch, nil, style)
}

func (r *TerminalRenderer) drawArena(a component.Arena, cols, rows int) {
	floor := tcell.StyleDefault.Background(Tcell(ColArenaFloor))
	ring := tcell.StyleDefault.Background(Tcell(ColBackground)).Foreground(Tcell(ColArenaRing))

	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			d := vmath.Distance(a.Center, cellCenter(x, y))
			switch {
			case math.Abs(d-a.Radius) <= parameter.ArenaRingThickness:
				r.screen.SetContent(x, y, parameter.GlyphArena, nil, ring)
			case d < a.Radius:
				r.screen.SetContent(x, y, ' ', nil, floor)
			}
		}
	}
}

func cellCenter(col, row int) vmath.Vec2 {
	return vmath.V2((float64(col)+0.5)*parameter.CellWidth, (float64(row)+0.5)*parameter.CellHeight)
}

func (r *TerminalRenderer) drawPickups(pickups []component.Pickup, cols, rows int) {
	floor := tcell.StyleDefault.Background(Tcell(ColArenaFloor))
	for _, p := range pickups {
		if !p.Visible || p.Collected {
			continue
		}
		col := ColPickup
		if p.Kind == component.PickupHazardous {
			col = ColHazard
		}
		x, y := cellOf(p.Position)
		r.put(x, y, cols, rows, parameter.GlyphPickup, floor.Foreground(BlinkColor(col, p.Blinking)))
	}
}

// drawPursuer fills every cell whose center lies inside the disc, and at least the center cell
func (r *TerminalRenderer) drawPursuer(p component.Pursuer, cols, rows int) {
	style := tcell.StyleDefault.Background(Tcell(ColArenaFloor)).Foreground(Tcell(FromRGB(p.Color)))
	cx, cy := cellOf(p.Position)
	spanX := int(math.Ceil(p.Radius/parameter.CellWidth)) + 1
	spanY := int(math.Ceil(p.Radius/parameter.CellHeight)) + 1

	for y := cy - spanY; y <= cy+spanY; y++ {
		for x := cx - spanX; x <= cx+spanX; x++ {
			if vmath.Distance(cellCenter(x, y), p.Position) <= p.Radius {
				r.put(x, y, cols, rows, parameter.GlyphPursuer, style)
			}
		}
	}
	r.put(cx, cy, cols, rows, parameter.GlyphPursuer, style)
}

func (r *TerminalRenderer) drawPlayer(p vmath.Vec2, cols, rows int) {
	x, y := cellOf(p)
	style := tcell.StyleDefault.Background(Tcell(ColBackground)).Foreground(Tcell(ColPlayer)).Bold(true)
	r.put(x, y, cols, rows, parameter.GlyphPlayer, style)
}

func (r *TerminalRenderer) drawHUD(snap engine.Snapshot, cols int) {
	style := tcell.StyleDefault.Background(Tcell(ColBackground)).Foreground(Tcell(ColHUDText))
	left := fmt.Sprintf(" Score: %d   Level: %d   High: %d", r.score, r.level, snap.HighScore)
	used := drawText(r.screen, 0, 0, cols, left, style)

	right := ""
	if r.muted.Load() {
		right = "[muted] "
	}
	if w := runewidth.StringWidth(right); w > 0 && cols-w > used {
		drawText(r.screen, cols-w, 0, w, right, style.Foreground(Tcell(ColHUDDim)))
	}
}

func (r *TerminalRenderer) drawHazardBar(cols int) {
	bg := tcell.StyleDefault.Background(Tcell(ColBackground))
	label := " " + parameter.HazardWarningText + " "
	x := drawText(r.screen, 0, 1, cols, label, bg.Foreground(Tcell(ColHazard)).Bold(true))

	filled := int(math.Round(r.hazardPercent / 100 * parameter.HazardBarWidth))
	barStyle := bg.Foreground(HazardBarColor(r.hazardPercent))
	for i := 0; i < parameter.HazardBarWidth && x+i < cols; i++ {
		ch := parameter.GlyphBarEmpt
		if i < filled {
			ch = parameter.GlyphBarFull
		}
		r.screen.SetContent(x+i, 1, ch, nil, barStyle)
	}
}

func (r *TerminalRenderer) drawGameOver(cols, rows int) {
	bg := tcell.StyleDefault.Background(Tcell(ColBackground))
	lines := []struct {
		text  string
		style tcell.Style
	}{
		{"GAME OVER", bg.Foreground(Tcell(ColGameOver)).Bold(true)},
		{r.overReason, bg.Foreground(Tcell(ColHUDText))},
		{fmt.Sprintf("Final score: %d   High score: %d", r.overFinal, r.overHigh), bg.Foreground(Tcell(ColHUDText))},
		{parameter.RestartHintText, bg.Foreground(Tcell(ColHUDDim))},
	}

	top := rows/2 - len(lines)/2
	for i, l := range lines {
		y := top + i
		if y < 0 || y >= rows || l.text == "" {
			continue
		}
		// Blank strip behind the text keeps the panel readable over the arena
		w := runewidth.StringWidth(l.text) + 4
		x0 := (cols - w) / 2
		for x := max(x0, 0); x < min(x0+w, cols); x++ {
			r.screen.SetContent(x, y, ' ', nil, bg)
		}
		drawCentered(r.screen, cols, y, l.text, l.style)
	}
}
