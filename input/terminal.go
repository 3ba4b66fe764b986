package input

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/cursor-chase/parameter"
	"github.com/lixenwraith/cursor-chase/vmath"
)

// CellToPixel converts a terminal cell to the pixel at its center
func CellToPixel(col, row int) vmath.Vec2 {
	return vmath.V2(
		(float64(col)+0.5)*parameter.CellWidth,
		(float64(row)+0.5)*parameter.CellHeight,
	)
}

// Translator turns terminal events into slot writes
// Tracks button state so a held button yields one activation, not one per motion report
type Translator struct {
	slot       *Slot
	buttonDown bool
}

// NewTranslator creates a translator writing into slot
func NewTranslator(slot *Slot) *Translator {
	return &Translator{slot: slot}
}

// HandleEvent applies one terminal event, returns the intent it produced (IntentNone if only movement)
// Only game intents are queued on the slot; host intents (quit, mute, resize) are returned for the caller
func (t *Translator) HandleEvent(ev tcell.Event) IntentType {
	switch ev := ev.(type) {
	case *tcell.EventMouse:
		col, row := ev.Position()
		p := CellToPixel(col, row)
		t.slot.SetRaw(p.X, p.Y)

		pressed := ev.Buttons()&tcell.Button1 != 0
		edge := pressed && !t.buttonDown
		t.buttonDown = pressed
		if edge {
			return t.push(IntentStart)
		}
		return IntentNone

	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC, tcell.KeyCtrlQ:
			return t.push(IntentQuit)
		case tcell.KeyEnter:
			return t.push(IntentStart)
		case tcell.KeyRune:
			switch ev.Rune() {
			case ' ':
				return t.push(IntentStart)
			case 'q', 'Q':
				return t.push(IntentQuit)
			case 'm', 'M':
				return t.push(IntentToggleMute)
			}
		}
		return IntentNone

	case *tcell.EventResize:
		return t.push(IntentResize)
	}
	return IntentNone
}

func (t *Translator) push(it IntentType) IntentType {
	if it.IsGame() {
		t.slot.Push(Intent{Type: it})
	}
	return it
}
