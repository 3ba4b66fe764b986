package input

import (
	"strings"

	"github.com/pkg/errors"
)

// IntentType discriminates semantic actions produced by the input source
type IntentType uint8

const (
	IntentNone IntentType = iota

	IntentStart      // Space, click, tap while waiting
	IntentRestart    // Space, click, tap after game over
	IntentQuit       // Esc, Ctrl+C, q
	IntentToggleMute // m
	IntentResize     // Terminal resize
)

func (t IntentType) String() string {
	switch t {
	case IntentStart:
		return "start"
	case IntentRestart:
		return "restart"
	case IntentQuit:
		return "quit"
	case IntentToggleMute:
		return "toggle_mute"
	case IntentResize:
		return "resize"
	default:
		return "none"
	}
}

// IsGame reports whether the simulation consumes the intent
func (t IntentType) IsGame() bool {
	return t == IntentStart || t == IntentRestart
}

// Intent is a queued user request
// The input source cannot see game mode, so a single "activate" gesture is
// queued as IntentStart and the engine interprets it against the current mode
type Intent struct {
	Type IntentType
}

// Device identifies the pointing hardware, selects instruction wording
type Device uint8

const (
	DeviceMouse Device = iota
	DeviceTouch
)

func (d Device) String() string {
	if d == DeviceTouch {
		return "touch"
	}
	return "mouse"
}

// ErrUnknownDevice is returned for a device name that is not recognized
var ErrUnknownDevice = errors.New("unknown device")

// ParseDevice converts a config string into a device
func ParseDevice(s string) (Device, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "mouse":
		return DeviceMouse, nil
	case "touch":
		return DeviceTouch, nil
	default:
		return DeviceMouse, errors.Wrapf(ErrUnknownDevice, "%q", s)
	}
}
