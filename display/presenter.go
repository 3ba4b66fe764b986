package display

import (
	"math"

	"github.com/lixenwraith/cursor-chase/component"
	"github.com/lixenwraith/cursor-chase/engine"
	"github.com/lixenwraith/cursor-chase/event"
	"github.com/lixenwraith/cursor-chase/input"
	"github.com/lixenwraith/cursor-chase/parameter"
)

type hazardState struct {
	visible bool
	percent float64
}

type instructionState struct {
	visible bool
	text    string
}

type gameOverState struct {
	visible     bool
	final, high int
	reason      string
}

// Presenter turns game events and frame snapshots into Sink calls
// Each channel remembers the last value sent; identical repeats are dropped
type Presenter struct {
	sink   Sink
	device input.Device
	primed bool

	score        cached[int]
	level        cached[int]
	hazard       cached[hazardState]
	instructions cached[instructionState]
	gameOver     cached[gameOverState]
}

// cached holds the last value sent on one channel
type cached[T comparable] struct {
	set  bool
	last T
}

// changed records v and reports whether it differs from the previous value
func (c *cached[T]) changed(v T) bool {
	if c.set && c.last == v {
		return false
	}
	c.set = true
	c.last = v
	return true
}

func NewPresenter(sink Sink, device input.Device) *Presenter {
	return &Presenter{sink: sink, device: device}
}

// InstructionText returns the start prompt for a pointing device
func InstructionText(d input.Device) string {
	if d == input.DeviceTouch {
		return parameter.InstructionsTouch
	}
	return parameter.InstructionsMouse
}

// ReasonText returns the player-facing game-over explanation
func ReasonText(r component.GameOverReason) string {
	switch r {
	case component.ReasonBoundary:
		return parameter.ReasonBoundaryText
	case component.ReasonCaught:
		return parameter.ReasonCaughtText
	default:
		return ""
	}
}

func (p *Presenter) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventSessionStarted,
		event.EventSessionReset,
		event.EventScoreChanged,
		event.EventLevelChanged,
		event.EventHazardStarted,
		event.EventHazardEnded,
		event.EventGameOver,
	}
}

func (p *Presenter) HandleEvent(snap engine.Snapshot, ev event.GameEvent) {
	switch ev.Type {
	case event.EventSessionStarted:
		p.setInstructions(false, "")
		p.setGameOver(gameOverState{})
		p.setHazard(false, 0)

	case event.EventSessionReset:
		p.setGameOver(gameOverState{})
		p.setInstructions(true, InstructionText(p.device))
		p.setHazard(false, 0)
		p.setScore(0)
		p.setLevel(1)

	case event.EventScoreChanged:
		if pl, ok := ev.Payload.(*event.ScorePayload); ok {
			p.setScore(pl.Score)
		}

	case event.EventLevelChanged:
		if pl, ok := ev.Payload.(*event.LevelPayload); ok {
			p.setLevel(pl.Level)
		}

	case event.EventHazardStarted:
		p.setHazard(true, 100)

	case event.EventHazardEnded:
		p.setHazard(false, 0)

	case event.EventGameOver:
		pl, ok := ev.Payload.(*event.GameOverPayload)
		if !ok {
			return
		}
		p.setHazard(false, 0)
		p.setGameOver(gameOverState{
			visible: true,
			final:   pl.Score,
			high:    pl.HighScore,
			reason:  ReasonText(pl.Reason),
		})
	}
}

// Sync pushes per-frame state: the full display on first call, then the draining hazard bar
func (p *Presenter) Sync(snap engine.Snapshot) {
	if !p.primed {
		p.primed = true
		p.setScore(snap.Score)
		p.setLevel(max(snap.Level, 1))
		p.setInstructions(snap.Mode == component.ModeWaiting, instructionsFor(snap.Mode, p.device))
		if snap.Mode == component.ModeGameOver {
			p.setGameOver(gameOverState{true, snap.Score, snap.HighScore, ReasonText(snap.Reason)})
		} else {
			p.setGameOver(gameOverState{})
		}
	}

	if snap.Mode == component.ModePlaying && snap.ControlsReversed {
		p.setHazard(true, math.Round(snap.ReverseFraction*100))
	} else if !p.hazard.set {
		p.setHazard(false, 0)
	}
}

func instructionsFor(mode component.GameMode, d input.Device) string {
	if mode != component.ModeWaiting {
		return ""
	}
	return InstructionText(d)
}

func (p *Presenter) setScore(v int) {
	if p.score.changed(v) {
		p.sink.Score(v)
	}
}

func (p *Presenter) setLevel(v int) {
	if p.level.changed(v) {
		p.sink.Level(v)
	}
}

func (p *Presenter) setHazard(visible bool, percent float64) {
	if p.hazard.changed(hazardState{visible, percent}) {
		p.sink.Hazard(visible, percent)
	}
}

func (p *Presenter) setInstructions(visible bool, text string) {
	if p.instructions.changed(instructionState{visible, text}) {
		p.sink.Instructions(visible, text)
	}
}

func (p *Presenter) setGameOver(s gameOverState) {
	if p.gameOver.changed(s) {
		p.sink.GameOver(s.visible, s.final, s.high, s.reason)
	}
}

type syncedRenderer struct {
	p *Presenter
	r engine.Renderer
}

func (s syncedRenderer) Render(snap engine.Snapshot) {
	s.p.Sync(snap)
	s.r.Render(snap)
}

// Wrap returns a renderer that syncs the presenter before every frame drawn by r
func (p *Presenter) Wrap(r engine.Renderer) engine.Renderer {
	return syncedRenderer{p: p, r: r}
}
