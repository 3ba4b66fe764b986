package engine

import (
	"context"
	"testing"
	"time"

	"github.com/lixenwraith/cursor-chase/component"
	"github.com/lixenwraith/cursor-chase/event"
	"github.com/lixenwraith/cursor-chase/parameter"
	"github.com/lixenwraith/cursor-chase/status"
)

type countingRenderer struct {
	frames int
	last   Snapshot
}

func (r *countingRenderer) Render(snap Snapshot) {
	r.frames++
	r.last = snap
}

type sessionHandler struct {
	got []Snapshot
}

func (h *sessionHandler) HandleEvent(snap Snapshot, ev event.GameEvent) {
	h.got = append(h.got, snap)
}

func (h *sessionHandler) EventTypes() []event.EventType {
	return []event.EventType{event.EventSessionStarted}
}

func newTestLoop(t *testing.T) (*Loop, *MockTimeProvider, *status.Registry) {
	t.Helper()
	clock := NewMockTimeProvider(time.Unix(1000, 0))
	reg := status.NewRegistry()
	g := newTestGame(t, nil)
	return NewLoop(g, clock, reg, nil), clock, reg
}

func TestLoopAdvanceCountsWholeSteps(t *testing.T) {
	l, _, _ := newTestLoop(t)

	if got := l.Advance(3 * parameter.StepSize); got != 3 {
		t.Errorf("Advance(3 steps) = %d, want 3", got)
	}
	if got := l.Advance(parameter.StepSize / 2); got != 0 {
		t.Errorf("Advance(half) = %d, want 0", got)
	}
	if got := l.Advance(parameter.StepSize / 2); got != 1 {
		t.Errorf("Advance(second half) = %d, want 1", got)
	}
	if l.Accumulated() != 0 {
		t.Errorf("Accumulated = %v, want 0", l.Accumulated())
	}
	if got := l.Advance(-time.Second); got != 0 {
		t.Errorf("Advance(negative) = %d, want 0", got)
	}
}

func TestLoopBacklogClamp(t *testing.T) {
	l, _, reg := newTestLoop(t)

	steps := l.Advance(5 * time.Second)
	want := int(parameter.MaxBacklog / parameter.StepSize)
	if steps != want {
		t.Errorf("steps after stall = %d, want %d", steps, want)
	}
	if l.Accumulated() >= parameter.StepSize {
		t.Errorf("Accumulated = %v, want < one step", l.Accumulated())
	}
	dropped := reg.Ints.Get(status.KeyBacklogDropped).Load()
	if dropped < 4700 || dropped > 4750 {
		t.Errorf("dropped backlog = %dms, want ~4750", dropped)
	}
	if got := l.Game().Session().Now; got != time.Duration(want)*parameter.StepSize {
		t.Errorf("simulation time = %v, want %v", got, time.Duration(want)*parameter.StepSize)
	}
}

func TestLoopTickUsesClock(t *testing.T) {
	l, clock, reg := newTestLoop(t)
	r := &countingRenderer{}

	if got := l.Tick(r); got != 0 {
		t.Errorf("priming tick ran %d steps", got)
	}
	clock.Advance(100 * time.Millisecond)
	if got := l.Tick(r); got != 6 {
		t.Errorf("Tick after 100ms = %d steps, want 6", got)
	}
	if r.frames != 2 {
		t.Errorf("rendered %d frames, want 2", r.frames)
	}
	if reg.Ints.Get(status.KeyFrames).Load() != 2 {
		t.Errorf("frame metric = %d, want 2", reg.Ints.Get(status.KeyFrames).Load())
	}
}

func TestLoopFrameDispatchesEvents(t *testing.T) {
	l, _, _ := newTestLoop(t)
	h := &sessionHandler{}
	l.Register(h)

	l.Game().Start()
	l.Frame(nil)
	if len(h.got) != 1 {
		t.Fatalf("handler called %d times, want 1", len(h.got))
	}
	if h.got[0].Mode != component.ModePlaying {
		t.Errorf("handler snapshot mode = %s, want playing", h.got[0].Mode)
	}

	l.Frame(nil)
	if len(h.got) != 1 {
		t.Error("events dispatched twice")
	}
}

func TestLoopRequestViewportNewestWins(t *testing.T) {
	l, _, _ := newTestLoop(t)

	l.RequestViewport(component.Viewport{Width: 200, Height: 200})
	l.RequestViewport(component.Viewport{Width: 400, Height: 300})
	l.Tick(nil)

	snap := l.Game().Snapshot()
	if snap.Viewport.Width != 400 || snap.Viewport.Height != 300 {
		t.Errorf("viewport = %+v, want 400x300", snap.Viewport)
	}
	if snap.Arena.Center.X != 200 || snap.Arena.Center.Y != 150 {
		t.Errorf("arena center = %v, want (200,150)", snap.Arena.Center)
	}
}

func TestLoopRunStops(t *testing.T) {
	l, clock, _ := newTestLoop(t)
	r := &countingRenderer{}

	frames := make(chan time.Time, 3)
	for i := 0; i < 3; i++ {
		frames <- clock.Advance(parameter.FrameInterval)
	}
	close(frames)

	if err := l.Run(context.Background(), frames, r); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if r.frames != 3 {
		t.Errorf("frames = %d, want 3", r.frames)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := l.Run(ctx, make(chan time.Time), r); err != nil {
		t.Errorf("Run after cancel: %v", err)
	}
}
