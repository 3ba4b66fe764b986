package engine

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/cursor-chase/component"
	"github.com/lixenwraith/cursor-chase/event"
	"github.com/lixenwraith/cursor-chase/parameter"
	"github.com/lixenwraith/cursor-chase/status"
	"go.uber.org/zap"
)

// Loop converts wall time into fixed simulation steps and renders once per frame
// Game state is touched only from the goroutine calling Tick/Advance/Frame/Run
type Loop struct {
	game   *Game
	router *event.Router[Snapshot]
	clock  Clock
	log    *zap.Logger

	stepSize   time.Duration
	maxBacklog time.Duration

	acc     time.Duration
	last    time.Time
	started bool

	// Latest pending viewport, applied at the start of the next tick
	viewports chan component.Viewport

	statFrames  *atomic.Int64
	statBacklog *atomic.Int64
	statEvents  *atomic.Int64
}

// NewLoop creates a loop driving game; handlers are added with Register before Run
func NewLoop(game *Game, clock Clock, reg *status.Registry, log *zap.Logger) *Loop {
	if log == nil {
		log = zap.NewNop()
	}
	if reg == nil {
		reg = status.NewRegistry()
	}
	return &Loop{
		game:        game,
		router:      event.NewRouter[Snapshot](game.Queue()),
		clock:       clock,
		log:         log,
		stepSize:    game.StepSize(),
		maxBacklog:  parameter.MaxBacklog,
		viewports:   make(chan component.Viewport, 1),
		statFrames:  reg.Ints.Get(status.KeyFrames),
		statBacklog: reg.Ints.Get(status.KeyBacklogDropped),
		statEvents:  reg.Ints.Get(status.KeyEventsDispatch),
	}
}

// SetMaxBacklog overrides the backlog cap; non-positive values keep the current setting
func (l *Loop) SetMaxBacklog(maxBacklog time.Duration) {
	if maxBacklog > 0 {
		l.maxBacklog = maxBacklog
	}
}

// Register adds an event handler receiving the frame snapshot as context
func (l *Loop) Register(h event.Handler[Snapshot]) {
	l.router.Register(h)
}

func (l *Loop) Game() *Game { return l.game }

// RequestViewport queues a viewport change from any goroutine, newest wins
func (l *Loop) RequestViewport(v component.Viewport) {
	for {
		select {
		case l.viewports <- v:
			return
		default:
		}
		select {
		case <-l.viewports:
		default:
		}
	}
}

// Advance adds elapsed wall time and runs every whole step it covers
// The accumulator is capped at the backlog limit so a stall cannot trigger unbounded catch-up
func (l *Loop) Advance(elapsed time.Duration) int {
	if elapsed < 0 {
		elapsed = 0
	}
	l.acc += elapsed
	if l.acc > l.maxBacklog {
		dropped := l.acc - l.maxBacklog
		l.statBacklog.Add(dropped.Milliseconds())
		l.log.Debug("backlog clamped", zap.Duration("dropped", dropped))
		l.acc = l.maxBacklog
	}

	steps := 0
	for l.acc >= l.stepSize {
		l.game.Step()
		l.acc -= l.stepSize
		steps++
	}
	return steps
}

// Accumulated returns wall time not yet converted into steps
func (l *Loop) Accumulated() time.Duration { return l.acc }

// Frame dispatches queued events and renders one snapshot
func (l *Loop) Frame(r Renderer) Snapshot {
	snap := l.game.Snapshot()
	l.statEvents.Add(int64(l.router.DispatchAll(snap)))
	if r != nil {
		r.Render(snap)
	}
	l.statFrames.Add(1)
	return snap
}

// Tick is one render callback: apply a pending resize, advance by the time since the previous tick, then draw
// The first tick only primes the clock
func (l *Loop) Tick(r Renderer) int {
	select {
	case v := <-l.viewports:
		l.game.SetViewport(v)
	default:
	}

	now := l.clock.Now()
	steps := 0
	if l.started {
		steps = l.Advance(now.Sub(l.last))
	}
	l.started = true
	l.last = now

	l.Frame(r)
	return steps
}

// Run ticks on every frame signal until ctx is done or frames closes
func (l *Loop) Run(ctx context.Context, frames <-chan time.Time, r Renderer) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case _, ok := <-frames:
			if !ok {
				return nil
			}
			l.Tick(r)
		}
	}
}
