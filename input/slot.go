package input

import (
	"math"
	"sync/atomic"

	"github.com/lixenwraith/cursor-chase/parameter"
	"github.com/lixenwraith/cursor-chase/vmath"
)

// Slot holds the latest raw pointer position and pending intents
// Writers: input poller (any goroutine). Reader: simulation step
// Coordinates are stored as float bits so a read never observes a torn value per axis
type Slot struct {
	x, y    atomic.Uint64
	intents chan Intent
	dropped atomic.Int64
}

// NewSlot creates a slot centered at the given raw point
func NewSlot(initial vmath.Vec2) *Slot {
	s := &Slot{
		intents: make(chan Intent, parameter.IntentQueueSize),
	}
	s.SetRaw(initial.X, initial.Y)
	return s
}

// SetRaw records the latest raw pointer coordinates
func (s *Slot) SetRaw(x, y float64) {
	s.x.Store(math.Float64bits(x))
	s.y.Store(math.Float64bits(y))
}

// Raw returns the latest raw pointer coordinates
func (s *Slot) Raw() vmath.Vec2 {
	return vmath.V2(math.Float64frombits(s.x.Load()), math.Float64frombits(s.y.Load()))
}

// Push queues an intent without blocking, returns false if the queue is full
func (s *Slot) Push(in Intent) bool {
	select {
	case s.intents <- in:
		return true
	default:
		s.dropped.Add(1)
		return false
	}
}

// Drain returns all pending intents in FIFO order
func (s *Slot) Drain() []Intent {
	var out []Intent
	for {
		select {
		case in := <-s.intents:
			out = append(out, in)
		default:
			return out
		}
	}
}

// Dropped returns the count of intents lost to a full queue
func (s *Slot) Dropped() int64 {
	return s.dropped.Load()
}
