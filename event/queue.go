package event

import (
	"time"

	"github.com/lixenwraith/cursor-chase/parameter"
)

// EventQueue is a FIFO buffer of game events
// Thread-Safety: none; producer and consumer are the simulation goroutine
type EventQueue struct {
	events []GameEvent
}

func NewEventQueue() *EventQueue {
	return &EventQueue{events: make([]GameEvent, 0, parameter.EventQueueSize)}
}

// Push appends an event
func (eq *EventQueue) Push(event GameEvent) {
	eq.events = append(eq.events, event)
}

// Emit is a convenience wrapper building the event in place
func (eq *EventQueue) Emit(t EventType, payload any, now time.Duration) {
	eq.Push(GameEvent{Type: t, Payload: payload, Time: now})
}

// Consume returns all pending events in FIFO order and empties the queue
// The returned slice is owned by the caller
func (eq *EventQueue) Consume() []GameEvent {
	if len(eq.events) == 0 {
		return nil
	}
	out := eq.events
	eq.events = make([]GameEvent, 0, max(cap(out), parameter.EventQueueSize))
	return out
}

// Len returns the pending event count
func (eq *EventQueue) Len() int {
	return len(eq.events)
}
