package event

import (
	"testing"
)

type recordingHandler struct {
	types []EventType
	seen  []EventType
	tag   string
	log   *[]string
}

func (h *recordingHandler) HandleEvent(ctx string, ev GameEvent) {
	h.seen = append(h.seen, ev.Type)
	if h.log != nil {
		*h.log = append(*h.log, h.tag)
	}
}

func (h *recordingHandler) EventTypes() []EventType { return h.types }

func TestRouterDispatchOrder(t *testing.T) {
	q := NewEventQueue()
	r := NewRouter[string](q)

	h := &recordingHandler{types: []EventType{EventScoreChanged, EventGameOver}}
	r.Register(h)

	q.Emit(EventScoreChanged, &ScorePayload{Score: 10}, 0)
	q.Emit(EventLevelChanged, &LevelPayload{Level: 2}, 0)
	q.Emit(EventGameOver, nil, 0)

	if n := r.DispatchAll("ctx"); n != 3 {
		t.Errorf("DispatchAll consumed %d, want 3", n)
	}
	if len(h.seen) != 2 || h.seen[0] != EventScoreChanged || h.seen[1] != EventGameOver {
		t.Errorf("seen = %v, want [ScoreChanged GameOver]", h.seen)
	}
	if q.Len() != 0 {
		t.Errorf("queue not drained: %d", q.Len())
	}
	if r.DispatchAll("ctx") != 0 {
		t.Error("Expected empty second dispatch")
	}
}

func TestRouterRegistrationOrder(t *testing.T) {
	q := NewEventQueue()
	r := NewRouter[string](q)

	var log []string
	r.Register(&recordingHandler{types: []EventType{EventGameOver}, tag: "a", log: &log})
	r.Register(&recordingHandler{types: []EventType{EventGameOver}, tag: "b", log: &log})

	if r.HandlerCount(EventGameOver) != 2 {
		t.Fatalf("HandlerCount = %d, want 2", r.HandlerCount(EventGameOver))
	}

	q.Emit(EventGameOver, nil, 0)
	r.DispatchAll("")
	if len(log) != 2 || log[0] != "a" || log[1] != "b" {
		t.Errorf("handler order = %v, want [a b]", log)
	}
}

func TestEventTypeString(t *testing.T) {
	if EventPickupCollected.String() != "PickupCollected" {
		t.Errorf("String() = %q", EventPickupCollected.String())
	}
	if EventType(999).String() != "Unknown" {
		t.Errorf("unknown String() = %q", EventType(999).String())
	}
}
