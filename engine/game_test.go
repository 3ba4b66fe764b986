package engine

import (
	"math"
	"testing"
	"time"

	"github.com/lixenwraith/cursor-chase/component"
	"github.com/lixenwraith/cursor-chase/event"
	"github.com/lixenwraith/cursor-chase/input"
	"github.com/lixenwraith/cursor-chase/parameter"
	"github.com/lixenwraith/cursor-chase/status"
	"github.com/lixenwraith/cursor-chase/storage"
	"github.com/lixenwraith/cursor-chase/vmath"
	"pgregory.net/rapid"
)

// 1000x800 viewport: canvas 600, arena center (500,400), radius 270
var testViewport = component.Viewport{Width: 1000, Height: 800}

var testCenter = vmath.V2(500, 400)

func newTestGame(t testing.TB, mutate func(*Options)) *Game {
	t.Helper()
	opts := DefaultOptions()
	opts.Seed = 1
	opts.SpawnChance = 0
	if mutate != nil {
		mutate(&opts)
	}
	return NewGame(opts, testViewport, Deps{
		Slot:   input.NewSlot(testCenter),
		Status: status.NewRegistry(),
	})
}

// startClean starts a session and removes the initial pickup
func startClean(t testing.TB, g *Game) {
	t.Helper()
	if !g.Start() {
		t.Fatal("Start() refused from Waiting")
	}
	g.active = g.active[:0]
	g.queue.Consume()
}

// park holds the pursuer still near the bottom wall, far from a player near center
func park(g *Game) {
	g.pursuer.Position = vmath.V2(g.arena.Center.X, g.arena.Center.Y+g.arena.Radius-g.pursuer.Radius-1)
	g.pursuer.Velocity = vmath.Vec2{}
}

func eventTypes(evs []event.GameEvent) []event.EventType {
	out := make([]event.EventType, len(evs))
	for i, ev := range evs {
		out[i] = ev.Type
	}
	return out
}

func countType(evs []event.GameEvent, t event.EventType) int {
	n := 0
	for _, ev := range evs {
		if ev.Type == t {
			n++
		}
	}
	return n
}

func TestGameStartTransitions(t *testing.T) {
	g := newTestGame(t, nil)

	if g.Session().Mode != component.ModeWaiting {
		t.Fatalf("initial mode = %s, want waiting", g.Session().Mode)
	}
	if g.Restart() {
		t.Error("Restart accepted while waiting")
	}

	waitingID := g.Session().ID
	if !g.Start() {
		t.Fatal("Start refused while waiting")
	}
	s := g.Session()
	if s.Mode != component.ModePlaying {
		t.Errorf("mode = %s, want playing", s.Mode)
	}
	if s.ID == waitingID || s.ID == "" {
		t.Errorf("session ID not renewed: %q", s.ID)
	}
	if s.Score != 0 || s.Level != 1 || s.ControlsReversed {
		t.Errorf("unexpected fresh session: %+v", s)
	}
	if g.Start() {
		t.Error("Start accepted while playing")
	}
	if len(g.Pickups()) != 1 {
		t.Errorf("pickups at start = %d, want 1", len(g.Pickups()))
	}

	arena := g.Arena()
	if arena.Center != testCenter || math.Abs(arena.Radius-270) > 1e-9 {
		t.Errorf("arena = %+v, want center %v radius 270", arena, testCenter)
	}
	want := vmath.V2(500, 300)
	if g.Pursuer().Position != want {
		t.Errorf("pursuer start = %v, want %v", g.Pursuer().Position, want)
	}

	types := eventTypes(g.queue.Consume())
	if len(types) == 0 || types[0] != event.EventSessionStarted {
		t.Errorf("first event = %v, want SessionStarted", types)
	}
}

func TestActivateIntentResolvesByMode(t *testing.T) {
	g := newTestGame(t, nil)

	g.Slot().Push(input.Intent{Type: input.IntentStart})
	g.Step()
	if g.Session().Mode != component.ModePlaying {
		t.Fatalf("activate while waiting: mode = %s, want playing", g.Session().Mode)
	}
	id := g.Session().ID

	g.Slot().Push(input.Intent{Type: input.IntentStart})
	park(g)
	g.Step()
	if g.Session().Mode != component.ModePlaying || g.Session().ID != id {
		t.Errorf("activate while playing changed session: %+v", g.Session())
	}

	g.gameOver(component.ReasonCaught)
	g.Slot().Push(input.Intent{Type: input.IntentStart})
	g.Step()
	if g.Session().Mode != component.ModeWaiting {
		t.Errorf("activate after game over: mode = %s, want waiting", g.Session().Mode)
	}
}

// Catch threshold with the pursuer held at rest before the step
func TestCatchThreshold(t *testing.T) {
	g := newTestGame(t, nil)
	startClean(t, g)
	reach := g.pursuer.Radius + parameter.CatchMargin

	g.pursuer.Position = vmath.V2(testCenter.X+reach+1, testCenter.Y)
	g.pursuer.Velocity = vmath.Vec2{}
	g.Step()
	if g.Session().Mode != component.ModePlaying {
		t.Fatalf("caught at reach+1 (dist after step %f)", vmath.Distance(g.pursuer.Position, g.Player()))
	}

	g.pursuer.Position = vmath.V2(testCenter.X+reach-1, testCenter.Y)
	g.pursuer.Velocity = vmath.Vec2{}
	g.Step()
	s := g.Session()
	if s.Mode != component.ModeGameOver || s.Reason != component.ReasonCaught {
		t.Errorf("session = %s/%s, want game_over/caught", s.Mode, s.Reason)
	}
	if countType(g.queue.Consume(), event.EventGameOver) != 1 {
		t.Error("Expected one GameOver event")
	}
}

func TestBoundaryStrictEndsGame(t *testing.T) {
	g := newTestGame(t, nil)
	startClean(t, g)
	g.Step() // player inside arms the boundary test

	g.Slot().SetRaw(testCenter.X+270+50, testCenter.Y)
	g.Step()

	s := g.Session()
	if s.Mode != component.ModeGameOver || s.Reason != component.ReasonBoundary {
		t.Fatalf("session = %s/%s, want game_over/boundary", s.Mode, s.Reason)
	}
	if d := vmath.Distance(testCenter, g.Player()); math.Abs(d-260) > 1e-9 {
		t.Errorf("player distance = %f, want 260", d)
	}
}

func TestBoundaryLenientClampsOnly(t *testing.T) {
	g := newTestGame(t, func(o *Options) { o.Policy = input.BoundaryLenient })
	startClean(t, g)
	g.Step()

	g.Slot().SetRaw(testCenter.X, testCenter.Y-400)
	park(g)
	g.Step()

	if g.Session().Mode != component.ModePlaying {
		t.Fatalf("lenient policy ended the game: %s", g.Session().Reason)
	}
	want := vmath.V2(testCenter.X, testCenter.Y-260)
	if vmath.Distance(g.Player(), want) > 1e-9 {
		t.Errorf("player = %v, want %v", g.Player(), want)
	}
}

// A start click outside the ring must not end the game on the first step
func TestBoundaryArmsInsideOnly(t *testing.T) {
	g := newTestGame(t, nil)
	g.Slot().SetRaw(testCenter.X-400, testCenter.Y)
	startClean(t, g)

	park(g)
	g.Step()
	if g.Session().Mode != component.ModePlaying {
		t.Fatal("game ended before the player entered the arena")
	}

	g.Slot().SetRaw(testCenter.X, testCenter.Y)
	park(g)
	g.Step()
	g.Slot().SetRaw(testCenter.X-400, testCenter.Y)
	park(g)
	g.Step()
	if g.Session().Reason != component.ReasonBoundary {
		t.Errorf("reason = %s, want boundary", g.Session().Reason)
	}
}

func TestReversedMappingIsNotCumulative(t *testing.T) {
	g := newTestGame(t, func(o *Options) { o.Policy = input.BoundaryLenient })
	startClean(t, g)
	g.session.ControlsReversed = true
	g.session.ReverseUntil = g.session.Now + time.Hour

	g.Slot().SetRaw(testCenter.X+50, testCenter.Y+20)
	for i := 0; i < 3; i++ {
		park(g)
		g.Step()
		want := vmath.V2(testCenter.X-50, testCenter.Y-20)
		if vmath.Distance(g.Player(), want) > 1e-9 {
			t.Fatalf("step %d: player = %v, want %v", i, g.Player(), want)
		}
	}

	// Outside after mirroring: mirror first, then clamp
	g.Slot().SetRaw(testCenter.X-320, testCenter.Y)
	park(g)
	g.Step()
	want := vmath.V2(testCenter.X+260, testCenter.Y)
	if vmath.Distance(g.Player(), want) > 1e-9 {
		t.Errorf("player = %v, want %v", g.Player(), want)
	}
}

// placePickup puts a pickup under the current player position
func placePickup(g *Game, kind component.PickupKind) {
	g.active = append(g.active, component.Pickup{
		ID:        999,
		Position:  g.Player(),
		Radius:    parameter.PickupRadius,
		Kind:      kind,
		SpawnTime: g.session.Now,
		Lifetime:  time.Hour,
		Visible:   true,
	})
}

// Reversal holds for [T, T+duration) in step time and then clears once
func TestHazardWindow(t *testing.T) {
	g := newTestGame(t, nil)
	startClean(t, g)
	park(g)
	g.Step()

	placePickup(g, component.PickupHazardous)
	park(g)
	g.Step()

	s := g.Session()
	if !s.ControlsReversed || s.Score != parameter.HazardScore {
		t.Fatalf("after hazard: reversed=%v score=%d", s.ControlsReversed, s.Score)
	}
	collectedAt := s.Now
	evs := g.queue.Consume()
	if countType(evs, event.EventHazardStarted) != 1 || countType(evs, event.EventPickupCollected) != 1 {
		t.Errorf("events = %v", eventTypes(evs))
	}

	ended := 0
	for g.session.Now-collectedAt <= parameter.ReverseDuration+parameter.StepSize {
		park(g)
		g.Step()
		want := g.session.Now-collectedAt < parameter.ReverseDuration
		if g.session.ControlsReversed != want {
			t.Fatalf("at T+%v: reversed=%v, want %v", g.session.Now-collectedAt, g.session.ControlsReversed, want)
		}
		ended += countType(g.queue.Consume(), event.EventHazardEnded)
	}
	if ended != 1 {
		t.Errorf("HazardEnded emitted %d times, want 1", ended)
	}
	if g.Session().Mode != component.ModePlaying {
		t.Errorf("unexpected game end: %s", g.Session().Reason)
	}
}

// The step that closes the reversal window already maps the pointer unmirrored
func TestHazardExpiryStepUsesRawPosition(t *testing.T) {
	g := newTestGame(t, func(o *Options) { o.Policy = input.BoundaryLenient })
	startClean(t, g)

	raw := vmath.V2(testCenter.X+50, testCenter.Y)
	g.Slot().SetRaw(raw.X, raw.Y)
	park(g)
	g.Step()
	g.activateHazard()

	for i := 0; g.session.ControlsReversed; i++ {
		if i > int(parameter.ReverseDuration/parameter.StepSize)+2 {
			t.Fatal("reversal never cleared")
		}
		park(g)
		g.Step()
		if g.session.ControlsReversed {
			mirrored := vmath.V2(testCenter.X-50, testCenter.Y)
			if vmath.Distance(g.Player(), mirrored) > 1e-9 {
				t.Fatalf("step %d while reversed: player = %v, want %v", i, g.Player(), mirrored)
			}
		}
	}

	if got := g.Snapshot().Player; vmath.Distance(got, raw) > 1e-9 {
		t.Errorf("player on clearing step = %v, want raw %v", got, raw)
	}
	if g.Snapshot().ControlsReversed {
		t.Error("snapshot still reports reversed controls")
	}
}

// A second hazard restarts the window at full length instead of stacking
func TestHazardRefresh(t *testing.T) {
	g := newTestGame(t, nil)
	startClean(t, g)
	park(g)
	g.Step()

	placePickup(g, component.PickupHazardous)
	park(g)
	g.Step()
	for i := 0; i < 60; i++ {
		park(g)
		g.Step()
	}

	// Player is mirrored now; place the second hazard under the mapped position
	placePickup(g, component.PickupHazardous)
	park(g)
	g.Step()

	s := g.Session()
	if s.ReverseUntil != s.Now+parameter.ReverseDuration {
		t.Errorf("ReverseUntil = %v, want %v", s.ReverseUntil, s.Now+parameter.ReverseDuration)
	}
	if s.Score != 2*parameter.HazardScore {
		t.Errorf("score = %d, want %d", s.Score, 2*parameter.HazardScore)
	}
}

// Uncollected pickup blinks for its final second and expires without score
func TestPickupExpiry(t *testing.T) {
	g := newTestGame(t, nil)
	startClean(t, g)

	spawn := g.session.Now
	g.active = append(g.active, component.Pickup{
		ID:        1,
		Position:  vmath.V2(testCenter.X+100, testCenter.Y),
		Radius:    parameter.PickupRadius,
		Kind:      component.PickupNormal,
		SpawnTime: spawn,
		Lifetime:  parameter.PickupLifetime,
		Visible:   true,
	})

	expired := 0
	for g.session.Now-spawn < parameter.PickupLifetime+parameter.StepSize {
		park(g)
		g.Step()
		age := g.session.Now - spawn
		expired += countType(g.queue.Consume(), event.EventPickupExpired)

		if age >= parameter.PickupLifetime {
			if len(g.active) != 0 {
				t.Fatalf("pickup still present at age %v", age)
			}
			continue
		}
		if len(g.active) != 1 {
			t.Fatalf("pickup missing at age %v", age)
		}
		wantBlink := age >= parameter.PickupLifetime-parameter.PickupBlinkThreshold
		if g.active[0].Blinking != wantBlink {
			t.Fatalf("age %v: blinking=%v, want %v", age, g.active[0].Blinking, wantBlink)
		}
	}

	if expired != 1 {
		t.Errorf("PickupExpired emitted %d times, want 1", expired)
	}
	if g.Session().Score != 0 {
		t.Errorf("score = %d, want 0", g.Session().Score)
	}
}

// One collection schedules exactly one respawn, fired after the delay
func TestRespawnAfterCollect(t *testing.T) {
	g := newTestGame(t, nil)
	startClean(t, g)
	park(g)
	g.Step()

	placePickup(g, component.PickupNormal)
	park(g)
	g.Step()
	if g.Session().Score != parameter.PickupScore {
		t.Fatalf("score = %d, want %d", g.Session().Score, parameter.PickupScore)
	}
	if g.scheduler.Len() != 1 {
		t.Fatalf("scheduled = %d, want 1", g.scheduler.Len())
	}
	collectedAt := g.session.Now

	for {
		park(g)
		g.Step()
		if g.session.Now-collectedAt < parameter.PickupRespawnDelay {
			if len(g.active) != 0 {
				t.Fatalf("respawned early at T+%v", g.session.Now-collectedAt)
			}
			continue
		}
		break
	}
	if len(g.active) != 1 {
		t.Errorf("pickups after delay = %d, want 1", len(g.active))
	}
	if g.scheduler.Len() != 0 {
		t.Errorf("scheduler still holds %d tasks", g.scheduler.Len())
	}
}

func TestStaleRespawnIsNoop(t *testing.T) {
	g := newTestGame(t, nil)
	startClean(t, g)

	g.scheduler.Schedule(g.session.Now+parameter.StepSize, TaskRespawn, g.session.Generation-1)
	park(g)
	g.Step()

	if len(g.active) != 0 {
		t.Errorf("stale respawn spawned %d pickups", len(g.active))
	}
	if g.statStale.Load() != 1 {
		t.Errorf("stale counter = %d, want 1", g.statStale.Load())
	}
}

func TestRestartResetsSession(t *testing.T) {
	g := newTestGame(t, nil)
	startClean(t, g)
	park(g)
	g.Step()
	placePickup(g, component.PickupHazardous)
	park(g)
	g.Step()

	gen := g.session.Generation
	g.gameOver(component.ReasonCaught)
	if g.scheduler.Len() != 0 {
		t.Error("game over kept scheduled respawns")
	}
	if !g.Restart() {
		t.Fatal("Restart refused after game over")
	}

	s := g.Session()
	if s.Mode != component.ModeWaiting || s.Score != 0 || s.ControlsReversed || s.Reason != component.ReasonNone {
		t.Errorf("session not reset: %+v", s)
	}
	if s.Generation <= gen {
		t.Errorf("generation %d did not advance past %d", s.Generation, gen)
	}
	if len(g.Pickups()) != 0 {
		t.Error("pickups survived restart")
	}
}

func TestHighScoreRecordedOnImprovementOnly(t *testing.T) {
	store := storage.NewMemoryStore()
	_ = store.Set(parameter.HighScoreKey, 5)

	opts := DefaultOptions()
	opts.Seed = 1
	opts.SpawnChance = 0
	g := NewGame(opts, testViewport, Deps{
		Slot:      input.NewSlot(testCenter),
		HighScore: storage.NewHighScore(store, parameter.HighScoreKey, nil),
	})
	if g.HighScore() != 5 {
		t.Fatalf("initial high score = %d, want 5", g.HighScore())
	}

	startClean(t, g)
	park(g)
	g.Step()
	placePickup(g, component.PickupNormal)
	park(g)
	g.Step()
	g.gameOver(component.ReasonCaught)

	evs := g.queue.Consume()
	if countType(evs, event.EventHighScore) != 1 {
		t.Errorf("HighScore events = %d, want 1", countType(evs, event.EventHighScore))
	}
	if v, _, _ := store.Get(parameter.HighScoreKey); v != 10 {
		t.Errorf("stored = %d, want 10", v)
	}

	g.Restart()
	startClean(t, g)
	g.gameOver(component.ReasonCaught)
	if countType(g.queue.Consume(), event.EventHighScore) != 0 {
		t.Error("zero score emitted a record")
	}
	if v, _, _ := store.Get(parameter.HighScoreKey); v != 10 {
		t.Errorf("stored = %d after worse game, want 10", v)
	}
}

func TestPickupCapHolds(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		seed := rapid.Uint64().Draw(rt, "seed")
		g := newTestGame(t, func(o *Options) {
			o.Seed = seed
			o.SpawnChance = 1
			o.Policy = input.BoundaryLenient
		})
		g.Start()

		steps := rapid.IntRange(1, 400).Draw(rt, "steps")
		for i := 0; i < steps; i++ {
			if i%20 == 0 {
				x := rapid.Float64Range(200, 800).Draw(rt, "x")
				y := rapid.Float64Range(100, 500).Draw(rt, "y")
				g.Slot().SetRaw(x, y)
			}
			park(g)
			g.Step()
			if n := len(g.active); n > parameter.MaxPickups {
				rt.Fatalf("step %d: %d active pickups", i, n)
			}
		}
	})
}

func TestSnapshotIsDetached(t *testing.T) {
	g := newTestGame(t, nil)
	g.Start()
	snap := g.Snapshot()
	if len(snap.Pickups) != 1 {
		t.Fatalf("snapshot pickups = %d, want 1", len(snap.Pickups))
	}
	snap.Pickups[0].Collected = true
	if g.active[0].Collected {
		t.Error("snapshot shares pickup storage with the game")
	}
	if snap.Mode != component.ModePlaying || snap.SessionID != g.Session().ID {
		t.Errorf("snapshot = %+v", snap)
	}
}
