package engine

import (
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/lixenwraith/cursor-chase/component"
	"github.com/lixenwraith/cursor-chase/event"
	"github.com/lixenwraith/cursor-chase/input"
	"github.com/lixenwraith/cursor-chase/parameter"
	"github.com/lixenwraith/cursor-chase/physics"
	"github.com/lixenwraith/cursor-chase/status"
	"github.com/lixenwraith/cursor-chase/storage"
	"github.com/lixenwraith/cursor-chase/system"
	"github.com/lixenwraith/cursor-chase/vmath"
	"go.uber.org/zap"
)

// Options holds gameplay rules fixed for the life of a Game
type Options struct {
	Policy          input.BoundaryPolicy
	Device          input.Device
	Pickups         system.PickupConfig
	SpawnChance     float64 // Per-step opportunistic spawn probability
	RespawnDelay    time.Duration
	ReverseDuration time.Duration
	Chase           physics.ChaseProfile
	Bounce          physics.BounceProfile
	Seed            uint64
	Step            time.Duration // Simulation time added per step
}

// DefaultOptions returns the tuned rule set
func DefaultOptions() Options {
	return Options{
		Policy:          input.BoundaryStrict,
		Device:          input.DeviceMouse,
		Pickups:         system.DefaultPickupConfig(),
		SpawnChance:     parameter.PickupSpawnChance,
		RespawnDelay:    parameter.PickupRespawnDelay,
		ReverseDuration: parameter.ReverseDuration,
		Chase:           physics.DefaultChase,
		Bounce:          physics.DefaultBounce,
		Seed:            uint64(time.Now().UnixNano()),
		Step:            parameter.StepSize,
	}
}

// Deps are the collaborators a Game writes to
// Nil Logger and Status are replaced with no-op instances
type Deps struct {
	Slot      *input.Slot
	Queue     *event.EventQueue
	HighScore *storage.HighScore
	Status    *status.Registry
	Logger    *zap.Logger
}

// Game is the session state machine and sole owner of simulation state
// Not thread-safe: every method runs on the simulation goroutine
type Game struct {
	opts Options
	log  *zap.Logger

	slot      *input.Slot
	queue     *event.EventQueue
	high      *storage.HighScore
	mapper    *input.Mapper
	pickups   *system.PickupManager
	rng       *vmath.FastRand
	levels    *system.LevelTracker
	scheduler *Scheduler

	viewport component.Viewport
	session  Session
	arena    component.Arena
	pursuer  component.Pursuer
	active   []component.Pickup
	player   vmath.Vec2

	// Boundary test arms once the player has been inside the ring this session
	armed bool

	// Cached metric pointers
	statTicks       *atomic.Int64
	statBounces     *atomic.Int64
	statCapped      *atomic.Int64
	statSpawned     *atomic.Int64
	statSpawnFailed *atomic.Int64
	statExpired     *atomic.Int64
	statCollected   *atomic.Int64
	statStale       *atomic.Int64
	statSessions    *atomic.Int64
	statDropped     *atomic.Int64
	statSpeed       *status.AtomicFloat
	statCap         *status.AtomicFloat
	statPeak        *status.AtomicFloat
	statSessionID   *status.Label
	statHazard      *atomic.Bool
}

// NewGame creates a game in Waiting mode sized to viewport
func NewGame(opts Options, viewport component.Viewport, deps Deps) *Game {
	log := deps.Logger
	if log == nil {
		log = zap.NewNop()
	}
	reg := deps.Status
	if reg == nil {
		reg = status.NewRegistry()
	}
	queue := deps.Queue
	if queue == nil {
		queue = event.NewEventQueue()
	}
	high := deps.HighScore
	if high == nil {
		high = storage.NewHighScore(storage.NewMemoryStore(), parameter.HighScoreKey, log)
	}

	if opts.Step <= 0 {
		opts.Step = parameter.StepSize
	}
	rng := vmath.NewFastRand(opts.Seed)
	g := &Game{
		opts:      opts,
		log:       log,
		slot:      deps.Slot,
		queue:     queue,
		high:      high,
		mapper:    input.NewMapper(),
		pickups:   system.NewPickupManager(opts.Pickups, rng),
		rng:       rng,
		levels:    system.NewLevelTracker(),
		scheduler: NewScheduler(),
		viewport:  viewport,
		pursuer:   component.NewPursuer(),

		statTicks:       reg.Ints.Get(status.KeyTicks),
		statBounces:     reg.Ints.Get(status.KeyBounces),
		statCapped:      reg.Ints.Get(status.KeySpeedCapped),
		statSpawned:     reg.Ints.Get(status.KeySpawned),
		statSpawnFailed: reg.Ints.Get(status.KeySpawnFailed),
		statExpired:     reg.Ints.Get(status.KeyExpired),
		statCollected:   reg.Ints.Get(status.KeyCollected),
		statStale:       reg.Ints.Get(status.KeyStaleRespawn),
		statSessions:    reg.Ints.Get(status.KeySessions),
		statDropped:     reg.Ints.Get(status.KeyIntentsDropped),
		statSpeed:       reg.Floats.Get(status.KeyPursuerSpeed),
		statCap:         reg.Floats.Get(status.KeyPursuerCap),
		statPeak:        reg.Floats.Get(status.KeyPursuerPeak),
		statSessionID:   reg.Labels.Get(status.KeySessionID),
		statHazard:      reg.Bools.Get(status.KeyHazardActive),
	}
	if g.slot == nil {
		g.slot = input.NewSlot(vmath.V2(viewport.Width/2, viewport.Height/2))
	}

	g.arena = component.ResolveArena(viewport)
	g.pursuer.Reset(g.arena)
	g.enterWaiting()
	return g
}

// StepSize is the simulation time one Step advances
func (g *Game) StepSize() time.Duration { return g.opts.Step }

// Session returns a copy of the session state
func (g *Game) Session() Session { return g.session }

func (g *Game) Arena() component.Arena { return g.arena }

func (g *Game) Pursuer() component.Pursuer { return g.pursuer }

func (g *Game) Player() vmath.Vec2 { return g.player }

// Pickups returns a copy of the active pickups
func (g *Game) Pickups() []component.Pickup {
	out := make([]component.Pickup, len(g.active))
	copy(out, g.active)
	return out
}

func (g *Game) HighScore() int { return g.high.Best() }

func (g *Game) Slot() *input.Slot { return g.slot }

func (g *Game) Queue() *event.EventQueue { return g.queue }

// SetViewport records a new input surface size
// The arena follows immediately outside of play and at the next start otherwise
func (g *Game) SetViewport(v component.Viewport) {
	g.viewport = v
	if g.session.Mode != component.ModePlaying {
		g.arena = component.ResolveArena(v)
		g.pursuer.Reset(g.arena)
	}
}

// Start requests Waiting -> Playing; ignored in any other mode
func (g *Game) Start() bool {
	return g.apply(input.IntentStart)
}

// Restart requests GameOver -> Waiting; ignored in any other mode
func (g *Game) Restart() bool {
	return g.apply(input.IntentRestart)
}

// apply runs the transition for a semantic intent if the graph has an edge
func (g *Game) apply(it input.IntentType) bool {
	to, ok := nextMode(g.session.Mode, it)
	if !ok {
		g.log.Debug("intent ignored",
			zap.Stringer("intent", it),
			zap.Stringer("mode", g.session.Mode))
		return false
	}

	switch to {
	case component.ModePlaying:
		g.enterPlaying()
	case component.ModeWaiting:
		g.enterWaiting()
		g.queue.Emit(event.EventSessionReset, &event.SessionPayload{ID: g.session.ID}, g.session.Now)
	}
	return true
}

// enterWaiting resets everything and cancels deferred work from the ended session
func (g *Game) enterWaiting() {
	g.session.reset(uuid.NewString(), component.ModeWaiting)
	g.arena = component.ResolveArena(g.viewport)
	g.resetField()
	g.player = g.slot.Raw()
}

// enterPlaying starts a fresh session on an arena sized to the current viewport
func (g *Game) enterPlaying() {
	g.session.reset(uuid.NewString(), component.ModePlaying)
	g.arena = component.ResolveArena(g.viewport)
	g.resetField()

	g.statSessions.Add(1)
	g.statSessionID.Set(g.session.ID)
	g.log.Info("session started",
		zap.String("session", g.session.ID),
		zap.Float64("arena_radius", g.arena.Radius),
		zap.Stringer("policy", g.opts.Policy))

	now := g.session.Now
	g.queue.Emit(event.EventSessionStarted, &event.SessionPayload{ID: g.session.ID}, now)
	g.queue.Emit(event.EventScoreChanged, &event.ScorePayload{Score: 0}, now)
	g.queue.Emit(event.EventLevelChanged, &event.LevelPayload{Level: 1}, now)

	g.player = g.mapper.Map(g.slot.Raw(), g.arena, false, component.ModePlaying).Position
	g.trySpawn()
}

func (g *Game) resetField() {
	g.pursuer.Reset(g.arena)
	g.active = g.active[:0]
	g.scheduler.Clear()
	g.levels.Reset()
	g.armed = false
	g.statHazard.Store(false)
}

// Step advances the simulation by one fixed step
func (g *Game) Step() {
	g.session.Now += g.opts.Step
	g.statTicks.Add(1)

	g.runDue()

	for _, in := range g.slot.Drain() {
		g.apply(resolveIntent(g.session.Mode, in.Type))
	}
	g.statDropped.Store(g.slot.Dropped())

	// The reversal window closes before mapping so this step sees the current flag
	g.tickHazard()

	mapped := g.mapper.Map(g.slot.Raw(), g.arena, g.session.ControlsReversed, g.session.Mode)
	g.player = mapped.Position

	if g.session.Mode != component.ModePlaying {
		return
	}

	res := physics.StepPursuer(&g.pursuer, g.player, g.arena, g.session.Score, &g.opts.Chase, &g.opts.Bounce)
	if res.Bounced {
		g.statBounces.Add(1)
	}
	if res.Capped {
		g.statCapped.Add(1)
	}
	speed := vmath.V2Mag(g.pursuer.Velocity)
	g.statSpeed.Set(speed)
	g.statPeak.StoreMax(speed)

	g.agePickups()

	// Boundary, then catch, then pickups; a game-ending collision stops the step
	if mapped.Touched {
		if g.armed && g.opts.Policy == input.BoundaryStrict {
			g.gameOver(component.ReasonBoundary)
			return
		}
	} else {
		g.armed = true
	}

	if system.Caught(&g.pursuer, g.player) {
		g.gameOver(component.ReasonCaught)
		return
	}

	g.collectPickups()

	if g.rng.Chance(g.opts.SpawnChance) {
		g.trySpawn()
	}
}

// runDue fires scheduled tasks; tasks from an older session or outside play are dropped
func (g *Game) runDue() {
	for _, task := range g.scheduler.Due(g.session.Now) {
		if task.Generation != g.session.Generation || g.session.Mode != component.ModePlaying {
			g.statStale.Add(1)
			continue
		}
		switch task.Kind {
		case TaskRespawn:
			g.trySpawn()
		}
	}
}

func (g *Game) tickHazard() {
	if !g.session.ControlsReversed || g.session.Now < g.session.ReverseUntil {
		return
	}
	g.session.ControlsReversed = false
	g.session.ReverseUntil = 0
	g.statHazard.Store(false)
	g.queue.Emit(event.EventHazardEnded, nil, g.session.Now)
}

func (g *Game) agePickups() {
	kept := g.active[:0]
	for i := range g.active {
		p := g.active[i]
		if g.pickups.Tick(&p, g.session.Now) {
			g.statExpired.Add(1)
			g.queue.Emit(event.EventPickupExpired, &event.PickupPayload{
				ID: p.ID, Kind: p.Kind, Position: p.Position,
			}, g.session.Now)
			continue
		}
		kept = append(kept, p)
	}
	g.active = kept
}

func (g *Game) collectPickups() {
	kept := g.active[:0]
	for i := range g.active {
		p := g.active[i]
		res, ok := g.pickups.TryCollect(&p, g.player)
		if !ok {
			kept = append(kept, p)
			continue
		}

		g.statCollected.Add(1)
		g.queue.Emit(event.EventPickupCollected, &event.PickupPayload{
			ID: p.ID, Kind: p.Kind, Position: p.Position, ScoreDelta: res.ScoreDelta,
		}, g.session.Now)

		if res.Reverse {
			g.activateHazard()
		}
		g.addScore(res.ScoreDelta)

		// One collection, one respawn
		g.scheduler.Schedule(g.session.Now+g.opts.RespawnDelay, TaskRespawn, g.session.Generation)
	}
	g.active = kept
}

// activateHazard starts or refreshes the reversal window to its full duration
func (g *Game) activateHazard() {
	g.session.ControlsReversed = true
	g.session.ReverseUntil = g.session.Now + g.opts.ReverseDuration
	g.statHazard.Store(true)
	g.queue.Emit(event.EventHazardStarted, &event.HazardPayload{
		Until:    g.session.ReverseUntil,
		Duration: g.opts.ReverseDuration,
	}, g.session.Now)
}

// addScore applies a score delta and recomputes difficulty
func (g *Game) addScore(delta int) {
	g.session.Score += delta
	g.queue.Emit(event.EventScoreChanged, &event.ScorePayload{Score: g.session.Score}, g.session.Now)

	speed := system.SpeedPolicy(g.session.Score)
	g.pursuer.SpeedCap = speed.Cap
	g.statCap.Set(speed.Cap)
	if g.levels.Update(speed.Level) {
		g.session.Level = speed.Level
		g.queue.Emit(event.EventLevelChanged, &event.LevelPayload{Level: speed.Level}, g.session.Now)
		g.log.Debug("level changed",
			zap.String("session", g.session.ID),
			zap.Int("level", speed.Level),
			zap.Float64("cap", speed.Cap))
	}
}

func (g *Game) trySpawn() {
	p, ok := g.pickups.TrySpawn(g.active, g.arena, &g.pursuer, g.player, g.session.Now)
	if !ok {
		if len(g.active) < g.opts.Pickups.MaxActive {
			g.statSpawnFailed.Add(1)
		}
		return
	}
	g.active = append(g.active, p)
	g.statSpawned.Add(1)
	g.queue.Emit(event.EventPickupSpawned, &event.PickupPayload{
		ID: p.ID, Kind: p.Kind, Position: p.Position,
	}, g.session.Now)
}

// gameOver ends the session, recording the high score when beaten
func (g *Game) gameOver(reason component.GameOverReason) {
	g.session.Mode = component.ModeGameOver
	g.session.Reason = reason
	g.scheduler.Clear()

	record := g.high.Submit(g.session.Score)
	if record {
		g.queue.Emit(event.EventHighScore, &event.ScorePayload{Score: g.session.Score}, g.session.Now)
	}
	g.queue.Emit(event.EventGameOver, &event.GameOverPayload{
		Reason:    reason,
		Score:     g.session.Score,
		HighScore: g.high.Best(),
		NewRecord: record,
	}, g.session.Now)

	g.log.Info("game over",
		zap.String("session", g.session.ID),
		zap.Stringer("reason", reason),
		zap.Int("score", g.session.Score),
		zap.Int("high_score", g.high.Best()),
		zap.Duration("duration", g.session.Now))
}

// Snapshot copies the state a frame needs
func (g *Game) Snapshot() Snapshot {
	remaining := g.session.ReverseRemaining()
	fraction := 0.0
	if g.opts.ReverseDuration > 0 {
		fraction = vmath.Clamp(float64(remaining)/float64(g.opts.ReverseDuration), 0, 1)
	}
	return Snapshot{
		SessionID:        g.session.ID,
		Mode:             g.session.Mode,
		Reason:           g.session.Reason,
		Score:            g.session.Score,
		Level:            g.session.Level,
		HighScore:        g.high.Best(),
		Now:              g.session.Now,
		Viewport:         g.viewport,
		Arena:            g.arena,
		Pursuer:          g.pursuer,
		Player:           g.player,
		Pickups:          g.Pickups(),
		ControlsReversed: g.session.ControlsReversed,
		ReverseRemaining: remaining,
		ReverseFraction:  fraction,
		Device:           g.opts.Device,
		Policy:           g.opts.Policy,
	}
}
