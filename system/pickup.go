package system

import (
	"time"

	"github.com/lixenwraith/cursor-chase/component"
	"github.com/lixenwraith/cursor-chase/parameter"
	"github.com/lixenwraith/cursor-chase/vmath"
)

// PickupConfig holds tunable pickup rules
type PickupConfig struct {
	MaxActive      int
	Radius         float64
	Lifetime       time.Duration
	HazardLifetime time.Duration
	BlinkThreshold time.Duration
	BlinkPeriod    time.Duration
	HazardChance   float64
	Score          int
	HazardScore    int
	MaxAttempts    int
	SpawnMargin    float64
	Clearance      float64
	CollectMargin  float64
	PlayerRadius   float64
}

// DefaultPickupConfig returns the tuned defaults
func DefaultPickupConfig() PickupConfig {
	return PickupConfig{
		MaxActive:      parameter.MaxPickups,
		Radius:         parameter.PickupRadius,
		Lifetime:       parameter.PickupLifetime,
		HazardLifetime: parameter.HazardLifetime,
		BlinkThreshold: parameter.PickupBlinkThreshold,
		BlinkPeriod:    parameter.PickupBlinkPeriod,
		HazardChance:   parameter.HazardChance,
		Score:          parameter.PickupScore,
		HazardScore:    parameter.HazardScore,
		MaxAttempts:    parameter.PickupMaxAttempts,
		SpawnMargin:    parameter.PickupSpawnMargin,
		Clearance:      parameter.PickupClearance,
		CollectMargin:  parameter.PickupCollectMargin,
		PlayerRadius:   parameter.PlayerRadius,
	}
}

// CollectionResult describes the effect of a collected pickup
type CollectionResult struct {
	Kind       component.PickupKind
	ScoreDelta int
	Reverse    bool // Request control reversal
}

// PickupManager spawns, ages and collects pickups
// It does not own the active set; the game state passes it in so session resets stay in one place
type PickupManager struct {
	cfg    PickupConfig
	rng    *vmath.FastRand
	nextID uint64
}

// NewPickupManager creates a manager drawing randomness from rng
func NewPickupManager(cfg PickupConfig, rng *vmath.FastRand) *PickupManager {
	return &PickupManager{cfg: cfg, rng: rng}
}

func (m *PickupManager) Config() PickupConfig { return m.cfg }

// TrySpawn attempts to place a new pickup
// No-op at the active cap; placement that exhausts the attempt budget is skipped, not an error
func (m *PickupManager) TrySpawn(
	active []component.Pickup,
	arena component.Arena,
	pursuer *component.Pursuer,
	player vmath.Vec2,
	now time.Duration,
) (component.Pickup, bool) {
	if len(active) >= m.cfg.MaxActive {
		return component.Pickup{}, false
	}

	inner := m.cfg.Radius + m.cfg.SpawnMargin
	outer := arena.Radius - m.cfg.Radius - m.cfg.SpawnMargin
	pursuerReach := pursuer.Radius + m.cfg.Radius + m.cfg.Clearance
	playerReach := m.cfg.Radius + m.cfg.Clearance

	for attempt := 0; attempt < m.cfg.MaxAttempts; attempt++ {
		pos := vmath.SampleAnnulus(arena.Center, inner, outer, m.rng)

		if vmath.Distance(pos, pursuer.Position) <= pursuerReach {
			continue
		}
		if vmath.Distance(pos, player) <= playerReach {
			continue
		}

		kind := component.PickupNormal
		lifetime := m.cfg.Lifetime
		if m.rng.Chance(m.cfg.HazardChance) {
			kind = component.PickupHazardous
			lifetime = m.cfg.HazardLifetime
		}

		m.nextID++
		return component.Pickup{
			ID:        m.nextID,
			Position:  pos,
			Radius:    m.cfg.Radius,
			Kind:      kind,
			SpawnTime: now,
			Lifetime:  lifetime,
			Visible:   true,
		}, true
	}

	return component.Pickup{}, false
}

// Tick ages a pickup, updating blink state, and returns true once it has expired
// Blink phase counts from blink start so the first blink half is always visible
func (m *PickupManager) Tick(p *component.Pickup, now time.Duration) bool {
	remaining := p.Remaining(now)
	if remaining <= 0 {
		return true
	}

	if remaining <= m.cfg.BlinkThreshold {
		p.Blinking = true
		sinceBlink := m.cfg.BlinkThreshold - remaining
		if m.cfg.BlinkPeriod > 0 {
			p.Visible = (sinceBlink/m.cfg.BlinkPeriod)%2 == 0
		}
	} else {
		p.Blinking = false
		p.Visible = true
	}
	return false
}

// TryCollect marks the pickup collected if the player is within reach
func (m *PickupManager) TryCollect(p *component.Pickup, player vmath.Vec2) (CollectionResult, bool) {
	if p.Collected {
		return CollectionResult{}, false
	}
	reach := p.Radius + m.cfg.PlayerRadius + m.cfg.CollectMargin
	if !vmath.CirclesOverlap(p.Position, player, reach) {
		return CollectionResult{}, false
	}

	p.Collected = true
	res := CollectionResult{Kind: p.Kind, ScoreDelta: m.cfg.Score}
	if p.Kind == component.PickupHazardous {
		res.ScoreDelta = m.cfg.HazardScore
		res.Reverse = true
	}
	return res, true
}
