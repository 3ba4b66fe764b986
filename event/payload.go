package event

import (
	"time"

	"github.com/lixenwraith/cursor-chase/component"
	"github.com/lixenwraith/cursor-chase/vmath"
)

// SessionPayload identifies a session
type SessionPayload struct {
	ID string `toml:"id"`
}

// ScorePayload carries a score value
type ScorePayload struct {
	Score int `toml:"score"`
}

// LevelPayload carries the display level
type LevelPayload struct {
	Level int `toml:"level"`
}

// PickupPayload describes the pickup involved in a spawn, expiry or collection
type PickupPayload struct {
	ID         uint64               `toml:"id"`
	Kind       component.PickupKind `toml:"kind"`
	Position   vmath.Vec2           `toml:"position"`
	ScoreDelta int                  `toml:"score_delta"` // Collection only
}

// HazardPayload carries the reversal window
type HazardPayload struct {
	Until    time.Duration `toml:"until"`
	Duration time.Duration `toml:"duration"`
}

// GameOverPayload describes the end of a session
type GameOverPayload struct {
	Reason    component.GameOverReason `toml:"reason"`
	Score     int                      `toml:"score"`
	HighScore int                      `toml:"high_score"`
	NewRecord bool                     `toml:"new_record"`
}
