package event

import "time"

// EventType represents the type of game event
type EventType int

const (
	// EventSessionStarted signals the transition Waiting -> Playing
	// Trigger: Start intent | Payload: *SessionPayload
	EventSessionStarted EventType = iota + 1

	// EventSessionReset signals the transition GameOver -> Waiting
	// Trigger: Restart intent | Payload: *SessionPayload
	EventSessionReset

	// EventScoreChanged signals a new score value
	// Trigger: Pickup collected, session start | Payload: *ScorePayload
	EventScoreChanged

	// EventLevelChanged signals the display level moved
	// Trigger: Difficulty recompute | Consumer: Presenter, SoundManager | Payload: *LevelPayload
	EventLevelChanged

	// EventPickupSpawned signals a new pickup on the field
	// Payload: *PickupPayload
	EventPickupSpawned

	// EventPickupExpired signals a pickup reached the end of its lifetime uncollected
	// Payload: *PickupPayload
	EventPickupExpired

	// EventPickupCollected signals the player reached a pickup
	// Consumer: SoundManager | Payload: *PickupPayload
	EventPickupCollected

	// EventHazardStarted signals controls became reversed (or the timer was refreshed)
	// Payload: *HazardPayload
	EventHazardStarted

	// EventHazardEnded signals reversal elapsed
	// Payload: nil
	EventHazardEnded

	// EventGameOver signals the transition Playing -> GameOver
	// Consumer: Presenter, SoundManager | Payload: *GameOverPayload
	EventGameOver

	// EventHighScore signals a new record was stored
	// Payload: *ScorePayload
	EventHighScore
)

var typeNames = map[EventType]string{
	EventSessionStarted:  "SessionStarted",
	EventSessionReset:    "SessionReset",
	EventScoreChanged:    "ScoreChanged",
	EventLevelChanged:    "LevelChanged",
	EventPickupSpawned:   "PickupSpawned",
	EventPickupExpired:   "PickupExpired",
	EventPickupCollected: "PickupCollected",
	EventHazardStarted:   "HazardStarted",
	EventHazardEnded:     "HazardEnded",
	EventGameOver:        "GameOver",
	EventHighScore:       "HighScore",
}

func (t EventType) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "Unknown"
}

// GameEvent is a single queued notification
type GameEvent struct {
	Type    EventType
	Payload any
	Time    time.Duration // Simulation clock at emission
}
