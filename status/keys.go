package status

import "strings"

// Key names one metric as "<group>.<name>"
type Key string

// Metric keys written by the simulation; readers (debug HUD, logs) look them up by key
const (
	KeyTicks          Key = "loop.ticks"
	KeyFrames         Key = "loop.frames"
	KeyBacklogDropped Key = "loop.backlog_dropped_ms"
	KeyEventsDispatch Key = "loop.events"
	KeyIntentsDropped Key = "input.intents_dropped"
	KeyBounces        Key = "pursuer.bounces"
	KeySpeedCapped    Key = "pursuer.capped"
	KeySpawned        Key = "pickup.spawned"
	KeySpawnFailed    Key = "pickup.spawn_failed"
	KeyExpired        Key = "pickup.expired"
	KeyCollected      Key = "pickup.collected"
	KeyStaleRespawn   Key = "pickup.stale_respawn"
	KeySessions       Key = "session.count"
	KeyPursuerSpeed   Key = "pursuer.speed"
	KeyPursuerCap     Key = "pursuer.cap"
	KeyPursuerPeak    Key = "pursuer.peak"
	KeySessionID      Key = "session.id"
	KeyHazardActive   Key = "hazard.active"
	KeyAudioEnabled   Key = "audio.enabled"
	KeyAudioPlayed    Key = "audio.played"
)

// Group is the part before the first dot
func (k Key) Group() string {
	if i := strings.IndexByte(string(k), '.'); i >= 0 {
		return string(k[:i])
	}
	return ""
}

// Name is the part after the last dot, used for the compact HUD line
func (k Key) Name() string {
	if i := strings.LastIndexByte(string(k), '.'); i >= 0 {
		return string(k[i+1:])
	}
	return string(k)
}
