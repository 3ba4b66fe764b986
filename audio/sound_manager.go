package audio

import (
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/lixenwraith/cursor-chase/component"
	"github.com/lixenwraith/cursor-chase/engine"
	"github.com/lixenwraith/cursor-chase/event"
	"github.com/lixenwraith/cursor-chase/parameter"
	"github.com/lixenwraith/cursor-chase/status"
)

// SoundManager plays game sound effects through a single mixer
// Every operation is safe without a working audio device
type SoundManager struct {
	mu          sync.Mutex
	cfg         Config
	rate        beep.SampleRate
	mixer       *beep.Mixer
	master      *effects.Volume
	initialized bool

	muted   atomic.Bool
	enabled *atomic.Bool
	played  *atomic.Int64
	log     *zap.Logger
}

// NewSoundManager creates a sound manager; call Initialize to open the device
func NewSoundManager(cfg Config, reg *status.Registry, log *zap.Logger) *SoundManager {
	if log == nil {
		log = zap.NewNop()
	}
	if reg == nil {
		reg = status.NewRegistry()
	}
	if cfg.SampleRate <= 0 {
		cfg.SampleRate = parameter.AudioSampleRate
	}

	mixer := &beep.Mixer{}
	sm := &SoundManager{
		cfg:     cfg,
		rate:    beep.SampleRate(cfg.SampleRate),
		mixer:   mixer,
		master:  newVolume(mixer, cfg.MasterVolume),
		enabled: reg.Bools.Get(status.KeyAudioEnabled),
		played:  reg.Ints.Get(status.KeyAudioPlayed),
		log:     log.Named("audio"),
	}
	return sm
}

// Initialize opens the speaker; failure leaves the manager silent
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if !sm.cfg.Enabled {
		sm.log.Info("audio disabled by configuration")
		return nil
	}

	if err := speaker.Init(sm.rate, sm.rate.N(parameter.AudioBufferDuration)); err != nil {
		sm.log.Warn("audio unavailable, continuing silent", zap.Error(err))
		return errors.Wrap(err, "speaker init")
	}

	speaker.Play(sm.master)
	sm.initialized = true
	sm.enabled.Store(!sm.muted.Load())
	sm.log.Info("audio initialized", zap.Int("sample_rate", int(sm.rate)))
	return nil
}

// Cleanup stops all sounds and detaches the mixer from the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Clear()
	sm.mixer.Clear()
	sm.initialized = false
	sm.enabled.Store(false)
}

// ToggleMute flips the mute state and returns the new value
func (sm *SoundManager) ToggleMute() bool {
	muted := !sm.muted.Load()
	sm.SetMuted(muted)
	return muted
}

// SetMuted silences or restores output; queued sounds are dropped on mute
func (sm *SoundManager) SetMuted(muted bool) {
	sm.muted.Store(muted)

	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		speaker.Lock()
		sm.master.Silent = muted || sm.cfg.MasterVolume <= 0
		if muted {
			sm.mixer.Clear()
		}
		speaker.Unlock()
	}
	sm.enabled.Store(sm.initialized && !muted)
}

// Muted reports the mute state
func (sm *SoundManager) Muted() bool {
	return sm.muted.Load()
}

// Play queues one sound effect; no-op when muted or uninitialized
func (sm *SoundManager) Play(sound SoundType) {
	if sm.muted.Load() {
		return
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	streamer := GetSoundEffect(sound, sm.rate)
	if streamer == nil {
		return
	}

	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
	sm.played.Add(1)
}

// EventTypes implements event.Handler
func (sm *SoundManager) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventPickupCollected,
		event.EventLevelChanged,
		event.EventGameOver,
	}
}

// HandleEvent implements event.Handler
func (sm *SoundManager) HandleEvent(_ engine.Snapshot, ev event.GameEvent) {
	if sound, ok := soundFor(ev); ok {
		sm.Play(sound)
	}
}

// soundFor maps an event to its effect; the level announced at session start is silent
func soundFor(ev event.GameEvent) (SoundType, bool) {
	switch ev.Type {
	case event.EventPickupCollected:
		if p, ok := ev.Payload.(*event.PickupPayload); ok && p.Kind == component.PickupHazardous {
			return SoundBuzz, true
		}
		return SoundBell, true
	case event.EventLevelChanged:
		if p, ok := ev.Payload.(*event.LevelPayload); ok && p.Level > 1 {
			return SoundChirp, true
		}
	case event.EventGameOver:
		return SoundCrash, true
	}
	return 0, false
}
