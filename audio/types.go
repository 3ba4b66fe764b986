package audio

import (
	"github.com/lixenwraith/cursor-chase/parameter"
)

// SoundType represents different sound effects
type SoundType int

const (
	SoundBell  SoundType = iota // Normal pickup
	SoundBuzz                   // Hazardous pickup
	SoundChirp                  // Level up
	SoundCrash                  // Game over
	soundTypeCount
)

var soundNames = [soundTypeCount]string{"bell", "buzz", "chirp", "crash"}

func (s SoundType) String() string {
	if s < 0 || s >= soundTypeCount {
		return "unknown"
	}
	return soundNames[s]
}

// Config holds audio output settings
type Config struct {
	Enabled      bool
	MasterVolume float64 // 0.0 to 1.0
	SampleRate   int
}

// DefaultConfig returns audio enabled at 70% master volume
func DefaultConfig() Config {
	return Config{
		Enabled:      true,
		MasterVolume: 0.7,
		SampleRate:   parameter.AudioSampleRate,
	}
}
