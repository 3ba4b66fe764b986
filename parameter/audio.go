package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 50 * time.Millisecond
)

// Bell Sound (normal pickup)
const (
	BellSoundDuration = 400 * time.Millisecond
	BellSoundAttack   = 5 * time.Millisecond
	BellSoundRelease  = 300 * time.Millisecond
)

// Buzz Sound (hazard pickup)
const (
	BuzzSoundDuration = 250 * time.Millisecond
	BuzzSoundAttack   = 5 * time.Millisecond
	BuzzSoundRelease  = 60 * time.Millisecond
)

// Chirp Sound (level up)
const (
	ChirpSoundDuration = 120 * time.Millisecond
	ChirpSoundAttack   = 5 * time.Millisecond
	ChirpSoundRelease  = 40 * time.Millisecond
)

// Crash Sound (game over)
const (
	CrashSoundDuration = 500 * time.Millisecond
	CrashSoundAttack   = 2 * time.Millisecond
	CrashSoundRelease  = 350 * time.Millisecond
)
