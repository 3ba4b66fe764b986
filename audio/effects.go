package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/cursor-chase/parameter"
	"github.com/lixenwraith/cursor-chase/vmath"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// noiseSeed keeps noise voices reproducible across runs
const noiseSeed = 0x5eed

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	rng      *vmath.FastRand
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	o := &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
	if wave == WaveNoise {
		o.rng = vmath.NewFastRand(noiseSeed)
	}
	return o
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = o.rng.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack and release to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope shapes s with an attack ramp, a flat sustain and a release ramp ending at duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) gain() float64 {
	vol := 1.0
	if e.attackSamples > 0 && e.position < e.attackSamples {
		vol = float64(e.position) / float64(e.attackSamples)
	}
	if e.releaseSamples > 0 {
		remaining := e.totalSamples - e.position
		if remaining < e.releaseSamples {
			vol = math.Min(vol, math.Max(0, float64(remaining)/float64(e.releaseSamples)))
		}
	}
	return vol
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	if e.position >= e.totalSamples {
		return 0, false
	}
	if left := e.totalSamples - e.position; len(samples) > left {
		samples = samples[:left]
	}

	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := e.gain()
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales s linearly; non-positive volume is silent
func newVolume(s beep.Streamer, vol float64) *effects.Volume {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// CreateBellSound generates a bright ding for a normal pickup
func CreateBellSound(rate beep.SampleRate) beep.Streamer {
	d := parameter.BellSoundDuration

	// E6 fundamental with an octave overtone
	fund := NewEnvelope(NewOscillator(1318.51, d, WaveSine, rate), d, parameter.BellSoundAttack, parameter.BellSoundRelease, rate)
	over := NewEnvelope(NewOscillator(2637.02, d, WaveSine, rate), d, parameter.BellSoundAttack, parameter.BellSoundRelease/2, rate)

	return beep.Mix(newVolume(fund, 0.6), newVolume(over, 0.25))
}

// CreateBuzzSound generates a low harsh buzz for a hazardous pickup
func CreateBuzzSound(rate beep.SampleRate) beep.Streamer {
	d := parameter.BuzzSoundDuration
	osc := NewOscillator(110.0, d, WaveSaw, rate)
	return newVolume(NewEnvelope(osc, d, parameter.BuzzSoundAttack, parameter.BuzzSoundRelease, rate), 0.4)
}

// CreateChirpSound generates a rising two-note blip for a level up
func CreateChirpSound(rate beep.SampleRate) beep.Streamer {
	half := parameter.ChirpSoundDuration / 2

	n1 := NewEnvelope(NewOscillator(987.77, half, WaveSquare, rate), half, parameter.ChirpSoundAttack, parameter.ChirpSoundRelease, rate)
	n2 := NewEnvelope(NewOscillator(1975.53, half, WaveSquare, rate), half, parameter.ChirpSoundAttack, parameter.ChirpSoundRelease, rate)

	return newVolume(beep.Seq(n1, n2), 0.2)
}

// CreateCrashSound generates a noisy rumble for game over
func CreateCrashSound(rate beep.SampleRate) beep.Streamer {
	d := parameter.CrashSoundDuration

	noise := NewEnvelope(NewOscillator(0, d, WaveNoise, rate), d, parameter.CrashSoundAttack, parameter.CrashSoundRelease, rate)
	rumble := NewEnvelope(NewOscillator(80.0, d, WaveSine, rate), d, parameter.CrashSoundAttack, d, rate)

	return beep.Mix(newVolume(noise, 0.3), newVolume(rumble, 0.5))
}

// GetSoundEffect returns a fresh streamer for the given sound type
func GetSoundEffect(soundType SoundType, rate beep.SampleRate) beep.Streamer {
	switch soundType {
	case SoundBell:
		return CreateBellSound(rate)
	case SoundBuzz:
		return CreateBuzzSound(rate)
	case SoundChirp:
		return CreateChirpSound(rate)
	case SoundCrash:
		return CreateCrashSound(rate)
	default:
		return nil
	}
}
