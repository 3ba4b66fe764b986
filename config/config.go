// Package config resolves runtime settings from defaults, a TOML file, a .env
// file, CURSOR_CHASE_* environment variables and command-line flags, in that
// order of increasing priority.
package config

import (
	"time"

	"github.com/pkg/errors"

	"github.com/lixenwraith/cursor-chase/audio"
	"github.com/lixenwraith/cursor-chase/engine"
	"github.com/lixenwraith/cursor-chase/input"
	"github.com/lixenwraith/cursor-chase/parameter"
)

// ErrInvalid marks a configuration value that failed parsing or validation
var ErrInvalid = errors.New("invalid configuration")

// Config is the complete set of user-tunable settings
type Config struct {
	Debug      bool   `toml:"debug"`
	Policy     string `toml:"policy"`
	Device     string `toml:"device"`
	Seed       uint64 `toml:"seed"` // 0 seeds from the wall clock
	ScoresPath string `toml:"scores_path"`
	LogDir     string `toml:"log_dir"`

	Loop     LoopConfig     `toml:"loop"`
	Audio    AudioConfig    `toml:"audio"`
	Gameplay GameplayConfig `toml:"gameplay"`
}

// LoopConfig tunes the fixed-step driver
type LoopConfig struct {
	StepHz        int           `toml:"step_hz"`
	MaxBacklog    time.Duration `toml:"max_backlog"`
	FrameInterval time.Duration `toml:"frame_interval"`
}

// AudioConfig tunes sound output
type AudioConfig struct {
	Enabled bool    `toml:"enabled"`
	Mute    bool    `toml:"mute"`
	Volume  float64 `toml:"volume"`
}

// GameplayConfig tunes the rule set
type GameplayConfig struct {
	MaxPickups      int           `toml:"max_pickups"`
	SpawnChance     float64       `toml:"spawn_chance"`
	HazardChance    float64       `toml:"hazard_chance"`
	Score           int           `toml:"score"`
	HazardScore     int           `toml:"hazard_score"`
	RespawnDelay    time.Duration `toml:"respawn_delay"`
	ReverseDuration time.Duration `toml:"reverse_duration"`
}

// Default returns the tuned settings
func Default() Config {
	a := audio.DefaultConfig()
	return Config{
		Policy:     input.BoundaryStrict.String(),
		Device:     input.DeviceMouse.String(),
		ScoresPath: parameter.DefaultScoresPath,
		LogDir:     parameter.DefaultLogDir,
		Loop: LoopConfig{
			StepHz:        parameter.StepHz,
			MaxBacklog:    parameter.MaxBacklog,
			FrameInterval: parameter.FrameInterval,
		},
		Audio: AudioConfig{
			Enabled: a.Enabled,
			Volume:  a.MasterVolume,
		},
		Gameplay: GameplayConfig{
			MaxPickups:      parameter.MaxPickups,
			SpawnChance:     parameter.PickupSpawnChance,
			HazardChance:    parameter.HazardChance,
			Score:           parameter.PickupScore,
			HazardScore:     parameter.HazardScore,
			RespawnDelay:    parameter.PickupRespawnDelay,
			ReverseDuration: parameter.ReverseDuration,
		},
	}
}

// Validate reports the first out-of-range setting wrapped in ErrInvalid
func (c Config) Validate() error {
	if _, err := input.ParseBoundaryPolicy(c.Policy); err != nil {
		return errors.Wrap(ErrInvalid, err.Error())
	}
	if _, err := input.ParseDevice(c.Device); err != nil {
		return errors.Wrap(ErrInvalid, err.Error())
	}

	switch {
	case c.Loop.StepHz != parameter.StepHz:
		// Pursuer velocity is a displacement per step, so another rate changes game speed
		return errors.Wrapf(ErrInvalid, "loop.step_hz must be %d, got %d", parameter.StepHz, c.Loop.StepHz)
	case c.Loop.MaxBacklog <= 0:
		return errors.Wrapf(ErrInvalid, "loop.max_backlog must be positive, got %s", c.Loop.MaxBacklog)
	case c.Loop.FrameInterval <= 0:
		return errors.Wrapf(ErrInvalid, "loop.frame_interval must be positive, got %s", c.Loop.FrameInterval)
	case c.Audio.Volume < 0 || c.Audio.Volume > 1:
		return errors.Wrapf(ErrInvalid, "audio.volume must be within [0, 1], got %g", c.Audio.Volume)
	case c.Gameplay.MaxPickups < 1:
		return errors.Wrapf(ErrInvalid, "gameplay.max_pickups must be at least 1, got %d", c.Gameplay.MaxPickups)
	case c.Gameplay.SpawnChance < 0 || c.Gameplay.SpawnChance > 1:
		return errors.Wrapf(ErrInvalid, "gameplay.spawn_chance must be within [0, 1], got %g", c.Gameplay.SpawnChance)
	case c.Gameplay.HazardChance < 0 || c.Gameplay.HazardChance > 1:
		return errors.Wrapf(ErrInvalid, "gameplay.hazard_chance must be within [0, 1], got %g", c.Gameplay.HazardChance)
	case c.Gameplay.Score < 0 || c.Gameplay.HazardScore < 0:
		return errors.Wrap(ErrInvalid, "gameplay scores must not be negative")
	case c.Gameplay.RespawnDelay < 0:
		return errors.Wrapf(ErrInvalid, "gameplay.respawn_delay must not be negative, got %s", c.Gameplay.RespawnDelay)
	case c.Gameplay.ReverseDuration <= 0:
		return errors.Wrapf(ErrInvalid, "gameplay.reverse_duration must be positive, got %s", c.Gameplay.ReverseDuration)
	}
	return nil
}

// StepSize is the simulation step derived from StepHz; Validate pins it to parameter.StepSize
func (c Config) StepSize() time.Duration {
	if c.Loop.StepHz <= 0 {
		return parameter.StepSize
	}
	return time.Second / time.Duration(c.Loop.StepHz)
}

// GameOptions builds the engine rule set; call after Validate
func (c Config) GameOptions() engine.Options {
	opts := engine.DefaultOptions()
	opts.Policy, _ = input.ParseBoundaryPolicy(c.Policy)
	opts.Device, _ = input.ParseDevice(c.Device)
	opts.SpawnChance = c.Gameplay.SpawnChance
	opts.RespawnDelay = c.Gameplay.RespawnDelay
	opts.ReverseDuration = c.Gameplay.ReverseDuration
	opts.Pickups.MaxActive = c.Gameplay.MaxPickups
	opts.Pickups.HazardChance = c.Gameplay.HazardChance
	opts.Pickups.Score = c.Gameplay.Score
	opts.Pickups.HazardScore = c.Gameplay.HazardScore
	opts.Step = c.StepSize()
	if c.Seed != 0 {
		opts.Seed = c.Seed
	}
	return opts
}

// AudioOptions builds the sound manager settings
func (c Config) AudioOptions() audio.Config {
	a := audio.DefaultConfig()
	a.Enabled = c.Audio.Enabled
	a.MasterVolume = c.Audio.Volume
	return a
}
