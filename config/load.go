package config

import (
	"flag"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

// EnvPrefix namespaces every environment override
const EnvPrefix = "CURSOR_CHASE_"

// Flag names understood by ApplyFlags
const (
	FlagConfig = "config"
	FlagScores = "scores"
	FlagDebug  = "debug"
	FlagMute   = "mute"
	FlagPolicy = "policy"
	FlagSeed   = "seed"
)

// Load resolves defaults, the TOML file at path and the environment
// An empty path skips the file; a missing envFile is ignored
func Load(path, envFile string) (Config, error) {
	cfg := Default()

	if path != "" {
		if err := decodeFile(&cfg, path); err != nil {
			return cfg, err
		}
	}

	if envFile != "" {
		// godotenv never overrides variables already present in the process environment
		if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(errors.Cause(err)) {
			return cfg, errors.Wrapf(err, "load env file %s", envFile)
		}
	}

	if err := ApplyEnv(&cfg, os.LookupEnv); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func decodeFile(cfg *Config, path string) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return errors.Wrapf(err, "decode config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return errors.Wrapf(ErrInvalid, "unknown keys in %s: %s", path, strings.Join(keys, ", "))
	}
	return nil
}

// envSetter parses one environment value into the config
type envSetter func(cfg *Config, v string) error

var envTable = map[string]envSetter{
	"DEBUG":   boolVar(func(c *Config) *bool { return &c.Debug }),
	"POLICY":  stringVar(func(c *Config) *string { return &c.Policy }),
	"DEVICE":  stringVar(func(c *Config) *string { return &c.Device }),
	"SEED":    uintVar(func(c *Config) *uint64 { return &c.Seed }),
	"SCORES":  stringVar(func(c *Config) *string { return &c.ScoresPath }),
	"LOG_DIR": stringVar(func(c *Config) *string { return &c.LogDir }),

	"AUDIO_ENABLED": boolVar(func(c *Config) *bool { return &c.Audio.Enabled }),
	"MUTE":          boolVar(func(c *Config) *bool { return &c.Audio.Mute }),
	// Volume is given as a percentage
	"MASTER_VOLUME": func(c *Config, v string) error {
		n, err := strconv.Atoi(v)
		if err != nil {
			return err
		}
		c.Audio.Volume = float64(n) / 100.0
		return nil
	},

	"STEP_HZ":        intVar(func(c *Config) *int { return &c.Loop.StepHz }),
	"MAX_BACKLOG":    durationVar(func(c *Config) *time.Duration { return &c.Loop.MaxBacklog }),
	"FRAME_INTERVAL": durationVar(func(c *Config) *time.Duration { return &c.Loop.FrameInterval }),

	"MAX_PICKUPS":      intVar(func(c *Config) *int { return &c.Gameplay.MaxPickups }),
	"SPAWN_CHANCE":     floatVar(func(c *Config) *float64 { return &c.Gameplay.SpawnChance }),
	"HAZARD_CHANCE":    floatVar(func(c *Config) *float64 { return &c.Gameplay.HazardChance }),
	"SCORE":            intVar(func(c *Config) *int { return &c.Gameplay.Score }),
	"HAZARD_SCORE":     intVar(func(c *Config) *int { return &c.Gameplay.HazardScore }),
	"RESPAWN_DELAY":    durationVar(func(c *Config) *time.Duration { return &c.Gameplay.RespawnDelay }),
	"REVERSE_DURATION": durationVar(func(c *Config) *time.Duration { return &c.Gameplay.ReverseDuration }),
}

// ApplyEnv overlays CURSOR_CHASE_* variables found through lookup
func ApplyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	for name, set := range envTable {
		v, ok := lookup(EnvPrefix + name)
		if !ok || v == "" {
			continue
		}
		if err := set(cfg, strings.TrimSpace(v)); err != nil {
			return errors.Wrapf(ErrInvalid, "%s%s=%q: %v", EnvPrefix, name, v, err)
		}
	}
	return nil
}

// ApplyFlags overlays the flags explicitly set on fs; unset flags keep lower-priority values
func ApplyFlags(cfg *Config, fs *flag.FlagSet) error {
	var err error
	fs.Visit(func(f *flag.Flag) {
		if err != nil {
			return
		}
		v := f.Value.String()
		switch f.Name {
		case FlagScores:
			cfg.ScoresPath = v
		case FlagPolicy:
			cfg.Policy = v
		case FlagDebug:
			cfg.Debug, err = strconv.ParseBool(v)
		case FlagMute:
			cfg.Audio.Mute, err = strconv.ParseBool(v)
		case FlagSeed:
			cfg.Seed, err = strconv.ParseUint(v, 10, 64)
		}
		if err != nil {
			err = errors.Wrapf(ErrInvalid, "-%s=%q: %v", f.Name, v, err)
		}
	})
	return err
}

func boolVar(field func(*Config) *bool) envSetter {
	return func(c *Config, v string) (err error) {
		*field(c), err = strconv.ParseBool(v)
		return err
	}
}

func intVar(field func(*Config) *int) envSetter {
	return func(c *Config, v string) (err error) {
		*field(c), err = strconv.Atoi(v)
		return err
	}
}

func uintVar(field func(*Config) *uint64) envSetter {
	return func(c *Config, v string) (err error) {
		*field(c), err = strconv.ParseUint(v, 10, 64)
		return err
	}
}

func floatVar(field func(*Config) *float64) envSetter {
	return func(c *Config, v string) (err error) {
		*field(c), err = strconv.ParseFloat(v, 64)
		return err
	}
}

func durationVar(field func(*Config) *time.Duration) envSetter {
	return func(c *Config, v string) (err error) {
		*field(c), err = time.ParseDuration(v)
		return err
	}
}

func stringVar(field func(*Config) *string) envSetter {
	return func(c *Config, v string) error {
		*field(c) = v
		return nil
	}
}
