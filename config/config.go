// Package config resolves game settings from defaults, a YAML file and the environment.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/zombies/audio"
	"github.com/lixenwraith/zombies/constants"
)

// Backend names
const (
	BackendTerminal = "terminal"
	BackendWindow   = "window"
)

// Environment variables read by ApplyEnv, alongside the audio ones
const (
	EnvSeed    = "ZOMBIES_SEED"
	EnvBackend = "ZOMBIES_BACKEND"
)

// Config holds every runtime setting
type Config struct {
	// Seed for the gameplay RNG; 0 picks one from the clock
	Seed    int64  `yaml:"seed"`
	Backend string `yaml:"backend"`

	SpawnChance float64 `yaml:"spawn_chance"`
	BaddieCap   int     `yaml:"baddie_cap"`

	AssetDir     string        `yaml:"asset_dir"`
	AssetTimeout time.Duration `yaml:"asset_timeout"`
	HoldTimeout  time.Duration `yaml:"hold_timeout"`

	Audio audio.AudioConfig `yaml:"audio"`
}

// Default returns the built-in settings
func Default() *Config {
	return &Config{
		Backend:      BackendTerminal,
		SpawnChance:  constants.SpawnChance,
		BaddieCap:    constants.BaddieCap,
		AssetTimeout: constants.AssetLoadTimeout,
		HoldTimeout:  constants.KeyHoldTimeout,
		Audio:        *audio.DefaultAudioConfig(),
	}
}

// Load reads defaults, then path (if it exists), then the process environment.
// Callers apply flags on top and then Validate
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		if err := cfg.LoadFile(path); err != nil {
			return nil, err
		}
	}
	if err := cfg.ApplyEnv(os.Getenv); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile overlays the YAML document at path; a missing file is not an error
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Wrapf(err, "read config %s", path)
	}
	return c.Decode(data)
}

// Decode overlays a YAML document; keys absent from data keep their value
func (c *Config) Decode(data []byte) error {
	if err := yaml.Unmarshal(data, c); err != nil {
		return errors.Wrap(err, "parse config")
	}
	return nil
}

// ApplyEnv overlays environment overrides read through getenv
func (c *Config) ApplyEnv(getenv func(string) string) error {
	if v := getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return errors.Wrapf(err, "%s", EnvSeed)
		}
		c.Seed = seed
	}
	if v := getenv(EnvBackend); v != "" {
		c.Backend = v
	}
	audio.ApplyEnv(&c.Audio, getenv)
	return nil
}

// Validate rejects values the game cannot run with
func (c *Config) Validate() error {
	switch c.Backend {
	case BackendTerminal, BackendWindow:
	default:
		return errors.Errorf("unknown backend %q", c.Backend)
	}
	if c.SpawnChance < 0 || c.SpawnChance > 1 {
		return errors.Errorf("spawn_chance %v outside [0,1]", c.SpawnChance)
	}
	if c.AssetTimeout <= 0 {
		return errors.Errorf("asset_timeout must be positive, got %v", c.AssetTimeout)
	}
	if c.HoldTimeout <= 0 {
		return errors.Errorf("hold_timeout must be positive, got %v", c.HoldTimeout)
	}
	if c.Audio.MasterVolume < 0 || c.Audio.MasterVolume > 1 {
		return errors.Errorf("audio.master_volume %v outside [0,1]", c.Audio.MasterVolume)
	}
	if c.Audio.SampleRate <= 0 {
		return errors.Errorf("audio.sample_rate must be positive, got %d", c.Audio.SampleRate)
	}
	return nil
}
