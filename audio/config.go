package audio

import (
	"encoding/json"
	"os"
	"strconv"
)

// Environment variables read by LoadAudioConfig
const (
	EnvAudioEnabled = "ZOMBIES_AUDIO_ENABLED"
	EnvMasterVolume = "ZOMBIES_MASTER_VOLUME"
	EnvSFXVolumes   = "ZOMBIES_SFX_VOLUMES"
	EnvSampleRate   = "ZOMBIES_SAMPLE_RATE"
)

// sfxNames maps ZOMBIES_SFX_VOLUMES keys to sounds
var sfxNames = map[string]SoundType{
	"shot":      SoundShot,
	"explosion": SoundExplosion,
	"hurt":      SoundHurt,
	"game_over": SoundGameOver,
}

// LoadAudioConfig loads audio configuration from environment variables
func LoadAudioConfig() *AudioConfig {
	cfg := DefaultAudioConfig()
	ApplyEnv(cfg, os.Getenv)
	return cfg
}

// ApplyEnv overrides cfg from getenv; malformed values are ignored
func ApplyEnv(cfg *AudioConfig, getenv func(string) string) {
	if enabled := getenv(EnvAudioEnabled); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	// Load master volume (0-100 converted to 0.0-1.0)
	if volume := getenv(EnvMasterVolume); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.MasterVolume = clampVolume(float64(val) / 100.0)
		}
	}

	if effectVols := getenv(EnvSFXVolumes); effectVols != "" {
		var volumes map[string]float64
		if err := json.Unmarshal([]byte(effectVols), &volumes); err == nil {
			if cfg.EffectVolumes == nil {
				cfg.EffectVolumes = make(map[SoundType]float64)
			}
			for name, v := range volumes {
				if st, ok := sfxNames[name]; ok {
					cfg.EffectVolumes[st] = clampVolume(v)
				}
			}
		}
	}

	if sampleRate := getenv(EnvSampleRate); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			cfg.SampleRate = val
		}
	}
}

func clampVolume(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
