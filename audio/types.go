package audio

// SoundType represents different sound effects
type SoundType int

const (
	SoundShot      SoundType = iota // Bullet fired
	SoundExplosion                  // Baddie destroyed by a bullet
	SoundHurt                       // Baddie reached the player
	SoundGameOver                   // Health ran out
	soundTypeCount
)

// AudioConfig holds audio settings
type AudioConfig struct {
	Enabled       bool                  `yaml:"enabled"`
	MasterVolume  float64               `yaml:"master_volume"`
	SampleRate    int                   `yaml:"sample_rate"`
	EffectVolumes map[SoundType]float64 `yaml:"-"`
}

// DefaultAudioConfig returns audio on at half volume
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: 0.5,
		SampleRate:   44100,
		EffectVolumes: map[SoundType]float64{
			SoundShot:      0.3,
			SoundExplosion: 0.6,
			SoundHurt:      0.7,
			SoundGameOver:  0.8,
		},
	}
}

func (c *AudioConfig) effectVolume(s SoundType) float64 {
	v, ok := c.EffectVolumes[s]
	if !ok {
		v = 1
	}
	return v * c.MasterVolume
}
