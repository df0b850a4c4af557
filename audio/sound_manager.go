package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/pkg/errors"

	"github.com/lixenwraith/zombies/constants"
	"github.com/lixenwraith/zombies/engine"
)

// SoundManager manages all game audio
type SoundManager struct {
	mu          sync.Mutex
	config      *AudioConfig
	mixer       *beep.Mixer
	ctrl        *beep.Ctrl
	initialized bool
	muted       bool
	lastPlayed  [soundTypeCount]time.Time

	// Swapped in tests so no device is needed
	now    func() time.Time
	lock   func()
	unlock func()
}

// NewSoundManager creates a new sound manager; nil config means defaults
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	mixer := &beep.Mixer{}
	return &SoundManager{
		config: cfg,
		mixer:  mixer,
		ctrl:   &beep.Ctrl{Streamer: mixer},
		now:    time.Now,
		lock:   speaker.Lock,
		unlock: speaker.Unlock,
	}
}

// Initialize sets up the audio system; a disabled config is a no-op
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.config.Enabled {
		return nil
	}

	rate := beep.SampleRate(sm.config.SampleRate)
	if err := speaker.Init(rate, rate.N(time.Millisecond*100)); err != nil {
		return errors.Wrap(err, "speaker init")
	}

	speaker.Play(sm.ctrl)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	sm.lock()
	sm.ctrl.Paused = true
	sm.mixer.Clear()
	sm.unlock()

	// beep has no speaker Close; clearing the mixer is enough to go quiet
	sm.initialized = false
}

// Initialized reports whether the speaker is running
func (sm *SoundManager) Initialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// Play queues one effect; repeats of the same effect inside MinSoundGap are dropped
func (sm *SoundManager) Play(t SoundType) bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted || t < 0 || t >= soundTypeCount {
		return false
	}

	now := sm.now()
	if last := sm.lastPlayed[t]; !last.IsZero() && now.Sub(last) < constants.MinSoundGap {
		return false
	}
	sm.lastPlayed[t] = now

	s := CreateSound(t, sm.config)
	sm.lock()
	sm.mixer.Add(s)
	sm.unlock()
	return true
}

// ToggleMute flips the mute state and returns the new value
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.muted = !sm.muted
	if sm.initialized {
		sm.lock()
		sm.ctrl.Paused = sm.muted
		if sm.muted {
			sm.mixer.Clear()
		}
		sm.unlock()
	}
	return sm.muted
}

// Muted reports the mute state
func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// HandleEvent maps gameplay events to effects
func (sm *SoundManager) HandleEvent(ev engine.Event) {
	switch ev {
	case engine.EventShot:
		sm.Play(SoundShot)
	case engine.EventBaddieKilled:
		sm.Play(SoundExplosion)
	case engine.EventPlayerHit:
		sm.Play(SoundHurt)
	case engine.EventGameOver:
		sm.Play(SoundGameOver)
	}
}

var _ engine.EventHandler = (*SoundManager)(nil)
