package constants

import "time"

// Shot Sound Timing
const (
	ShotSoundDuration = 40 * time.Millisecond
	ShotSoundAttack   = 2 * time.Millisecond
	ShotSoundRelease  = 30 * time.Millisecond
)

// Explosion Sound Timing
const (
	ExplosionSoundDuration = 250 * time.Millisecond
	ExplosionSoundAttack   = 5 * time.Millisecond
	ExplosionSoundRelease  = 200 * time.Millisecond
)

// Hurt Sound Timing
const (
	HurtSoundDuration = 120 * time.Millisecond
	HurtSoundAttack   = 5 * time.Millisecond
	HurtSoundRelease  = 60 * time.Millisecond
)

// Game Over Sound Timing
const (
	GameOverNoteDuration = 300 * time.Millisecond
	GameOverNoteAttack   = 10 * time.Millisecond
	GameOverNoteRelease  = 200 * time.Millisecond
)

// MinSoundGap is the minimum gap between two plays of the same effect
const MinSoundGap = 50 * time.Millisecond
