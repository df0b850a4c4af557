package engine

import (
	"github.com/lixenwraith/zombies/component"
	"github.com/lixenwraith/zombies/constants"
)

// State is the complete simulation state advanced by Game.Frame
type State struct {
	Player    component.Player
	Bullets   *Pool[component.Bullet]
	Baddies   *Pool[component.Baddie]
	Particles *Pool[component.Particle]

	// Health only decreases; 0 is game over
	Health    int
	MaxHealth int

	// Score counts baddies destroyed by bullets
	Score int

	// LastBullet counts frames with fire held since the last shot
	LastBullet int

	// FrameNumber counts completed frames
	FrameNumber uint64
}

// NewState returns a fresh game at full health
func NewState() *State {
	return &State{
		Player:    component.NewPlayer(),
		Bullets:   NewPool[component.Bullet](constants.MaxBullets),
		Baddies:   NewPool[component.Baddie](constants.BaddieCap + 1),
		Particles: NewPool[component.Particle](constants.ExplosionParticles * 4),
		Health:    constants.MaxHealth,
		MaxHealth: constants.MaxHealth,
	}
}

// Alive reports whether the player still takes input and collisions
func (s *State) Alive() bool {
	return s.Health > 0
}

// GameOver reports the terminal state
func (s *State) GameOver() bool {
	return s.Health < 1
}
