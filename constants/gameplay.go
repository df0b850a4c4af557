package constants

// Player
const (
	PlayerStartX = 256
	PlayerStartY = 192
	PlayerSize   = 32
	PlayerSpeed  = 5

	MaxHealth = 10
)

// Bullets
const (
	BulletSize   = 5
	BulletSpeed  = 8
	BulletOffset = 14 // from player origin

	// MaxBullets is the concurrent bullet cap
	MaxBullets = 20

	// FireCooldown is compared against the pre-increment fire counter
	FireCooldown = 4
)

// Baddies
const (
	BaddieSize = 32

	// SpawnChance is the per-frame threshold; a roll above it spawns one baddie
	SpawnChance = 0.99

	// BaddieCap is the pool size above which the oldest baddie is dropped on spawn
	BaddieCap = 100

	// SpriteCount is the number of baddie sprite sheets
	SpriteCount = 5
)

// Homing speed = HomingBaseSpeed + (1 + sin(dist/HomingWavelength)) * HomingPulse
const (
	HomingBaseSpeed  = 0.1
	HomingPulse      = 0.3
	HomingWavelength = 3.0
)

// Explosions
const (
	ExplosionParticles = 30
	ParticleSize       = 5

	// ParticleSpread is the full width of the uniform velocity range per axis
	ParticleSpread = 10

	ParticleFade         = 0.98
	ParticleAlphaFloor   = 0.2
	ParticleInitialAlpha = 1.0
)
