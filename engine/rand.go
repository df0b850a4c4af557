package engine

// Rand is the random source consumed by spawning and explosions
// Satisfied by *vmath.FastRand and *math/rand.Rand
type Rand interface {
	Float64() float64
}
