package component

import "github.com/lixenwraith/zombies/vmath"

// Particle is explosion debris. Alpha only affects drawing, culling is positional
type Particle struct {
	vmath.Rect
	VX, VY float64
	Alpha  float64
}
