package component

import "github.com/lixenwraith/zombies/vmath"

// Bullet travels at constant velocity until it hits a baddie or leaves the surface
type Bullet struct {
	vmath.Rect
	VX, VY float64
}
