package component

import "github.com/lixenwraith/zombies/vmath"

// Baddie homes toward the player. VX/VY are kept for parity with other
// entities; homing recomputes displacement from scratch every frame
type Baddie struct {
	vmath.Rect
	VX, VY float64
	Sprite int // sprite sheet index
	Frame  int // animation tick counter
}
