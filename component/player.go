package component

import (
	"github.com/lixenwraith/zombies/constants"
	"github.com/lixenwraith/zombies/vmath"
)

// Player is the singleton avatar; it is disabled by health, never removed
type Player struct {
	vmath.Rect
}

// NewPlayer places the avatar at its start position
func NewPlayer() Player {
	return Player{Rect: vmath.Rect{
		X: constants.PlayerStartX,
		Y: constants.PlayerStartY,
		W: constants.PlayerSize,
		H: constants.PlayerSize,
	}}
}
