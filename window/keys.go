package window

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lixenwraith/zombies/input"
)

// roleKeys binds each role to the keys that hold it
var roleKeys = [...]struct {
	role input.Role
	keys []ebiten.Key
}{
	{input.RoleUp, []ebiten.Key{ebiten.KeyArrowUp}},
	{input.RoleDown, []ebiten.Key{ebiten.KeyArrowDown}},
	{input.RoleLeft, []ebiten.Key{ebiten.KeyArrowLeft}},
	{input.RoleRight, []ebiten.Key{ebiten.KeyArrowRight}},
	{input.RoleFireUp, []ebiten.Key{ebiten.KeyW}},
	{input.RoleFireLeft, []ebiten.Key{ebiten.KeyA}},
	{input.RoleFireDown, []ebiten.Key{ebiten.KeyS}},
	{input.RoleFireRight, []ebiten.Key{ebiten.KeyD}},
}

var (
	quitKeys = []ebiten.Key{ebiten.KeyEscape, ebiten.KeyQ}
	muteKey  = ebiten.KeyM
)

func anyKey(keys []ebiten.Key, pressed func(ebiten.Key) bool) bool {
	for _, k := range keys {
		if pressed(k) {
			return true
		}
	}
	return false
}
