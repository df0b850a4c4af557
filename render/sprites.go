package render

import (
	"github.com/lixenwraith/zombies/component"
	"github.com/lixenwraith/zombies/constants"
	"github.com/lixenwraith/zombies/vmath"
)

// bucketColumn maps animation buckets to sprite sheet columns
// The walk cycle plays 0,1,2 then returns through 1
var bucketColumn = [4]int{0: 0, 1: 1, 2: 2, 3: 1}

// AnimationColumn returns the sprite sheet column for a baddie frame counter
func AnimationColumn(frame int) int {
	bucket := (frame / constants.AnimationBucket) % len(bucketColumn)
	if bucket < 0 {
		bucket += len(bucketColumn)
	}
	return bucketColumn[bucket]
}

// DrawPlayer draws the avatar as a white block
func DrawPlayer(s Surface, p *component.Player) {
	s.FillRect(p.Rect, RGBWhite, 1)
}

func DrawBullet(s Surface, b *component.Bullet) {
	s.FillRect(b.Rect, RGBWhite, 1)
}

// DrawBaddie blits the current animation column of the baddie's sheet
func DrawBaddie(s Surface, b *component.Baddie) {
	col := AnimationColumn(b.Frame)
	src := vmath.Rect{
		X: float64(col * constants.SpriteCell),
		Y: 0,
		W: b.W,
		H: b.H,
	}
	s.Blit(b.Sprite, src, b.Rect)
}

func DrawParticle(s Surface, p *component.Particle) {
	s.FillRect(p.Rect, RGBRed, p.Alpha)
}
