package render

import "github.com/lixenwraith/zombies/vmath"

// Surface is the drawing target of a frame, in logical surface pixels
// Backends supply the sprite sheets referenced by index
type Surface interface {
	// Clear fills the whole surface
	Clear(c RGB)

	// FillRect composites a rectangle; alpha 0 draws nothing
	FillRect(r vmath.Rect, c RGB, alpha float64)

	// FillText draws text with its baseline at y
	FillText(text string, x, y float64, c RGB)

	// Blit copies the src region of a sprite sheet onto dst
	Blit(sheet int, src, dst vmath.Rect)
}

type discard struct{}

func (discard) Clear(RGB)                              {}
func (discard) FillRect(vmath.Rect, RGB, float64)      {}
func (discard) FillText(string, float64, float64, RGB) {}
func (discard) Blit(int, vmath.Rect, vmath.Rect)       {}

// Discard is a Surface that draws nothing
var Discard Surface = discard{}
