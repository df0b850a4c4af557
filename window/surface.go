package window

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/lixenwraith/zombies/render"
	"github.com/lixenwraith/zombies/vmath"
)

// Surface draws onto an ebiten image in logical coordinates
type Surface struct {
	dst    *ebiten.Image
	sheets []*ebiten.Image
}

// NewSurface wraps dst; sheets are indexed by sprite number
func NewSurface(dst *ebiten.Image, sheets []*ebiten.Image) *Surface {
	return &Surface{dst: dst, sheets: sheets}
}

// SheetImages uploads decoded sheets as ebiten images; nil entries stay nil
func SheetImages(sheets []image.Image) []*ebiten.Image {
	out := make([]*ebiten.Image, len(sheets))
	for i, img := range sheets {
		if img != nil {
			out[i] = ebiten.NewImageFromImage(img)
		}
	}
	return out
}

func nrgba(c render.RGB, alpha float64) color.NRGBA {
	if alpha > 1 {
		alpha = 1
	}
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(alpha * 255)}
}

func (s *Surface) Clear(c render.RGB) {
	s.dst.Fill(nrgba(c, 1))
}

func (s *Surface) FillRect(r vmath.Rect, c render.RGB, alpha float64) {
	if alpha <= 0 {
		return
	}
	vector.DrawFilledRect(s.dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), nrgba(c, alpha), false)
}

// FillText places the baseline at y, as canvas fillText does
func (s *Surface) FillText(str string, x, y float64, c render.RGB) {
	text.Draw(s.dst, str, basicfont.Face7x13, int(x), int(y), nrgba(c, 1))
}

func (s *Surface) Blit(sheet int, src, dst vmath.Rect) {
	if sheet < 0 || sheet >= len(s.sheets) || s.sheets[sheet] == nil {
		s.FillRect(dst, render.RGBBlue, 1)
		return
	}
	if src.W <= 0 || src.H <= 0 {
		return
	}

	rect := image.Rect(int(src.X), int(src.Y), int(src.X+src.W), int(src.Y+src.H))
	sub := s.sheets[sheet].SubImage(rect).(*ebiten.Image)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(dst.W/src.W, dst.H/src.H)
	op.GeoM.Translate(dst.X, dst.Y)
	s.dst.DrawImage(sub, op)
}

var _ render.Surface = (*Surface)(nil)
