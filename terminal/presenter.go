package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/zombies/render"
)

// halfBlock paints the top raster pixel as foreground and the bottom as background
const halfBlock = '▀'

// Presenter copies a Canvas onto a tcell screen, centred
type Presenter struct {
	screen       tcell.Screen
	canvas       *render.Canvas
	offX, offY   int
	screenW      int
	screenH      int
	lastW, lastH int
}

// NewPresenter creates a presenter and computes the initial placement
func NewPresenter(screen tcell.Screen, canvas *render.Canvas) *Presenter {
	p := &Presenter{screen: screen, canvas: canvas}
	p.Resize()
	return p
}

// Resize re-centres the canvas on the current screen size; returns false if unchanged
func (p *Presenter) Resize() bool {
	w, h := p.screen.Size()
	if w == p.screenW && h == p.screenH && p.lastW != 0 {
		return false
	}
	p.screenW, p.screenH = w, h

	cols, rows := p.canvas.Cells()
	p.offX = max(0, (w-cols)/2)
	p.offY = max(0, (h-rows)/2)
	p.lastW, p.lastH = cols, rows
	p.screen.Clear()
	return true
}

// Offset returns the screen cell of canvas cell (0, 0)
func (p *Presenter) Offset() (int, int) {
	return p.offX, p.offY
}

// Present draws every canvas cell and shows the screen
func (p *Presenter) Present() {
	cols, rows := p.canvas.Cells()
	black := render.RGBBlack.Tcell()

	for row := 0; row < rows; row++ {
		y := p.offY + row
		if y >= p.screenH {
			break
		}
		for col := 0; col < cols; col++ {
			x := p.offX + col
			if x >= p.screenW {
				break
			}

			if g := p.canvas.Glyph(col, row); g.Rune != 0 {
				style := tcell.StyleDefault.Foreground(g.Fg.Tcell()).Background(black)
				p.screen.SetContent(x, y, g.Rune, nil, style)
				continue
			}

			top := p.canvas.Pixel(col, row*2)
			bottom := p.canvas.Pixel(col, row*2+1)
			style := tcell.StyleDefault.Foreground(top.Tcell()).Background(bottom.Tcell())
			p.screen.SetContent(x, y, halfBlock, nil, style)
		}
	}
	p.screen.Show()
}
