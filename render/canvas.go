package render

import (
	"image"
	"image/color"
	"math"

	"github.com/lixenwraith/zombies/vmath"
)

// Glyph is a text cell overlay
type Glyph struct {
	Rune rune
	Fg   RGB
}

// Canvas rasterizes the logical surface onto a coarse pixel grid for
// character-cell output. Each raster pixel covers pixelW x pixelH logical
// pixels; text snaps to cells one raster pixel wide and two tall
type Canvas struct {
	width, height  float64
	pixelW, pixelH float64
	cols, rows     int
	pix            []RGB
	glyphs         []Glyph
	sheets         []image.Image
}

// NewCanvas creates a canvas for a width x height logical surface
func NewCanvas(width, height int, pixelW, pixelH float64, sheets []image.Image) *Canvas {
	if pixelW <= 0 {
		pixelW = 1
	}
	if pixelH <= 0 {
		pixelH = 1
	}
	cols := int(math.Ceil(float64(width) / pixelW))
	rows := int(math.Ceil(float64(height) / pixelH))
	if rows%2 != 0 {
		rows++
	}

	return &Canvas{
		width:  float64(width),
		height: float64(height),
		pixelW: pixelW,
		pixelH: pixelH,
		cols:   cols,
		rows:   rows,
		pix:    make([]RGB, cols*rows),
		glyphs: make([]Glyph, cols*rows/2),
		sheets: sheets,
	}
}

// Bounds returns raster dimensions in pixels
func (c *Canvas) Bounds() (int, int) {
	return c.cols, c.rows
}

// Cells returns text cell dimensions
func (c *Canvas) Cells() (int, int) {
	return c.cols, c.rows / 2
}

// Pixel returns the raster pixel at (x, y); out of range reads black
func (c *Canvas) Pixel(x, y int) RGB {
	if x < 0 || x >= c.cols || y < 0 || y >= c.rows {
		return RGBBlack
	}
	return c.pix[y*c.cols+x]
}

// Glyph returns the text overlay at cell (col, row); Rune 0 means none
func (c *Canvas) Glyph(col, row int) Glyph {
	if col < 0 || col >= c.cols || row < 0 || row >= c.rows/2 {
		return Glyph{}
	}
	return c.glyphs[row*c.cols+col]
}

func (c *Canvas) Clear(bg RGB) {
	for i := range c.pix {
		c.pix[i] = bg
	}
	for i := range c.glyphs {
		c.glyphs[i] = Glyph{}
	}
}

// span converts a logical interval to a clipped half-open raster range
func span(lo, hi, step float64, limit int) (int, int) {
	a := int(math.Floor(lo / step))
	b := int(math.Ceil(hi / step))
	if a < 0 {
		a = 0
	}
	if b > limit {
		b = limit
	}
	return a, b
}

func (c *Canvas) FillRect(r vmath.Rect, col RGB, alpha float64) {
	if alpha <= 0 {
		return
	}
	x0, x1 := span(r.X, r.X+r.W, c.pixelW, c.cols)
	y0, y1 := span(r.Y, r.Y+r.H, c.pixelH, c.rows)
	for y := y0; y < y1; y++ {
		row := c.pix[y*c.cols : (y+1)*c.cols]
		for x := x0; x < x1; x++ {
			row[x] = Blend(row[x], col, alpha)
		}
	}
}

func (c *Canvas) FillText(text string, x, y float64, fg RGB) {
	cellH := c.pixelH * 2
	row := int(math.Floor((y - 1) / cellH))
	if row < 0 || row >= c.rows/2 {
		return
	}
	col := int(math.Floor(x / c.pixelW))
	for _, r := range text {
		if col >= c.cols {
			return
		}
		if col >= 0 && r != ' ' {
			c.glyphs[row*c.cols+col] = Glyph{Rune: r, Fg: fg}
		}
		col++
	}
}

// Blit samples the sheet at each covered raster pixel center
// Source pixels under half opacity are treated as transparent
func (c *Canvas) Blit(sheet int, src, dst vmath.Rect) {
	if dst.W <= 0 || dst.H <= 0 {
		return
	}
	if sheet < 0 || sheet >= len(c.sheets) || c.sheets[sheet] == nil {
		c.FillRect(dst, RGBBlue, 1)
		return
	}
	img := c.sheets[sheet]
	b := img.Bounds()

	x0, x1 := span(dst.X, dst.X+dst.W, c.pixelW, c.cols)
	y0, y1 := span(dst.Y, dst.Y+dst.H, c.pixelH, c.rows)
	for y := y0; y < y1; y++ {
		cy := clampf((float64(y)+0.5)*c.pixelH, dst.Y, dst.Y+dst.H-1e-9)
		v := src.Y + (cy-dst.Y)/dst.H*src.H
		for x := x0; x < x1; x++ {
			cx := clampf((float64(x)+0.5)*c.pixelW, dst.X, dst.X+dst.W-1e-9)
			u := src.X + (cx-dst.X)/dst.W*src.W

			sx := b.Min.X + int(math.Floor(u))
			sy := b.Min.Y + int(math.Floor(v))
			if sx < b.Min.X || sx >= b.Max.X || sy < b.Min.Y || sy >= b.Max.Y {
				continue
			}
			nc := color.NRGBAModel.Convert(img.At(sx, sy)).(color.NRGBA)
			if nc.A < 128 {
				continue
			}
			c.pix[y*c.cols+x] = RGB{nc.R, nc.G, nc.B}
		}
	}
}

func clampf(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
