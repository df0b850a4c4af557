package render

import (
	"image"
	"image/color"
	"testing"

	"github.com/lixenwraith/zombies/component"
	"github.com/lixenwraith/zombies/vmath"
)

// TestAnimationColumnCycle verifies the 60-tick walk cycle including the bucket 3 remap
func TestAnimationColumnCycle(t *testing.T) {
	for tick := 0; tick < 60; tick++ {
		var want int
		switch {
		case tick < 15:
			want = 0
		case tick < 30:
			want = 1
		case tick < 45:
			want = 2
		default:
			want = 1
		}
		if got := AnimationColumn(tick); got != want {
			t.Errorf("AnimationColumn(%d) = %d, want %d", tick, got, want)
		}
	}
}

func TestDrawBaddieSourceRect(t *testing.T) {
	rec := &Recorder{}
	b := &component.Baddie{
		Rect:   vmath.Rect{X: 10, Y: 20, W: 32, H: 32},
		Sprite: 3,
		Frame:  31,
	}
	DrawBaddie(rec, b)

	blits := rec.Filter(OpBlit)
	if len(blits) != 1 {
		t.Fatalf("Expected 1 blit, got %d", len(blits))
	}
	op := blits[0]
	if op.Sheet != 3 {
		t.Errorf("Sheet = %d, want 3", op.Sheet)
	}
	if op.Src != (vmath.Rect{X: 64, Y: 0, W: 32, H: 32}) {
		t.Errorf("Src = %v, want column 2", op.Src)
	}
	if op.Rect != b.Rect {
		t.Errorf("Dst = %v, want %v", op.Rect, b.Rect)
	}
}

func TestDrawHUD(t *testing.T) {
	tests := []struct {
		name   string
		health int
		white  int
	}{
		{"full", 10, 10},
		{"wounded", 7, 7},
		{"dead", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &Recorder{}
			DrawHUD(rec, 42, tt.health, 10, 480)

			texts := rec.Filter(OpFillText)
			if len(texts) != 1 || texts[0].Text != "Score: 42" {
				t.Fatalf("Expected score text, got %+v", texts)
			}
			if texts[0].X != 20 || texts[0].Y != 20 {
				t.Errorf("Score at (%v,%v), want (20,20)", texts[0].X, texts[0].Y)
			}

			rects := rec.Filter(OpFillRect)
			if len(rects) != 10 {
				t.Fatalf("Expected 10 segments, got %d", len(rects))
			}
			white := 0
			for i, op := range rects {
				wantX := float64(20 + i*6)
				if op.Rect.X != wantX || op.Rect.Y != 440 || op.Rect.W != 4 || op.Rect.H != 20 {
					t.Errorf("Segment %d at %v", i, op.Rect)
				}
				if op.Color == RGBWhite {
					white++
				} else if op.Color != RGBRed {
					t.Errorf("Segment %d unexpected color %v", i, op.Color)
				}
			}
			if white != tt.white {
				t.Errorf("White segments = %d, want %d", white, tt.white)
			}
		})
	}
}

func TestDrawGameOver(t *testing.T) {
	rec := &Recorder{}
	DrawGameOver(rec, 576, 480)
	texts := rec.Filter(OpFillText)
	if len(texts) != 1 {
		t.Fatalf("Expected one text op, got %d", len(texts))
	}
	if texts[0].Text != "G A M E   O V E R" || texts[0].X != 233 || texts[0].Y != 240 {
		t.Errorf("Unexpected banner %+v", texts[0])
	}
}

func TestBlend(t *testing.T) {
	if got := Blend(RGBBlack, RGBWhite, 0); got != RGBBlack {
		t.Errorf("Alpha 0 should keep destination, got %v", got)
	}
	if got := Blend(RGBBlack, RGBWhite, 1); got != RGBWhite {
		t.Errorf("Alpha 1 should replace, got %v", got)
	}
	got := Blend(RGBBlack, RGB{200, 100, 50}, 0.5)
	if got != (RGB{100, 50, 25}) {
		t.Errorf("Half blend got %v", got)
	}
}

func TestCanvasFillRect(t *testing.T) {
	c := NewCanvas(576, 480, 8, 8, nil)
	cols, rows := c.Bounds()
	if cols != 72 || rows != 60 {
		t.Fatalf("Bounds = %dx%d, want 72x60", cols, rows)
	}

	c.Clear(RGBBlack)
	c.FillRect(vmath.Rect{X: 256, Y: 192, W: 32, H: 32}, RGBWhite, 1)

	for y := 24; y < 28; y++ {
		for x := 32; x < 36; x++ {
			if c.Pixel(x, y) != RGBWhite {
				t.Errorf("Pixel (%d,%d) not filled", x, y)
			}
		}
	}
	if c.Pixel(36, 24) != RGBBlack || c.Pixel(31, 24) != RGBBlack {
		t.Error("Fill leaked outside the rectangle")
	}
}

// TestCanvasSmallRectCovers verifies sub-pixel rectangles still mark a raster pixel
func TestCanvasSmallRectCovers(t *testing.T) {
	c := NewCanvas(576, 480, 8, 8, nil)
	c.FillRect(vmath.Rect{X: 3, Y: 3, W: 2, H: 2}, RGBRed, 1)
	if c.Pixel(0, 0) != RGBRed {
		t.Error("Small rect should cover its raster pixel")
	}
}

func TestCanvasAlphaZeroInvisible(t *testing.T) {
	c := NewCanvas(64, 64, 8, 8, nil)
	c.Clear(RGBBlack)
	c.FillRect(vmath.Rect{X: 0, Y: 0, W: 8, H: 8}, RGBRed, 0)
	if c.Pixel(0, 0) != RGBBlack {
		t.Error("Alpha 0 rect should draw nothing")
	}
}

func TestCanvasClipping(t *testing.T) {
	c := NewCanvas(64, 64, 8, 8, nil)
	// Must not panic
	c.FillRect(vmath.Rect{X: -100, Y: -100, W: 50, H: 50}, RGBRed, 1)
	c.FillRect(vmath.Rect{X: 60, Y: 60, W: 50, H: 50}, RGBRed, 1)
	if c.Pixel(7, 7) != RGBRed {
		t.Error("Expected clipped fill in the corner")
	}
	if c.Pixel(100, 100) != RGBBlack {
		t.Error("Out of range read should be black")
	}
}

func TestCanvasFillText(t *testing.T) {
	c := NewCanvas(576, 480, 8, 8, nil)
	c.FillText("Score: 7", 20, 20, RGBWhite)

	// x=20 -> col 2, baseline 20 -> cell row 1
	if g := c.Glyph(2, 1); g.Rune != 'S' || g.Fg != RGBWhite {
		t.Errorf("Expected 'S' at (2,1), got %+v", g)
	}
	// Spaces leave the cell untouched
	if g := c.Glyph(8, 1); g.Rune != 0 {
		t.Errorf("Expected space to leave cell empty, got %q", g.Rune)
	}
	if g := c.Glyph(9, 1); g.Rune != '7' {
		t.Errorf("Expected '7' at (9,1), got %q", g.Rune)
	}

	c.Clear(RGBBlack)
	if g := c.Glyph(2, 1); g.Rune != 0 {
		t.Error("Clear should drop glyphs")
	}
}

func TestCanvasBlit(t *testing.T) {
	// Two 8x8 columns: left opaque green, right transparent
	sheet := image.NewNRGBA(image.Rect(0, 0, 16, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			sheet.SetNRGBA(x, y, color.NRGBA{0, 255, 0, 255})
		}
	}

	c := NewCanvas(64, 64, 4, 4, []image.Image{sheet})
	c.Clear(RGBBlack)

	c.Blit(0, vmath.Rect{X: 0, Y: 0, W: 8, H: 8}, vmath.Rect{X: 8, Y: 8, W: 8, H: 8})
	if c.Pixel(2, 2) != (RGB{0, 255, 0}) {
		t.Errorf("Expected opaque column drawn, got %v", c.Pixel(2, 2))
	}

	c.Clear(RGBBlack)
	c.Blit(0, vmath.Rect{X: 8, Y: 0, W: 8, H: 8}, vmath.Rect{X: 8, Y: 8, W: 8, H: 8})
	if c.Pixel(2, 2) != RGBBlack {
		t.Error("Transparent column should not draw")
	}
}

func TestCanvasBlitMissingSheet(t *testing.T) {
	c := NewCanvas(64, 64, 8, 8, nil)
	c.Blit(4, vmath.Rect{W: 32, H: 32}, vmath.Rect{X: 0, Y: 0, W: 8, H: 8})
	if c.Pixel(0, 0) != RGBBlue {
		t.Error("Missing sheet should fall back to a blue block")
	}
}

func TestDiscardSurface(t *testing.T) {
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Discard panicked: %v", r)
		}
	}()
	Discard.Clear(RGBBlack)
	Discard.FillRect(vmath.Rect{}, RGBRed, 1)
	Discard.FillText("x", 0, 0, RGBWhite)
	Discard.Blit(0, vmath.Rect{}, vmath.Rect{})
}

// TestRecorderReplay verifies replay reproduces calls in order
func TestRecorderReplay(t *testing.T) {
	src := &Recorder{}
	src.Clear(RGBBlack)
	src.FillRect(vmath.Rect{X: 1, Y: 2, W: 3, H: 4}, RGBRed, 0.5)
	src.Blit(2, vmath.Rect{W: 32, H: 32}, vmath.Rect{X: 10, Y: 10, W: 32, H: 32})
	src.FillText("Score: 3", 20, 20, RGBWhite)

	dst := &Recorder{}
	src.Replay(dst)

	if len(dst.Ops) != len(src.Ops) {
		t.Fatalf("Replayed %d ops, want %d", len(dst.Ops), len(src.Ops))
	}
	for i := range src.Ops {
		if dst.Ops[i] != src.Ops[i] {
			t.Errorf("op %d = %+v, want %+v", i, dst.Ops[i], src.Ops[i])
		}
	}
}
