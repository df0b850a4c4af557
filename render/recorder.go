package render

import "github.com/lixenwraith/zombies/vmath"

// OpKind identifies a recorded draw call
type OpKind uint8

const (
	OpClear OpKind = iota
	OpFillRect
	OpFillText
	OpBlit
)

// Op is one recorded draw call
type Op struct {
	Kind  OpKind
	Rect  vmath.Rect // FillRect and Blit destination
	Src   vmath.Rect // Blit source
	Sheet int
	Color RGB
	Alpha float64
	Text  string
	X, Y  float64 // FillText origin
}

// Recorder is a Surface that stores draw calls for inspection
type Recorder struct {
	Ops []Op
}

func (r *Recorder) Clear(c RGB) {
	r.Ops = append(r.Ops, Op{Kind: OpClear, Color: c})
}

func (r *Recorder) FillRect(rect vmath.Rect, c RGB, alpha float64) {
	r.Ops = append(r.Ops, Op{Kind: OpFillRect, Rect: rect, Color: c, Alpha: alpha})
}

func (r *Recorder) FillText(text string, x, y float64, c RGB) {
	r.Ops = append(r.Ops, Op{Kind: OpFillText, Text: text, X: x, Y: y, Color: c})
}

func (r *Recorder) Blit(sheet int, src, dst vmath.Rect) {
	r.Ops = append(r.Ops, Op{Kind: OpBlit, Sheet: sheet, Src: src, Rect: dst})
}

// Reset drops recorded calls
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
}

// Filter returns recorded calls of one kind
func (r *Recorder) Filter(kind OpKind) []Op {
	var out []Op
	for _, op := range r.Ops {
		if op.Kind == kind {
			out = append(out, op)
		}
	}
	return out
}

// Replay issues the recorded calls, in order, against s
func (r *Recorder) Replay(s Surface) {
	for _, op := range r.Ops {
		switch op.Kind {
		case OpClear:
			s.Clear(op.Color)
		case OpFillRect:
			s.FillRect(op.Rect, op.Color, op.Alpha)
		case OpFillText:
			s.FillText(op.Text, op.X, op.Y, op.Color)
		case OpBlit:
			s.Blit(op.Sheet, op.Src, op.Rect)
		}
	}
}
