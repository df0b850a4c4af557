package vmath

// Rect is an axis-aligned box in surface pixels, origin at top-left
type Rect struct {
	X, Y float64
	W, H float64
}

// Center returns the midpoint of the box
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Move translates the box by (dx, dy)
func (r *Rect) Move(dx, dy float64) {
	r.X += dx
	r.Y += dy
}

// Intersect reports overlap with the half-open convention: near edges compare
// strictly, far edges inclusively, so boxes sharing an edge intersect
func Intersect(a, b Rect) bool {
	return a.X < b.X+b.W && a.X+a.W >= b.X &&
		a.Y < b.Y+b.H && a.Y+a.H >= b.Y
}

// Outside reports whether the box origin left the [0,w] x [0,h] surface on either axis
func Outside(r Rect, w, h float64) bool {
	return r.X < 0 || r.X > w || r.Y < 0 || r.Y > h
}

// Sign returns -1, 0 or 1
func Sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
