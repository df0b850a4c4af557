package vmath

import "testing"

func TestIntersect(t *testing.T) {
	base := Rect{X: 0, Y: 0, W: 10, H: 10}

	tests := []struct {
		name string
		b    Rect
		want bool
	}{
		{"overlapping", Rect{X: 5, Y: 5, W: 10, H: 10}, true},
		{"touching right edge", Rect{X: 10, Y: 0, W: 10, H: 10}, true},
		{"touching bottom edge", Rect{X: 0, Y: 10, W: 10, H: 10}, true},
		{"just past right edge", Rect{X: 10.001, Y: 0, W: 10, H: 10}, false},
		{"contained", Rect{X: 2, Y: 2, W: 2, H: 2}, true},
		{"far away", Rect{X: 100, Y: 100, W: 10, H: 10}, false},
		{"above", Rect{X: 0, Y: -20, W: 10, H: 10}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Intersect(base, tt.b); got != tt.want {
				t.Errorf("Intersect(%v, %v) = %v, want %v", base, tt.b, got, tt.want)
			}
		})
	}
}

// TestIntersectAsymmetricEdge checks the near edge is strict: b touching a from the left does not count
func TestIntersectAsymmetricEdge(t *testing.T) {
	a := Rect{X: 10, Y: 0, W: 10, H: 10}
	b := Rect{X: 0, Y: 0, W: 10, H: 10}
	// a.X < b.X+b.W is 10 < 10, false
	if Intersect(a, b) {
		t.Error("Expected strict near-edge comparison to reject left-touching box")
	}
	if !Intersect(b, a) {
		t.Error("Expected inclusive far-edge comparison to accept right-touching box")
	}
}

func TestSign(t *testing.T) {
	cases := map[float64]float64{-3.5: -1, 0: 0, 0.0001: 1, 42: 1}
	for in, want := range cases {
		if got := Sign(in); got != want {
			t.Errorf("Sign(%v) = %v, want %v", in, got, want)
		}
	}
}

func TestOutside(t *testing.T) {
	if Outside(Rect{X: 576, Y: 480, W: 5, H: 5}, 576, 480) {
		t.Error("Box on the far boundary should still be inside")
	}
	if !Outside(Rect{X: -0.1, Y: 10, W: 5, H: 5}, 576, 480) {
		t.Error("Box left of the surface should be outside")
	}
	if !Outside(Rect{X: 10, Y: 480.5, W: 5, H: 5}, 576, 480) {
		t.Error("Box below the surface should be outside")
	}
}

func TestRectMoveAndCenter(t *testing.T) {
	r := Rect{X: 0, Y: 200, W: 32, H: 32}
	cx, cy := r.Center()
	if cx != 16 || cy != 216 {
		t.Errorf("Center = (%v,%v), want (16,216)", cx, cy)
	}
	r.Move(-2, 3)
	if r.X != -2 || r.Y != 203 {
		t.Errorf("After Move got (%v,%v), want (-2,203)", r.X, r.Y)
	}
}

func TestFastRandFloat64Range(t *testing.T) {
	rng := NewFastRand(12345)
	for i := 0; i < 10000; i++ {
		v := rng.Float64()
		if v < 0 || v >= 1 {
			t.Fatalf("Float64 out of range: %v", v)
		}
	}
}

func TestFastRandZeroSeed(t *testing.T) {
	rng := NewFastRand(0)
	if rng.Next() == 0 {
		t.Error("Zero seed must not produce a stuck generator")
	}
	if rng.Intn(0) != 0 {
		t.Error("Intn(0) should return 0")
	}
}
