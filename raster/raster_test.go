package raster

import (
	"math"
	"testing"

	"github.com/nacardin/rectshow/scene"
)

// TestMembership checks every pixel against the strict interior
// predicate: white iff x>X && x<X+W && y>Y && y<Y+H, else opaque black.
func TestMembership(t *testing.T) {
	const w, h = 80, 60
	r := scene.Rect{X: 10, Y: 5, W: 50, H: 40}

	buf := New(w, h).Render(r)

	for y := uint32(0); y < h; y++ {
		for x := uint32(0); x < w; x++ {
			want := Black
			if x > r.X && x < r.X+r.W && y > r.Y && y < r.Y+r.H {
				want = White
			}
			if got := buf.At(x, y); got != want {
				t.Fatalf("Pixel (%d,%d): expected %#x, got %#x", x, y, want, got)
			}
		}
	}
}

// TestBorderExclusivity verifies pixels exactly on the rectangle's
// edges are never white; the visible rectangle is (W-1)x(H-1).
func TestBorderExclusivity(t *testing.T) {
	const w, h = 100, 100
	r := scene.Rect{X: 20, Y: 30, W: 40, H: 50}

	buf := New(w, h).Render(r)

	for y := uint32(0); y < h; y++ {
		if buf.At(r.X, y) == White {
			t.Errorf("Left border pixel (%d,%d) is white", r.X, y)
		}
		if buf.At(r.X+r.W, y) == White {
			t.Errorf("Right border pixel (%d,%d) is white", r.X+r.W, y)
		}
	}
	for x := uint32(0); x < w; x++ {
		if buf.At(x, r.Y) == White {
			t.Errorf("Top border pixel (%d,%d) is white", x, r.Y)
		}
		if buf.At(x, r.Y+r.H) == White {
			t.Errorf("Bottom border pixel (%d,%d) is white", x, r.Y+r.H)
		}
	}
}

func TestIdempotentRerender(t *testing.T) {
	rz := New(64, 48)
	r := scene.Rect{X: 5, Y: 5, W: 20, H: 20}

	first := make([]uint32, len(rz.Render(r).Pix))
	copy(first, rz.buf.Pix)

	second := rz.Render(r)
	for i, p := range second.Pix {
		if p != first[i] {
			t.Fatalf("Pixel %d differs between identical renders: %#x vs %#x", i, first[i], p)
		}
	}
}

// TestRenderReusesBuffer asserts the allocation-free steady state: the
// same backing array serves every pass.
func TestRenderReusesBuffer(t *testing.T) {
	rz := New(32, 32)
	b1 := rz.Render(scene.Rect{X: 0, Y: 0, W: 10, H: 10})
	b2 := rz.Render(scene.Rect{X: 5, Y: 5, W: 10, H: 10})

	if &b1.Pix[0] != &b2.Pix[0] {
		t.Error("Render allocated a fresh buffer between passes")
	}
}

func TestOffBufferRect(t *testing.T) {
	rz := New(320, 240)

	cases := []struct {
		name string
		rect scene.Rect
	}{
		{"fully below and right", scene.Rect{X: 4000, Y: 4000, W: 50, H: 50}},
		{"wrapped far left", scene.Rect{X: math.MaxUint32 - 2, Y: 0, W: 50, H: 50}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			buf := rz.Render(tc.rect)
			for i, p := range buf.Pix {
				if p != Black {
					t.Fatalf("Pixel %d: expected all-black buffer, got %#x", i, p)
				}
			}
		})
	}
}

func TestPartiallyVisibleRect(t *testing.T) {
	const w, h = 320, 240
	r := scene.Rect{X: 300, Y: 230, W: 50, H: 50}

	buf := New(w, h).Render(r)

	if buf.At(310, 235) != White {
		t.Error("Expected interior pixel (310,235) white for partially visible rect")
	}
	if buf.At(300, 235) == White {
		t.Error("Border column must stay excluded for partially visible rect")
	}
	if buf.At(299, 235) == White {
		t.Error("Pixel left of the rect must be black")
	}
}

func TestInside(t *testing.T) {
	r := scene.Rect{X: 10, Y: 10, W: 5, H: 5}

	cases := []struct {
		x, y uint32
		want bool
	}{
		{10, 12, false}, // left border
		{15, 12, false}, // right border
		{12, 10, false}, // top border
		{12, 15, false}, // bottom border
		{11, 11, true},
		{14, 14, true},
		{0, 0, false},
	}
	for _, tc := range cases {
		if got := Inside(r, tc.x, tc.y); got != tc.want {
			t.Errorf("Inside(%d,%d): expected %v, got %v", tc.x, tc.y, tc.want, got)
		}
	}
}

func TestARGBRoundTrip(t *testing.T) {
	p := ARGB(0xFF, 0x12, 0x34, 0x56)
	a, r, g, b := Split(p)
	if a != 0xFF || r != 0x12 || g != 0x34 || b != 0x56 {
		t.Errorf("Split(ARGB(...)) mismatch: %#x %#x %#x %#x", a, r, g, b)
	}
	if White != ARGB(0xFF, 0xFF, 0xFF, 0xFF) {
		t.Error("White constant does not match packed channels")
	}
	if Black != ARGB(0xFF, 0, 0, 0) {
		t.Error("Black constant does not match packed channels")
	}
}
