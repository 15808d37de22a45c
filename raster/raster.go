// Package raster maps a scene snapshot onto a flat ARGB pixel buffer.
package raster

import (
	"github.com/nacardin/rectshow/scene"
)

// PixelBuffer is a flat row-major pixel store, origin top-left.
// It is a view onto memory shared with the presentation surface; the
// rasterizer has exclusive write access during a render pass and the
// surface reads it only after Commit.
type PixelBuffer struct {
	Pix []uint32
	W   uint32
	H   uint32
}

// NewPixelBuffer allocates a zeroed buffer with the given geometry
func NewPixelBuffer(w, h uint32) *PixelBuffer {
	return &PixelBuffer{
		Pix: make([]uint32, w*h),
		W:   w,
		H:   h,
	}
}

// At returns the pixel at (x, y). Out-of-bounds coordinates are a
// caller bug; the slice bounds check catches them.
func (b *PixelBuffer) At(x, y uint32) uint32 {
	return b.Pix[y*b.W+x]
}

// Inside reports strict interior membership: the rectangle's own
// border row/column is excluded, so the visible rectangle is
// (W-1) x (H-1) pixels. Coordinate sums use uint32 wraparound.
func Inside(r scene.Rect, x, y uint32) bool {
	return x > r.X && x < r.X+r.W && y > r.Y && y < r.Y+r.H
}

// Rasterizer repaints every pixel of its persistent buffer on each
// pass. The buffer is allocated once; Render is allocation-free to
// avoid pacing jitter.
type Rasterizer struct {
	buf *PixelBuffer
}

// New creates a rasterizer with a persistent buffer of the given geometry
func New(w, h uint32) *Rasterizer {
	return &Rasterizer{buf: NewPixelBuffer(w, h)}
}

// Render classifies every pixel in row-major order against the
// rectangle and writes White for interior pixels, Black for the rest.
// There is no dirty-region diffing; the full buffer is rewritten and
// the same buffer is returned on every call.
func (rz *Rasterizer) Render(r scene.Rect) *PixelBuffer {
	b := rz.buf
	pix := b.Pix
	i := 0
	for y := uint32(0); y < b.H; y++ {
		rowInside := y > r.Y && y < r.Y+r.H
		for x := uint32(0); x < b.W; x++ {
			if rowInside && x > r.X && x < r.X+r.W {
				pix[i] = White
			} else {
				pix[i] = Black
			}
			i++
		}
	}
	return b
}
