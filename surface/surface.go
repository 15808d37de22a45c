// Package surface defines the presentation surface collaborator
// boundary: the object that owns the on-screen target, accepts pixel
// buffers, and paces redraws.
package surface

import (
	"github.com/nacardin/rectshow/raster"
)

// Surface is the contract the frame pacer drives. Per commit cycle the
// call order is Attach, Damage, Commit, strictly. Frame notification
// is one-shot: each RequestFrame arms exactly one delivery on Frame;
// failing to re-arm stalls rendering permanently.
type Surface interface {
	// Size returns the pixel buffer geometry the surface expects
	Size() (w, h uint32)

	// Attach hands the freshly written buffer to the surface at the
	// given offset. The surface must not read it before Commit.
	Attach(buf *raster.PixelBuffer, x, y int32)

	// Damage declares the region changed since the last commit
	Damage(x, y, w, h uint32)

	// Commit publishes the attached buffer. A commit error is fatal
	// for the process; there is no retry policy.
	Commit() error

	// RequestFrame arms a one-shot notification for the next redraw
	// opportunity
	RequestFrame()

	// Frame delivers one signal per RequestFrame, roughly once per
	// display refresh
	Frame() <-chan struct{}
}
