// Package scene holds the single source of truth for rectangle geometry.
package scene

import (
	"sync"

	"github.com/nacardin/rectshow/parameter"
)

// Rect is an axis-aligned rectangle in buffer pixel coordinates,
// anchored at its top-left corner. X and Y are unconstrained by the
// buffer bounds; placing the rectangle partially or fully off-buffer
// is valid. W and H are fixed at construction.
type Rect struct {
	X, Y, W, H uint32
}

// Scene is the shared mutable state read by the render pass and
// written by the input dispatcher. Access goes through Snapshot and
// Update; the RWMutex keeps the design correct if input handling ever
// moves off the event-processing goroutine.
type Scene struct {
	mu   sync.RWMutex
	rect Rect
}

// New creates a scene with the default rectangle at the origin.
func New() *Scene {
	return NewWithRect(Rect{
		X: 0,
		Y: 0,
		W: parameter.DefaultRectSize,
		H: parameter.DefaultRectSize,
	})
}

// NewWithRect creates a scene owning the given rectangle.
// Zero W or H is a construction bug, not a runtime condition.
func NewWithRect(r Rect) *Scene {
	if r.W == 0 || r.H == 0 {
		panic("scene: rectangle must have non-zero dimensions")
	}
	return &Scene{rect: r}
}

// Snapshot returns a copy of the rectangle under the read lock.
// Many concurrent readers are permitted; a reader never observes a
// partially applied update.
func (s *Scene) Snapshot() Rect {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.rect
}

// Update applies fn to the rectangle under the exclusive lock.
// W and H are fixed at construction and survive any mutation.
func (s *Scene) Update(fn func(*Rect)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	w, h := s.rect.W, s.rect.H
	fn(&s.rect)
	s.rect.W, s.rect.H = w, h
}
