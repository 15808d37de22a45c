// Package event defines the input event model and the queue feeding
// the event-processing goroutine.
package event

// Type tags an input event
type Type uint8

const (
	TypeNone Type = iota

	// TypePointerMotion carries an absolute pointer position in buffer
	// pixel coordinates | Consumer: input.Dispatcher (sets geometry)
	TypePointerMotion

	// TypePointerButton carries a button code and press state
	// Consumer: input.Dispatcher (diagnostics only)
	TypePointerButton

	// TypePointerEnter signals the pointer entering the surface at X, Y
	// Consumer: input.Dispatcher (diagnostics only)
	TypePointerEnter

	// TypePointerLeave signals the pointer leaving the surface
	// Consumer: input.Dispatcher (diagnostics only)
	TypePointerLeave

	// TypeKey carries a key code and press state; directional codes on
	// release move the rectangle | Consumer: input.Dispatcher
	TypeKey

	// TypeQuit requests shutdown of the event-processing loop
	TypeQuit
)

// Event is a fixed-size tagged variant. Unused fields are zero; no
// per-event heap allocation crosses the queue.
type Event struct {
	Type    Type
	X, Y    uint32 // motion / enter position
	Code    uint32 // button or key code
	Pressed bool   // button / key state
}
