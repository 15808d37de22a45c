// Package input translates raw pointer and keyboard events into scene
// mutations.
package input

import (
	"fmt"
	"log"

	"github.com/nacardin/rectshow/event"
	"github.com/nacardin/rectshow/scene"
)

// UnderflowPolicy selects what a leftward/upward move does when the
// coordinate is smaller than the step. The reference behavior wraps
// the unsigned coordinate; clamping at zero is the alternative.
type UnderflowPolicy uint8

const (
	// UnderflowWrap preserves unsigned wraparound (default)
	UnderflowWrap UnderflowPolicy = iota

	// UnderflowClamp floors the coordinate at zero
	UnderflowClamp
)

// ParseUnderflowPolicy resolves a config policy name
func ParseUnderflowPolicy(s string) (UnderflowPolicy, error) {
	switch s {
	case "wrap":
		return UnderflowWrap, nil
	case "clamp":
		return UnderflowClamp, nil
	default:
		return UnderflowWrap, fmt.Errorf("unknown underflow policy: %q (expected \"wrap\" or \"clamp\")", s)
	}
}

// Dispatcher applies input events to the scene. Each event is handled
// independently; there is no persistent key state, repeat acceleration,
// or debounce.
type Dispatcher struct {
	scene  *scene.Scene
	keys   KeyTable
	step   uint32
	policy UnderflowPolicy
	logger *log.Logger

	// Invoked on pointer button events after logging; nil disables.
	// Used by main to hook audio feedback.
	onButton func(code uint32, pressed bool)
}

// NewDispatcher creates a dispatcher mutating the given scene
func NewDispatcher(sc *scene.Scene, keys KeyTable, step uint32, policy UnderflowPolicy, logger *log.Logger) *Dispatcher {
	return &Dispatcher{
		scene:  sc,
		keys:   keys,
		step:   step,
		policy: policy,
		logger: logger,
	}
}

// SetButtonHook registers a callback observing pointer button events
func (d *Dispatcher) SetButtonHook(fn func(code uint32, pressed bool)) {
	d.onButton = fn
}

// Drain consumes and dispatches all pending events in FIFO order.
// Returns true when a quit event was seen.
func (d *Dispatcher) Drain(q *event.Queue) (quit bool) {
	for _, ev := range q.Consume() {
		if d.Dispatch(ev) {
			quit = true
		}
	}
	return quit
}

// Dispatch handles a single event. Returns true for quit requests.
func (d *Dispatcher) Dispatch(ev event.Event) bool {
	switch ev.Type {
	case event.TypePointerMotion:
		d.pointerMotion(ev.X, ev.Y)
	case event.TypePointerButton:
		d.pointerButton(ev.Code, ev.Pressed)
	case event.TypePointerEnter:
		d.logger.Printf("Pointer entered surface at (%d,%d).", ev.X, ev.Y)
	case event.TypePointerLeave:
		d.logger.Printf("Pointer left surface.")
	case event.TypeKey:
		d.key(ev.Code, ev.Pressed)
	case event.TypeQuit:
		return true
	}
	return false
}

// pointerMotion positions the rectangle absolutely, not by delta
func (d *Dispatcher) pointerMotion(x, y uint32) {
	d.logger.Printf("Pointer moved to (%d,%d).", x, y)
	d.scene.Update(func(r *scene.Rect) {
		r.X = x
		r.Y = y
	})
}

// pointerButton is observable only; no geometry mutation
func (d *Dispatcher) pointerButton(code uint32, pressed bool) {
	state := "released"
	if pressed {
		state = "pressed"
	}
	d.logger.Printf("Button %s (%d) was %s.", ButtonName(code), code, state)
	if d.onButton != nil {
		d.onButton(code, pressed)
	}
}

// key moves the rectangle by one step on directional key release.
// Presses and unbound codes are no-ops.
func (d *Dispatcher) key(code uint32, pressed bool) {
	if pressed {
		return
	}
	motion, ok := d.keys[code]
	if !ok {
		return
	}
	d.scene.Update(func(r *scene.Rect) {
		switch motion {
		case MotionUp:
			r.Y = d.sub(r.Y)
		case MotionDown:
			r.Y += d.step
		case MotionLeft:
			r.X = d.sub(r.X)
		case MotionRight:
			r.X += d.step
		}
	})
	r := d.scene.Snapshot()
	d.logger.Printf("Rect moved to (%d,%d).", r.X, r.Y)
}

// sub applies the underflow policy to a leftward/upward move
func (d *Dispatcher) sub(v uint32) uint32 {
	if d.policy == UnderflowClamp && v < d.step {
		return 0
	}
	return v - d.step
}
