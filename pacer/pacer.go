// Package pacer drives the render cadence against the presentation
// surface's frame notifications.
package pacer

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/nacardin/rectshow/event"
	"github.com/nacardin/rectshow/input"
	"github.com/nacardin/rectshow/raster"
	"github.com/nacardin/rectshow/scene"
	"github.com/nacardin/rectshow/surface"
)

// State is the pacer's position in the frame cycle
type State int32

const (
	// StateIdle is the startup state before the first render
	StateIdle State = iota

	// StateAwaitingFrame waits for the surface's frame notification.
	// Input is still dispatched here; a stalled surface stalls
	// rendering but never input.
	StateAwaitingFrame

	// StateRendering runs the rasterizer over the scene snapshot
	StateRendering

	// StateCommitting attaches, damages, and commits the buffer
	StateCommitting
)

// Pacer is the event-processing loop: it owns input dispatch and the
// render/commit cycle, one render and one commit per frame signal, in
// strict alternation. The one-shot notification is re-armed after
// every commit; exactly one request is outstanding at a time.
type Pacer struct {
	surf  surface.Surface
	sc    *scene.Scene
	rz    *raster.Rasterizer
	disp  *input.Dispatcher
	queue *event.Queue

	state   atomic.Int32
	renders atomic.Uint64
	commits atomic.Uint64

	stopChan chan struct{}
	stopOnce sync.Once
}

// New creates a pacer wired to its collaborators
func New(surf surface.Surface, sc *scene.Scene, rz *raster.Rasterizer, disp *input.Dispatcher, queue *event.Queue) *Pacer {
	return &Pacer{
		surf:     surf,
		sc:       sc,
		rz:       rz,
		disp:     disp,
		queue:    queue,
		stopChan: make(chan struct{}),
	}
}

// State returns the current cycle state
func (p *Pacer) State() State {
	return State(p.state.Load())
}

// Renders returns the number of completed rasterizer passes
func (p *Pacer) Renders() uint64 {
	return p.renders.Load()
}

// Commits returns the number of completed commits
func (p *Pacer) Commits() uint64 {
	return p.commits.Load()
}

// Stop requests loop termination. Safe to call more than once.
func (p *Pacer) Stop() {
	p.stopOnce.Do(func() {
		close(p.stopChan)
	})
}

// Run executes the frame loop until a quit event, Stop, or a fatal
// commit error. The startup render+commit happens unconditionally
// before the first frame notification is armed.
func (p *Pacer) Run() error {
	if err := p.cycle(); err != nil {
		return err
	}
	p.surf.RequestFrame()
	p.state.Store(int32(StateAwaitingFrame))

	for {
		select {
		case <-p.stopChan:
			return nil

		case <-p.queue.Wake():
			// Input arriving mid-wait mutates the scene immediately;
			// its visible rendering waits for the next frame signal
			if p.disp.Drain(p.queue) {
				return nil
			}

		case <-p.surf.Frame():
			if p.disp.Drain(p.queue) {
				return nil
			}
			if err := p.cycle(); err != nil {
				return err
			}
			p.surf.RequestFrame()
			p.state.Store(int32(StateAwaitingFrame))
		}
	}
}

// cycle performs one render and one commit, never more
func (p *Pacer) cycle() error {
	p.state.Store(int32(StateRendering))
	buf := p.rz.Render(p.sc.Snapshot())
	p.renders.Add(1)

	p.state.Store(int32(StateCommitting))
	p.surf.Attach(buf, 0, 0)
	p.surf.Damage(0, 0, buf.W, buf.H)
	if err := p.surf.Commit(); err != nil {
		return fmt.Errorf("commit failed: %w", err)
	}
	p.commits.Add(1)
	return nil
}
