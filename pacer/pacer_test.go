package pacer

import (
	"errors"
	"fmt"
	"io"
	"log"
	"sync"
	"testing"
	"time"

	"github.com/nacardin/rectshow/event"
	"github.com/nacardin/rectshow/input"
	"github.com/nacardin/rectshow/raster"
	"github.com/nacardin/rectshow/scene"
)

// fakeSurface records the commit protocol and fires frame
// notifications under test control
type fakeSurface struct {
	mu        sync.Mutex
	ops       []string
	armed     bool
	frameCh   chan struct{}
	commitErr error
}

func newFakeSurface() *fakeSurface {
	return &fakeSurface{frameCh: make(chan struct{})}
}

func (f *fakeSurface) Size() (uint32, uint32) { return 32, 24 }

func (f *fakeSurface) Attach(buf *raster.PixelBuffer, x, y int32) {
	f.record("attach")
}

func (f *fakeSurface) Damage(x, y, w, h uint32) {
	f.record(fmt.Sprintf("damage(%d,%d,%d,%d)", x, y, w, h))
}

func (f *fakeSurface) Commit() error {
	f.record("commit")
	return f.commitErr
}

func (f *fakeSurface) RequestFrame() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.armed = true
	f.ops = append(f.ops, "request")
}

func (f *fakeSurface) Frame() <-chan struct{} { return f.frameCh }

func (f *fakeSurface) record(op string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ops = append(f.ops, op)
}

// fire delivers one frame notification, consuming the armed request.
// Waits for the pacer to re-arm first; the request lands just after
// the commit counter ticks.
func (f *fakeSurface) fire(t *testing.T) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for {
		f.mu.Lock()
		if f.armed {
			f.armed = false
			f.mu.Unlock()
			break
		}
		f.mu.Unlock()
		if time.Now().After(deadline) {
			t.Fatal("No outstanding frame request to fire")
		}
		time.Sleep(time.Millisecond)
	}

	select {
	case f.frameCh <- struct{}{}:
	case <-time.After(2 * time.Second):
		t.Fatal("Pacer did not accept frame notification")
	}
}

func (f *fakeSurface) opLog() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.ops...)
}

func newTestPacer(surf *fakeSurface) (*Pacer, *scene.Scene, *event.Queue) {
	sc := scene.New()
	q := event.NewQueue()
	logger := log.New(io.Discard, "", 0)
	disp := input.NewDispatcher(sc, input.DefaultKeyTable(), 5, input.UnderflowWrap, logger)
	w, h := surf.Size()
	rz := raster.New(w, h)
	return New(surf, sc, rz, disp, q), sc, q
}

func waitFor(t *testing.T, cond func() bool, msg string) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal(msg)
}

// TestOneRenderPerFrame fires N notifications and verifies exactly one
// render and one commit per firing, in strict alternation, plus the
// unconditional startup cycle.
func TestOneRenderPerFrame(t *testing.T) {
	surf := newFakeSurface()
	p, _, _ := newTestPacer(surf)

	done := make(chan error, 1)
	go func() { done <- p.Run() }()

	waitFor(t, func() bool { return p.Commits() == 1 }, "Startup cycle never committed")

	const frames = 5
	for i := 0; i < frames; i++ {
		surf.fire(t)
		want := uint64(i + 2)
		waitFor(t, func() bool { return p.Commits() == want }, "Frame cycle never committed")
	}

	if p.Renders() != frames+1 || p.Commits() != frames+1 {
		t.Errorf("Expected %d renders and commits, got %d renders, %d commits",
			frames+1, p.Renders(), p.Commits())
	}

	p.Stop()
	if err := <-done; err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	// Each cycle is attach, damage(full buffer), commit, request
	ops := surf.opLog()
	if len(ops) != (frames+1)*4 {
		t.Fatalf("Expected %d protocol ops, got %d: %v", (frames+1)*4, len(ops), ops)
	}
	for i := 0; i < len(ops); i += 4 {
		if ops[i] != "attach" || ops[i+1] != "damage(0,0,32,24)" ||
			ops[i+2] != "commit" || ops[i+3] != "request" {
			t.Fatalf("Cycle %d out of order: %v", i/4, ops[i:i+4])
		}
	}
}

// TestInputDispatchWhileStalled verifies a stalled surface stalls
// rendering but never input: the scene mutates with no frame fired.
func TestInputDispatchWhileStalled(t *testing.T) {
	surf := newFakeSurface()
	p, sc, q := newTestPacer(surf)

	done := make(chan error, 1)
	go func() { done <- p.Run() }()

	waitFor(t, func() bool { return p.Commits() == 1 }, "Startup cycle never committed")

	q.Push(event.Event{Type: event.TypePointerMotion, X: 200, Y: 150})
	waitFor(t, func() bool {
		r := sc.Snapshot()
		return r.X == 200 && r.Y == 150
	}, "Input was not dispatched while awaiting frame")

	if p.Renders() != 1 {
		t.Errorf("Expected no render without a frame signal, got %d", p.Renders())
	}
	if p.State() != StateAwaitingFrame {
		t.Errorf("Expected StateAwaitingFrame, got %d", p.State())
	}

	// The mutation becomes visible on the next frame
	surf.fire(t)
	waitFor(t, func() bool { return p.Commits() == 2 }, "Frame cycle never committed")

	p.Stop()
	if err := <-done; err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
}

func TestQuitEventStopsRun(t *testing.T) {
	surf := newFakeSurface()
	p, _, q := newTestPacer(surf)

	done := make(chan error, 1)
	go func() { done <- p.Run() }()

	waitFor(t, func() bool { return p.Commits() == 1 }, "Startup cycle never committed")

	q.Push(event.Event{Type: event.TypeQuit})

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Expected clean shutdown, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after quit event")
	}
}

func TestCommitErrorIsFatal(t *testing.T) {
	surf := newFakeSurface()
	surf.commitErr = errors.New("connection lost")
	p, _, _ := newTestPacer(surf)

	err := p.Run()
	if err == nil {
		t.Fatal("Expected Run to fail on commit error")
	}
	if !errors.Is(err, surf.commitErr) {
		t.Errorf("Expected wrapped commit error, got %v", err)
	}
}

func TestStopIsIdempotent(t *testing.T) {
	surf := newFakeSurface()
	p, _, _ := newTestPacer(surf)

	done := make(chan error, 1)
	go func() { done <- p.Run() }()
	waitFor(t, func() bool { return p.Commits() == 1 }, "Startup cycle never committed")

	p.Stop()
	p.Stop()
	if err := <-done; err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
}
