// Package termview presents the pixel buffer on a terminal via tcell,
// standing in for a display compositor: it accepts attach/damage/commit,
// paces frames off a refresh ticker, and translates terminal input into
// core input events.
package termview

import (
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/nacardin/rectshow/core"
	"github.com/nacardin/rectshow/event"
	"github.com/nacardin/rectshow/raster"
)

// damageRect records the region declared changed for the pending commit
type damageRect struct {
	x, y, w, h uint32
}

// View is a tcell-backed presentation surface. Buffer geometry is
// fixed; terminal resizes only change presentation scaling.
type View struct {
	screen  tcell.Screen
	bufW    uint32
	bufH    uint32
	refresh time.Duration
	logger  *log.Logger

	attached *raster.PixelBuffer
	damage   damageRect

	frameCh chan struct{}
	armed   atomic.Bool

	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	// input translation state, poll goroutine only
	prevButtons tcell.ButtonMask
	lastPtrX    uint32
	lastPtrY    uint32
}

// New creates a view on a real terminal screen
func New(bufW, bufH uint32, refresh time.Duration, logger *log.Logger) (*View, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return newView(screen, bufW, bufH, refresh, logger)
}

// newView finishes construction on any screen, including the tcell
// simulation screen used by tests
func newView(screen tcell.Screen, bufW, bufH uint32, refresh time.Duration, logger *log.Logger) (*View, error) {
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.EnableMouse()
	screen.EnableFocus()
	screen.HideCursor()

	return &View{
		screen:   screen,
		bufW:     bufW,
		bufH:     bufH,
		refresh:  refresh,
		logger:   logger,
		frameCh:  make(chan struct{}, 1),
		stopChan: make(chan struct{}),
	}, nil
}

// Size returns the fixed pixel buffer geometry
func (v *View) Size() (uint32, uint32) {
	return v.bufW, v.bufH
}

// Attach records the buffer for the next commit. The buffer is not
// read until Commit.
func (v *View) Attach(buf *raster.PixelBuffer, x, y int32) {
	v.attached = buf
}

// Damage records the changed region. The terminal backend repaints
// through tcell's own cell diffing, so the region is diagnostic only.
func (v *View) Damage(x, y, w, h uint32) {
	v.damage = damageRect{x: x, y: y, w: w, h: h}
}

// Commit publishes the attached buffer to the terminal
func (v *View) Commit() error {
	if v.attached == nil {
		return nil
	}
	v.present(v.attached)
	v.screen.Show()
	return nil
}

// RequestFrame arms the one-shot frame notification. At most one
// delivery occurs per call, on the next refresh tick.
func (v *View) RequestFrame() {
	v.armed.Store(true)
}

// Frame returns the frame notification channel
func (v *View) Frame() <-chan struct{} {
	return v.frameCh
}

// Start launches the frame ticker and the input poll loop, pushing
// translated events into q
func (v *View) Start(q *event.Queue) {
	v.wg.Add(2)
	core.Go(func() {
		defer v.wg.Done()
		v.frameLoop()
	})
	core.Go(func() {
		defer v.wg.Done()
		v.pollLoop(q)
	})
}

// Fini stops the loops and restores the terminal. Safe to call more
// than once.
func (v *View) Fini() {
	v.stopOnce.Do(func() {
		close(v.stopChan)
	})
	// Fini unblocks PollEvent, letting the poll loop drain out
	v.screen.Fini()
	v.wg.Wait()
}

// frameLoop delivers at most one armed notification per refresh tick
func (v *View) frameLoop() {
	ticker := time.NewTicker(v.refresh)
	defer ticker.Stop()

	for {
		select {
		case <-v.stopChan:
			return
		case <-ticker.C:
			if v.armed.CompareAndSwap(true, false) {
				select {
				case v.frameCh <- struct{}{}:
				default:
				}
			}
		}
	}
}
