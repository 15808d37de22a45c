package termview

import (
	"github.com/gdamore/tcell/v2"

	"github.com/nacardin/rectshow/event"
	"github.com/nacardin/rectshow/input"
)

// keyCodes maps terminal arrow keys to the key codes the dispatcher binds
var keyCodes = map[tcell.Key]uint32{
	tcell.KeyUp:    input.KeyCodeUp,
	tcell.KeyDown:  input.KeyCodeDown,
	tcell.KeyLeft:  input.KeyCodeLeft,
	tcell.KeyRight: input.KeyCodeRight,
}

// buttonCodes pairs tcell button bits with pointer button codes
var buttonCodes = []struct {
	mask tcell.ButtonMask
	code uint32
}{
	{tcell.Button1, input.BtnLeft},
	{tcell.Button2, input.BtnRight},
	{tcell.Button3, input.BtnMiddle},
}

// pollLoop translates terminal events into core input events until the
// screen is finalized
func (v *View) pollLoop(q *event.Queue) {
	for {
		ev := v.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case <-v.stopChan:
			return
		default:
		}

		switch ev := ev.(type) {
		case *tcell.EventKey:
			v.translateKey(ev, q)
		case *tcell.EventMouse:
			v.translateMouse(ev, q)
		case *tcell.EventFocus:
			v.translateFocus(ev, q)
		case *tcell.EventResize:
			w, h := ev.Size()
			v.logger.Printf("Terminal resized to %dx%d cells.", w, h)
			v.screen.Sync()
		}
	}
}

// translateKey emits a synthetic press+release pair for bound keys.
// Terminal key events carry no release information, so the pair models
// the tap; the dispatcher acts on the release.
func (v *View) translateKey(ev *tcell.EventKey, q *event.Queue) {
	if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
		q.Push(event.Event{Type: event.TypeQuit})
		return
	}
	code, ok := keyCodes[ev.Key()]
	if !ok {
		return
	}
	q.Push(event.Event{Type: event.TypeKey, Code: code, Pressed: true})
	q.Push(event.Event{Type: event.TypeKey, Code: code, Pressed: false})
}

// translateMouse scales the cell position to buffer pixel coordinates
// and emits button transitions against the previous button mask
func (v *View) translateMouse(ev *tcell.EventMouse, q *event.Queue) {
	cw, ch := v.screen.Size()
	if cw <= 0 || ch <= 0 {
		return
	}
	mx, my := ev.Position()
	px := uint32(mx) * v.bufW / uint32(cw)
	py := uint32(my) * v.bufH / uint32(ch)

	if px != v.lastPtrX || py != v.lastPtrY {
		v.lastPtrX, v.lastPtrY = px, py
		q.Push(event.Event{Type: event.TypePointerMotion, X: px, Y: py})
	}

	btns := ev.Buttons() & (tcell.Button1 | tcell.Button2 | tcell.Button3)
	if btns != v.prevButtons {
		for _, bc := range buttonCodes {
			was := v.prevButtons&bc.mask != 0
			now := btns&bc.mask != 0
			if was != now {
				q.Push(event.Event{Type: event.TypePointerButton, Code: bc.code, Pressed: now})
			}
		}
		v.prevButtons = btns
	}
}

// translateFocus maps terminal focus changes to pointer enter/leave
func (v *View) translateFocus(ev *tcell.EventFocus, q *event.Queue) {
	if ev.Focused {
		q.Push(event.Event{Type: event.TypePointerEnter, X: v.lastPtrX, Y: v.lastPtrY})
	} else {
		q.Push(event.Event{Type: event.TypePointerLeave})
	}
}
