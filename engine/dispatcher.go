package engine

import (
	"github.com/FloralSoda/heatwave/engine/window"
	"go.uber.org/zap"
)

// attachCallbacks wires every window callback to the bridge. Callbacks run
// on the OS event goroutine inside the message pump; each one translates the
// platform event into an Event and forwards it without blocking.
//
// Resizes additionally reconfigure the surface before the event is
// forwarded, so the next frame draws at the new size.
func (r *Runner[D]) attachCallbacks() {
	win := r.app.Window()

	win.SetResizeCallback(func(width, height int) {
		if err := r.app.Connection().Reconfigure(width, height); err != nil {
			// Zero-area framebuffers happen while minimized; keep the old
			// surface and skip the event.
			r.log.Debug("skipping surface reconfigure", zap.Error(err))
			return
		}
		r.bridge.Forward(Event{Kind: EventResized, Width: width, Height: height})
	})

	win.SetMoveCallback(func(x, y int) {
		r.bridge.Forward(Event{Kind: EventMoved, WindowX: x, WindowY: y})
	})

	win.SetCloseRequestCallback(func() {
		r.bridge.Forward(Event{Kind: EventCloseRequested})
	})

	win.SetCursorEnterCallback(func(entered bool) {
		if entered {
			r.bridge.Forward(Event{Kind: EventCursorEntered})
		} else {
			r.bridge.Forward(Event{Kind: EventCursorLeft})
		}
	})

	win.SetCursorMoveCallback(func(x, y float64) {
		r.bridge.Forward(Event{Kind: EventCursorMoved, CursorX: x, CursorY: y})
	})

	win.SetMouseDownCallback(func(button window.MouseButton) {
		r.bridge.Forward(Event{Kind: EventMouseDown, Button: button})
	})

	win.SetMouseUpCallback(func(button window.MouseButton) {
		r.bridge.Forward(Event{Kind: EventMouseUp, Button: button})
	})

	win.SetScrollCallback(func(xoffset, yoffset float64) {
		r.bridge.Forward(Event{Kind: EventMouseScroll, ScrollX: xoffset, ScrollY: yoffset})
	})

	win.SetKeyDownCallback(func(keyCode uint32) {
		r.bridge.Forward(Event{Kind: EventKeyDown, Key: keyCode})
	})

	win.SetKeyUpCallback(func(keyCode uint32) {
		r.bridge.Forward(Event{Kind: EventKeyUp, Key: keyCode})
	})

	win.SetCharCallback(func(char rune) {
		r.bridge.Forward(Event{Kind: EventCharInput, Char: char})
	})

	win.SetFocusCallback(func(focused bool) {
		r.bridge.Forward(Event{Kind: EventFocusChanged, Focused: focused})
	})

	win.SetFileDropCallback(func(paths []string) {
		r.bridge.Forward(Event{Kind: EventFileDrop, Paths: paths})
	})

	win.SetContentScaleCallback(func(scale float32) {
		r.bridge.Forward(Event{Kind: EventScaleChanged, Scale: scale})
	})
}
