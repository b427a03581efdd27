package engine

import (
	"errors"

	"github.com/FloralSoda/heatwave/engine/bridge"
	"github.com/FloralSoda/heatwave/engine/profiler"
	"go.uber.org/zap"
)

// Runner drives the two-goroutine frame protocol: the OS event goroutine
// pumps the window, requests render data over the bridge, and records GPU
// work; the user-logic goroutine consumes events and packages render data.
// D is the application-defined render data type.
type Runner[D any] struct {
	app       App
	presenter Presenter[D]
	log       *zap.Logger

	bridge *bridge.Bridge[Event, D]
	helper *RenderHelper
	prof   *profiler.Profiler

	// fatal records a render exchange failure; once set no further frames
	// are drawn and the close exchange is skipped.
	fatal error
}

// NewRunner pairs an application with its presenter.
//
// Parameters:
//   - app: the application owning window and GPU state
//   - presenter: the application's frame and event logic
//   - log: logger for protocol diagnostics (nil for none)
//
// Returns:
//   - *Runner[D]: the runner, ready for Run
func NewRunner[D any](app App, presenter Presenter[D], log *zap.Logger) *Runner[D] {
	if log == nil {
		log = zap.NewNop()
	}
	r := &Runner[D]{
		app:       app,
		presenter: presenter,
		log:       log,
		bridge:    bridge.New[Event, D](log),
		helper:    &RenderHelper{app: app},
	}
	if app.ProfilingEnabled() {
		r.prof = profiler.NewProfiler(log)
	}
	return r
}

// Run starts the user-logic goroutine, wires the window callbacks, and
// blocks in the window message loop. NewRunner and Run must be called from
// the OS main goroutine, the same one that created the application.
//
// When the window stops running, the user side is notified of the close,
// its acknowledgement is awaited, and every GPU resource is released.
//
// Returns:
//   - error: the render exchange failure that forced shutdown, or an error
//     from resource teardown; nil on a clean close
func (r *Runner[D]) Run() error {
	go runPresenterLoop(r.bridge, r.presenter, r.log)

	r.attachCallbacks()

	win := r.app.Window()
	win.SetUpdateCallback(r.redraw)
	win.ProcessMessages()

	if r.fatal == nil {
		if err := r.bridge.NotifyClose(Event{Kind: EventCloseNotice}); err != nil {
			// The user side being gone already is fine during shutdown.
			if !errors.Is(err, bridge.ErrBridgeClosed) {
				r.log.Warn("close exchange failed", zap.Error(err))
			}
		}
	}
	r.bridge.CloseToUser()

	releaseErr := r.app.Release()
	if r.fatal != nil {
		return r.fatal
	}
	return releaseErr
}

// redraw runs once per message loop iteration on the OS event goroutine. It
// asks the user side for render data, blocks until it arrives, and hands it
// to the presenter's render stage.
func (r *Runner[D]) redraw() {
	if r.fatal != nil {
		return
	}

	data, err := r.bridge.RequestRenderData(Event{Kind: EventRenderDataRequest})
	if err != nil {
		// Without render data the frame cannot be drawn and no future frame
		// can either; treat the disconnect as fatal and begin shutdown.
		r.fatal = err
		r.log.Error("render data exchange failed, shutting down", zap.Error(err))
		r.app.Window().BeginShutdown()
		return
	}

	r.presenter.Render(data, r.helper)

	if r.prof != nil {
		r.prof.Tick()
	}
}

// runPresenterLoop is the user-logic goroutine. It consumes bridge events
// until the event side shuts the bridge down, answering render data requests
// and the close notice, and dispatching everything else to the presenter's
// handlers.
//
// Mouse button events are enriched with the last cursor position seen on
// this goroutine, so handlers get click coordinates without re-querying the
// window.
func runPresenterLoop[D any](br *bridge.Bridge[Event, D], presenter Presenter[D], log *zap.Logger) {
	// A presenter panic must surface as a disconnect, not a deadlocked event
	// goroutine.
	defer br.CloseUserSide()

	var cursorX, cursorY float64

	for {
		ev, ok := br.Receive()
		if !ok {
			return
		}

		switch ev.Kind {
		case EventRenderDataRequest:
			br.SubmitRenderData(presenter.PackageRenderData())
		case EventCloseNotice:
			presenter.OnExit()
			br.AckClose()
		case EventCursorMoved:
			cursorX, cursorY = ev.CursorX, ev.CursorY
			presenter.OnCursorMove(ev.CursorX, ev.CursorY)
		case EventCursorEntered:
			presenter.OnCursorEnter()
		case EventCursorLeft:
			presenter.OnCursorLeave()
		case EventMouseDown:
			presenter.OnMouseDown(MouseEventArgs{Button: ev.Button, X: cursorX, Y: cursorY})
		case EventMouseUp:
			presenter.OnMouseUp(MouseEventArgs{Button: ev.Button, X: cursorX, Y: cursorY})
		case EventMouseScroll:
			presenter.OnMouseScroll(ScrollEventArgs{DeltaX: ev.ScrollX, DeltaY: ev.ScrollY})
		case EventKeyDown:
			presenter.OnKeyDown(ev.Key)
		case EventKeyUp:
			presenter.OnKeyUp(ev.Key)
		case EventCharInput:
			presenter.OnCharInput(ev.Char)
		case EventResized:
			presenter.OnWindowResize(ev.Width, ev.Height)
		case EventMoved:
			presenter.OnWindowMove(ev.WindowX, ev.WindowY)
		case EventFocusChanged:
			presenter.OnFocusChange(ev.Focused)
		case EventFileDrop:
			presenter.OnFileDrop(ev.Paths)
		case EventScaleChanged:
			presenter.OnScaleChange(ev.Scale)
		case EventCloseRequested, EventUnknown:
			// Informational; the close exchange is driven by EventCloseNotice.
		default:
			log.Debug("dropping unhandled event", zap.Stringer("kind", ev.Kind))
		}
	}
}
