package engine

import "github.com/FloralSoda/heatwave/engine/window"

// MouseEventArgs carries a mouse button event with the cursor position at
// the time of the click.
type MouseEventArgs struct {
	Button window.MouseButton
	X, Y   float64
}

// ScrollEventArgs carries scroll wheel deltas.
type ScrollEventArgs struct {
	DeltaX, DeltaY float64
}

// Presenter is the application's side of the frame protocol, running on the
// user-logic goroutine. D is the application-defined render data type handed
// across the bridge each frame.
//
// PackageRenderData and the On* handlers run on the user-logic goroutine and
// may touch application state freely; they must never touch GPU objects.
// Render runs on the OS event goroutine and is the only place the
// application records GPU work; it must never touch user-goroutine state
// beyond the render data it was handed.
//
// Embed BasePresenter to get no-op implementations of every handler.
type Presenter[D any] interface {
	// PackageRenderData snapshots whatever the frame needs from application
	// state into a self-contained value. Called once per frame.
	//
	// Returns:
	//   - D: the packaged render data for the frame in flight
	PackageRenderData() D

	// Render records and submits the frame's GPU work using the packaged
	// data and the helper's access to registered resources.
	//
	// Parameters:
	//   - data: the render data packaged for this frame
	//   - helper: accessor for the connection and registered GPU objects
	Render(data D, helper *RenderHelper)

	// OnExit runs user-side cleanup after the window began closing and
	// before the close acknowledgement is sent. GPU objects are still alive.
	OnExit()

	// OnCursorEnter fires when the cursor enters the window client area.
	OnCursorEnter()

	// OnCursorLeave fires when the cursor leaves the window client area.
	OnCursorLeave()

	// OnCursorMove fires on cursor movement within the client area.
	//
	// Parameters:
	//   - x, y: cursor position in client coordinates
	OnCursorMove(x, y float64)

	// OnKeyDown fires on key press and repeat.
	//
	// Parameters:
	//   - key: the virtual key code (see package common)
	OnKeyDown(key uint32)

	// OnKeyUp fires on key release.
	//
	// Parameters:
	//   - key: the virtual key code (see package common)
	OnKeyUp(key uint32)

	// OnCharInput fires on translated character input.
	//
	// Parameters:
	//   - char: the input character
	OnCharInput(char rune)

	// OnMouseDown fires on mouse button press.
	//
	// Parameters:
	//   - args: the button and the cursor position at press time
	OnMouseDown(args MouseEventArgs)

	// OnMouseUp fires on mouse button release.
	//
	// Parameters:
	//   - args: the button and the cursor position at release time
	OnMouseUp(args MouseEventArgs)

	// OnMouseScroll fires on scroll wheel movement.
	//
	// Parameters:
	//   - args: the scroll deltas
	OnMouseScroll(args ScrollEventArgs)

	// OnWindowResize fires after the surface has been reconfigured for a new
	// framebuffer size.
	//
	// Parameters:
	//   - width, height: the new framebuffer size in pixels
	OnWindowResize(width, height int)

	// OnWindowMove fires when the window is moved.
	//
	// Parameters:
	//   - x, y: the new top-left position in screen coordinates
	OnWindowMove(x, y int)

	// OnFocusChange fires when the window gains or loses input focus.
	//
	// Parameters:
	//   - focused: true on gain, false on loss
	OnFocusChange(focused bool)

	// OnFileDrop fires when files are dropped onto the window.
	//
	// Parameters:
	//   - paths: the dropped file paths
	OnFileDrop(paths []string)

	// OnScaleChange fires when the window's DPI content scale changes.
	//
	// Parameters:
	//   - scale: the new scale factor
	OnScaleChange(scale float32)
}

// BasePresenter provides no-op implementations of every Presenter handler
// except PackageRenderData and Render, which the application must supply.
// Embed it and override only the handlers of interest.
type BasePresenter struct{}

func (BasePresenter) OnExit()                            {}
func (BasePresenter) OnCursorEnter()                     {}
func (BasePresenter) OnCursorLeave()                     {}
func (BasePresenter) OnCursorMove(x, y float64)          {}
func (BasePresenter) OnKeyDown(key uint32)               {}
func (BasePresenter) OnKeyUp(key uint32)                 {}
func (BasePresenter) OnCharInput(char rune)              {}
func (BasePresenter) OnMouseDown(args MouseEventArgs)    {}
func (BasePresenter) OnMouseUp(args MouseEventArgs)      {}
func (BasePresenter) OnMouseScroll(args ScrollEventArgs) {}
func (BasePresenter) OnWindowResize(width, height int)   {}
func (BasePresenter) OnWindowMove(x, y int)              {}
func (BasePresenter) OnFocusChange(focused bool)         {}
func (BasePresenter) OnFileDrop(paths []string)          {}
func (BasePresenter) OnScaleChange(scale float32)        {}
