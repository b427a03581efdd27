package window

import (
	"runtime"

	"github.com/cogentcore/webgpu/wgpu"
)

// MouseButton identifies a mouse button in button events.
type MouseButton int

// Mouse button values match GLFW button codes.
const (
	MouseButtonLeft   MouseButton = 0
	MouseButtonRight  MouseButton = 1
	MouseButtonMiddle MouseButton = 2
)

// Window provides platform windowing and input event handling.
// Wraps platform-specific window implementations with a common interface.
type Window interface {
	// SetUpdateCallback sets the function called each message loop iteration.
	//
	// Parameters:
	//   - callback: function to call (or nil to disable)
	SetUpdateCallback(callback func())

	// SetResizeCallback sets the function called when the framebuffer is
	// resized. Dimensions are in pixels, which differ from screen coordinates
	// on high-DPI displays.
	//
	// Parameters:
	//   - callback: function receiving new width and height in pixels
	SetResizeCallback(callback func(width, height int))

	// SetMoveCallback sets the function called when the window is moved.
	//
	// Parameters:
	//   - callback: function receiving the new top-left position in screen coordinates
	SetMoveCallback(callback func(x, y int))

	// SetCloseRequestCallback sets the function called when the user asks the
	// window to close (title bar button, Alt-F4, and so on). The window will
	// stop running after the current message loop iteration.
	//
	// Parameters:
	//   - callback: function to call (or nil to disable)
	SetCloseRequestCallback(callback func())

	// SetCursorEnterCallback sets the callback for the cursor entering or
	// leaving the window's client area.
	//
	// Parameters:
	//   - callback: function receiving true on enter, false on leave
	SetCursorEnterCallback(callback func(entered bool))

	// SetCursorMoveCallback sets the callback for cursor movement.
	//
	// Parameters:
	//   - callback: function receiving the cursor position in client coordinates
	SetCursorMoveCallback(callback func(x, y float64))

	// SetMouseDownCallback sets the callback for mouse button press events.
	//
	// Parameters:
	//   - callback: function receiving the pressed button
	SetMouseDownCallback(callback func(button MouseButton))

	// SetMouseUpCallback sets the callback for mouse button release events.
	//
	// Parameters:
	//   - callback: function receiving the released button
	SetMouseUpCallback(callback func(button MouseButton))

	// SetScrollCallback sets the callback for mouse scroll wheel events.
	//
	// Parameters:
	//   - callback: function receiving the scroll deltas (positive y = up/zoom in)
	SetScrollCallback(callback func(xoffset, yoffset float64))

	// SetKeyDownCallback sets the callback for key press and repeat events.
	//
	// Parameters:
	//   - callback: function receiving the virtual key code
	SetKeyDownCallback(callback func(keyCode uint32))

	// SetKeyUpCallback sets the callback for key release events.
	//
	// Parameters:
	//   - callback: function receiving the virtual key code
	SetKeyUpCallback(callback func(keyCode uint32))

	// SetCharCallback sets the callback for translated character input,
	// which accounts for keyboard layout and modifiers.
	//
	// Parameters:
	//   - callback: function receiving the input character
	SetCharCallback(callback func(char rune))

	// SetFocusCallback sets the callback for input focus changes.
	//
	// Parameters:
	//   - callback: function receiving true on focus gained, false on lost
	SetFocusCallback(callback func(focused bool))

	// SetFileDropCallback sets the callback for files dropped onto the window.
	//
	// Parameters:
	//   - callback: function receiving the dropped file paths
	SetFileDropCallback(callback func(paths []string))

	// SetContentScaleCallback sets the callback for DPI scale changes, fired
	// when the window moves to a monitor with a different content scale.
	//
	// Parameters:
	//   - callback: function receiving the new scale factor
	SetContentScaleCallback(callback func(scale float32))

	// SurfaceDescriptor returns a wgpu.SurfaceDescriptor suitable for creating a WebGPU surface.
	// The descriptor is platform-appropriate (Windows HWND, X11 Xlib, Wayland, macOS Metal, etc.)
	// and is created by the wgpuglfw bridge from the underlying GLFW window.
	//
	// Returns:
	//   - *wgpu.SurfaceDescriptor: the platform-specific surface descriptor, or nil if window is not initialized
	SurfaceDescriptor() *wgpu.SurfaceDescriptor

	// IsRunning returns true if the window is still active.
	//
	// Returns:
	//   - bool: true if window is running, false if closed or closing
	IsRunning() bool

	// BeginShutdown asks the window to stop running. The message loop exits
	// after its current iteration; platform resources stay alive until Close.
	BeginShutdown()

	// Close closes the window and releases platform resources.
	//
	// Returns:
	//   - error: error if close operation fails
	Close() error

	// ProcessMessages runs the window message loop.
	// Blocks until the window is closed. Calls the update callback each iteration.
	ProcessMessages()

	// Width returns the current framebuffer width in pixels.
	//
	// Returns:
	//   - int: width in pixels
	Width() int

	// Height returns the current framebuffer height in pixels.
	//
	// Returns:
	//   - int: height in pixels
	Height() int
}

// engineWindow is the implementation of the Window interface.
// Holds window configuration, GLFW state, and event callbacks.
type engineWindow struct {
	// title is the window title displayed in the title bar.
	title string

	// width/height are the current framebuffer dimensions in pixels.
	width  int
	height int

	// minWidth/minHeight/maxWidth/maxHeight bound user resizing. Zero means
	// unbounded on that side.
	minWidth, minHeight int
	maxWidth, maxHeight int

	// posX/posY place the window on creation when hasPosition is set;
	// otherwise the platform chooses.
	posX, posY  int
	hasPosition bool

	resizable   bool
	decorated   bool
	maximized   bool
	visible     bool
	transparent bool
	floating    bool

	// internalWindow holds the platform-specific window data (glfwWindow).
	internalWindow any

	onUpdate       func()
	onResize       func(width, height int)
	onMove         func(x, y int)
	onCloseRequest func()
	onCursorEnter  func(entered bool)
	onCursorMove   func(x, y float64)
	onMouseDown    func(button MouseButton)
	onMouseUp      func(button MouseButton)
	onScroll       func(xoffset, yoffset float64)
	onKeyDown      func(keyCode uint32)
	onKeyUp        func(keyCode uint32)
	onChar         func(char rune)
	onFocus        func(focused bool)
	onFileDrop     func(paths []string)
	onContentScale func(scale float32)
}

var _ Window = &engineWindow{}

// NewWindow creates a new Window with the specified options.
// Applies default values first, then each option in order, then creates the
// platform window. The caller must be on the OS main goroutine; NewWindow
// locks it to the OS thread for the window's lifetime.
//
// Parameters:
//   - options: functional options to configure the window
//
// Returns:
//   - Window: the configured window
//   - error: error if the platform window could not be created
func NewWindow(options ...WindowBuilderOption) (Window, error) {
	w := &engineWindow{
		title:     "Default Window Title",
		width:     1280,
		height:    720,
		resizable: true,
		decorated: true,
		visible:   true,
	}
	for _, opt := range options {
		opt(w)
	}
	if err := newPlatformWindow(w); err != nil {
		return nil, err
	}
	return w, nil
}

func (w *engineWindow) SetUpdateCallback(callback func()) {
	w.onUpdate = callback
}

func (w *engineWindow) SetResizeCallback(callback func(width, height int)) {
	w.onResize = callback
}

func (w *engineWindow) SetMoveCallback(callback func(x, y int)) {
	w.onMove = callback
}

func (w *engineWindow) SetCloseRequestCallback(callback func()) {
	w.onCloseRequest = callback
}

func (w *engineWindow) SetCursorEnterCallback(callback func(entered bool)) {
	w.onCursorEnter = callback
}

func (w *engineWindow) SetCursorMoveCallback(callback func(x, y float64)) {
	w.onCursorMove = callback
}

func (w *engineWindow) SetMouseDownCallback(callback func(button MouseButton)) {
	w.onMouseDown = callback
}

func (w *engineWindow) SetMouseUpCallback(callback func(button MouseButton)) {
	w.onMouseUp = callback
}

func (w *engineWindow) SetScrollCallback(callback func(xoffset, yoffset float64)) {
	w.onScroll = callback
}

func (w *engineWindow) SetKeyDownCallback(callback func(keyCode uint32)) {
	w.onKeyDown = callback
}

func (w *engineWindow) SetKeyUpCallback(callback func(keyCode uint32)) {
	w.onKeyUp = callback
}

func (w *engineWindow) SetCharCallback(callback func(char rune)) {
	w.onChar = callback
}

func (w *engineWindow) SetFocusCallback(callback func(focused bool)) {
	w.onFocus = callback
}

func (w *engineWindow) SetFileDropCallback(callback func(paths []string)) {
	w.onFileDrop = callback
}

func (w *engineWindow) SetContentScaleCallback(callback func(scale float32)) {
	w.onContentScale = callback
}

func (w *engineWindow) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	return platformGetSurfaceDescriptor(w)
}

func (w *engineWindow) IsRunning() bool {
	return platformIsRunningCheck(w)
}

func (w *engineWindow) BeginShutdown() {
	platformBeginShutdown(w)
}

func (w *engineWindow) Close() error {
	return platformCloseWindow(w)
}

func (w *engineWindow) ProcessMessages() {
	for w.IsRunning() {
		if succ := platformProcessMessages(w); !succ {
			break
		}

		if w.onUpdate != nil {
			w.onUpdate()
		}

		runtime.Gosched()
	}
}

func (w *engineWindow) Width() int {
	return w.width
}

func (w *engineWindow) Height() int {
	return w.height
}
