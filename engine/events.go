package engine

import "github.com/FloralSoda/heatwave/engine/window"

// EventKind discriminates the Event union. Kinds the engine does not
// recognize map to EventUnknown, which presenters are expected to ignore.
type EventKind int

const (
	// EventUnknown is delivered for window events the engine has no mapping
	// for. Carries no payload.
	EventUnknown EventKind = iota

	// EventResized reports a framebuffer size change. Payload: Width, Height.
	EventResized

	// EventMoved reports a window position change. Payload: WindowX, WindowY.
	EventMoved

	// EventCloseRequested reports the user asking the window to close.
	EventCloseRequested

	// EventCursorEntered reports the cursor entering the client area.
	EventCursorEntered

	// EventCursorLeft reports the cursor leaving the client area.
	EventCursorLeft

	// EventCursorMoved reports cursor movement. Payload: CursorX, CursorY.
	EventCursorMoved

	// EventMouseDown reports a mouse button press. Payload: Button, plus the
	// last known cursor position.
	EventMouseDown

	// EventMouseUp reports a mouse button release. Payload: Button, plus the
	// last known cursor position.
	EventMouseUp

	// EventMouseScroll reports scroll wheel movement. Payload: ScrollX,
	// ScrollY.
	EventMouseScroll

	// EventKeyDown reports a key press or repeat. Payload: Key.
	EventKeyDown

	// EventKeyUp reports a key release. Payload: Key.
	EventKeyUp

	// EventCharInput reports translated character input. Payload: Char.
	EventCharInput

	// EventFocusChanged reports an input focus change. Payload: Focused.
	EventFocusChanged

	// EventFileDrop reports files dropped onto the window. Payload: Paths.
	EventFileDrop

	// EventScaleChanged reports a DPI content scale change. Payload: Scale.
	EventScaleChanged

	// EventRenderDataRequest asks the user side to package render data for
	// the frame in flight. Synthesized by the engine, never by the platform.
	EventRenderDataRequest

	// EventCloseNotice tells the user side the window is closing and an
	// acknowledgement is expected. Synthesized by the engine.
	EventCloseNotice
)

func (k EventKind) String() string {
	switch k {
	case EventUnknown:
		return "unknown"
	case EventResized:
		return "resized"
	case EventMoved:
		return "moved"
	case EventCloseRequested:
		return "close requested"
	case EventCursorEntered:
		return "cursor entered"
	case EventCursorLeft:
		return "cursor left"
	case EventCursorMoved:
		return "cursor moved"
	case EventMouseDown:
		return "mouse down"
	case EventMouseUp:
		return "mouse up"
	case EventMouseScroll:
		return "mouse scroll"
	case EventKeyDown:
		return "key down"
	case EventKeyUp:
		return "key up"
	case EventCharInput:
		return "char input"
	case EventFocusChanged:
		return "focus changed"
	case EventFileDrop:
		return "file drop"
	case EventScaleChanged:
		return "scale changed"
	case EventRenderDataRequest:
		return "render data request"
	case EventCloseNotice:
		return "close notice"
	default:
		return "invalid"
	}
}

// Event is the window event as delivered to the user-logic goroutine. Only
// the fields named by the Kind's documentation are meaningful.
type Event struct {
	Kind EventKind

	// Width/Height for EventResized.
	Width, Height int

	// WindowX/WindowY for EventMoved.
	WindowX, WindowY int

	// CursorX/CursorY for EventCursorMoved, and the last known cursor
	// position for mouse button events.
	CursorX, CursorY float64

	// ScrollX/ScrollY for EventMouseScroll.
	ScrollX, ScrollY float64

	// Button for EventMouseDown and EventMouseUp.
	Button window.MouseButton

	// Key for EventKeyDown and EventKeyUp.
	Key uint32

	// Char for EventCharInput.
	Char rune

	// Focused for EventFocusChanged.
	Focused bool

	// Paths for EventFileDrop.
	Paths []string

	// Scale for EventScaleChanged.
	Scale float32
}
