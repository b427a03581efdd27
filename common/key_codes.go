// Package common holds plain value constants shared between the engine and
// applications built on it. Nothing here owns GPU or window state.
package common

// Virtual key codes delivered with keyboard events.
// Values match GLFW key codes, which use ASCII values for printable keys.
// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Key
const (
	KeySpace = 32 // Spacebar (ASCII)

	Key0 = 48 // 0 key (ASCII)
	Key1 = 49 // 1 key (ASCII)
	Key2 = 50 // 2 key (ASCII)
	Key3 = 51 // 3 key (ASCII)
	Key4 = 52 // 4 key (ASCII)
	Key5 = 53 // 5 key (ASCII)
	Key6 = 54 // 6 key (ASCII)
	Key7 = 55 // 7 key (ASCII)
	Key8 = 56 // 8 key (ASCII)
	Key9 = 57 // 9 key (ASCII)

	KeyA = 65 // A key (ASCII)
	KeyB = 66 // B key (ASCII)
	KeyC = 67 // C key (ASCII)
	KeyD = 68 // D key (ASCII)
	KeyE = 69 // E key (ASCII)
	KeyF = 70 // F key (ASCII)
	KeyG = 71 // G key (ASCII)
	KeyL = 76 // L key (ASCII)
	KeyM = 77 // M key (ASCII)
	KeyQ = 81 // Q key (ASCII)
	KeyS = 83 // S key (ASCII)
	KeyT = 84 // T key (ASCII)
	KeyV = 86 // V key (ASCII)
	KeyW = 87 // W key (ASCII)
	KeyX = 88 // X key (ASCII)
)

// Non-printable keys (GLFW codes above the ASCII range).
const (
	KeyEsc        = 256 // Escape
	KeyEnter      = 257 // Enter
	KeyTab        = 258 // Tab
	KeyBackspace  = 259 // Backspace
	KeyRight      = 262 // Right arrow
	KeyLeft       = 263 // Left arrow
	KeyDown       = 264 // Down arrow
	KeyUp         = 265 // Up arrow
	KeyLeftShift  = 340 // Left Shift
	KeyLeftCtrl   = 341 // Left Control
	KeyLeftAlt    = 342 // Left Alt
	KeyRightShift = 344 // Right Shift
	KeyRightCtrl  = 345 // Right Control
)
