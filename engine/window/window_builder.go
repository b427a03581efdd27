package window

// WindowBuilderOption is a functional option for configuring an engineWindow.
// Use the With* functions to create options.
type WindowBuilderOption func(w *engineWindow)

// WithTitle sets the window title displayed in the title bar.
//
// Parameters:
//   - title: the window title text
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithTitle(title string) WindowBuilderOption {
	return func(w *engineWindow) {
		w.title = title
	}
}

// WithWidth sets the initial window width.
//
// Parameters:
//   - width: initial width in pixels
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithWidth(width int) WindowBuilderOption {
	return func(w *engineWindow) {
		w.width = width
	}
}

// WithHeight sets the initial window height.
//
// Parameters:
//   - height: initial height in pixels
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithHeight(height int) WindowBuilderOption {
	return func(w *engineWindow) {
		w.height = height
	}
}

// WithMinSize sets the minimum window size the user can resize to.
//
// Parameters:
//   - width, height: minimum size in pixels
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithMinSize(width, height int) WindowBuilderOption {
	return func(w *engineWindow) {
		w.minWidth = width
		w.minHeight = height
	}
}

// WithMaxSize sets the maximum window size the user can resize to.
//
// Parameters:
//   - width, height: maximum size in pixels
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithMaxSize(width, height int) WindowBuilderOption {
	return func(w *engineWindow) {
		w.maxWidth = width
		w.maxHeight = height
	}
}

// WithPosition places the window at the given screen coordinates instead of
// letting the platform choose.
//
// Parameters:
//   - x, y: top-left position in screen coordinates
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithPosition(x, y int) WindowBuilderOption {
	return func(w *engineWindow) {
		w.posX = x
		w.posY = y
		w.hasPosition = true
	}
}

// WithResizable controls whether the user can resize the window. Defaults to
// true.
//
// Parameters:
//   - resizable: whether the window is user-resizable
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithResizable(resizable bool) WindowBuilderOption {
	return func(w *engineWindow) {
		w.resizable = resizable
	}
}

// WithDecorated controls whether the window has a title bar and border.
// Defaults to true.
//
// Parameters:
//   - decorated: whether the window is decorated
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithDecorated(decorated bool) WindowBuilderOption {
	return func(w *engineWindow) {
		w.decorated = decorated
	}
}

// WithMaximized creates the window maximized.
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithMaximized() WindowBuilderOption {
	return func(w *engineWindow) {
		w.maximized = true
	}
}

// WithVisible controls whether the window is shown on creation. Defaults to
// true.
//
// Parameters:
//   - visible: whether the window starts visible
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithVisible(visible bool) WindowBuilderOption {
	return func(w *engineWindow) {
		w.visible = visible
	}
}

// WithTransparent requests a transparent framebuffer, where supported by the
// platform.
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithTransparent() WindowBuilderOption {
	return func(w *engineWindow) {
		w.transparent = true
	}
}

// WithFloating keeps the window always on top.
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithFloating() WindowBuilderOption {
	return func(w *engineWindow) {
		w.floating = true
	}
}
