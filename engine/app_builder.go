package engine

import (
	"github.com/FloralSoda/heatwave/engine/window"
	"github.com/cogentcore/webgpu/wgpu"
	"go.uber.org/zap"
)

// AppBuilderOption is a functional option for configuring an app.
// Use the With* functions to create options.
type AppBuilderOption func(a *app)

// WithName sets the application name, used as the default window title and
// attached to log output.
//
// Parameters:
//   - name: the application name
//
// Returns:
//   - AppBuilderOption: option function to apply
func WithName(name string) AppBuilderOption {
	return func(a *app) {
		a.name = name
	}
}

// WithWindowOptions forwards window builder options to the window the
// application creates. Ignored when WithWindow supplies a window directly.
//
// Parameters:
//   - options: window builder options to apply on creation
//
// Returns:
//   - AppBuilderOption: option function to apply
func WithWindowOptions(options ...window.WindowBuilderOption) AppBuilderOption {
	return func(a *app) {
		a.windowOptions = append(a.windowOptions, options...)
	}
}

// WithWindow supplies an already created window instead of having the
// application create one.
//
// Parameters:
//   - win: the window to present to
//
// Returns:
//   - AppBuilderOption: option function to apply
func WithWindow(win window.Window) AppBuilderOption {
	return func(a *app) {
		a.window = win
	}
}

// WithPowerPreference sets the adapter power preference. Defaults to high
// performance.
//
// Parameters:
//   - pref: the power preference hint
//
// Returns:
//   - AppBuilderOption: option function to apply
func WithPowerPreference(pref wgpu.PowerPreference) AppBuilderOption {
	return func(a *app) {
		a.gpuConfig.PowerPreference = pref
	}
}

// WithFeatures adds device features the application requires. Connection
// fails if any of them is unsupported by the adapter.
//
// Parameters:
//   - features: the required device features
//
// Returns:
//   - AppBuilderOption: option function to apply
func WithFeatures(features ...wgpu.FeatureName) AppBuilderOption {
	return func(a *app) {
		a.gpuConfig.Features = append(a.gpuConfig.Features, features...)
	}
}

// WithBindGroupLayouts sets the bind group layout descriptors the shared
// pipeline layout is built from, in binding order.
//
// Parameters:
//   - descs: the bind group layout descriptors
//
// Returns:
//   - AppBuilderOption: option function to apply
func WithBindGroupLayouts(descs ...wgpu.BindGroupLayoutDescriptor) AppBuilderOption {
	return func(a *app) {
		a.bindGroupLayoutDescs = append(a.bindGroupLayoutDescs, descs...)
	}
}

// WithSkybox sets the initial clear color. Defaults to mid gray.
//
// Parameters:
//   - color: the clear color
//
// Returns:
//   - AppBuilderOption: option function to apply
func WithSkybox(color wgpu.Color) AppBuilderOption {
	return func(a *app) {
		a.skybox = color
	}
}

// WithLogger sets the logger used by the application and the engine loops.
// Defaults to a no-op logger.
//
// Parameters:
//   - log: the logger
//
// Returns:
//   - AppBuilderOption: option function to apply
func WithLogger(log *zap.Logger) AppBuilderOption {
	return func(a *app) {
		if log != nil {
			a.log = log
		}
	}
}

// WithProfiling enables per-second frame and memory statistics in the log.
//
// Returns:
//   - AppBuilderOption: option function to apply
func WithProfiling() AppBuilderOption {
	return func(a *app) {
		a.profiling = true
	}
}
