package gpu

import (
	"errors"
	"fmt"

	"github.com/FloralSoda/heatwave/engine/window"
	"github.com/cogentcore/webgpu/wgpu"
	"go.uber.org/zap"
)

// Setup errors returned by Connect and Reconfigure. All are non-retryable:
// the caller either relaxes its requirements and connects again, or aborts
// startup.
var (
	// ErrSurfaceCreation means the window and the GPU backend are incompatible.
	ErrSurfaceCreation = errors.New("gpu: surface creation failed")

	// ErrNoCompatibleAdapter means no adapter satisfies the surface
	// compatibility and power preference constraints.
	ErrNoCompatibleAdapter = errors.New("gpu: no compatible adapter found")

	// ErrDeviceRequest means the adapter rejected the device request, usually
	// because a requested feature is unsupported.
	ErrDeviceRequest = errors.New("gpu: device request rejected")

	// ErrInvalidSize rejects zero-area surface dimensions.
	ErrInvalidSize = errors.New("gpu: surface size must be non-zero")
)

// DepthFormat is the dedicated depth texture format used by every render
// pipeline the engine builds.
const DepthFormat = wgpu.TextureFormatDepth32Float

// SampleCount is the fixed multisample count shared by pipelines and the
// depth attachment.
const SampleCount = 8

// Config holds the GPU-facing half of the startup configuration, consumed
// once at connection time.
type Config struct {
	// PowerPreference hints which physical device class to pick.
	PowerPreference wgpu.PowerPreference

	// Features lists the additional device features the application requires.
	// The device request fails if any of them is unsupported.
	Features []wgpu.FeatureName
}

// Connection owns the logical device, command queue, and presentable surface
// for the lifetime of the application. It is created once during application
// construction; on resize its surface is reconfigured in place, never
// rebuilt.
type Connection struct {
	instance *wgpu.Instance
	adapter  *wgpu.Adapter
	surface  *wgpu.Surface
	device   *wgpu.Device
	queue    *wgpu.Queue

	surfaceConfig wgpu.SurfaceConfiguration

	// width/height mirror surfaceConfig and track the current draw texture
	// size as plain ints.
	width, height int

	log *zap.Logger
}

// Connect establishes the GPU connection bound to the given window. In order:
// instance creation, surface creation, adapter selection (surface-compatible,
// honoring the power preference), device and queue acquisition with the
// requested feature set, and surface configuration. The surface format
// prefers an sRGB-capable format among the surface's supported formats,
// falling back to the first supported format; present mode is always vsync
// (Fifo); alpha mode takes the surface's first reported option. Frame latency
// stays at wgpu-native's default of 2; the binding exposes no knob for it.
//
// Parameters:
//   - win: the window to present to; its framebuffer size must be non-zero
//   - cfg: power preference and required features
//   - log: logger for connection diagnostics (nil for none)
//
// Returns:
//   - *Connection: the established connection
//   - error: one of ErrInvalidSize, ErrSurfaceCreation,
//     ErrNoCompatibleAdapter, ErrDeviceRequest
func Connect(win window.Window, cfg Config, log *zap.Logger) (*Connection, error) {
	if log == nil {
		log = zap.NewNop()
	}

	width, height := win.Width(), win.Height()
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: window reports %dx%d", ErrInvalidSize, width, height)
	}

	instance := wgpu.CreateInstance(nil)

	sd := win.SurfaceDescriptor()
	if sd == nil {
		instance.Release()
		return nil, fmt.Errorf("%w: window has no surface descriptor", ErrSurfaceCreation)
	}
	surface := instance.CreateSurface(sd)
	if surface == nil {
		instance.Release()
		return nil, ErrSurfaceCreation
	}

	adapter, err := instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		PowerPreference:   cfg.PowerPreference,
		CompatibleSurface: surface,
	})
	if err != nil {
		surface.Release()
		instance.Release()
		return nil, fmt.Errorf("%w: %v", ErrNoCompatibleAdapter, err)
	}

	device, err := adapter.RequestDevice(&wgpu.DeviceDescriptor{
		Label:            "Heatwave Device",
		RequiredFeatures: cfg.Features,
		RequiredLimits:   &wgpu.RequiredLimits{Limits: wgpu.DefaultLimits()},
	})
	if err != nil {
		adapter.Release()
		surface.Release()
		instance.Release()
		return nil, fmt.Errorf("%w: %v", ErrDeviceRequest, err)
	}
	queue := device.GetQueue()

	caps := surface.GetCapabilities(adapter)
	format := preferredSurfaceFormat(caps.Formats)

	c := &Connection{
		instance: instance,
		adapter:  adapter,
		surface:  surface,
		device:   device,
		queue:    queue,
		surfaceConfig: wgpu.SurfaceConfiguration{
			Usage:       wgpu.TextureUsageRenderAttachment,
			Format:      format,
			Width:       uint32(width),
			Height:      uint32(height),
			PresentMode: wgpu.PresentModeFifo,
			AlphaMode:   caps.AlphaModes[0],
		},
		width:  width,
		height: height,
		log:    log,
	}
	surface.Configure(adapter, device, &c.surfaceConfig)

	log.Info("gpu connection established",
		zap.Int("width", width),
		zap.Int("height", height),
		zap.Uint32("surfaceFormat", uint32(format)))

	return c, nil
}

// preferredSurfaceFormat picks an sRGB-capable format when the surface offers
// one, otherwise the surface's first supported format.
func preferredSurfaceFormat(formats []wgpu.TextureFormat) wgpu.TextureFormat {
	for _, f := range formats {
		if f == wgpu.TextureFormatRGBA8UnormSrgb || f == wgpu.TextureFormatBGRA8UnormSrgb {
			return f
		}
	}
	return formats[0]
}

// Reconfigure resizes the presentable surface in place. It must be called
// before the next frame whenever the window's client size changes. A
// zero-area size is rejected without mutating the stored configuration.
//
// Parameters:
//   - width, height: the new client size in pixels
//
// Returns:
//   - error: ErrInvalidSize if either dimension is zero or negative
func (c *Connection) Reconfigure(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}

	c.surfaceConfig.Width = uint32(width)
	c.surfaceConfig.Height = uint32(height)
	c.width, c.height = width, height

	// A connection carries no surface only when built headless for tests.
	if c.surface != nil {
		c.surface.Configure(c.adapter, c.device, &c.surfaceConfig)
	}
	return nil
}

// CreateDepthTexture creates a depth texture matching the current surface
// size, with the engine's fixed depth format and sample count. The caller
// owns the returned texture and view and must release them (and recreate
// them after Reconfigure).
func (c *Connection) CreateDepthTexture() (*wgpu.Texture, *wgpu.TextureView, error) {
	texture, err := c.device.CreateTexture(&wgpu.TextureDescriptor{
		Label: "Heatwave Depth Texture",
		Size: wgpu.Extent3D{
			Width:              c.surfaceConfig.Width,
			Height:             c.surfaceConfig.Height,
			DepthOrArrayLayers: 1,
		},
		MipLevelCount: 1,
		SampleCount:   SampleCount,
		Dimension:     wgpu.TextureDimension2D,
		Format:        DepthFormat,
		Usage:         wgpu.TextureUsageRenderAttachment,
	})
	if err != nil {
		return nil, nil, err
	}
	view, err := texture.CreateView(nil)
	if err != nil {
		texture.Release()
		return nil, nil, err
	}
	return texture, view, nil
}

// Device returns the logical device for resource creation.
func (c *Connection) Device() *wgpu.Device {
	return c.device
}

// Queue returns the command queue.
func (c *Connection) Queue() *wgpu.Queue {
	return c.queue
}

// Surface returns the presentable surface.
func (c *Connection) Surface() *wgpu.Surface {
	return c.surface
}

// SurfaceConfig returns a copy of the current surface configuration. Its
// width and height always equal the last-known window client size.
func (c *Connection) SurfaceConfig() wgpu.SurfaceConfiguration {
	return c.surfaceConfig
}

// Size returns the current draw texture size in pixels.
func (c *Connection) Size() (width, height int) {
	return c.width, c.height
}

// Release tears down the connection. The owning application calls this once,
// after all registered GPU objects have been released.
func (c *Connection) Release() {
	if c.queue != nil {
		c.queue.Release()
		c.queue = nil
	}
	if c.device != nil {
		c.device.Release()
		c.device = nil
	}
	if c.adapter != nil {
		c.adapter.Release()
		c.adapter = nil
	}
	if c.surface != nil {
		c.surface.Release()
		c.surface = nil
	}
	if c.instance != nil {
		c.instance.Release()
		c.instance = nil
	}
}
