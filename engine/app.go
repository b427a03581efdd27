package engine

import (
	"fmt"

	"github.com/FloralSoda/heatwave/engine/gpu"
	"github.com/FloralSoda/heatwave/engine/gpu/pipeline"
	"github.com/FloralSoda/heatwave/engine/window"
	"github.com/cogentcore/webgpu/wgpu"
	"go.uber.org/zap"
)

// app is the implementation of the App interface.
// Owns the window, the GPU connection, the shared pipeline layout, and the
// handle registries for every GPU object the application creates.
type app struct {
	name string

	window        window.Window
	windowOptions []window.WindowBuilderOption

	gpuConfig            gpu.Config
	bindGroupLayoutDescs []wgpu.BindGroupLayoutDescriptor

	conn             *gpu.Connection
	bindGroupLayouts []*wgpu.BindGroupLayout
	layout           *wgpu.PipelineLayout
	defaults         pipeline.Defaults

	buffers          gpu.Registry[gpu.BufferHandle, *wgpu.Buffer]
	renderPipelines  gpu.Registry[gpu.RenderPipelineHandle, *wgpu.RenderPipeline]
	computePipelines gpu.Registry[gpu.ComputePipelineHandle, *wgpu.ComputePipeline]

	skybox wgpu.Color

	log       *zap.Logger
	profiling bool
}

// App owns the window, the GPU connection, and every GPU object created
// through it. All methods must be called from the OS event goroutine; the
// user-logic goroutine only ever sees handles and the events delivered over
// the bridge.
type App interface {
	// Window returns the window the application presents to.
	//
	// Returns:
	//   - window.Window: the window instance
	Window() window.Window

	// Connection returns the GPU connection.
	//
	// Returns:
	//   - *gpu.Connection: the established connection
	Connection() *gpu.Connection

	// PipelineDefaults returns the substitution values applied to pipeline
	// descriptions: the shared layout and the surface format.
	//
	// Returns:
	//   - pipeline.Defaults: the application-wide pipeline defaults
	PipelineDefaults() pipeline.Defaults

	// BindGroupLayout returns the bind group layout created for the given
	// group index of the shared pipeline layout.
	//
	// Parameters:
	//   - index: the bind group index, in the order configured at startup
	//
	// Returns:
	//   - *wgpu.BindGroupLayout: the layout at that index
	//   - bool: false if no layout was configured at that index
	BindGroupLayout(index int) (*wgpu.BindGroupLayout, bool)

	// Skybox returns the clear color used for render passes that clear to
	// the background.
	//
	// Returns:
	//   - wgpu.Color: the current clear color
	Skybox() wgpu.Color

	// SetSkybox replaces the clear color.
	//
	// Parameters:
	//   - color: the new clear color
	SetSkybox(color wgpu.Color)

	// AddBuffer creates a buffer on the device and registers it.
	//
	// Parameters:
	//   - desc: the full buffer descriptor
	//
	// Returns:
	//   - gpu.BufferHandle: the handle under which the buffer is registered
	//   - error: error if buffer creation fails
	AddBuffer(desc *wgpu.BufferDescriptor) (gpu.BufferHandle, error)

	// AddBufferInit creates a buffer sized to the given contents, uploads
	// them through the queue, and registers it. CopyDst usage is added
	// implicitly for the upload.
	//
	// Parameters:
	//   - label: debug label for the buffer
	//   - usage: buffer usage flags
	//   - contents: initial contents; the buffer size equals len(contents)
	//
	// Returns:
	//   - gpu.BufferHandle: the handle under which the buffer is registered
	//   - error: error if creation or upload fails
	AddBufferInit(label string, usage wgpu.BufferUsage, contents []byte) (gpu.BufferHandle, error)

	// AddRenderPipeline completes a render description against the
	// application defaults, creates the pipeline, and registers it.
	//
	// Parameters:
	//   - desc: the partial render pipeline description
	//
	// Returns:
	//   - gpu.RenderPipelineHandle: the handle under which the pipeline is registered
	//   - error: error if the description is invalid or creation fails
	AddRenderPipeline(desc pipeline.RenderDescriptor) (gpu.RenderPipelineHandle, error)

	// AddComputePipeline completes a compute description against the
	// application defaults, creates the pipeline, and registers it.
	//
	// Parameters:
	//   - desc: the partial compute pipeline description
	//
	// Returns:
	//   - gpu.ComputePipelineHandle: the handle under which the pipeline is registered
	//   - error: error if the description is invalid or creation fails
	AddComputePipeline(desc pipeline.ComputeDescriptor) (gpu.ComputePipelineHandle, error)

	// Buffer resolves a buffer handle.
	//
	// Parameters:
	//   - h: the handle to resolve
	//
	// Returns:
	//   - *wgpu.Buffer: the registered buffer
	//   - bool: false if the handle was never issued
	Buffer(h gpu.BufferHandle) (*wgpu.Buffer, bool)

	// RenderPipeline resolves a render pipeline handle.
	//
	// Parameters:
	//   - h: the handle to resolve
	//
	// Returns:
	//   - *wgpu.RenderPipeline: the registered pipeline
	//   - bool: false if the handle was never issued
	RenderPipeline(h gpu.RenderPipelineHandle) (*wgpu.RenderPipeline, bool)

	// ComputePipeline resolves a compute pipeline handle.
	//
	// Parameters:
	//   - h: the handle to resolve
	//
	// Returns:
	//   - *wgpu.ComputePipeline: the registered pipeline
	//   - bool: false if the handle was never issued
	ComputePipeline(h gpu.ComputePipelineHandle) (*wgpu.ComputePipeline, bool)

	// ProfilingEnabled reports whether per-second frame statistics were
	// requested via WithProfiling.
	//
	// Returns:
	//   - bool: true if profiling output is enabled
	ProfilingEnabled() bool

	// Release tears down every registered GPU object, the shared layout, the
	// connection, and finally the window. Called once, after the user side
	// acknowledged the close.
	//
	// Returns:
	//   - error: error if window teardown fails
	Release() error
}

var _ App = &app{}

// NewApp creates the application: the window, the GPU connection bound to
// it, and the shared pipeline layout built from the configured bind group
// layouts.
//
// Parameters:
//   - options: functional options for application configuration
//
// Returns:
//   - App: the constructed application
//   - error: error if window creation, GPU connection, or layout creation fails
func NewApp(options ...AppBuilderOption) (App, error) {
	a := &app{
		name: "Heatwave App",
		gpuConfig: gpu.Config{
			PowerPreference: wgpu.PowerPreferenceHighPerformance,
		},
		skybox: wgpu.Color{R: 0.5, G: 0.5, B: 0.5, A: 1.0},
		log:    zap.NewNop(),
	}
	for _, opt := range options {
		opt(a)
	}

	if a.window == nil {
		opts := append([]window.WindowBuilderOption{window.WithTitle(a.name)}, a.windowOptions...)
		win, err := window.NewWindow(opts...)
		if err != nil {
			return nil, fmt.Errorf("creating window: %w", err)
		}
		a.window = win
	}

	conn, err := gpu.Connect(a.window, a.gpuConfig, a.log)
	if err != nil {
		_ = a.window.Close()
		return nil, err
	}
	a.conn = conn

	for i := range a.bindGroupLayoutDescs {
		bgl, err := conn.Device().CreateBindGroupLayout(&a.bindGroupLayoutDescs[i])
		if err != nil {
			a.releaseGPU()
			_ = a.window.Close()
			return nil, fmt.Errorf("creating bind group layout %d: %w", i, err)
		}
		a.bindGroupLayouts = append(a.bindGroupLayouts, bgl)
	}

	layout, err := conn.Device().CreatePipelineLayout(&wgpu.PipelineLayoutDescriptor{
		Label:            "Heatwave Pipeline Layout",
		BindGroupLayouts: a.bindGroupLayouts,
	})
	if err != nil {
		a.releaseGPU()
		_ = a.window.Close()
		return nil, fmt.Errorf("creating pipeline layout: %w", err)
	}
	a.layout = layout
	a.defaults = pipeline.Defaults{
		Layout:        layout,
		SurfaceFormat: conn.SurfaceConfig().Format,
	}

	return a, nil
}

func (a *app) Window() window.Window {
	return a.window
}

func (a *app) Connection() *gpu.Connection {
	return a.conn
}

func (a *app) PipelineDefaults() pipeline.Defaults {
	return a.defaults
}

func (a *app) BindGroupLayout(index int) (*wgpu.BindGroupLayout, bool) {
	if index < 0 || index >= len(a.bindGroupLayouts) {
		return nil, false
	}
	return a.bindGroupLayouts[index], true
}

func (a *app) Skybox() wgpu.Color {
	return a.skybox
}

func (a *app) SetSkybox(color wgpu.Color) {
	a.skybox = color
}

func (a *app) AddBuffer(desc *wgpu.BufferDescriptor) (gpu.BufferHandle, error) {
	buf, err := a.conn.Device().CreateBuffer(desc)
	if err != nil {
		return 0, err
	}
	h := a.buffers.Add(buf)
	a.log.Debug("buffer registered",
		zap.Uint64("handle", uint64(h)),
		zap.String("label", desc.Label))
	return h, nil
}

func (a *app) AddBufferInit(label string, usage wgpu.BufferUsage, contents []byte) (gpu.BufferHandle, error) {
	buf, err := a.conn.Device().CreateBuffer(&wgpu.BufferDescriptor{
		Label: label,
		Size:  uint64(len(contents)),
		Usage: usage | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		return 0, err
	}
	if len(contents) > 0 {
		if err := a.conn.Queue().WriteBuffer(buf, 0, contents); err != nil {
			buf.Release()
			return 0, fmt.Errorf("uploading %q contents: %w", label, err)
		}
	}
	h := a.buffers.Add(buf)
	a.log.Debug("buffer registered",
		zap.Uint64("handle", uint64(h)),
		zap.String("label", label),
		zap.Int("size", len(contents)))
	return h, nil
}

func (a *app) AddRenderPipeline(desc pipeline.RenderDescriptor) (gpu.RenderPipelineHandle, error) {
	p, err := pipeline.BuildRender(a.conn.Device(), desc, a.defaults)
	if err != nil {
		return 0, err
	}
	h := a.renderPipelines.Add(p)
	a.log.Debug("render pipeline registered",
		zap.Uint64("handle", uint64(h)),
		zap.String("name", desc.Name))
	return h, nil
}

func (a *app) AddComputePipeline(desc pipeline.ComputeDescriptor) (gpu.ComputePipelineHandle, error) {
	p, err := pipeline.BuildCompute(a.conn.Device(), desc, a.defaults)
	if err != nil {
		return 0, err
	}
	h := a.computePipelines.Add(p)
	a.log.Debug("compute pipeline registered",
		zap.Uint64("handle", uint64(h)),
		zap.String("name", desc.Name))
	return h, nil
}

func (a *app) Buffer(h gpu.BufferHandle) (*wgpu.Buffer, bool) {
	return a.buffers.Get(h)
}

func (a *app) RenderPipeline(h gpu.RenderPipelineHandle) (*wgpu.RenderPipeline, bool) {
	return a.renderPipelines.Get(h)
}

func (a *app) ComputePipeline(h gpu.ComputePipelineHandle) (*wgpu.ComputePipeline, bool) {
	return a.computePipelines.Get(h)
}

func (a *app) ProfilingEnabled() bool {
	return a.profiling
}

func (a *app) Release() error {
	a.releaseGPU()
	err := a.window.Close()
	a.log.Info("application released")
	return err
}

// releaseGPU tears down GPU objects in reverse dependency order: pipelines,
// buffers, the shared layout, bind group layouts, then the connection.
func (a *app) releaseGPU() {
	a.computePipelines.Each(func(_ gpu.ComputePipelineHandle, p *wgpu.ComputePipeline) {
		p.Release()
	})
	a.renderPipelines.Each(func(_ gpu.RenderPipelineHandle, p *wgpu.RenderPipeline) {
		p.Release()
	})
	a.buffers.Each(func(_ gpu.BufferHandle, b *wgpu.Buffer) {
		b.Release()
	})
	if a.layout != nil {
		a.layout.Release()
		a.layout = nil
	}
	for _, bgl := range a.bindGroupLayouts {
		bgl.Release()
	}
	a.bindGroupLayouts = nil
	if a.conn != nil {
		a.conn.Release()
	}
}
