package engine

import (
	"github.com/FloralSoda/heatwave/engine/gpu"
	"github.com/cogentcore/webgpu/wgpu"
)

// RenderHelper is handed to Presenter.Render each frame. It resolves handles
// to live GPU objects and exposes the connection pieces a frame needs, so
// render code never holds GPU pointers across frames.
type RenderHelper struct {
	app App
}

// Connection returns the GPU connection.
func (h *RenderHelper) Connection() *gpu.Connection {
	return h.app.Connection()
}

// Device returns the logical device.
func (h *RenderHelper) Device() *wgpu.Device {
	return h.app.Connection().Device()
}

// Queue returns the command queue.
func (h *RenderHelper) Queue() *wgpu.Queue {
	return h.app.Connection().Queue()
}

// Skybox returns the clear color for background passes.
func (h *RenderHelper) Skybox() wgpu.Color {
	return h.app.Skybox()
}

// Buffer resolves a buffer handle.
//
// Parameters:
//   - handle: the handle to resolve
//
// Returns:
//   - *wgpu.Buffer: the registered buffer
//   - bool: false if the handle was never issued
func (h *RenderHelper) Buffer(handle gpu.BufferHandle) (*wgpu.Buffer, bool) {
	return h.app.Buffer(handle)
}

// MustBuffer resolves a buffer handle and panics if it was never issued.
func (h *RenderHelper) MustBuffer(handle gpu.BufferHandle) *wgpu.Buffer {
	buf, ok := h.app.Buffer(handle)
	if !ok {
		panic("engine: unknown buffer handle")
	}
	return buf
}

// RenderPipeline resolves a render pipeline handle.
//
// Parameters:
//   - handle: the handle to resolve
//
// Returns:
//   - *wgpu.RenderPipeline: the registered pipeline
//   - bool: false if the handle was never issued
func (h *RenderHelper) RenderPipeline(handle gpu.RenderPipelineHandle) (*wgpu.RenderPipeline, bool) {
	return h.app.RenderPipeline(handle)
}

// MustRenderPipeline resolves a render pipeline handle and panics if it was
// never issued.
func (h *RenderHelper) MustRenderPipeline(handle gpu.RenderPipelineHandle) *wgpu.RenderPipeline {
	p, ok := h.app.RenderPipeline(handle)
	if !ok {
		panic("engine: unknown render pipeline handle")
	}
	return p
}

// ComputePipeline resolves a compute pipeline handle.
//
// Parameters:
//   - handle: the handle to resolve
//
// Returns:
//   - *wgpu.ComputePipeline: the registered pipeline
//   - bool: false if the handle was never issued
func (h *RenderHelper) ComputePipeline(handle gpu.ComputePipelineHandle) (*wgpu.ComputePipeline, bool) {
	return h.app.ComputePipeline(handle)
}

// MustComputePipeline resolves a compute pipeline handle and panics if it
// was never issued.
func (h *RenderHelper) MustComputePipeline(handle gpu.ComputePipelineHandle) *wgpu.ComputePipeline {
	p, ok := h.app.ComputePipeline(handle)
	if !ok {
		panic("engine: unknown compute pipeline handle")
	}
	return p
}
