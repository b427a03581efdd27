// Package pipeline turns partially specified pipeline descriptions into
// complete WebGPU pipeline descriptors. Callers fill in only what their
// shaders need; everything left zero is substituted from the application-wide
// defaults so that every pipeline in an application agrees on layout, surface
// format, depth behavior, and sample count.
package pipeline

import (
	"errors"
	"fmt"

	"github.com/FloralSoda/heatwave/engine/gpu"
	"github.com/cogentcore/webgpu/wgpu"
)

var (
	// ErrMissingVertexModule means a render description has no vertex shader
	// module, which no substitution can repair.
	ErrMissingVertexModule = errors.New("pipeline: render description has no vertex shader module")

	// ErrMissingFragmentEntry means a fragment module was given without an
	// entry point name.
	ErrMissingFragmentEntry = errors.New("pipeline: fragment module given without an entry point")

	// ErrMissingComputeModule means a compute description has no shader
	// module.
	ErrMissingComputeModule = errors.New("pipeline: compute description has no shader module")

	// ErrMissingComputeEntry means a compute description has no entry point
	// name.
	ErrMissingComputeEntry = errors.New("pipeline: compute description has no entry point")
)

// Defaults carries the application-wide values substituted into descriptions
// that leave them unset. The owning application builds one Defaults at
// startup and reuses it for every pipeline.
type Defaults struct {
	// Layout is the shared pipeline layout substituted when a description
	// carries none of its own.
	Layout *wgpu.PipelineLayout

	// SurfaceFormat is the presentable surface's texture format, used to
	// synthesize a color target when a description specifies none.
	SurfaceFormat wgpu.TextureFormat
}

// RenderDescriptor describes a render pipeline. Vertex and VertexEntryPoint
// are required; every other field falls back to a default when zero.
type RenderDescriptor struct {
	// Name labels the pipeline for debugging tools.
	Name string

	// Vertex is the vertex shader module. Required.
	Vertex *wgpu.ShaderModule
	// VertexEntryPoint names the vertex entry function. Required.
	VertexEntryPoint string
	// VertexBuffers lay out the vertex buffer bindings consumed by the
	// vertex stage. May be empty for shaders that generate geometry.
	VertexBuffers []wgpu.VertexBufferLayout

	// Fragment is the fragment shader module. Nil produces a depth-only
	// pipeline with no fragment stage.
	Fragment *wgpu.ShaderModule
	// FragmentEntryPoint names the fragment entry function. Required when
	// Fragment is set.
	FragmentEntryPoint string

	// Layout overrides the shared pipeline layout when non-nil.
	Layout *wgpu.PipelineLayout

	// ColorTargets overrides the synthesized surface-format target when
	// non-empty. Ignored when Fragment is nil.
	ColorTargets []wgpu.ColorTargetState
}

// ComputeDescriptor describes a compute pipeline. Module and EntryPoint are
// required; Layout falls back to the shared layout when nil.
type ComputeDescriptor struct {
	// Name labels the pipeline for debugging tools.
	Name string

	// Module is the compute shader module. Required.
	Module *wgpu.ShaderModule
	// EntryPoint names the compute entry function. Required.
	EntryPoint string

	// Layout overrides the shared pipeline layout when non-nil.
	Layout *wgpu.PipelineLayout
}

// blendReplace is the fixed blend state of synthesized color targets: source
// fully replaces destination.
var blendReplace = wgpu.BlendState{
	Color: wgpu.BlendComponent{
		SrcFactor: wgpu.BlendFactorOne,
		DstFactor: wgpu.BlendFactorZero,
		Operation: wgpu.BlendOperationAdd,
	},
	Alpha: wgpu.BlendComponent{
		SrcFactor: wgpu.BlendFactorOne,
		DstFactor: wgpu.BlendFactorZero,
		Operation: wgpu.BlendOperationAdd,
	},
}

// ResolveRender completes a render description into a full WebGPU render
// pipeline descriptor. Substitutions applied to zero fields:
//   - Layout: the shared layout from defaults
//   - ColorTargets: a single target in the surface format with replace
//     blending and all color channels writable
//
// Fixed state shared by every render pipeline: triangle-list topology,
// counter-clockwise front faces with back-face culling, depth testing
// against the engine depth format with the less-than comparison, and the
// engine-wide multisample count.
//
// Parameters:
//   - desc: the partial render description
//   - defaults: the application-wide substitution values
//
// Returns:
//   - *wgpu.RenderPipelineDescriptor: the completed descriptor
//   - error: ErrMissingVertexModule or ErrMissingFragmentEntry
func ResolveRender(desc RenderDescriptor, defaults Defaults) (*wgpu.RenderPipelineDescriptor, error) {
	if desc.Vertex == nil {
		return nil, fmt.Errorf("%w: %q", ErrMissingVertexModule, desc.Name)
	}
	if desc.VertexEntryPoint == "" {
		return nil, fmt.Errorf("%w: %q has no vertex entry point", ErrMissingVertexModule, desc.Name)
	}

	layout := desc.Layout
	if layout == nil {
		layout = defaults.Layout
	}

	var fragment *wgpu.FragmentState
	if desc.Fragment != nil {
		if desc.FragmentEntryPoint == "" {
			return nil, fmt.Errorf("%w: %q", ErrMissingFragmentEntry, desc.Name)
		}
		targets := desc.ColorTargets
		if len(targets) == 0 {
			targets = []wgpu.ColorTargetState{
				{
					Format:    defaults.SurfaceFormat,
					Blend:     &blendReplace,
					WriteMask: wgpu.ColorWriteMaskAll,
				},
			}
		}
		fragment = &wgpu.FragmentState{
			Module:     desc.Fragment,
			EntryPoint: desc.FragmentEntryPoint,
			Targets:    targets,
		}
	}

	return &wgpu.RenderPipelineDescriptor{
		Label:  desc.Name,
		Layout: layout,
		Vertex: wgpu.VertexState{
			Module:     desc.Vertex,
			EntryPoint: desc.VertexEntryPoint,
			Buffers:    desc.VertexBuffers,
		},
		Fragment: fragment,
		Primitive: wgpu.PrimitiveState{
			Topology:  wgpu.PrimitiveTopologyTriangleList,
			FrontFace: wgpu.FrontFaceCCW,
			CullMode:  wgpu.CullModeBack,
		},
		Multisample: wgpu.MultisampleState{
			Count: gpu.SampleCount,
			Mask:  0xFFFFFFFF,
		},
		DepthStencil: &wgpu.DepthStencilState{
			Format:            gpu.DepthFormat,
			DepthWriteEnabled: true,
			DepthCompare:      wgpu.CompareFunctionLess,
			StencilFront: wgpu.StencilFaceState{
				Compare: wgpu.CompareFunctionAlways,
			},
			StencilBack: wgpu.StencilFaceState{
				Compare: wgpu.CompareFunctionAlways,
			},
		},
	}, nil
}

// ResolveCompute completes a compute description into a full WebGPU compute
// pipeline descriptor. The only substitution is the shared layout when the
// description carries none of its own.
//
// Parameters:
//   - desc: the partial compute description
//   - defaults: the application-wide substitution values
//
// Returns:
//   - *wgpu.ComputePipelineDescriptor: the completed descriptor
//   - error: ErrMissingComputeModule or ErrMissingComputeEntry
func ResolveCompute(desc ComputeDescriptor, defaults Defaults) (*wgpu.ComputePipelineDescriptor, error) {
	if desc.Module == nil {
		return nil, fmt.Errorf("%w: %q", ErrMissingComputeModule, desc.Name)
	}
	if desc.EntryPoint == "" {
		return nil, fmt.Errorf("%w: %q", ErrMissingComputeEntry, desc.Name)
	}

	layout := desc.Layout
	if layout == nil {
		layout = defaults.Layout
	}

	return &wgpu.ComputePipelineDescriptor{
		Label:  desc.Name,
		Layout: layout,
		Compute: wgpu.ProgrammableStageDescriptor{
			Module:     desc.Module,
			EntryPoint: desc.EntryPoint,
		},
	}, nil
}

// BuildRender resolves a render description and creates the pipeline on the
// given device.
func BuildRender(device *wgpu.Device, desc RenderDescriptor, defaults Defaults) (*wgpu.RenderPipeline, error) {
	resolved, err := ResolveRender(desc, defaults)
	if err != nil {
		return nil, err
	}
	return device.CreateRenderPipeline(resolved)
}

// BuildCompute resolves a compute description and creates the pipeline on the
// given device.
func BuildCompute(device *wgpu.Device, desc ComputeDescriptor, defaults Defaults) (*wgpu.ComputePipeline, error) {
	resolved, err := ResolveCompute(desc, defaults)
	if err != nil {
		return nil, err
	}
	return device.CreateComputePipeline(resolved)
}
