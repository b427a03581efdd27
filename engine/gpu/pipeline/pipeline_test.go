package pipeline

import (
	"testing"

	"github.com/FloralSoda/heatwave/engine/gpu"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The resolve functions never dereference the module and layout pointers, so
// empty values stand in for real GPU objects and identity checks verify the
// substitution logic.

func TestResolveRenderSubstitutesDefaults(t *testing.T) {
	sharedLayout := &wgpu.PipelineLayout{}
	module := &wgpu.ShaderModule{}
	defaults := Defaults{Layout: sharedLayout, SurfaceFormat: wgpu.TextureFormatBGRA8UnormSrgb}

	resolved, err := ResolveRender(RenderDescriptor{
		Name:               "mesh",
		Vertex:             module,
		VertexEntryPoint:   "vs_main",
		Fragment:           module,
		FragmentEntryPoint: "fs_main",
	}, defaults)
	require.NoError(t, err)

	assert.Equal(t, "mesh", resolved.Label)
	assert.Same(t, sharedLayout, resolved.Layout)
	assert.Same(t, module, resolved.Vertex.Module)
	assert.Equal(t, "vs_main", resolved.Vertex.EntryPoint)

	require.NotNil(t, resolved.Fragment)
	require.Len(t, resolved.Fragment.Targets, 1)
	target := resolved.Fragment.Targets[0]
	assert.Equal(t, wgpu.TextureFormatBGRA8UnormSrgb, target.Format)
	assert.Equal(t, wgpu.ColorWriteMaskAll, target.WriteMask)
	require.NotNil(t, target.Blend)
	assert.Equal(t, wgpu.BlendFactorOne, target.Blend.Color.SrcFactor)
	assert.Equal(t, wgpu.BlendFactorZero, target.Blend.Color.DstFactor)

	assert.Equal(t, wgpu.PrimitiveTopologyTriangleList, resolved.Primitive.Topology)
	assert.Equal(t, wgpu.FrontFaceCCW, resolved.Primitive.FrontFace)
	assert.Equal(t, wgpu.CullModeBack, resolved.Primitive.CullMode)
	assert.Equal(t, uint32(gpu.SampleCount), resolved.Multisample.Count)

	require.NotNil(t, resolved.DepthStencil)
	assert.Equal(t, gpu.DepthFormat, resolved.DepthStencil.Format)
	assert.True(t, resolved.DepthStencil.DepthWriteEnabled)
	assert.Equal(t, wgpu.CompareFunctionLess, resolved.DepthStencil.DepthCompare)
}

func TestResolveRenderKeepsExplicitValues(t *testing.T) {
	sharedLayout := &wgpu.PipelineLayout{}
	ownLayout := &wgpu.PipelineLayout{}
	module := &wgpu.ShaderModule{}
	ownTargets := []wgpu.ColorTargetState{
		{Format: wgpu.TextureFormatRGBA16Float, WriteMask: wgpu.ColorWriteMaskAll},
		{Format: wgpu.TextureFormatRGBA8Unorm, WriteMask: wgpu.ColorWriteMaskAll},
	}

	resolved, err := ResolveRender(RenderDescriptor{
		Name:               "gbuffer",
		Vertex:             module,
		VertexEntryPoint:   "vs_main",
		Fragment:           module,
		FragmentEntryPoint: "fs_main",
		Layout:             ownLayout,
		ColorTargets:       ownTargets,
	}, Defaults{Layout: sharedLayout, SurfaceFormat: wgpu.TextureFormatBGRA8UnormSrgb})
	require.NoError(t, err)

	assert.Same(t, ownLayout, resolved.Layout)
	assert.Equal(t, ownTargets, resolved.Fragment.Targets)
}

func TestResolveRenderDepthOnly(t *testing.T) {
	module := &wgpu.ShaderModule{}

	resolved, err := ResolveRender(RenderDescriptor{
		Name:             "shadow",
		Vertex:           module,
		VertexEntryPoint: "vs_main",
	}, Defaults{Layout: &wgpu.PipelineLayout{}})
	require.NoError(t, err)

	assert.Nil(t, resolved.Fragment)
	require.NotNil(t, resolved.DepthStencil)
}

func TestResolveRenderErrors(t *testing.T) {
	module := &wgpu.ShaderModule{}
	defaults := Defaults{Layout: &wgpu.PipelineLayout{}}

	_, err := ResolveRender(RenderDescriptor{Name: "no vertex", VertexEntryPoint: "vs_main"}, defaults)
	assert.ErrorIs(t, err, ErrMissingVertexModule)

	_, err = ResolveRender(RenderDescriptor{Name: "no entry", Vertex: module}, defaults)
	assert.ErrorIs(t, err, ErrMissingVertexModule)

	_, err = ResolveRender(RenderDescriptor{
		Name:             "fragment without entry",
		Vertex:           module,
		VertexEntryPoint: "vs_main",
		Fragment:         module,
	}, defaults)
	assert.ErrorIs(t, err, ErrMissingFragmentEntry)
}

func TestResolveCompute(t *testing.T) {
	sharedLayout := &wgpu.PipelineLayout{}
	ownLayout := &wgpu.PipelineLayout{}
	module := &wgpu.ShaderModule{}
	defaults := Defaults{Layout: sharedLayout}

	resolved, err := ResolveCompute(ComputeDescriptor{
		Name:       "particles",
		Module:     module,
		EntryPoint: "cs_main",
	}, defaults)
	require.NoError(t, err)
	assert.Same(t, sharedLayout, resolved.Layout)
	assert.Same(t, module, resolved.Compute.Module)
	assert.Equal(t, "cs_main", resolved.Compute.EntryPoint)

	resolved, err = ResolveCompute(ComputeDescriptor{
		Name:       "particles",
		Module:     module,
		EntryPoint: "cs_main",
		Layout:     ownLayout,
	}, defaults)
	require.NoError(t, err)
	assert.Same(t, ownLayout, resolved.Layout)

	_, err = ResolveCompute(ComputeDescriptor{Name: "no module", EntryPoint: "cs_main"}, defaults)
	assert.ErrorIs(t, err, ErrMissingComputeModule)

	_, err = ResolveCompute(ComputeDescriptor{Name: "no entry", Module: module}, defaults)
	assert.ErrorIs(t, err, ErrMissingComputeEntry)
}
