package gpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryHandlesAreMonotonic(t *testing.T) {
	var r Registry[BufferHandle, string]

	h0 := r.Add("vertices")
	h1 := r.Add("indices")
	h2 := r.Add("uniforms")

	assert.Equal(t, BufferHandle(0), h0)
	assert.Equal(t, BufferHandle(1), h1)
	assert.Equal(t, BufferHandle(2), h2)
	assert.Equal(t, 3, r.Len())
}

func TestRegistryGet(t *testing.T) {
	var r Registry[RenderPipelineHandle, string]

	h0 := r.Add("mesh pipeline")
	h1 := r.Add("skybox pipeline")

	got, ok := r.Get(h0)
	require.True(t, ok)
	assert.Equal(t, "mesh pipeline", got)

	got, ok = r.Get(h1)
	require.True(t, ok)
	assert.Equal(t, "skybox pipeline", got)

	// Handle 2 was never issued.
	got, ok = r.Get(RenderPipelineHandle(2))
	assert.False(t, ok)
	assert.Zero(t, got)
}

func TestRegistryGetEmpty(t *testing.T) {
	var r Registry[ComputePipelineHandle, string]

	_, ok := r.Get(ComputePipelineHandle(0))
	assert.False(t, ok)
}

func TestRegistryMustGetPanicsOnUnissuedHandle(t *testing.T) {
	var r Registry[BufferHandle, int]
	r.Add(7)

	assert.Equal(t, 7, r.MustGet(BufferHandle(0)))
	assert.Panics(t, func() {
		r.MustGet(BufferHandle(1))
	})
}

func TestRegistryEachVisitsInHandleOrder(t *testing.T) {
	var r Registry[BufferHandle, string]
	r.Add("a")
	r.Add("b")
	r.Add("c")

	var handles []BufferHandle
	var values []string
	r.Each(func(h BufferHandle, obj string) {
		handles = append(handles, h)
		values = append(values, obj)
	})

	assert.Equal(t, []BufferHandle{0, 1, 2}, handles)
	assert.Equal(t, []string{"a", "b", "c"}, values)
}
