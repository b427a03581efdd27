package gpu

import (
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// headlessConnection builds a connection with surface configuration state but
// no live GPU objects, so resize bookkeeping can be exercised without a
// display or adapter.
func headlessConnection(width, height int) *Connection {
	return &Connection{
		surfaceConfig: wgpu.SurfaceConfiguration{
			Usage:       wgpu.TextureUsageRenderAttachment,
			Format:      wgpu.TextureFormatBGRA8UnormSrgb,
			Width:       uint32(width),
			Height:      uint32(height),
			PresentMode: wgpu.PresentModeFifo,
		},
		width:  width,
		height: height,
	}
}

func TestReconfigure(t *testing.T) {
	c := headlessConnection(800, 600)

	require.NoError(t, c.Reconfigure(1024, 768))

	w, h := c.Size()
	assert.Equal(t, 1024, w)
	assert.Equal(t, 768, h)

	cfg := c.SurfaceConfig()
	assert.Equal(t, uint32(1024), cfg.Width)
	assert.Equal(t, uint32(768), cfg.Height)
	assert.Equal(t, wgpu.PresentModeFifo, cfg.PresentMode)
}

func TestReconfigureRejectsZeroArea(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
	}{
		{name: "zero width", width: 0, height: 600},
		{name: "zero height", width: 800, height: 0},
		{name: "both zero", width: 0, height: 0},
		{name: "negative", width: -1, height: 600},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := headlessConnection(800, 600)

			err := c.Reconfigure(tt.width, tt.height)
			require.ErrorIs(t, err, ErrInvalidSize)

			// The stored configuration must be untouched.
			w, h := c.Size()
			assert.Equal(t, 800, w)
			assert.Equal(t, 600, h)
			assert.Equal(t, uint32(800), c.SurfaceConfig().Width)
			assert.Equal(t, uint32(600), c.SurfaceConfig().Height)
		})
	}
}

func TestPreferredSurfaceFormat(t *testing.T) {
	tests := []struct {
		name    string
		formats []wgpu.TextureFormat
		want    wgpu.TextureFormat
	}{
		{
			name:    "srgb first",
			formats: []wgpu.TextureFormat{wgpu.TextureFormatBGRA8UnormSrgb, wgpu.TextureFormatBGRA8Unorm},
			want:    wgpu.TextureFormatBGRA8UnormSrgb,
		},
		{
			name:    "srgb buried",
			formats: []wgpu.TextureFormat{wgpu.TextureFormatBGRA8Unorm, wgpu.TextureFormatRGBA8Unorm, wgpu.TextureFormatRGBA8UnormSrgb},
			want:    wgpu.TextureFormatRGBA8UnormSrgb,
		},
		{
			name:    "no srgb falls back to first",
			formats: []wgpu.TextureFormat{wgpu.TextureFormatRGBA16Float, wgpu.TextureFormatBGRA8Unorm},
			want:    wgpu.TextureFormatRGBA16Float,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, preferredSurfaceFormat(tt.formats))
		})
	}
}
