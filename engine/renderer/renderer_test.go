package renderer

import (
	"io"
	"os"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/debugdraw/engine/core"
	"github.com/spaghettifunk/debugdraw/engine/renderer/metadata"
	"github.com/spaghettifunk/debugdraw/engine/renderer/software"
)

func TestMain(m *testing.M) {
	core.SetLogOutput(io.Discard)
	os.Exit(m.Run())
}

func TestParseRendererType(t *testing.T) {
	for name, expected := range map[string]RendererType{"": Software, "software": Software, "OpenGL": OpenGL} {
		got, err := ParseRendererType(name)
		require.NoError(t, err)
		assert.Equal(t, expected, got)
	}
	_, err := ParseRendererType("vulkan")
	assert.ErrorIs(t, err, core.ErrUnknownBackend)
}

func TestUnknownRendererType(t *testing.T) {
	_, err := New(RendererType(42), metadata.RendererBackendConfig{})
	assert.ErrorIs(t, err, core.ErrUnknownBackend)
}

func TestDrawFrameCountsPrimitives(t *testing.T) {
	r, err := New(Software, metadata.RendererBackendConfig{ApplicationName: "frame", QueryLatency: 2})
	require.NoError(t, err)
	defer r.Shutdown()

	for frame := 0; frame < 3; frame++ {
		primitives, err := r.DrawFrame(func() error {
			return r.Draw(&metadata.DrawCall{
				Primitive:      metadata.PrimitiveLines,
				Count:          8,
				Transformation: mgl32.Ident4(),
			})
		})
		require.NoError(t, err)
		assert.Equal(t, uint64(4), primitives)
	}
	// every frame read its result before the driver finished
	assert.Equal(t, 3, r.Backend().(*software.Backend).Stats().Stalls)
}

func TestRendererObjects(t *testing.T) {
	r, err := New(Software, metadata.RendererBackendConfig{})
	require.NoError(t, err)

	q, err := r.NewQuery(metadata.QueryTargetTransformFeedbackPrimitivesWritten)
	require.NoError(t, err)
	b, err := r.NewBuffer()
	require.NoError(t, err)
	xfb, err := r.NewTransformFeedback()
	require.NoError(t, err)

	backend := r.Backend().(*software.Backend)
	assert.Equal(t, 4, backend.LiveObjects())
	require.NoError(t, q.Destroy())
	require.NoError(t, b.Destroy())
	require.NoError(t, xfb.Destroy())
	require.NoError(t, r.Shutdown())
	assert.Zero(t, backend.LiveObjects())
}
