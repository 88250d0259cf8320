package gpu_test

import (
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/debugdraw/engine/core"
	"github.com/spaghettifunk/debugdraw/engine/renderer/gpu"
	"github.com/spaghettifunk/debugdraw/engine/renderer/metadata"
	"github.com/spaghettifunk/debugdraw/engine/renderer/software"
)

func TestMain(m *testing.M) {
	core.SetLogOutput(io.Discard)
	os.Exit(m.Run())
}

func newBackend(t *testing.T) *software.Backend {
	t.Helper()
	b := software.New()
	require.NoError(t, b.Initialize(metadata.RendererBackendConfig{ApplicationName: t.Name(), QueryLatency: 1}))
	return b
}

func TestReleaseThenRewrap(t *testing.T) {
	b := newBackend(t)

	q, err := gpu.NewQuery(b, metadata.QueryTargetPrimitivesGenerated)
	require.NoError(t, err)
	assert.True(t, q.Owned())
	assert.Equal(t, metadata.ObjectFlagDeleteOnDestruction|metadata.ObjectFlagCreated, q.Flags())

	id := q.Release()
	assert.NotEqual(t, metadata.InvalidID, id)
	assert.Equal(t, metadata.InvalidID, q.ID())
	assert.False(t, q.Owned())
	assert.Equal(t, metadata.InvalidID, q.Release())

	wrapped := gpu.WrapQuery(b, id, metadata.QueryTargetPrimitivesGenerated, metadata.ObjectFlagDeleteOnDestruction)
	assert.Equal(t, id, wrapped.ID())

	require.NoError(t, q.Destroy())
	require.NoError(t, wrapped.Destroy())
	require.NoError(t, wrapped.Destroy())
	assert.Zero(t, b.Stats().InvalidDeletes)
	assert.Zero(t, b.LiveObjects())
}

func TestBorrowedObjectIsNotDeleted(t *testing.T) {
	b := newBackend(t)
	id, err := b.CreateBuffer()
	require.NoError(t, err)

	borrowed := gpu.WrapBuffer(b, id, 0)
	assert.False(t, borrowed.Owned())
	require.NoError(t, borrowed.Destroy())
	assert.Equal(t, 1, b.LiveObjects())

	require.NoError(t, b.DeleteBuffer(id))
}

func TestReleasedObjectRejectsUse(t *testing.T) {
	b := newBackend(t)
	buf, err := gpu.NewBuffer(b)
	require.NoError(t, err)
	id := buf.Release()

	assert.ErrorIs(t, buf.SetEmpty(4, metadata.BufferUsageStaticDraw), core.ErrObjectReleased)
	_, err = buf.Data()
	assert.ErrorIs(t, err, core.ErrObjectReleased)

	require.NoError(t, b.DeleteBuffer(id))
}

func TestBufferRoundTrip(t *testing.T) {
	b := newBackend(t)
	buf, err := gpu.NewBuffer(b)
	require.NoError(t, err)
	defer buf.Destroy()

	require.NoError(t, buf.SetEmpty(16, metadata.BufferUsageStaticRead))
	assert.Equal(t, 16, buf.Size())
	floats, err := buf.Floats()
	require.NoError(t, err)
	assert.Equal(t, []float32{0, 0, 0, 0}, floats)
}

func TestRunningQueryIsNotReleased(t *testing.T) {
	b := newBackend(t)
	q, err := gpu.NewQuery(b, metadata.QueryTargetPrimitivesGenerated)
	require.NoError(t, err)

	require.NoError(t, q.Begin())
	assert.Equal(t, metadata.InvalidID, q.Release())
	assert.True(t, q.Owned())
	assert.Equal(t, metadata.QueryStateRunning, q.State())

	require.NoError(t, q.End())
	id := q.Release()
	require.NotEqual(t, metadata.InvalidID, id)
	assert.Equal(t, metadata.QueryStateIdle, q.State())

	wrapped := gpu.WrapQuery(b, id, metadata.QueryTargetPrimitivesGenerated, metadata.ObjectFlagDeleteOnDestruction)
	assert.Equal(t, metadata.QueryStateIdle, wrapped.State())
	require.NoError(t, wrapped.Begin())
	require.NoError(t, wrapped.End())
	require.NoError(t, wrapped.Destroy())
	assert.Zero(t, b.Stats().InvalidDeletes)
}

func TestActiveTransformFeedbackIsNotReleased(t *testing.T) {
	b := newBackend(t)
	output, err := gpu.NewBuffer(b)
	require.NoError(t, err)
	defer output.Destroy()
	require.NoError(t, output.SetEmpty(64, metadata.BufferUsageStaticRead))

	xfb, err := gpu.NewTransformFeedback(b)
	require.NoError(t, err)
	require.NoError(t, xfb.AttachBuffer(0, output))
	require.NoError(t, xfb.Begin(metadata.PrimitivePoints))

	assert.Equal(t, metadata.InvalidID, xfb.Release())
	assert.True(t, xfb.Owned())

	require.NoError(t, xfb.End())
	id := xfb.Release()
	require.NotEqual(t, metadata.InvalidID, id)
	assert.Nil(t, xfb.Buffer(0))
	require.NoError(t, b.DeleteTransformFeedback(id))
}
