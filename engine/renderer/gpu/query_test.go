package gpu_test

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/debugdraw/engine/core"
	"github.com/spaghettifunk/debugdraw/engine/renderer/gpu"
	"github.com/spaghettifunk/debugdraw/engine/renderer/metadata"
)

func nineVertices() *metadata.DrawCall {
	return &metadata.DrawCall{
		Primitive:      metadata.PrimitiveTriangles,
		Count:          9,
		Transformation: mgl32.Ident4(),
	}
}

func TestPrimitivesGenerated(t *testing.T) {
	b := newBackend(t)
	b.Enable(metadata.FeatureRasterizerDiscard)

	q, err := gpu.NewQuery(b, metadata.QueryTargetPrimitivesGenerated)
	require.NoError(t, err)
	defer q.Destroy()

	require.NoError(t, q.Begin())
	assert.Equal(t, metadata.QueryStateRunning, q.State())
	require.NoError(t, b.Draw(nineVertices()))
	require.NoError(t, q.End())

	availableBefore, err := q.ResultAvailable()
	require.NoError(t, err)
	count, err := q.Result()
	require.NoError(t, err)
	availableAfter, err := q.ResultAvailable()
	require.NoError(t, err)

	assert.False(t, availableBefore)
	assert.True(t, availableAfter)
	assert.Equal(t, uint64(3), count)
}

func TestTransformFeedbackPrimitivesWritten(t *testing.T) {
	b := newBackend(t)
	b.Enable(metadata.FeatureRasterizerDiscard)

	output, err := gpu.NewBuffer(b)
	require.NoError(t, err)
	defer output.Destroy()
	require.NoError(t, output.SetEmpty(9*4*4, metadata.BufferUsageStaticRead))

	xfb, err := gpu.NewTransformFeedback(b)
	require.NoError(t, err)
	defer xfb.Destroy()
	require.NoError(t, xfb.AttachBuffer(0, output))
	assert.Same(t, output, xfb.Buffer(0))

	q, err := gpu.NewQuery(b, metadata.QueryTargetTransformFeedbackPrimitivesWritten)
	require.NoError(t, err)
	defer q.Destroy()

	require.NoError(t, q.Begin())
	// not captured, must not be counted
	require.NoError(t, b.Draw(nineVertices()))

	require.NoError(t, xfb.Begin(metadata.PrimitiveTriangles))
	assert.True(t, xfb.Active())
	require.NoError(t, b.Draw(nineVertices()))
	require.NoError(t, xfb.End())
	require.NoError(t, q.End())

	count, err := q.Result()
	require.NoError(t, err)
	assert.Equal(t, uint64(3), count)
}

func TestQueryMisuseIsReported(t *testing.T) {
	b := newBackend(t)
	q, err := gpu.NewQuery(b, metadata.QueryTargetPrimitivesGenerated)
	require.NoError(t, err)
	defer q.Destroy()

	_, err = q.Result()
	assert.ErrorIs(t, err, core.ErrQueryNotEnded)
	_, err = q.ResultAvailable()
	assert.ErrorIs(t, err, core.ErrQueryNotEnded)
	assert.ErrorIs(t, q.End(), core.ErrQueryNotRunning)

	require.NoError(t, q.Begin())
	assert.ErrorIs(t, q.Begin(), core.ErrQueryRunning)
	_, err = q.Result()
	assert.ErrorIs(t, err, core.ErrQueryNotEnded)
	require.NoError(t, q.End())

	// an ended query can run again
	require.NoError(t, q.Begin())
	require.NoError(t, q.End())
}

func TestTryResult(t *testing.T) {
	b := newBackend(t)
	b.SetQueryLatency(2)
	q, err := gpu.NewQuery(b, metadata.QueryTargetPrimitivesGenerated)
	require.NoError(t, err)
	defer q.Destroy()

	require.NoError(t, q.Begin())
	require.NoError(t, b.Draw(nineVertices()))
	require.NoError(t, q.End())

	polls := 0
	for {
		count, ok, err := q.TryResult()
		require.NoError(t, err)
		polls++
		if ok {
			assert.Equal(t, uint64(3), count)
			break
		}
	}
	assert.Equal(t, 3, polls)
	assert.Zero(t, b.Stats().Stalls)
}

func TestReleasedQuery(t *testing.T) {
	b := newBackend(t)
	q, err := gpu.NewQuery(b, metadata.QueryTargetPrimitivesGenerated)
	require.NoError(t, err)
	id := q.Release()
	defer b.DeleteQuery(id)

	assert.ErrorIs(t, q.Begin(), core.ErrObjectReleased)
	_, err = q.Result()
	assert.ErrorIs(t, err, core.ErrObjectReleased)
}
