package testbed

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/debugdraw/engine"
	"github.com/spaghettifunk/debugdraw/engine/core"
)

func TestDemoRuns(t *testing.T) {
	core.SetLogOutput(io.Discard)
	config := engine.DefaultApplicationConfig()
	config.Width, config.Height = 64, 48
	config.Frames = 10

	e, err := engine.New(NewTestGame(config, "").Game)
	require.NoError(t, err)
	require.NoError(t, e.Initialize())
	defer e.Shutdown()

	require.NoError(t, e.Run(context.Background()))
	assert.Equal(t, uint64(10), e.Frames())
	// two boxes of 12 edges and an arrow of 5 segments per frame
	assert.Equal(t, float64(29), e.Metrics().Primitives())
	assert.Equal(t, 3, e.Scene().Drawables.Len())
}
