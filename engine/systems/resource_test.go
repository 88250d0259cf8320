package systems

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/debugdraw/engine/renderer/metadata"
)

func TestOptionStoreDefaultOnMiss(t *testing.T) {
	store := NewOptionStore(metadata.DefaultShapeRendererOptions())

	got := store.Get("unknown")
	assert.Equal(t, metadata.DefaultShapeRendererOptions(), got)
	_, ok := store.Lookup("unknown")
	assert.False(t, ok)
	assert.Zero(t, store.Len())
}

func TestOptionStoreRoundTrip(t *testing.T) {
	store := NewOptionStore(metadata.DefaultForceRendererOptions())
	red := metadata.DefaultForceRendererOptions().SetColor(mgl32.Vec4{1, 0, 0, 1}).SetSize(2)

	store.Set("gravity", red).Set("wind", metadata.DefaultForceRendererOptions())
	assert.Equal(t, red, store.Get("gravity"))
	assert.Equal(t, []string{"gravity", "wind"}, store.Keys())

	// values are snapshots, mutating one does not touch the store
	snapshot := store.Get("gravity")
	snapshot.Size = 10
	assert.Equal(t, float32(2), store.Get("gravity").Size)

	store.Remove("gravity")
	assert.Equal(t, metadata.DefaultForceRendererOptions(), store.Get("gravity"))
}

func TestOptionStoreSetDefault(t *testing.T) {
	store := NewOptionStore(metadata.DefaultShapeRendererOptions())
	blue := metadata.DefaultShapeRendererOptions().SetColor(mgl32.Vec4{0, 0, 1, 1})
	store.SetDefault(blue)
	assert.Equal(t, blue, store.Get("anything"))
	assert.Equal(t, blue, store.Default())
}

func TestResourceManagerApply(t *testing.T) {
	rm := NewResourceManager()
	size := float32(3)
	err := rm.Apply(metadata.RenderOptionsConfig{
		Shapes: map[string]metadata.ShapeOptionsConfig{
			"bounds":  {Color: "#ff0000"},
			"default": {Color: "#00ff0080"},
		},
		Forces: map[string]metadata.ForceOptionsConfig{
			"gravity": {Color: "#0000ff", Size: &size},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, mgl32.Vec4{1, 0, 0, 1}, rm.Shapes.Get("bounds").Color)
	assert.InDelta(t, 128.0/255, rm.Shapes.Get("missing").Color.W(), 1e-6)
	assert.Equal(t, float32(3), rm.Forces.Get("gravity").Size)
	assert.Equal(t, 1, rm.Shapes.Len())

	require.NoError(t, rm.Shutdown())
	assert.Zero(t, rm.Shapes.Len())
	assert.Zero(t, rm.Forces.Len())
}

func TestResourceManagerApplyRejectsBadColor(t *testing.T) {
	rm := NewResourceManager()
	err := rm.Apply(metadata.RenderOptionsConfig{
		Shapes: map[string]metadata.ShapeOptionsConfig{
			"ok":  {Color: "#ffffff"},
			"bad": {Color: "red"},
		},
	})
	require.Error(t, err)
	assert.Zero(t, rm.Shapes.Len())
}
