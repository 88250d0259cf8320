package engine

import (
	"context"
	"image"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/debugdraw/engine/assets"
	"github.com/spaghettifunk/debugdraw/engine/core"
	"github.com/spaghettifunk/debugdraw/engine/debugtools"
	"github.com/spaghettifunk/debugdraw/engine/math"
	"github.com/spaghettifunk/debugdraw/engine/renderer/components"
)

func TestMain(m *testing.M) {
	core.SetLogOutput(io.Discard)
	os.Exit(m.Run())
}

const sampleConfig = `
name = "sample"
width = 32
height = 32
backend = "software"
log_level = "debug"
frames = 4
query_latency = 2

[shapes.bounds]
color = "#ff0000"

[forces.gravity]
color = "#00ff00"
size = 0.5
`

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "debugdraw.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadApplicationConfig(t *testing.T) {
	config, err := LoadApplicationConfig(writeConfig(t, t.TempDir(), sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, "sample", config.Name)
	assert.Equal(t, uint32(32), config.Width)
	assert.Equal(t, uint64(4), config.Frames)
	assert.Equal(t, uint32(2), config.BackendConfig().QueryLatency)
	assert.Equal(t, "#ff0000", config.Shapes["bounds"].Color)
	require.NotNil(t, config.Forces["gravity"].Size)
	assert.Equal(t, float32(0.5), *config.Forces["gravity"].Size)
}

func TestLoadApplicationConfigDefaults(t *testing.T) {
	config, err := LoadApplicationConfig(writeConfig(t, t.TempDir(), `name = "only name"`))
	require.NoError(t, err)
	assert.Equal(t, DefaultApplicationConfig().Width, config.Width)
	assert.Equal(t, "software", config.Backend)
}

func TestLoadApplicationConfigErrors(t *testing.T) {
	dir := t.TempDir()
	_, err := LoadApplicationConfig(writeConfig(t, dir, `backend = "vulkan"`))
	assert.ErrorIs(t, err, core.ErrUnknownBackend)

	_, err = LoadApplicationConfig(writeConfig(t, dir, "[shapes.bad]\ncolor = \"blue\"\n"))
	assert.Error(t, err)

	_, err = LoadApplicationConfig(writeConfig(t, dir, `unknown_key = 1`))
	assert.Error(t, err)

	_, err = LoadApplicationConfig(filepath.Join(dir, "missing.toml"))
	assert.Error(t, err)
}

func newTestEngine(t *testing.T, config *ApplicationConfig, configPath string, init Initialize) *Engine {
	t.Helper()
	e, err := New(&Game{ApplicationConfig: config, ConfigPath: configPath, FnInitialize: init})
	require.NoError(t, err)
	require.NoError(t, e.Initialize())
	t.Cleanup(func() {
		assert.NoError(t, e.Shutdown())
		core.SetLogLevel("info")
	})
	return e
}

func TestRunRendersConfiguredFrames(t *testing.T) {
	config, err := LoadApplicationConfig(writeConfig(t, t.TempDir(), sampleConfig))
	require.NoError(t, err)

	e := newTestEngine(t, config, "", func(scene *Scene) error {
		box := math.NewAxisAlignedBox(mgl32.Vec3{-1, -1, -6}, mgl32.Vec3{1, 1, -4})
		debugtools.NewShapeRenderer(components.NewObject("box", scene.Root), "bounds", scene.Resources, scene.Drawables).
			Add(debugtools.NewAxisAlignedBoxRenderer(scene.Meshes, box))
		return nil
	})

	require.NoError(t, e.Run(context.Background()))
	assert.Equal(t, uint64(4), e.Frames())
	assert.Equal(t, float64(12), e.Metrics().Primitives())
	assert.Equal(t, mgl32.Vec4{1, 0, 0, 1}, e.Scene().Resources.Shapes.Get("bounds").Color)
}

func TestRunStopsOnCancel(t *testing.T) {
	config := DefaultApplicationConfig()
	e := newTestEngine(t, config, "", nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.NoError(t, e.Run(ctx))
	assert.Zero(t, e.Frames())
}

func TestConfigChangesAreAppliedBetweenFrames(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, sampleConfig)
	config, err := LoadApplicationConfig(path)
	require.NoError(t, err)
	e := newTestEngine(t, config, path, nil)

	updated := sampleConfig + "\n[shapes.extra]\ncolor = \"#0000ff\"\n"
	require.NoError(t, os.WriteFile(path, []byte(updated), 0o644))

	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		e.applyChanges()
		if _, ok := e.Scene().Resources.Shapes.Lookup("extra"); ok {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}
	assert.Equal(t, mgl32.Vec4{0, 0, 1, 1}, e.Scene().Resources.Shapes.Get("extra").Color)
}

func TestReloadKeepsOptionsOnBrokenFile(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, sampleConfig)
	config, err := LoadApplicationConfig(path)
	require.NoError(t, err)
	e := newTestEngine(t, config, "", nil)

	broken := writeConfig(t, t.TempDir(), "[shapes.bounds]\ncolor = \"nope\"\n")
	assert.Error(t, e.Reload(broken))
	assert.Equal(t, mgl32.Vec4{1, 0, 0, 1}, e.Scene().Resources.Shapes.Get("bounds").Color)
}

func TestScreenshotMatchesFramebuffer(t *testing.T) {
	config, err := LoadApplicationConfig(writeConfig(t, t.TempDir(), sampleConfig))
	require.NoError(t, err)
	e := newTestEngine(t, config, "", func(scene *Scene) error {
		box := math.NewAxisAlignedBox(mgl32.Vec3{-1, -1, -6}, mgl32.Vec3{1, 1, -4})
		debugtools.NewShapeRenderer(components.NewObject("box", scene.Root), "bounds", scene.Resources, scene.Drawables).
			Add(debugtools.NewAxisAlignedBoxRenderer(scene.Meshes, box))
		return nil
	})
	require.NoError(t, e.Run(context.Background()))

	path := filepath.Join(t.TempDir(), "frame.png")
	require.NoError(t, e.Screenshot(path))

	var saved *image.RGBA
	require.Eventually(t, func() bool {
		saved, err = assets.ImageLoader{}.Load(path)
		return err == nil
	}, 2*time.Second, 10*time.Millisecond)

	framebuffer, err := e.Scene().Renderer.Backend().ReadPixels()
	require.NoError(t, err)
	delta, err := debugtools.CompareImages(saved, framebuffer)
	require.NoError(t, err)
	assert.Zero(t, delta.Differing, delta.String())
	assert.Equal(t, 32, saved.Bounds().Dx())
}
