package engine

import (
	"fmt"

	"github.com/spaghettifunk/debugdraw/engine/assets"
	"github.com/spaghettifunk/debugdraw/engine/core"
	"github.com/spaghettifunk/debugdraw/engine/renderer"
	"github.com/spaghettifunk/debugdraw/engine/renderer/metadata"
)

type ApplicationConfig struct {
	// The application name used in windowing and logs.
	Name string `toml:"name"`
	// Framebuffer width.
	Width uint32 `toml:"width"`
	// Framebuffer height.
	Height uint32 `toml:"height"`
	// One of debug, info, warn, error.
	LogLevel string `toml:"log_level"`
	// Rendering backend: software or opengl.
	Backend string `toml:"backend"`
	// Number of frames to render before stopping; 0 runs until cancelled.
	Frames uint64 `toml:"frames"`
	// Software backend only: polls before a finished query reports available.
	QueryLatency uint32 `toml:"query_latency"`

	Shapes map[string]metadata.ShapeOptionsConfig `toml:"shapes"`
	Forces map[string]metadata.ForceOptionsConfig `toml:"forces"`
}

func DefaultApplicationConfig() *ApplicationConfig {
	return &ApplicationConfig{
		Name:         "debugdraw",
		Width:        640,
		Height:       480,
		LogLevel:     "info",
		Backend:      renderer.Software.String(),
		QueryLatency: 1,
	}
}

// LoadApplicationConfig reads a TOML config file on top of the defaults.
func LoadApplicationConfig(path string) (*ApplicationConfig, error) {
	loader := assets.TOMLLoader[*ApplicationConfig]{
		Defaults: DefaultApplicationConfig,
		Strict:   true,
	}
	config, err := loader.Load(path)
	if err != nil {
		core.LogError("failed to load config: %s", err)
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func (c *ApplicationConfig) Validate() error {
	if c.Width == 0 || c.Height == 0 {
		return fmt.Errorf("invalid framebuffer size %dx%d", c.Width, c.Height)
	}
	if _, err := renderer.ParseRendererType(c.Backend); err != nil {
		return err
	}
	if _, err := c.RenderOptions().Parse(); err != nil {
		return err
	}
	return nil
}

func (c *ApplicationConfig) RenderOptions() metadata.RenderOptionsConfig {
	return metadata.RenderOptionsConfig{Shapes: c.Shapes, Forces: c.Forces}
}

func (c *ApplicationConfig) BackendConfig() metadata.RendererBackendConfig {
	return metadata.RendererBackendConfig{
		ApplicationName: c.Name,
		Width:           c.Width,
		Height:          c.Height,
		QueryLatency:    c.QueryLatency,
	}
}
