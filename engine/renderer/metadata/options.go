package metadata

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

/** @brief Render options shared by every shape renderer using the same key. */
type ShapeRendererOptions struct {
	Color     mgl32.Vec4
	PointSize float32
}

func DefaultShapeRendererOptions() ShapeRendererOptions {
	return ShapeRendererOptions{Color: mgl32.Vec4{1, 1, 1, 1}, PointSize: 0.25}
}

func (o ShapeRendererOptions) SetColor(color mgl32.Vec4) ShapeRendererOptions {
	o.Color = color
	return o
}

func (o ShapeRendererOptions) SetPointSize(size float32) ShapeRendererOptions {
	o.PointSize = size
	return o
}

/** @brief Render options shared by every force renderer using the same key. */
type ForceRendererOptions struct {
	Color mgl32.Vec4
	/** @brief Scale applied on top of the force length. */
	Size float32
}

func DefaultForceRendererOptions() ForceRendererOptions {
	return ForceRendererOptions{Color: mgl32.Vec4{1, 1, 1, 1}, Size: 1}
}

func (o ForceRendererOptions) SetColor(color mgl32.Vec4) ForceRendererOptions {
	o.Color = color
	return o
}

func (o ForceRendererOptions) SetSize(size float32) ForceRendererOptions {
	o.Size = size
	return o
}

// ParseColor reads "#rrggbb" or "#rrggbbaa" into a normalized RGBA vector.
func ParseColor(s string) (mgl32.Vec4, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 && len(hex) != 8 {
		return mgl32.Vec4{}, fmt.Errorf("invalid color %q: expected #rrggbb or #rrggbbaa", s)
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return mgl32.Vec4{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return mgl32.Vec4{
		float32(v>>24&0xff) / 255,
		float32(v>>16&0xff) / 255,
		float32(v>>8&0xff) / 255,
		float32(v&0xff) / 255,
	}, nil
}

/** @brief A `[shapes.<key>]` table of the application config. */
type ShapeOptionsConfig struct {
	Color     string   `toml:"color"`
	PointSize *float32 `toml:"point_size"`
}

// Options overlays the configured fields on the default options.
func (c ShapeOptionsConfig) Options() (ShapeRendererOptions, error) {
	options := DefaultShapeRendererOptions()
	if c.Color != "" {
		color, err := ParseColor(c.Color)
		if err != nil {
			return options, err
		}
		options = options.SetColor(color)
	}
	if c.PointSize != nil {
		options = options.SetPointSize(*c.PointSize)
	}
	return options, nil
}

/** @brief A `[forces.<key>]` table of the application config. */
type ForceOptionsConfig struct {
	Color string   `toml:"color"`
	Size  *float32 `toml:"size"`
}

func (c ForceOptionsConfig) Options() (ForceRendererOptions, error) {
	options := DefaultForceRendererOptions()
	if c.Color != "" {
		color, err := ParseColor(c.Color)
		if err != nil {
			return options, err
		}
		options = options.SetColor(color)
	}
	if c.Size != nil {
		options = options.SetSize(*c.Size)
	}
	return options, nil
}

/**
 * @brief Render option tables keyed by resource key. The key "default"
 * replaces the fallback returned for unknown keys.
 */
type RenderOptionsConfig struct {
	Shapes map[string]ShapeOptionsConfig `toml:"shapes"`
	Forces map[string]ForceOptionsConfig `toml:"forces"`
}

const DefaultOptionsKey = "default"

/** @brief Render options decoded from a RenderOptionsConfig. */
type RenderOptions struct {
	Shapes map[string]ShapeRendererOptions
	Forces map[string]ForceRendererOptions
}

// Parse decodes every table, failing on the first invalid one.
func (c RenderOptionsConfig) Parse() (RenderOptions, error) {
	out := RenderOptions{
		Shapes: make(map[string]ShapeRendererOptions, len(c.Shapes)),
		Forces: make(map[string]ForceRendererOptions, len(c.Forces)),
	}
	for key, table := range c.Shapes {
		options, err := table.Options()
		if err != nil {
			return out, fmt.Errorf("shapes.%s: %w", key, err)
		}
		out.Shapes[key] = options
	}
	for key, table := range c.Forces {
		options, err := table.Options()
		if err != nil {
			return out, fmt.Errorf("forces.%s: %w", key, err)
		}
		out.Forces[key] = options
	}
	return out, nil
}
