package renderer

import (
	"image"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/spaghettifunk/debugdraw/engine/renderer/gpu"
	"github.com/spaghettifunk/debugdraw/engine/renderer/metadata"
)

// RendererBackend is the low-level graphics API the renderer drives.
type RendererBackend interface {
	gpu.QueryAPI
	gpu.BufferAPI
	gpu.FeedbackAPI

	Initialize(config metadata.RendererBackendConfig) error
	Shutdown() error
	Enable(feature metadata.Feature)
	Disable(feature metadata.Feature)
	IsEnabled(feature metadata.Feature) bool
	Clear(color mgl32.Vec4)
	Draw(call *metadata.DrawCall) error
	// ReadPixels returns a copy of the color attachment.
	ReadPixels() (*image.RGBA, error)
}
