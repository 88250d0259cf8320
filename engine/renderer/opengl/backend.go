//go:build !headless

// Package opengl drives a real GL 4.1 core context. Queries, buffers and
// transform feedback objects map one to one onto their GL counterparts; every
// draw runs through a builtin flat shader whose clip position is also exposed
// as the outputData transform feedback varying.
package opengl

import (
	"fmt"
	"image"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/spaghettifunk/debugdraw/engine/core"
	"github.com/spaghettifunk/debugdraw/engine/platform"
	"github.com/spaghettifunk/debugdraw/engine/renderer/metadata"
)

type Backend struct {
	platform *platform.Platform
	config   metadata.RendererBackendConfig

	shader *flatShader
	vao    uint32
}

func New(p *platform.Platform) *Backend {
	return &Backend{platform: p}
}

func (b *Backend) Initialize(config metadata.RendererBackendConfig) error {
	b.config = config
	if err := b.platform.Startup(config.ApplicationName, config.Width, config.Height); err != nil {
		return err
	}
	if err := gl.Init(); err != nil {
		core.LogError("failed to load GL functions: %s", err)
		return fmt.Errorf("gl: %s: %w", err, core.ErrNoContext)
	}
	core.LogInfo("OpenGL %s on %s", gl.GoStr(gl.GetString(gl.VERSION)), gl.GoStr(gl.GetString(gl.RENDERER)))

	shader, err := newFlatShader()
	if err != nil {
		return err
	}
	b.shader = shader

	gl.GenVertexArrays(1, &b.vao)
	gl.BindVertexArray(b.vao)
	gl.Viewport(0, 0, int32(config.Width), int32(config.Height))
	return nil
}

func (b *Backend) Shutdown() error {
	if b.shader != nil {
		b.shader.destroy()
		b.shader = nil
	}
	if b.vao != 0 {
		gl.DeleteVertexArrays(1, &b.vao)
		b.vao = 0
	}
	return b.platform.Shutdown()
}

func (b *Backend) Enable(feature metadata.Feature) {
	gl.Enable(glFeature(feature))
}

func (b *Backend) Disable(feature metadata.Feature) {
	gl.Disable(glFeature(feature))
}

func (b *Backend) IsEnabled(feature metadata.Feature) bool {
	return gl.IsEnabled(glFeature(feature))
}

func (b *Backend) Clear(color mgl32.Vec4) {
	gl.ClearColor(color.X(), color.Y(), color.Z(), color.W())
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

func (b *Backend) Draw(call *metadata.DrawCall) error {
	if call.Count == 0 {
		return nil
	}
	b.shader.use(call.Transformation, call.Color)

	if call.VertexBuffer == metadata.InvalidID {
		// every vertex at the origin
		gl.DisableVertexAttribArray(0)
		gl.VertexAttrib3f(0, 0, 0, 0)
	} else {
		gl.BindBuffer(gl.ARRAY_BUFFER, call.VertexBuffer)
		gl.EnableVertexAttribArray(0)
		gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, metadata.PositionStride, 0)
	}
	gl.DrawArrays(glPrimitive(call.Primitive), 0, int32(call.Count))
	return checkError("draw")
}

// ReadPixels reads the default framebuffer, flipping rows so the first row
// of the image is the top of the frame.
func (b *Backend) ReadPixels() (*image.RGBA, error) {
	width, height := int(b.config.Width), int(b.config.Height)
	raw := make([]byte, width*height*4)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&raw[0]))
	if err := checkError("read pixels"); err != nil {
		return nil, err
	}
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	stride := width * 4
	for y := 0; y < height; y++ {
		copy(img.Pix[y*stride:(y+1)*stride], raw[(height-1-y)*stride:(height-y)*stride])
	}
	return img, nil
}

func glFeature(feature metadata.Feature) uint32 {
	switch feature {
	case metadata.FeatureRasterizerDiscard:
		return gl.RASTERIZER_DISCARD
	case metadata.FeatureDepthTest:
		return gl.DEPTH_TEST
	case metadata.FeatureFaceCulling:
		return gl.CULL_FACE
	}
	core.LogError("unknown feature %s", feature)
	return 0
}

func glPrimitive(mode metadata.PrimitiveMode) uint32 {
	switch mode {
	case metadata.PrimitiveLines:
		return gl.LINES
	case metadata.PrimitiveLineStrip:
		return gl.LINE_STRIP
	case metadata.PrimitiveTriangles:
		return gl.TRIANGLES
	}
	return gl.POINTS
}

func checkError(operation string) error {
	if code := gl.GetError(); code != gl.NO_ERROR {
		core.LogError("GL error 0x%x during %s", code, operation)
		return fmt.Errorf("%s: GL error 0x%x", operation, code)
	}
	return nil
}
