package renderer

import (
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/spaghettifunk/debugdraw/engine/core"
	"github.com/spaghettifunk/debugdraw/engine/renderer/gpu"
	"github.com/spaghettifunk/debugdraw/engine/renderer/metadata"
	"github.com/spaghettifunk/debugdraw/engine/renderer/software"
)

type RendererType uint8

const (
	Software RendererType = iota
	OpenGL
)

func (t RendererType) String() string {
	switch t {
	case Software:
		return "software"
	case OpenGL:
		return "opengl"
	}
	return "unknown"
}

// ParseRendererType maps a config name to a backend type.
func ParseRendererType(name string) (RendererType, error) {
	switch strings.ToLower(name) {
	case "", "software":
		return Software, nil
	case "opengl", "gl":
		return OpenGL, nil
	}
	return 0, fmt.Errorf("backend %q: %w", name, core.ErrUnknownBackend)
}

var _ RendererBackend = (*software.Backend)(nil)

// Renderer is the frontend the engine and the debug tools talk to. It owns
// its backend and a primitives-generated query measuring every frame.
type Renderer struct {
	backend    RendererBackend
	frameQuery *gpu.Query
	clearColor mgl32.Vec4
}

func New(rendererType RendererType, config metadata.RendererBackendConfig) (*Renderer, error) {
	var backend RendererBackend
	switch rendererType {
	case Software:
		backend = software.New()
	case OpenGL:
		b, err := newOpenGLBackend()
		if err != nil {
			return nil, err
		}
		backend = b
	default:
		return nil, fmt.Errorf("renderer type %d: %w", rendererType, core.ErrUnknownBackend)
	}
	core.LogInfo("creating %s renderer", rendererType)
	return NewWithBackend(backend, config)
}

// NewWithBackend initializes an already constructed backend.
func NewWithBackend(backend RendererBackend, config metadata.RendererBackendConfig) (*Renderer, error) {
	if err := backend.Initialize(config); err != nil {
		core.LogError("failed to initialize renderer backend: %s", err)
		return nil, err
	}
	frameQuery, err := gpu.NewQuery(backend, metadata.QueryTargetPrimitivesGenerated)
	if err != nil {
		_ = backend.Shutdown()
		return nil, err
	}
	return &Renderer{
		backend:    backend,
		frameQuery: frameQuery,
		clearColor: mgl32.Vec4{0, 0, 0, 1},
	}, nil
}

func (r *Renderer) Backend() RendererBackend {
	return r.backend
}

func (r *Renderer) Shutdown() error {
	if err := r.frameQuery.Destroy(); err != nil {
		core.LogWarn("failed to destroy frame query: %s", err)
	}
	return r.backend.Shutdown()
}

func (r *Renderer) NewQuery(target metadata.QueryTarget) (*gpu.Query, error) {
	return gpu.NewQuery(r.backend, target)
}

func (r *Renderer) NewBuffer() (*gpu.Buffer, error) {
	return gpu.NewBuffer(r.backend)
}

func (r *Renderer) NewTransformFeedback() (*gpu.TransformFeedback, error) {
	return gpu.NewTransformFeedback(r.backend)
}

func (r *Renderer) SetClearColor(color mgl32.Vec4) {
	r.clearColor = color
}

func (r *Renderer) Draw(call *metadata.DrawCall) error {
	return r.backend.Draw(call)
}

// DrawFrame clears the framebuffer and runs fn inside the frame query. It
// returns the number of primitives the frame generated, waiting for the
// query if the driver has not finished it yet.
func (r *Renderer) DrawFrame(fn func() error) (uint64, error) {
	r.backend.Clear(r.clearColor)
	if err := r.frameQuery.Begin(); err != nil {
		return 0, err
	}
	drawErr := fn()
	if err := r.frameQuery.End(); err != nil {
		return 0, err
	}
	if drawErr != nil {
		core.LogError("frame failed: %s", drawErr)
		return 0, drawErr
	}
	return r.frameQuery.Result()
}
