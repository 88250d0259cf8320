// Package debugtools draws debug visualizations of collision shapes and
// forces. Renderers are drawables attached to scene objects; their color and
// size come from a shared ResourceManager looked up by key on every draw.
package debugtools

import (
	"errors"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/spaghettifunk/debugdraw/engine/core"
	"github.com/spaghettifunk/debugdraw/engine/renderer"
	"github.com/spaghettifunk/debugdraw/engine/renderer/gpu"
	"github.com/spaghettifunk/debugdraw/engine/renderer/metadata"
)

// cubeEdges is the wireframe of the unit cube [-1, 1]³.
var cubeEdges = []mgl32.Vec3{
	{-1, -1, -1}, {1, -1, -1},
	{1, -1, -1}, {1, 1, -1},
	{1, 1, -1}, {-1, 1, -1},
	{-1, 1, -1}, {-1, -1, -1},

	{-1, -1, 1}, {1, -1, 1},
	{1, -1, 1}, {1, 1, 1},
	{1, 1, 1}, {-1, 1, 1},
	{-1, 1, 1}, {-1, -1, 1},

	{-1, -1, -1}, {-1, -1, 1},
	{1, -1, -1}, {1, -1, 1},
	{1, 1, -1}, {1, 1, 1},
	{-1, 1, -1}, {-1, 1, 1},
}

// arrowLines is a unit arrow along +X with a four-sided head.
var arrowLines = []mgl32.Vec3{
	{0, 0, 0}, {1, 0, 0},

	{1, 0, 0}, {0.9, 0.1, 0},
	{1, 0, 0}, {0.9, -0.1, 0},
	{1, 0, 0}, {0.9, 0, 0.1},
	{1, 0, 0}, {0.9, 0, -0.1},
}

// crossLines marks a point with three unit axis segments.
var crossLines = []mgl32.Vec3{
	{-1, 0, 0}, {1, 0, 0},
	{0, -1, 0}, {0, 1, 0},
	{0, 0, -1}, {0, 0, 1},
}

// Meshes uploads the line meshes every debug renderer shares, once per
// renderer.
type Meshes struct {
	renderer *renderer.Renderer
	buffers  []*gpu.Buffer

	Cube  metadata.Mesh
	Arrow metadata.Mesh
	Cross metadata.Mesh
}

func NewMeshes(r *renderer.Renderer) (*Meshes, error) {
	m := &Meshes{renderer: r}
	var err error
	if m.Cube, err = m.upload(cubeEdges); err != nil {
		return nil, errors.Join(err, m.Destroy())
	}
	if m.Arrow, err = m.upload(arrowLines); err != nil {
		return nil, errors.Join(err, m.Destroy())
	}
	if m.Cross, err = m.upload(crossLines); err != nil {
		return nil, errors.Join(err, m.Destroy())
	}
	core.LogDebug("debug meshes uploaded (%d buffers)", len(m.buffers))
	return m, nil
}

func (m *Meshes) upload(positions []mgl32.Vec3) (metadata.Mesh, error) {
	buffer, err := m.renderer.NewBuffer()
	if err != nil {
		return metadata.Mesh{}, err
	}
	m.buffers = append(m.buffers, buffer)
	if err := buffer.SetPositions(positions, metadata.BufferUsageStaticDraw); err != nil {
		return metadata.Mesh{}, err
	}
	return metadata.Mesh{
		Primitive:    metadata.PrimitiveLines,
		Count:        uint32(len(positions)),
		VertexBuffer: buffer.ID(),
	}, nil
}

// Draw issues one draw call of mesh.
func (m *Meshes) Draw(mesh metadata.Mesh, transformation mgl32.Mat4, color mgl32.Vec4) error {
	return m.renderer.Draw(metadata.NewDrawCall(&mesh, transformation, color))
}

func (m *Meshes) Destroy() error {
	var errs []error
	for _, b := range m.buffers {
		errs = append(errs, b.Destroy())
	}
	m.buffers = nil
	return errors.Join(errs...)
}
