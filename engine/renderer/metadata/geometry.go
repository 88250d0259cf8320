package metadata

import (
	"github.com/go-gl/mathgl/mgl32"
)

/**
 * @brief A single draw call handed to the backend. The builtin flat shader
 * transforms every position by Transformation and writes Color; its
 * transformed position is also the transform feedback output.
 */
type DrawCall struct {
	Primitive PrimitiveMode
	/** @brief Number of vertices to draw. */
	Count uint32
	/** @brief Buffer holding positions; InvalidID draws from the origin. */
	VertexBuffer uint32
	/** @brief Full projection · camera · model matrix. */
	Transformation mgl32.Mat4
	Color          mgl32.Vec4
}

func NewDrawCall(mesh *Mesh, transformation mgl32.Mat4, color mgl32.Vec4) *DrawCall {
	return &DrawCall{
		Primitive:      mesh.Primitive,
		Count:          mesh.Count,
		VertexBuffer:   mesh.VertexBuffer,
		Transformation: transformation,
		Color:          color,
	}
}
