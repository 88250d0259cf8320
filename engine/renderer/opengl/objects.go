//go:build !headless

package opengl

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/spaghettifunk/debugdraw/engine/core"
	"github.com/spaghettifunk/debugdraw/engine/renderer/metadata"
)

func glQueryTarget(target metadata.QueryTarget) uint32 {
	if target == metadata.QueryTargetTransformFeedbackPrimitivesWritten {
		return gl.TRANSFORM_FEEDBACK_PRIMITIVES_WRITTEN
	}
	return gl.PRIMITIVES_GENERATED
}

func glUsage(usage metadata.BufferUsage) uint32 {
	switch usage {
	case metadata.BufferUsageDynamicDraw:
		return gl.DYNAMIC_DRAW
	case metadata.BufferUsageStreamDraw:
		return gl.STREAM_DRAW
	case metadata.BufferUsageStaticRead:
		return gl.STATIC_READ
	}
	return gl.STATIC_DRAW
}

func (b *Backend) CreateQuery(target metadata.QueryTarget) (uint32, error) {
	var id uint32
	gl.GenQueries(1, &id)
	return id, checkError("create query")
}

func (b *Backend) DeleteQuery(id uint32) error {
	if !gl.IsQuery(id) {
		core.LogError("delete of query %d which is not live", id)
		return fmt.Errorf("delete query %d: %w", id, core.ErrUnknownIdentifier)
	}
	gl.DeleteQueries(1, &id)
	return nil
}

func (b *Backend) BeginQuery(id uint32, target metadata.QueryTarget) error {
	gl.BeginQuery(glQueryTarget(target), id)
	return checkError("begin query")
}

func (b *Backend) EndQuery(id uint32, target metadata.QueryTarget) error {
	gl.EndQuery(glQueryTarget(target))
	return checkError("end query")
}

func (b *Backend) QueryResultAvailable(id uint32) (bool, error) {
	var available uint32
	gl.GetQueryObjectuiv(id, gl.QUERY_RESULT_AVAILABLE, &available)
	return available == gl.TRUE, checkError("query result available")
}

func (b *Backend) QueryResult(id uint32) (uint64, error) {
	var result uint64
	gl.GetQueryObjectui64v(id, gl.QUERY_RESULT, &result)
	return result, checkError("query result")
}

func (b *Backend) CreateBuffer() (uint32, error) {
	var id uint32
	gl.GenBuffers(1, &id)
	return id, checkError("create buffer")
}

func (b *Backend) DeleteBuffer(id uint32) error {
	if !gl.IsBuffer(id) {
		core.LogError("delete of buffer %d which is not live", id)
		return fmt.Errorf("delete buffer %d: %w", id, core.ErrUnknownIdentifier)
	}
	gl.DeleteBuffers(1, &id)
	return nil
}

func (b *Backend) BufferData(id uint32, data []byte, usage metadata.BufferUsage) error {
	gl.BindBuffer(gl.ARRAY_BUFFER, id)
	var ptr unsafe.Pointer
	if len(data) > 0 {
		ptr = gl.Ptr(data)
	}
	gl.BufferData(gl.ARRAY_BUFFER, len(data), ptr, glUsage(usage))
	return checkError("buffer data")
}

func (b *Backend) ReadBuffer(id uint32) ([]byte, error) {
	gl.BindBuffer(gl.ARRAY_BUFFER, id)
	var size int32
	gl.GetBufferParameteriv(gl.ARRAY_BUFFER, gl.BUFFER_SIZE, &size)
	data := make([]byte, size)
	if size > 0 {
		gl.GetBufferSubData(gl.ARRAY_BUFFER, 0, int(size), gl.Ptr(data))
	}
	return data, checkError("read buffer")
}

func (b *Backend) CreateTransformFeedback() (uint32, error) {
	var id uint32
	gl.GenTransformFeedbacks(1, &id)
	return id, checkError("create transform feedback")
}

func (b *Backend) DeleteTransformFeedback(id uint32) error {
	if !gl.IsTransformFeedback(id) {
		core.LogError("delete of transform feedback %d which is not live", id)
		return fmt.Errorf("delete transform feedback %d: %w", id, core.ErrUnknownIdentifier)
	}
	gl.DeleteTransformFeedbacks(1, &id)
	return nil
}

func (b *Backend) TransformFeedbackBuffer(id, index, buffer uint32) error {
	gl.BindTransformFeedback(gl.TRANSFORM_FEEDBACK, id)
	gl.BindBufferBase(gl.TRANSFORM_FEEDBACK_BUFFER, index, buffer)
	gl.BindTransformFeedback(gl.TRANSFORM_FEEDBACK, 0)
	return checkError("transform feedback buffer")
}

func (b *Backend) BeginTransformFeedback(id uint32, mode metadata.PrimitiveMode) error {
	// the capturing program must be current when feedback begins
	gl.UseProgram(b.shader.program)
	gl.BindTransformFeedback(gl.TRANSFORM_FEEDBACK, id)
	gl.BeginTransformFeedback(glPrimitive(mode.Base()))
	return checkError("begin transform feedback")
}

func (b *Backend) EndTransformFeedback(id uint32) error {
	gl.EndTransformFeedback()
	gl.BindTransformFeedback(gl.TRANSFORM_FEEDBACK, 0)
	return checkError("end transform feedback")
}
