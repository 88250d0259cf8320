package software

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/spaghettifunk/debugdraw/engine/core"
	"github.com/spaghettifunk/debugdraw/engine/renderer/gpu"
	"github.com/spaghettifunk/debugdraw/engine/renderer/metadata"
)

type buffer struct {
	data  []byte
	usage metadata.BufferUsage
}

func (b *Backend) buffer(id uint32) (*buffer, error) {
	buf, ok := b.buffers.Owner(id).(*buffer)
	if !ok {
		return nil, fmt.Errorf("buffer %d: %w", id, core.ErrUnknownIdentifier)
	}
	return buf, nil
}

func (b *Backend) CreateBuffer() (uint32, error) {
	return b.buffers.Acquire(&buffer{}), nil
}

func (b *Backend) DeleteBuffer(id uint32) error {
	if err := b.buffers.Release(id); err != nil {
		return b.invalidDelete("buffer", id, err)
	}
	return nil
}

func (b *Backend) BufferData(id uint32, data []byte, usage metadata.BufferUsage) error {
	buf, err := b.buffer(id)
	if err != nil {
		return err
	}
	buf.data = make([]byte, len(data))
	copy(buf.data, data)
	buf.usage = usage
	return nil
}

func (b *Backend) ReadBuffer(id uint32) ([]byte, error) {
	buf, err := b.buffer(id)
	if err != nil {
		return nil, err
	}
	out := make([]byte, len(buf.data))
	copy(out, buf.data)
	return out, nil
}

// positions fetches the vertex positions of a draw call. A draw without a
// vertex buffer sees every vertex at the origin.
func (b *Backend) positions(call *metadata.DrawCall) ([]mgl32.Vec3, error) {
	if call.VertexBuffer == metadata.InvalidID {
		return make([]mgl32.Vec3, call.Count), nil
	}
	buf, err := b.buffer(call.VertexBuffer)
	if err != nil {
		return nil, err
	}
	positions := gpu.DecodePositions(buf.data)
	if uint32(len(positions)) < call.Count {
		return nil, fmt.Errorf("draw of %d vertices reads past buffer %d holding %d", call.Count, call.VertexBuffer, len(positions))
	}
	return positions[:call.Count], nil
}
