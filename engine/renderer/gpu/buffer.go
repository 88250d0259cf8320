package gpu

import (
	"encoding/binary"
	"fmt"
	stdmath "math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/spaghettifunk/debugdraw/engine/core"
	"github.com/spaghettifunk/debugdraw/engine/renderer/metadata"
)

type Buffer struct {
	Object
	api  BufferAPI
	size int
}

func NewBuffer(api BufferAPI) (*Buffer, error) {
	id, err := api.CreateBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to create buffer: %w", err)
	}
	core.LogDebug("buffer %d created", id)
	return WrapBuffer(api, id, metadata.ObjectFlagDeleteOnDestruction|metadata.ObjectFlagCreated), nil
}

func WrapBuffer(api BufferAPI, id uint32, flags metadata.ObjectFlag) *Buffer {
	return &Buffer{
		Object: newObject("buffer", id, flags, api.DeleteBuffer),
		api:    api,
	}
}

// Size is the byte size of the last upload through this wrapper.
func (b *Buffer) Size() int {
	return b.size
}

func (b *Buffer) SetData(data []byte, usage metadata.BufferUsage) error {
	if b.id == metadata.InvalidID {
		return core.ErrObjectReleased
	}
	if err := b.api.BufferData(b.id, data, usage); err != nil {
		return fmt.Errorf("buffer %d: %w", b.id, err)
	}
	b.size = len(data)
	return nil
}

// SetEmpty allocates size zeroed bytes.
func (b *Buffer) SetEmpty(size int, usage metadata.BufferUsage) error {
	return b.SetData(make([]byte, size), usage)
}

// SetPositions uploads tightly packed float32 triples.
func (b *Buffer) SetPositions(positions []mgl32.Vec3, usage metadata.BufferUsage) error {
	data := make([]byte, 0, len(positions)*metadata.PositionStride)
	for _, p := range positions {
		for _, f := range p {
			data = binary.LittleEndian.AppendUint32(data, stdmath.Float32bits(f))
		}
	}
	return b.SetData(data, usage)
}

func (b *Buffer) Data() ([]byte, error) {
	if b.id == metadata.InvalidID {
		return nil, core.ErrObjectReleased
	}
	return b.api.ReadBuffer(b.id)
}

// Floats reads the buffer back as little-endian float32 values.
func (b *Buffer) Floats() ([]float32, error) {
	data, err := b.Data()
	if err != nil {
		return nil, err
	}
	return DecodeFloats(data), nil
}

func DecodeFloats(data []byte) []float32 {
	out := make([]float32, len(data)/4)
	for i := range out {
		out[i] = stdmath.Float32frombits(binary.LittleEndian.Uint32(data[i*4:]))
	}
	return out
}

// DecodePositions turns packed float32 triples back into vectors.
func DecodePositions(data []byte) []mgl32.Vec3 {
	floats := DecodeFloats(data)
	out := make([]mgl32.Vec3, len(floats)/3)
	for i := range out {
		out[i] = mgl32.Vec3{floats[i*3], floats[i*3+1], floats[i*3+2]}
	}
	return out
}
