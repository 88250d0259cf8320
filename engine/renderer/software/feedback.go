package software

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/spaghettifunk/debugdraw/engine/core"
	"github.com/spaghettifunk/debugdraw/engine/renderer/metadata"
)

// captured vertices are clip-space vec4s
const captureStride = 4 * 4

type feedback struct {
	bindings map[uint32]uint32
	mode     metadata.PrimitiveMode
	active   bool
	// write offset into the buffer bound at index 0
	offset int
}

func (b *Backend) feedback(id uint32) (*feedback, error) {
	fb, ok := b.feedbacks.Owner(id).(*feedback)
	if !ok {
		return nil, fmt.Errorf("transform feedback %d: %w", id, core.ErrUnknownIdentifier)
	}
	return fb, nil
}

func (b *Backend) CreateTransformFeedback() (uint32, error) {
	return b.feedbacks.Acquire(&feedback{bindings: make(map[uint32]uint32)}), nil
}

func (b *Backend) DeleteTransformFeedback(id uint32) error {
	fb, _ := b.feedbacks.Owner(id).(*feedback)
	if fb != nil && fb.active {
		return fmt.Errorf("delete transform feedback %d: %w", id, core.ErrFeedbackActive)
	}
	if err := b.feedbacks.Release(id); err != nil {
		return b.invalidDelete("transform feedback", id, err)
	}
	return nil
}

func (b *Backend) TransformFeedbackBuffer(id, index, bufferID uint32) error {
	fb, err := b.feedback(id)
	if err != nil {
		return err
	}
	if fb.active {
		return fmt.Errorf("rebinding transform feedback %d: %w", id, core.ErrFeedbackActive)
	}
	if _, err := b.buffer(bufferID); err != nil {
		return err
	}
	fb.bindings[index] = bufferID
	return nil
}

func (b *Backend) BeginTransformFeedback(id uint32, mode metadata.PrimitiveMode) error {
	fb, err := b.feedback(id)
	if err != nil {
		return err
	}
	if b.activeFeedback != nil {
		return fmt.Errorf("transform feedback %d: %w", id, core.ErrFeedbackActive)
	}
	if _, ok := fb.bindings[0]; !ok {
		return fmt.Errorf("transform feedback %d has no buffer bound at index 0", id)
	}
	if mode == metadata.PrimitiveLineStrip {
		return fmt.Errorf("transform feedback %d: capture mode must be points, lines or triangles", id)
	}
	fb.mode = mode
	fb.active = true
	fb.offset = 0
	b.activeFeedback = fb
	return nil
}

func (b *Backend) EndTransformFeedback(id uint32) error {
	fb, err := b.feedback(id)
	if err != nil {
		return err
	}
	if !fb.active {
		return fmt.Errorf("transform feedback %d: %w", id, core.ErrFeedbackInactive)
	}
	fb.active = false
	b.activeFeedback = nil
	return nil
}

// capture writes whole primitives into the buffer at index 0 until it runs
// out of room and returns how many were written.
func (b *Backend) capture(fb *feedback, primitives [][]mgl32.Vec4) (uint32, error) {
	buf, err := b.buffer(fb.bindings[0])
	if err != nil {
		return 0, err
	}
	written := uint32(0)
	for _, primitive := range primitives {
		need := len(primitive) * captureStride
		if fb.offset+need > len(buf.data) {
			break
		}
		for _, v := range primitive {
			for c := 0; c < 4; c++ {
				binary.LittleEndian.PutUint32(buf.data[fb.offset+4*c:], math.Float32bits(v[c]))
			}
			fb.offset += captureStride
		}
		written++
	}
	return written, nil
}
