package gpu

import (
	"fmt"

	"github.com/spaghettifunk/debugdraw/engine/core"
	"github.com/spaghettifunk/debugdraw/engine/renderer/metadata"
)

// TransformFeedback captures vertex output of draws issued between Begin
// and End into its attached buffers.
type TransformFeedback struct {
	Object
	api     FeedbackAPI
	active  bool
	buffers map[uint32]*Buffer
}

func NewTransformFeedback(api FeedbackAPI) (*TransformFeedback, error) {
	id, err := api.CreateTransformFeedback()
	if err != nil {
		return nil, fmt.Errorf("failed to create transform feedback: %w", err)
	}
	core.LogDebug("transform feedback %d created", id)
	return WrapTransformFeedback(api, id, metadata.ObjectFlagDeleteOnDestruction|metadata.ObjectFlagCreated), nil
}

func WrapTransformFeedback(api FeedbackAPI, id uint32, flags metadata.ObjectFlag) *TransformFeedback {
	return &TransformFeedback{
		Object:  newObject("transform feedback", id, flags, api.DeleteTransformFeedback),
		api:     api,
		buffers: make(map[uint32]*Buffer),
	}
}

// AttachBuffer binds buffer to the given capture index. The buffer is
// borrowed; its lifetime stays with the caller.
func (tf *TransformFeedback) AttachBuffer(index uint32, buffer *Buffer) error {
	if tf.id == metadata.InvalidID || buffer.ID() == metadata.InvalidID {
		return core.ErrObjectReleased
	}
	if err := tf.api.TransformFeedbackBuffer(tf.id, index, buffer.ID()); err != nil {
		return fmt.Errorf("transform feedback %d: attach buffer %d at %d: %w", tf.id, buffer.ID(), index, err)
	}
	tf.buffers[index] = buffer
	return nil
}

// Release hands the native object over to the caller and forgets the
// attached buffers. An active capture is not released; End it first.
func (tf *TransformFeedback) Release() uint32 {
	if tf.active {
		core.LogError("transform feedback %d: release called while active", tf.id)
		return metadata.InvalidID
	}
	tf.buffers = make(map[uint32]*Buffer)
	return tf.Object.Release()
}

func (tf *TransformFeedback) Buffer(index uint32) *Buffer {
	return tf.buffers[index]
}

func (tf *TransformFeedback) Active() bool {
	return tf.active
}

func (tf *TransformFeedback) Begin(mode metadata.PrimitiveMode) error {
	if tf.id == metadata.InvalidID {
		return core.ErrObjectReleased
	}
	if tf.active {
		return fmt.Errorf("transform feedback %d: %w", tf.id, core.ErrFeedbackActive)
	}
	if err := tf.api.BeginTransformFeedback(tf.id, mode); err != nil {
		return fmt.Errorf("transform feedback %d: begin: %w", tf.id, err)
	}
	tf.active = true
	return nil
}

func (tf *TransformFeedback) End() error {
	if !tf.active {
		return fmt.Errorf("transform feedback %d: %w", tf.id, core.ErrFeedbackInactive)
	}
	if err := tf.api.EndTransformFeedback(tf.id); err != nil {
		return fmt.Errorf("transform feedback %d: end: %w", tf.id, err)
	}
	tf.active = false
	return nil
}
