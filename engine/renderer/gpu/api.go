// Package gpu wraps native GPU object names (queries, buffers, transform
// feedback objects) with explicit ownership. A wrapper either owns its name
// and deletes it on Destroy, or borrows it and never touches its lifetime.
// Release hands the raw name back and turns the wrapper into an empty shell,
// so the name can be wrapped again by a new owner without a double delete.
package gpu

import "github.com/spaghettifunk/debugdraw/engine/renderer/metadata"

// QueryAPI is the part of a backend driving asynchronous counters.
type QueryAPI interface {
	CreateQuery(target metadata.QueryTarget) (uint32, error)
	DeleteQuery(id uint32) error
	BeginQuery(id uint32, target metadata.QueryTarget) error
	EndQuery(id uint32, target metadata.QueryTarget) error
	// QueryResultAvailable polls the driver without waiting.
	QueryResultAvailable(id uint32) (bool, error)
	// QueryResult waits for the driver to finish the query.
	QueryResult(id uint32) (uint64, error)
}

type BufferAPI interface {
	CreateBuffer() (uint32, error)
	DeleteBuffer(id uint32) error
	BufferData(id uint32, data []byte, usage metadata.BufferUsage) error
	ReadBuffer(id uint32) ([]byte, error)
}

type FeedbackAPI interface {
	CreateTransformFeedback() (uint32, error)
	DeleteTransformFeedback(id uint32) error
	TransformFeedbackBuffer(id, index, buffer uint32) error
	BeginTransformFeedback(id uint32, mode metadata.PrimitiveMode) error
	EndTransformFeedback(id uint32) error
}
