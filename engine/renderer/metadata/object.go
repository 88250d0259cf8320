package metadata

/** @brief Ownership flags of a wrapped GPU object. */
type ObjectFlag uint8

const (
	/** @brief The object is deleted when its wrapper is destroyed. */
	ObjectFlagDeleteOnDestruction ObjectFlag = 1 << iota
	/** @brief The object was created by the wrapper itself. */
	ObjectFlagCreated
)

func (f ObjectFlag) Has(flag ObjectFlag) bool {
	return f&flag == flag
}

/** @brief The invalid native object name. */
const InvalidID uint32 = 0

/** @brief What a primitive query counts. */
type QueryTarget uint32

const (
	/**
	 * @brief Primitives submitted for rasterization, counted even when
	 * rasterization output is discarded.
	 */
	QueryTargetPrimitivesGenerated QueryTarget = iota
	/**
	 * @brief Primitives written into transform feedback buffers. Only
	 * primitives drawn while capture is active are counted.
	 */
	QueryTargetTransformFeedbackPrimitivesWritten
)

func (t QueryTarget) String() string {
	switch t {
	case QueryTargetPrimitivesGenerated:
		return "primitives-generated"
	case QueryTargetTransformFeedbackPrimitivesWritten:
		return "transform-feedback-primitives-written"
	}
	return "unknown"
}

type QueryState uint8

const (
	QueryStateIdle QueryState = iota
	QueryStateRunning
	QueryStateEnded
)

func (s QueryState) String() string {
	switch s {
	case QueryStateIdle:
		return "idle"
	case QueryStateRunning:
		return "running"
	case QueryStateEnded:
		return "ended"
	}
	return "unknown"
}
