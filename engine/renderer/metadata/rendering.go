package metadata

/** @brief Fixed-function state a backend can toggle. */
type Feature int

const (
	/** @brief Primitives are discarded right before rasterization. */
	FeatureRasterizerDiscard Feature = iota
	/** @brief Depth testing against the depth buffer. */
	FeatureDepthTest
	/** @brief Back-face culling. */
	FeatureFaceCulling
)

func (f Feature) String() string {
	switch f {
	case FeatureRasterizerDiscard:
		return "rasterizer-discard"
	case FeatureDepthTest:
		return "depth-test"
	case FeatureFaceCulling:
		return "face-culling"
	}
	return "unknown"
}

/** @brief How consecutive vertices are assembled into primitives. */
type PrimitiveMode uint32

const (
	PrimitivePoints PrimitiveMode = iota
	PrimitiveLines
	PrimitiveLineStrip
	PrimitiveTriangles
)

// VerticesPerPrimitive is the vertex count of one independent primitive.
func (p PrimitiveMode) VerticesPerPrimitive() uint32 {
	switch p {
	case PrimitiveLines, PrimitiveLineStrip:
		return 2
	case PrimitiveTriangles:
		return 3
	}
	return 1
}

// PrimitiveCount is the number of primitives assembled from count vertices.
func (p PrimitiveMode) PrimitiveCount(count uint32) uint32 {
	switch p {
	case PrimitiveLineStrip:
		if count < 2 {
			return 0
		}
		return count - 1
	default:
		return count / p.VerticesPerPrimitive()
	}
}

// Base is the primitive class transform feedback captures for this mode.
func (p PrimitiveMode) Base() PrimitiveMode {
	if p == PrimitiveLineStrip {
		return PrimitiveLines
	}
	return p
}

/** @brief Usage hint for buffer storage. */
type BufferUsage uint32

const (
	BufferUsageStaticDraw BufferUsage = iota
	BufferUsageDynamicDraw
	BufferUsageStreamDraw
	BufferUsageStaticRead
)
