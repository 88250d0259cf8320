package metadata

// Mesh describes vertex data stored in a GPU buffer. Positions are tightly
// packed float32 triples.
type Mesh struct {
	Primitive    PrimitiveMode
	Count        uint32
	VertexBuffer uint32
}

// PositionStride is the byte size of one vertex position.
const PositionStride = 3 * 4
