package math

import "github.com/go-gl/mathgl/mgl32"

/**
 * @brief An axis-aligned bounding volume described by its minimum and
 * maximum extents. Rotation of the owning object is ignored when it is drawn.
 */
type AxisAlignedBox struct {
	/** @brief The minimum extents of the box. */
	Min mgl32.Vec3
	/** @brief The maximum extents of the box. */
	Max mgl32.Vec3
}

func NewAxisAlignedBox(min, max mgl32.Vec3) *AxisAlignedBox {
	return &AxisAlignedBox{Min: min, Max: max}
}

func (b *AxisAlignedBox) SetMin(min mgl32.Vec3) {
	b.Min = min
}

func (b *AxisAlignedBox) SetMax(max mgl32.Vec3) {
	b.Max = max
}

func (b *AxisAlignedBox) Size() mgl32.Vec3 {
	return b.Max.Sub(b.Min)
}

func (b *AxisAlignedBox) Center() mgl32.Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

// Transformation maps the unit cube [-1, 1]³ onto the box.
func (b *AxisAlignedBox) Transformation() mgl32.Mat4 {
	c := b.Center()
	half := b.Size().Mul(0.5)
	return mgl32.Translate3D(c.X(), c.Y(), c.Z()).Mul4(mgl32.Scale3D(half.X(), half.Y(), half.Z()))
}

func (b *AxisAlignedBox) Contains(point mgl32.Vec3) bool {
	for i := 0; i < 3; i++ {
		if point[i] < b.Min[i] || point[i] > b.Max[i] {
			return false
		}
	}
	return true
}

/**
 * @brief An oriented box. The unit cube [-1, 1]³ is mapped onto the box by
 * its transformation, so any rotation is baked into the shape itself.
 */
type Box struct {
	Transformation mgl32.Mat4
}

func NewBox(transformation mgl32.Mat4) *Box {
	return &Box{Transformation: transformation}
}

/**
 * @brief Represents the transform of an object in the world.
 * Transforms can have a parent whose own transform is then
 * taken into account. NOTE: The properties of this should not
 * be edited directly, but done via the methods in transform.go
 * to ensure proper matrix generation.
 */
type Transform struct {
	/** @brief The position in the world. */
	Position mgl32.Vec3
	/** @brief The rotation in the world. */
	Rotation mgl32.Quat
	/** @brief The scale in the world. */
	Scale mgl32.Vec3
	/**
	 * @brief Indicates if the position, rotation or scale have changed,
	 * indicating that the local matrix needs to be recalculated.
	 */
	IsDirty bool
	/**
	 * @brief The local transformation matrix, updated whenever
	 * the position, rotation or scale have changed.
	 */
	Local mgl32.Mat4
	/** @brief A pointer to a parent transform if one is assigned. Can also be nil. */
	Parent *Transform
}
