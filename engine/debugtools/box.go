package debugtools

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/spaghettifunk/debugdraw/engine/math"
	"github.com/spaghettifunk/debugdraw/engine/renderer/components"
	"github.com/spaghettifunk/debugdraw/engine/renderer/metadata"
)

// BoxRenderer draws one shape. transformation is camera · object world; the
// renderer adds the shape's own transformation and the camera projection.
type BoxRenderer interface {
	Draw(options metadata.ShapeRendererOptions, transformation mgl32.Mat4, camera *components.Camera) error
}

// OrientedBoxRenderer draws a box whose rotation is part of the shape.
type OrientedBoxRenderer struct {
	meshes *Meshes
	box    *math.Box
}

func NewOrientedBoxRenderer(meshes *Meshes, box *math.Box) *OrientedBoxRenderer {
	return &OrientedBoxRenderer{meshes: meshes, box: box}
}

func (r *OrientedBoxRenderer) Draw(options metadata.ShapeRendererOptions, transformation mgl32.Mat4, camera *components.Camera) error {
	full := camera.Projection().Mul4(transformation).Mul4(r.box.Transformation)
	return r.meshes.Draw(r.meshes.Cube, full, options.Color)
}

// AxisAlignedBoxRenderer draws a box given by its extents. The box is read
// on every draw, so changes to Min or Max show up on the next frame. Only the
// translation and scale of the incoming transformation apply; any rotation is
// dropped so the box stays axis aligned.
type AxisAlignedBoxRenderer struct {
	meshes *Meshes
	box    *math.AxisAlignedBox
}

func NewAxisAlignedBoxRenderer(meshes *Meshes, box *math.AxisAlignedBox) *AxisAlignedBoxRenderer {
	return &AxisAlignedBoxRenderer{meshes: meshes, box: box}
}

func (r *AxisAlignedBoxRenderer) Draw(options metadata.ShapeRendererOptions, transformation mgl32.Mat4, camera *components.Camera) error {
	full := camera.Projection().Mul4(axisAligned(transformation, r.box))
	return r.meshes.Draw(r.meshes.Cube, full, options.Color)
}

// axisAligned maps the unit cube onto box placed by transformation, keeping
// the transformed center and the per-axis scaling.
func axisAligned(transformation mgl32.Mat4, box *math.AxisAlignedBox) mgl32.Mat4 {
	center := mgl32.TransformCoordinate(box.Center(), transformation)
	half := box.Size().Mul(0.5)
	scale := mgl32.Vec3{
		transformation.Col(0).Vec3().Len() * half.X(),
		transformation.Col(1).Vec3().Len() * half.Y(),
		transformation.Col(2).Vec3().Len() * half.Z(),
	}
	return mgl32.Translate3D(center.X(), center.Y(), center.Z()).Mul4(mgl32.Scale3D(scale.X(), scale.Y(), scale.Z()))
}

// PointRenderer marks a point with a cross PointSize wide.
type PointRenderer struct {
	meshes *Meshes
	point  *mgl32.Vec3
}

func NewPointRenderer(meshes *Meshes, point *mgl32.Vec3) *PointRenderer {
	return &PointRenderer{meshes: meshes, point: point}
}

func (r *PointRenderer) Draw(options metadata.ShapeRendererOptions, transformation mgl32.Mat4, camera *components.Camera) error {
	p := *r.point
	half := options.PointSize / 2
	local := mgl32.Translate3D(p.X(), p.Y(), p.Z()).Mul4(mgl32.Scale3D(half, half, half))
	return r.meshes.Draw(r.meshes.Cross, camera.Projection().Mul4(transformation).Mul4(local), options.Color)
}
