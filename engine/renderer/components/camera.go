package components

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

/** @brief The name of the default camera. */
const DEFAULT_CAMERA_NAME string = "default"

/**
 * @brief A camera attached to a scene object. The camera looks down the
 * negative Z axis of its object; moving or rotating the object moves the
 * view. Ideally, these are created and managed by the camera system.
 */
type Camera struct {
	object     *Object
	projection mgl32.Mat4
}

type CameraLookup struct {
	ReferenceCount uint16
	Camera         *Camera
}

func NewCamera(object *Object) *Camera {
	camera := &Camera{object: object, projection: mgl32.Ident4()}
	object.AddFeature(camera)
	return camera
}

func (c *Camera) Object() *Object {
	return c.object
}

// Reset restores an identity projection and moves the object to the origin.
func (c *Camera) Reset() {
	c.projection = mgl32.Ident4()
	c.object.Transform.SetPositionRotationScale(mgl32.Vec3{}, mgl32.QuatIdent(), mgl32.Vec3{1, 1, 1})
}

func (c *Camera) Destroy() error {
	return nil
}

func (c *Camera) Projection() mgl32.Mat4 {
	return c.projection
}

func (c *Camera) SetProjection(projection mgl32.Mat4) *Camera {
	c.projection = projection
	return c
}

func (c *Camera) SetPerspective(fovDegrees, aspect, near, far float32) *Camera {
	return c.SetProjection(mgl32.Perspective(mgl32.DegToRad(fovDegrees), aspect, near, far))
}

func (c *Camera) SetOrthographic(width, height, near, far float32) *Camera {
	return c.SetProjection(mgl32.Ortho(-width/2, width/2, -height/2, height/2, near, far))
}

// CameraMatrix is the inverse of the camera object's world transformation.
func (c *Camera) CameraMatrix() mgl32.Mat4 {
	return c.object.AbsoluteTransformation().Inv()
}

// LookAt places the camera object at eye, facing target.
func (c *Camera) LookAt(eye, target, up mgl32.Vec3) {
	view := mgl32.LookAtV(eye, target, up)
	rotation := mgl32.Mat4ToQuat(view.Mat3().Mat4()).Inverse()
	c.object.Transform.SetPosition(eye)
	c.object.Transform.SetRotation(rotation)
}

// Draw visits the group in registration order, handing every drawable the
// camera matrix composed with its object's world transformation. A failing
// drawable does not stop the others.
func (c *Camera) Draw(group *DrawableGroup) error {
	cameraMatrix := c.CameraMatrix()
	var errs []error
	for i := 0; i < group.Len(); i++ {
		drawable := group.At(i)
		transformation := cameraMatrix.Mul4(drawable.Object().AbsoluteTransformation())
		if err := drawable.Draw(transformation, c); err != nil {
			errs = append(errs, fmt.Errorf("drawable %d of '%s': %w", i, drawable.Object().Name, err))
		}
	}
	return errors.Join(errs...)
}
