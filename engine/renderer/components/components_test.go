package components

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	object *Object
	name   string
	calls  *[]string
	last   mgl32.Mat4
}

func (r *recorder) Object() *Object {
	return r.object
}

func (r *recorder) Draw(transformation mgl32.Mat4, camera *Camera) error {
	*r.calls = append(*r.calls, r.name)
	r.last = transformation
	return nil
}

func TestCameraDrawsInRegistrationOrder(t *testing.T) {
	root := NewObject("root", nil)
	group := NewDrawableGroup()
	var calls []string

	for _, name := range []string{"far", "near", "middle"} {
		Register(&recorder{object: NewObject(name, root), name: name, calls: &calls}, group)
	}

	camera := NewCamera(NewObject("camera", root))
	require.NoError(t, camera.Draw(group))
	assert.Equal(t, []string{"far", "near", "middle"}, calls)
}

func TestCameraMatrixIsInverseOfCameraObject(t *testing.T) {
	root := NewObject("root", nil)
	cameraObject := NewObject("camera", root)
	cameraObject.Transform.SetPosition(mgl32.Vec3{0, 0, 5})
	camera := NewCamera(cameraObject)

	object := NewObject("box", root)
	object.Transform.SetPosition(mgl32.Vec3{1, 0, 0})
	var calls []string
	r := &recorder{object: object, name: "box", calls: &calls}
	group := NewDrawableGroup()
	Register(r, group)

	require.NoError(t, camera.Draw(group))
	origin := r.last.Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	assert.InDelta(t, 1, origin.X(), 1e-6)
	assert.InDelta(t, -5, origin.Z(), 1e-6)
}

func TestObjectDestroyUnregistersDrawables(t *testing.T) {
	root := NewObject("root", nil)
	parent := NewObject("parent", root)
	child := NewObject("child", parent)
	group := NewDrawableGroup()
	var calls []string
	Register(&recorder{object: parent, name: "parent", calls: &calls}, group)
	Register(&recorder{object: child, name: "child", calls: &calls}, group)
	Register(&recorder{object: root, name: "root", calls: &calls}, group)
	require.Equal(t, 3, group.Len())

	require.NoError(t, parent.Destroy())
	assert.Equal(t, 1, group.Len())
	assert.Equal(t, "root", group.At(0).(*recorder).name)
	assert.Empty(t, root.Children())
	assert.Nil(t, parent.Parent())
}

func TestAbsoluteTransformationComposesParents(t *testing.T) {
	root := NewObject("root", nil)
	root.Transform.SetPosition(mgl32.Vec3{1, 0, 0})
	root.Transform.SetScale(mgl32.Vec3{2, 2, 2})
	child := NewObject("child", root)
	child.Transform.SetPosition(mgl32.Vec3{0, 1, 0})

	p := child.AbsoluteTransformation().Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	assert.True(t, p.ApproxEqual(mgl32.Vec4{1, 2, 0, 1}))

	child.SetParent(nil)
	p = child.AbsoluteTransformation().Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	assert.True(t, p.ApproxEqual(mgl32.Vec4{0, 1, 0, 1}))
}

func TestCameraLookAt(t *testing.T) {
	camera := NewCamera(NewObject("camera", nil))
	camera.LookAt(mgl32.Vec3{0, 0, 10}, mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})

	target := camera.CameraMatrix().Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	assert.InDelta(t, 0, target.X(), 1e-5)
	assert.InDelta(t, -10, target.Z(), 1e-5)
}
