package math

import (
	gomath "math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestAxisAlignedBoxTransformation(t *testing.T) {
	box := NewAxisAlignedBox(mgl32.Vec3{-1, 0, 2}, mgl32.Vec3{3, 2, 4})
	assert.Equal(t, mgl32.Vec3{4, 2, 2}, box.Size())
	assert.Equal(t, mgl32.Vec3{1, 1, 3}, box.Center())

	m := box.Transformation()
	assert.Equal(t, mgl32.Vec3{3, 2, 4}, mgl32.TransformCoordinate(mgl32.Vec3{1, 1, 1}, m))
	assert.Equal(t, mgl32.Vec3{-1, 0, 2}, mgl32.TransformCoordinate(mgl32.Vec3{-1, -1, -1}, m))

	box.SetMax(mgl32.Vec3{5, 2, 4})
	assert.Equal(t, mgl32.Vec3{5, 2, 4}, mgl32.TransformCoordinate(mgl32.Vec3{1, 1, 1}, box.Transformation()))
}

func TestAxisAlignedBoxContains(t *testing.T) {
	box := NewAxisAlignedBox(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{1, 1, 1})
	assert.True(t, box.Contains(mgl32.Vec3{0.5, 1, 0}))
	assert.False(t, box.Contains(mgl32.Vec3{0.5, 1.1, 0}))
}

func assertVec3InDelta(t *testing.T, want, got mgl32.Vec3, msgAndArgs ...interface{}) {
	t.Helper()
	for i := 0; i < 3; i++ {
		assert.InDelta(t, want[i], got[i], 1e-5, msgAndArgs...)
	}
}

func TestTransformComposesParents(t *testing.T) {
	parent := TransformFromPosition(mgl32.Vec3{0, 0, -5})
	child := TransformFromPositionRotationScale(mgl32.Vec3{1, 0, 0}, mgl32.QuatIdent(), mgl32.Vec3{2, 2, 2})
	child.Parent = parent

	got := mgl32.TransformCoordinate(mgl32.Vec3{1, 0, 0}, child.GetWorld())
	assertVec3InDelta(t, mgl32.Vec3{3, 0, -5}, got, "got %v", got)

	parent.RotateY(gomath.Pi / 2)
	got = mgl32.TransformCoordinate(mgl32.Vec3{1, 0, 0}, child.GetWorld())
	assertVec3InDelta(t, mgl32.Vec3{0, 0, -8}, got, "got %v", got)

	var none *Transform
	assert.Equal(t, mgl32.Ident4(), none.GetWorld())
}

func TestAlignX(t *testing.T) {
	for _, dir := range []mgl32.Vec3{{1, 0, 0}, {0, 0, 3}, {-2, 0, 0}, {1, 2, -3}} {
		got := AlignX(dir).Rotate(mgl32.Vec3{1, 0, 0})
		assertVec3InDelta(t, dir.Normalize(), got, "dir %v got %v", dir, got)
	}
	assert.Equal(t, mgl32.QuatIdent(), AlignX(mgl32.Vec3{}))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 3, Clamp(7, 0, 3))
	assert.Equal(t, float32(-1), Clamp(float32(-4), -1, 1))
	assert.Equal(t, 0.5, Clamp(0.5, 0, 1))
}
