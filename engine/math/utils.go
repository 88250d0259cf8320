package math

import (
	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/exp/constraints"
)

// Clamp returns the value `f` clamped to the range [low, high].
// It works for any numeric type (integers and floats).
func Clamp[T constraints.Ordered](f, low, high T) T {
	if f < low {
		return low
	}
	if f > high {
		return high
	}
	return f
}

// AlignX returns the rotation taking +X onto dir. Both rotation axes are
// solved at once, so arbitrary 3D directions are reached.
func AlignX(dir mgl32.Vec3) mgl32.Quat {
	if dir.Len() == 0 {
		return mgl32.QuatIdent()
	}
	return mgl32.QuatBetweenVectors(mgl32.Vec3{1, 0, 0}, dir.Normalize())
}
