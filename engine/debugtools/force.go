package debugtools

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/spaghettifunk/debugdraw/engine/math"
	"github.com/spaghettifunk/debugdraw/engine/renderer/components"
	"github.com/spaghettifunk/debugdraw/engine/systems"
)

// ForceRenderer draws a force as an arrow starting at a position relative to
// its object. The force is read through the pointer on every draw, so the
// arrow follows a simulation without any extra bookkeeping.
type ForceRenderer struct {
	object        *components.Object
	meshes        *Meshes
	forcePosition mgl32.Vec3
	force         *mgl32.Vec3
	key           string
	resources     *systems.ResourceManager
}

func NewForceRenderer(object *components.Object, meshes *Meshes, forcePosition mgl32.Vec3, force *mgl32.Vec3, key string, resources *systems.ResourceManager, group *components.DrawableGroup) *ForceRenderer {
	r := &ForceRenderer{
		object:        object,
		meshes:        meshes,
		forcePosition: forcePosition,
		force:         force,
		key:           key,
		resources:     resources,
	}
	components.Register(r, group)
	return r
}

func (r *ForceRenderer) Object() *components.Object {
	return r.object
}

// ArrowTransformation maps the unit +X arrow onto the force starting at
// position, scaled by size.
func ArrowTransformation(position, force mgl32.Vec3, size float32) mgl32.Mat4 {
	length := force.Len() * size
	return mgl32.Translate3D(position.X(), position.Y(), position.Z()).
		Mul4(math.AlignX(force).Mat4()).
		Mul4(mgl32.Scale3D(length, length, length))
}

func (r *ForceRenderer) Draw(transformation mgl32.Mat4, camera *components.Camera) error {
	force := *r.force
	if force.Len() == 0 {
		return nil
	}
	options := r.resources.Forces.Get(r.key)
	full := camera.Projection().Mul4(transformation).Mul4(ArrowTransformation(r.forcePosition, force, options.Size))
	return r.meshes.Draw(r.meshes.Arrow, full, options.Color)
}
