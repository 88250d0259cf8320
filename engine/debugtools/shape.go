package debugtools

import (
	"errors"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/spaghettifunk/debugdraw/engine/renderer/components"
	"github.com/spaghettifunk/debugdraw/engine/systems"
)

// ShapeRenderer is the drawable that visualizes the shapes of one object.
// All of its box renderers share the options stored under its key.
type ShapeRenderer struct {
	object    *components.Object
	key       string
	resources *systems.ResourceManager
	renderers []BoxRenderer
}

// NewShapeRenderer attaches a shape renderer to object and registers it in
// group. A nil group leaves it unregistered.
func NewShapeRenderer(object *components.Object, key string, resources *systems.ResourceManager, group *components.DrawableGroup) *ShapeRenderer {
	r := &ShapeRenderer{
		object:    object,
		key:       key,
		resources: resources,
	}
	components.Register(r, group)
	return r
}

func (r *ShapeRenderer) Add(renderer BoxRenderer) *ShapeRenderer {
	r.renderers = append(r.renderers, renderer)
	return r
}

func (r *ShapeRenderer) Object() *components.Object {
	return r.object
}

func (r *ShapeRenderer) Key() string {
	return r.key
}

func (r *ShapeRenderer) Draw(transformation mgl32.Mat4, camera *components.Camera) error {
	options := r.resources.Shapes.Get(r.key)
	var errs []error
	for _, renderer := range r.renderers {
		if err := renderer.Draw(options, transformation, camera); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
