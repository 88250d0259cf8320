package components

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
)

// Drawable is something a camera can draw. The transformation handed to
// Draw already contains the camera matrix.
type Drawable interface {
	Object() *Object
	Draw(transformation mgl32.Mat4, camera *Camera) error
}

// DrawableGroup keeps drawables in registration order.
type DrawableGroup struct {
	ID        uuid.UUID
	drawables []Drawable
}

func NewDrawableGroup() *DrawableGroup {
	return &DrawableGroup{ID: uuid.New()}
}

func (g *DrawableGroup) Add(drawable Drawable) {
	g.drawables = append(g.drawables, drawable)
}

// Remove unregisters drawable and reports whether it was registered.
func (g *DrawableGroup) Remove(drawable Drawable) bool {
	for i, d := range g.drawables {
		if d == drawable {
			g.drawables = append(g.drawables[:i], g.drawables[i+1:]...)
			return true
		}
	}
	return false
}

func (g *DrawableGroup) Len() int {
	return len(g.drawables)
}

func (g *DrawableGroup) At(i int) Drawable {
	return g.drawables[i]
}

// Register adds drawable to group and ties the registration to the lifetime
// of the drawable's object.
func Register(drawable Drawable, group *DrawableGroup) {
	if group == nil {
		return
	}
	group.Add(drawable)
	drawable.Object().AddFeature(FeatureFunc(func() error {
		group.Remove(drawable)
		return nil
	}))
}
