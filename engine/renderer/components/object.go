package components

import (
	"errors"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"

	"github.com/spaghettifunk/debugdraw/engine/core"
	"github.com/spaghettifunk/debugdraw/engine/math"
)

/**
 * @brief Something attached to an object whose lifetime ends with it,
 * e.g. a drawable registration or a camera.
 */
type Feature interface {
	Destroy() error
}

// FeatureFunc adapts a plain function to a Feature.
type FeatureFunc func() error

func (f FeatureFunc) Destroy() error {
	return f()
}

/**
 * @brief A node of the scene graph. Its transform is relative to the parent;
 * AbsoluteTransformation composes the whole chain up to the root.
 */
type Object struct {
	ID        uuid.UUID
	Name      string
	Transform *math.Transform

	parent   *Object
	children []*Object
	features []Feature
}

// NewObject creates an object under parent. A nil parent makes a root.
func NewObject(name string, parent *Object) *Object {
	o := &Object{
		ID:        uuid.New(),
		Name:      name,
		Transform: math.TransformCreate(),
	}
	o.SetParent(parent)
	return o
}

func (o *Object) Parent() *Object {
	return o.parent
}

func (o *Object) Children() []*Object {
	return o.children
}

func (o *Object) SetParent(parent *Object) {
	if o.parent != nil {
		o.parent.removeChild(o)
	}
	o.parent = parent
	if parent == nil {
		o.Transform.Parent = nil
		return
	}
	o.Transform.Parent = parent.Transform
	parent.children = append(parent.children, o)
}

func (o *Object) removeChild(child *Object) {
	for i, c := range o.children {
		if c == child {
			o.children = append(o.children[:i], o.children[i+1:]...)
			return
		}
	}
}

func (o *Object) AddFeature(feature Feature) {
	o.features = append(o.features, feature)
}

func (o *Object) AbsoluteTransformation() mgl32.Mat4 {
	return o.Transform.GetWorld()
}

// Destroy tears down the children, then the features of this object, and
// finally detaches it from its parent.
func (o *Object) Destroy() error {
	var errs []error
	for len(o.children) > 0 {
		if err := o.children[len(o.children)-1].Destroy(); err != nil {
			errs = append(errs, err)
		}
	}
	for i := len(o.features) - 1; i >= 0; i-- {
		if err := o.features[i].Destroy(); err != nil {
			errs = append(errs, err)
		}
	}
	o.features = nil
	o.SetParent(nil)
	core.LogDebug("object '%s' (%s) destroyed", o.Name, o.ID)
	return errors.Join(errs...)
}
