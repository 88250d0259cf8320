package systems

import (
	"sort"

	"github.com/spaghettifunk/debugdraw/engine/core"
	"github.com/spaghettifunk/debugdraw/engine/renderer/metadata"
)

// OptionStore maps resource keys to option values. A lookup of an unknown
// key returns the default value, never an error. Many renderers share one
// key, so changing a stored value restyles all of them on their next draw.
// The store is not synchronized: fill it during setup, read it while drawing.
type OptionStore[T any] struct {
	values       map[string]T
	defaultValue T
}

func NewOptionStore[T any](defaultValue T) *OptionStore[T] {
	return &OptionStore[T]{
		values:       make(map[string]T),
		defaultValue: defaultValue,
	}
}

func (s *OptionStore[T]) Set(key string, value T) *OptionStore[T] {
	s.values[key] = value
	return s
}

// Get returns a snapshot of the value for key, or the default.
func (s *OptionStore[T]) Get(key string) T {
	if v, ok := s.values[key]; ok {
		return v
	}
	return s.defaultValue
}

func (s *OptionStore[T]) Lookup(key string) (T, bool) {
	v, ok := s.values[key]
	return v, ok
}

func (s *OptionStore[T]) Remove(key string) {
	delete(s.values, key)
}

func (s *OptionStore[T]) SetDefault(value T) {
	s.defaultValue = value
}

func (s *OptionStore[T]) Default() T {
	return s.defaultValue
}

// Keys returns the stored keys in sorted order.
func (s *OptionStore[T]) Keys() []string {
	keys := make([]string, 0, len(s.values))
	for k := range s.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (s *OptionStore[T]) Len() int {
	return len(s.values)
}

func (s *OptionStore[T]) clear() {
	s.values = make(map[string]T)
}

// ResourceManager holds the render options of one scene. It is created by
// whoever owns the scene and passed to the renderers that need it.
type ResourceManager struct {
	Shapes *OptionStore[metadata.ShapeRendererOptions]
	Forces *OptionStore[metadata.ForceRendererOptions]
}

func NewResourceManager() *ResourceManager {
	return &ResourceManager{
		Shapes: NewOptionStore(metadata.DefaultShapeRendererOptions()),
		Forces: NewOptionStore(metadata.DefaultForceRendererOptions()),
	}
}

// Apply stores every configured table. Nothing is changed if any table is
// invalid.
func (rm *ResourceManager) Apply(config metadata.RenderOptionsConfig) error {
	parsed, err := config.Parse()
	if err != nil {
		return err
	}
	for key, options := range parsed.Shapes {
		if key == metadata.DefaultOptionsKey {
			rm.Shapes.SetDefault(options)
			continue
		}
		rm.Shapes.Set(key, options)
	}
	for key, options := range parsed.Forces {
		if key == metadata.DefaultOptionsKey {
			rm.Forces.SetDefault(options)
			continue
		}
		rm.Forces.Set(key, options)
	}
	core.LogDebug("applied %d shape and %d force option tables", len(parsed.Shapes), len(parsed.Forces))
	return nil
}

func (rm *ResourceManager) Shutdown() error {
	rm.Shapes.clear()
	rm.Forces.clear()
	return nil
}
