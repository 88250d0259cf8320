package systems

import (
	"fmt"

	"github.com/spaghettifunk/debugdraw/engine/core"
	"github.com/spaghettifunk/debugdraw/engine/renderer/components"
)

type CameraSystem struct {
	Config *CameraSystemConfig
	Lookup map[string]*components.CameraLookup
	root   *components.Object

	// A default, non-registered camera that always exists as a fallback.
	DefaultCamera *components.Camera
}

/** @brief The camera system configuration. */
type CameraSystemConfig struct {
	/**
	 * @brief NOTE: The maximum number of cameras that can be managed by
	 * the system.
	 */
	MaxCameraCount uint16
}

/**
 * @brief Initializes the camera system. Every camera it creates is attached
 * to a new object under root.
 *
 * @param config The configuration for this system.
 * @param root The scene object cameras are parented to.
 */
func NewCameraSystem(config *CameraSystemConfig, root *components.Object) (*CameraSystem, error) {
	if config.MaxCameraCount == 0 {
		err := fmt.Errorf("func NewCameraSystem - config.MaxCameraCount must be > 0")
		core.LogError(err.Error())
		return nil, err
	}
	cs := &CameraSystem{
		Config: config,
		Lookup: make(map[string]*components.CameraLookup, config.MaxCameraCount),
		root:   root,
	}
	// Setup default camera.
	cs.DefaultCamera = components.NewCamera(components.NewObject(components.DEFAULT_CAMERA_NAME, root))
	return cs, nil
}

func (cs *CameraSystem) Shutdown() error {
	for name, lookup := range cs.Lookup {
		if err := lookup.Camera.Object().Destroy(); err != nil {
			core.LogWarn("failed to destroy camera '%s': %s", name, err)
		}
	}
	cs.Lookup = make(map[string]*components.CameraLookup)
	return cs.DefaultCamera.Object().Destroy()
}

/**
 * @brief Acquires a camera by name. If one is not found, a new one is
 * created. Internal reference counter is incremented.
 *
 * @param name The name of the camera to acquire.
 */
func (cs *CameraSystem) Acquire(name string) (*components.Camera, error) {
	if name == components.DEFAULT_CAMERA_NAME {
		return cs.DefaultCamera, nil
	}
	lookup, ok := cs.Lookup[name]
	if !ok {
		if len(cs.Lookup) >= int(cs.Config.MaxCameraCount) {
			err := fmt.Errorf("func CameraSystemAcquire failed to acquire new slot. Adjust camera system config to allow more")
			core.LogError(err.Error())
			return nil, err
		}
		core.LogDebug("Creating new camera named '%s'...", name)
		lookup = &components.CameraLookup{
			Camera: components.NewCamera(components.NewObject(name, cs.root)),
		}
		cs.Lookup[name] = lookup
	}
	lookup.ReferenceCount++
	return lookup.Camera, nil
}

/**
 * @brief Releases a camera with the given name. Internal reference
 * counter is decremented. If this reaches 0, the camera and its object
 * are destroyed.
 *
 * @param name The name of the camera to release.
 */
func (cs *CameraSystem) Release(name string) {
	if name == components.DEFAULT_CAMERA_NAME {
		core.LogDebug("Cannot release default camera. Nothing was done.")
		return
	}
	lookup, ok := cs.Lookup[name]
	if !ok {
		core.LogWarn("CameraSystemRelease failed lookup. Nothing was done.")
		return
	}
	lookup.ReferenceCount--
	if lookup.ReferenceCount < 1 {
		if err := lookup.Camera.Object().Destroy(); err != nil {
			core.LogWarn("failed to destroy camera '%s': %s", name, err)
		}
		delete(cs.Lookup, name)
	}
}

/**
 * @brief Gets the default camera.
 */
func (cs *CameraSystem) GetDefault() *components.Camera {
	return cs.DefaultCamera
}
