package systems

import (
	"github.com/spaghettifunk/debugdraw/engine/renderer/components"
)

// SystemManager owns the systems of one scene.
type SystemManager struct {
	cameraSystem    *CameraSystem
	jobSystem       *JobSystem
	resourceManager *ResourceManager
}

func NewSystemManager(root *components.Object) (*SystemManager, error) {
	js, err := NewJobSystem(2, 8)
	if err != nil {
		return nil, err
	}

	cs, err := NewCameraSystem(&CameraSystemConfig{
		MaxCameraCount: 100,
	}, root)
	if err != nil {
		return nil, err
	}
	return &SystemManager{
		cameraSystem:    cs,
		jobSystem:       js,
		resourceManager: NewResourceManager(),
	}, nil
}

func (sm *SystemManager) Cameras() *CameraSystem {
	return sm.cameraSystem
}

func (sm *SystemManager) Jobs() *JobSystem {
	return sm.jobSystem
}

func (sm *SystemManager) Resources() *ResourceManager {
	return sm.resourceManager
}

func (sm *SystemManager) Shutdown() error {
	if err := sm.jobSystem.Shutdown(); err != nil {
		return err
	}
	if err := sm.resourceManager.Shutdown(); err != nil {
		return err
	}
	if err := sm.cameraSystem.Shutdown(); err != nil {
		return err
	}
	return nil
}
