package engine

import (
	"github.com/spaghettifunk/debugdraw/engine/debugtools"
	"github.com/spaghettifunk/debugdraw/engine/renderer"
	"github.com/spaghettifunk/debugdraw/engine/renderer/components"
	"github.com/spaghettifunk/debugdraw/engine/systems"
)

type Game struct {
	ApplicationConfig *ApplicationConfig
	// ConfigPath is watched for changes when set; render options are
	// reloaded from it between frames.
	ConfigPath    string
	SystemManager *systems.SystemManager
	State         interface{}
	FnInitialize  Initialize
	FnUpdate      Update
	FnShutdown    Shutdown
}

// Scene is everything a game needs to build its debug visualization.
type Scene struct {
	Renderer  *renderer.Renderer
	Root      *components.Object
	Camera    *components.Camera
	Drawables *components.DrawableGroup
	Resources *systems.ResourceManager
	Meshes    *debugtools.Meshes
}

type Initialize func(scene *Scene) error
type Update func(deltaTime float64) error
type Shutdown func() error
