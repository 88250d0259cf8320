package engine

import (
	"context"
	"errors"
	"fmt"

	"github.com/spaghettifunk/debugdraw/engine/assets"
	"github.com/spaghettifunk/debugdraw/engine/core"
	"github.com/spaghettifunk/debugdraw/engine/debugtools"
	"github.com/spaghettifunk/debugdraw/engine/renderer"
	"github.com/spaghettifunk/debugdraw/engine/renderer/components"
	"github.com/spaghettifunk/debugdraw/engine/renderer/metadata"
	"github.com/spaghettifunk/debugdraw/engine/systems"
)

type Stage uint8

const (
	// Engine is in an uninitialized state
	EngineStageUninitialized Stage = iota
	// Engine is currently initializing
	EngineStageInitializing
	// Engine initialization is complete
	EngineStageInitialized
	// Engine is currently running
	EngineStageRunning
	// Engine is in the process of shutting down
	EngineStageShuttingDown
	// Engine has released every resource
	EngineStageShutdown
)

// metrics are logged every this many frames
const metricsInterval = 120

type Engine struct {
	currentStage  Stage
	gameInstance  *Game
	renderer      *renderer.Renderer
	systemManager *systems.SystemManager
	watcher       *assets.Watcher
	scene         *Scene
	clock         *core.Clock
	metrics       *core.Metrics
	frame         uint64
	lastTime      float64
}

func New(g *Game) (*Engine, error) {
	if g.ApplicationConfig == nil {
		g.ApplicationConfig = DefaultApplicationConfig()
	}
	if err := g.ApplicationConfig.Validate(); err != nil {
		core.LogError(err.Error())
		return nil, err
	}
	if err := core.SetLogLevel(g.ApplicationConfig.LogLevel); err != nil {
		return nil, err
	}
	return &Engine{
		currentStage: EngineStageUninitialized,
		gameInstance: g,
		clock:        core.NewClock(),
		metrics:      core.NewMetrics(),
	}, nil
}

func (e *Engine) Initialize() error {
	e.currentStage = EngineStageInitializing
	config := e.gameInstance.ApplicationConfig

	rendererType, err := renderer.ParseRendererType(config.Backend)
	if err != nil {
		return err
	}
	r, err := renderer.New(rendererType, config.BackendConfig())
	if err != nil {
		return err
	}
	e.renderer = r

	root := components.NewObject("scene", nil)
	sm, err := systems.NewSystemManager(root)
	if err != nil {
		return err
	}
	e.systemManager = sm
	e.gameInstance.SystemManager = sm
	if err := sm.Resources().Apply(config.RenderOptions()); err != nil {
		return err
	}

	meshes, err := debugtools.NewMeshes(r)
	if err != nil {
		return err
	}

	camera := sm.Cameras().GetDefault()
	camera.SetPerspective(45, float32(config.Width)/float32(config.Height), 0.1, 100)

	e.scene = &Scene{
		Renderer:  r,
		Root:      root,
		Camera:    camera,
		Drawables: components.NewDrawableGroup(),
		Resources: sm.Resources(),
		Meshes:    meshes,
	}

	if e.gameInstance.ConfigPath != "" {
		w, err := assets.NewWatcher()
		if err != nil {
			return err
		}
		e.watcher = w
		if err := w.Watch(e.gameInstance.ConfigPath); err != nil {
			return err
		}
	}

	if e.gameInstance.FnInitialize != nil {
		if err := e.gameInstance.FnInitialize(e.scene); err != nil {
			core.LogError("game failed to initialize: %s", err)
			return err
		}
	}

	e.currentStage = EngineStageInitialized
	core.LogInfo("engine initialized with the %s backend", rendererType)
	return nil
}

func (e *Engine) Scene() *Scene {
	return e.scene
}

func (e *Engine) Metrics() *core.Metrics {
	return e.metrics
}

// Frames is the number of frames rendered so far.
func (e *Engine) Frames() uint64 {
	return e.frame
}

// Run renders frames until ctx is cancelled or the configured frame count is
// reached. Config reloads are applied between frames, never during a draw.
func (e *Engine) Run(ctx context.Context) error {
	if e.currentStage != EngineStageInitialized {
		return fmt.Errorf("engine cannot run from stage %d", e.currentStage)
	}
	e.currentStage = EngineStageRunning
	defer func() { e.currentStage = EngineStageInitialized }()

	e.clock.Start()
	e.clock.Update()
	e.lastTime = e.clock.Elapsed()

	limit := e.gameInstance.ApplicationConfig.Frames
	for limit == 0 || e.frame < limit {
		select {
		case <-ctx.Done():
			core.LogInfo("stopping after %d frames", e.frame)
			return nil
		default:
		}

		e.applyChanges()

		e.clock.Update()
		currentTime := e.clock.Elapsed()
		delta := currentTime - e.lastTime

		if e.gameInstance.FnUpdate != nil {
			if err := e.gameInstance.FnUpdate(delta); err != nil {
				core.LogError("Game update failed, shutting down.")
				return err
			}
		}

		primitives, err := e.renderer.DrawFrame(func() error {
			return e.scene.Camera.Draw(e.scene.Drawables)
		})
		if err != nil {
			core.LogError("Game render failed, shutting down.")
			return err
		}

		e.metrics.Update(core.FrameSample{ElapsedSeconds: delta, Primitives: primitives})
		e.frame++
		if e.frame%metricsInterval == 0 {
			core.LogInfo("frame %d: %.0f fps, %.2f ms, %.0f primitives", e.frame, e.metrics.FPS(), e.metrics.FrameTime(), e.metrics.Primitives())
		}
		e.lastTime = currentTime
	}
	return nil
}

// applyChanges reloads the render options from every pending config change.
// A broken file keeps the previous options.
func (e *Engine) applyChanges() {
	if e.watcher == nil {
		return
	}
	for {
		select {
		case path, ok := <-e.watcher.Changes():
			if !ok {
				e.watcher = nil
				return
			}
			if err := e.Reload(path); err != nil {
				core.LogWarn("ignoring config change: %s", err)
			}
		case err, ok := <-e.watcher.Errors():
			if !ok {
				e.watcher = nil
				return
			}
			core.LogWarn("config watcher: %s", err)
		default:
			return
		}
	}
}

// Reload applies the render options and log level of the config at path.
func (e *Engine) Reload(path string) error {
	config, err := LoadApplicationConfig(path)
	if err != nil {
		return err
	}
	if err := e.systemManager.Resources().Apply(config.RenderOptions()); err != nil {
		return err
	}
	if err := core.SetLogLevel(config.LogLevel); err != nil {
		return err
	}
	core.LogInfo("reloaded render options from %s", path)
	return nil
}

// Screenshot reads the framebuffer now and writes it to path on the job
// system. Shutdown waits for pending screenshots.
func (e *Engine) Screenshot(path string) error {
	if e.renderer == nil {
		return fmt.Errorf("engine is not initialized")
	}
	img, err := e.renderer.Backend().ReadPixels()
	if err != nil {
		return err
	}
	return e.systemManager.Jobs().Submit(metadata.JobTask{
		Name: "screenshot " + path,
		Run: func() error {
			return assets.SaveImage(path, img)
		},
		OnComplete: func() {
			core.LogInfo("saved screenshot to %s", path)
		},
	})
}

func (e *Engine) Shutdown() error {
	e.currentStage = EngineStageShuttingDown
	var errs []error
	if e.gameInstance.FnShutdown != nil {
		errs = append(errs, e.gameInstance.FnShutdown())
	}
	if e.watcher != nil {
		errs = append(errs, e.watcher.Close())
	}
	if e.systemManager != nil {
		errs = append(errs, e.systemManager.Shutdown())
	}
	if e.scene != nil {
		errs = append(errs, e.scene.Root.Destroy(), e.scene.Meshes.Destroy())
	}
	if e.renderer != nil {
		errs = append(errs, e.renderer.Shutdown())
	}
	e.currentStage = EngineStageShutdown
	return errors.Join(errs...)
}
