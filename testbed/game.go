package testbed

import (
	stdmath "math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/spaghettifunk/debugdraw/engine"
	"github.com/spaghettifunk/debugdraw/engine/core"
	"github.com/spaghettifunk/debugdraw/engine/debugtools"
	"github.com/spaghettifunk/debugdraw/engine/math"
	"github.com/spaghettifunk/debugdraw/engine/renderer/components"
)

type TestGame struct {
	*engine.Game
}

type gameState struct {
	elapsed float64

	bounds *math.AxisAlignedBox
	body   *components.Object
	force  mgl32.Vec3
}

// NewTestGame builds the demo scene: an axis-aligned box that breathes, an
// oriented box spinning around it and a force arrow sweeping through 3D.
func NewTestGame(config *engine.ApplicationConfig, configPath string) *TestGame {
	tg := &TestGame{
		Game: &engine.Game{
			ApplicationConfig: config,
			ConfigPath:        configPath,
			State:             &gameState{},
		},
	}
	tg.FnInitialize = tg.Initialize
	tg.FnUpdate = tg.Update
	tg.FnShutdown = tg.Shutdown
	return tg
}

func (g *TestGame) Initialize(scene *engine.Scene) error {
	core.LogDebug("TestGame Initialize fn....")
	state := g.State.(*gameState)

	scene.Camera.LookAt(mgl32.Vec3{4, 3, 8}, mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})

	state.bounds = math.NewAxisAlignedBox(mgl32.Vec3{-1, -1, -1}, mgl32.Vec3{1, 1, 1})
	world := components.NewObject("world", scene.Root)
	debugtools.NewShapeRenderer(world, "bounds", scene.Resources, scene.Drawables).
		Add(debugtools.NewAxisAlignedBoxRenderer(scene.Meshes, state.bounds))

	state.body = components.NewObject("body", scene.Root)
	state.body.Transform.SetPosition(mgl32.Vec3{2.5, 0, 0})
	obb := math.NewBox(mgl32.Scale3D(0.5, 0.25, 0.75))
	debugtools.NewShapeRenderer(state.body, "body", scene.Resources, scene.Drawables).
		Add(debugtools.NewOrientedBoxRenderer(scene.Meshes, obb))

	state.force = mgl32.Vec3{1, 0, 0}
	debugtools.NewForceRenderer(state.body, scene.Meshes, mgl32.Vec3{}, &state.force, "gravity", scene.Resources, scene.Drawables)
	return nil
}

func (g *TestGame) Update(deltaTime float64) error {
	state := g.State.(*gameState)
	state.elapsed += deltaTime
	t := float32(state.elapsed)

	scale := 1 + 0.25*float32(stdmath.Sin(float64(t)))
	state.bounds.SetMin(mgl32.Vec3{-scale, -scale, -scale})
	state.bounds.SetMax(mgl32.Vec3{scale, scale, scale})

	state.body.Transform.RotateY(float32(0.5 * deltaTime))

	state.force = mgl32.Vec3{
		float32(stdmath.Cos(float64(t))),
		float32(stdmath.Sin(float64(t) * 0.7)),
		float32(stdmath.Sin(float64(t))),
	}.Mul(1.5)
	return nil
}

func (g *TestGame) Shutdown() error {
	core.LogDebug("TestGame Shutdown fn....")
	return nil
}
