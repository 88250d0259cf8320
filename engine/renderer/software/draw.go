package software

import (
	"fmt"
	"image"
	"image/color"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/spaghettifunk/debugdraw/engine/core"
	"github.com/spaghettifunk/debugdraw/engine/renderer/metadata"
)

const maxNDC = 1024

// Draw runs the builtin flat shader over the call: every position is moved to
// clip space, counted by the active queries, captured by the active transform
// feedback and finally rasterized unless rasterizer discard is enabled.
func (b *Backend) Draw(call *metadata.DrawCall) error {
	if b.framebuffer == nil {
		return fmt.Errorf("software backend: %w", core.ErrNoContext)
	}
	if fb := b.activeFeedback; fb != nil && call.Primitive.Base() != fb.mode {
		return fmt.Errorf("draw mode %d does not match transform feedback mode %d", call.Primitive, fb.mode)
	}

	positions, err := b.positions(call)
	if err != nil {
		return err
	}
	clip := make([]mgl32.Vec4, len(positions))
	for i, p := range positions {
		clip[i] = call.Transformation.Mul4x1(p.Vec4(1))
	}
	primitives := assemble(call.Primitive, clip)

	b.draws = append(b.draws, *call)
	b.stats.DrawCalls++
	b.stats.Primitives += uint64(len(primitives))
	b.countQuery(metadata.QueryTargetPrimitivesGenerated, uint32(len(primitives)))

	if fb := b.activeFeedback; fb != nil {
		written, err := b.capture(fb, primitives)
		if err != nil {
			return err
		}
		b.countQuery(metadata.QueryTargetTransformFeedbackPrimitivesWritten, written)
	}

	if b.features[metadata.FeatureRasterizerDiscard] {
		return nil
	}
	src := image.NewUniform(toNRGBA(call.Color))
	for _, primitive := range primitives {
		b.rasterize(primitive, src)
	}
	return nil
}

// assemble groups vertices into independent primitives. Line strips become
// separate segments, which is also how transform feedback records them.
func assemble(mode metadata.PrimitiveMode, vertices []mgl32.Vec4) [][]mgl32.Vec4 {
	count := mode.PrimitiveCount(uint32(len(vertices)))
	out := make([][]mgl32.Vec4, 0, count)
	if mode == metadata.PrimitiveLineStrip {
		for i := uint32(0); i < count; i++ {
			out = append(out, []mgl32.Vec4{vertices[i], vertices[i+1]})
		}
		return out
	}
	n := mode.VerticesPerPrimitive()
	for i := uint32(0); i < count; i++ {
		out = append(out, vertices[i*n:(i+1)*n])
	}
	return out
}

func (b *Backend) window(v mgl32.Vec4) (float32, float32) {
	w := float32(b.framebuffer.Bounds().Dx())
	h := float32(b.framebuffer.Bounds().Dy())
	ndc := v.Vec3().Mul(1 / v.W())
	return (ndc.X() + 1) * 0.5 * w, (1 - ndc.Y()) * 0.5 * h
}

func (b *Backend) rasterize(primitive []mgl32.Vec4, src image.Image) {
	for _, v := range primitive {
		// no clipping: primitives behind the eye or far outside the
		// viewport are skipped
		if v.W() <= 0 {
			return
		}
		for c := 0; c < 3; c++ {
			if ndc := v[c] / v.W(); ndc < -maxNDC || ndc > maxNDC {
				return
			}
		}
	}
	bounds := b.framebuffer.Bounds()
	b.rasterizer.Reset(bounds.Dx(), bounds.Dy())

	switch len(primitive) {
	case 1:
		x, y := b.window(primitive[0])
		b.rasterizer.MoveTo(x-0.5, y-0.5)
		b.rasterizer.LineTo(x+0.5, y-0.5)
		b.rasterizer.LineTo(x+0.5, y+0.5)
		b.rasterizer.LineTo(x-0.5, y+0.5)
	case 2:
		x0, y0 := b.window(primitive[0])
		x1, y1 := b.window(primitive[1])
		// one pixel wide quad along the segment
		dx, dy := x1-x0, y1-y0
		length := mgl32.Vec2{dx, dy}.Len()
		if length == 0 {
			return
		}
		nx, ny := -dy/length*0.5, dx/length*0.5
		b.rasterizer.MoveTo(x0+nx, y0+ny)
		b.rasterizer.LineTo(x1+nx, y1+ny)
		b.rasterizer.LineTo(x1-nx, y1-ny)
		b.rasterizer.LineTo(x0-nx, y0-ny)
	default:
		x, y := b.window(primitive[0])
		b.rasterizer.MoveTo(x, y)
		for _, v := range primitive[1:] {
			x, y = b.window(v)
			b.rasterizer.LineTo(x, y)
		}
	}
	b.rasterizer.ClosePath()
	b.rasterizer.Draw(b.framebuffer, bounds, src, image.Point{})
}

func toNRGBA(c mgl32.Vec4) color.NRGBA {
	channel := func(v float32) uint8 {
		return uint8(mgl32.Clamp(v, 0, 1)*255 + 0.5)
	}
	return color.NRGBA{R: channel(c.X()), G: channel(c.Y()), B: channel(c.Z()), A: channel(c.W())}
}
