// Package software is a headless renderer backend. It keeps GPU objects in
// host memory, completes queries after a configurable number of availability
// polls, captures transform feedback into buffers and rasterizes into an RGBA
// framebuffer. Everything is deterministic, which makes it the backend the
// test suites run against.
package software

import (
	"fmt"
	"image"
	"image/draw"

	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/image/vector"

	"github.com/spaghettifunk/debugdraw/engine/core"
	"github.com/spaghettifunk/debugdraw/engine/renderer/metadata"
)

const (
	defaultWidth  = 64
	defaultHeight = 64
)

// Stats counts what the backend was asked to do since initialization.
type Stats struct {
	DrawCalls  uint64
	Primitives uint64
	// InvalidDeletes counts deletes of names that were not live, i.e.
	// double deletes or deletes of names never created.
	InvalidDeletes int
	// Stalls counts result reads that had to wait for completion.
	Stalls int
}

type Backend struct {
	config metadata.RendererBackendConfig

	queries   *core.Identifiers
	buffers   *core.Identifiers
	feedbacks *core.Identifiers

	activeQueries  map[metadata.QueryTarget]*query
	activeFeedback *feedback
	features       map[metadata.Feature]bool

	framebuffer *image.RGBA
	rasterizer  *vector.Rasterizer

	draws []metadata.DrawCall
	stats Stats
}

func New() *Backend {
	return &Backend{
		queries:       core.NewIdentifiers(16),
		buffers:       core.NewIdentifiers(16),
		feedbacks:     core.NewIdentifiers(4),
		activeQueries: make(map[metadata.QueryTarget]*query),
		features:      make(map[metadata.Feature]bool),
	}
}

func (b *Backend) Initialize(config metadata.RendererBackendConfig) error {
	if config.Width == 0 {
		config.Width = defaultWidth
	}
	if config.Height == 0 {
		config.Height = defaultHeight
	}
	b.config = config
	b.framebuffer = image.NewRGBA(image.Rect(0, 0, int(config.Width), int(config.Height)))
	b.rasterizer = vector.NewRasterizer(int(config.Width), int(config.Height))
	core.LogInfo("software backend initialized for '%s' (%dx%d, query latency %d)", config.ApplicationName, config.Width, config.Height, config.QueryLatency)
	return nil
}

func (b *Backend) Shutdown() error {
	leaks := b.queries.Live() + b.buffers.Live() + b.feedbacks.Live()
	if leaks > 0 {
		core.LogWarn("software backend shut down with %d live objects", leaks)
	}
	b.activeQueries = make(map[metadata.QueryTarget]*query)
	b.activeFeedback = nil
	return nil
}

// SetQueryLatency changes how many polls a finished query needs.
func (b *Backend) SetQueryLatency(polls uint32) {
	b.config.QueryLatency = polls
}

func (b *Backend) Stats() Stats {
	return b.stats
}

// LiveObjects counts queries, buffers and transform feedbacks not yet deleted.
func (b *Backend) LiveObjects() int {
	return b.queries.Live() + b.buffers.Live() + b.feedbacks.Live()
}

// Draws returns the draw calls issued since the last ResetDraws.
func (b *Backend) Draws() []metadata.DrawCall {
	out := make([]metadata.DrawCall, len(b.draws))
	copy(out, b.draws)
	return out
}

func (b *Backend) ResetDraws() {
	b.draws = b.draws[:0]
}

func (b *Backend) Enable(feature metadata.Feature) {
	b.features[feature] = true
}

func (b *Backend) Disable(feature metadata.Feature) {
	b.features[feature] = false
}

func (b *Backend) IsEnabled(feature metadata.Feature) bool {
	return b.features[feature]
}

func (b *Backend) Clear(color mgl32.Vec4) {
	if b.framebuffer == nil {
		return
	}
	draw.Draw(b.framebuffer, b.framebuffer.Bounds(), image.NewUniform(toNRGBA(color)), image.Point{}, draw.Src)
}

func (b *Backend) ReadPixels() (*image.RGBA, error) {
	if b.framebuffer == nil {
		return nil, fmt.Errorf("software backend: %w", core.ErrNoContext)
	}
	out := image.NewRGBA(b.framebuffer.Bounds())
	copy(out.Pix, b.framebuffer.Pix)
	return out, nil
}

func (b *Backend) invalidDelete(kind string, id uint32, err error) error {
	b.stats.InvalidDeletes++
	core.LogError("software backend: delete %s %d: %s", kind, id, err)
	return fmt.Errorf("delete %s %d: %w", kind, id, err)
}
