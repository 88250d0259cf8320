//go:build !headless

package renderer

import (
	"github.com/spaghettifunk/debugdraw/engine/platform"
	"github.com/spaghettifunk/debugdraw/engine/renderer/opengl"
)

var _ RendererBackend = (*opengl.Backend)(nil)

func newOpenGLBackend() (RendererBackend, error) {
	p, err := platform.New()
	if err != nil {
		return nil, err
	}
	return opengl.New(p), nil
}
