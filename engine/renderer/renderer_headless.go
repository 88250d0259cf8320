//go:build headless

package renderer

import (
	"fmt"

	"github.com/spaghettifunk/debugdraw/engine/core"
)

// Headless builds carry no windowing or GL dependency.
func newOpenGLBackend() (RendererBackend, error) {
	return nil, fmt.Errorf("opengl backend not built in headless mode: %w", core.ErrUnknownBackend)
}
