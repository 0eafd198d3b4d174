//go:build !sdl2

package sdl2

import (
	"errors"

	"github.com/valerio/go-dmg/dmg/backend"
	"github.com/valerio/go-dmg/dmg/video"
)

// Backend is the stub used when SDL2 is not compiled in.
type Backend struct{}

func New() *Backend {
	return &Backend{}
}

func (s *Backend) Init(config backend.BackendConfig) error {
	return errors.New("SDL2 frontend not available, build with -tags sdl2 to enable")
}

func (s *Backend) Update(frame *video.FrameBuffer) ([]backend.InputEvent, error) {
	return nil, errors.New("SDL2 frontend not available")
}

func (s *Backend) Cleanup() error {
	return nil
}
