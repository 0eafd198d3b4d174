//go:build sdl2

// Package sdl2 renders the emulator in an SDL window. Building it
// needs the SDL2 development libraries; default builds get the stub
// instead (see build tags).
package sdl2

import (
	"fmt"
	"log/slog"
	"unsafe"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/valerio/go-dmg/dmg/backend"
	"github.com/valerio/go-dmg/dmg/input"
	"github.com/valerio/go-dmg/dmg/input/action"
	"github.com/valerio/go-dmg/dmg/input/event"
	"github.com/valerio/go-dmg/dmg/video"
)

const bytesPerPixel = 4

// Backend implements backend.Backend on an SDL2 window.
type Backend struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture
	running  bool
	config   backend.BackendConfig

	currentFrame *video.FrameBuffer
	pixels       []byte
}

func New() *Backend {
	return &Backend{}
}

func (s *Backend) Init(config backend.BackendConfig) error {
	s.config = config

	scale := config.Scale
	if scale <= 0 {
		scale = backend.DefaultScale
	}

	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return fmt.Errorf("initializing SDL2: %w", err)
	}

	window, err := sdl.CreateWindow(
		config.Title,
		sdl.WINDOWPOS_CENTERED,
		sdl.WINDOWPOS_CENTERED,
		int32(video.FramebufferWidth*scale),
		int32(video.FramebufferHeight*scale),
		sdl.WINDOW_SHOWN,
	)
	if err != nil {
		sdl.Quit()
		return fmt.Errorf("creating window: %w", err)
	}
	s.window = window

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		window.Destroy()
		sdl.Quit()
		return fmt.Errorf("creating renderer: %w", err)
	}
	s.renderer = renderer

	texture, err := renderer.CreateTexture(
		sdl.PIXELFORMAT_RGBA8888,
		sdl.TEXTUREACCESS_STREAMING,
		video.FramebufferWidth,
		video.FramebufferHeight,
	)
	if err != nil {
		renderer.Destroy()
		window.Destroy()
		sdl.Quit()
		return fmt.Errorf("creating texture: %w", err)
	}
	s.texture = texture

	s.pixels = make([]byte, video.FramebufferWidth*video.FramebufferHeight*bytesPerPixel)
	s.running = true
	slog.Info("SDL2 frontend initialized", "scale", scale)
	return nil
}

func (s *Backend) Update(frame *video.FrameBuffer) ([]backend.InputEvent, error) {
	var events []backend.InputEvent

	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch e := ev.(type) {
		case *sdl.QuitEvent:
			s.running = false
			events = append(events, backend.InputEvent{Action: action.EmulatorQuit, Type: event.Press})
		case *sdl.KeyboardEvent:
			if e.Type == sdl.KEYDOWN {
				events = s.handleKeyDown(e.Keysym.Sym, e.Repeat, events)
			} else if e.Type == sdl.KEYUP {
				events = s.handleKeyUp(e.Keysym.Sym, events)
			}
		}
	}

	if !s.running {
		return events, nil
	}

	s.currentFrame = frame
	s.renderFrame(frame)
	return events, nil
}

func (s *Backend) Cleanup() error {
	slog.Info("Cleaning up SDL2 frontend")
	if s.texture != nil {
		s.texture.Destroy()
	}
	if s.renderer != nil {
		s.renderer.Destroy()
	}
	if s.window != nil {
		s.window.Destroy()
	}
	sdl.Quit()
	return nil
}

// sdlKeyNameMap converts SDL keycodes to default mapping names.
var sdlKeyNameMap = map[sdl.Keycode]string{
	sdl.K_z:         "z",
	sdl.K_x:         "x",
	sdl.K_RETURN:    "Enter",
	sdl.K_LSHIFT:    "Shift",
	sdl.K_RSHIFT:    "Shift",
	sdl.K_BACKSPACE: "Backspace",
	sdl.K_UP:        "Up",
	sdl.K_DOWN:      "Down",
	sdl.K_LEFT:      "Left",
	sdl.K_RIGHT:     "Right",
	sdl.K_w:         "w",
	sdl.K_s:         "s",
	sdl.K_a:         "a",
	sdl.K_d:         "d",
	sdl.K_SPACE:     "Space",
	sdl.K_p:         "p",
	sdl.K_o:         "o",
	sdl.K_n:         "n",
	sdl.K_t:         "t",
	sdl.K_q:         "q",
	sdl.K_ESCAPE:    "Escape",
	sdl.K_F9:        "F9",
	sdl.K_F10:       "F10",
	sdl.K_F12:       "F12",
	sdl.K_EQUALS:    "=",
	sdl.K_MINUS:     "-",
}

func buildKeyMapping() map[sdl.Keycode]action.Action {
	mapping := make(map[sdl.Keycode]action.Action)
	for key, name := range sdlKeyNameMap {
		if act, ok := input.GetDefaultMapping(name); ok {
			mapping[key] = act
		}
	}
	return mapping
}

var keyMapping = buildKeyMapping()

func (s *Backend) handleKeyDown(key sdl.Keycode, repeat uint8, events []backend.InputEvent) []backend.InputEvent {
	if repeat != 0 {
		return events
	}
	act, ok := keyMapping[key]
	if !ok {
		return events
	}

	switch act {
	case action.EmulatorSnapshot:
		backend.TakeSnapshot(s.currentFrame, "dmg_snapshot")
		return events
	case action.EmulatorQuit:
		s.running = false
	}
	return append(events, backend.InputEvent{Action: act, Type: event.Press})
}

func (s *Backend) handleKeyUp(key sdl.Keycode, events []backend.InputEvent) []backend.InputEvent {
	act, ok := keyMapping[key]
	if !ok || action.GetInfo(act).Category != action.CategoryGameInput {
		return events
	}
	return append(events, backend.InputEvent{Action: act, Type: event.Release})
}

func (s *Backend) renderFrame(frame *video.FrameBuffer) {
	// ABGR byte order for little-endian RGBA8888.
	for i, shade := range frame.ToSlice() {
		gray := backend.Grayscale[shade]
		idx := i * bytesPerPixel
		s.pixels[idx] = 0xFF
		s.pixels[idx+1] = gray
		s.pixels[idx+2] = gray
		s.pixels[idx+3] = gray
	}

	s.texture.Update(nil, unsafe.Pointer(&s.pixels[0]), video.FramebufferWidth*bytesPerPixel)
	s.renderer.SetDrawColor(0, 0, 0, 0xFF)
	s.renderer.Clear()
	s.renderer.Copy(s.texture, nil, nil)
	s.renderer.Present()
}
