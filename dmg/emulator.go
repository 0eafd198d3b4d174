package dmg

import (
	"github.com/valerio/go-dmg/dmg/input/action"
	"github.com/valerio/go-dmg/dmg/timing"
	"github.com/valerio/go-dmg/dmg/video"
)

// Emulator is the surface a frontend drives: produce one frame at a
// time, hand out the framebuffer, accept input actions.
type Emulator interface {
	RunUntilFrame() error
	GetCurrentFrame() *video.FrameBuffer
	HandleAction(act action.Action, pressed bool)
	SetFrameLimiter(limiter timing.Limiter)
	ResetFrameTiming()
}

var (
	_ Emulator = (*DMG)(nil)
	_ Emulator = (*TestPatternEmulator)(nil)
)
