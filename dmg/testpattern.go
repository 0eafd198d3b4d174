package dmg

import (
	"log/slog"

	"github.com/valerio/go-dmg/dmg/input/action"
	"github.com/valerio/go-dmg/dmg/timing"
	"github.com/valerio/go-dmg/dmg/video"
)

// patternAnimationFrames is how many displayed frames pass between
// animation steps of the moving patterns.
const patternAnimationFrames = 30

// TestPatternEmulator feeds a frontend animated patterns without
// running any emulation, for exercising rendering and input paths in
// isolation.
type TestPatternEmulator struct {
	framebuffer *video.FrameBuffer
	pattern     int
	frame       int
	limiter     timing.Limiter
}

func NewTestPatternEmulator() *TestPatternEmulator {
	e := &TestPatternEmulator{
		framebuffer: video.NewFrameBuffer(),
		limiter:     timing.NewNoOpLimiter(),
	}
	video.FillTestPattern(e.framebuffer, e.pattern, 0)
	return e
}

func (e *TestPatternEmulator) RunUntilFrame() error {
	e.frame++
	video.FillTestPattern(e.framebuffer, e.pattern, e.frame/patternAnimationFrames)
	e.limiter.WaitForNextFrame()
	return nil
}

func (e *TestPatternEmulator) GetCurrentFrame() *video.FrameBuffer {
	return e.framebuffer
}

func (e *TestPatternEmulator) HandleAction(act action.Action, pressed bool) {
	if act == action.EmulatorTestPatternCycle && pressed {
		e.CyclePattern()
	}
}

// CyclePattern switches to the next pattern.
func (e *TestPatternEmulator) CyclePattern() {
	e.pattern = (e.pattern + 1) % video.TestPatternCount
	video.FillTestPattern(e.framebuffer, e.pattern, e.frame/patternAnimationFrames)
	slog.Info("Switched to test pattern", "pattern", e.PatternName())
}

// PatternName returns the display name of the active pattern.
func (e *TestPatternEmulator) PatternName() string {
	return video.TestPatternNames[e.pattern]
}

// SetFrameLimiter replaces the frame limiter; nil means free-running.
func (e *TestPatternEmulator) SetFrameLimiter(limiter timing.Limiter) {
	if limiter == nil {
		limiter = timing.NewNoOpLimiter()
	}
	e.limiter = limiter
}

// ResetFrameTiming drops the limiter's schedule.
func (e *TestPatternEmulator) ResetFrameTiming() {
	e.limiter.Reset()
}
