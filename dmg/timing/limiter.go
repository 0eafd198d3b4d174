// Package timing paces the frame loop against the DMG clock: a frame
// is 70224 cycles at 4194304 Hz, just under 59.73 frames per second.
package timing

import "time"

// DMG master clock constants.
const (
	CPUFrequency   = 4194304
	CyclesPerFrame = 70224
)

// Limiter throttles a frame loop to real time.
type Limiter interface {
	// WaitForNextFrame blocks until the next frame is due. It returns
	// immediately when emulation is behind schedule.
	WaitForNextFrame()

	// Reset forgets the accumulated schedule, useful after a pause.
	Reset()
}

// TargetFPS returns the exact DMG frame rate.
func TargetFPS() float64 {
	return float64(CPUFrequency) / float64(CyclesPerFrame)
}

// FrameDuration returns the wall-clock length of one frame.
func FrameDuration() time.Duration {
	return time.Duration(float64(time.Second) / TargetFPS())
}

// NewNoOpLimiter returns a limiter that never waits, for headless and
// benchmark runs.
func NewNoOpLimiter() Limiter { return noOpLimiter{} }

type noOpLimiter struct{}

func (noOpLimiter) WaitForNextFrame() {}
func (noOpLimiter) Reset()            {}
