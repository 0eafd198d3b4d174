package timing

import (
	"log/slog"
	"time"
)

// spinThreshold is the window where time.Sleep is too coarse and the
// limiter busy-waits instead.
const spinThreshold = 2 * time.Millisecond

// AdaptiveLimiter keeps an absolute schedule and combines sleeping with
// a short busy-wait so frames land on time without accumulating drift.
type AdaptiveLimiter struct {
	nextFrame time.Time
	period    time.Duration
	frames    int64
}

func NewAdaptiveLimiter() *AdaptiveLimiter {
	return &AdaptiveLimiter{
		nextFrame: time.Now(),
		period:    FrameDuration(),
	}
}

func (a *AdaptiveLimiter) WaitForNextFrame() {
	now := time.Now()
	remaining := a.nextFrame.Sub(now)

	switch {
	case remaining > spinThreshold:
		time.Sleep(remaining - time.Millisecond)
		for time.Now().Before(a.nextFrame) {
		}
	case remaining > 0:
		for time.Now().Before(a.nextFrame) {
		}
	case remaining < -5*time.Millisecond:
		// Too far behind to catch up; drop the backlog so the next
		// frames are not rushed.
		a.nextFrame = now
	}

	a.nextFrame = a.nextFrame.Add(a.period)
	a.frames++

	if a.frames%60 == 0 {
		if behind := -time.Until(a.nextFrame); behind > 10*time.Millisecond {
			slog.Debug("frame pacing behind schedule", "behind", behind)
		}
	}
}

func (a *AdaptiveLimiter) Reset() {
	a.nextFrame = time.Now()
	a.frames = 0
}
