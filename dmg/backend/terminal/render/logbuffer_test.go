package render

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogBufferWrapsAround(t *testing.T) {
	lb := NewLogBuffer(3)
	for i := 0; i < 5; i++ {
		lb.Add(LogEntry{Message: string(rune('a' + i))})
	}

	recent := lb.GetRecent(0)
	require.Len(t, recent, 3)
	assert.Equal(t, "e", recent[0].Message)
	assert.Equal(t, "d", recent[1].Message)
	assert.Equal(t, "c", recent[2].Message)
}

func TestLogBufferGetRecentLimit(t *testing.T) {
	lb := NewLogBuffer(10)
	for i := 0; i < 4; i++ {
		lb.Add(LogEntry{Message: "m"})
	}

	assert.Len(t, lb.GetRecent(2), 2)
	assert.Len(t, lb.GetRecent(0), 4)

	lb.Clear()
	assert.Empty(t, lb.GetRecent(0))
}

func TestHandlerCapturesAttrs(t *testing.T) {
	lb := NewLogBuffer(10)
	logger := slog.New(NewLogBufferHandler(lb, slog.LevelDebug))

	logger.Info("loaded", "rom", "tetris.gb")
	logger.With("frame", 3).Warn("slow")

	recent := lb.GetRecent(0)
	require.Len(t, recent, 2)
	assert.Equal(t, "slow frame=3", recent[0].Message)
	assert.Equal(t, slog.LevelWarn, recent[0].Level)
	assert.Equal(t, "loaded rom=tetris.gb", recent[1].Message)
}

func TestHandlerLevelFilter(t *testing.T) {
	lb := NewLogBuffer(10)
	h := NewLogBufferHandler(lb, slog.LevelInfo)

	assert.False(t, h.Enabled(context.Background(), slog.LevelDebug))
	assert.True(t, h.Enabled(context.Background(), slog.LevelError))
}

func TestFormatLogEntry(t *testing.T) {
	entry := LogEntry{
		Time:    time.Date(2024, 5, 1, 9, 30, 15, 0, time.UTC),
		Level:   slog.LevelError,
		Message: "bad frame",
	}
	assert.Equal(t, "09:30:15 [ERR] bad frame", FormatLogEntry(entry))
}

func TestHalfBlock(t *testing.T) {
	assert.Equal(t, '█', HalfBlock(2, 2))
	assert.Equal(t, '▀', HalfBlock(0, 3))
}
