package headless_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/valerio/go-dmg/dmg/backend"
	"github.com/valerio/go-dmg/dmg/backend/headless"
	"github.com/valerio/go-dmg/dmg/input/action"
	"github.com/valerio/go-dmg/dmg/input/event"
	"github.com/valerio/go-dmg/dmg/video"
)

func TestQuitAfterMaxFrames(t *testing.T) {
	h := headless.New(3, headless.SnapshotConfig{})
	require.NoError(t, h.Init(backend.BackendConfig{Title: "Test"}))

	frame := video.NewFrameBuffer()

	for i := 0; i < 3; i++ {
		events, err := h.Update(frame)
		require.NoError(t, err)

		if i < 2 {
			assert.Empty(t, events)
		} else {
			require.Len(t, events, 1)
			assert.Equal(t, action.EmulatorQuit, events[0].Action)
			assert.Equal(t, event.Press, events[0].Type)
		}
	}

	assert.NoError(t, h.Cleanup())
}

func TestTestPatternModeQuitsImmediately(t *testing.T) {
	h := headless.New(100, headless.SnapshotConfig{})
	require.NoError(t, h.Init(backend.BackendConfig{TestPattern: true}))

	events, err := h.Update(video.NewFrameBuffer())
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, action.EmulatorQuit, events[0].Action)
}

func TestSnapshotsOnSchedule(t *testing.T) {
	dir := t.TempDir()
	h := headless.New(5, headless.SnapshotConfig{
		Enabled:   true,
		Interval:  2,
		Directory: dir,
		ROMName:   "demo",
	})
	require.NoError(t, h.Init(backend.BackendConfig{}))

	frame := video.NewFrameBuffer()
	frame.Fill(3)

	for i := 0; i < 5; i++ {
		_, err := h.Update(frame)
		require.NoError(t, err)
	}

	// Frames 2 and 4 on schedule, plus the final frame 5.
	files, err := filepath.Glob(filepath.Join(dir, "demo_frame_*.png"))
	require.NoError(t, err)
	assert.Len(t, files, 3)
}

func TestCreateSnapshotConfig(t *testing.T) {
	t.Run("disabled when interval is zero", func(t *testing.T) {
		config, err := headless.CreateSnapshotConfig(0, "", "game.gb")
		require.NoError(t, err)
		assert.False(t, config.Enabled)
	})

	t.Run("uses temp directory by default", func(t *testing.T) {
		config, err := headless.CreateSnapshotConfig(10, "", "roms/tetris.gb")
		require.NoError(t, err)
		defer os.RemoveAll(config.Directory)

		assert.True(t, config.Enabled)
		assert.NotEmpty(t, config.Directory)
		assert.Equal(t, "tetris", config.ROMName)
	})

	t.Run("creates the requested directory", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "snaps")
		config, err := headless.CreateSnapshotConfig(10, dir, "game.gb")
		require.NoError(t, err)

		assert.Equal(t, dir, config.Directory)
		_, err = os.Stat(dir)
		assert.NoError(t, err)
	})
}

func TestHeadlessImplementsBackend(t *testing.T) {
	var _ backend.Backend = (*headless.Backend)(nil)
}
