// Package headless is the frontend for batch runs: no rendering, no
// input, just frame counting and optional PNG snapshots. It signals
// completion by emitting a quit action once the frame budget is spent.
package headless

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/valerio/go-dmg/dmg/backend"
	"github.com/valerio/go-dmg/dmg/input/action"
	"github.com/valerio/go-dmg/dmg/input/event"
	"github.com/valerio/go-dmg/dmg/video"
)

// Backend implements backend.Backend without a display.
type Backend struct {
	config     backend.BackendConfig
	frameCount int
	maxFrames  int
	snapshots  SnapshotConfig
}

// SnapshotConfig controls periodic frame snapshots.
type SnapshotConfig struct {
	Enabled   bool
	Interval  int    // save every N frames
	Directory string
	ROMName   string // base name for snapshot files
}

func New(maxFrames int, snapshots SnapshotConfig) *Backend {
	return &Backend{
		maxFrames: maxFrames,
		snapshots: snapshots,
	}
}

func (h *Backend) Init(config backend.BackendConfig) error {
	h.config = config

	if config.TestPattern {
		slog.Info("Headless test pattern mode, exiting after one frame")
		return nil
	}

	slog.Info("Running headless",
		"frames", h.maxFrames,
		"snapshot_interval", h.snapshots.Interval,
		"snapshot_dir", h.snapshots.Directory)
	return nil
}

// Update counts the frame, saves snapshots on schedule and emits a
// quit action once maxFrames have been seen.
func (h *Backend) Update(frame *video.FrameBuffer) ([]backend.InputEvent, error) {
	if h.config.TestPattern {
		return []backend.InputEvent{{Action: action.EmulatorQuit, Type: event.Press}}, nil
	}

	h.frameCount++

	if h.snapshots.Enabled && h.frameCount%h.snapshots.Interval == 0 {
		h.saveSnapshot(frame)
	}

	if h.frameCount%10 == 0 {
		slog.Info("Frame progress", "completed", h.frameCount, "total", h.maxFrames)
	}

	if h.frameCount < h.maxFrames {
		return nil, nil
	}

	// Final snapshot, unless the schedule just produced one.
	if h.snapshots.Enabled && h.frameCount%h.snapshots.Interval != 0 {
		h.saveSnapshot(frame)
	}

	if h.snapshots.Enabled {
		slog.Info("Headless run completed", "frames", h.maxFrames, "snapshots_saved_to", h.snapshots.Directory)
	} else {
		slog.Info("Headless run completed", "frames", h.maxFrames)
	}
	return []backend.InputEvent{{Action: action.EmulatorQuit, Type: event.Press}}, nil
}

func (h *Backend) Cleanup() error {
	return nil
}

func (h *Backend) saveSnapshot(frame *video.FrameBuffer) {
	name := fmt.Sprintf("%s_frame_%d", h.snapshots.ROMName, h.frameCount)
	if _, err := backend.SavePNG(frame, name, h.snapshots.Directory); err != nil {
		slog.Error("Failed to save snapshot", "frame", h.frameCount, "error", err)
	}
}

// CreateSnapshotConfig builds a snapshot configuration from CLI
// parameters. A zero interval disables snapshots; an empty directory
// gets a fresh temp directory.
func CreateSnapshotConfig(interval int, directory, romPath string) (SnapshotConfig, error) {
	config := SnapshotConfig{
		Enabled:  interval > 0,
		Interval: interval,
	}
	if !config.Enabled {
		return config, nil
	}

	if directory == "" {
		tempDir, err := os.MkdirTemp("", "dmg-snapshots-*")
		if err != nil {
			return config, fmt.Errorf("creating snapshot directory: %w", err)
		}
		config.Directory = tempDir
	} else {
		if err := os.MkdirAll(directory, 0o755); err != nil {
			return config, fmt.Errorf("creating snapshot directory: %w", err)
		}
		config.Directory = directory
	}

	base := filepath.Base(romPath)
	config.ROMName = strings.TrimSuffix(base, filepath.Ext(base))
	return config, nil
}
