package backend

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/valerio/go-dmg/dmg/video"
)

// SavePNG writes the frame as a grayscale PNG named
// <baseName>_<timestamp>.png in directory (the working directory when
// empty) and returns the full path.
func SavePNG(frame *video.FrameBuffer, baseName, directory string) (string, error) {
	img := image.NewGray(image.Rect(0, 0, video.FramebufferWidth, video.FramebufferHeight))
	for y := 0; y < video.FramebufferHeight; y++ {
		for x := 0; x < video.FramebufferWidth; x++ {
			img.SetGray(x, y, color.Gray{Y: Grayscale[frame.GetPixel(x, y)]})
		}
	}

	if directory == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("resolving snapshot directory: %w", err)
		}
		directory = cwd
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(directory, fmt.Sprintf("%s_%s.png", baseName, timestamp))

	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating snapshot file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return "", fmt.Errorf("encoding snapshot: %w", err)
	}
	return path, nil
}

// TakeSnapshot saves the current frame, logging instead of failing so
// a broken disk never interrupts play.
func TakeSnapshot(frame *video.FrameBuffer, baseName string) {
	if frame == nil {
		slog.Warn("No frame available for snapshot")
		return
	}
	path, err := SavePNG(frame, baseName, "")
	if err != nil {
		slog.Error("Failed to save snapshot", "error", err)
		return
	}
	slog.Info("Saved snapshot", "path", path)
}
