package backend

import (
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/valerio/go-dmg/dmg/video"
)

func TestSavePNGWritesGrayscaleFrame(t *testing.T) {
	frame := video.NewFrameBuffer()
	frame.Fill(0)
	frame.SetPixel(0, 0, 3)
	frame.SetPixel(159, 143, 2)
	frame.SetPixel(80, 72, 1)

	dir := t.TempDir()
	path, err := SavePNG(frame, "test", dir)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(filepath.Base(path), "test_"))
	assert.True(t, strings.HasSuffix(path, ".png"))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	img, err := png.Decode(f)
	require.NoError(t, err)

	bounds := img.Bounds()
	assert.Equal(t, video.FramebufferWidth, bounds.Dx())
	assert.Equal(t, video.FramebufferHeight, bounds.Dy())

	gray := func(x, y int) uint8 {
		r, _, _, _ := img.At(x, y).RGBA()
		return uint8(r >> 8)
	}
	assert.Equal(t, Grayscale[3], gray(0, 0))
	assert.Equal(t, Grayscale[2], gray(159, 143))
	assert.Equal(t, Grayscale[1], gray(80, 72))
	assert.Equal(t, Grayscale[0], gray(1, 0))
}

func TestSavePNGDefaultsToWorkingDirectory(t *testing.T) {
	dir := t.TempDir()
	oldWD, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	defer os.Chdir(oldWD)

	path, err := SavePNG(video.NewFrameBuffer(), "cwd", "")
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, filepath.Base(path)))
	assert.NoError(t, err)
}

func TestGrayscaleOrdering(t *testing.T) {
	// Shade 0 is the lightest, shade 3 the darkest.
	for i := 1; i < len(Grayscale); i++ {
		assert.Less(t, Grayscale[i], Grayscale[i-1])
	}
}
