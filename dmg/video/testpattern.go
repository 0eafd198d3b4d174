package video

// Test patterns let the frontends verify scaling, palette mapping and
// refresh behavior without a cartridge.

const (
	// TestPatternCount is the number of available patterns.
	TestPatternCount = 4

	// testPatternTileSize is the checkerboard and diagonal cell size.
	testPatternTileSize = 8
	// testPatternStripeWidth is the width of the vertical stripes.
	testPatternStripeWidth = 4
	// animation speeds, in pixels per animation step
	testPatternStripeSpeed   = 2
	testPatternDiagonalSpeed = 4
)

// TestPatternNames maps a pattern index to a display name.
var TestPatternNames = [TestPatternCount]string{
	"Checkerboard",
	"Gradient",
	"Stripes",
	"Diagonal",
}

// FillTestPattern renders the given pattern into fb. The frame
// argument animates the stripe and diagonal patterns; passing the
// same value repaints the same image.
func FillTestPattern(fb *FrameBuffer, pattern, frame int) {
	for y := 0; y < FramebufferHeight; y++ {
		for x := 0; x < FramebufferWidth; x++ {
			fb.SetPixel(x, y, testPatternShade(pattern, x, y, frame))
		}
	}
}

func testPatternShade(pattern, x, y, frame int) Shade {
	switch pattern {
	case 1: // gradient, darkest on the left
		return Shade(3 - x*4/FramebufferWidth)
	case 2: // vertical stripes
		if ((x+frame*testPatternStripeSpeed)/testPatternStripeWidth)%2 == 0 {
			return 0
		}
		return 2
	case 3: // diagonal lines
		if ((x+y+frame*testPatternDiagonalSpeed)/testPatternTileSize)%2 == 0 {
			return 1
		}
		return 2
	default: // checkerboard
		if ((x/testPatternTileSize)+(y/testPatternTileSize))%2 == 0 {
			return 0
		}
		return 3
	}
}
