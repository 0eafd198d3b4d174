package video

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTileRowDecoding(t *testing.T) {
	// the classic example row: $3C $7E decodes to 0 2 3 3 3 3 2 0
	row := TileRow{Low: 0x3C, High: 0x7E}

	want := []byte{0, 2, 3, 3, 3, 3, 2, 0}
	for x, index := range want {
		assert.Equal(t, index, row.GetPixel(x), "pixel %d", x)
	}
}

func TestTileRowDecodingFlipped(t *testing.T) {
	row := TileRow{Low: 0xC0, High: 0x01}

	// normal: leftmost two pixels index 1, rightmost index 2
	assert.Equal(t, byte(1), row.GetPixel(0))
	assert.Equal(t, byte(1), row.GetPixel(1))
	assert.Equal(t, byte(2), row.GetPixel(7))

	// flipped reads the mirror image
	assert.Equal(t, byte(2), row.GetPixelFlipped(0))
	assert.Equal(t, byte(1), row.GetPixelFlipped(6))
	assert.Equal(t, byte(1), row.GetPixelFlipped(7))
}

func TestShadeFor(t *testing.T) {
	// identity palette 11 10 01 00
	for index := byte(0); index < 4; index++ {
		assert.Equal(t, index, shadeFor(0xE4, index))
	}

	// reversed palette 00 01 10 11
	for index := byte(0); index < 4; index++ {
		assert.Equal(t, 3-index, shadeFor(0x1B, index))
	}
}
