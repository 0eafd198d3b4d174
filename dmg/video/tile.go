package video

import "github.com/valerio/go-dmg/dmg/bit"

// TileRow is one row of a tile pattern (8 pixels).
//
// Tiles are 8x8 pixels at 2 bits per pixel. Each row takes 2 bytes in
// a bit-plane format: the low byte provides bit 0 of every pixel's
// color index and the high byte provides bit 1. Bit 7 is the leftmost
// pixel, bit 0 the rightmost.
//
// Example: bytes $3C and $7E encode a row:
//
//	Low  (0x3C): 0 0 1 1 1 1 0 0
//	High (0x7E): 0 1 1 1 1 1 1 0
//	            -----------------
//	Indices:     0 2 3 3 3 3 2 0
//
// The 2-bit index is mapped to a shade through a palette register
// (BGP for the background and window, OBP0/OBP1 for sprites). For
// sprites, index 0 is always transparent.
//
// A full tile occupies 16 bytes (8 rows, 2 bytes each) in VRAM.
//
// Reference: https://gbdev.io/pandocs/Tile_Data.html
type TileRow struct {
	Low  byte
	High byte
}

// GetPixel extracts the color index (0-3) for a pixel in the row.
// pixelX should be 0-7, where 0 is the leftmost pixel.
func (t TileRow) GetPixel(pixelX int) byte {
	// bit 7 is leftmost pixel, bit 0 is rightmost
	bitIndex := uint8(7 - pixelX)

	pixel := byte(0)
	if bit.IsSet(bitIndex, t.Low) {
		pixel |= 1
	}
	if bit.IsSet(bitIndex, t.High) {
		pixel |= 2
	}

	return pixel
}

// GetPixelFlipped extracts a color index with horizontal flip.
// Used for sprites with the flip X attribute.
func (t TileRow) GetPixelFlipped(pixelX int) byte {
	// when flipped, bit 0 is leftmost pixel, bit 7 is rightmost
	bitIndex := uint8(pixelX)

	pixel := byte(0)
	if bit.IsSet(bitIndex, t.Low) {
		pixel |= 1
	}
	if bit.IsSet(bitIndex, t.High) {
		pixel |= 2
	}

	return pixel
}
