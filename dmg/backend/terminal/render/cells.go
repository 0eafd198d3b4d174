package render

import "github.com/valerio/go-dmg/dmg/video"

// HalfBlock picks the character for a terminal cell covering two
// stacked pixels: a full block when both share a shade, otherwise the
// upper half block with the bottom pixel drawn as the background.
func HalfBlock(top, bottom video.Shade) rune {
	if top == bottom {
		return '█'
	}
	return '▀'
}
