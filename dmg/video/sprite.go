package video

import "github.com/valerio/go-dmg/dmg/bit"

const (
	oamEntryCount     = 40
	oamEntrySize      = 4
	maxSpritesPerLine = 10
)

// Sprite is a single object from OAM with its attributes decoded.
// Raw OAM positions carry hardware offsets (Y+16, X+8) so objects can
// sit partially or fully off screen; the values here are actual
// screen coordinates and may be negative.
type Sprite struct {
	Y         int  // top screen row (raw OAM value minus 16)
	X         int  // left screen column (raw OAM value minus 8)
	TileIndex byte // tile number in the 0x8000 tile data area
	OAMIndex  int  // entry index (0-39)
	Height    int  // 8 or 16 pixels, from LCDC bit 2

	// decoded attribute flags
	PaletteOBP1 bool // false = OBP0, true = OBP1
	FlipX       bool // mirror horizontally
	FlipY       bool // mirror vertically
	BehindBG    bool // when set, loses to non-zero background pixels
}

func decodeSprite(entry []byte, index, height int) Sprite {
	flags := entry[3]
	return Sprite{
		Y:           int(entry[0]) - 16,
		X:           int(entry[1]) - 8,
		TileIndex:   entry[2],
		OAMIndex:    index,
		Height:      height,
		PaletteOBP1: bit.IsSet(4, flags),
		FlipX:       bit.IsSet(5, flags),
		FlipY:       bit.IsSet(6, flags),
		BehindBG:    bit.IsSet(7, flags),
	}
}

// spritesOnLine scans OAM in order and collects the sprites that
// overlap the given scanline into dst, stopping at the hardware limit
// of 10. Later entries are ignored even when they would be visible,
// and sprites that are horizontally off screen still use up slots.
func spritesOnLine(oam []byte, line, height int, dst []Sprite) []Sprite {
	sprites := dst[:0]
	for i := 0; i < oamEntryCount; i++ {
		entry := oam[i*oamEntrySize : (i+1)*oamEntrySize]

		top := int(entry[0]) - 16
		if line < top || line >= top+height {
			continue
		}

		sprites = append(sprites, decodeSprite(entry, i, height))
		if len(sprites) == maxSpritesPerLine {
			break
		}
	}
	return sprites
}
