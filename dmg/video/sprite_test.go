package video

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func oamBytes(entries ...[4]byte) []byte {
	oam := make([]byte, oamEntryCount*oamEntrySize)
	for i, e := range entries {
		copy(oam[i*oamEntrySize:], e[:])
	}
	return oam
}

func TestDecodeSpriteOffsets(t *testing.T) {
	// raw positions carry the hardware offsets
	s := decodeSprite([]byte{16, 8, 0x42, 0x00}, 3, 8)
	assert.Equal(t, 0, s.Y)
	assert.Equal(t, 0, s.X)
	assert.Equal(t, byte(0x42), s.TileIndex)
	assert.Equal(t, 3, s.OAMIndex)
	assert.Equal(t, 8, s.Height)

	// raw zero means fully off screen above and to the left
	s = decodeSprite([]byte{0, 0, 0, 0}, 0, 8)
	assert.Equal(t, -16, s.Y)
	assert.Equal(t, -8, s.X)
}

func TestDecodeSpriteFlags(t *testing.T) {
	tests := []struct {
		name  string
		flags byte
		check func(t *testing.T, s Sprite)
	}{
		{"none", 0x00, func(t *testing.T, s Sprite) {
			assert.False(t, s.PaletteOBP1)
			assert.False(t, s.FlipX)
			assert.False(t, s.FlipY)
			assert.False(t, s.BehindBG)
		}},
		{"palette", 0x10, func(t *testing.T, s Sprite) {
			assert.True(t, s.PaletteOBP1)
		}},
		{"flip X", 0x20, func(t *testing.T, s Sprite) {
			assert.True(t, s.FlipX)
		}},
		{"flip Y", 0x40, func(t *testing.T, s Sprite) {
			assert.True(t, s.FlipY)
		}},
		{"behind background", 0x80, func(t *testing.T, s Sprite) {
			assert.True(t, s.BehindBG)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, decodeSprite([]byte{16, 8, 0, tt.flags}, 0, 8))
		})
	}
}

func TestSpritesOnLineVisibility(t *testing.T) {
	oam := oamBytes(
		[4]byte{66, 20, 1, 0}, // rows 50-57
		[4]byte{60, 30, 2, 0}, // rows 44-51
		[4]byte{80, 40, 3, 0}, // rows 64-71
		[4]byte{0, 50, 4, 0},  // off screen above
	)

	var buf [maxSpritesPerLine]Sprite

	sprites := spritesOnLine(oam, 50, 8, buf[:0])
	require.Len(t, sprites, 2)
	assert.Equal(t, 0, sprites[0].OAMIndex)
	assert.Equal(t, 1, sprites[1].OAMIndex)

	sprites = spritesOnLine(oam, 64, 8, buf[:0])
	require.Len(t, sprites, 1)
	assert.Equal(t, 2, sprites[0].OAMIndex)

	sprites = spritesOnLine(oam, 100, 8, buf[:0])
	assert.Empty(t, sprites)
}

func TestSpritesOnLineHeight(t *testing.T) {
	oam := oamBytes([4]byte{66, 20, 1, 0}) // top row 50

	var buf [maxSpritesPerLine]Sprite

	// row 60 is outside an 8-pixel sprite but inside a 16-pixel one
	assert.Empty(t, spritesOnLine(oam, 60, 8, buf[:0]))

	sprites := spritesOnLine(oam, 60, 16, buf[:0])
	require.Len(t, sprites, 1)
	assert.Equal(t, 16, sprites[0].Height)
}

func TestSpritesOnLineLimit(t *testing.T) {
	var entries [12][4]byte
	for i := range entries {
		entries[i] = [4]byte{66, byte(8 + i*8), byte(i), 0}
	}
	oam := oamBytes(entries[:]...)

	var buf [maxSpritesPerLine]Sprite
	sprites := spritesOnLine(oam, 50, 8, buf[:0])

	require.Len(t, sprites, maxSpritesPerLine)
	for i, s := range sprites {
		assert.Equal(t, i, s.OAMIndex, "selection keeps OAM order")
	}
}

func TestSpritePriorityClaims(t *testing.T) {
	var p spritePriority
	p.clear()

	assert.Equal(t, -1, p.owner(5), "cleared buffer has no owners")

	assert.True(t, p.tryClaim(5, 2, 10), "first claim wins")
	assert.Equal(t, 2, p.owner(5))

	assert.True(t, p.tryClaim(5, 7, 8), "lower X steals the pixel")
	assert.Equal(t, 7, p.owner(5))

	assert.False(t, p.tryClaim(5, 1, 9), "higher X loses")
	assert.Equal(t, 7, p.owner(5))

	assert.True(t, p.tryClaim(5, 3, 8), "same X, lower OAM index wins")
	assert.Equal(t, 3, p.owner(5))

	assert.False(t, p.tryClaim(5, 6, 8), "same X, higher OAM index loses")
	assert.Equal(t, 3, p.owner(5))
}

func TestSpritePriorityBounds(t *testing.T) {
	var p spritePriority
	p.clear()

	assert.False(t, p.tryClaim(-1, 0, 0))
	assert.False(t, p.tryClaim(FramebufferWidth, 0, 0))
	assert.Equal(t, -1, p.owner(-1))
	assert.Equal(t, -1, p.owner(FramebufferWidth))
}

func TestSpritePriorityClearResets(t *testing.T) {
	var p spritePriority
	p.clear()

	require.True(t, p.tryClaim(0, 4, 12))
	p.clear()

	assert.Equal(t, -1, p.owner(0))
	assert.True(t, p.tryClaim(0, 9, 100), "any sprite claims after clear")
}
