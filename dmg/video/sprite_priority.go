package video

// spritePriority resolves sprite-to-sprite priority for one scanline
// with a per-pixel ownership model instead of sorting.
//
// Between overlapping sprites the DMG picks a winner per pixel:
//   - the sprite with the lower X coordinate wins
//   - on equal X, the lower OAM index wins
//
// Example, two sprites overlapping at different X:
//
//	Pixels:     5  6  7  8  9 10 11 12 13 14 15 16 17
//	Sprite 0:   [-----A-----]                          (X=5,  OAM=0)
//	Sprite 1:                  [-----B-----]           (X=10, OAM=1)
//	Result:     [-----A-----]  [-----B-----]
//
// Selection claims every pixel a candidate sprite covers, in OAM
// order, replacing the current owner whenever the claimant ranks
// higher. The render pass then draws only pixels the sprite actually
// owns. This precomputes the (X, OAM index) ordering that a sort over
// the selected sprites would otherwise establish.
//
// Reference: https://gbdev.io/pandocs/OAM.html#drawing-priority
type spritePriority struct {
	// ownerIndex holds the OAM index owning each pixel, -1 when unowned
	ownerIndex [FramebufferWidth]int

	// ownerX holds the owner's X coordinate for priority comparison
	ownerX [FramebufferWidth]int
}

// clear resets ownership for a new scanline.
func (s *spritePriority) clear() {
	for i := range s.ownerIndex {
		s.ownerIndex[i] = -1
		s.ownerX[i] = 0xFF // any sprite beats the initial value
	}
}

// tryClaim attempts to claim a pixel for a sprite and reports whether
// the sprite now owns it. Pixels outside the visible line never get
// an owner.
func (s *spritePriority) tryClaim(pixelX, spriteIndex, spriteX int) bool {
	if pixelX < 0 || pixelX >= FramebufferWidth {
		return false
	}

	currentOwner := s.ownerIndex[pixelX]

	// no owner yet, the claimant wins
	if currentOwner == -1 {
		s.ownerIndex[pixelX] = spriteIndex
		s.ownerX[pixelX] = spriteX
		return true
	}

	// lower X coordinate wins
	if spriteX < s.ownerX[pixelX] {
		s.ownerIndex[pixelX] = spriteIndex
		s.ownerX[pixelX] = spriteX
		return true
	}

	// same X, lower OAM index wins
	if spriteX == s.ownerX[pixelX] && spriteIndex < currentOwner {
		s.ownerIndex[pixelX] = spriteIndex
		s.ownerX[pixelX] = spriteX
		return true
	}

	return false
}

// owner returns the OAM index owning a pixel, or -1 if none.
func (s *spritePriority) owner(pixelX int) int {
	if pixelX < 0 || pixelX >= FramebufferWidth {
		return -1
	}
	return s.ownerIndex[pixelX]
}
