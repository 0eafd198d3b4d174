// Package video implements the pixel-processing unit: a per-dot state
// machine over VRAM, OAM and the LCD register file that rasterizes
// scanlines into a 160x144 frame buffer and raises the V-Blank and
// LCD STAT interrupts.
package video

import (
	"github.com/valerio/go-dmg/dmg/addr"
	"github.com/valerio/go-dmg/dmg/bit"
)

type ppuMode byte

// Modes as encoded in STAT bits 0-1.
const (
	hblank ppuMode = iota
	vblank
	oamRead
	vramRead
)

const (
	oamScanlineCycles  = 80
	vramScanlineCycles = 172
	hblankCycles       = 204
	scanlineCycles     = oamScanlineCycles + vramScanlineCycles + hblankCycles

	visibleLines  = 144
	linesPerFrame = 154
)

// PPU owns VRAM, OAM and the LCD registers and advances dot by dot.
//
// A scanline is 456 dots. Visible lines (0-143) pass through mode 2
// (OAM scan, dots 0-79), mode 3 (pixel transfer, dots 80-251) and
// mode 0 (H-Blank, dots 252-455); lines 144-153 are V-Blank (mode 1).
// Mode 3 is modeled with a fixed 172-dot length, real hardware varies
// it with sprite load. A line is rasterized in one shot when its mode
// 3 ends.
type PPU struct {
	irq func(addr.Interrupt)

	vram [0x2000]byte
	oam  [0xA0]byte

	lcdc byte
	stat byte
	scy  byte
	scx  byte
	ly   byte
	lyc  byte
	bgp  byte
	obp0 byte
	obp1 byte
	wy   byte
	wx   byte

	dot int

	// statLine caches the combined STAT interrupt line so that an
	// interrupt fires only on its rising edge.
	statLine bool

	frames uint64

	framebuffer *FrameBuffer

	// bgIndex holds the raw (pre-palette) color index of each
	// background or window pixel on the line being rendered, used for
	// the sprite behind-background attribute.
	bgIndex  [FramebufferWidth]byte
	priority spritePriority
	sprites  [maxSpritesPerLine]Sprite
}

// New creates a PPU in the post-boot state: LCD enabled at dot 0 of
// line 0 with the boot ROM's background palette in place. Interrupt
// requests are delivered through irq.
func New(irq func(addr.Interrupt)) *PPU {
	p := &PPU{
		irq:         irq,
		framebuffer: NewFrameBuffer(),
		lcdc:        0x91,
		bgp:         0xFC,
		obp0:        0xFF,
		obp1:        0xFF,
	}
	p.setMode(oamRead)
	p.updateCoincidence()
	return p
}

// GetFrameBuffer exposes the rendered frame. The PPU keeps ownership,
// callers must treat it as read-only.
func (p *PPU) GetFrameBuffer() *FrameBuffer {
	return p.framebuffer
}

// Frames returns the number of completed frames, counted at V-Blank
// entry.
func (p *PPU) Frames() uint64 {
	return p.frames
}

// Tick advances the state machine by the given number of clock
// cycles. While the LCD is disabled ticks have no effect.
func (p *PPU) Tick(cycles int) {
	if !bit.IsSet(7, p.lcdc) {
		return
	}
	for i := 0; i < cycles; i++ {
		p.step()
	}
}

// step advances by a single dot.
func (p *PPU) step() {
	p.dot++
	if p.dot == scanlineCycles {
		p.dot = 0
		p.ly = (p.ly + 1) % linesPerFrame
		p.updateCoincidence()

		if p.ly == visibleLines {
			p.frames++
			p.irq(addr.VBlankInterrupt)
		}
	}

	next := p.modeForDot()
	if p.mode() == vramRead && next == hblank {
		p.renderLine()
	}
	p.setMode(next)
	p.updateStatInterrupt()
}

// modeForDot derives the mode from the current line and dot.
func (p *PPU) modeForDot() ppuMode {
	if p.ly >= visibleLines {
		return vblank
	}
	switch {
	case p.dot < oamScanlineCycles:
		return oamRead
	case p.dot < oamScanlineCycles+vramScanlineCycles:
		return vramRead
	default:
		return hblank
	}
}

func (p *PPU) mode() ppuMode {
	return ppuMode(p.stat & 0x03)
}

func (p *PPU) setMode(m ppuMode) {
	p.stat = (p.stat &^ 0x03) | byte(m)
}

// updateCoincidence recomputes the LY==LYC flag (STAT bit 2).
func (p *PPU) updateCoincidence() {
	if p.ly == p.lyc {
		p.stat = bit.Set(2, p.stat)
	} else {
		p.stat = bit.Clear(2, p.stat)
	}
}

// combinedStatLine ORs the four gated STAT interrupt sources:
// coincidence behind bit 6, mode 2 behind bit 5, mode 1 behind bit 4
// and mode 0 behind bit 3.
func (p *PPU) combinedStatLine() bool {
	if !bit.IsSet(7, p.lcdc) {
		return false
	}
	switch {
	case bit.IsSet(6, p.stat) && bit.IsSet(2, p.stat):
		return true
	case bit.IsSet(5, p.stat) && p.mode() == oamRead:
		return true
	case bit.IsSet(4, p.stat) && p.mode() == vblank:
		return true
	case bit.IsSet(3, p.stat) && p.mode() == hblank:
		return true
	}
	return false
}

// updateStatInterrupt requests an LCD STAT interrupt on the rising
// edge of the combined line. A line that stays high across a mode or
// coincidence change never re-fires.
func (p *PPU) updateStatInterrupt() {
	line := p.combinedStatLine()
	if line && !p.statLine {
		p.irq(addr.LCDSTATInterrupt)
	}
	p.statLine = line
}

// Read serves VRAM, OAM and register reads routed from the bus.
func (p *PPU) Read(address uint16) byte {
	switch {
	case address >= addr.VRAMStart && address <= addr.VRAMEnd:
		return p.vram[address-addr.VRAMStart]
	case address >= addr.OAMStart && address <= addr.OAMEnd:
		return p.oam[address-addr.OAMStart]
	}

	switch address {
	case addr.LCDC:
		return p.lcdc
	case addr.STAT:
		// bit 7 is unused and reads as 1
		return 0x80 | p.stat
	case addr.SCY:
		return p.scy
	case addr.SCX:
		return p.scx
	case addr.LY:
		return p.ly
	case addr.LYC:
		return p.lyc
	case addr.BGP:
		return p.bgp
	case addr.OBP0:
		return p.obp0
	case addr.OBP1:
		return p.obp1
	case addr.WY:
		return p.wy
	case addr.WX:
		return p.wx
	}
	return 0xFF
}

// Write serves VRAM, OAM and register writes routed from the bus.
func (p *PPU) Write(address uint16, value byte) {
	switch {
	case address >= addr.VRAMStart && address <= addr.VRAMEnd:
		p.vram[address-addr.VRAMStart] = value
		return
	case address >= addr.OAMStart && address <= addr.OAMEnd:
		p.oam[address-addr.OAMStart] = value
		return
	}

	switch address {
	case addr.LCDC:
		p.writeLCDC(value)
	case addr.STAT:
		// mode and coincidence (bits 0-2) are read-only
		p.stat = (p.stat & 0x07) | (value & 0x78)
		p.updateStatInterrupt()
	case addr.SCY:
		p.scy = value
	case addr.SCX:
		p.scx = value
	case addr.LY:
		// read-only
	case addr.LYC:
		p.lyc = value
		p.updateCoincidence()
		p.updateStatInterrupt()
	case addr.BGP:
		p.bgp = value
	case addr.OBP0:
		p.obp0 = value
	case addr.OBP1:
		p.obp1 = value
	case addr.WY:
		p.wy = value
	case addr.WX:
		p.wx = value
	}
}

// writeLCDC stores the control register and handles the bit 7 LCD
// enable transitions. Turning the LCD off resets the scan position
// and forces mode 0; turning it on restarts at mode 2 of line 0,
// which can raise the STAT line immediately.
func (p *PPU) writeLCDC(value byte) {
	wasOn := bit.IsSet(7, p.lcdc)
	p.lcdc = value
	isOn := bit.IsSet(7, p.lcdc)

	switch {
	case wasOn && !isOn:
		p.ly = 0
		p.dot = 0
		p.setMode(hblank)
		p.updateCoincidence()
		p.statLine = false
	case !wasOn && isOn:
		p.ly = 0
		p.dot = 0
		p.setMode(oamRead)
		p.updateCoincidence()
		p.updateStatInterrupt()
	}
}

// renderLine rasterizes the current scanline into the framebuffer,
// merging background, window and sprites.
func (p *PPU) renderLine() {
	if p.ly >= visibleLines {
		return
	}
	line := int(p.ly)
	p.renderBackground(line)
	p.renderWindow(line)
	p.renderSprites(line)
}

// renderBackground draws the scrolled background row and records the
// raw color index of every pixel for sprite priority decisions.
func (p *PPU) renderBackground(line int) {
	if !bit.IsSet(0, p.lcdc) {
		// background and window disabled, the row stays blank
		for x := 0; x < FramebufferWidth; x++ {
			p.bgIndex[x] = 0
			p.framebuffer.SetPixel(x, line, 0)
		}
		return
	}

	mapBase := addr.TileMap0
	if bit.IsSet(3, p.lcdc) {
		mapBase = addr.TileMap1
	}

	y := (line + int(p.scy)) & 0xFF
	for x := 0; x < FramebufferWidth; x++ {
		bgX := (x + int(p.scx)) & 0xFF

		mapAddr := mapBase + uint16(y/8)*32 + uint16(bgX/8)
		tileID := p.vram[mapAddr-addr.VRAMStart]

		row := p.tileRow(tileID, y%8)
		index := row.GetPixel(bgX % 8)

		p.bgIndex[x] = index
		p.framebuffer.SetPixel(x, line, shadeFor(p.bgp, index))
	}
}

// renderWindow overlays the window on top of the background. The
// window shows when enabled, WY has been reached and WX-7 lands
// before the right edge; its own tile map scrolls with neither SCX
// nor SCY.
func (p *PPU) renderWindow(line int) {
	if !bit.IsSet(0, p.lcdc) || !bit.IsSet(5, p.lcdc) {
		return
	}
	if line < int(p.wy) {
		return
	}

	origin := int(p.wx) - 7
	if origin >= FramebufferWidth {
		return
	}

	mapBase := addr.TileMap0
	if bit.IsSet(6, p.lcdc) {
		mapBase = addr.TileMap1
	}

	startX := origin
	if startX < 0 {
		startX = 0
	}

	y := line - int(p.wy)
	for x := startX; x < FramebufferWidth; x++ {
		winX := x - origin

		mapAddr := mapBase + uint16(y/8)*32 + uint16(winX/8)
		tileID := p.vram[mapAddr-addr.VRAMStart]

		row := p.tileRow(tileID, y%8)
		index := row.GetPixel(winX % 8)

		p.bgIndex[x] = index
		p.framebuffer.SetPixel(x, line, shadeFor(p.bgp, index))
	}
}

// tileRow fetches one row of a background or window tile, honoring
// the LCDC bit 4 tile data addressing mode: unsigned from 0x8000 or
// signed around 0x9000.
func (p *PPU) tileRow(tileID byte, rowInTile int) TileRow {
	var dataAddr uint16
	if bit.IsSet(4, p.lcdc) {
		dataAddr = addr.TileData0 + uint16(tileID)*16
	} else {
		dataAddr = uint16(int(addr.TileData2) + int(int8(tileID))*16)
	}
	dataAddr += uint16(rowInTile) * 2

	return TileRow{
		Low:  p.vram[dataAddr-addr.VRAMStart],
		High: p.vram[dataAddr+1-addr.VRAMStart],
	}
}

// renderSprites merges the scanline's sprites into the framebuffer.
// Selection walks OAM in order and keeps the first 10 entries
// overlapping the line; overlap between the selected sprites is then
// resolved per pixel by the priority buffer.
func (p *PPU) renderSprites(line int) {
	if !bit.IsSet(1, p.lcdc) {
		return
	}

	height := 8
	if bit.IsSet(2, p.lcdc) {
		height = 16
	}

	sprites := spritesOnLine(p.oam[:], line, height, p.sprites[:0])
	if len(sprites) == 0 {
		return
	}

	p.priority.clear()
	for i := range sprites {
		s := &sprites[i]
		for px := 0; px < 8; px++ {
			p.priority.tryClaim(s.X+px, s.OAMIndex, s.X)
		}
	}

	for i := range sprites {
		p.drawSprite(&sprites[i], line)
	}
}

// drawSprite draws the pixels of one sprite that survived both
// sprite-to-sprite priority and the behind-background attribute.
func (p *PPU) drawSprite(s *Sprite, line int) {
	rowInSprite := line - s.Y
	if s.FlipY {
		rowInSprite = s.Height - 1 - rowInSprite
	}

	tileID := s.TileIndex
	if s.Height == 16 {
		// in 8x16 mode the low index bit is ignored, the stacked pair
		// lives at the even index
		tileID &= 0xFE
		if rowInSprite >= 8 {
			tileID++
			rowInSprite -= 8
		}
	}

	dataAddr := addr.TileData0 + uint16(tileID)*16 + uint16(rowInSprite)*2
	row := TileRow{
		Low:  p.vram[dataAddr-addr.VRAMStart],
		High: p.vram[dataAddr+1-addr.VRAMStart],
	}

	palette := p.obp0
	if s.PaletteOBP1 {
		palette = p.obp1
	}

	for px := 0; px < 8; px++ {
		x := s.X + px
		if x < 0 || x >= FramebufferWidth {
			continue
		}
		if p.priority.owner(x) != s.OAMIndex {
			continue
		}

		var index byte
		if s.FlipX {
			index = row.GetPixelFlipped(px)
		} else {
			index = row.GetPixel(px)
		}

		// sprite color 0 is always transparent
		if index == 0 {
			continue
		}
		if s.BehindBG && p.bgIndex[x] != 0 {
			continue
		}

		p.framebuffer.SetPixel(x, line, shadeFor(palette, index))
	}
}

// shadeFor maps a 2-bit color index through a palette register.
func shadeFor(palette, index byte) Shade {
	return (palette >> (index * 2)) & 0x03
}
