package addr

// video registers
const (
	// LCDC is the LCD Control register.
	LCDC uint16 = 0xFF40
	// STAT is the LCD Status register.
	STAT uint16 = 0xFF41
	// SCY is the background Scroll Y register.
	SCY uint16 = 0xFF42
	// SCX is the background Scroll X register.
	SCX uint16 = 0xFF43
	// LY is the current scanline (readonly).
	LY uint16 = 0xFF44
	// LYC is the LY Compare register.
	LYC uint16 = 0xFF45
	// DMA is the OAM DMA Transfer and Start register.
	DMA uint16 = 0xFF46
	// BGP is the background palette register.
	BGP uint16 = 0xFF47
	// OBP0 is the Object Palette 0 register.
	OBP0 uint16 = 0xFF48
	// OBP1 is the Object Palette 1 register.
	OBP1 uint16 = 0xFF49
	// WY is the Window Y Position register.
	WY uint16 = 0xFF4A
	// WX is the Window X Position register (offset by 7).
	WX uint16 = 0xFF4B
)

// audio registers, 0xFF10-0xFF3F
const (
	AudioStart uint16 = 0xFF10
	AudioEnd   uint16 = 0xFF3F

	// Channel 1 - square wave with sweep
	NR10 uint16 = 0xFF10 // sweep
	NR11 uint16 = 0xFF11 // length timer & duty cycle
	NR12 uint16 = 0xFF12 // volume & envelope
	NR13 uint16 = 0xFF13 // period low
	NR14 uint16 = 0xFF14 // period high & control

	// Channel 2 - square wave
	NR21 uint16 = 0xFF16
	NR22 uint16 = 0xFF17
	NR23 uint16 = 0xFF18
	NR24 uint16 = 0xFF19

	// Channel 3 - wave output
	NR30 uint16 = 0xFF1A
	NR31 uint16 = 0xFF1B
	NR32 uint16 = 0xFF1C
	NR33 uint16 = 0xFF1D
	NR34 uint16 = 0xFF1E

	// Channel 4 - noise
	NR41 uint16 = 0xFF20
	NR42 uint16 = 0xFF21
	NR43 uint16 = 0xFF22
	NR44 uint16 = 0xFF23

	// Global control
	NR50 uint16 = 0xFF24
	NR51 uint16 = 0xFF25
	NR52 uint16 = 0xFF26

	// Wave pattern RAM, 32 4-bit samples
	WaveRAMStart uint16 = 0xFF30
	WaveRAMEnd   uint16 = 0xFF3F
)

// VRAM, 8 KiB of tile data and tile maps
const (
	VRAMStart uint16 = 0x8000
	VRAMEnd   uint16 = 0x9FFF
)

// OAM, 40 sprites of 4 bytes each
const (
	OAMStart uint16 = 0xFE00
	OAMEnd   uint16 = 0xFE9F
)

// tile data and tile maps
const (
	// TileData0 is the start of unsigned tile data (tiles 0-255).
	TileData0 uint16 = 0x8000
	// TileData1 is the start of the signed tile data region (tiles -128 to -1).
	TileData1 uint16 = 0x8800
	// TileData2 is the continuation of signed tile data (tiles 0-127).
	TileData2 uint16 = 0x9000

	// TileMap0 is background/window tile map 0.
	TileMap0 uint16 = 0x9800
	// TileMap1 is background/window tile map 1.
	TileMap1 uint16 = 0x9C00
)

// interrupt registers
const (
	// IF is the address of the Interrupt Flags register.
	IF uint16 = 0xFF0F
	// IE is the address of the Interrupt Enable register.
	IE uint16 = 0xFFFF
)

// joypad
const (
	// P1 is used to select and read the joypad matrix.
	P1 uint16 = 0xFF00
)

// serial
const (
	// SB holds the byte to be shifted out on a serial transfer.
	SB uint16 = 0xFF01
	// SC is the serial control register. Bit 7 starts a transfer,
	// bit 0 selects the internal clock. Hardware clears bit 7 on completion.
	SC uint16 = 0xFF02
)

// timer registers
const (
	// DIV is the divider register; always the high byte of the internal
	// counter. Any write resets the counter to 0.
	DIV uint16 = 0xFF04
	// TIMA is the timer counter; requests an interrupt on overflow.
	TIMA uint16 = 0xFF05
	// TMA is the timer modulo, reloaded into TIMA on overflow.
	TMA uint16 = 0xFF06
	// TAC is the timer control register (enable + clock select).
	TAC uint16 = 0xFF07
)

// working memory
const (
	WRAMStart uint16 = 0xC000
	WRAMEnd   uint16 = 0xDFFF
	EchoStart uint16 = 0xE000
	EchoEnd   uint16 = 0xFDFF
	HRAMStart uint16 = 0xFF80
	HRAMEnd   uint16 = 0xFFFE
)

// Interrupt represents one of the five maskable interrupt sources as its
// bit in the IF/IE registers.
type Interrupt uint8

const (
	// VBlankInterrupt is fired when the PPU enters V-Blank (LY becomes 144).
	VBlankInterrupt Interrupt = 1
	// LCDSTATInterrupt is fired on the rising edge of the combined STAT line.
	LCDSTATInterrupt Interrupt = 1 << 1
	// TimerInterrupt is fired when TIMA overflows.
	TimerInterrupt Interrupt = 1 << 2
	// SerialInterrupt is fired when a serial transfer completes.
	SerialInterrupt Interrupt = 1 << 3
	// JoypadInterrupt is fired when a joypad line goes low.
	JoypadInterrupt Interrupt = 1 << 4
)

// Vector returns the service routine address for the interrupt.
func (i Interrupt) Vector() uint16 {
	switch i {
	case VBlankInterrupt:
		return 0x0040
	case LCDSTATInterrupt:
		return 0x0048
	case TimerInterrupt:
		return 0x0050
	case SerialInterrupt:
		return 0x0058
	case JoypadInterrupt:
		return 0x0060
	}
	return 0
}
