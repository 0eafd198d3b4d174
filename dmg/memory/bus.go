// Package memory implements the system bus: a 64 KiB address space
// routed to the cartridge, the pixel unit, the timer, the serial port,
// the joypad and the audio registers, with WRAM/HRAM and the interrupt
// registers stored inline.
package memory

import (
	"fmt"
	"log/slog"

	"github.com/valerio/go-dmg/dmg/addr"
	"github.com/valerio/go-dmg/dmg/audio"
	"github.com/valerio/go-dmg/dmg/cart"
	"github.com/valerio/go-dmg/dmg/input"
	"github.com/valerio/go-dmg/dmg/serial"
)

type memRegion uint8

const (
	regionROM memRegion = iota
	regionVRAM
	regionExtRAM
	regionWRAM
	regionEcho
	regionOAM
	regionIO
)

// PPU is the bus-facing surface of the pixel unit: VRAM, OAM and the
// LCD register block, advanced on the component clock.
type PPU interface {
	Read(address uint16) byte
	Write(address uint16, value byte)
	Tick(cycles int)
}

// SerialPort is a device connected to SB/SC. Implementations only
// accept reads and writes at addr.SB and addr.SC.
type SerialPort interface {
	Read(address uint16) byte
	Write(address uint16, value byte)
	Tick(cycles int)
}

// Bus routes every CPU memory access and owns the components behind
// the mapped ranges. Sub-devices report interrupts by ORing bits into
// IF through RequestInterrupt.
type Bus struct {
	cart      *cart.Cartridge
	memory    []byte
	regionMap [256]memRegion

	ppu       PPU
	apu       *audio.APU
	timer     *Timer
	serialDev SerialPort
	inputDev  input.Device

	// Last selection written to P1; only bits 4-5 stick.
	joypadSelect byte
}

// New creates a bus with no cartridge inserted, like powering on the
// console with an empty slot.
func New() *Bus {
	b := &Bus{
		memory:   make([]byte, 0x10000),
		apu:      audio.New(),
		ppu:      newNullPPU(),
		inputDev: input.Dummy{},
	}
	b.timer = NewTimer(func() { b.RequestInterrupt(addr.TimerInterrupt) })
	b.serialDev = serial.NewLogSink(func() { b.RequestInterrupt(addr.SerialInterrupt) })
	b.memory[addr.IF] = 0xE1
	initRegionMap(b)
	return b
}

// NewWithCartridge creates a bus with the given cartridge inserted.
func NewWithCartridge(c *cart.Cartridge) *Bus {
	b := New()
	b.cart = c
	return b
}

func initRegionMap(b *Bus) {
	for i := 0x00; i <= 0x7F; i++ {
		b.regionMap[i] = regionROM
	}
	for i := 0x80; i <= 0x9F; i++ {
		b.regionMap[i] = regionVRAM
	}
	for i := 0xA0; i <= 0xBF; i++ {
		b.regionMap[i] = regionExtRAM
	}
	for i := 0xC0; i <= 0xDF; i++ {
		b.regionMap[i] = regionWRAM
	}
	for i := 0xE0; i <= 0xFD; i++ {
		b.regionMap[i] = regionEcho
	}
	b.regionMap[0xFE] = regionOAM
	b.regionMap[0xFF] = regionIO
}

// AttachPPU installs the pixel unit behind the graphics ranges.
func (b *Bus) AttachPPU(p PPU) { b.ppu = p }

// AttachSerial replaces the device behind SB/SC.
func (b *Bus) AttachSerial(s SerialPort) { b.serialDev = s }

// AttachInput replaces the joypad device.
func (b *Bus) AttachInput(d input.Device) { b.inputDev = d }

// TickComponents advances every bus-owned component by the cycles one
// CPU step consumed. The timer goes first; interrupts land in IF and
// become visible on the next CPU step.
func (b *Bus) TickComponents(cycles int) {
	b.timer.Tick(cycles)
	b.ppu.Tick(cycles)
	b.serialDev.Tick(cycles)
	b.inputDev.Tick(cycles)
	b.apu.Tick(cycles)
}

// SetTimerSeed initializes the timer's internal divider and DIV.
func (b *Bus) SetTimerSeed(seed uint16) {
	b.timer.SetSeed(seed)
}

// RequestInterrupt sets the pending bit for the chosen interrupt in IF.
func (b *Bus) RequestInterrupt(interrupt addr.Interrupt) {
	b.memory[addr.IF] |= byte(interrupt) | 0xE0
}

func (b *Bus) Read(address uint16) byte {
	switch b.regionMap[address>>8] {
	case regionROM, regionExtRAM:
		if b.cart == nil {
			slog.Warn("Read with no cartridge", "addr", fmt.Sprintf("0x%04X", address))
			return 0xFF
		}
		return b.cart.Read(address)
	case regionVRAM:
		return b.ppu.Read(address)
	case regionWRAM:
		return b.memory[address]
	case regionEcho:
		return b.memory[address-0x2000]
	case regionOAM:
		if address <= addr.OAMEnd {
			return b.ppu.Read(address)
		}
		// Prohibited area 0xFEA0-0xFEFF.
		return 0x00
	case regionIO:
		return b.readIO(address)
	default:
		panic(fmt.Sprintf("Attempted read at unmapped address: 0x%X", address))
	}
}

func (b *Bus) Write(address uint16, value byte) {
	switch b.regionMap[address>>8] {
	case regionROM, regionExtRAM:
		if b.cart == nil {
			slog.Warn("Write with no cartridge", "addr", fmt.Sprintf("0x%04X", address), "value", fmt.Sprintf("0x%02X", value))
			return
		}
		b.cart.Write(address, value)
	case regionVRAM:
		b.ppu.Write(address, value)
	case regionWRAM:
		b.memory[address] = value
	case regionEcho:
		b.memory[address-0x2000] = value
	case regionOAM:
		if address <= addr.OAMEnd {
			b.ppu.Write(address, value)
		}
		// Writes into 0xFEA0-0xFEFF are dropped.
	case regionIO:
		b.writeIO(address, value)
	default:
		panic(fmt.Sprintf("Attempted write at unmapped address: 0x%X", address))
	}
}

func (b *Bus) readIO(address uint16) byte {
	switch {
	case address == addr.P1:
		// Bits 6-7 read as 1, bits 4-5 echo the selection, bits 0-3
		// come from the device for the selected rows (0 = pressed).
		return 0xC0 | b.joypadSelect | (b.inputDev.Read(b.joypadSelect) & 0x0F)
	case address == addr.SB || address == addr.SC:
		return b.serialDev.Read(address)
	case address >= addr.DIV && address <= addr.TAC:
		return b.timer.Read(address)
	case address == addr.IF:
		// The upper 3 bits are unused and always read as 1.
		return b.memory[address] | 0xE0
	case address >= addr.AudioStart && address <= addr.AudioEnd:
		return b.apu.ReadRegister(address)
	case address >= addr.LCDC && address <= addr.WX:
		if address == addr.DMA {
			return b.memory[address]
		}
		return b.ppu.Read(address)
	default:
		// HRAM, IE and the unrouted IO ports.
		return b.memory[address]
	}
}

func (b *Bus) writeIO(address uint16, value byte) {
	switch {
	case address == addr.P1:
		b.joypadSelect = value & 0x30
	case address == addr.SB || address == addr.SC:
		b.serialDev.Write(address, value)
	case address >= addr.DIV && address <= addr.TAC:
		b.timer.Write(address, value)
	case address == addr.IF:
		b.memory[address] = value | 0xE0
	case address >= addr.AudioStart && address <= addr.AudioEnd:
		b.apu.WriteRegister(address, value)
	case address == addr.DMA:
		b.dmaTransfer(value)
		b.memory[address] = value
	case address >= addr.LCDC && address <= addr.WX:
		b.ppu.Write(address, value)
	default:
		b.memory[address] = value
	}
}

// dmaTransfer copies 160 bytes from value<<8 into OAM. The copy is
// atomic: OAM reflects the source before the next instruction fetch.
func (b *Bus) dmaTransfer(value byte) {
	source := uint16(value) << 8
	for i := uint16(0); i < 160; i++ {
		b.ppu.Write(addr.OAMStart+i, b.Read(source+i))
	}
}
