// Package audio implements the APU at the register level: games read
// and write 0xFF10-0xFF3F and observe the documented masked values.
// Waveform synthesis is out of scope.
package audio

import (
	"github.com/valerio/go-dmg/dmg/addr"
	"github.com/valerio/go-dmg/dmg/bit"
)

const registerCount = int(addr.AudioEnd-addr.AudioStart) + 1

// readMasks holds the OR mask applied to each stored register on read.
// Write-only and unimplemented bits read as 1; unused registers read as
// 0xFF outright; wave RAM reads back exactly.
var readMasks = buildReadMasks()

func buildReadMasks() [registerCount]byte {
	var m [registerCount]byte
	for i := range m {
		m[i] = 0xFF
	}
	set := func(a uint16, mask byte) { m[a-addr.AudioStart] = mask }

	set(addr.NR10, 0x80)
	set(addr.NR11, 0x3F)
	set(addr.NR12, 0x00)
	set(addr.NR13, 0xFF)
	set(addr.NR14, 0xBF)
	set(addr.NR21, 0x3F)
	set(addr.NR22, 0x00)
	set(addr.NR23, 0xFF)
	set(addr.NR24, 0xBF)
	set(addr.NR30, 0x7F)
	set(addr.NR31, 0xFF)
	set(addr.NR32, 0x9F)
	set(addr.NR33, 0xFF)
	set(addr.NR34, 0xBF)
	set(addr.NR41, 0xFF)
	set(addr.NR42, 0x00)
	set(addr.NR43, 0x00)
	set(addr.NR44, 0xBF)
	set(addr.NR50, 0x00)
	set(addr.NR51, 0x00)

	for a := addr.WaveRAMStart; a <= addr.WaveRAMEnd; a++ {
		m[a-addr.AudioStart] = 0x00
	}
	return m
}

// APU is the audio register file. NR52 bit 7 gates power: switching it
// off clears NR10-NR51 and locks them until power returns. Wave RAM is
// untouched by power cycles.
type APU struct {
	enabled   bool
	registers [registerCount]byte
}

// New creates an APU with the DMG post-boot register values.
func New() *APU {
	a := &APU{enabled: true}
	a.initRegisters()
	return a
}

// initRegisters loads the post-boot values. Registers not listed are
// write-only and read through their mask regardless of content.
func (a *APU) initRegisters() {
	set := func(address uint16, value byte) {
		a.registers[address-addr.AudioStart] = value
	}

	set(addr.NR10, 0x80)
	set(addr.NR11, 0xBF)
	set(addr.NR12, 0xF3)
	set(addr.NR14, 0xBF)
	set(addr.NR21, 0x3F)
	set(addr.NR24, 0xBF)
	set(addr.NR30, 0x7F)
	set(addr.NR31, 0xFF)
	set(addr.NR32, 0x9F)
	set(addr.NR34, 0xBF)
	set(addr.NR41, 0xFF)
	set(addr.NR44, 0xBF)
	set(addr.NR50, 0x77)
	set(addr.NR51, 0xF3)
}

// Tick exists to keep the APU on the component clock; the register file
// has no time-driven state.
func (a *APU) Tick(cycles int) {}

// ReadRegister returns the masked value of an audio register.
func (a *APU) ReadRegister(address uint16) uint8 {
	if address < addr.AudioStart || address > addr.AudioEnd {
		return 0xFF
	}
	if address == addr.NR52 {
		// Bit 7 is the power switch, bits 0-3 would report channel
		// status, bits 4-6 are unused and read as 1.
		if a.enabled {
			return 0xF0
		}
		return 0x70
	}
	index := address - addr.AudioStart
	return a.registers[index] | readMasks[index]
}

// WriteRegister stores an audio register value, honoring power gating.
func (a *APU) WriteRegister(address uint16, value uint8) {
	if address < addr.AudioStart || address > addr.AudioEnd {
		return
	}
	if address == addr.NR52 {
		next := bit.IsSet(7, value)
		if a.enabled && !next {
			a.clearRegisters()
		}
		a.enabled = next
		return
	}
	if address >= addr.WaveRAMStart {
		a.registers[address-addr.AudioStart] = value
		return
	}
	if !a.enabled {
		return
	}
	a.registers[address-addr.AudioStart] = value
}

// clearRegisters zeroes NR10-NR51 on power off. Wave RAM survives.
func (a *APU) clearRegisters() {
	for address := addr.NR10; address <= addr.NR51; address++ {
		a.registers[address-addr.AudioStart] = 0
	}
}
