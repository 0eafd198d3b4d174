package cart

import (
	"time"

	"github.com/valerio/go-dmg/dmg/bit"
)

// MBC mediates access to cartridge ROM and external RAM. Reads cover
// 0x0000-0x7FFF and 0xA000-0xBFFF; writes below 0x8000 drive the
// controller's registers instead of memory.
type MBC interface {
	Read(address uint16) uint8
	Write(address uint16, value uint8)
}

// RomOnly maps up to 32KB of ROM straight into 0x0000-0x7FFF with no
// banking and no external RAM. Writes are dropped.
type RomOnly struct {
	rom []uint8
}

func NewRomOnly(rom []uint8) *RomOnly {
	return &RomOnly{rom: rom}
}

func (m *RomOnly) Read(address uint16) uint8 {
	if int(address) < len(m.rom) {
		return m.rom[address]
	}
	return 0xFF
}

func (m *RomOnly) Write(address uint16, value uint8) {}

// MBC1 is the most common banking chip: up to 2MB ROM in 16KB banks and
// up to 32KB RAM in 8KB banks. Bank 0 is fixed at 0x0000-0x3FFF, the
// switchable bank lives at 0x4000-0x7FFF. Mode 0 routes the two upper
// register bits to the ROM bank, mode 1 routes them to the RAM bank.
type MBC1 struct {
	rom         []uint8
	ram         []uint8
	romBank     uint8
	ramBank     uint8
	ramEnabled  bool
	bankingMode uint8
	hasBattery  bool
}

func NewMBC1(rom []uint8, hasBattery bool, ramBanks uint8) *MBC1 {
	return &MBC1{
		rom:        rom,
		ram:        make([]uint8, uint32(ramBanks)*0x2000),
		romBank:    1,
		hasBattery: hasBattery,
	}
}

func (m *MBC1) Read(address uint16) uint8 {
	switch {
	case address <= 0x3FFF:
		return m.rom[address]
	case address <= 0x7FFF:
		offset := uint32(m.romBank) * 0x4000
		if offset >= uint32(len(m.rom)) {
			// Out-of-range banks wrap around the ROM image.
			offset %= uint32(len(m.rom))
		}
		return m.rom[offset+uint32(address-0x4000)]
	case address >= 0xA000 && address <= 0xBFFF:
		if !m.ramEnabled || len(m.ram) == 0 {
			return 0xFF
		}
		offset := uint32(m.ramBank) * 0x2000
		if offset >= uint32(len(m.ram)) {
			offset %= uint32(len(m.ram))
		}
		return m.ram[offset+uint32(address-0xA000)]
	default:
		return 0xFF
	}
}

func (m *MBC1) Write(address uint16, value uint8) {
	switch {
	case address <= 0x1FFF:
		m.ramEnabled = value&0x0F == 0x0A
	case address <= 0x3FFF:
		// Lower 5 bits of the ROM bank. Bank 0 always selects 1.
		bank := value & 0x1F
		if bank == 0 {
			bank = 1
		}
		m.romBank = m.romBank&0x60 | bank
	case address <= 0x5FFF:
		if m.bankingMode == 0 {
			m.romBank = m.romBank&0x1F | (value&0x03)<<5
		} else {
			m.ramBank = value & 0x03
		}
	case address <= 0x7FFF:
		m.bankingMode = value & 0x01
		if m.bankingMode == 1 {
			m.romBank &= 0x1F
		}
	case address >= 0xA000 && address <= 0xBFFF:
		if !m.ramEnabled || len(m.ram) == 0 {
			return
		}
		offset := uint32(m.ramBank) * 0x2000
		if offset >= uint32(len(m.ram)) {
			offset %= uint32(len(m.ram))
		}
		m.ram[offset+uint32(address-0xA000)] = value
	}
}

// Clock abstracts the wall clock so RTC behavior is testable.
type Clock interface {
	Now() time.Time
}

type systemClockFunc func() time.Time

func (f systemClockFunc) Now() time.Time {
	return f()
}

// MBC3 extends MBC1-style banking to 128 ROM banks and adds an optional
// real-time clock. RAM bank values 0x08-0x0C select the five RTC
// registers instead of RAM.
type MBC3 struct {
	rom        []uint8
	ram        []uint8
	rtc        [5]uint8
	romBank    uint8
	ramBank    uint8
	ramEnabled bool
	hasRTC     bool
	rtcLatch   bool
	clock      Clock
	rtcTime    time.Time
}

func NewMBC3(rom []uint8, ramBanks uint8, hasRTC bool, clock Clock) *MBC3 {
	if clock == nil {
		clock = systemClockFunc(time.Now)
	}

	return &MBC3{
		rom:     rom,
		ram:     make([]uint8, uint32(ramBanks)*0x2000),
		romBank: 1,
		hasRTC:  hasRTC,
		clock:   clock,
		rtcTime: clock.Now(),
	}
}

func (m *MBC3) Read(address uint16) uint8 {
	switch {
	case address <= 0x3FFF:
		return m.rom[address]
	case address <= 0x7FFF:
		offset := uint32(m.romBank) * 0x4000
		if offset >= uint32(len(m.rom)) {
			offset %= uint32(len(m.rom))
		}
		return m.rom[offset+uint32(address-0x4000)]
	case address >= 0xA000 && address <= 0xBFFF:
		if !m.ramEnabled {
			return 0xFF
		}
		if m.ramBank <= 0x03 {
			if len(m.ram) == 0 {
				return 0xFF
			}
			offset := uint32(m.ramBank) * 0x2000
			if offset >= uint32(len(m.ram)) {
				offset %= uint32(len(m.ram))
			}
			return m.ram[offset+uint32(address-0xA000)]
		}
		if m.hasRTC && m.ramBank >= 0x08 && m.ramBank <= 0x0C {
			if m.rtcLatch {
				m.updateRTC()
				m.rtcLatch = false
			}
			return m.rtc[m.ramBank-0x08]
		}
		return 0xFF
	default:
		return 0xFF
	}
}

func (m *MBC3) Write(address uint16, value uint8) {
	switch {
	case address <= 0x1FFF:
		m.ramEnabled = value&0x0F == 0x0A
	case address <= 0x3FFF:
		// 7-bit ROM bank, bank 0 selects 1.
		bank := value & 0x7F
		if bank == 0 {
			bank = 1
		}
		m.romBank = bank
	case address <= 0x5FFF:
		m.ramBank = value
	case address <= 0x7FFF:
		if value == 0x00 {
			m.rtcLatch = true
		}
	case address >= 0xA000 && address <= 0xBFFF:
		if !m.ramEnabled {
			return
		}
		if m.ramBank <= 0x03 {
			if len(m.ram) == 0 {
				return
			}
			offset := uint32(m.ramBank) * 0x2000
			if offset >= uint32(len(m.ram)) {
				offset %= uint32(len(m.ram))
			}
			m.ram[offset+uint32(address-0xA000)] = value
		} else if m.hasRTC && m.ramBank >= 0x08 && m.ramBank <= 0x0C {
			m.rtc[m.ramBank-0x08] = value
		}
	}
}

// updateRTC folds the wall-clock time elapsed since the last update
// into the counters. The halt bit freezes them; the day counter is 9
// bits wide with an overflow flag in the control register.
func (m *MBC3) updateRTC() {
	now := m.clock.Now()
	elapsed := int64(now.Sub(m.rtcTime) / time.Second)
	m.rtcTime = now

	if elapsed <= 0 || bit.IsSet(6, m.rtc[4]) {
		return
	}

	seconds := int64(m.rtc[0]) + elapsed
	m.rtc[0] = uint8(seconds % 60)
	minutes := int64(m.rtc[1]) + seconds/60
	m.rtc[1] = uint8(minutes % 60)
	hours := int64(m.rtc[2]) + minutes/60
	m.rtc[2] = uint8(hours % 24)

	days := int64(m.rtc[3]) | int64(m.rtc[4]&0x01)<<8
	days += hours / 24
	m.rtc[3] = uint8(days)
	m.rtc[4] = m.rtc[4]&0xFE | uint8(days>>8)&0x01
	if days > 0x1FF {
		m.rtc[4] |= 0x80
	}
}
