package audio

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/valerio/go-dmg/dmg/addr"
)

func TestReadMasksApply(t *testing.T) {
	cases := []struct {
		name    string
		address uint16
		written uint8
		want    uint8
	}{
		{"NR10 sweep", addr.NR10, 0x15, 0x95},
		{"NR11 duty visible", addr.NR11, 0x80, 0xBF},
		{"NR12 fully readable", addr.NR12, 0xA7, 0xA7},
		{"NR13 write-only", addr.NR13, 0x12, 0xFF},
		{"NR14 length enable visible", addr.NR14, 0x40, 0xFF},
		{"NR21 duty visible", addr.NR21, 0x40, 0x7F},
		{"NR22 fully readable", addr.NR22, 0x55, 0x55},
		{"NR23 write-only", addr.NR23, 0x34, 0xFF},
		{"NR24 length enable visible", addr.NR24, 0x00, 0xBF},
		{"NR30 dac bit visible", addr.NR30, 0x80, 0xFF},
		{"NR31 write-only", addr.NR31, 0x00, 0xFF},
		{"NR32 level visible", addr.NR32, 0x20, 0xBF},
		{"NR33 write-only", addr.NR33, 0x77, 0xFF},
		{"NR34 length enable visible", addr.NR34, 0x00, 0xBF},
		{"NR41 write-only", addr.NR41, 0x3F, 0xFF},
		{"NR42 fully readable", addr.NR42, 0x9C, 0x9C},
		{"NR43 fully readable", addr.NR43, 0x7A, 0x7A},
		{"NR44 length enable visible", addr.NR44, 0x40, 0xFF},
		{"NR50 fully readable", addr.NR50, 0x23, 0x23},
		{"NR51 fully readable", addr.NR51, 0x9D, 0x9D},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a := New()
			a.WriteRegister(tc.address, tc.written)
			assert.Equal(t, tc.want, a.ReadRegister(tc.address))
		})
	}
}

func TestUnusedRegistersReadFF(t *testing.T) {
	a := New()
	for _, address := range []uint16{0xFF15, 0xFF1F, 0xFF27, 0xFF2A, 0xFF2F} {
		a.WriteRegister(address, 0x00)
		assert.Equal(t, uint8(0xFF), a.ReadRegister(address), "0x%04X", address)
	}
}

func TestPostBootValues(t *testing.T) {
	a := New()

	cases := map[uint16]uint8{
		addr.NR10: 0x80,
		addr.NR11: 0xBF,
		addr.NR12: 0xF3,
		addr.NR13: 0xFF,
		addr.NR14: 0xBF,
		addr.NR21: 0x3F,
		addr.NR22: 0x00,
		addr.NR30: 0x7F,
		addr.NR31: 0xFF,
		addr.NR32: 0x9F,
		addr.NR41: 0xFF,
		addr.NR42: 0x00,
		addr.NR50: 0x77,
		addr.NR51: 0xF3,
		addr.NR52: 0xF0,
	}
	for address, want := range cases {
		assert.Equal(t, want, a.ReadRegister(address), "0x%04X", address)
	}
}

func TestWaveRAMRoundTrip(t *testing.T) {
	a := New()
	for i := uint16(0); i < 16; i++ {
		a.WriteRegister(addr.WaveRAMStart+i, uint8(i*0x11))
	}
	for i := uint16(0); i < 16; i++ {
		assert.Equal(t, uint8(i*0x11), a.ReadRegister(addr.WaveRAMStart+i))
	}
}

func TestPowerOffClearsAndLocks(t *testing.T) {
	a := New()
	a.WriteRegister(addr.NR12, 0xA7)
	a.WriteRegister(addr.NR50, 0x23)
	a.WriteRegister(addr.WaveRAMStart, 0x5A)

	a.WriteRegister(addr.NR52, 0x00)

	assert.Equal(t, uint8(0x70), a.ReadRegister(addr.NR52))
	assert.Equal(t, uint8(0x00), a.ReadRegister(addr.NR12), "cleared to the bare mask")
	assert.Equal(t, uint8(0x00), a.ReadRegister(addr.NR50))
	assert.Equal(t, uint8(0x3F), a.ReadRegister(addr.NR11))

	a.WriteRegister(addr.NR12, 0xFF)
	assert.Equal(t, uint8(0x00), a.ReadRegister(addr.NR12), "read-only while off")

	assert.Equal(t, uint8(0x5A), a.ReadRegister(addr.WaveRAMStart), "wave RAM survives power off")
	a.WriteRegister(addr.WaveRAMStart+1, 0xA5)
	assert.Equal(t, uint8(0xA5), a.ReadRegister(addr.WaveRAMStart+1), "wave RAM writable while off")
}

func TestPowerOnRestoresWrites(t *testing.T) {
	a := New()
	a.WriteRegister(addr.NR52, 0x00)
	a.WriteRegister(addr.NR52, 0x80)

	assert.Equal(t, uint8(0xF0), a.ReadRegister(addr.NR52))
	assert.Equal(t, uint8(0x00), a.ReadRegister(addr.NR12), "registers stay cleared across the power cycle")

	a.WriteRegister(addr.NR12, 0xA7)
	assert.Equal(t, uint8(0xA7), a.ReadRegister(addr.NR12))
}

func TestOutOfRangeAccess(t *testing.T) {
	a := New()
	assert.Equal(t, uint8(0xFF), a.ReadRegister(0xFF40))
	a.WriteRegister(0xFF40, 0x12) // dropped
	assert.Equal(t, uint8(0xFF), a.ReadRegister(0xFF40))
}
