package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPairAccessors(t *testing.T) {
	r := &Registers{}

	r.SetBC(0x1234)
	assert.Equal(t, uint8(0x12), r.B)
	assert.Equal(t, uint8(0x34), r.C)
	assert.Equal(t, uint16(0x1234), r.BC())

	r.SetDE(0xABCD)
	assert.Equal(t, uint16(0xABCD), r.DE())

	r.SetHL(0xFF01)
	assert.Equal(t, uint16(0xFF01), r.HL())
}

func TestAFMasksLowNibble(t *testing.T) {
	r := &Registers{}
	for _, v := range []uint16{0x0000, 0x12FF, 0xFFFF, 0xAB5A, 0x010F} {
		r.SetAF(v)
		assert.Equal(t, v&0xFFF0, r.AF(), "SetAF(%#04x)", v)
		assert.Zero(t, r.F&0x0F)
	}
}

func TestFlagOperations(t *testing.T) {
	r := &Registers{}

	r.SetFlag(FlagZ, true)
	r.SetFlag(FlagC, true)
	assert.True(t, r.HasFlag(FlagZ))
	assert.True(t, r.HasFlag(FlagC))
	assert.False(t, r.HasFlag(FlagN))
	assert.Equal(t, uint8(0x90), r.F)

	r.SetFlag(FlagZ, false)
	assert.False(t, r.HasFlag(FlagZ))
	assert.Equal(t, uint8(0x10), r.F)
}
