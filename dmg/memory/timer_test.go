package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/valerio/go-dmg/dmg/addr"
)

func TestTimerIncrementsAtSelectedFrequency(t *testing.T) {
	tm := NewTimer(nil)
	tm.Write(addr.TAC, 0x05) // enabled, bit 3: every 16 clocks

	tm.Tick(15)
	assert.Equal(t, byte(0), tm.Read(addr.TIMA), "bit 3 still high")

	tm.Tick(1)
	assert.Equal(t, byte(1), tm.Read(addr.TIMA), "falling edge at 16 clocks")
}

func TestTimerPeriodPerClockSelect(t *testing.T) {
	// One increment per full period of the monitored bit.
	cases := []struct {
		tac    byte
		period int
	}{
		{0x04, 1024},
		{0x05, 16},
		{0x06, 64},
		{0x07, 256},
	}

	for _, tc := range cases {
		tm := NewTimer(nil)
		tm.Write(addr.TAC, tc.tac)

		tm.Tick(tc.period)
		assert.Equal(t, byte(1), tm.Read(addr.TIMA), "TAC=0x%02X", tc.tac)

		tm.Tick(tc.period * 3)
		assert.Equal(t, byte(4), tm.Read(addr.TIMA), "TAC=0x%02X", tc.tac)
	}
}

func TestTimerDisabledDoesNotCount(t *testing.T) {
	tm := NewTimer(nil)
	tm.Write(addr.TAC, 0x01) // bit 3 selected but not enabled

	tm.Tick(4096)
	assert.Equal(t, byte(0), tm.Read(addr.TIMA))
	assert.Equal(t, byte(0x10), tm.Read(addr.DIV), "DIV keeps running")
}

func TestDivIsCounterHighByte(t *testing.T) {
	tm := NewTimer(nil)

	tm.Tick(255)
	assert.Equal(t, byte(0), tm.Read(addr.DIV))

	tm.Tick(1)
	assert.Equal(t, byte(1), tm.Read(addr.DIV))

	tm.SetSeed(0xABCC)
	assert.Equal(t, byte(0xAB), tm.Read(addr.DIV))
}

func TestDivResetGlitchIncrementsTima(t *testing.T) {
	tm := NewTimer(nil)
	tm.Write(addr.TAC, 0x05)

	tm.Tick(8) // counter = 8, monitored bit 3 high
	assert.Equal(t, byte(0), tm.Read(addr.TIMA))

	tm.Write(addr.DIV, 0x5A) // value irrelevant, reset drops the line
	assert.Equal(t, byte(1), tm.Read(addr.TIMA))
	assert.Equal(t, byte(0), tm.Read(addr.DIV))
}

func TestDivResetWithLineLowIsClean(t *testing.T) {
	tm := NewTimer(nil)
	tm.Write(addr.TAC, 0x05)

	tm.Tick(4) // bit 3 still low
	tm.Write(addr.DIV, 0)
	assert.Equal(t, byte(0), tm.Read(addr.TIMA))
}

func TestDivResetWithTimerDisabledIsClean(t *testing.T) {
	tm := NewTimer(nil)
	tm.Write(addr.TAC, 0x01) // disabled

	tm.Tick(8)
	tm.Write(addr.DIV, 0)
	assert.Equal(t, byte(0), tm.Read(addr.TIMA))
}

func TestTacRewriteGlitch(t *testing.T) {
	t.Run("clock select change drops the line", func(t *testing.T) {
		tm := NewTimer(nil)
		tm.Write(addr.TAC, 0x05)
		tm.Tick(8) // bit 3 high

		tm.Write(addr.TAC, 0x04) // now monitoring bit 9, which is low
		assert.Equal(t, byte(1), tm.Read(addr.TIMA))
	})

	t.Run("disabling drops the line", func(t *testing.T) {
		tm := NewTimer(nil)
		tm.Write(addr.TAC, 0x05)
		tm.Tick(8)

		tm.Write(addr.TAC, 0x01)
		assert.Equal(t, byte(1), tm.Read(addr.TIMA))
	})

	t.Run("rewrite with line low is clean", func(t *testing.T) {
		tm := NewTimer(nil)
		tm.Write(addr.TAC, 0x05)
		tm.Tick(4)

		tm.Write(addr.TAC, 0x04)
		assert.Equal(t, byte(0), tm.Read(addr.TIMA))
	})
}

func TestTimaOverflowReloadsTmaAndInterrupts(t *testing.T) {
	fired := 0
	tm := NewTimer(func() { fired++ })
	tm.Write(addr.TAC, 0x05)
	tm.Write(addr.TIMA, 0xFE)
	tm.Write(addr.TMA, 0xAA)

	// 32 clocks is two falling edges of bit 3: 0xFE -> 0xFF -> overflow.
	tm.Tick(32)
	assert.Equal(t, byte(0xAA), tm.Read(addr.TIMA))
	assert.Equal(t, 1, fired)
}

func TestOverflowReloadIsImmediate(t *testing.T) {
	fired := 0
	tm := NewTimer(func() { fired++ })
	tm.Write(addr.TAC, 0x05)
	tm.Write(addr.TIMA, 0xFF)
	tm.Write(addr.TMA, 0x23)

	tm.Tick(16)
	assert.Equal(t, byte(0x23), tm.Read(addr.TIMA), "TMA visible in the overflow clock")
	assert.Equal(t, 1, fired)
}

func TestTimerRegisterFile(t *testing.T) {
	tm := NewTimer(nil)

	tm.Write(addr.TIMA, 0x12)
	tm.Write(addr.TMA, 0x34)
	tm.Write(addr.TAC, 0x07)

	assert.Equal(t, byte(0x12), tm.Read(addr.TIMA))
	assert.Equal(t, byte(0x34), tm.Read(addr.TMA))
	assert.Equal(t, byte(0x07), tm.Read(addr.TAC))
	assert.Equal(t, byte(0xFF), tm.Read(0xFF08), "outside the timer block")
}
