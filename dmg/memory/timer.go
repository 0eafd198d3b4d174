package memory

import (
	"github.com/valerio/go-dmg/dmg/addr"
	"github.com/valerio/go-dmg/dmg/bit"
)

// tacBits maps TAC clock select (bits 1-0) to the monitored bit of the
// internal counter. TIMA increments on each falling edge of that bit
// while the timer is enabled.
//
//	00 -> bit 9  (4096 Hz)
//	01 -> bit 3  (262144 Hz)
//	10 -> bit 5  (65536 Hz)
//	11 -> bit 7  (16384 Hz)
var tacBits = [4]uint8{9, 3, 5, 7}

// Timer implements DIV/TIMA/TMA/TAC. DIV is the high byte of a free
// running 16-bit counter. Because TIMA advances on falling edges of a
// counter bit, resetting DIV or rewriting TAC can produce an extra
// increment; both glitches flow through the same edge detection.
type Timer struct {
	counter uint16
	tima    byte
	tma     byte
	tac     byte

	onInterrupt func()
}

// NewTimer creates a stopped timer. onInterrupt fires when TIMA
// overflows and should raise the timer interrupt; it may be nil.
func NewTimer(onInterrupt func()) *Timer {
	return &Timer{onInterrupt: onInterrupt}
}

// SetSeed initializes the internal divider, and with it DIV.
func (t *Timer) SetSeed(seed uint16) {
	t.counter = seed
}

// line is the TIMA clock line: timer enabled AND monitored counter bit.
func (t *Timer) line() bool {
	return bit.IsSet(2, t.tac) && bit.IsSet16(tacBits[t.tac&0x03], t.counter)
}

func (t *Timer) Tick(cycles int) {
	for i := 0; i < cycles; i++ {
		old := t.line()
		t.counter++
		if old && !t.line() {
			t.incrementTIMA()
		}
	}
}

// incrementTIMA advances TIMA. On wrap it reloads from TMA and raises
// the interrupt in the same clock.
func (t *Timer) incrementTIMA() {
	t.tima++
	if t.tima == 0 {
		t.tima = t.tma
		if t.onInterrupt != nil {
			t.onInterrupt()
		}
	}
}

func (t *Timer) Read(address uint16) byte {
	switch address {
	case addr.DIV:
		return byte(t.counter >> 8)
	case addr.TIMA:
		return t.tima
	case addr.TMA:
		return t.tma
	case addr.TAC:
		return t.tac
	default:
		return 0xFF
	}
}

func (t *Timer) Write(address uint16, value byte) {
	switch address {
	case addr.DIV:
		// Any write zeroes the counter. If the monitored bit was high
		// the reset is itself a falling edge.
		old := t.line()
		t.counter = 0
		if old && !t.line() {
			t.incrementTIMA()
		}
	case addr.TIMA:
		t.tima = value
	case addr.TMA:
		t.tma = value
	case addr.TAC:
		// Switching clock source or disabling the timer can drop the
		// line from 1 to 0, which also counts as a falling edge.
		old := t.line()
		t.tac = value
		if old && !t.line() {
			t.incrementTIMA()
		}
	}
}
