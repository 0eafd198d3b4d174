package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/valerio/go-dmg/dmg/addr"
)

// flatBus backs the whole address space with one array, enough for
// CPU-only tests. IF and IE live at their usual addresses.
type flatBus struct {
	mem [0x10000]byte
}

func (b *flatBus) Read(address uint16) byte         { return b.mem[address] }
func (b *flatBus) Write(address uint16, value byte) { b.mem[address] = value }

// testCPU returns a fresh CPU with the program placed at the reset PC.
func testCPU(program ...byte) (*CPU, *flatBus) {
	bus := &flatBus{}
	copy(bus.mem[0x0100:], program)
	return New(bus), bus
}

func TestPowerOnState(t *testing.T) {
	c, _ := testCPU()

	assert.Equal(t, uint16(0x01B0), c.AF())
	assert.Equal(t, uint16(0x0013), c.BC())
	assert.Equal(t, uint16(0x00D8), c.DE())
	assert.Equal(t, uint16(0x014D), c.HL())
	assert.Equal(t, uint16(0xFFFE), c.SP)
	assert.Equal(t, uint16(0x0100), c.PC)
	assert.False(t, c.IME())
	assert.False(t, c.Halted())
}

// EI must leave IME off for exactly one more instruction; the pending
// interrupt is only serviced on the step after that.
func TestEnableInterruptDelay(t *testing.T) {
	c, bus := testCPU(0xFB, 0x00) // EI; NOP
	bus.mem[addr.IE] = 0x01
	bus.mem[addr.IF] = 0x01

	c.Step()
	assert.Equal(t, uint16(0x0101), c.PC)
	assert.False(t, c.IME(), "IME stays off during EI itself")

	c.Step()
	assert.Equal(t, uint16(0x0102), c.PC, "the following instruction still executes")
	assert.True(t, c.IME())

	cycles := c.Step()
	assert.Equal(t, 20, cycles)
	assert.Equal(t, uint16(0x0040), c.PC)
	assert.Equal(t, uint16(0xFFFC), c.SP)
	assert.Equal(t, byte(0x02), bus.mem[0xFFFC], "low byte of the return address")
	assert.Equal(t, byte(0x01), bus.mem[0xFFFD], "high byte of the return address")
	assert.Equal(t, byte(0x00), bus.mem[addr.IF], "serviced bit acknowledged")
	assert.False(t, c.IME())
}

// DI right after EI wins: no enable, no service.
func TestDisableCancelsPendingEnable(t *testing.T) {
	c, bus := testCPU(0xFB, 0xF3, 0x00) // EI; DI; NOP
	bus.mem[addr.IE] = 0x01
	bus.mem[addr.IF] = 0x01

	c.Step()
	c.Step()
	assert.False(t, c.IME())

	c.Step()
	assert.Equal(t, uint16(0x0103), c.PC, "NOP executes, nothing is serviced")
	assert.False(t, c.IME())
}

// HALT with IME off and an interrupt already pending arms the bug: the
// next opcode byte is fetched twice.
func TestHaltBugReplaysNextByte(t *testing.T) {
	c, bus := testCPU()
	bus.mem[0xC000] = 0x76 // HALT
	bus.mem[0xC001] = 0x3C // INC A
	bus.mem[addr.IE] = 0x01
	bus.mem[addr.IF] = 0x01
	c.PC = 0xC000
	c.A = 0

	c.Step()
	assert.False(t, c.Halted())
	assert.Equal(t, uint16(0xC001), c.PC)

	c.Step()
	assert.Equal(t, uint8(1), c.A)
	assert.Equal(t, uint16(0xC001), c.PC, "PC does not advance on the replayed fetch")

	c.Step()
	assert.Equal(t, uint8(2), c.A)
	assert.Equal(t, uint16(0xC002), c.PC)
}

func TestHaltSleepsUntilPendingBits(t *testing.T) {
	c, bus := testCPU(0x76, 0x3C) // HALT; INC A
	c.A = 0

	c.Step()
	assert.True(t, c.Halted())

	for i := 0; i < 3; i++ {
		assert.Equal(t, 4, c.Step(), "halted steps cost 4 cycles")
	}
	assert.Equal(t, uint16(0x0101), c.PC)

	// wake without service: IME is off, execution just resumes
	bus.mem[addr.IE] = 0x04
	bus.mem[addr.IF] = 0x04
	c.Step()
	assert.False(t, c.Halted())
	assert.Equal(t, uint8(1), c.A)
	assert.Equal(t, uint16(0x0102), c.PC)
	assert.Equal(t, byte(0x04), bus.mem[addr.IF], "no bit acknowledged without IME")
}

// The EI; HALT idiom: the CPU sleeps, and the wake-up interrupt is
// serviced before anything after HALT runs.
func TestHaltThenServiceWithIME(t *testing.T) {
	c, bus := testCPU(0xFB, 0x76, 0x00) // EI; HALT; NOP
	bus.mem[addr.IE] = 0x01

	c.Step()
	c.Step()
	assert.True(t, c.Halted())
	assert.True(t, c.IME())

	assert.Equal(t, 4, c.Step(), "still asleep")

	bus.mem[addr.IF] = 0x01
	cycles := c.Step()
	assert.Equal(t, 20, cycles)
	assert.False(t, c.Halted())
	assert.Equal(t, uint16(0x0040), c.PC)
	assert.Equal(t, byte(0x02), bus.mem[0xFFFC], "return address points after HALT")
}

func TestInterruptPriorityOrder(t *testing.T) {
	c, bus := testCPU(0x00)
	bus.mem[addr.IE] = 0x1F
	bus.mem[addr.IF] = 0x14 // Timer and Joypad both pending
	c.ime = true

	c.Step()
	assert.Equal(t, addr.TimerInterrupt.Vector(), c.PC, "lowest bit wins")
	assert.Equal(t, byte(0x10), bus.mem[addr.IF], "only the serviced bit clears")

	// the next service picks up the remaining bit once IME returns
	c.ime = true
	c.Step()
	assert.Equal(t, addr.JoypadInterrupt.Vector(), c.PC)
	assert.Equal(t, byte(0x00), bus.mem[addr.IF])
}

func TestInterruptIgnoredWithoutIME(t *testing.T) {
	c, bus := testCPU(0x00, 0x00)
	bus.mem[addr.IE] = 0x01
	bus.mem[addr.IF] = 0x01

	c.Step()
	assert.Equal(t, uint16(0x0101), c.PC, "plain fetch, no hijack")
}

func TestConditionalBranchCycles(t *testing.T) {
	// JR NZ,+5 at 0xC000 followed by unrelated bytes
	program := []byte{0x20, 0x05}

	c, bus := testCPU()
	copy(bus.mem[0xC000:], program)
	c.PC = 0xC000
	c.SetFlag(FlagZ, true)
	assert.Equal(t, 8, c.Step(), "not taken")
	assert.Equal(t, uint16(0xC002), c.PC)

	c, bus = testCPU()
	copy(bus.mem[0xC000:], program)
	c.PC = 0xC000
	c.SetFlag(FlagZ, false)
	assert.Equal(t, 12, c.Step(), "taken")
	assert.Equal(t, uint16(0xC007), c.PC)
}

func TestRetiRestoresPCAndIME(t *testing.T) {
	c, bus := testCPU(0xD9) // RETI
	c.SP = 0xFFFC
	bus.mem[0xFFFC] = 0x34
	bus.mem[0xFFFD] = 0x12

	cycles := c.Step()
	assert.Equal(t, 16, cycles)
	assert.Equal(t, uint16(0x1234), c.PC)
	assert.True(t, c.IME(), "RETI enables immediately")
	assert.Equal(t, uint16(0xFFFE), c.SP)
}

func TestIllegalOpcodePanics(t *testing.T) {
	c, _ := testCPU(0xD3)
	assert.Panics(t, func() { c.Step() })
}

func TestStopSuspends(t *testing.T) {
	c, _ := testCPU(0x10, 0x00) // STOP with padding byte
	cycles := c.Step()
	assert.Equal(t, 4, cycles)
	assert.True(t, c.Halted())
	assert.Equal(t, uint16(0x0102), c.PC, "padding byte consumed")
}
