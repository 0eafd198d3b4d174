// Package cpu implements the SM83 core: table-driven fetch/decode/dispatch,
// the interrupt sequencer, and the HALT and EI edge cases that hardware test
// ROMs probe.
package cpu

import (
	"fmt"

	"github.com/valerio/go-dmg/dmg/addr"
	"github.com/valerio/go-dmg/dmg/bit"
	"github.com/valerio/go-dmg/dmg/cpu/isa"
)

// Bus is the memory surface the CPU executes against. The concrete bus
// routes these accesses to RAM, the cartridge and the mapped devices.
type Bus interface {
	Read(address uint16) byte
	Write(address uint16, value byte)
}

// CPU holds the register file and the interrupt sequencing state.
type CPU struct {
	Registers

	bus Bus

	// Interrupt master enable plus the two-stage EI latch: EI sets
	// imePending, the next Step moves it to imeArmed at entry and
	// flips IME once that instruction has completed.
	ime        bool
	imePending bool
	imeArmed   bool

	halted  bool
	haltBug bool
}

// New returns a CPU with the post-boot-ROM register values, ready to
// fetch from 0x0100.
func New(bus Bus) *CPU {
	return &CPU{
		Registers: Registers{
			A: 0x01, F: 0xB0,
			B: 0x00, C: 0x13,
			D: 0x00, E: 0xD8,
			H: 0x01, L: 0x4D,
			SP: 0xFFFE,
			PC: 0x0100,
		},
		bus: bus,
	}
}

var servicePriority = [...]addr.Interrupt{
	addr.VBlankInterrupt,
	addr.LCDSTATInterrupt,
	addr.TimerInterrupt,
	addr.SerialInterrupt,
	addr.JoypadInterrupt,
}

// Step services one interrupt or executes one instruction and returns
// the elapsed clock cycles. Ordering within a step: the EI latch
// advances first, then a pending interrupt may hijack control, then a
// halted CPU either sleeps or wakes, and only then does a fetch happen.
func (c *CPU) Step() int {
	if c.imePending {
		c.imePending = false
		c.imeArmed = true
	}

	if c.ime {
		if pending := c.pendingInterrupts(); pending != 0 {
			return c.serviceInterrupt(pending)
		}
	}

	if c.halted {
		if c.pendingInterrupts() == 0 {
			return 4
		}
		c.halted = false
	}

	cycles := c.executeInstruction()

	if c.imeArmed {
		c.imeArmed = false
		c.ime = true
	}
	return cycles
}

// Halted reports whether the CPU is suspended waiting for an interrupt.
func (c *CPU) Halted() bool { return c.halted }

// IME reports the interrupt master enable state.
func (c *CPU) IME() bool { return c.ime }

// pendingInterrupts returns the set of requested and enabled interrupt
// bits, read through the bus.
func (c *CPU) pendingInterrupts() addr.Interrupt {
	return addr.Interrupt(c.bus.Read(addr.IF) & c.bus.Read(addr.IE) & 0x1F)
}

// serviceInterrupt hijacks control for the lowest pending bit: the IF
// bit is acknowledged, IME drops, the current PC is pushed and execution
// lands on the vector. The instruction there runs on a later step.
func (c *CPU) serviceInterrupt(pending addr.Interrupt) int {
	c.halted = false
	c.ime = false

	for _, irq := range servicePriority {
		if pending&irq == 0 {
			continue
		}
		c.bus.Write(addr.IF, c.bus.Read(addr.IF)&^byte(irq))
		c.pushWord(c.PC)
		c.PC = irq.Vector()
		break
	}
	return 20
}

func (c *CPU) executeInstruction() int {
	fetchPC := c.PC
	code := c.fetchOpcode()
	prefixed := code == 0xCB
	if prefixed {
		code = c.imm8()
	}

	op := isa.Lookup(code, prefixed)
	if op == nil {
		panic(fmt.Sprintf("illegal opcode 0x%02X at 0x%04X", code, fetchPC))
	}

	taken, out := c.dispatch(op)
	c.applyFlags(op.Flags, out)

	if taken {
		return op.Cycles.Taken
	}
	return op.Cycles.NotTaken
}

// fetchOpcode reads the byte at PC. While the HALT bug is armed the
// read does not advance PC, so the byte is replayed exactly once.
func (c *CPU) fetchOpcode() byte {
	v := c.bus.Read(c.PC)
	if c.haltBug {
		c.haltBug = false
		return v
	}
	c.PC++
	return v
}

func (c *CPU) imm8() byte {
	v := c.bus.Read(c.PC)
	c.PC++
	return v
}

func (c *CPU) imm16() uint16 {
	low := c.imm8()
	high := c.imm8()
	return bit.Combine(high, low)
}

func (c *CPU) pushWord(value uint16) {
	c.SP--
	c.bus.Write(c.SP, bit.High(value))
	c.SP--
	c.bus.Write(c.SP, bit.Low(value))
}

func (c *CPU) popWord() uint16 {
	low := c.bus.Read(c.SP)
	c.SP++
	high := c.bus.Read(c.SP)
	c.SP++
	return bit.Combine(high, low)
}

// applyFlags commits the proposed flag values through the opcode's
// descriptor. Bits marked unchanged never touch F, so handlers may
// propose freely.
func (c *CPU) applyFlags(spec isa.Flags, out outcome) {
	c.commitFlag(spec.Z, FlagZ, out.z)
	c.commitFlag(spec.N, FlagN, out.n)
	c.commitFlag(spec.H, FlagH, out.h)
	c.commitFlag(spec.C, FlagC, out.c)
}

func (c *CPU) commitFlag(action isa.FlagAction, flag Flag, proposed bool) {
	switch action {
	case isa.FlagNone:
	case isa.FlagCalc:
		c.SetFlag(flag, proposed)
	case isa.FlagSet:
		c.SetFlag(flag, true)
	case isa.FlagReset:
		c.SetFlag(flag, false)
	case isa.FlagInvert:
		c.SetFlag(flag, !c.HasFlag(flag))
	}
}
