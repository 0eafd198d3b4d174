package cpu

import (
	"fmt"

	"github.com/valerio/go-dmg/dmg/bit"
	"github.com/valerio/go-dmg/dmg/cpu/isa"
)

// dispatch executes one decoded instruction. It returns whether a
// conditional branch was taken (always true otherwise) and the flag
// values the instruction proposes.
func (c *CPU) dispatch(op *isa.Opcode) (bool, outcome) {
	switch op.Mnemonic {
	case isa.NOP:
		return true, outcome{}
	case isa.LD, isa.LDH:
		return true, c.load(op)
	case isa.INC:
		return true, c.increment(op)
	case isa.DEC:
		return true, c.decrement(op)
	case isa.ADD:
		return true, c.add(op)
	case isa.ADC:
		return true, c.addWithCarry(op)
	case isa.SUB:
		return true, c.subtract(op, false)
	case isa.SBC:
		return true, c.subtract(op, true)
	case isa.AND:
		return true, c.logical(op, and8)
	case isa.XOR:
		return true, c.logical(op, xor8)
	case isa.OR:
		return true, c.logical(op, or8)
	case isa.CP:
		return true, c.compare(op)
	case isa.RLCA:
		return true, c.rotateA(rlc8)
	case isa.RRCA:
		return true, c.rotateA(rrc8)
	case isa.RLA:
		return true, c.rotateA(c.throughCarry(rl8))
	case isa.RRA:
		return true, c.rotateA(c.throughCarry(rr8))
	case isa.DAA:
		return true, c.decimalAdjust()
	case isa.CPL:
		c.A = ^c.A
		return true, outcome{}
	case isa.SCF, isa.CCF:
		return true, outcome{}
	case isa.JR:
		return c.jumpRelative(op), outcome{}
	case isa.JP:
		return c.jump(op), outcome{}
	case isa.CALL:
		return c.call(op), outcome{}
	case isa.RET:
		return c.ret(op), outcome{}
	case isa.RETI:
		c.PC = c.popWord()
		c.ime = true
		return true, outcome{}
	case isa.RST:
		c.pushWord(c.PC)
		c.PC = uint16(op.BitIndex) * 8
		return true, outcome{}
	case isa.PUSH:
		c.pushWord(c.readPair(op.Operands[0].Target))
		return true, outcome{}
	case isa.POP:
		return true, c.pop(op)
	case isa.HALT:
		c.halt()
		return true, outcome{}
	case isa.STOP:
		c.imm8()
		c.halted = true
		return true, outcome{}
	case isa.DI:
		c.ime = false
		c.imePending = false
		c.imeArmed = false
		return true, outcome{}
	case isa.EI:
		c.imePending = true
		return true, outcome{}
	case isa.RLC:
		return true, c.rewrite(op, rlc8)
	case isa.RRC:
		return true, c.rewrite(op, rrc8)
	case isa.RL:
		return true, c.rewrite(op, c.throughCarry(rl8))
	case isa.RR:
		return true, c.rewrite(op, c.throughCarry(rr8))
	case isa.SLA:
		return true, c.rewrite(op, sla8)
	case isa.SRA:
		return true, c.rewrite(op, sra8)
	case isa.SWAP:
		return true, c.rewrite(op, swap8)
	case isa.SRL:
		return true, c.rewrite(op, srl8)
	case isa.BIT:
		return true, bitTest(c.readTarget(op.Operands[1]), op.BitIndex)
	case isa.RES:
		v := c.readTarget(op.Operands[1])
		c.writeTarget(op.Operands[1], v&^(1<<op.BitIndex))
		return true, outcome{}
	case isa.SET:
		v := c.readTarget(op.Operands[1])
		c.writeTarget(op.Operands[1], v|1<<op.BitIndex)
		return true, outcome{}
	}
	panic(fmt.Sprintf("unhandled mnemonic %s", op.Mnemonic))
}

// load covers the whole LD/LDH space: register moves, memory forms,
// the 16-bit immediate loads, LD (a16),SP and LD HL,SP+e8.
func (c *CPU) load(op *isa.Opcode) outcome {
	dst := op.Operands[0]
	src := op.Operands[len(op.Operands)-1]

	switch {
	case len(op.Operands) == 3:
		// LD HL,SP+e8 carries the flag pair of the low-byte add.
		result, out := addSP(c.SP, c.imm8())
		c.SetHL(result)
		return out

	case dst.Target == isa.AddrImm16 && src.Target == isa.RegSP:
		address := c.imm16()
		c.bus.Write(address, bit.Low(c.SP))
		c.bus.Write(address+1, bit.High(c.SP))

	case dst.Target.IsPair():
		if src.Target == isa.Imm16 {
			c.writePair(dst.Target, c.imm16())
		} else {
			c.writePair(dst.Target, c.readPair(src.Target))
		}

	default:
		c.writeTarget(dst, c.readTarget(src))
	}
	return outcome{}
}

func (c *CPU) increment(op *isa.Opcode) outcome {
	target := op.Operands[0]
	if target.Target.IsPair() {
		c.writePair(target.Target, c.readPair(target.Target)+1)
		return outcome{}
	}
	result, out := add8(c.readTarget(target), 1, false)
	c.writeTarget(target, result)
	return out
}

func (c *CPU) decrement(op *isa.Opcode) outcome {
	target := op.Operands[0]
	if target.Target.IsPair() {
		c.writePair(target.Target, c.readPair(target.Target)-1)
		return outcome{}
	}
	result, out := sub8(c.readTarget(target), 1, false)
	c.writeTarget(target, result)
	return out
}

func (c *CPU) add(op *isa.Opcode) outcome {
	switch op.Operands[0].Target {
	case isa.RegHL:
		result, out := addHL(c.HL(), c.readPair(op.Operands[1].Target))
		c.SetHL(result)
		return out
	case isa.RegSP:
		result, out := addSP(c.SP, c.imm8())
		c.SP = result
		return out
	default:
		result, out := add8(c.A, c.readTarget(op.Operands[1]), false)
		c.A = result
		return out
	}
}

func (c *CPU) addWithCarry(op *isa.Opcode) outcome {
	result, out := add8(c.A, c.readTarget(op.Operands[1]), c.HasFlag(FlagC))
	c.A = result
	return out
}

func (c *CPU) subtract(op *isa.Opcode, useCarry bool) outcome {
	carry := useCarry && c.HasFlag(FlagC)
	result, out := sub8(c.A, c.readTarget(op.Operands[1]), carry)
	c.A = result
	return out
}

func (c *CPU) compare(op *isa.Opcode) outcome {
	_, out := sub8(c.A, c.readTarget(op.Operands[1]), false)
	return out
}

func (c *CPU) logical(op *isa.Opcode, fn func(a, b uint8) (uint8, outcome)) outcome {
	result, out := fn(c.A, c.readTarget(op.Operands[1]))
	c.A = result
	return out
}

// rotateA is the one-byte accumulator rotate family. The zero proposal
// is discarded by the descriptor, which forces Z clear.
func (c *CPU) rotateA(fn func(uint8) (uint8, outcome)) outcome {
	result, out := fn(c.A)
	c.A = result
	return out
}

// rewrite reads a CB operand, transforms it and writes it back.
func (c *CPU) rewrite(op *isa.Opcode, fn func(uint8) (uint8, outcome)) outcome {
	target := op.Operands[0]
	result, out := fn(c.readTarget(target))
	c.writeTarget(target, result)
	return out
}

// throughCarry binds the current carry flag into a rotate-through-carry
// primitive so it can share the rewrite plumbing.
func (c *CPU) throughCarry(fn func(uint8, bool) (uint8, outcome)) func(uint8) (uint8, outcome) {
	return func(v uint8) (uint8, outcome) {
		return fn(v, c.HasFlag(FlagC))
	}
}

func (c *CPU) decimalAdjust() outcome {
	result, out := daa(c.A, c.HasFlag(FlagN), c.HasFlag(FlagH), c.HasFlag(FlagC))
	c.A = result
	return out
}

func (c *CPU) pop(op *isa.Opcode) outcome {
	value := c.popWord()
	target := op.Operands[0].Target
	c.writePair(target, value)
	if target != isa.RegAF {
		return outcome{}
	}
	return outcome{
		z: value&uint16(FlagZ) != 0,
		n: value&uint16(FlagN) != 0,
		h: value&uint16(FlagH) != 0,
		c: value&uint16(FlagC) != 0,
	}
}

func (c *CPU) halt() {
	if c.ime {
		c.halted = true
		return
	}
	if c.pendingInterrupts() != 0 {
		c.haltBug = true
		return
	}
	c.halted = true
}

func (c *CPU) condPassed(op *isa.Opcode) bool {
	cond, ok := op.Cond()
	if !ok {
		return true
	}
	switch cond {
	case isa.CondNZ:
		return !c.HasFlag(FlagZ)
	case isa.CondZ:
		return c.HasFlag(FlagZ)
	case isa.CondNC:
		return !c.HasFlag(FlagC)
	default:
		return c.HasFlag(FlagC)
	}
}

// jumpRelative always consumes the offset byte; the condition only
// decides whether PC moves.
func (c *CPU) jumpRelative(op *isa.Opcode) bool {
	offset := int8(c.imm8())
	if !c.condPassed(op) {
		return false
	}
	c.PC += uint16(int16(offset))
	return true
}

func (c *CPU) jump(op *isa.Opcode) bool {
	if op.Operands[len(op.Operands)-1].Target == isa.RegHL {
		c.PC = c.HL()
		return true
	}
	target := c.imm16()
	if !c.condPassed(op) {
		return false
	}
	c.PC = target
	return true
}

func (c *CPU) call(op *isa.Opcode) bool {
	target := c.imm16()
	if !c.condPassed(op) {
		return false
	}
	c.pushWord(c.PC)
	c.PC = target
	return true
}

func (c *CPU) ret(op *isa.Opcode) bool {
	if !c.condPassed(op) {
		return false
	}
	c.PC = c.popWord()
	return true
}

// readTarget resolves an 8-bit operand source, fetching immediates and
// applying the HL post increment/decrement forms.
func (c *CPU) readTarget(operand isa.Operand) uint8 {
	switch operand.Target {
	case isa.RegA:
		return c.A
	case isa.RegB:
		return c.B
	case isa.RegC:
		return c.C
	case isa.RegD:
		return c.D
	case isa.RegE:
		return c.E
	case isa.RegH:
		return c.H
	case isa.RegL:
		return c.L
	case isa.Imm8, isa.Rel8:
		return c.imm8()
	case isa.AddrImm8:
		return c.bus.Read(0xFF00 | uint16(c.imm8()))
	case isa.AddrImm16:
		return c.bus.Read(c.imm16())
	case isa.AddrC:
		return c.bus.Read(0xFF00 | uint16(c.C))
	case isa.AddrBC:
		return c.bus.Read(c.BC())
	case isa.AddrDE:
		return c.bus.Read(c.DE())
	case isa.AddrHL:
		return c.bus.Read(c.HL())
	case isa.AddrHLInc:
		v := c.bus.Read(c.HL())
		c.SetHL(c.HL() + 1)
		return v
	case isa.AddrHLDec:
		v := c.bus.Read(c.HL())
		c.SetHL(c.HL() - 1)
		return v
	}
	panic(fmt.Sprintf("unreadable operand %s", operand.Target))
}

func (c *CPU) writeTarget(operand isa.Operand, value uint8) {
	switch operand.Target {
	case isa.RegA:
		c.A = value
	case isa.RegB:
		c.B = value
	case isa.RegC:
		c.C = value
	case isa.RegD:
		c.D = value
	case isa.RegE:
		c.E = value
	case isa.RegH:
		c.H = value
	case isa.RegL:
		c.L = value
	case isa.AddrImm8:
		c.bus.Write(0xFF00|uint16(c.imm8()), value)
	case isa.AddrImm16:
		c.bus.Write(c.imm16(), value)
	case isa.AddrC:
		c.bus.Write(0xFF00|uint16(c.C), value)
	case isa.AddrBC:
		c.bus.Write(c.BC(), value)
	case isa.AddrDE:
		c.bus.Write(c.DE(), value)
	case isa.AddrHL:
		c.bus.Write(c.HL(), value)
	case isa.AddrHLInc:
		c.bus.Write(c.HL(), value)
		c.SetHL(c.HL() + 1)
	case isa.AddrHLDec:
		c.bus.Write(c.HL(), value)
		c.SetHL(c.HL() - 1)
	default:
		panic(fmt.Sprintf("unwritable operand %s", operand.Target))
	}
}

func (c *CPU) readPair(target isa.Target) uint16 {
	switch target {
	case isa.RegAF:
		return c.AF()
	case isa.RegBC:
		return c.BC()
	case isa.RegDE:
		return c.DE()
	case isa.RegHL:
		return c.HL()
	case isa.RegSP:
		return c.SP
	}
	panic(fmt.Sprintf("not a register pair: %s", target))
}

func (c *CPU) writePair(target isa.Target, value uint16) {
	switch target {
	case isa.RegAF:
		c.SetAF(value)
	case isa.RegBC:
		c.SetBC(value)
	case isa.RegDE:
		c.SetDE(value)
	case isa.RegHL:
		c.SetHL(value)
	case isa.RegSP:
		c.SP = value
	default:
		panic(fmt.Sprintf("not a register pair: %s", target))
	}
}
