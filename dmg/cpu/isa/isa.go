// Package isa holds the SM83 instruction metadata: operand targets, flag
// effects and the two 256-entry opcode tables (unprefixed and CB-prefixed).
// The tables live in table.go, which is generated from the published gbdev
// opcode description by the program under gen/.
package isa

import (
	"fmt"
	"strconv"
	"strings"
)

//go:generate go run ./gen -out table.go

// Target identifies where an operand is read from or written to.
type Target uint8

const (
	TgtNone Target = iota

	// 8-bit registers
	RegA
	RegB
	RegC
	RegD
	RegE
	RegH
	RegL

	// 16-bit register pairs and the stack pointer
	RegAF
	RegBC
	RegDE
	RegHL
	RegSP

	// immediate data following the opcode
	Imm8
	Imm16
	Rel8 // signed 8-bit displacement

	// memory operands
	AddrImm8  // 0xFF00 | n, high RAM offset
	AddrImm16 // absolute 16-bit address
	AddrC     // 0xFF00 | C
	AddrBC
	AddrDE
	AddrHL
	AddrHLInc // (HL), HL incremented after access
	AddrHLDec // (HL), HL decremented after access

	// branch conditions
	CondNZ
	CondZ
	CondNC
	CondC

	// Bit marks a bit-index operand; the index itself is in Opcode.BitIndex.
	Bit
	// Vector marks an RST slot; the vector is Opcode.BitIndex * 8.
	Vector
)

// IsCond reports whether the target is a branch condition.
func (t Target) IsCond() bool {
	return t >= CondNZ && t <= CondC
}

// IsPair reports whether the target is a 16-bit register pair or SP.
func (t Target) IsPair() bool {
	return t >= RegAF && t <= RegSP
}

// FlagAction describes what an instruction does to one flag bit.
type FlagAction uint8

const (
	// FlagNone leaves the flag untouched.
	FlagNone FlagAction = iota
	// FlagCalc commits the value computed by the handler.
	FlagCalc
	// FlagSet forces the flag to 1.
	FlagSet
	// FlagReset forces the flag to 0.
	FlagReset
	// FlagInvert flips the current value.
	FlagInvert
)

// Flags is the per-instruction effect on each of ZNHC.
type Flags struct {
	Z, N, H, C FlagAction
}

// Cycles is the taken/not-taken T-cycle pair. The two are equal for
// unconditional instructions.
type Cycles struct {
	Taken    int
	NotTaken int
}

// Operand is one operand descriptor. Immediate mirrors the source data:
// true when the operand is used as-is, false when it addresses memory.
type Operand struct {
	Target    Target
	Immediate bool
}

// Opcode is the static metadata for one instruction encoding.
type Opcode struct {
	Mnemonic Mnemonic
	Bytes    int
	Cycles   Cycles
	Operands []Operand
	BitIndex uint8
	Flags    Flags
}

// Branching reports whether the instruction has distinct taken and
// not-taken cycle counts.
func (o *Opcode) Branching() bool {
	return o.Cycles.Taken != o.Cycles.NotTaken
}

// Cond returns the branch condition operand, with ok false for
// unconditional instructions.
func (o *Opcode) Cond() (Target, bool) {
	for _, op := range o.Operands {
		if op.Target.IsCond() {
			return op.Target, true
		}
	}
	return TgtNone, false
}

// String renders the instruction in conventional assembly notation,
// e.g. "LD (HL+),A" or "BIT 7,H".
func (o *Opcode) String() string {
	if len(o.Operands) == 0 {
		return o.Mnemonic.String()
	}
	parts := make([]string, len(o.Operands))
	for i, op := range o.Operands {
		switch op.Target {
		case Bit:
			parts[i] = strconv.Itoa(int(o.BitIndex))
		case Vector:
			parts[i] = fmt.Sprintf("$%02X", int(o.BitIndex)*8)
		default:
			parts[i] = op.Target.String()
		}
	}
	return o.Mnemonic.String() + " " + strings.Join(parts, ",")
}

// Mnemonic is the instruction family tag dispatched on by the CPU.
type Mnemonic uint8

const (
	NOP Mnemonic = iota
	LD
	LDH
	INC
	DEC
	ADD
	ADC
	SUB
	SBC
	AND
	XOR
	OR
	CP
	RLCA
	RRCA
	RLA
	RRA
	DAA
	CPL
	SCF
	CCF
	JR
	JP
	CALL
	RET
	RETI
	RST
	PUSH
	POP
	HALT
	STOP
	DI
	EI

	// CB-prefixed families
	RLC
	RRC
	RL
	RR
	SLA
	SRA
	SWAP
	SRL
	BIT
	RES
	SET
)

var mnemonicNames = [...]string{
	NOP: "NOP", LD: "LD", LDH: "LDH", INC: "INC", DEC: "DEC",
	ADD: "ADD", ADC: "ADC", SUB: "SUB", SBC: "SBC",
	AND: "AND", XOR: "XOR", OR: "OR", CP: "CP",
	RLCA: "RLCA", RRCA: "RRCA", RLA: "RLA", RRA: "RRA",
	DAA: "DAA", CPL: "CPL", SCF: "SCF", CCF: "CCF",
	JR: "JR", JP: "JP", CALL: "CALL", RET: "RET", RETI: "RETI",
	RST: "RST", PUSH: "PUSH", POP: "POP", HALT: "HALT", STOP: "STOP",
	DI: "DI", EI: "EI",
	RLC: "RLC", RRC: "RRC", RL: "RL", RR: "RR",
	SLA: "SLA", SRA: "SRA", SWAP: "SWAP", SRL: "SRL",
	BIT: "BIT", RES: "RES", SET: "SET",
}

func (m Mnemonic) String() string {
	if int(m) < len(mnemonicNames) {
		return mnemonicNames[m]
	}
	return "???"
}

var targetNames = [...]string{
	TgtNone: "", RegA: "A", RegB: "B", RegC: "C", RegD: "D", RegE: "E",
	RegH: "H", RegL: "L",
	RegAF: "AF", RegBC: "BC", RegDE: "DE", RegHL: "HL", RegSP: "SP",
	Imm8: "n8", Imm16: "n16", Rel8: "e8",
	AddrImm8: "(a8)", AddrImm16: "(a16)", AddrC: "(C)",
	AddrBC: "(BC)", AddrDE: "(DE)", AddrHL: "(HL)",
	AddrHLInc: "(HL+)", AddrHLDec: "(HL-)",
	CondNZ: "NZ", CondZ: "Z", CondNC: "NC", CondC: "C",
	Bit: "b", Vector: "vec",
}

func (t Target) String() string {
	if int(t) < len(targetNames) {
		return targetNames[t]
	}
	return "?"
}

// Lookup returns the table entry for a fetched byte, selecting the CB table
// when prefixed. A nil result means the byte has no assigned instruction.
func Lookup(code byte, prefixed bool) *Opcode {
	if prefixed {
		return TableCB[code]
	}
	return Table[code]
}
