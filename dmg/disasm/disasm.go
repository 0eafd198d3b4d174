// Package disasm renders SM83 instructions as text. It walks the same
// opcode tables the CPU dispatches through, so the output stays in
// sync with execution by construction.
package disasm

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/valerio/go-dmg/dmg/bit"
	"github.com/valerio/go-dmg/dmg/cpu/isa"
)

// Memory is the read surface instructions are decoded from.
type Memory interface {
	Read(address uint16) byte
}

// Line is one decoded instruction.
type Line struct {
	Address uint16
	Bytes   []byte
	Text    string
}

// Length returns the encoded size in bytes.
func (l Line) Length() int { return len(l.Bytes) }

// At decodes the instruction at pc, reading operand bytes with address
// wraparound. A byte with no table entry decodes as a DB directive.
func At(pc uint16, mem Memory) Line {
	code := mem.Read(pc)

	prefixed := code == 0xCB
	if prefixed {
		code = mem.Read(pc + 1)
	}

	op := isa.Lookup(code, prefixed)
	if op == nil {
		return Line{
			Address: pc,
			Bytes:   []byte{code},
			Text:    fmt.Sprintf("DB $%02X", code),
		}
	}

	raw := make([]byte, op.Bytes)
	for i := range raw {
		raw[i] = mem.Read(pc + uint16(i))
	}

	return Line{Address: pc, Bytes: raw, Text: render(pc, op, raw)}
}

// Range decodes count consecutive instructions starting at pc.
func Range(pc uint16, count int, mem Memory) []Line {
	lines := make([]Line, 0, count)
	for i := 0; i < count; i++ {
		line := At(pc, mem)
		lines = append(lines, line)
		pc += uint16(line.Length())
	}
	return lines
}

// Format renders a line for display, marking the current instruction.
func Format(line Line, current bool) string {
	marker := " "
	if current {
		marker = ">"
	}
	return fmt.Sprintf("%s 0x%04X: %s", marker, line.Address, line.Text)
}

func render(pc uint16, op *isa.Opcode, raw []byte) string {
	if len(op.Operands) == 0 {
		return op.Mnemonic.String()
	}

	operands := make([]string, len(op.Operands))
	for i, operand := range op.Operands {
		operands[i] = renderOperand(pc, op, operand.Target, raw)
	}
	return op.Mnemonic.String() + " " + strings.Join(operands, ",")
}

// renderOperand substitutes immediate bytes into the operand notation.
// Relative displacements render as the absolute destination address.
func renderOperand(pc uint16, op *isa.Opcode, target isa.Target, raw []byte) string {
	switch target {
	case isa.Imm8:
		return fmt.Sprintf("$%02X", raw[len(raw)-1])
	case isa.Imm16:
		return fmt.Sprintf("$%04X", bit.Combine(raw[2], raw[1]))
	case isa.Rel8:
		dest := pc + uint16(op.Bytes) + uint16(int8(raw[1]))
		return fmt.Sprintf("$%04X", dest)
	case isa.AddrImm8:
		return fmt.Sprintf("($FF%02X)", raw[len(raw)-1])
	case isa.AddrImm16:
		return fmt.Sprintf("($%04X)", bit.Combine(raw[2], raw[1]))
	case isa.Bit:
		return strconv.Itoa(int(op.BitIndex))
	case isa.Vector:
		return fmt.Sprintf("$%02X", int(op.BitIndex)*8)
	default:
		return target.String()
	}
}
