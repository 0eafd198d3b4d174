package disasm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// flatMemory serves bytes from a slice, zero elsewhere.
type flatMemory []byte

func (m flatMemory) Read(address uint16) byte {
	if int(address) < len(m) {
		return m[address]
	}
	return 0
}

func TestDecodeAt(t *testing.T) {
	tests := []struct {
		desc   string
		code   []byte
		text   string
		length int
	}{
		{"no operands", []byte{0x00}, "NOP", 1},
		{"immediate byte", []byte{0x3E, 0x42}, "LD A,$42", 2},
		{"immediate word", []byte{0x21, 0x34, 0x12}, "LD HL,$1234", 3},
		{"high ram store", []byte{0xE0, 0x44}, "LDH ($FF44),A", 2},
		{"high ram load", []byte{0xF0, 0x44}, "LDH A,($FF44)", 2},
		{"absolute store", []byte{0xEA, 0xCD, 0xAB}, "LD ($ABCD),A", 3},
		{"post-decrement", []byte{0x32}, "LD (HL-),A", 1},
		{"rst vector", []byte{0xFF}, "RST $38", 1},
		{"stop padding byte", []byte{0x10, 0x00}, "STOP $00", 2},
		{"cb register op", []byte{0xCB, 0x37}, "SWAP A", 2},
		{"cb bit test", []byte{0xCB, 0x7C}, "BIT 7,H", 2},
		{"unassigned byte", []byte{0xD3}, "DB $D3", 1},
	}

	for _, tc := range tests {
		t.Run(tc.desc, func(t *testing.T) {
			line := At(0, flatMemory(tc.code))

			assert.Equal(t, tc.text, line.Text)
			assert.Equal(t, tc.length, line.Length())
			assert.Equal(t, uint16(0), line.Address)
		})
	}
}

func TestRelativeJumpDestination(t *testing.T) {
	mem := make(flatMemory, 0x200)

	// JR -2 at 0x0100 targets itself.
	mem[0x100], mem[0x101] = 0x18, 0xFE
	assert.Equal(t, "JR $0100", At(0x100, mem).Text)

	// JR NZ,+5 skips past five bytes following the instruction.
	mem[0x110], mem[0x111] = 0x20, 0x05
	assert.Equal(t, "JR NZ,$0117", At(0x110, mem).Text)
}

func TestRange(t *testing.T) {
	mem := flatMemory{0x00, 0x3E, 0x42, 0xC3, 0x50, 0x01}

	lines := Range(0, 3, mem)

	assert.Len(t, lines, 3)
	assert.Equal(t, uint16(0), lines[0].Address)
	assert.Equal(t, "NOP", lines[0].Text)
	assert.Equal(t, uint16(1), lines[1].Address)
	assert.Equal(t, "LD A,$42", lines[1].Text)
	assert.Equal(t, uint16(3), lines[2].Address)
	assert.Equal(t, "JP $0150", lines[2].Text)
}

func TestFormat(t *testing.T) {
	line := Line{Address: 0x0100, Bytes: []byte{0x00}, Text: "NOP"}

	assert.Equal(t, "  0x0100: NOP", Format(line, false))
	assert.Equal(t, "> 0x0100: NOP", Format(line, true))
}

func TestRawBytes(t *testing.T) {
	line := At(0, flatMemory{0xC3, 0x50, 0x01})
	assert.Equal(t, []byte{0xC3, 0x50, 0x01}, line.Bytes)
}
