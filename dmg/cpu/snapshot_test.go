package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotString(t *testing.T) {
	s := Snapshot{
		A: 0x01, F: 0xB0,
		B: 0x00, C: 0x13,
		D: 0x00, E: 0xD8,
		H: 0x01, L: 0x4D,
		SP: 0xFFFE, PC: 0x0100,
		PCMem: [4]uint8{0x00, 0xC3, 0x13, 0x02},
	}

	want := "A:01 F:[Z-HC] B:00 C:13 D:00 E:D8 H:01 L:4D SP:FFFE PC:0100 PCMEM:00,C3,13,02"
	assert.Equal(t, want, s.String())
}

func TestSnapshotFlagMask(t *testing.T) {
	tests := []struct {
		f    uint8
		want string
	}{
		{0x00, "[----]"},
		{0xF0, "[ZNHC]"},
		{0x80, "[Z---]"},
		{0x10, "[---C]"},
		{0x60, "[-NH-]"},
	}

	for _, tt := range tests {
		s := Snapshot{F: tt.f}
		assert.Contains(t, s.String(), "F:"+tt.want)
	}
}

func TestSnapshotFromCPU(t *testing.T) {
	c, _ := testCPU(0x00, 0xC3, 0x50, 0x01)

	s := c.Snapshot()
	assert.Equal(t, uint8(0x01), s.A)
	assert.Equal(t, uint16(0x0100), s.PC)
	assert.Equal(t, [4]uint8{0x00, 0xC3, 0x50, 0x01}, s.PCMem)
}

func TestParseSnapshotRoundTrip(t *testing.T) {
	s := Snapshot{
		A: 0xAB, F: 0x50,
		B: 0x12, C: 0x34,
		D: 0x56, E: 0x78,
		H: 0x9A, L: 0xBC,
		SP: 0xDEF0, PC: 0x1337,
		PCMem: [4]uint8{0xDE, 0xAD, 0xBE, 0xEF},
	}

	parsed, err := ParseSnapshot(s.String())
	require.NoError(t, err)
	assert.Equal(t, s, parsed)
}

func TestParseSnapshotHexFlags(t *testing.T) {
	// Log lines from other emulators carry F as plain hex.
	line := "A:02 F:50 B:00 C:13 D:00 E:D8 H:01 L:4D SP:FFFE PC:0217 PCMEM:EA,F6,DE,F1"

	s, err := ParseSnapshot(line)
	require.NoError(t, err)
	assert.Equal(t, uint8(0x02), s.A)
	assert.Equal(t, uint8(0x50), s.F)
	assert.Equal(t, uint16(0x0217), s.PC)
	assert.Equal(t, [4]uint8{0xEA, 0xF6, 0xDE, 0xF1}, s.PCMem)
}

func TestParseSnapshotLenient(t *testing.T) {
	// Fields may arrive in any order, with unknown keys mixed in.
	s, err := ParseSnapshot("PC:0100 A:FF JUNK:00 SP:FFFE")
	require.NoError(t, err)
	assert.Equal(t, uint8(0xFF), s.A)
	assert.Equal(t, uint16(0x0100), s.PC)
	assert.Equal(t, uint16(0xFFFE), s.SP)
	assert.Equal(t, uint8(0x00), s.B)

	_, err = ParseSnapshot("A:GG")
	assert.Error(t, err)
}
