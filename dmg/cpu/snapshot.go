package cpu

import (
	"fmt"
	"strconv"
	"strings"
)

// Snapshot is a flat copy of the register file plus the four bytes at
// PC, the record golden-log comparison tools line up against.
type Snapshot struct {
	A, F, B, C, D, E, H, L uint8
	SP, PC                 uint16
	PCMem                  [4]uint8
}

// Snapshot captures the current CPU state, reading PC..PC+3 through
// the bus.
func (c *CPU) Snapshot() Snapshot {
	s := Snapshot{
		A: c.A, F: c.F,
		B: c.B, C: c.C,
		D: c.D, E: c.E,
		H: c.H, L: c.L,
		SP: c.SP, PC: c.PC,
	}
	for i := range s.PCMem {
		s.PCMem[i] = c.bus.Read(c.PC + uint16(i))
	}
	return s
}

// String renders the canonical single-line form. F appears as a
// bracketed ZNHC mask with cleared bits shown as '-'.
func (s Snapshot) String() string {
	return fmt.Sprintf("A:%02X F:%s B:%02X C:%02X D:%02X E:%02X H:%02X L:%02X SP:%04X PC:%04X PCMEM:%02X,%02X,%02X,%02X",
		s.A, formatFlags(s.F), s.B, s.C, s.D, s.E, s.H, s.L, s.SP, s.PC,
		s.PCMem[0], s.PCMem[1], s.PCMem[2], s.PCMem[3])
}

func formatFlags(f uint8) string {
	mask := []byte{'[', '-', '-', '-', '-', ']'}
	for i, flag := range []Flag{FlagZ, FlagN, FlagH, FlagC} {
		if f&uint8(flag) != 0 {
			mask[i+1] = "ZNHC"[i]
		}
	}
	return string(mask)
}

// ParseSnapshot reads a snapshot line. Fields are key:value pairs in
// any order; the F value may be either the bracketed flag mask this
// package emits or the plain hex byte found in gameboy-doctor logs.
func ParseSnapshot(line string) (Snapshot, error) {
	var s Snapshot
	for _, field := range strings.Fields(line) {
		key, value, found := strings.Cut(field, ":")
		if !found {
			continue
		}

		var err error
		switch key {
		case "A":
			s.A, err = parseHex8(value)
		case "F":
			s.F, err = parseFlags(value)
		case "B":
			s.B, err = parseHex8(value)
		case "C":
			s.C, err = parseHex8(value)
		case "D":
			s.D, err = parseHex8(value)
		case "E":
			s.E, err = parseHex8(value)
		case "H":
			s.H, err = parseHex8(value)
		case "L":
			s.L, err = parseHex8(value)
		case "SP":
			s.SP, err = parseHex16(value)
		case "PC":
			s.PC, err = parseHex16(value)
		case "PCMEM":
			bytes := strings.Split(value, ",")
			for i := 0; i < len(bytes) && i < len(s.PCMem); i++ {
				s.PCMem[i], err = parseHex8(bytes[i])
				if err != nil {
					break
				}
			}
		}
		if err != nil {
			return Snapshot{}, fmt.Errorf("snapshot field %s: %w", key, err)
		}
	}
	return s, nil
}

func parseFlags(value string) (uint8, error) {
	if len(value) == 6 && value[0] == '[' && value[5] == ']' {
		var f uint8
		for i, flag := range []Flag{FlagZ, FlagN, FlagH, FlagC} {
			switch value[i+1] {
			case "ZNHC"[i]:
				f |= uint8(flag)
			case '-':
			default:
				return 0, fmt.Errorf("bad flag mask %q", value)
			}
		}
		return f, nil
	}
	return parseHex8(value)
}

func parseHex8(value string) (uint8, error) {
	v, err := strconv.ParseUint(value, 16, 8)
	return uint8(v), err
}

func parseHex16(value string) (uint16, error) {
	v, err := strconv.ParseUint(value, 16, 16)
	return uint16(v), err
}
