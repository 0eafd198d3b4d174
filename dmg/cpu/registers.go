package cpu

import "github.com/valerio/go-dmg/dmg/bit"

// Flag is one of the four condition bits in the high nibble of F.
type Flag uint8

const (
	FlagC Flag = 0x10
	FlagH Flag = 0x20
	FlagN Flag = 0x40
	FlagZ Flag = 0x80
)

// Registers is the SM83 register file. The low nibble of F is always
// zero; every writer goes through SetAF or SetFlag, which enforce it.
type Registers struct {
	A, F uint8
	B, C uint8
	D, E uint8
	H, L uint8
	SP   uint16
	PC   uint16
}

func (r *Registers) AF() uint16 { return bit.Combine(r.A, r.F) }
func (r *Registers) BC() uint16 { return bit.Combine(r.B, r.C) }
func (r *Registers) DE() uint16 { return bit.Combine(r.D, r.E) }
func (r *Registers) HL() uint16 { return bit.Combine(r.H, r.L) }

func (r *Registers) SetAF(value uint16) {
	r.A = bit.High(value)
	r.F = bit.Low(value) & 0xF0
}

func (r *Registers) SetBC(value uint16) {
	r.B = bit.High(value)
	r.C = bit.Low(value)
}

func (r *Registers) SetDE(value uint16) {
	r.D = bit.High(value)
	r.E = bit.Low(value)
}

func (r *Registers) SetHL(value uint16) {
	r.H = bit.High(value)
	r.L = bit.Low(value)
}

func (r *Registers) HasFlag(f Flag) bool {
	return r.F&uint8(f) != 0
}

func (r *Registers) SetFlag(f Flag, on bool) {
	if on {
		r.F |= uint8(f)
	} else {
		r.F &^= uint8(f)
	}
}
