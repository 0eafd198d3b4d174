package cpu

// outcome carries the flag values an instruction computed. applyFlags
// consults the opcode's flag descriptor to decide which of them reach F,
// so handlers can propose all four bits unconditionally.
type outcome struct {
	z, n, h, c bool
}

func add8(a, b uint8, carryIn bool) (uint8, outcome) {
	var cin uint16
	if carryIn {
		cin = 1
	}
	total := uint16(a) + uint16(b) + cin
	result := uint8(total)
	return result, outcome{
		z: result == 0,
		n: false,
		h: (a&0x0F)+(b&0x0F)+uint8(cin) > 0x0F,
		c: total > 0xFF,
	}
}

func sub8(a, b uint8, carryIn bool) (uint8, outcome) {
	var cin uint16
	if carryIn {
		cin = 1
	}
	result := uint8(uint16(a) - uint16(b) - cin)
	return result, outcome{
		z: result == 0,
		n: true,
		h: a&0x0F < b&0x0F+uint8(cin),
		c: uint16(a) < uint16(b)+cin,
	}
}

func and8(a, b uint8) (uint8, outcome) {
	result := a & b
	return result, outcome{z: result == 0, h: true}
}

func or8(a, b uint8) (uint8, outcome) {
	result := a | b
	return result, outcome{z: result == 0}
}

func xor8(a, b uint8) (uint8, outcome) {
	result := a ^ b
	return result, outcome{z: result == 0}
}

// addHL is the ADD HL,rr form: half carry out of bit 11, carry out of
// bit 15, zero untouched by the descriptor.
func addHL(hl, rr uint16) (uint16, outcome) {
	return hl + rr, outcome{
		h: (hl&0x0FFF)+(rr&0x0FFF) > 0x0FFF,
		c: uint32(hl)+uint32(rr) > 0xFFFF,
	}
}

// addSP adds a signed offset to SP. The carries come from the unsigned
// addition of the low byte of SP and the raw offset byte.
func addSP(sp uint16, offset uint8) (uint16, outcome) {
	low := uint8(sp)
	return sp + uint16(int16(int8(offset))), outcome{
		h: low&0x0F+offset&0x0F > 0x0F,
		c: uint16(low)+uint16(offset) > 0xFF,
	}
}

func rlc8(v uint8) (uint8, outcome) {
	result := v<<1 | v>>7
	return result, outcome{z: result == 0, c: v&0x80 != 0}
}

func rrc8(v uint8) (uint8, outcome) {
	result := v>>1 | v<<7
	return result, outcome{z: result == 0, c: v&0x01 != 0}
}

func rl8(v uint8, carryIn bool) (uint8, outcome) {
	result := v << 1
	if carryIn {
		result |= 0x01
	}
	return result, outcome{z: result == 0, c: v&0x80 != 0}
}

func rr8(v uint8, carryIn bool) (uint8, outcome) {
	result := v >> 1
	if carryIn {
		result |= 0x80
	}
	return result, outcome{z: result == 0, c: v&0x01 != 0}
}

func sla8(v uint8) (uint8, outcome) {
	result := v << 1
	return result, outcome{z: result == 0, c: v&0x80 != 0}
}

// sra8 shifts right keeping bit 7, the arithmetic form.
func sra8(v uint8) (uint8, outcome) {
	result := v>>1 | v&0x80
	return result, outcome{z: result == 0, c: v&0x01 != 0}
}

func srl8(v uint8) (uint8, outcome) {
	result := v >> 1
	return result, outcome{z: result == 0, c: v&0x01 != 0}
}

func swap8(v uint8) (uint8, outcome) {
	result := v<<4 | v>>4
	return result, outcome{z: result == 0}
}

func bitTest(v uint8, index uint8) outcome {
	return outcome{z: v&(1<<index) == 0, h: true}
}

// daa adjusts A back to packed BCD after an addition or subtraction,
// steered by the N, H and C flags the previous instruction left behind.
func daa(a uint8, n, h, c bool) (uint8, outcome) {
	carry := c
	if !n {
		if c || a > 0x99 {
			a += 0x60
			carry = true
		}
		if h || a&0x0F > 0x09 {
			a += 0x06
		}
	} else {
		if c {
			a -= 0x60
		}
		if h {
			a -= 0x06
		}
	}
	return a, outcome{z: a == 0, n: n, c: carry}
}
