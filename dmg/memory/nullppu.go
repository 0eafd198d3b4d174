package memory

import "github.com/valerio/go-dmg/dmg/addr"

// nullPPU is the RAM-backed stand-in used until a real pixel unit is
// attached. It stores the graphics ranges verbatim so CPU-only tests
// can exercise bus routing without video.
type nullPPU struct {
	vram [0x2000]byte
	oam  [0xA0]byte
	regs [0x0C]byte
}

func newNullPPU() *nullPPU { return &nullPPU{} }

func (p *nullPPU) Tick(cycles int) {}

func (p *nullPPU) Read(address uint16) byte {
	switch {
	case address >= addr.VRAMStart && address <= addr.VRAMEnd:
		return p.vram[address-addr.VRAMStart]
	case address >= addr.OAMStart && address <= addr.OAMEnd:
		return p.oam[address-addr.OAMStart]
	case address >= addr.LCDC && address <= addr.WX:
		return p.regs[address-addr.LCDC]
	default:
		return 0xFF
	}
}

func (p *nullPPU) Write(address uint16, value byte) {
	switch {
	case address >= addr.VRAMStart && address <= addr.VRAMEnd:
		p.vram[address-addr.VRAMStart] = value
	case address >= addr.OAMStart && address <= addr.OAMEnd:
		p.oam[address-addr.OAMStart] = value
	case address >= addr.LCDC && address <= addr.WX:
		p.regs[address-addr.LCDC] = value
	}
}
