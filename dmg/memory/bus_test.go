package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/valerio/go-dmg/dmg/addr"
	"github.com/valerio/go-dmg/dmg/cart"
	"github.com/valerio/go-dmg/dmg/input"
	"github.com/valerio/go-dmg/dmg/serial"
)

func TestWRAMAndHRAMStorage(t *testing.T) {
	b := New()

	b.Write(0xC000, 0x11)
	b.Write(0xDFFF, 0x22)
	b.Write(0xFF80, 0x33)
	b.Write(0xFFFE, 0x44)

	assert.Equal(t, byte(0x11), b.Read(0xC000))
	assert.Equal(t, byte(0x22), b.Read(0xDFFF))
	assert.Equal(t, byte(0x33), b.Read(0xFF80))
	assert.Equal(t, byte(0x44), b.Read(0xFFFE))
}

func TestEchoRAMMirrorsBothWays(t *testing.T) {
	b := New()

	for _, a := range []uint16{0xE000, 0xE123, 0xF7FF, 0xFDFF} {
		b.Write(a, 0x42)
		assert.Equal(t, byte(0x42), b.Read(a-0x2000), "echo write at 0x%04X lands in WRAM", a)

		b.Write(a-0x2000, 0x99)
		assert.Equal(t, byte(0x99), b.Read(a), "WRAM write at 0x%04X visible in echo", a-0x2000)
	}
}

func TestProhibitedRegionReadsZero(t *testing.T) {
	b := New()

	for _, a := range []uint16{0xFEA0, 0xFEC3, 0xFEFF} {
		b.Write(a, 0x55)
		assert.Equal(t, byte(0x00), b.Read(a), "0x%04X", a)
	}
}

func TestInterruptEnableStorage(t *testing.T) {
	b := New()
	b.Write(addr.IE, 0x1F)
	assert.Equal(t, byte(0x1F), b.Read(addr.IE))
}

func TestInterruptFlagUpperBitsReadOnes(t *testing.T) {
	b := New()
	assert.Equal(t, byte(0xE1), b.Read(addr.IF), "V-Blank pending after boot")

	b.Write(addr.IF, 0x00)
	assert.Equal(t, byte(0xE0), b.Read(addr.IF))

	b.Write(addr.IF, 0x05)
	assert.Equal(t, byte(0xE5), b.Read(addr.IF))
}

func TestRequestInterruptSetsIFBits(t *testing.T) {
	b := New()
	b.Write(addr.IF, 0x00)

	b.RequestInterrupt(addr.TimerInterrupt)
	assert.Equal(t, byte(0xE4), b.Read(addr.IF))

	b.RequestInterrupt(addr.VBlankInterrupt)
	assert.Equal(t, byte(0xE5), b.Read(addr.IF))
}

func TestGraphicsRangesRouteToPPU(t *testing.T) {
	b := New()

	b.Write(0x8000, 0xAB)
	b.Write(0x9FFF, 0xCD)
	b.Write(addr.OAMStart, 0x12)
	b.Write(addr.LCDC, 0x91)
	b.Write(addr.BGP, 0xE4)

	assert.Equal(t, byte(0xAB), b.Read(0x8000))
	assert.Equal(t, byte(0xCD), b.Read(0x9FFF))
	assert.Equal(t, byte(0x12), b.Read(addr.OAMStart))
	assert.Equal(t, byte(0x91), b.Read(addr.LCDC))
	assert.Equal(t, byte(0xE4), b.Read(addr.BGP))
}

func TestUnroutedIOPortsAreStored(t *testing.T) {
	b := New()
	b.Write(0xFF50, 0x01)
	assert.Equal(t, byte(0x01), b.Read(0xFF50))
}

func TestROMAccessWithoutCartridge(t *testing.T) {
	b := New()
	assert.Equal(t, byte(0xFF), b.Read(0x0100))
	b.Write(0x2000, 0x01) // dropped, no MBC to receive it
	assert.Equal(t, byte(0xFF), b.Read(0xA000))
}

func TestCartridgeRouting(t *testing.T) {
	data := make([]byte, 0x8000)
	data[0x0100] = 0xC3
	data[0x7FFF] = 0x7F
	b := NewWithCartridge(cart.New(data))

	assert.Equal(t, byte(0xC3), b.Read(0x0100))
	assert.Equal(t, byte(0x7F), b.Read(0x7FFF))

	b.Write(0x0100, 0x00)
	assert.Equal(t, byte(0xC3), b.Read(0x0100), "ROM writes are dropped")
	assert.Equal(t, byte(0xFF), b.Read(0xA000), "no external RAM on this cart")
}

func TestJoypadCompose(t *testing.T) {
	b := New()

	// Post-boot: both rows selected, nothing pressed.
	assert.Equal(t, byte(0xCF), b.Read(addr.P1))

	b.Write(addr.P1, 0x30)
	assert.Equal(t, byte(0xFF), b.Read(addr.P1), "no row selected")

	k := input.NewKeypad(nil)
	b.AttachInput(k)
	k.Press(input.KeyDown)
	k.Press(input.KeyA)

	b.Write(addr.P1, 0x20) // dpad row
	assert.Equal(t, byte(0xE7), b.Read(addr.P1))

	b.Write(addr.P1, 0x10) // button row
	assert.Equal(t, byte(0xDE), b.Read(addr.P1))
}

func TestJoypadSelectionBitsOnlyWritable(t *testing.T) {
	b := New()

	b.Write(addr.P1, 0xFF)
	assert.Equal(t, byte(0xFF), b.Read(addr.P1), "only bits 4-5 stored")

	b.Write(addr.P1, 0x0F)
	assert.Equal(t, byte(0xCF), b.Read(addr.P1), "low bits of the write ignored")
}

func TestDMATransfer(t *testing.T) {
	b := New()
	for i := uint16(0); i < 160; i++ {
		b.Write(0xC000+i, byte(i))
	}

	b.Write(addr.DMA, 0xC0)

	for i := uint16(0); i < 160; i++ {
		assert.Equal(t, byte(i), b.Read(addr.OAMStart+i), "OAM+%d", i)
	}
	assert.Equal(t, byte(0xC0), b.Read(addr.DMA), "DMA register reads back")
}

func TestSerialTapEmitsOnStart(t *testing.T) {
	c := serial.NewCapture(nil)
	b := New()
	b.AttachSerial(c)

	b.Write(addr.SB, 'P')
	b.Write(addr.SC, 0x81)

	assert.Equal(t, "P", c.String())
	assert.Equal(t, byte(0x01), b.Read(addr.SC), "write committed, transfer completed")
}

func TestDefaultSerialRaisesInterrupt(t *testing.T) {
	b := New()
	b.Write(addr.IF, 0x00)

	b.Write(addr.SB, 'x')
	b.Write(addr.SC, 0x81)

	assert.Equal(t, byte(0xE8), b.Read(addr.IF), "serial interrupt pending")
}

func TestTimerThroughBus(t *testing.T) {
	b := New()
	b.Write(addr.IF, 0x00)
	b.Write(addr.TAC, 0x05)
	b.Write(addr.TIMA, 0xFF)

	b.TickComponents(16)

	assert.Equal(t, byte(0x00), b.Read(addr.TIMA), "reloaded from TMA=0")
	assert.Equal(t, byte(0xE4), b.Read(addr.IF), "timer interrupt pending")
}

func TestAudioThroughBus(t *testing.T) {
	b := New()

	b.Write(addr.NR50, 0x23)
	assert.Equal(t, byte(0x23), b.Read(addr.NR50))

	b.Write(addr.NR13, 0x12)
	assert.Equal(t, byte(0xFF), b.Read(addr.NR13), "write-only register reads masked")
}

func TestSetTimerSeedControlsDiv(t *testing.T) {
	b := New()
	b.SetTimerSeed(0xABCC)
	assert.Equal(t, byte(0xAB), b.Read(addr.DIV))
}
