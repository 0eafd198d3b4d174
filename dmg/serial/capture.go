package serial

import (
	"github.com/valerio/go-dmg/dmg/addr"
	"github.com/valerio/go-dmg/dmg/bit"
)

// Capture collects every byte sent over the serial port. Harnesses scan
// the captured text for a test rom's pass or fail verdict.
type Capture struct {
	irq    func()
	sb, sc byte
	buf    []byte
	dirty  bool
}

// NewCapture creates a capturing serial device. irq may be nil.
func NewCapture(irq func()) *Capture {
	return &Capture{irq: irq}
}

func (c *Capture) Read(address uint16) byte {
	switch address {
	case addr.SB:
		return c.sb
	case addr.SC:
		return c.sc
	default:
		panic("serial: read outside SB/SC")
	}
}

func (c *Capture) Write(address uint16, value byte) {
	switch address {
	case addr.SB:
		c.sb = value
	case addr.SC:
		c.sc = value
		c.capture()
	default:
		panic("serial: write outside SB/SC")
	}
}

func (c *Capture) Tick(cycles int) {}

func (c *Capture) capture() {
	if !bit.IsSet(7, c.sc) || !bit.IsSet(0, c.sc) {
		return
	}
	c.buf = append(c.buf, c.sb)
	c.dirty = true
	c.sb = 0xFF
	c.sc = bit.Clear(7, c.sc)
	if c.irq != nil {
		c.irq()
	}
}

// String returns everything captured so far.
func (c *Capture) String() string { return string(c.buf) }

// Dirty reports whether bytes arrived since the last call, then clears
// the flag.
func (c *Capture) Dirty() bool {
	d := c.dirty
	c.dirty = false
	return d
}

// Reset drops all captured output.
func (c *Capture) Reset() {
	c.buf = c.buf[:0]
	c.dirty = false
}
