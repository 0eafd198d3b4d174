// Package serial provides devices that terminate the Game Boy serial
// link on the emulator side. Test roms report results over serial, so
// the sinks here double as debug output channels.
package serial

import (
	"log/slog"

	"github.com/valerio/go-dmg/dmg/addr"
	"github.com/valerio/go-dmg/dmg/bit"
)

// transferCycles is the DMG cost of shifting one byte on the internal clock.
const transferCycles = 4096

// LogSink logs outgoing serial bytes as text. Printable bytes are
// buffered and flushed as one line on NUL, LF or CR.
type LogSink struct {
	irq    func()
	logger *slog.Logger

	sb, sc byte
	active bool
	left   int

	immediate bool
	line      []byte
}

type LogSinkOption func(*LogSink)

// WithFixedTiming completes transfers after ~4096 CPU cycles per byte
// instead of immediately on the SC write.
func WithFixedTiming() LogSinkOption {
	return func(s *LogSink) { s.immediate = false }
}

// WithLogger routes flushed lines to the given logger.
func WithLogger(l *slog.Logger) LogSinkOption {
	return func(s *LogSink) { s.logger = l }
}

// NewLogSink creates a logging serial device. irq is called when a
// transfer completes and should be wired to the serial interrupt.
func NewLogSink(irq func(), opts ...LogSinkOption) *LogSink {
	s := &LogSink{
		irq:       irq,
		logger:    slog.Default(),
		immediate: true,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *LogSink) Read(address uint16) byte {
	switch address {
	case addr.SB:
		return s.sb
	case addr.SC:
		return s.sc
	default:
		panic("serial: read outside SB/SC")
	}
}

func (s *LogSink) Write(address uint16, value byte) {
	switch address {
	case addr.SB:
		s.sb = value
	case addr.SC:
		s.sc = value
		s.startTransfer()
	default:
		panic("serial: write outside SB/SC")
	}
}

// Tick drives fixed-timing transfers. Immediate sinks complete inside
// the SC write and have nothing left to do here.
func (s *LogSink) Tick(cycles int) {
	if !s.active {
		return
	}
	s.left -= cycles
	if s.left <= 0 {
		s.complete()
	}
}

// startTransfer begins shifting when SC carries both the start bit and
// the internal clock bit. The outgoing byte is logged at start.
func (s *LogSink) startTransfer() {
	if s.active || !bit.IsSet(7, s.sc) || !bit.IsSet(0, s.sc) {
		return
	}
	s.emit(s.sb)
	if s.immediate {
		s.complete()
		return
	}
	s.active = true
	s.left = transferCycles
}

func (s *LogSink) emit(b byte) {
	if b == 0 || b == '\n' || b == '\r' {
		if len(s.line) > 0 {
			s.logger.Info("serial", "line", string(s.line))
			s.line = s.line[:0]
		}
		return
	}
	s.line = append(s.line, b)
}

// complete ends the shift. With no link partner SB reads back 0xFF; the
// start bit clears and the interrupt callback fires.
func (s *LogSink) complete() {
	s.sb = 0xFF
	s.sc = bit.Clear(7, s.sc)
	s.active = false
	s.left = 0
	if s.irq != nil {
		s.irq()
	}
}
