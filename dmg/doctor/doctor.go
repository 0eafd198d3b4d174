// Package doctor replays Gameboy Doctor golden logs against the core:
// one log line per instruction, each compared to a CPU snapshot taken
// before the instruction executes. The first divergence stops the run
// with a report of the last few instructions.
package doctor

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/valerio/go-dmg/dmg/addr"
	"github.com/valerio/go-dmg/dmg/cart"
	"github.com/valerio/go-dmg/dmg/cpu"
	"github.com/valerio/go-dmg/dmg/disasm"
	"github.com/valerio/go-dmg/dmg/memory"
)

// Session steps a CPU-only console in lockstep with a golden log.
type Session struct {
	cpu     *cpu.CPU
	bus     *memory.Bus
	log     *bufio.Scanner
	line    int
	history ring
}

// NewSession wires a console for log replay: the reference logs were
// captured with LY pinned to 0x90, so the bus gets a stub pixel unit
// instead of a real one.
func NewSession(c *cart.Cartridge, goldenLog io.Reader) *Session {
	bus := memory.NewWithCartridge(c)
	bus.AttachPPU(&stubPPU{})
	bus.SetTimerSeed(0xABCC)

	return &Session{
		cpu:  cpu.New(bus),
		bus:  bus,
		log:  bufio.NewScanner(goldenLog),
		line: 1,
	}
}

// Next checks the current CPU state against the next log line, then
// executes one instruction. io.EOF reports a fully matched log, and a
// *MismatchError reports the first divergence.
func (s *Session) Next() error {
	expectedLine, err := s.nextLine()
	if err != nil {
		return err
	}

	expected, err := cpu.ParseSnapshot(expectedLine)
	if err != nil {
		return fmt.Errorf("golden log line %d: %w", s.line, err)
	}

	received := s.cpu.Snapshot()
	s.history.push(Entry{
		Line:        s.line,
		Instruction: disasm.At(received.PC, s.bus).Text,
		State:       received,
	})

	if received != expected {
		return &MismatchError{
			Line:     s.line,
			Expected: expected.String(),
			Received: received.String(),
			History:  s.history.entries(),
		}
	}

	cycles := s.cpu.Step()
	s.bus.TickComponents(cycles)
	s.line++
	return nil
}

// Run replays the whole log and returns how many lines matched. A nil
// error means every line matched.
func (s *Session) Run() (int, error) {
	for {
		switch err := s.Next(); {
		case err == io.EOF:
			matched := s.line - 1
			slog.Info("Golden log fully matched", "lines", matched)
			return matched, nil
		case err != nil:
			return s.line - 1, err
		}
	}
}

// Matched returns how many log lines have matched so far.
func (s *Session) Matched() int { return s.line - 1 }

func (s *Session) nextLine() (string, error) {
	if !s.log.Scan() {
		if err := s.log.Err(); err != nil {
			return "", fmt.Errorf("golden log read: %w", err)
		}
		return "", io.EOF
	}

	line := strings.TrimSpace(s.log.Text())
	if line == "" {
		return "", io.EOF
	}
	return line, nil
}

// stubPPU backs the graphics ranges with plain RAM and pins LY to the
// value the reference logs were captured with.
type stubPPU struct {
	vram [0x2000]byte
	oam  [0xA0]byte
	regs [0x0C]byte
}

func (p *stubPPU) Tick(cycles int) {}

func (p *stubPPU) Read(address uint16) byte {
	switch {
	case address == addr.LY:
		return 0x90
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

func (p *stubPPU) Write(address uint16, value byte) {
	switch {
	case address >= addr.VRAMStart && address <= addr.VRAMEnd:
		p.vram[address-addr.VRAMStart] = value
	case address >= addr.OAMStart && address <= addr.OAMEnd:
		p.oam[address-addr.OAMStart] = value
	case address >= addr.LCDC && address <= addr.WX:
		p.regs[address-addr.LCDC] = value
	}
}
