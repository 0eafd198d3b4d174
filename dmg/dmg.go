// Package dmg wires the emulated console together: the CPU steps one
// instruction, the bus fans the consumed cycles out to the timer, the
// pixel unit and the other mapped devices, and the loop repeats. All
// cross-component effects travel through bus memory, so the wiring
// here is the only place components learn about each other.
package dmg

import (
	"github.com/valerio/go-dmg/dmg/addr"
	"github.com/valerio/go-dmg/dmg/cart"
	"github.com/valerio/go-dmg/dmg/cpu"
	"github.com/valerio/go-dmg/dmg/input"
	"github.com/valerio/go-dmg/dmg/input/action"
	"github.com/valerio/go-dmg/dmg/input/event"
	"github.com/valerio/go-dmg/dmg/memory"
	"github.com/valerio/go-dmg/dmg/timing"
	"github.com/valerio/go-dmg/dmg/video"
)

// timerSeed reproduces the divider phase the boot rom leaves behind,
// so DIV reads 0xAB at the cartridge entry point.
const timerSeed = 0xABCC

// frameCycleBudget bounds RunUntilFrame to one frame period plus slack
// for the instruction straddling the boundary. The budget is what
// keeps the call returning while a game has the LCD switched off.
const frameCycleBudget = timing.CyclesPerFrame + 24

// DMG is the wired console.
type DMG struct {
	cpu     *cpu.CPU
	bus     *memory.Bus
	ppu     *video.PPU
	keypad  *input.Keypad
	actions *input.Manager
	limiter timing.Limiter

	instructions uint64
	cycles       uint64
}

// Option adjusts a console under construction.
type Option func(*DMG)

// WithSerialDevice replaces the default serial log sink, letting test
// harnesses capture the byte stream instead.
func WithSerialDevice(s memory.SerialPort) Option {
	return func(d *DMG) { d.bus.AttachSerial(s) }
}

// WithInputDevice replaces the keypad with a custom joypad device.
// Key actions delivered through HandleAction have no effect while a
// custom device is installed.
func WithInputDevice(dev input.Device) Option {
	return func(d *DMG) { d.bus.AttachInput(dev) }
}

// WithFrameLimiter installs the limiter RunUntilFrame paces with.
func WithFrameLimiter(l timing.Limiter) Option {
	return func(d *DMG) { d.SetFrameLimiter(l) }
}

// New builds a console around the given cartridge, leaving it at the
// cartridge entry point the way the boot rom does.
func New(c *cart.Cartridge, opts ...Option) *DMG {
	d := &DMG{limiter: timing.NewNoOpLimiter()}

	d.bus = memory.NewWithCartridge(c)
	d.ppu = video.New(d.bus.RequestInterrupt)
	d.bus.AttachPPU(d.ppu)

	d.keypad = input.NewKeypad(func() {
		d.bus.RequestInterrupt(addr.JoypadInterrupt)
	})
	d.bus.AttachInput(d.keypad)
	d.actions = input.NewManager(d.keypad)

	d.bus.SetTimerSeed(timerSeed)
	d.cpu = cpu.New(d.bus)

	for _, opt := range opts {
		opt(d)
	}
	return d
}

// NewWithFile loads the ROM at path and builds a console around it.
func NewWithFile(path string, opts ...Option) (*DMG, error) {
	c, err := cart.NewFromFile(path)
	if err != nil {
		return nil, err
	}
	return New(c, opts...), nil
}

// Step executes one CPU step and advances every bus-owned component by
// the cycles it consumed. Returns that cycle count.
func (d *DMG) Step() int {
	cycles := d.cpu.Step()
	d.bus.TickComponents(cycles)
	d.instructions++
	d.cycles += uint64(cycles)
	return cycles
}

// RunUntilFrame steps until the pixel unit finishes the frame it is
// on, then waits on the frame limiter.
func (d *DMG) RunUntilFrame() error {
	start := d.ppu.Frames()
	budget := frameCycleBudget
	for budget > 0 && d.ppu.Frames() == start {
		budget -= d.Step()
	}
	d.limiter.WaitForNextFrame()
	return nil
}

// GetCurrentFrame returns the pixel unit's framebuffer. Frontends read
// it between RunUntilFrame calls.
func (d *DMG) GetCurrentFrame() *video.FrameBuffer {
	return d.ppu.GetFrameBuffer()
}

// HandleAction feeds one input action from a frontend into the action
// router: Game Boy keys reach the keypad, emulator actions reach the
// callbacks registered with OnAction.
func (d *DMG) HandleAction(act action.Action, pressed bool) {
	evt := event.Press
	if !pressed {
		evt = event.Release
	}
	d.actions.Trigger(act, evt)
}

// OnAction registers a callback for an emulator-level action.
func (d *DMG) OnAction(act action.Action, evt event.Type, callback func()) {
	d.actions.On(act, evt, callback)
}

// SetFrameLimiter replaces the frame limiter; nil means free-running.
func (d *DMG) SetFrameLimiter(limiter timing.Limiter) {
	if limiter == nil {
		limiter = timing.NewNoOpLimiter()
	}
	d.limiter = limiter
}

// ResetFrameTiming drops the limiter's schedule, used after pauses.
func (d *DMG) ResetFrameTiming() {
	d.limiter.Reset()
}

// Snapshot captures the CPU state for golden-log comparison.
func (d *DMG) Snapshot() cpu.Snapshot {
	return d.cpu.Snapshot()
}

// Instructions returns how many CPU steps have executed.
func (d *DMG) Instructions() uint64 { return d.instructions }

// Cycles returns the total clock cycles consumed so far.
func (d *DMG) Cycles() uint64 { return d.cycles }

// Frames returns how many frames the pixel unit has completed.
func (d *DMG) Frames() uint64 { return d.ppu.Frames() }

// Bus exposes the memory bus for harnesses that peek at emulated
// memory, such as the tile map scraper.
func (d *DMG) Bus() *memory.Bus { return d.bus }
