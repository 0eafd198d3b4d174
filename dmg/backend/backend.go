// Package backend defines the contract between the emulator core and
// its frontends. A frontend owns a platform (terminal, SDL window,
// nothing at all for batch runs) and is responsible for rendering
// frames, translating platform input into actions, and reporting those
// actions back from Update.
package backend

import (
	"github.com/valerio/go-dmg/dmg/cpu"
	"github.com/valerio/go-dmg/dmg/input/action"
	"github.com/valerio/go-dmg/dmg/input/event"
	"github.com/valerio/go-dmg/dmg/memory"
	"github.com/valerio/go-dmg/dmg/video"
)

// Backend is a complete frontend platform. The run loop calls Update
// once per emulated frame; the returned events are dispatched to the
// machine by the caller, so backends never hold a reference to it.
type Backend interface {
	// Init configures the backend. Required before calling Update.
	Init(config BackendConfig) error

	// Update renders the frame, polls platform events and returns the
	// actions they map to.
	Update(frame *video.FrameBuffer) ([]InputEvent, error)

	// Cleanup releases platform resources.
	Cleanup() error
}

// InputEvent is one action observed by a backend during Update.
type InputEvent struct {
	Action action.Action
	Type   event.Type
}

// DebugDataProvider exposes the machine state the debug panels draw.
// *dmg.DMG satisfies it; frontends must treat the bus as read-only.
type DebugDataProvider interface {
	Snapshot() cpu.Snapshot
	Bus() *memory.Bus
	Cycles() uint64
}

// BackendConfig holds configuration shared by all backends. Backends
// ignore fields they have no use for.
type BackendConfig struct {
	Title       string
	Scale       int
	TestPattern bool
	ShowDebug   bool

	// DebugProvider feeds the register and disassembly panels. May be
	// nil, in which case debug views stay empty.
	DebugProvider DebugDataProvider
}

// DefaultScale is the default window scale factor for the SDL frontend.
const DefaultScale = 4

// Grayscale maps a shade (0 lightest to 3 darkest) to its gray level.
var Grayscale = [4]uint8{0xFF, 0xAA, 0x55, 0x00}
