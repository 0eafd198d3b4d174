// Package input provides joypad devices and the action plumbing that
// connects frontends to them.
package input

import "github.com/valerio/go-dmg/dmg/bit"

// Device is a joypad source polled through the P1 register. Read
// receives the row selection bits (4 and 5, active low) last written to
// P1 and returns key bits 0-3 for the selected rows, active low. Tick
// advances time-driven devices by elapsed CPU cycles.
type Device interface {
	Tick(cycles int)
	Read(selection byte) byte
}

// composeRows merges the selected key rows. When both rows are selected
// a key held on either row pulls its bit low.
func composeRows(selection, dpad, buttons byte) byte {
	result := byte(0x0F)
	if selection&0x10 == 0 {
		result &= dpad
	}
	if selection&0x20 == 0 {
		result &= buttons
	}
	return result
}

// Dummy reports no keys pressed. It is the default device on a fresh bus.
type Dummy struct{}

func (Dummy) Tick(cycles int) {}

func (Dummy) Read(selection byte) byte { return 0x0F }

// rotaryPeriod is ~0.5s of CPU cycles between state changes.
const rotaryPeriod = 2_000_000

// Rotary cycles through single-key states on a fixed period. It drives
// menus and input paths in long headless runs without a frontend.
type Rotary struct {
	timer   uint32
	state   int
	buttons uint8
	dpad    uint8
}

func NewRotary() *Rotary {
	return &Rotary{buttons: 0x0F, dpad: 0x0F}
}

func (r *Rotary) Tick(cycles int) {
	r.timer += uint32(cycles)
	if r.timer < rotaryPeriod {
		return
	}
	r.timer = 0
	r.state = (r.state + 1) % 6

	// Odd states leave every key released so games see clean edges.
	r.buttons, r.dpad = 0x0F, 0x0F
	switch r.state {
	case 0:
		r.buttons = bit.Clear(3, r.buttons) // Start
	case 2:
		r.buttons = bit.Clear(0, r.buttons) // A
	case 4:
		r.dpad = bit.Clear(2, r.dpad) // Up
	}
}

func (r *Rotary) Read(selection byte) byte {
	return composeRows(selection, r.dpad, r.buttons)
}
