package input

import "github.com/valerio/go-dmg/dmg/bit"

// Key identifies one physical Game Boy key.
type Key uint8

const (
	KeyRight Key = iota
	KeyLeft
	KeyUp
	KeyDown
	KeyA
	KeyB
	KeySelect
	KeyStart
)

// Keypad is a stateful Device driven by Press and Release calls from a
// frontend. A zero bit in a row means the key is held.
type Keypad struct {
	buttons uint8
	dpad    uint8
	onPress func()
}

// NewKeypad returns a keypad with every key released. onPress fires on
// each high-to-low key transition so the bus can raise the joypad
// interrupt; it may be nil.
func NewKeypad(onPress func()) *Keypad {
	return &Keypad{buttons: 0x0F, dpad: 0x0F, onPress: onPress}
}

func (k *Keypad) Tick(cycles int) {}

func (k *Keypad) Read(selection byte) byte {
	return composeRows(selection, k.dpad, k.buttons)
}

// Press marks the key as held and reports the transition.
func (k *Keypad) Press(key Key) {
	row, index := k.rowFor(key)
	was := *row
	*row = bit.Clear(index, *row)
	if *row != was && k.onPress != nil {
		k.onPress()
	}
}

// Release marks the key as released.
func (k *Keypad) Release(key Key) {
	row, index := k.rowFor(key)
	*row = bit.Set(index, *row)
}

func (k *Keypad) rowFor(key Key) (*uint8, uint8) {
	if key <= KeyDown {
		return &k.dpad, uint8(key)
	}
	return &k.buttons, uint8(key - KeyA)
}
