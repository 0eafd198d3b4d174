package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDummyReadsReleased(t *testing.T) {
	d := Dummy{}
	for _, selection := range []byte{0x00, 0x10, 0x20, 0x30} {
		assert.Equal(t, byte(0x0F), d.Read(selection))
	}
}

func TestRotaryCyclesStates(t *testing.T) {
	r := NewRotary()

	assert.Equal(t, byte(0x0F), r.Read(0x10), "starts released")

	advance := func() { r.Tick(rotaryPeriod) }

	advance() // state 1: released
	assert.Equal(t, byte(0x0F), r.Read(0x00))

	advance() // state 2: A
	assert.Equal(t, byte(0x0E), r.Read(0x10))
	assert.Equal(t, byte(0x0F), r.Read(0x20), "A is on the button row only")

	advance() // state 3: released
	advance() // state 4: Up
	assert.Equal(t, byte(0x0B), r.Read(0x20))

	advance() // state 5: released
	advance() // state 0: Start
	assert.Equal(t, byte(0x07), r.Read(0x10))
}

func TestRotaryAccumulatesPartialTicks(t *testing.T) {
	r := NewRotary()

	for i := 0; i < 4; i++ {
		r.Tick(rotaryPeriod / 4)
	}
	r.Tick(rotaryPeriod) // state 2: A
	assert.Equal(t, byte(0x0E), r.Read(0x10))
}
