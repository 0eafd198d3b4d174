package bit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCombine(t *testing.T) {
	assert.Equal(t, uint16(0x01FE), Combine(0x01, 0xFE))
	assert.Equal(t, uint16(0xFFFF), Combine(0xFF, 0xFF))
	assert.Equal(t, uint16(0x0000), Combine(0x00, 0x00))
}

func TestHighLow(t *testing.T) {
	assert.Equal(t, uint8(0xAB), High(0xABCD))
	assert.Equal(t, uint8(0xCD), Low(0xABCD))
}

func TestSetClear(t *testing.T) {
	var b uint8

	b = Set(3, b)
	assert.Equal(t, uint8(0x08), b)
	assert.True(t, IsSet(3, b))

	b = Clear(3, b)
	assert.Equal(t, uint8(0x00), b)
	assert.False(t, IsSet(3, b))
}

func TestValue(t *testing.T) {
	assert.Equal(t, uint8(1), Value(7, 0x80))
	assert.Equal(t, uint8(0), Value(6, 0x80))
}
