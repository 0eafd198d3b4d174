package cart

import (
	"testing"
	"time"
)

func TestRomOnly(t *testing.T) {
	rom := make([]uint8, 0x8000)
	rom[0x0000] = 0x11
	rom[0x7FFF] = 0x22

	mbc := NewRomOnly(rom)

	if got := mbc.Read(0x0000); got != 0x11 {
		t.Errorf("Read(0x0000) = 0x%02X; want 0x11", got)
	}
	if got := mbc.Read(0x7FFF); got != 0x22 {
		t.Errorf("Read(0x7FFF) = 0x%02X; want 0x22", got)
	}

	// Writes never land.
	mbc.Write(0x0000, 0xFF)
	if got := mbc.Read(0x0000); got != 0x11 {
		t.Errorf("Read after write = 0x%02X; want 0x11", got)
	}

	// No external RAM on a bare ROM.
	if got := mbc.Read(0xA000); got != 0xFF {
		t.Errorf("Read(0xA000) = 0x%02X; want 0xFF", got)
	}
}

func TestMBC1(t *testing.T) {
	t.Run("ROM Bank 0 (Fixed)", func(t *testing.T) {
		rom := make([]uint8, 0x8000)
		for i := range rom {
			rom[i] = uint8(i & 0xFF)
		}

		mbc := NewMBC1(rom, false, 0)

		for addr := uint16(0x0000); addr < 0x4000; addr++ {
			got := mbc.Read(addr)
			want := uint8(addr & 0xFF)
			if got != want {
				t.Fatalf("Read(0x%04X) = 0x%02X; want 0x%02X", addr, got, want)
			}
		}
	})

	t.Run("ROM Bank Switching", func(t *testing.T) {
		// Four banks, each filled with its own bank number.
		rom := make([]uint8, 0x10000)
		for i := range rom {
			rom[i] = uint8(i / 0x4000)
		}

		mbc := NewMBC1(rom, false, 0)

		for bank := uint8(1); bank <= 3; bank++ {
			mbc.Write(0x2000, bank)
			if got := mbc.Read(0x4000); got != bank {
				t.Errorf("Bank %d: Read(0x4000) = 0x%02X; want 0x%02X", bank, got, bank)
			}
		}
	})

	t.Run("RAM Enable and Banking", func(t *testing.T) {
		mbc := NewMBC1(make([]uint8, 0x8000), false, 4)

		if got := mbc.Read(0xA000); got != 0xFF {
			t.Errorf("Read from disabled RAM = 0x%02X; want 0xFF", got)
		}

		mbc.Write(0x0000, 0x0A) // enable
		mbc.Write(0xA000, 0x42)
		if got := mbc.Read(0xA000); got != 0x42 {
			t.Errorf("Read after RAM enable = 0x%02X; want 0x42", got)
		}

		mbc.Write(0x6000, 1) // RAM banking mode
		for bank := uint8(0); bank < 4; bank++ {
			mbc.Write(0x4000, bank)
			mbc.Write(0xA000, 0x42+bank)
		}
		for bank := uint8(0); bank < 4; bank++ {
			mbc.Write(0x4000, bank)
			if got := mbc.Read(0xA000); got != 0x42+bank {
				t.Errorf("Bank %d: got 0x%02X; want 0x%02X", bank, got, 0x42+bank)
			}
		}

		mbc.Write(0x0000, 0x00) // disable
		if got := mbc.Read(0xA000); got != 0xFF {
			t.Errorf("Read after RAM disable = 0x%02X; want 0xFF", got)
		}
	})

	t.Run("Banking Modes", func(t *testing.T) {
		rom := make([]uint8, 8*0x4000)
		for i := range rom {
			rom[i] = uint8(i / 0x4000)
		}

		mbc := NewMBC1(rom, false, 4)

		mbc.Write(0x6000, 0) // ROM banking mode
		mbc.Write(0x2000, 5)
		mbc.Write(0x4000, 0)
		if got := mbc.Read(0x4000); got != 5 {
			t.Errorf("Read in ROM mode = 0x%02X; want 0x05", got)
		}

		// Upper bits push the bank out of range; reads wrap. 37 % 8 = 5.
		mbc.Write(0x4000, 1)
		if got := mbc.Read(0x4000); got != 5 {
			t.Errorf("Read with wrapped bank = 0x%02X; want 0x05", got)
		}

		mbc.Write(0x6000, 1) // RAM banking mode clears the upper bank bits
		mbc.Write(0x2000, 5)
		mbc.Write(0x4000, 2)
		if mbc.romBank != 5 {
			t.Errorf("ROM bank in RAM mode = %d; want 5", mbc.romBank)
		}
		if mbc.ramBank != 2 {
			t.Errorf("RAM bank = %d; want 2", mbc.ramBank)
		}
	})

	t.Run("Bank 0 Translation", func(t *testing.T) {
		mbc := NewMBC1(make([]uint8, 0x8000), false, 0)
		mbc.Write(0x2000, 0)
		if mbc.romBank != 1 {
			t.Errorf("ROM bank 0 not translated to 1, got bank %d", mbc.romBank)
		}
	})
}

type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time {
	return c.now
}

func TestMBC3(t *testing.T) {
	t.Run("ROM Banking", func(t *testing.T) {
		rom := make([]uint8, 8*0x4000)
		for i := range rom {
			rom[i] = uint8(i / 0x4000)
		}

		mbc := NewMBC3(rom, 0, false, nil)

		mbc.Write(0x2000, 6)
		if got := mbc.Read(0x4000); got != 6 {
			t.Errorf("Read(0x4000) = 0x%02X; want 0x06", got)
		}

		mbc.Write(0x2000, 0)
		if mbc.romBank != 1 {
			t.Errorf("ROM bank 0 not translated to 1, got bank %d", mbc.romBank)
		}
	})

	t.Run("RTC Latch", func(t *testing.T) {
		clock := &fixedClock{now: time.Unix(0, 0)}
		mbc := NewMBC3(make([]uint8, 0x8000), 0, true, clock)

		mbc.Write(0x0000, 0x0A) // RAM enable also gates RTC access
		mbc.Write(0x4000, 0x08) // seconds register

		clock.now = clock.now.Add(42 * time.Second)
		mbc.Write(0x6000, 0x00) // latch

		if got := mbc.Read(0xA000); got != 42 {
			t.Errorf("RTC seconds = %d; want 42", got)
		}

		// Without a new latch the registers stay frozen.
		clock.now = clock.now.Add(10 * time.Second)
		if got := mbc.Read(0xA000); got != 42 {
			t.Errorf("RTC seconds after unlatched advance = %d; want 42", got)
		}
	})

	t.Run("RAM And RTC Share The Select Register", func(t *testing.T) {
		mbc := NewMBC3(make([]uint8, 0x8000), 1, false, nil)

		mbc.Write(0x0000, 0x0A)
		mbc.Write(0x4000, 0x00)
		mbc.Write(0xA000, 0x77)
		if got := mbc.Read(0xA000); got != 0x77 {
			t.Errorf("RAM read = 0x%02X; want 0x77", got)
		}

		// RTC selects read 0xFF when the cart has no RTC.
		mbc.Write(0x4000, 0x08)
		if got := mbc.Read(0xA000); got != 0xFF {
			t.Errorf("RTC read without RTC = 0x%02X; want 0xFF", got)
		}
	})
}
