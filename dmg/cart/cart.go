package cart

import (
	"fmt"
	"log/slog"
)

// Cartridge is a byte-addressable view over ROM and battery backed RAM,
// dispatching through whichever MBC the header names.
type Cartridge struct {
	Header Header

	mbc MBC
}

// New builds a cartridge from raw ROM bytes. A failing header check is
// reported but not fatal, so internal test ROMs without a real header
// still load. An unknown MBC type is fatal.
func New(data []byte) *Cartridge {
	h := ParseHeader(data)
	if !h.Valid {
		slog.Warn("Cartridge header failed validation", "title", h.Title)
	}

	var mbc MBC
	switch h.Type {
	case 0x00:
		mbc = NewRomOnly(data)
	case 0x01, 0x02, 0x03:
		mbc = NewMBC1(data, h.Type == 0x03, uint8(h.RAMBanks()))
	case 0x0F, 0x10, 0x11, 0x12, 0x13:
		hasRTC := h.Type == 0x0F || h.Type == 0x10
		mbc = NewMBC3(data, uint8(h.RAMBanks()), hasRTC, nil)
	default:
		panic(fmt.Sprintf("unsupported MBC type 0x%02X", h.Type))
	}

	slog.Info("Cartridge ready",
		"title", h.Title, "type", fmt.Sprintf("0x%02X", h.Type),
		"romBanks", h.ROMBanks(), "valid", h.Valid)

	return &Cartridge{Header: h, mbc: mbc}
}

// NewFromFile loads a ROM from disk and builds a cartridge from it.
func NewFromFile(path string) (*Cartridge, error) {
	data, err := Load(path)
	if err != nil {
		return nil, err
	}

	return New(data), nil
}

// NewEmpty returns a cartridge backed by zeroed ROM, useful for tests
// that never execute cartridge code.
func NewEmpty() *Cartridge {
	return New(make([]byte, 0x8000))
}

func (c *Cartridge) Read(address uint16) uint8 {
	return c.mbc.Read(address)
}

func (c *Cartridge) Write(address uint16, value uint8) {
	c.mbc.Write(address, value)
}

// Title returns the cleaned title string from the header.
func (c *Cartridge) Title() string {
	return c.Header.Title
}
