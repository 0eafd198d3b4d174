// Package cart implements cartridge loading, header parsing and the
// memory bank controllers that games ship with.
package cart

import (
	"bytes"
	"log/slog"
	"strings"
	"unicode"

	"github.com/valerio/go-dmg/dmg/bit"
)

const (
	logoAddress           = 0x0104
	titleAddress          = 0x0134
	titleLength           = 16
	cgbFlagAddress        = 0x0143
	newLicenseeAddress    = 0x0144
	sgbFlagAddress        = 0x0146
	cartTypeAddress       = 0x0147
	romSizeAddress        = 0x0148
	ramSizeAddress        = 0x0149
	destinationAddress    = 0x014A
	oldLicenseeAddress    = 0x014B
	versionAddress        = 0x014C
	headerChecksumAddress = 0x014D
	globalChecksumAddress = 0x014E
	headerSize            = 0x0150
)

// nintendoLogo is the bitmap the boot ROM compares against 0x0104-0x0133.
// Original hardware refuses to boot when it does not match.
var nintendoLogo = []byte{
	0xCE, 0xED, 0x66, 0x66, 0xCC, 0x0D, 0x00, 0x0B, 0x03, 0x73, 0x00, 0x83,
	0x00, 0x0C, 0x00, 0x0D, 0x00, 0x08, 0x11, 0x1F, 0x88, 0x89, 0x00, 0x0E,
	0xDC, 0xCC, 0x6E, 0xE6, 0xDD, 0xDD, 0xD9, 0x99, 0xBB, 0xBB, 0x67, 0x63,
	0x6E, 0x0E, 0xEC, 0xCC, 0xDD, 0xDC, 0x99, 0x9F, 0xBB, 0xB9, 0x33, 0x3E,
}

// Header holds the cartridge metadata parsed from 0x0100-0x014F.
type Header struct {
	Title          string
	CGBFlag        uint8
	NewLicensee    uint16
	SGBFlag        uint8
	Type           uint8
	ROMSizeRaw     uint8
	RAMSizeRaw     uint8
	Destination    uint8
	OldLicensee    uint8
	Version        uint8
	HeaderChecksum uint8
	GlobalChecksum uint16
	Valid          bool
}

// ParseHeader reads the metadata block from raw ROM bytes. Data shorter
// than the header region yields a zero Header with Valid false.
func ParseHeader(data []byte) Header {
	if len(data) < headerSize {
		slog.Error("ROM too small for header", "size", len(data))
		return Header{}
	}

	h := Header{
		Title:          cleanTitle(data[titleAddress : titleAddress+titleLength]),
		CGBFlag:        data[cgbFlagAddress],
		NewLicensee:    bit.Combine(data[newLicenseeAddress], data[newLicenseeAddress+1]),
		SGBFlag:        data[sgbFlagAddress],
		Type:           data[cartTypeAddress],
		ROMSizeRaw:     data[romSizeAddress],
		RAMSizeRaw:     data[ramSizeAddress],
		Destination:    data[destinationAddress],
		OldLicensee:    data[oldLicenseeAddress],
		Version:        data[versionAddress],
		HeaderChecksum: data[headerChecksumAddress],
		GlobalChecksum: bit.Combine(data[globalChecksumAddress], data[globalChecksumAddress+1]),
	}
	h.Valid = h.validate(data)

	return h
}

func (h Header) validate(data []byte) bool {
	if !bytes.Equal(data[logoAddress:logoAddress+len(nintendoLogo)], nintendoLogo) {
		slog.Error("Nintendo logo verification failed", "title", h.Title)
		return false
	}

	if sum := headerChecksum(data); sum != h.HeaderChecksum {
		slog.Error("Header checksum mismatch",
			"calculated", sum, "header", h.HeaderChecksum)
		return false
	}

	return true
}

// ROMBanks returns the 16KB bank count encoded in the ROM size byte,
// where raw 0 means 32KB (2 banks).
func (h Header) ROMBanks() int {
	return 2 << h.ROMSizeRaw
}

// RAMBanks returns the external 8KB RAM bank count for the RAM size byte.
func (h Header) RAMBanks() int {
	switch h.RAMSizeRaw {
	case 0x02:
		return 1
	case 0x03:
		return 4
	case 0x04:
		return 16
	case 0x05:
		return 8
	default:
		return 0
	}
}

// headerChecksum folds 0x0134-0x014C the way the boot ROM does.
func headerChecksum(data []byte) uint8 {
	var x uint8
	for i := titleAddress; i <= versionAddress; i++ {
		x = x - data[i] - 1
	}
	return x
}

// cleanTitle converts the raw title bytes to printable ASCII. The title
// region ends at the first NUL; non-printable leftovers become '?'.
func cleanTitle(raw []byte) string {
	if i := bytes.IndexByte(raw, 0); i >= 0 {
		raw = raw[:i]
	}

	runes := make([]rune, 0, len(raw))
	for _, b := range raw {
		r := rune(b)
		if !unicode.IsPrint(r) {
			r = '?'
		}
		runes = append(runes, r)
	}

	return strings.TrimSpace(string(runes))
}
