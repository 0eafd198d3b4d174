package cart

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// ErrMissingExtension is returned when a ROM path has no file extension.
var ErrMissingExtension = errors.New("rom file has no extension")

// InvalidExtensionError is returned when a ROM path carries an extension
// other than .gb or .gbc.
type InvalidExtensionError struct {
	Expected string
	Found    string
}

func (e *InvalidExtensionError) Error() string {
	return fmt.Sprintf("invalid rom file extension: expected %s, found %q", e.Expected, e.Found)
}

// Load reads a ROM file after validating its extension. Header contents
// are not inspected here; raw bytes load unconditionally.
func Load(path string) ([]byte, error) {
	if err := validateExtension(path); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading rom: %w", err)
	}

	slog.Info("Loaded ROM", "path", path, "size", len(data))

	return data, nil
}

func validateExtension(path string) error {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return ErrMissingExtension
	}

	if strings.EqualFold(ext, "gb") || strings.EqualFold(ext, "gbc") {
		return nil
	}

	return &InvalidExtensionError{Expected: ".gb or .gbc", Found: ext}
}
