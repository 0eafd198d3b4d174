//go:build sdl2

package dmg

import (
	"os"
	"testing"

	"github.com/valerio/go-dmg/dmg/backend"
	"github.com/valerio/go-dmg/dmg/backend/sdl2"
)

func BenchmarkSDL2Backend(b *testing.B) {
	testROMs := []struct {
		name   string
		path   string
		frames int
	}{
		{"cpu_instrs_100", "../test-roms/gb-test-roms/cpu_instrs/cpu_instrs.gb", 100},
	}

	for _, tc := range testROMs {
		b.Run(tc.name, func(b *testing.B) {
			if _, err := os.Stat(tc.path); os.IsNotExist(err) {
				b.Skipf("test ROM not found: %s", tc.path)
			}

			emu, err := NewWithFile(tc.path)
			if err != nil {
				b.Fatalf("Failed to create emulator: %v", err)
			}

			sdlBackend := sdl2.New()
			if err := sdlBackend.Init(backend.BackendConfig{Title: "Benchmark", Scale: 1}); err != nil {
				b.Fatalf("Failed to initialize SDL2 backend: %v", err)
			}
			defer sdlBackend.Cleanup()

			emu.SetFrameLimiter(nil)

			b.ResetTimer()
			b.ReportAllocs()

			for i := 0; i < b.N; i++ {
				for frameCount := 0; frameCount < tc.frames; frameCount++ {
					emu.RunUntilFrame()
					if _, err := sdlBackend.Update(emu.GetCurrentFrame()); err != nil {
						b.Fatalf("Backend update failed: %v", err)
					}
				}
			}
		})
	}
}
