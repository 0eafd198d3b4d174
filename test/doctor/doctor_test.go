// Package doctor replays Gameboy Doctor golden logs for the Blargg
// cpu_instrs ROMs against the emulator core. ROMs come from
// https://github.com/retrio/gb-test-roms and the truth logs from
// https://github.com/robert/gameboy-doctor, both checked out under
// test-roms/; every test skips when its fixtures are missing.
package doctor

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/valerio/go-dmg/dmg/cart"
	"github.com/valerio/go-dmg/dmg/doctor"
)

const (
	romDir = "../../test-roms/gb-test-roms/cpu_instrs/individual"
	logDir = "../../test-roms/gameboy-doctor/truth/unzipped/cpu_instrs"
)

func runDoctorTest(t *testing.T, logID int, romName string) {
	romPath := filepath.Join(romDir, romName)
	logPath := filepath.Join(logDir, fmt.Sprintf("%d.log", logID))

	if _, err := os.Stat(romPath); os.IsNotExist(err) {
		t.Skipf("test ROM not found: %s", romPath)
	}
	if _, err := os.Stat(logPath); os.IsNotExist(err) {
		t.Skipf("truth log not found: %s (did you unzip them?)", logPath)
	}

	rom, err := cart.NewFromFile(romPath)
	require.NoError(t, err)

	f, err := os.Open(logPath)
	require.NoError(t, err)
	defer f.Close()

	matched, err := doctor.NewSession(rom, f).Run()

	var mismatch *doctor.MismatchError
	if errors.As(err, &mismatch) {
		t.Fatalf("diverged after %d matched lines:\n%s", matched, mismatch.Report())
	}
	require.NoError(t, err)
	t.Logf("matched all %d lines", matched)
}

func TestDoctor01Special(t *testing.T)    { runDoctorTest(t, 1, "01-special.gb") }
func TestDoctor02Interrupts(t *testing.T) { runDoctorTest(t, 2, "02-interrupts.gb") }
func TestDoctor03SPHL(t *testing.T)       { runDoctorTest(t, 3, "03-op sp,hl.gb") }
func TestDoctor04RImm(t *testing.T)       { runDoctorTest(t, 4, "04-op r,imm.gb") }
func TestDoctor05RP(t *testing.T)         { runDoctorTest(t, 5, "05-op rp.gb") }
func TestDoctor06LDRR(t *testing.T)       { runDoctorTest(t, 6, "06-ld r,r.gb") }
func TestDoctor07Jump(t *testing.T)       { runDoctorTest(t, 7, "07-jr,jp,call,ret,rst.gb") }
func TestDoctor08Misc(t *testing.T)       { runDoctorTest(t, 8, "08-misc instrs.gb") }
func TestDoctor09OpRR(t *testing.T)       { runDoctorTest(t, 9, "09-op r,r.gb") }
func TestDoctor10BitOps(t *testing.T)     { runDoctorTest(t, 10, "10-bit ops.gb") }
func TestDoctor11OpAHL(t *testing.T)      { runDoctorTest(t, 11, "11-op a,(hl).gb") }
