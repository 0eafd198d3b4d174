package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/urfave/cli"

	"github.com/valerio/go-dmg/dmg"
	"github.com/valerio/go-dmg/dmg/addr"
	"github.com/valerio/go-dmg/dmg/backend"
	"github.com/valerio/go-dmg/dmg/backend/headless"
	"github.com/valerio/go-dmg/dmg/backend/sdl2"
	"github.com/valerio/go-dmg/dmg/backend/terminal"
	"github.com/valerio/go-dmg/dmg/cart"
	"github.com/valerio/go-dmg/dmg/doctor"
	"github.com/valerio/go-dmg/dmg/input"
	"github.com/valerio/go-dmg/dmg/input/action"
	"github.com/valerio/go-dmg/dmg/input/event"
	"github.com/valerio/go-dmg/dmg/serial"
	"github.com/valerio/go-dmg/dmg/timing"
)

// pausePollInterval is how often a paused loop polls the backend so
// input keeps flowing while emulation stands still.
const pausePollInterval = 16 * time.Millisecond

func main() {
	app := cli.NewApp()
	app.Name = "dmg"
	app.Description = "A Game Boy (DMG) emulator"
	app.Usage = "dmg [options] <ROM file>"
	app.Version = "1.0.0"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "rom",
			Usage: "Path to the ROM file",
		},
		cli.StringFlag{
			Name:  "backend",
			Usage: "Frontend to use: terminal, sdl2, headless",
			Value: "terminal",
		},
		cli.BoolFlag{
			Name:  "headless",
			Usage: "Run without a display (same as --backend headless)",
		},
		cli.IntFlag{
			Name:  "frames",
			Usage: "Number of frames to run in headless mode (required for headless)",
			Value: 0,
		},
		cli.BoolFlag{
			Name:  "test-pattern",
			Usage: "Display a test pattern instead of emulation (for debugging display)",
		},
		cli.IntFlag{
			Name:  "snapshot-interval",
			Usage: "Save frame snapshots every N frames in headless mode (0 = disabled)",
			Value: 0,
		},
		cli.StringFlag{
			Name:  "snapshot-dir",
			Usage: "Directory to save frame snapshots (default: temp directory)",
		},
		cli.StringFlag{
			Name:  "doctor",
			Usage: "Replay a Gameboy Doctor golden log and report the first mismatch",
		},
		cli.StringFlag{
			Name:  "serial-log",
			Usage: "Write bytes sent over the serial port to this file on exit",
		},
		cli.IntFlag{
			Name:  "scale",
			Usage: "Window scale factor for the SDL2 backend",
			Value: backend.DefaultScale,
		},
		cli.BoolFlag{
			Name:  "rotary",
			Usage: "Drive the joypad with a rotating key pattern (for headless soak runs)",
		},
		cli.BoolFlag{
			Name:  "debug",
			Usage: "Start with the debug panels visible (terminal backend)",
		},
	}
	app.Action = run

	if err := app.Run(os.Args); err != nil {
		slog.Error("Error running emulator", "error", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	romPath := c.String("rom")
	if romPath == "" && c.NArg() > 0 {
		romPath = c.Args().Get(0)
	}

	if logPath := c.String("doctor"); logPath != "" {
		if romPath == "" {
			cli.ShowAppHelp(c)
			return errors.New("doctor mode requires a ROM path")
		}
		return runDoctor(romPath, logPath)
	}

	// Test pattern mode - no ROM needed
	if c.Bool("test-pattern") {
		slog.Info("Running in test pattern mode")
		return runTestPattern(c)
	}

	if romPath == "" {
		cli.ShowAppHelp(c)
		return errors.New("no ROM path provided")
	}
	return runMachine(c, romPath)
}

func runMachine(c *cli.Context, romPath string) error {
	var opts []dmg.Option
	if c.Bool("rotary") {
		opts = append(opts, dmg.WithInputDevice(input.NewRotary()))
	}

	machine, err := dmg.NewWithFile(romPath, opts...)
	if err != nil {
		return err
	}

	if path := c.String("serial-log"); path != "" {
		capture := serial.NewCapture(func() {
			machine.Bus().RequestInterrupt(addr.SerialInterrupt)
		})
		machine.Bus().AttachSerial(capture)
		defer func() {
			if err := os.WriteFile(path, []byte(capture.String()), 0o644); err != nil {
				slog.Error("Failed to write serial log", "path", path, "error", err)
			}
		}()
	}

	b, config, interactive, err := selectBackend(c, false, machine, romPath)
	if err != nil {
		return err
	}
	if interactive {
		machine.SetFrameLimiter(timing.NewAdaptiveLimiter())
	}
	return runLoop(machine, b, config)
}

func runTestPattern(c *cli.Context) error {
	emu := dmg.NewTestPatternEmulator()

	b, config, interactive, err := selectBackend(c, true, nil, "pattern")
	if err != nil {
		return err
	}
	if interactive {
		emu.SetFrameLimiter(timing.NewAdaptiveLimiter())
	}
	return runLoop(emu, b, config)
}

// selectBackend builds the frontend picked by the CLI flags. The bool
// result is true for interactive backends, which want real-time pacing.
func selectBackend(c *cli.Context, testPattern bool, machine *dmg.DMG, romPath string) (backend.Backend, backend.BackendConfig, bool, error) {
	name := c.String("backend")
	if c.Bool("headless") {
		name = "headless"
	}

	config := backend.BackendConfig{
		Scale:       c.Int("scale"),
		TestPattern: testPattern,
		ShowDebug:   c.Bool("debug"),
	}

	switch name {
	case "terminal":
		if machine != nil {
			config.DebugProvider = machine
		}
		return terminal.New(), config, true, nil
	case "sdl2":
		return sdl2.New(), config, true, nil
	case "headless":
		frames := c.Int("frames")
		if frames <= 0 && !testPattern {
			return nil, config, false, errors.New("headless mode requires --frames with a positive value")
		}

		snapshots, err := headless.CreateSnapshotConfig(c.Int("snapshot-interval"), c.String("snapshot-dir"), romPath)
		if err != nil {
			return nil, config, false, err
		}

		// No screen to share with, so log everything to stderr.
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
		return headless.New(frames, snapshots), config, false, nil
	default:
		return nil, config, false, fmt.Errorf("unknown backend %q", name)
	}
}

// runLoop drives the emulator one frame at a time and dispatches the
// events the backend collected. Pause, stepping and quit belong to the
// loop; everything else goes to the emulator as an action.
func runLoop(emu dmg.Emulator, b backend.Backend, config backend.BackendConfig) error {
	if err := b.Init(config); err != nil {
		return err
	}
	defer func() {
		if err := b.Cleanup(); err != nil {
			slog.Error("Backend cleanup failed", "error", err)
		}
	}()

	machine, _ := emu.(*dmg.DMG)

	paused := false
	stepFrame := false
	for {
		if !paused || stepFrame {
			if err := emu.RunUntilFrame(); err != nil {
				return err
			}
			stepFrame = false
		} else {
			time.Sleep(pausePollInterval)
		}

		events, err := b.Update(emu.GetCurrentFrame())
		if err != nil {
			return err
		}

		for _, evt := range events {
			switch {
			case evt.Action == action.EmulatorQuit && evt.Type == event.Press:
				return nil
			case evt.Type == event.Hold:
				// Keypad state persists between frames, so holds carry
				// no new information.
			case evt.Action == action.EmulatorPauseToggle && evt.Type == event.Press:
				paused = !paused
				if paused {
					slog.Info("Paused")
				} else {
					slog.Info("Resumed")
					emu.ResetFrameTiming()
				}
			case evt.Action == action.EmulatorStepFrame && evt.Type == event.Press:
				if paused {
					stepFrame = true
				}
			case evt.Action == action.EmulatorStepInstruction && evt.Type == event.Press:
				if paused && machine != nil {
					machine.Step()
					slog.Debug("Stepped one instruction", "state", machine.Snapshot())
				}
			default:
				emu.HandleAction(evt.Action, evt.Type == event.Press)
			}
		}
	}
}

func runDoctor(romPath, logPath string) error {
	rom, err := cart.NewFromFile(romPath)
	if err != nil {
		return err
	}

	f, err := os.Open(logPath)
	if err != nil {
		return fmt.Errorf("opening golden log: %w", err)
	}
	defer f.Close()

	_, err = doctor.NewSession(rom, f).Run()
	var mismatch *doctor.MismatchError
	if errors.As(err, &mismatch) {
		fmt.Fprint(os.Stderr, mismatch.Report())
	}
	return err
}
