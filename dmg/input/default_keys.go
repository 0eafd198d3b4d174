package input

import "github.com/valerio/go-dmg/dmg/input/action"

// DefaultKeyMap is the key binding shared by the frontends. Keys are
// named the way tcell and SDL report them so each frontend only maps
// its own key type to these names.
var DefaultKeyMap = map[string]action.Action{
	// Game Boy controls
	"z":     action.GBButtonA,
	"x":     action.GBButtonB,
	"Enter": action.GBButtonStart,
	"Shift": action.GBButtonSelect,
	// Terminals cannot report a bare Shift, so Select gets an alias.
	"Backspace": action.GBButtonSelect,
	"Up":        action.GBDPadUp,
	"Down":      action.GBDPadDown,
	"Left":      action.GBDPadLeft,
	"Right":     action.GBDPadRight,

	// WASD alternative for the d-pad
	"w": action.GBDPadUp,
	"s": action.GBDPadDown,
	"a": action.GBDPadLeft,
	"d": action.GBDPadRight,

	// Emulator controls
	"Space":  action.EmulatorPauseToggle,
	"p":      action.EmulatorPauseToggle,
	"o":      action.EmulatorStepFrame,
	"n":      action.EmulatorStepInstruction,
	"t":      action.EmulatorTestPatternCycle,
	"F9":     action.EmulatorSnapshot,
	"F10":    action.EmulatorDebugToggle,
	"F12":    action.EmulatorTestPatternCycle,
	"Escape": action.EmulatorQuit,
	"q":      action.EmulatorQuit,

	// Log pane filter
	"+": action.DebugLogLevelIncrease,
	"=": action.DebugLogLevelIncrease,
	"-": action.DebugLogLevelDecrease,
	"_": action.DebugLogLevelDecrease,
}

// GetDefaultMapping returns the default action for a key name.
func GetDefaultMapping(key string) (action.Action, bool) {
	act, ok := DefaultKeyMap[key]
	return act, ok
}
