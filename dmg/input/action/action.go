package action

// Action represents input actions that can be performed in the emulator
type Action int

const (
	// Game Boy hardware controls
	GBButtonA Action = iota
	GBButtonB
	GBButtonStart
	GBButtonSelect
	GBDPadUp
	GBDPadDown
	GBDPadLeft
	GBDPadRight

	// Emulator features
	EmulatorDebugToggle
	EmulatorSnapshot
	EmulatorPauseToggle
	EmulatorStepFrame
	EmulatorStepInstruction
	EmulatorTestPatternCycle
	EmulatorQuit

	// Log pane controls
	DebugLogLevelIncrease
	DebugLogLevelDecrease
)

// Category groups actions by how frontends deliver them: game inputs
// are held keys that need press/release tracking, everything else is a
// one-shot trigger.
type Category int

const (
	CategoryGameInput Category = iota
	CategoryEmulator
	CategoryDebug
)

// Info describes an action for frontends.
type Info struct {
	Category    Category
	Description string
}

var infoTable = map[Action]Info{
	GBButtonA:      {CategoryGameInput, "A button"},
	GBButtonB:      {CategoryGameInput, "B button"},
	GBButtonStart:  {CategoryGameInput, "Start button"},
	GBButtonSelect: {CategoryGameInput, "Select button"},
	GBDPadUp:       {CategoryGameInput, "D-pad up"},
	GBDPadDown:     {CategoryGameInput, "D-pad down"},
	GBDPadLeft:     {CategoryGameInput, "D-pad left"},
	GBDPadRight:    {CategoryGameInput, "D-pad right"},

	EmulatorDebugToggle:      {CategoryEmulator, "Toggle debug view"},
	EmulatorSnapshot:         {CategoryEmulator, "Save frame snapshot"},
	EmulatorPauseToggle:      {CategoryEmulator, "Pause/resume"},
	EmulatorStepFrame:        {CategoryEmulator, "Step one frame"},
	EmulatorStepInstruction:  {CategoryEmulator, "Step one instruction"},
	EmulatorTestPatternCycle: {CategoryEmulator, "Cycle test pattern"},
	EmulatorQuit:             {CategoryEmulator, "Quit"},

	DebugLogLevelIncrease: {CategoryDebug, "More verbose logs"},
	DebugLogLevelDecrease: {CategoryDebug, "Less verbose logs"},
}

// GetInfo returns the metadata for an action.
func GetInfo(a Action) Info {
	return infoTable[a]
}
