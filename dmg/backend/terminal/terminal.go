// Package terminal renders the emulator inside a terminal using tcell.
// Each character cell covers two stacked pixels via half-block glyphs,
// so the 160x144 screen fits in 160x72 cells, with debug panels and a
// log pane on the right.
package terminal

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/valerio/go-dmg/dmg/addr"
	"github.com/valerio/go-dmg/dmg/backend"
	"github.com/valerio/go-dmg/dmg/backend/terminal/render"
	"github.com/valerio/go-dmg/dmg/disasm"
	"github.com/valerio/go-dmg/dmg/input"
	"github.com/valerio/go-dmg/dmg/input/action"
	"github.com/valerio/go-dmg/dmg/input/event"
	"github.com/valerio/go-dmg/dmg/video"
)

const (
	width  = video.FramebufferWidth
	height = video.FramebufferHeight

	registerHeight = 9
	disasmHeight   = 9
	minTermWidth   = 80
	minTermHeight  = 24

	// Terminals report key repeats, not releases. A key is considered
	// held while repeats keep arriving and released once they stop.
	keyTimeout = 100 * time.Millisecond
)

// shadeColors maps framebuffer shades, lightest first.
var shadeColors = [4]tcell.Color{
	tcell.ColorWhite,
	tcell.ColorSilver,
	tcell.ColorGray,
	tcell.ColorBlack,
}

// Backend implements backend.Backend on a tcell screen.
type Backend struct {
	screen    tcell.Screen
	running   bool
	logBuffer *render.LogBuffer
	logLevel  slog.Level
	config    backend.BackendConfig

	signals    chan os.Signal
	eventQueue []backend.InputEvent

	keyStates  map[action.Action]time.Time
	activeKeys map[action.Action]bool

	currentFrame *video.FrameBuffer
}

func New() *Backend {
	return &Backend{
		logLevel: slog.LevelInfo,
	}
}

func (t *Backend) Init(config backend.BackendConfig) error {
	t.config = config
	t.keyStates = make(map[action.Action]time.Time)
	t.activeKeys = make(map[action.Action]bool)

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("initializing terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing terminal: %w", err)
	}
	t.screen = screen
	t.running = true

	// Route logging into the pane so records stop corrupting the UI.
	t.logBuffer = render.NewLogBuffer(100)
	slog.SetDefault(slog.New(render.NewLogBufferHandler(t.logBuffer, slog.LevelDebug)))
	slog.Info("Terminal frontend initialized")

	t.screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	t.screen.Clear()

	t.signals = make(chan os.Signal, 1)
	signal.Notify(t.signals, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP, syscall.SIGQUIT)

	return nil
}

// Update polls input, renders the frame and returns the pending
// actions. Game inputs carry Press/Hold/Release transitions derived
// from key repeat timing; everything else is a one-shot Press.
func (t *Backend) Update(frame *video.FrameBuffer) ([]backend.InputEvent, error) {
	var events []backend.InputEvent
	now := time.Now()

	select {
	case <-t.signals:
		t.running = false
		t.eventQueue = append(t.eventQueue, backend.InputEvent{Action: action.EmulatorQuit, Type: event.Press})
	default:
	}

	for t.screen.HasPendingEvent() {
		switch ev := t.screen.PollEvent().(type) {
		case *tcell.EventKey:
			t.processKeyEvent(ev, now)
		case *tcell.EventResize:
			t.screen.Sync()
		}
	}

	currentlyActive := make(map[action.Action]bool)
	for act, lastPressed := range t.keyStates {
		if now.Sub(lastPressed) >= keyTimeout {
			delete(t.keyStates, act)
			continue
		}
		currentlyActive[act] = true
		if t.activeKeys[act] {
			events = append(events, backend.InputEvent{Action: act, Type: event.Hold})
		} else {
			events = append(events, backend.InputEvent{Action: act, Type: event.Press})
		}
	}
	for act := range t.activeKeys {
		if !currentlyActive[act] {
			events = append(events, backend.InputEvent{Action: act, Type: event.Release})
		}
	}
	t.activeKeys = currentlyActive

	events = append(events, t.eventQueue...)
	t.eventQueue = nil

	if !t.running {
		return events, nil
	}

	t.currentFrame = frame
	t.render(frame)
	t.screen.Show()

	return events, nil
}

func (t *Backend) Cleanup() error {
	if t.signals != nil {
		signal.Stop(t.signals)
	}
	if t.screen != nil {
		slog.Info("Cleaning up terminal frontend")
		t.screen.Fini()
	}
	return nil
}

// tcellKeyNameMap converts special tcell keys to default mapping names.
var tcellKeyNameMap = map[tcell.Key]string{
	tcell.KeyEnter:      "Enter",
	tcell.KeyUp:         "Up",
	tcell.KeyDown:       "Down",
	tcell.KeyLeft:       "Left",
	tcell.KeyRight:      "Right",
	tcell.KeyEscape:     "Escape",
	tcell.KeyBackspace:  "Backspace",
	tcell.KeyBackspace2: "Backspace",
	tcell.KeyF9:         "F9",
	tcell.KeyF10:        "F10",
	tcell.KeyF12:        "F12",
}

// tcellRuneNameMap converts printable keys to default mapping names.
var tcellRuneNameMap = map[rune]string{
	'z': "z",
	'x': "x",
	'w': "w",
	's': "s",
	'a': "a",
	'd': "d",
	'p': "p",
	'o': "o",
	'n': "n",
	't': "t",
	'q': "q",
	' ': "Space",
	'+': "+",
	'=': "=",
	'-': "-",
	'_': "_",
}

func buildKeyMapping() map[tcell.Key]action.Action {
	mapping := make(map[tcell.Key]action.Action)
	for key, name := range tcellKeyNameMap {
		if act, ok := input.GetDefaultMapping(name); ok {
			mapping[key] = act
		}
	}
	mapping[tcell.KeyCtrlC] = action.EmulatorQuit
	return mapping
}

func buildRuneMapping() map[rune]action.Action {
	mapping := make(map[rune]action.Action)
	for r, name := range tcellRuneNameMap {
		if act, ok := input.GetDefaultMapping(name); ok {
			mapping[r] = act
		}
	}
	return mapping
}

var keyMapping = buildKeyMapping()
var runeMapping = buildRuneMapping()

func (t *Backend) processKeyEvent(ev *tcell.EventKey, now time.Time) {
	if act, ok := keyMapping[ev.Key()]; ok {
		t.dispatchAction(act, now)
		return
	}
	if ev.Key() == tcell.KeyRune {
		if act, ok := runeMapping[ev.Rune()]; ok {
			t.dispatchAction(act, now)
		}
	}
}

func (t *Backend) dispatchAction(act action.Action, now time.Time) {
	if action.GetInfo(act).Category == action.CategoryGameInput {
		// Terminals deliver one direction at a time, so a new d-pad
		// press supersedes the others.
		switch act {
		case action.GBDPadUp, action.GBDPadDown, action.GBDPadLeft, action.GBDPadRight:
			delete(t.keyStates, action.GBDPadUp)
			delete(t.keyStates, action.GBDPadDown)
			delete(t.keyStates, action.GBDPadLeft)
			delete(t.keyStates, action.GBDPadRight)
		}
		t.keyStates[act] = now
		return
	}

	// Display concerns stay inside the frontend; the rest is queued
	// for the run loop.
	switch act {
	case action.EmulatorSnapshot:
		backend.TakeSnapshot(t.currentFrame, "dmg_snapshot")
	case action.EmulatorDebugToggle:
		t.config.ShowDebug = !t.config.ShowDebug
		slog.Info("Debug panels toggled", "enabled", t.config.ShowDebug)
	case action.DebugLogLevelIncrease:
		t.changeLogLevel(1)
	case action.DebugLogLevelDecrease:
		t.changeLogLevel(-1)
	case action.EmulatorQuit:
		t.running = false
		t.eventQueue = append(t.eventQueue, backend.InputEvent{Action: act, Type: event.Press})
	default:
		t.eventQueue = append(t.eventQueue, backend.InputEvent{Action: act, Type: event.Press})
	}
}

func (t *Backend) changeLogLevel(direction int) {
	levels := []slog.Level{slog.LevelError, slog.LevelWarn, slog.LevelInfo, slog.LevelDebug}
	idx := 2
	for i, l := range levels {
		if l == t.logLevel {
			idx = i
		}
	}
	idx += direction
	if idx < 0 || idx >= len(levels) || levels[idx] == t.logLevel {
		return
	}
	slog.Info("Log filter changed", "from", t.logLevel, "to", levels[idx])
	t.logLevel = levels[idx]
}

func (t *Backend) render(frame *video.FrameBuffer) {
	termWidth, termHeight := t.screen.Size()
	if termWidth < minTermWidth || termHeight < minTermHeight {
		t.screen.Clear()
		style := tcell.StyleDefault.Foreground(tcell.ColorRed)
		msg := fmt.Sprintf("Terminal too small! Need at least %dx%d", minTermWidth, minTermHeight)
		drawText(t.screen, 0, termHeight/2, termWidth, msg, style)
		return
	}

	t.screen.Clear()

	dividerX := width + 2
	rightPanelX := dividerX + 1
	rightPanelWidth := max(termWidth-rightPanelX, 0)

	t.drawChrome(termWidth, termHeight, dividerX)
	t.drawScreen(frame)

	showDebug := t.config.ShowDebug && t.config.DebugProvider != nil
	logsY := 1
	if showDebug {
		t.drawRegisters(rightPanelX, 1, rightPanelWidth, termHeight)
		t.drawDisassembly(rightPanelX, registerHeight+2, rightPanelWidth, termHeight)
		logsY = registerHeight + disasmHeight + 3
	}
	t.drawLogs(rightPanelX, logsY, rightPanelWidth, termHeight)
}

func (t *Backend) drawChrome(termWidth, termHeight, dividerX int) {
	borderStyle := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	titleStyle := tcell.StyleDefault.Foreground(tcell.ColorYellow)

	if dividerX < termWidth {
		for y := 0; y < termHeight; y++ {
			t.screen.SetContent(dividerX, y, '│', nil, borderStyle)
		}
	}

	title := " Game Boy "
	if t.config.TestPattern {
		title = " Test Pattern "
	}
	if t.config.Title != "" {
		title = " " + t.config.Title + " "
	}
	drawText(t.screen, 1, 0, dividerX-1, title, titleStyle)

	showDebug := t.config.ShowDebug && t.config.DebugProvider != nil
	if showDebug {
		registerEndY := registerHeight + 1
		disasmEndY := registerEndY + disasmHeight + 1
		for _, y := range []int{registerEndY, disasmEndY} {
			if y >= termHeight {
				continue
			}
			for x := dividerX + 1; x < termWidth; x++ {
				t.screen.SetContent(x, y, '─', nil, borderStyle)
			}
			t.screen.SetContent(dividerX, y, '├', nil, borderStyle)
		}

		panelX := dividerX + 2
		drawText(t.screen, panelX, 0, termWidth-panelX, " CPU ", titleStyle)
		drawText(t.screen, panelX, registerEndY, termWidth-panelX, " Disassembly ", titleStyle)
		drawText(t.screen, panelX, disasmEndY, termWidth-panelX,
			fmt.Sprintf(" Logs [%s] (-/+ filter) ", levelName(t.logLevel)), titleStyle)
	}

	help := " z/x=A/B Enter=Start arrows/wasd=d-pad Space=pause o=frame n=step F9=snap F10=debug q=quit "
	if t.config.TestPattern {
		help = " Test pattern mode: t=cycle patterns F9=snapshot q=quit "
	}
	drawText(t.screen, 0, termHeight-1, termWidth, help, borderStyle)
}

// drawScreen paints the frame two rows of pixels per cell.
func (t *Backend) drawScreen(frame *video.FrameBuffer) {
	for y := 0; y < height; y += 2 {
		for x := 0; x < width; x++ {
			top := frame.GetPixel(x, y)
			bottom := frame.GetPixel(x, y+1)

			ch := render.HalfBlock(top, bottom)
			style := tcell.StyleDefault.Foreground(shadeColors[top])
			if top != bottom {
				style = style.Background(shadeColors[bottom])
			}
			t.screen.SetContent(x, y/2+1, ch, nil, style)
		}
	}
}

func (t *Backend) drawRegisters(startX, startY, panelWidth, termHeight int) {
	snap := t.config.DebugProvider.Snapshot()
	bus := t.config.DebugProvider.Bus()

	lines := []string{
		fmt.Sprintf("A: 0x%02X  F: 0x%02X", snap.A, snap.F),
		fmt.Sprintf("B: 0x%02X  C: 0x%02X", snap.B, snap.C),
		fmt.Sprintf("D: 0x%02X  E: 0x%02X", snap.D, snap.E),
		fmt.Sprintf("H: 0x%02X  L: 0x%02X", snap.H, snap.L),
		fmt.Sprintf("SP: 0x%04X  PC: 0x%04X", snap.SP, snap.PC),
		fmt.Sprintf("IE: 0x%02X  IF: 0x%02X", bus.Read(addr.IE), bus.Read(addr.IF)),
		fmt.Sprintf("LCDC: 0x%02X  STAT: 0x%02X", bus.Read(addr.LCDC), bus.Read(addr.STAT)),
		fmt.Sprintf("Cycles: %d", t.config.DebugProvider.Cycles()),
	}

	style := tcell.StyleDefault.Foreground(tcell.ColorBlue)
	for i, line := range lines {
		y := startY + i
		if y >= termHeight || i >= registerHeight {
			break
		}
		drawText(t.screen, startX, y, panelWidth, line, style)
	}
}

func (t *Backend) drawDisassembly(startX, startY, panelWidth, termHeight int) {
	snap := t.config.DebugProvider.Snapshot()
	lines := disasm.Range(snap.PC, disasmHeight, t.config.DebugProvider.Bus())

	style := tcell.StyleDefault.Foreground(tcell.ColorGreen)
	currentStyle := tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)

	for i, line := range lines {
		y := startY + i
		if y >= termHeight || i >= disasmHeight {
			break
		}
		useStyle := style
		if line.Address == snap.PC {
			useStyle = currentStyle
		}
		drawText(t.screen, startX, y, panelWidth, disasm.Format(line, line.Address == snap.PC), useStyle)
	}
}

func (t *Backend) drawLogs(startX, startY, panelWidth, termHeight int) {
	availableHeight := termHeight - startY - 1
	if panelWidth <= 0 || availableHeight <= 0 {
		return
	}

	all := t.logBuffer.GetRecent(availableHeight * 2)
	logs := make([]render.LogEntry, 0, availableHeight)
	for _, entry := range all {
		if entry.Level >= t.logLevel {
			logs = append(logs, entry)
			if len(logs) >= availableHeight {
				break
			}
		}
	}

	for i, entry := range logs {
		style := tcell.StyleDefault.Foreground(tcell.ColorBlue)
		switch entry.Level {
		case slog.LevelDebug:
			style = tcell.StyleDefault.Foreground(tcell.ColorGray)
		case slog.LevelWarn:
			style = tcell.StyleDefault.Foreground(tcell.ColorYellow)
		case slog.LevelError:
			style = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
		}

		text := render.FormatLogEntry(entry)
		if len(text) > panelWidth && panelWidth > 3 {
			text = text[:panelWidth-3] + "..."
		}
		drawText(t.screen, startX, startY+i, panelWidth, text, style)
	}
}

func levelName(level slog.Level) string {
	switch level {
	case slog.LevelDebug:
		return "DEBUG"
	case slog.LevelWarn:
		return "WARN"
	case slog.LevelError:
		return "ERROR"
	default:
		return "INFO"
	}
}

// drawText writes a clipped string at (x, y).
func drawText(s tcell.Screen, x, y, maxWidth int, text string, style tcell.Style) {
	col := x
	for _, ch := range text {
		if col-x >= maxWidth {
			break
		}
		s.SetContent(col, y, ch, nil, style)
		col++
	}
}
