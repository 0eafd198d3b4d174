package input

import (
	"time"

	"github.com/valerio/go-dmg/dmg/input/action"
	"github.com/valerio/go-dmg/dmg/input/event"
)

// debounceDuration is the minimum time between debounced events
const debounceDuration = 300 * time.Millisecond

// Manager routes actions coming from frontends: Game Boy keys go
// straight to the keypad, emulator actions go to registered callbacks.
// Press and Release on emulator actions are debounced so key repeat in
// terminal frontends does not retrigger them.
type Manager struct {
	handlers      map[action.Action]map[event.Type][]func()
	lastTriggered map[action.Action]map[event.Type]time.Time
	keypad        *Keypad
	now           func() time.Time
}

func NewManager(k *Keypad) *Manager {
	return &Manager{
		handlers:      make(map[action.Action]map[event.Type][]func()),
		lastTriggered: make(map[action.Action]map[event.Type]time.Time),
		keypad:        k,
		now:           time.Now,
	}
}

// On registers a callback for a specific action and event type.
func (m *Manager) On(act action.Action, evt event.Type, callback func()) {
	if m.handlers[act] == nil {
		m.handlers[act] = make(map[event.Type][]func())
	}
	m.handlers[act][evt] = append(m.handlers[act][evt], callback)
}

// Trigger handles the given action and event type.
func (m *Manager) Trigger(act action.Action, evt event.Type) {
	// GB keys are never debounced, releases must always land.
	if key, ok := keyFor(act); ok {
		if m.keypad == nil {
			return
		}
		switch evt {
		case event.Press:
			m.keypad.Press(key)
		case event.Release:
			m.keypad.Release(key)
		}
		return
	}

	if evt == event.Press || evt == event.Release {
		now := m.now()
		if m.lastTriggered[act] == nil {
			m.lastTriggered[act] = make(map[event.Type]time.Time)
		}
		if now.Sub(m.lastTriggered[act][evt]) < debounceDuration {
			return
		}
		m.lastTriggered[act][evt] = now
	}

	for _, callback := range m.handlers[act][evt] {
		callback()
	}
}

// keyFor maps Game Boy actions to keypad keys.
func keyFor(act action.Action) (Key, bool) {
	switch act {
	case action.GBButtonA:
		return KeyA, true
	case action.GBButtonB:
		return KeyB, true
	case action.GBButtonStart:
		return KeyStart, true
	case action.GBButtonSelect:
		return KeySelect, true
	case action.GBDPadUp:
		return KeyUp, true
	case action.GBDPadDown:
		return KeyDown, true
	case action.GBDPadLeft:
		return KeyLeft, true
	case action.GBDPadRight:
		return KeyRight, true
	default:
		return 0, false
	}
}
