package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/simon/game"
)

// HitTester maps a mouse cell to a pad
type HitTester interface {
	HitTest(x, y int) (game.Color, bool)
}

// Machine translates tcell events into intents
// Tracks mouse button state so a held button reports one press
type Machine struct {
	keys    *KeyTable
	hits    HitTester
	buttons tcell.ButtonMask
}

// NewMachine creates a translator, nil keys uses the defaults
func NewMachine(keys *KeyTable, hits HitTester) *Machine {
	if keys == nil {
		keys = DefaultKeyTable()
	}
	return &Machine{keys: keys, hits: hits}
}

// Translate maps an event to an intent given the session status
func (m *Machine) Translate(ev tcell.Event, status game.Status) Intent {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return m.translateKey(ev, status)
	case *tcell.EventMouse:
		return m.translateMouse(ev)
	case *tcell.EventResize:
		w, h := ev.Size()
		return Intent{Type: IntentResize, Width: w, Height: h}
	}
	return Intent{}
}

func (m *Machine) translateKey(ev *tcell.EventKey, status game.Status) Intent {
	if m.keys.QuitKeys[ev.Key()] {
		return Intent{Type: IntentQuit}
	}
	if status == game.StatusNotStarted {
		return Intent{Type: IntentStart}
	}
	if ev.Key() == tcell.KeyRune {
		if c, ok := m.keys.padFor(ev.Rune()); ok {
			return Intent{Type: IntentPress, Color: c}
		}
	}
	return Intent{}
}

func (m *Machine) translateMouse(ev *tcell.EventMouse) Intent {
	prev := m.buttons
	m.buttons = ev.Buttons()

	// Only the press edge of the primary button counts
	if m.buttons&tcell.Button1 == 0 || prev&tcell.Button1 != 0 {
		return Intent{}
	}
	if m.hits == nil {
		return Intent{}
	}

	x, y := ev.Position()
	if c, ok := m.hits.HitTest(x, y); ok {
		return Intent{Type: IntentPress, Color: c}
	}
	return Intent{}
}
