package input

import "github.com/lixenwraith/simon/game"

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	IntentQuit   // Esc, Ctrl+C, Ctrl+Q
	IntentStart  // Any other key while no game runs
	IntentPress  // Pad key or left-click on a pad
	IntentResize // Terminal resize event
)

func (t IntentType) String() string {
	switch t {
	case IntentQuit:
		return "quit"
	case IntentStart:
		return "start"
	case IntentPress:
		return "press"
	case IntentResize:
		return "resize"
	default:
		return "none"
	}
}

// Intent is a translated input event
type Intent struct {
	Type   IntentType
	Color  game.Color // IntentPress
	Width  int        // IntentResize
	Height int        // IntentResize
}
