package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/simon/game"
)

// KeyTable maps keys to pads and system actions
type KeyTable struct {
	// Pad bindings, matched case-insensitively
	PadRunes map[rune]game.Color

	// Keys that quit in any state
	QuitKeys map[tcell.Key]bool
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		PadRunes: map[rune]game.Color{
			'g': game.Green,
			'r': game.Red,
			'y': game.Yellow,
			'b': game.Blue,
			'1': game.Green,
			'2': game.Red,
			'3': game.Yellow,
			'4': game.Blue,
		},
		QuitKeys: map[tcell.Key]bool{
			tcell.KeyEscape: true,
			tcell.KeyCtrlC:  true,
			tcell.KeyCtrlQ:  true,
		},
	}
}

// padFor resolves a rune to a pad
func (kt *KeyTable) padFor(r rune) (game.Color, bool) {
	if r >= 'A' && r <= 'Z' {
		r += 'a' - 'A'
	}
	c, ok := kt.PadRunes[r]
	return c, ok
}
