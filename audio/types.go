package audio

import (
	"errors"

	"github.com/lixenwraith/simon/game"
)

// Cue represents a playable sound
type Cue int

const (
	CueRed Cue = iota
	CueBlue
	CueGreen
	CueYellow
	CueWrong // Game over buzz
	cueCount
)

// CueForColor maps a pad color to its tone
func CueForColor(c game.Color) (Cue, bool) {
	switch c {
	case game.Red:
		return CueRed, true
	case game.Blue:
		return CueBlue, true
	case game.Green:
		return CueGreen, true
	case game.Yellow:
		return CueYellow, true
	default:
		return 0, false
	}
}

func (c Cue) String() string {
	switch c {
	case CueRed:
		return "red"
	case CueBlue:
		return "blue"
	case CueGreen:
		return "green"
	case CueYellow:
		return "yellow"
	case CueWrong:
		return "wrong"
	default:
		return "unknown"
	}
}

// Sentinel errors
var (
	ErrAudioDisabled = errors.New("audio disabled")
	ErrInvalidConfig = errors.New("invalid audio config")
)
