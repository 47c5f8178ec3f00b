package engine

import "github.com/lixenwraith/simon/game"

// Display is the visual half of the presentation layer
type Display interface {
	Highlight(c game.Color)
	ClearHighlight()
	SetFailure(on bool)
	ShowMessage(msg string)
}

// Sound is the audio half of the presentation layer
// Playback failures are not reported
type Sound interface {
	PlayColor(c game.Color)
	PlayWrong()
}

// Presenter receives all feedback produced by the controller
type Presenter interface {
	Display
	Sound
}

type presenter struct {
	Display
	Sound
}

// Compose joins a display and a sound sink, nil sound is silent
func Compose(d Display, s Sound) Presenter {
	if s == nil {
		s = silent{}
	}
	return presenter{Display: d, Sound: s}
}

type silent struct{}

func (silent) PlayColor(game.Color) {}
func (silent) PlayWrong()           {}
