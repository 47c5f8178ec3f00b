package constants

// Status Messages
const (
	MessageStart    = "Press Any Key to Start"
	MessageLevel    = "%s, You are on Level %d"
	MessageGameOver = "Game Over, Press Any Key to Restart!"
)

// Board Layout
const (
	// TitleRows is the number of rows above the pad grid
	TitleRows = 2

	// FooterRows is the number of rows below the pad grid
	FooterRows = 2

	// PadGap is the spacing between pads in cells
	PadGap = 2

	// MinPadWidth and MinPadHeight are the smallest pads still drawn
	MinPadWidth  = 4
	MinPadHeight = 2
)

// Footer key hints
const FooterHint = "g/1 green  r/2 red  y/3 yellow  b/4 blue  click pads  Esc quit"
