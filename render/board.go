package render

import (
	"fmt"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/simon/constants"
	"github.com/lixenwraith/simon/game"
)

// padColors holds the dim and lit shades of each pad, indexed by game.Color
var padColors = [4]struct {
	dim, lit tcell.Color
	label    string
}{
	game.Red:    {tcell.NewRGBColor(140, 0, 0), tcell.NewRGBColor(255, 90, 90), "R"},
	game.Blue:   {tcell.NewRGBColor(0, 40, 150), tcell.NewRGBColor(110, 160, 255), "B"},
	game.Green:  {tcell.NewRGBColor(0, 120, 40), tcell.NewRGBColor(90, 255, 130), "G"},
	game.Yellow: {tcell.NewRGBColor(150, 130, 0), tcell.NewRGBColor(255, 240, 90), "Y"},
}

var (
	backgroundColor = tcell.NewRGBColor(1, 31, 63)
	failureColor    = tcell.NewRGBColor(200, 0, 0)
	textColor       = tcell.NewRGBColor(254, 242, 191)
	hintColor       = tcell.NewRGBColor(150, 150, 150)
)

// Board is the visual presentation of the game
// Implements engine.Display; owned by the game goroutine
type Board struct {
	layout Layout

	message   string
	highlight game.Color
	lit       bool
	failure   bool
}

// NewBoard creates a board for a screen of the given size
func NewBoard(width, height int) *Board {
	return &Board{
		layout:  ComputeLayout(width, height),
		message: constants.MessageStart,
	}
}

// Highlight lights a pad
func (b *Board) Highlight(c game.Color) {
	b.highlight = c
	b.lit = c.Valid()
}

// ClearHighlight dims all pads
func (b *Board) ClearHighlight() {
	b.lit = false
}

// SetFailure toggles the game over background
func (b *Board) SetFailure(on bool) {
	b.failure = on
}

// ShowMessage replaces the title text
func (b *Board) ShowMessage(msg string) {
	b.message = msg
}

// Message returns the title text
func (b *Board) Message() string { return b.message }

// Lit returns the highlighted pad, if any
func (b *Board) Lit() (game.Color, bool) { return b.highlight, b.lit }

// Failure reports whether the game over background is shown
func (b *Board) Failure() bool { return b.failure }

// Layout returns the current pad layout
func (b *Board) Layout() Layout { return b.layout }

// Resize recomputes the layout
func (b *Board) Resize(width, height int) {
	b.layout = ComputeLayout(width, height)
}

// HitTest maps a mouse cell to a pad
func (b *Board) HitTest(x, y int) (game.Color, bool) {
	return b.layout.HitTest(x, y)
}

// Draw renders the full board, the caller calls Show
func (b *Board) Draw(s tcell.Screen, snap game.Snapshot) {
	bg := backgroundColor
	if b.failure {
		bg = failureColor
	}
	base := tcell.StyleDefault.Background(bg).Foreground(textColor)

	w, h := b.layout.Width, b.layout.Height
	fill(s, Rect{X: 0, Y: 0, W: w, H: h}, base)

	drawCentered(s, 0, w, b.message, base.Bold(true))

	if !b.layout.Valid {
		drawCentered(s, h/2, w, "Terminal too small", base)
		return
	}

	for _, c := range game.DefaultPalette() {
		pc := padColors[c]
		shade := pc.dim
		if b.lit && b.highlight == c {
			shade = pc.lit
		}
		r := b.layout.Pads[c]
		style := tcell.StyleDefault.Background(shade).Foreground(tcell.ColorBlack)
		fill(s, r, style)
		drawText(s, r.X+r.W/2, r.Y+r.H/2, pc.label, style.Bold(true))
	}

	status := fmt.Sprintf("Round %d  Best %d", snap.Round, snap.Best)
	drawText(s, w-len(status)-constants.PadGap, h-2, status, base.Foreground(hintColor))
	drawCentered(s, h-1, w, constants.FooterHint, base.Foreground(hintColor))
}

// fill paints a rectangle with blanks
func fill(s tcell.Screen, r Rect, style tcell.Style) {
	for y := r.Y; y < r.Y+r.H; y++ {
		for x := r.X; x < r.X+r.W; x++ {
			s.SetContent(x, y, ' ', nil, style)
		}
	}
}

// drawText writes text one rune per cell starting at (x, y), clipped by the screen
func drawText(s tcell.Screen, x, y int, text string, style tcell.Style) {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}

// drawCentered writes text centered on row y
func drawCentered(s tcell.Screen, y, width int, text string, style tcell.Style) {
	x := (width - utf8.RuneCountInString(text)) / 2
	if x < 0 {
		x = 0
	}
	drawText(s, x, y, text, style)
}
