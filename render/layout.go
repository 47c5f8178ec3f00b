package render

import (
	"github.com/lixenwraith/simon/constants"
	"github.com/lixenwraith/simon/game"
)

// Rect is a screen rectangle in cells
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell (x, y) falls inside r
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Layout places the four pads in a 2x2 grid
// Top row green and red, bottom row yellow and blue
type Layout struct {
	Width, Height int
	Pads          [4]Rect // Indexed by game.Color
	Valid         bool    // False when the terminal is too small for the pads
}

// ComputeLayout fits the grid between the title and footer rows
func ComputeLayout(width, height int) Layout {
	l := Layout{Width: width, Height: height}

	gap := constants.PadGap
	top := constants.TitleRows
	gridH := height - constants.TitleRows - constants.FooterRows

	padW := (width - 3*gap) / 2
	padH := (gridH - 1) / 2 // One blank row between pad rows
	if padW < constants.MinPadWidth || padH < constants.MinPadHeight {
		return l
	}

	left := gap
	right := 2*gap + padW
	bottom := top + padH + 1

	l.Pads[game.Green] = Rect{X: left, Y: top, W: padW, H: padH}
	l.Pads[game.Red] = Rect{X: right, Y: top, W: padW, H: padH}
	l.Pads[game.Yellow] = Rect{X: left, Y: bottom, W: padW, H: padH}
	l.Pads[game.Blue] = Rect{X: right, Y: bottom, W: padW, H: padH}
	l.Valid = true
	return l
}

// HitTest maps a cell to the pad covering it
func (l Layout) HitTest(x, y int) (game.Color, bool) {
	if !l.Valid {
		return 0, false
	}
	for _, c := range game.DefaultPalette() {
		if l.Pads[c].Contains(x, y) {
			return c, true
		}
	}
	return 0, false
}
