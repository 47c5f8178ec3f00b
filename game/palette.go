package game

import (
	"errors"
	"fmt"
	"strings"
)

// Color identifies one of the four pads
type Color uint8

const (
	Red Color = iota
	Blue
	Green
	Yellow
	colorCount
)

var colorNames = [colorCount]string{
	Red:    "red",
	Blue:   "blue",
	Green:  "green",
	Yellow: "yellow",
}

// ErrUnknownColor is returned by ParseColor for names outside the palette
var ErrUnknownColor = errors.New("unknown color")

func (c Color) String() string {
	if c >= colorCount {
		return fmt.Sprintf("color(%d)", uint8(c))
	}
	return colorNames[c]
}

// Valid reports whether c belongs to the palette
func (c Color) Valid() bool {
	return c < colorCount
}

// ParseColor maps a color name (case-insensitive) to its Color
func ParseColor(name string) (Color, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range colorNames {
		if n == name {
			return Color(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownColor, name)
}

// Palette is the fixed ordered set of selectable colors
type Palette [colorCount]Color

var defaultPalette = Palette{Red, Blue, Green, Yellow}

// DefaultPalette returns the palette in its canonical order
func DefaultPalette() Palette {
	return defaultPalette
}

// Len returns the number of colors in the palette
func (p Palette) Len() int {
	return len(p)
}
