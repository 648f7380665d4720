// Package grid provides the fixed-size character grid primitives shared by
// every layer, renderer and compositor in the engine.
package grid

import "fmt"

// RGB is a plain 24-bit color.
type RGB struct {
	R uint8
	G uint8
	B uint8
}

// String returns the color as #rrggbb.
func (c RGB) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Standard colors used for default cells
var (
	Black     = RGB{0, 0, 0}
	LightGray = RGB{170, 170, 170}
	White     = RGB{255, 255, 255}
)

// Background is either an opaque RGB color or the transparent sentinel.
// The zero value is opaque black.
type Background struct {
	RGB
	transparent bool
}

// Transparent is the background value meaning "keep whatever is beneath".
// It compares unequal to every opaque color, black included.
var Transparent = Background{transparent: true}

// Opaque returns a solid background of the given color.
func Opaque(c RGB) Background {
	return Background{RGB: c}
}

// IsTransparent reports whether b is the transparent sentinel.
func (b Background) IsTransparent() bool {
	return b.transparent
}

// String returns "transparent" or the #rrggbb form.
func (b Background) String() string {
	if b.transparent {
		return "transparent"
	}
	return b.RGB.String()
}

// Cell represents a single character position on a screen.
type Cell struct {
	Ch rune
	FG RGB
	BG Background
}

// DefaultCell is the cell every position of a fresh output grid holds.
var DefaultCell = Cell{Ch: ' ', FG: LightGray, BG: Opaque(Black)}

// BlankCell is a space over a transparent background.
var BlankCell = Cell{Ch: ' ', FG: LightGray, BG: Transparent}

// holeCell marks a position a text layer never wrote to.
var holeCell = Cell{BG: Transparent}

// NewCell creates a cell with the given glyph and colors
func NewCell(ch rune, fg RGB, bg Background) Cell {
	return Cell{Ch: ch, FG: fg, BG: bg}
}

// IsHole returns true if nothing was ever painted into the cell.
func (c Cell) IsHole() bool {
	return c == holeCell
}
