// Package renderer defines display backends for composited grids.
package renderer

import (
	"ansiscreen/pkg/engine/grid"
)

// Glyph returns the rune to draw for c. Unwritten and control runes draw as
// spaces.
func Glyph(c grid.Cell) rune {
	if c.Ch < ' ' || c.Ch == 0x7f {
		return ' '
	}
	return c.Ch
}

// Style is the resolved look of one cell on a display.
type Style struct {
	FG grid.RGB
	BG grid.RGB

	// DefaultBG is set when the cell's background is transparent and the
	// display should show its own background.
	DefaultBG bool
}

// CellStyle resolves the colors a backend paints for c.
func CellStyle(c grid.Cell) Style {
	if c.BG.IsTransparent() {
		return Style{FG: c.FG, DefaultBG: true}
	}
	return Style{FG: c.FG, BG: c.BG.RGB}
}

// Run is a maximal sequence of same-styled cells within one row.
type Run struct {
	Col   int
	Style Style
	Text  string
}

// Runs splits a row into runs of identical style.
func Runs(cells []grid.Cell) []Run {
	var runs []Run
	var text []rune
	start := 0
	var cur Style

	for col, c := range cells {
		s := CellStyle(c)
		if col > 0 && s != cur {
			runs = append(runs, Run{Col: start, Style: cur, Text: string(text)})
			text = text[:0]
			start = col
		}
		cur = s
		text = append(text, Glyph(c))
	}
	if len(text) > 0 {
		runs = append(runs, Run{Col: start, Style: cur, Text: string(text)})
	}
	return runs
}
