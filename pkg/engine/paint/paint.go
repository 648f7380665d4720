// Package paint lays text out inside a rectangle of a grid.
package paint

import (
	"fmt"
	"strings"
	"unicode"

	"ansiscreen/pkg/engine/grid"
	"ansiscreen/pkg/engine/layout"
)

// Alignment is the horizontal placement of each line inside its bounds.
type Alignment int

// Alignments
const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
	AlignJustify
)

// String returns the alignment name
func (a Alignment) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	case AlignJustify:
		return "justify"
	default:
		return "Unknown"
	}
}

// ParseAlignment converts a name to an Alignment. The empty string is left.
func ParseAlignment(s string) (Alignment, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "left":
		return AlignLeft, nil
	case "center", "centre":
		return AlignCenter, nil
	case "right":
		return AlignRight, nil
	case "justify":
		return AlignJustify, nil
	}
	return AlignLeft, fmt.Errorf("unknown alignment %q", s)
}

// Options controls how text is painted.
type Options struct {
	// Foreground is used for every glyph without a per-character color.
	Foreground grid.RGB

	// Colors, when non-nil, colors glyph i with Colors[raw offset of i].
	// Offsets past the end fall back to Foreground.
	Colors []grid.RGB

	Align Alignment
}

// Render paints text into a fresh grid in which every position outside the
// painted glyphs is a hole.
func Render(text string, bounds grid.Rect, opts Options) *grid.Grid {
	g := grid.NewClear()
	RenderInto(g, text, bounds, opts)
	return g
}

// RenderInto paints text into dst, wrapped to the width of bounds. Only the
// first bounds.Height() lines are painted; the rest are dropped. Cells
// outside bounds are never touched and painted cells get a transparent
// background. Returns the number of lines painted.
func RenderInto(dst *grid.Grid, text string, bounds grid.Rect, opts Options) int {
	if bounds.Empty() {
		return 0
	}
	width := bounds.Width()

	lines := layout.Lines(text, width)
	if len(lines) > bounds.Height() {
		lines = lines[:bounds.Height()]
	}

	justify := opts.Align == AlignJustify
	for i, line := range lines {
		row := bounds.R0 + i
		glyphs := line.Glyphs(width, justify)

		offset := 0
		if len(glyphs) > 0 {
			offset = alignOffset(opts.Align, width, glyphs[len(glyphs)-1].Col+1)
		}

		for _, gl := range glyphs {
			col := bounds.C0 + offset + gl.Col
			if !bounds.Contains(row, col) {
				continue
			}
			dst.Set(row, col, grid.NewCell(displayRune(gl.Rune), colorFor(opts, gl.Raw), grid.Transparent))
		}
	}

	return len(lines)
}

// alignOffset returns the column shift for a line of length n.
func alignOffset(a Alignment, width, n int) int {
	switch a {
	case AlignCenter:
		return (width - n) / 2
	case AlignRight:
		return width - n
	default:
		return 0
	}
}

func colorFor(opts Options, raw int) grid.RGB {
	if raw >= 0 && raw < len(opts.Colors) {
		return opts.Colors[raw]
	}
	return opts.Foreground
}

// displayRune maps control and whitespace runes to a plain space.
func displayRune(r rune) rune {
	if unicode.IsSpace(r) || unicode.IsControl(r) {
		return ' '
	}
	return r
}
