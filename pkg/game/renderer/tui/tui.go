// Package tui presents composited grids on an ANSI truecolor terminal.
package tui

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/gookit/color"

	"ansiscreen/pkg/engine/grid"
	"ansiscreen/pkg/game/renderer"
)

// Control sequences
const (
	seqClear      = "\x1b[2J"
	seqHome       = "\x1b[H"
	seqHideCursor = "\x1b[?25l"
	seqShowCursor = "\x1b[?25h"
	seqReset      = "\x1b[0m"
)

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	out *bufio.Writer

	// last is the most recently presented grid; identical frames are skipped
	last *grid.Grid
}

// New creates a TUI renderer writing to w, or stdout if w is nil.
func New(w io.Writer) *TUIRenderer {
	if w == nil {
		w = os.Stdout
	}
	return &TUIRenderer{out: bufio.NewWriter(w)}
}

// Init clears the screen and hides the cursor
func (t *TUIRenderer) Init() error {
	t.last = nil
	t.out.WriteString(seqClear + seqHome + seqHideCursor)
	return t.out.Flush()
}

// Present redraws the whole grid from the top-left corner. Rows end with
// CR LF so output stays aligned in raw mode.
func (t *TUIRenderer) Present(g *grid.Grid) error {
	if t.last != nil && t.last.Equal(g) {
		return nil
	}
	t.out.WriteString(seqHome)
	t.out.WriteString(Frame(g))
	t.last = g.Clone()
	return t.out.Flush()
}

// Close resets colors and shows the cursor again
func (t *TUIRenderer) Close() error {
	t.out.WriteString(seqReset + seqShowCursor + "\r\n")
	return t.out.Flush()
}

// Frame renders g as rows of colored text separated by CR LF.
func Frame(g *grid.Grid) string {
	var b strings.Builder
	for row := 0; row < g.Rows(); row++ {
		if row > 0 {
			b.WriteString("\r\n")
		}
		for _, run := range renderer.Runs(g.Row(row)) {
			b.WriteString(styleFor(run.Style).Sprint(run.Text))
		}
	}
	return b.String()
}

// styleFor returns the gookit style of a resolved cell style. A transparent
// background keeps the terminal's own background.
func styleFor(s renderer.Style) *color.RGBStyle {
	fg := color.RGB(s.FG.R, s.FG.G, s.FG.B)
	if s.DefaultBG {
		return color.NewRGBStyle(fg)
	}
	return color.NewRGBStyle(fg, color.RGB(s.BG.R, s.BG.G, s.BG.B, true))
}
