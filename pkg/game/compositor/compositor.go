// Package compositor merges the visible layers of a screen into one grid.
package compositor

import (
	"ansiscreen/pkg/engine/grid"
	"ansiscreen/pkg/game/layer"
)

// Composite starts from an all-default grid and applies every visible layer
// bottom to top. The result depends only on the layers' current state.
func Composite(layers []*layer.Layer) *grid.Grid {
	out := grid.New()
	CompositeInto(out, layers)
	return out
}

// CompositeInto applies visible layers onto dst without resetting it first.
func CompositeInto(dst *grid.Grid, layers []*layer.Layer) {
	for _, l := range layers {
		if !l.Visible {
			continue
		}
		switch c := l.Content.(type) {
		case *layer.Drawn:
			overlayDrawn(dst, c.Frame())
		case *layer.Text:
			overlayText(dst, c.Rendered())
		}
	}
}

// overlayDrawn copies every cell whose background is opaque. Cells with a
// transparent background are skipped entirely.
func overlayDrawn(dst, src *grid.Grid) {
	src.ForEachCell(func(row, col int, c grid.Cell) {
		if c.BG.IsTransparent() {
			return
		}
		dst.Set(row, col, c)
	})
}

// overlayText copies written glyphs. Holes are skipped; a glyph over a
// transparent background takes the glyph and foreground but keeps the
// background beneath.
func overlayText(dst, src *grid.Grid) {
	src.ForEachCell(func(row, col int, c grid.Cell) {
		if c.IsHole() {
			return
		}
		if c.BG.IsTransparent() {
			below := dst.At(row, col)
			c.BG = below.BG
		}
		dst.Set(row, col, c)
	})
}
