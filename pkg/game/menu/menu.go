// Package menu builds read-only overlay screens, such as the controls help
// shown by the player.
package menu

import (
	"strings"

	"ansiscreen/pkg/engine/grid"
	"ansiscreen/pkg/engine/paint"
	"ansiscreen/pkg/game/layer"
	"ansiscreen/pkg/game/screen"
)

// Item represents a single line of a menu.
type Item interface {
	// Label returns the display text. It may hold [color=NAME] markup.
	Label() string
}

// Menu is a titled list of items with a line of instructions underneath.
type Menu struct {
	Title        string
	Items        []Item
	Instructions string
}

// Tag is carried by every layer of a menu screen.
const Tag = "menu"

// Panel geometry, inclusive.
var (
	panel       = grid.Rect{R0: 3, C0: 14, R1: 21, C1: 65}
	titleRow    = grid.Rect{R0: panel.R0 + 1, C0: panel.C0 + 1, R1: panel.R0 + 1, C1: panel.C1 - 1}
	itemsArea   = grid.Rect{R0: panel.R0 + 3, C0: panel.C0 + 3, R1: panel.R1 - 3, C1: panel.C1 - 3}
	instructRow = grid.Rect{R0: panel.R1 - 1, C0: panel.C0 + 1, R1: panel.R1 - 1, C1: panel.C1 - 1}
	panelFG     = grid.White
	panelBG     = grid.RGB{R: 0, G: 0, B: 170}
	titleFG     = grid.RGB{R: 255, G: 255, B: 85}
	instructFG  = grid.RGB{R: 85, G: 255, B: 255}
)

// Definition returns a screen definition drawing the menu as a boxed panel
// over a cleared screen.
func (m Menu) Definition() screen.Definition {
	labels := make([]string, len(m.Items))
	for i, item := range m.Items {
		labels[i] = item.Label()
	}

	title, instruct := titleFG, instructFG
	tags := []string{Tag}
	return screen.Definition{
		Layers: []screen.LayerDef{
			{Kind: layer.KindDrawn, ID: "panel", Name: "Panel", Visible: true, Tags: tags, Frames: []*grid.Grid{Panel()}},
			{Kind: layer.KindText, ID: "title", Name: "Title", Visible: true, Tags: tags, Text: m.Title, Bounds: titleRow, FG: &title, Align: paint.AlignCenter},
			{Kind: layer.KindText, ID: "items", Name: "Items", Visible: true, Tags: tags, Text: strings.Join(labels, "\n"), Bounds: itemsArea, Align: paint.AlignLeft},
			{Kind: layer.KindText, ID: "instructions", Name: "Instructions", Visible: true, Tags: tags, Text: m.Instructions, Bounds: instructRow, FG: &instruct, Align: paint.AlignCenter},
		},
	}
}

// Panel draws the menu box: a single-line border around a filled interior.
// Cells outside the box stay transparent.
func Panel() *grid.Grid {
	g := grid.NewTransparent()
	bg := grid.Opaque(panelBG)
	for row := panel.R0; row <= panel.R1; row++ {
		for col := panel.C0; col <= panel.C1; col++ {
			ch := ' '
			top, bottom := row == panel.R0, row == panel.R1
			left, right := col == panel.C0, col == panel.C1
			switch {
			case (top || bottom) && (left || right):
				ch = '+'
			case top || bottom:
				ch = '-'
			case left || right:
				ch = '|'
			}
			g.Set(row, col, grid.NewCell(ch, panelFG, bg))
		}
	}
	return g
}
