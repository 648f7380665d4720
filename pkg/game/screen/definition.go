package screen

import (
	"ansiscreen/pkg/engine/grid"
	"ansiscreen/pkg/engine/paint"
	"ansiscreen/pkg/game/layer"
)

// BackgroundID is the id given to the single grid of a legacy definition.
const BackgroundID = "background"

// Definition describes a screen to create. Either Grid (legacy, one drawn
// layer) or Layers or both may be set; Grid always ends up at the bottom.
type Definition struct {
	Version string

	// Width and Height must be 0 (unspecified) or match the grid size.
	Width  int
	Height int

	Grid   *grid.Grid
	Layers []LayerDef
}

// LayerDef describes one layer in definition order (first = bottom).
type LayerDef struct {
	Kind    layer.Kind
	ID      string
	Name    string
	Visible bool
	Tags    []string

	// Drawn layers
	Frames []*grid.Grid

	// Text layers
	Text   string
	Bounds grid.Rect
	FG     *grid.RGB
	Colors []grid.RGB
	Align  paint.Alignment
}
