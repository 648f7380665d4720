package ebiten

import (
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"ansiscreen/pkg/engine/grid"
)

// Callbacks connect the window loop to the caller. Returning
// renderer.ErrQuit from either ends the loop cleanly.
type Callbacks struct {
	// Tick runs once per ebiten update, at the configured TPS.
	Tick func() error

	// Key runs for every key pressed since the previous update, with the
	// same codes the terminal reader produces ("q", "space", "arrow_left").
	Key func(code string) error
}

// EbitenRenderer draws grids into a window of fixed-size cells.
type EbitenRenderer struct {
	title string

	cellWidth  int
	cellHeight int
	fontSize   float64

	monoFontSource *text.GoTextFaceSource
	monoFace       *text.GoTextFace

	callbacks Callbacks

	frameMutex sync.Mutex
	frame      *grid.Grid

	// keys is reused between updates to avoid allocating
	keys []ebiten.Key
}
