package ebiten

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"

	"ansiscreen/pkg/engine/grid"
	"ansiscreen/pkg/game/renderer"
)

// New creates an Ebiten renderer with a window title
func New(title string) *EbitenRenderer {
	return &EbitenRenderer{
		title:      title,
		cellWidth:  defaultCellWidth,
		cellHeight: defaultCellHeight,
		fontSize:   defaultFontSize,
	}
}

// Init loads the font and sizes the window to the grid
func (e *EbitenRenderer) Init() error {
	if err := e.loadFonts(); err != nil {
		return err
	}
	ebiten.SetWindowTitle(e.title)
	ebiten.SetWindowSize(grid.Width*e.cellWidth, grid.Height*e.cellHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return nil
}

// Present keeps a copy of g for the next Draw
func (e *EbitenRenderer) Present(g *grid.Grid) error {
	frame := g.Clone()
	e.frameMutex.Lock()
	e.frame = frame
	e.frameMutex.Unlock()
	return nil
}

// Close is a no-op; the window closes when Run returns
func (e *EbitenRenderer) Close() error {
	return nil
}

// Update handles input then advances the caller's state (Ebiten interface)
func (e *EbitenRenderer) Update() error {
	if err := e.handleInput(); err != nil {
		return quitOr(err)
	}
	if e.callbacks.Tick != nil {
		if err := e.callbacks.Tick(); err != nil {
			return quitOr(err)
		}
	}
	return nil
}

// Run opens the window and blocks until it is closed or a callback returns
// renderer.ErrQuit. Update runs fps times per second.
func (e *EbitenRenderer) Run(fps int, cb Callbacks) error {
	e.callbacks = cb
	ebiten.SetTPS(fps)
	if err := ebiten.RunGame(e); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

// quitOr maps renderer.ErrQuit to ebiten's clean termination.
func quitOr(err error) error {
	if errors.Is(err, renderer.ErrQuit) {
		return ebiten.Termination
	}
	return err
}

var _ renderer.Renderer = (*EbitenRenderer)(nil)
