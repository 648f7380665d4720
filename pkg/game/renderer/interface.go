package renderer

import (
	"errors"

	"ansiscreen/pkg/engine/grid"
)

// ErrQuit is returned by input and tick callbacks to end a display loop.
var ErrQuit = errors.New("quit")

// Renderer defines the interface for display backends.
// Implementations include the TUI (terminal) and Ebiten (window).
type Renderer interface {
	// Init prepares the display (screen clear, window, fonts, etc.)
	Init() error

	// Present shows a composited grid. Backends may draw it immediately or
	// keep it until their next frame.
	Present(g *grid.Grid) error

	// Close restores whatever Init changed
	Close() error
}

// Current holds the active renderer instance
var Current Renderer

// SetRenderer sets the active renderer
func SetRenderer(r Renderer) {
	Current = r
}

// Init initializes the current renderer
func Init() error {
	if Current != nil {
		return Current.Init()
	}
	return nil
}

// Present shows g on the current renderer
func Present(g *grid.Grid) error {
	if Current != nil {
		return Current.Present(g)
	}
	return nil
}

// Close closes the current renderer
func Close() error {
	if Current != nil {
		return Current.Close()
	}
	return nil
}
