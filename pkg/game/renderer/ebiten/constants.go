// Package ebiten provides an Ebiten-based window for composited grids.
package ebiten

import "image/color"

// Default cell metrics for Go Mono at the default font size
const (
	defaultFontSize   = 16.0
	defaultCellWidth  = 10
	defaultCellHeight = 20
)

// colorWindowBackground shows through cells with a transparent background
var colorWindowBackground = color.RGBA{0, 0, 0, 255}
