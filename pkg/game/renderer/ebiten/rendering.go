package ebiten

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"ansiscreen/pkg/engine/grid"
	"ansiscreen/pkg/game/renderer"
)

// Draw renders the last presented grid (Ebiten interface)
func (e *EbitenRenderer) Draw(screen *ebiten.Image) {
	screen.Fill(colorWindowBackground)

	e.frameMutex.Lock()
	frame := e.frame
	e.frameMutex.Unlock()
	if frame == nil || e.monoFontSource == nil {
		return
	}

	face := e.getMonoFontFace()
	for row := 0; row < frame.Rows(); row++ {
		y := row * e.cellHeight
		for _, run := range renderer.Runs(frame.Row(row)) {
			x := run.Col * e.cellWidth
			w := len([]rune(run.Text)) * e.cellWidth

			if !run.Style.DefaultBG {
				rect := image.Rect(x, y, x+w, y+e.cellHeight)
				screen.SubImage(rect).(*ebiten.Image).Fill(toRGBA(run.Style.BG))
			}
			e.drawRun(screen, run, x, y, face)
		}
	}
}

// drawRun draws each glyph of a run in its own cell so wide or missing
// glyphs never shift the columns that follow.
func (e *EbitenRenderer) drawRun(screen *ebiten.Image, run renderer.Run, x, y int, face *text.GoTextFace) {
	fg := toRGBA(run.Style.FG)
	col := 0
	for _, ch := range run.Text {
		if ch != ' ' {
			op := &text.DrawOptions{}
			// text/v2 Draw uses top-left as the origin point
			op.GeoM.Translate(float64(x+col*e.cellWidth), float64(y))
			op.ColorScale.ScaleWithColor(fg)
			text.Draw(screen, string(ch), face, op)
		}
		col++
	}
}

// Layout returns the logical screen size: one cell per grid position
func (e *EbitenRenderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return grid.Width * e.cellWidth, grid.Height * e.cellHeight
}

func toRGBA(c grid.RGB) color.RGBA {
	return color.RGBA{c.R, c.G, c.B, 255}
}
