package ebiten

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gomono"
)

// loadFonts parses the embedded Go Mono font once.
func (e *EbitenRenderer) loadFonts() error {
	if e.monoFontSource != nil {
		return nil
	}
	src, err := text.NewGoTextFaceSource(bytes.NewReader(gomono.TTF))
	if err != nil {
		return fmt.Errorf("load mono font: %w", err)
	}
	e.monoFontSource = src
	return nil
}

// getMonoFontFace returns a cached monospace font face for cell glyphs
func (e *EbitenRenderer) getMonoFontFace() *text.GoTextFace {
	if e.monoFace == nil || e.monoFace.Size != e.fontSize {
		e.monoFace = &text.GoTextFace{
			Source: e.monoFontSource,
			Size:   e.fontSize,
		}
	}
	return e.monoFace
}
