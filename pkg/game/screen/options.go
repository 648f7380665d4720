package screen

import (
	"go.uber.org/zap"

	"ansiscreen/pkg/engine/grid"
	"ansiscreen/pkg/engine/markup"
)

// Translator localises a label before it is laid out.
type Translator func(str string, vars ...interface{}) string

// Option configures a Controller during creation.
type Option func(*Controller)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.log = l
		}
	}
}

// WithPalette sets the color names available to label markup.
func WithPalette(p markup.Palette) Option {
	return func(c *Controller) {
		if p != nil {
			c.palette = p
		}
	}
}

// WithTranslator sets the label translator. The default is gotext.Get.
func WithTranslator(t Translator) Option {
	return func(c *Controller) {
		if t != nil {
			c.translate = t
		}
	}
}

// WithDefaultForeground sets the glyph color of text layers defined without one.
func WithDefaultForeground(fg grid.RGB) Option {
	return func(c *Controller) {
		c.defaultFG = fg
	}
}
