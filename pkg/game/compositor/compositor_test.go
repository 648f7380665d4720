package compositor

import (
	"testing"

	"ansiscreen/pkg/engine/grid"
	"ansiscreen/pkg/engine/paint"
	"ansiscreen/pkg/game/layer"
)

var (
	red  = grid.RGB{R: 255}
	blue = grid.RGB{B: 255}
)

// solidFrame fills a drawn frame with ch over an opaque bg.
func solidFrame(ch rune, bg grid.RGB) *grid.Grid {
	return grid.Filled(grid.NewCell(ch, grid.White, grid.Opaque(bg)))
}

func TestComposite_Empty(t *testing.T) {
	if got := Composite(nil); !got.Equal(grid.New()) {
		t.Error("Composite(nil) is not an all-default grid")
	}
}

func TestComposite_Idempotent(t *testing.T) {
	layers := []*layer.Layer{
		layer.New("bg", "bg", true, nil, layer.NewDrawn(solidFrame('#', blue))),
		layer.New("t", "t", true, nil, layer.NewText("hello there", grid.Rect{R0: 1, C0: 1, R1: 3, C1: 8}, red, nil, paint.AlignCenter)),
	}
	first := Composite(layers)
	second := Composite(layers)
	if !first.Equal(second) {
		t.Error("two composites without mutation differ")
	}
}

func TestComposite_ZOrder(t *testing.T) {
	bottom := layer.New("a", "a", true, nil, layer.NewDrawn(solidFrame('a', blue)))
	top := layer.New("b", "b", true, nil, layer.NewDrawn(solidFrame('b', red)))

	if got := Composite([]*layer.Layer{bottom, top}).At(0, 0).Ch; got != 'b' {
		t.Errorf("top layer glyph = %q, want 'b'", got)
	}
	if got := Composite([]*layer.Layer{top, bottom}).At(0, 0).Ch; got != 'a' {
		t.Errorf("reordered glyph = %q, want 'a'", got)
	}
}

func TestComposite_InvisibleSkipped(t *testing.T) {
	hidden := layer.New("h", "h", false, nil, layer.NewDrawn(solidFrame('h', red)))
	if got := Composite([]*layer.Layer{hidden}); !got.Equal(grid.New()) {
		t.Error("invisible layer contributed to the composite")
	}
}

func TestComposite_DrawnTransparency(t *testing.T) {
	frame := grid.NewTransparent()
	frame.Set(2, 2, grid.NewCell('x', red, grid.Opaque(blue)))
	// a glyph over a transparent background is still skipped for drawn layers
	frame.Set(2, 3, grid.NewCell('y', red, grid.Transparent))

	base := layer.New("base", "base", true, nil, layer.NewDrawn(solidFrame('.', grid.Black)))
	over := layer.New("over", "over", true, nil, layer.NewDrawn(frame))
	out := Composite([]*layer.Layer{base, over})

	if c := out.At(2, 2); c.Ch != 'x' || c.BG != grid.Opaque(blue) {
		t.Errorf("(2,2) = %+v, want opaque x", c)
	}
	if c := out.At(2, 3); c.Ch != '.' {
		t.Errorf("(2,3) = %q, want base '.' untouched", c.Ch)
	}
}

func TestComposite_TextOverDrawnKeepsUnwrittenCells(t *testing.T) {
	base := layer.New("art", "art", true, nil, layer.NewDrawn(solidFrame('#', blue)))
	bounds := grid.Rect{R0: 0, C0: 0, R1: 1, C1: 9}
	text := layer.New("t", "t", true, nil, layer.NewText("Hi", bounds, red, nil, paint.AlignCenter))

	out := Composite([]*layer.Layer{base, text})
	out.ForEachCell(func(row, col int, c grid.Cell) {
		switch {
		case row == 0 && col == 4:
			if c.Ch != 'H' || c.FG != red || c.BG != grid.Opaque(blue) {
				t.Errorf("(0,4) = %+v, want 'H' red over blue", c)
			}
		case row == 0 && col == 5:
			if c.Ch != 'i' {
				t.Errorf("(0,5) = %q, want 'i'", c.Ch)
			}
		default:
			if c.Ch != '#' {
				t.Errorf("(%d,%d) = %q, want drawn '#' preserved", row, col, c.Ch)
			}
		}
	})
}

func TestComposite_CurrentFrame(t *testing.T) {
	d := layer.NewDrawn(solidFrame('0', blue), solidFrame('1', blue))
	layers := []*layer.Layer{layer.New("anim", "anim", true, nil, d)}

	if got := Composite(layers).At(0, 0).Ch; got != '0' {
		t.Errorf("frame 0 glyph = %q, want '0'", got)
	}
	d.Advance()
	if got := Composite(layers).At(0, 0).Ch; got != '1' {
		t.Errorf("frame 1 glyph = %q, want '1'", got)
	}
}
