package devtools

import (
	"fmt"
	"io"
	"strings"

	"ansiscreen/pkg/engine/grid"
	"ansiscreen/pkg/game/layer"
)

// DumpText returns the glyphs of g as one line per row, trailing spaces kept.
func DumpText(g *grid.Grid) string {
	var b strings.Builder
	b.Grow(g.Rows() * (g.Cols() + 1))
	for row := 0; row < g.Rows(); row++ {
		for _, c := range g.Row(row) {
			ch := c.Ch
			if ch == 0 {
				ch = ' '
			}
			b.WriteRune(ch)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// WriteDump writes a debug dump of one screen: metadata, the layer list and
// the composited glyphs framed by a ruler.
func WriteDump(w io.Writer, screenID int, g *grid.Grid, layers []layer.Info) error {
	var b strings.Builder

	fmt.Fprintln(&b, "=== SCREEN DUMP ===")
	fmt.Fprintln(&b, "")
	fmt.Fprintln(&b, "--- Metadata ---")
	fmt.Fprintf(&b, "screen: %d\n", screenID)
	fmt.Fprintf(&b, "grid_rows: %d\n", g.Rows())
	fmt.Fprintf(&b, "grid_cols: %d\n", g.Cols())
	fmt.Fprintf(&b, "layers: %d\n", len(layers))
	fmt.Fprintln(&b, "")

	fmt.Fprintln(&b, "--- Layers (bottom to top) ---")
	for i, l := range layers {
		vis := "hidden"
		if l.Visible {
			vis = "visible"
		}
		fmt.Fprintf(&b, "%d: id=%s name=%q type=%s %s tags=[%s]",
			i, l.ID, l.Name, l.Type, vis, strings.Join(l.Tags, ","))
		if l.Frames > 0 {
			fmt.Fprintf(&b, " frames=%d", l.Frames)
		}
		fmt.Fprintln(&b)
	}
	fmt.Fprintln(&b, "")

	fmt.Fprintln(&b, "--- Composite ---")
	ruler := "+" + strings.Repeat("-", g.Cols()) + "+"
	fmt.Fprintln(&b, ruler)
	for _, line := range strings.Split(strings.TrimSuffix(DumpText(g), "\n"), "\n") {
		fmt.Fprintf(&b, "|%s|\n", line)
	}
	fmt.Fprintln(&b, ruler)

	_, err := io.WriteString(w, b.String())
	return err
}
