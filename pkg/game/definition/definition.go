// Package definition decodes JSON screen definitions.
//
// A definition is either a single legacy grid:
//
//	{"version": "1", "width": 80, "height": 25, "grid": [[cell, ...], ...]}
//
// or a layers mapping keyed by definition order (an array is accepted too):
//
//	{"layers": {"0": {"type": "drawn", "id": "bg", "frames": [grid, ...]},
//	            "1": {"type": "text", "id": "title", "text": "Hello",
//	                  "bounds": {"r0": 0, "c0": 0, "r1": 0, "c1": 79},
//	                  "fg": [255, 255, 255], "align": "center",
//	                  "tags": {"0": "hud"}}}}
//
// A grid is a list of rows; a row is either a list of cells or a plain
// string. A cell is {"ch": "x", "fg": [r, g, b], "bg": [r, g, b] | null},
// where a null or missing bg is transparent.
package definition

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"unicode/utf8"

	"github.com/tidwall/gjson"

	"ansiscreen/pkg/engine/grid"
	"ansiscreen/pkg/engine/paint"
	"ansiscreen/pkg/game/layer"
	"ansiscreen/pkg/game/screen"
)

// ErrInvalidDefinition is returned for malformed input.
var ErrInvalidDefinition = screen.ErrInvalidDefinition

// ParseFile reads and decodes a definition file.
func ParseFile(path string) (screen.Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return screen.Definition{}, err
	}
	return Parse(data)
}

// Parse decodes a definition.
func Parse(data []byte) (screen.Definition, error) {
	var def screen.Definition
	if !gjson.ValidBytes(data) {
		return def, invalid("not valid JSON")
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return def, invalid("top level must be an object")
	}

	def.Version = root.Get("version").String()
	if w := root.Get("width"); w.Exists() {
		def.Width = int(w.Int())
	}
	if h := root.Get("height"); h.Exists() {
		def.Height = int(h.Int())
	}
	if (def.Width != 0 && def.Width != grid.Width) || (def.Height != 0 && def.Height != grid.Height) {
		return def, invalid("size %dx%d, want %dx%d", def.Width, def.Height, grid.Width, grid.Height)
	}

	if g := root.Get("grid"); g.Exists() {
		parsed, err := parseGrid(g, "grid")
		if err != nil {
			return def, err
		}
		def.Grid = parsed
	}

	if layers := root.Get("layers"); layers.Exists() {
		entries, err := ordered(layers, "layers")
		if err != nil {
			return def, err
		}
		for i, entry := range entries {
			ld, err := parseLayer(entry, fmt.Sprintf("layers[%d]", i))
			if err != nil {
				return def, err
			}
			def.Layers = append(def.Layers, ld)
		}
	}

	if def.Grid == nil && len(def.Layers) == 0 {
		return def, invalid("neither grid nor layers given")
	}
	return def, nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidDefinition, fmt.Sprintf(format, args...))
}

// ordered returns the values of an array, or of an object keyed by integers
// sorted by key.
func ordered(r gjson.Result, path string) ([]gjson.Result, error) {
	if r.IsArray() {
		return r.Array(), nil
	}
	if !r.IsObject() {
		return nil, invalid("%s must be an object or an array", path)
	}

	type keyed struct {
		n int
		v gjson.Result
	}
	var entries []keyed
	var err error
	r.ForEach(func(key, value gjson.Result) bool {
		n, convErr := strconv.Atoi(key.String())
		if convErr != nil {
			err = invalid("%s key %q is not an index", path, key.String())
			return false
		}
		entries = append(entries, keyed{n, value})
		return true
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(entries, func(i, j int) bool { return entries[i].n < entries[j].n })
	out := make([]gjson.Result, len(entries))
	for i, e := range entries {
		out[i] = e.v
	}
	return out, nil
}

func parseLayer(r gjson.Result, path string) (screen.LayerDef, error) {
	var ld screen.LayerDef
	if !r.IsObject() {
		return ld, invalid("%s must be an object", path)
	}

	ld.ID = r.Get("id").String()
	ld.Name = r.Get("name").String()
	ld.Visible = true
	if v := r.Get("visible"); v.Exists() {
		ld.Visible = v.Bool()
	}
	if t := r.Get("tags"); t.Exists() {
		tags, err := ordered(t, path+".tags")
		if err != nil {
			return ld, err
		}
		for _, tag := range tags {
			if tag.Type != gjson.String {
				return ld, invalid("%s.tags holds a non-string", path)
			}
			ld.Tags = append(ld.Tags, tag.String())
		}
	}

	switch kind := r.Get("type").String(); kind {
	case "drawn":
		ld.Kind = layer.KindDrawn
		return ld, parseFrames(r, path, &ld)
	case "text":
		ld.Kind = layer.KindText
		return ld, parseText(r, path, &ld)
	default:
		return ld, invalid("%s has unknown type %q", path, kind)
	}
}

func parseFrames(r gjson.Result, path string, ld *screen.LayerDef) error {
	if frames := r.Get("frames"); frames.Exists() {
		if !frames.IsArray() {
			return invalid("%s.frames must be an array", path)
		}
		for i, f := range frames.Array() {
			g, err := parseGrid(f, fmt.Sprintf("%s.frames[%d]", path, i))
			if err != nil {
				return err
			}
			ld.Frames = append(ld.Frames, g)
		}
		return nil
	}
	if g := r.Get("grid"); g.Exists() {
		parsed, err := parseGrid(g, path+".grid")
		if err != nil {
			return err
		}
		ld.Frames = []*grid.Grid{parsed}
	}
	return nil
}

func parseText(r gjson.Result, path string, ld *screen.LayerDef) error {
	ld.Text = r.Get("text").String()

	ld.Bounds = grid.Full
	if b := r.Get("bounds"); b.Exists() {
		bounds, err := parseBounds(b, path+".bounds")
		if err != nil {
			return err
		}
		ld.Bounds = bounds
	}

	if fg := r.Get("fg"); fg.Exists() && fg.Type != gjson.Null {
		c, err := parseRGB(fg, path+".fg")
		if err != nil {
			return err
		}
		ld.FG = &c
	}

	if colors := r.Get("colors"); colors.Exists() && colors.Type != gjson.Null {
		if !colors.IsArray() {
			return invalid("%s.colors must be an array", path)
		}
		ld.Colors = make([]grid.RGB, 0, len(colors.Array()))
		for i, c := range colors.Array() {
			rgb, err := parseRGB(c, fmt.Sprintf("%s.colors[%d]", path, i))
			if err != nil {
				return err
			}
			ld.Colors = append(ld.Colors, rgb)
		}
	}

	align, err := paint.ParseAlignment(r.Get("align").String())
	if err != nil {
		return invalid("%s: %v", path, err)
	}
	ld.Align = align
	return nil
}

func parseBounds(r gjson.Result, path string) (grid.Rect, error) {
	var vals [4]int
	switch {
	case r.IsArray():
		arr := r.Array()
		if len(arr) != 4 {
			return grid.Rect{}, invalid("%s must hold 4 numbers", path)
		}
		for i, v := range arr {
			if v.Type != gjson.Number {
				return grid.Rect{}, invalid("%s[%d] is not a number", path, i)
			}
			vals[i] = int(v.Int())
		}
	case r.IsObject():
		for i, key := range []string{"r0", "c0", "r1", "c1"} {
			v := r.Get(key)
			if v.Type != gjson.Number {
				return grid.Rect{}, invalid("%s.%s is not a number", path, key)
			}
			vals[i] = int(v.Int())
		}
	default:
		return grid.Rect{}, invalid("%s must be an object or an array", path)
	}
	rect := grid.Rect{R0: vals[0], C0: vals[1], R1: vals[2], C1: vals[3]}
	if !rect.Within(grid.Full) {
		return grid.Rect{}, invalid("%s %+v extends past the %dx%d grid", path, rect, grid.Width, grid.Height)
	}
	return rect, nil
}

// parseRGB decodes a [r, g, b] array of integers in 0..255.
func parseRGB(r gjson.Result, path string) (grid.RGB, error) {
	if !r.IsArray() {
		return grid.RGB{}, invalid("%s must be an [r, g, b] array", path)
	}
	arr := r.Array()
	if len(arr) != 3 {
		return grid.RGB{}, invalid("%s has %d components, want 3", path, len(arr))
	}
	var c [3]uint8
	for i, v := range arr {
		if v.Type != gjson.Number || v.Num != float64(int64(v.Num)) || v.Num < 0 || v.Num > 255 {
			return grid.RGB{}, invalid("%s[%d] = %s is not an integer in 0..255", path, i, v.Raw)
		}
		c[i] = uint8(v.Num)
	}
	return grid.RGB{R: c[0], G: c[1], B: c[2]}, nil
}

// parseGrid decodes rows of cells. Positions not covered stay transparent.
func parseGrid(r gjson.Result, path string) (*grid.Grid, error) {
	if !r.IsArray() {
		return nil, invalid("%s must be an array of rows", path)
	}
	rows := r.Array()
	if len(rows) > grid.Height {
		return nil, invalid("%s has %d rows, max %d", path, len(rows), grid.Height)
	}

	g := grid.NewTransparent()
	for row, rr := range rows {
		rowPath := fmt.Sprintf("%s[%d]", path, row)
		switch {
		case rr.Type == gjson.String:
			s := rr.String()
			if n := utf8.RuneCountInString(s); n > grid.Width {
				return nil, invalid("%s has %d columns, max %d", rowPath, n, grid.Width)
			}
			col := 0
			for _, ch := range s {
				g.Set(row, col, grid.NewCell(ch, grid.DefaultCell.FG, grid.DefaultCell.BG))
				col++
			}
		case rr.IsArray():
			cells := rr.Array()
			if len(cells) > grid.Width {
				return nil, invalid("%s has %d columns, max %d", rowPath, len(cells), grid.Width)
			}
			for col, cr := range cells {
				if cr.Type == gjson.Null {
					continue
				}
				c, err := parseCell(cr, fmt.Sprintf("%s[%d]", rowPath, col))
				if err != nil {
					return nil, err
				}
				g.Set(row, col, c)
			}
		default:
			return nil, invalid("%s must be a string or an array of cells", rowPath)
		}
	}
	return g, nil
}

func parseCell(r gjson.Result, path string) (grid.Cell, error) {
	if !r.IsObject() {
		return grid.Cell{}, invalid("%s must be an object", path)
	}
	c := grid.BlankCell

	if ch := r.Get("ch").String(); ch != "" {
		first, _ := utf8.DecodeRuneInString(ch)
		c.Ch = first
	}
	if fg := r.Get("fg"); fg.Exists() {
		rgb, err := parseRGB(fg, path+".fg")
		if err != nil {
			return grid.Cell{}, err
		}
		c.FG = rgb
	}
	if bg := r.Get("bg"); bg.Exists() && bg.Type != gjson.Null {
		rgb, err := parseRGB(bg, path+".bg")
		if err != nil {
			return grid.Cell{}, err
		}
		c.BG = grid.Opaque(rgb)
	}
	return c, nil
}
