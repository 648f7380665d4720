package layer

import (
	"errors"
	"reflect"
	"testing"

	"ansiscreen/pkg/engine/grid"
	"ansiscreen/pkg/engine/paint"
)

func textLayer(id, name string, tags ...string) *Layer {
	content := NewText("label", grid.Rect{R0: 0, C0: 0, R1: 0, C1: 9}, grid.White, nil, paint.AlignLeft)
	return New(id, name, true, tags, content)
}

func drawnLayer(id, name string, tags ...string) *Layer {
	return New(id, name, true, tags, NewDrawn(grid.NewTransparent()))
}

func mustAdd(t *testing.T, r *Registry, layers ...*Layer) {
	t.Helper()
	for _, l := range layers {
		if err := r.Add(l); err != nil {
			t.Fatalf("Add(%q) error = %v", l.ID, err)
		}
	}
}

func ids(layers []*Layer) []string {
	out := make([]string, len(layers))
	for i, l := range layers {
		out[i] = l.ID
	}
	return out
}

func TestResolve_IDNameTag(t *testing.T) {
	r := NewRegistry()
	mustAdd(t, r, textLayer("text1", "Direction", "direction"))

	for _, ident := range []string{"text1", "Direction", "direction"} {
		t.Run(ident, func(t *testing.T) {
			got, err := r.Resolve(ident)
			if err != nil {
				t.Fatalf("Resolve(%q) error = %v", ident, err)
			}
			if want := []string{"text1"}; !reflect.DeepEqual(ids(got), want) {
				t.Errorf("Resolve(%q) = %v, want %v", ident, ids(got), want)
			}
		})
	}
}

func TestResolve_Errors(t *testing.T) {
	r := NewRegistry()
	mustAdd(t, r, textLayer("text1", "Direction", "direction"))

	if _, err := r.Resolve(""); !errors.Is(err, ErrInvalidIdentifier) {
		t.Errorf("Resolve(\"\") error = %v, want ErrInvalidIdentifier", err)
	}
	if _, err := r.Resolve("nope"); !errors.Is(err, ErrLayerNotFound) {
		t.Errorf("Resolve(nope) error = %v, want ErrLayerNotFound", err)
	}
}

func TestResolve_FirstRuleWins(t *testing.T) {
	r := NewRegistry()
	mustAdd(t, r,
		drawnLayer("bg", "hud", "hud"),
		textLayer("hud", "Title"),
		textLayer("a", "hud"),
		textLayer("b", "other", "hud"),
	)

	// id beats name and tag
	got, err := r.Resolve("hud")
	if err != nil {
		t.Fatalf("Resolve(hud) error = %v", err)
	}
	if want := []string{"hud"}; !reflect.DeepEqual(ids(got), want) {
		t.Errorf("Resolve(hud) = %v, want %v", ids(got), want)
	}

	r2 := NewRegistry()
	mustAdd(t, r2,
		drawnLayer("l1", "Box", "box"),
		textLayer("l2", "Box"),
		textLayer("l3", "x", "Box"),
	)
	// name match returns every named layer and ignores tags
	got, err = r2.Resolve("Box")
	if err != nil {
		t.Fatalf("Resolve(Box) error = %v", err)
	}
	if want := []string{"l1", "l2"}; !reflect.DeepEqual(ids(got), want) {
		t.Errorf("Resolve(Box) = %v, want %v", ids(got), want)
	}
}

func TestResolveText(t *testing.T) {
	r := NewRegistry()
	mustAdd(t, r,
		drawnLayer("d1", "frame", "ui"),
		textLayer("t1", "caption", "ui"),
		drawnLayer("d2", "art", "art"),
	)

	texts, dropped, err := r.ResolveText("ui")
	if err != nil {
		t.Fatalf("ResolveText(ui) error = %v", err)
	}
	if want := []string{"t1"}; !reflect.DeepEqual(ids(texts), want) {
		t.Errorf("ResolveText(ui) = %v, want %v", ids(texts), want)
	}
	if dropped != 1 {
		t.Errorf("dropped = %d, want 1", dropped)
	}

	if _, _, err := r.ResolveText("art"); !errors.Is(err, ErrNoTextLayersMatched) {
		t.Errorf("ResolveText(art) error = %v, want ErrNoTextLayersMatched", err)
	}
	if _, _, err := r.ResolveText("missing"); !errors.Is(err, ErrLayerNotFound) {
		t.Errorf("ResolveText(missing) error = %v, want ErrLayerNotFound", err)
	}
}

func TestRegistry_AddRejects(t *testing.T) {
	r := NewRegistry()
	mustAdd(t, r, textLayer("a", "A"))

	if err := r.Add(textLayer("a", "B")); !errors.Is(err, ErrDuplicateID) {
		t.Errorf("Add(dup) error = %v, want ErrDuplicateID", err)
	}
	if err := r.Add(textLayer("", "B")); !errors.Is(err, ErrInvalidLayer) {
		t.Errorf("Add(empty id) error = %v, want ErrInvalidLayer", err)
	}
	if r.Len() != 1 {
		t.Errorf("Len() = %d, want 1", r.Len())
	}
}

func TestSnapshot(t *testing.T) {
	r := NewRegistry()
	mustAdd(t, r, drawnLayer("bg", "Background", "z", "a"), textLayer("t", "Title"))
	r.Get("t").Visible = false

	want := []Info{
		{ID: "bg", Name: "Background", Type: "drawn", Visible: true, Tags: []string{"a", "z"}, Frames: 1},
		{ID: "t", Name: "Title", Type: "text", Visible: false, Tags: []string{}},
	}
	if got := r.Snapshot(); !reflect.DeepEqual(got, want) {
		t.Errorf("Snapshot() = %+v, want %+v", got, want)
	}
}

func TestIdentifier(t *testing.T) {
	cases := []struct {
		in   any
		want string
		err  bool
	}{
		{"text1", "text1", false},
		{"  padded ", "padded", false},
		{3, "3", false},
		{int64(42), "42", false},
		{2.0, "2", false},
		{2.5, "2.5", false},
		{"", "", true},
		{"   ", "", true},
		{nil, "", true},
		{[]string{"x"}, "", true},
	}
	for _, tc := range cases {
		got, err := Identifier(tc.in)
		if tc.err {
			if !errors.Is(err, ErrInvalidIdentifier) {
				t.Errorf("Identifier(%#v) error = %v, want ErrInvalidIdentifier", tc.in, err)
			}
			continue
		}
		if err != nil || got != tc.want {
			t.Errorf("Identifier(%#v) = %q, %v; want %q", tc.in, got, err, tc.want)
		}
	}
}

func TestDrawn_AdvanceAndSetFrame(t *testing.T) {
	d := NewDrawn(grid.New(), grid.NewTransparent())
	seq := []int{d.CurrentFrame()}
	for i := 0; i < 3; i++ {
		d.Advance()
		seq = append(seq, d.CurrentFrame())
	}
	if want := []int{0, 1, 0, 1}; !reflect.DeepEqual(seq, want) {
		t.Errorf("frame sequence = %v, want %v", seq, want)
	}

	d.SetFrame(-1)
	if d.CurrentFrame() != 1 {
		t.Errorf("SetFrame(-1) -> %d, want 1", d.CurrentFrame())
	}

	single := NewDrawn(grid.New())
	if single.Advance() || single.CurrentFrame() != 0 {
		t.Error("single-frame layer advanced")
	}
}

func TestText_SetLabel(t *testing.T) {
	red := grid.RGB{R: 255}
	txt := NewText("old", grid.Rect{R0: 0, C0: 0, R1: 0, C1: 9}, grid.White, []grid.RGB{red, red, red}, paint.AlignLeft)

	txt.SetLabel("new text", nil, nil)
	if txt.Raw() != "new text" {
		t.Errorf("Raw() = %q, want %q", txt.Raw(), "new text")
	}
	if txt.Foreground() != grid.White {
		t.Errorf("Foreground() = %v, want unchanged %v", txt.Foreground(), grid.White)
	}
	if txt.Colors() != nil {
		t.Errorf("Colors() = %v, want cleared", txt.Colors())
	}
	if c := txt.Rendered().At(0, 0); c.Ch != 'n' || c.FG != grid.White {
		t.Errorf("rendered (0,0) = %q %v, want 'n' %v", c.Ch, c.FG, grid.White)
	}

	txt.SetLabel("x", &red, nil)
	if txt.Rendered().At(0, 0).FG != red {
		t.Errorf("rendered FG = %v, want %v", txt.Rendered().At(0, 0).FG, red)
	}
	want := paint.Render("x", txt.Bounds(), paint.Options{Foreground: red})
	if !txt.Rendered().Equal(want) {
		t.Error("cached grid differs from a fresh render of the same fields")
	}
}

func TestText_ColorsAreCopied(t *testing.T) {
	red, blue := grid.RGB{R: 255}, grid.RGB{B: 255}
	bounds := grid.Rect{R0: 0, C0: 0, R1: 0, C1: 9}

	colors := []grid.RGB{red, red}
	text := NewText("Hi", bounds, grid.White, colors, paint.AlignLeft)
	colors[0] = blue

	if got := text.Colors()[0]; got != red {
		t.Errorf("Colors()[0] = %v after caller mutation, want %v", got, red)
	}
	out := text.Colors()
	out[1] = blue
	if got := text.Colors()[1]; got != red {
		t.Errorf("Colors()[1] = %v after mutating the returned slice, want %v", got, red)
	}

	rebuilt := NewText(text.Raw(), text.Bounds(), text.Foreground(), text.Colors(), paint.AlignLeft)
	if !rebuilt.Rendered().Equal(text.Rendered()) {
		t.Error("rendered grid differs from one rebuilt from the layer's fields")
	}

	label := []grid.RGB{blue}
	text.SetLabel("Yo", nil, label)
	label[0] = red
	if got := text.Rendered().At(0, 0).FG; got != blue {
		t.Errorf("rendered fg = %v, want %v", got, blue)
	}
	if got := text.Colors()[0]; got != blue {
		t.Errorf("Colors()[0] = %v after SetLabel caller mutation, want %v", got, blue)
	}
}
