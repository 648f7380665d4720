// Package layer holds the layers of a screen: raw drawn grids and laid-out
// text, addressed by id, name or tag.
package layer

import (
	"slices"
	"sort"

	"github.com/zyedidia/generic/mapset"

	"ansiscreen/pkg/engine/grid"
	"ansiscreen/pkg/engine/paint"
)

// Kind identifies which variant a layer holds
type Kind int

// Layer kinds
const (
	KindDrawn Kind = iota
	KindText
)

// String returns the kind name used in definitions and snapshots.
func (k Kind) String() string {
	switch k {
	case KindDrawn:
		return "drawn"
	case KindText:
		return "text"
	default:
		return "Unknown"
	}
}

// Content is the variant part of a layer. It is implemented only by *Drawn
// and *Text; consumers switch on the concrete type.
type Content interface {
	Kind() Kind
	sealed()
}

// TagSet is a set of tags
type TagSet = mapset.Set[string]

// NewTagSet creates a tag set holding tags
func NewTagSet(tags ...string) TagSet {
	s := mapset.New[string]()
	for _, t := range tags {
		s.Put(t)
	}
	return s
}

// Layer is one independently visible contributor to a screen.
type Layer struct {
	ID      string
	Name    string
	Visible bool
	Tags    TagSet

	Content Content
}

// New creates a layer. A nil tags argument yields an empty set.
func New(id, name string, visible bool, tags []string, content Content) *Layer {
	return &Layer{
		ID:      id,
		Name:    name,
		Visible: visible,
		Tags:    NewTagSet(tags...),
		Content: content,
	}
}

// Kind returns the kind of the layer's content
func (l *Layer) Kind() Kind {
	return l.Content.Kind()
}

// IsText returns true if the layer holds laid-out text
func (l *Layer) IsText() bool {
	_, ok := l.Content.(*Text)
	return ok
}

// HasTag checks if the layer carries the tag
func (l *Layer) HasTag(tag string) bool {
	return l.Tags.Has(tag)
}

// SortedTags returns the tags as a sorted slice
func (l *Layer) SortedTags() []string {
	tags := make([]string, 0, l.Tags.Size())
	l.Tags.Each(func(t string) {
		tags = append(tags, t)
	})
	sort.Strings(tags)
	return tags
}

// Drawn is a layer made of one or more raw frames.
type Drawn struct {
	frames  []*grid.Grid
	current int
}

// NewDrawn creates a drawn layer from frames. An empty frame list gets a
// single fully transparent frame.
func NewDrawn(frames ...*grid.Grid) *Drawn {
	if len(frames) == 0 {
		frames = []*grid.Grid{grid.NewTransparent()}
	}
	return &Drawn{frames: frames}
}

// Kind implements Content
func (d *Drawn) Kind() Kind { return KindDrawn }

func (d *Drawn) sealed() {}

// Frame returns the current frame
func (d *Drawn) Frame() *grid.Grid {
	return d.frames[d.current]
}

// FrameCount returns the number of frames
func (d *Drawn) FrameCount() int {
	return len(d.frames)
}

// CurrentFrame returns the index of the current frame
func (d *Drawn) CurrentFrame() int {
	return d.current
}

// Animated returns true if the layer has more than one frame
func (d *Drawn) Animated() bool {
	return len(d.frames) > 1
}

// Advance moves to the next frame, wrapping around. Single-frame layers
// never move. Returns true if the frame changed.
func (d *Drawn) Advance() bool {
	if !d.Animated() {
		return false
	}
	d.current = (d.current + 1) % len(d.frames)
	return true
}

// SetFrame jumps to frame n modulo the frame count.
func (d *Drawn) SetFrame(n int) {
	count := len(d.frames)
	d.current = ((n % count) + count) % count
}

// Text is a layer of automatically laid-out text. Its rendered grid is
// always derived from the other fields and rebuilt whenever they change.
type Text struct {
	raw    string
	bounds grid.Rect
	fg     grid.RGB
	colors []grid.RGB
	align  paint.Alignment

	rendered *grid.Grid
}

// NewText creates a text layer and renders it.
func NewText(raw string, bounds grid.Rect, fg grid.RGB, colors []grid.RGB, align paint.Alignment) *Text {
	t := &Text{
		raw:    raw,
		bounds: bounds,
		fg:     fg,
		colors: slices.Clone(colors),
		align:  align,
	}
	t.render()
	return t
}

// Kind implements Content
func (t *Text) Kind() Kind { return KindText }

func (t *Text) sealed() {}

// Raw returns the unwrapped text
func (t *Text) Raw() string { return t.raw }

// Bounds returns the rectangle the text is laid out in
func (t *Text) Bounds() grid.Rect { return t.bounds }

// Foreground returns the default glyph color
func (t *Text) Foreground() grid.RGB { return t.fg }

// Colors returns a copy of the per-character colors, nil if none
func (t *Text) Colors() []grid.RGB { return slices.Clone(t.colors) }

// Rendered returns the cached rendered grid
func (t *Text) Rendered() *grid.Grid { return t.rendered }

// SetLabel replaces the text. fg is kept when nil. colors replaces the
// per-character colors wholesale, so a nil slice clears them.
func (t *Text) SetLabel(raw string, fg *grid.RGB, colors []grid.RGB) {
	t.raw = raw
	if fg != nil {
		t.fg = *fg
	}
	t.colors = slices.Clone(colors)
	t.render()
}

func (t *Text) render() {
	t.rendered = paint.Render(t.raw, t.bounds, paint.Options{
		Foreground: t.fg,
		Colors:     t.colors,
		Align:      t.align,
	})
}
