// Package screen is the façade over layers, compositing and playback. It owns
// every screen and the single active-screen pointer.
package screen

import (
	"errors"
	"fmt"
	"sort"

	"github.com/leonelquinteros/gotext"
	"go.uber.org/zap"

	"ansiscreen/pkg/engine/grid"
	"ansiscreen/pkg/engine/markup"
	"ansiscreen/pkg/game/animation"
	"ansiscreen/pkg/game/compositor"
	"ansiscreen/pkg/game/layer"
)

// Errors returned by the controller
var (
	ErrUnknownScreen        = errors.New("unknown screen")
	ErrInvalidDefinition    = errors.New("invalid screen definition")
	ErrNoDrawnLayersMatched = errors.New("no drawn layers matched")
)

// ID identifies a screen. Ids start at 1 and are never reused.
type ID int

type screen struct {
	id     ID
	layers *layer.Registry
	anim   animation.Driver
	output *grid.Grid
}

func (s *screen) recomposite() {
	s.output = compositor.Composite(s.layers.All())
}

// Label is the new content of a text layer.
type Label struct {
	Text string

	// FG replaces the default glyph color when non-nil.
	FG *grid.RGB

	// Colors replaces the per-character colors wholesale. When nil and Text
	// carries color markup, the colors are taken from the markup instead.
	Colors []grid.RGB
}

// Controller creates screens and applies every mutation to them. It is not
// safe for concurrent use; one driver calls it serially.
type Controller struct {
	screens map[ID]*screen
	lastID  ID
	active  *screen

	log       *zap.Logger
	palette   markup.Palette
	translate Translator
	defaultFG grid.RGB
}

// NewController creates a controller with no screens.
func NewController(opts ...Option) *Controller {
	c := &Controller{
		screens:   make(map[ID]*screen),
		log:       zap.NewNop(),
		palette:   markup.DefaultPalette(),
		translate: gotext.Get,
		defaultFG: grid.LightGray,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CreateScreen builds a screen from def, renders its text layers and
// composites it. The id is only allocated when the definition is valid.
func (c *Controller) CreateScreen(def Definition) (ID, error) {
	if (def.Width != 0 && def.Width != grid.Width) || (def.Height != 0 && def.Height != grid.Height) {
		return 0, fmt.Errorf("%w: size %dx%d, want %dx%d",
			ErrInvalidDefinition, def.Width, def.Height, grid.Width, grid.Height)
	}

	reg := layer.NewRegistry()
	if def.Grid != nil {
		bg := layer.New(BackgroundID, BackgroundID, true, nil, layer.NewDrawn(def.Grid.Clone()))
		if err := reg.Add(bg); err != nil {
			return 0, fmt.Errorf("%w: %v", ErrInvalidDefinition, err)
		}
	}
	for i, ld := range def.Layers {
		l, err := c.buildLayer(i, ld)
		if err != nil {
			return 0, err
		}
		if err := reg.Add(l); err != nil {
			return 0, fmt.Errorf("%w: layer %d: %v", ErrInvalidDefinition, i, err)
		}
	}

	c.lastID++
	s := &screen{id: c.lastID, layers: reg}
	s.recomposite()
	c.screens[s.id] = s

	c.log.Debug("created screen",
		zap.Int("screen", int(s.id)),
		zap.String("version", def.Version),
		zap.Int("layers", reg.Len()))
	return s.id, nil
}

func (c *Controller) buildLayer(i int, ld LayerDef) (*layer.Layer, error) {
	id := ld.ID
	if id == "" {
		id = fmt.Sprintf("layer%d", i)
	}
	name := ld.Name
	if name == "" {
		name = id
	}

	switch ld.Kind {
	case layer.KindDrawn:
		frames := make([]*grid.Grid, 0, len(ld.Frames))
		for n, f := range ld.Frames {
			if f == nil {
				return nil, fmt.Errorf("%w: layer %q frame %d is empty", ErrInvalidDefinition, id, n)
			}
			frames = append(frames, f.Clone())
		}
		return layer.New(id, name, ld.Visible, ld.Tags, layer.NewDrawn(frames...)), nil

	case layer.KindText:
		if !ld.Bounds.Within(grid.Full) {
			return nil, fmt.Errorf("%w: layer %q bounds %+v extend past the grid", ErrInvalidDefinition, id, ld.Bounds)
		}
		fg := c.defaultFG
		if ld.FG != nil {
			fg = *ld.FG
		}
		text, colors, err := c.prepareText(ld.Text, fg, ld.Colors)
		if err != nil {
			return nil, fmt.Errorf("%w: layer %q: %v", ErrInvalidDefinition, id, err)
		}
		content := layer.NewText(text, ld.Bounds, fg, colors, ld.Align)
		return layer.New(id, name, ld.Visible, ld.Tags, content), nil
	}
	return nil, fmt.Errorf("%w: layer %q has unknown kind %v", ErrInvalidDefinition, id, ld.Kind)
}

// prepareText localises raw and, when no explicit colors are given, expands
// color markup into per-character colors.
func (c *Controller) prepareText(raw string, fg grid.RGB, colors []grid.RGB) (string, []grid.RGB, error) {
	text := c.translate(raw)
	if colors != nil || !markup.Contains(text) {
		return text, colors, nil
	}
	res, err := markup.Parse(text, fg, c.palette)
	if err != nil {
		return "", nil, err
	}
	return res.Text, res.Colors, nil
}

func (c *Controller) lookup(id ID) (*screen, error) {
	s, ok := c.screens[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownScreen, id)
	}
	return s, nil
}

// Screens returns the ids of every screen in creation order.
func (c *Controller) Screens() []ID {
	ids := make([]ID, 0, len(c.screens))
	for id := range c.screens {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// SetScreen makes id the active screen.
func (c *Controller) SetScreen(id ID) error {
	s, err := c.lookup(id)
	if err != nil {
		return err
	}
	c.active = s
	c.log.Debug("active screen", zap.Int("screen", int(id)))
	return nil
}

// ClearScreen leaves no screen active.
func (c *Controller) ClearScreen() {
	c.active = nil
	c.log.Debug("active screen cleared")
}

// ActiveScreenID returns the active screen, if any.
func (c *Controller) ActiveScreenID() (ID, bool) {
	if c.active == nil {
		return 0, false
	}
	return c.active.id, true
}

// Layers returns a read-only snapshot of a screen's layers, bottom to top.
func (c *Controller) Layers(id ID) ([]layer.Info, error) {
	s, err := c.lookup(id)
	if err != nil {
		return nil, err
	}
	return s.layers.Snapshot(), nil
}

// LayerOn shows every layer ident resolves to.
func (c *Controller) LayerOn(id ID, ident any) error {
	return c.setVisible(id, ident, func(bool) bool { return true })
}

// LayerOff hides every layer ident resolves to.
func (c *Controller) LayerOff(id ID, ident any) error {
	return c.setVisible(id, ident, func(bool) bool { return false })
}

// LayerToggle flips the visibility of every layer ident resolves to.
func (c *Controller) LayerToggle(id ID, ident any) error {
	return c.setVisible(id, ident, func(v bool) bool { return !v })
}

func (c *Controller) setVisible(id ID, ident any, next func(bool) bool) error {
	s, layers, err := c.resolve(id, ident)
	if err != nil {
		return err
	}
	for _, l := range layers {
		l.Visible = next(l.Visible)
	}
	s.recomposite()

	c.log.Debug("visibility changed",
		zap.Int("screen", int(id)),
		zap.Strings("layers", layerIDs(layers)))
	return nil
}

func (c *Controller) resolve(id ID, ident any) (*screen, []*layer.Layer, error) {
	s, err := c.lookup(id)
	if err != nil {
		return nil, nil, err
	}
	key, err := layer.Identifier(ident)
	if err != nil {
		c.log.Debug("rejected identifier", zap.Int("screen", int(id)), zap.Error(err))
		return nil, nil, err
	}
	layers, err := s.layers.Resolve(key)
	if err != nil {
		c.log.Debug("unresolved identifier", zap.Int("screen", int(id)), zap.Error(err))
		return nil, nil, err
	}
	return s, layers, nil
}

// SetLabel replaces the text of every text layer ident resolves to. Non-text
// layers in a mixed match are skipped. Nothing changes if any step fails.
func (c *Controller) SetLabel(id ID, ident any, lbl Label) error {
	s, err := c.lookup(id)
	if err != nil {
		return err
	}
	key, err := layer.Identifier(ident)
	if err != nil {
		return err
	}
	texts, dropped, err := s.layers.ResolveText(key)
	if err != nil {
		c.log.Debug("set label", zap.Int("screen", int(id)), zap.Error(err))
		return err
	}
	if dropped > 0 {
		c.log.Debug("set label skipped non-text layers",
			zap.Int("screen", int(id)),
			zap.String("identifier", key),
			zap.Int("skipped", dropped))
	}

	type update struct {
		content *layer.Text
		text    string
		colors  []grid.RGB
	}
	updates := make([]update, 0, len(texts))
	for _, l := range texts {
		content := l.Content.(*layer.Text)
		fg := content.Foreground()
		if lbl.FG != nil {
			fg = *lbl.FG
		}
		text, colors, err := c.prepareText(lbl.Text, fg, lbl.Colors)
		if err != nil {
			return err
		}
		updates = append(updates, update{content, text, colors})
	}

	for _, u := range updates {
		u.content.SetLabel(u.text, lbl.FG, u.colors)
	}
	s.recomposite()

	c.log.Debug("label set",
		zap.Int("screen", int(id)),
		zap.Strings("layers", layerIDs(texts)))
	return nil
}

// SetFrame jumps every drawn layer ident resolves to to frame n, modulo its
// frame count.
func (c *Controller) SetFrame(id ID, ident any, n int) error {
	s, layers, err := c.resolve(id, ident)
	if err != nil {
		return err
	}
	var drawn []*layer.Drawn
	for _, l := range layers {
		if d, ok := l.Content.(*layer.Drawn); ok {
			drawn = append(drawn, d)
		}
	}
	if len(drawn) == 0 {
		return fmt.Errorf("%w: %v", ErrNoDrawnLayersMatched, ident)
	}
	for _, d := range drawn {
		d.SetFrame(n)
	}
	s.recomposite()
	return nil
}

// Play starts animation playback on a screen.
func (c *Controller) Play(id ID) error {
	s, err := c.lookup(id)
	if err != nil {
		return err
	}
	s.anim.Play()
	c.log.Debug("play", zap.Int("screen", int(id)))
	return nil
}

// Pause stops animation playback on a screen.
func (c *Controller) Pause(id ID) error {
	s, err := c.lookup(id)
	if err != nil {
		return err
	}
	s.anim.Pause()
	c.log.Debug("pause", zap.Int("screen", int(id)), zap.Uint64("ticks", s.anim.Ticks()))
	return nil
}

// IsPlaying reports whether a screen advances on ticks.
func (c *Controller) IsPlaying(id ID) (bool, error) {
	s, err := c.lookup(id)
	if err != nil {
		return false, err
	}
	return s.anim.IsPlaying(), nil
}

// Step advances one screen's animations by a single frame whether or not
// it is playing.
func (c *Controller) Step(id ID) error {
	s, err := c.lookup(id)
	if err != nil {
		return err
	}
	if animation.Step(s.layers.All()) {
		s.recomposite()
	}
	return nil
}

// Tick advances every playing screen by one frame and recomposites the ones
// that changed. Returns true if the active screen changed.
func (c *Controller) Tick() bool {
	activeChanged := false
	for _, s := range c.screens {
		if !s.anim.Tick(s.layers.All()) {
			continue
		}
		s.recomposite()
		if s == c.active {
			activeChanged = true
		}
	}
	return activeChanged
}

// Composite returns a copy of a screen's current output grid.
func (c *Controller) Composite(id ID) (*grid.Grid, error) {
	s, err := c.lookup(id)
	if err != nil {
		return nil, err
	}
	return s.output.Clone(), nil
}

// ActiveGrid returns a copy of the active screen's output grid.
func (c *Controller) ActiveGrid() (*grid.Grid, bool) {
	if c.active == nil {
		return nil, false
	}
	return c.active.output.Clone(), true
}

func layerIDs(layers []*layer.Layer) []string {
	ids := make([]string, len(layers))
	for i, l := range layers {
		ids[i] = l.ID
	}
	return ids
}
