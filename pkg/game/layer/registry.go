package layer

import (
	"errors"
	"fmt"
)

// Errors returned by the registry and resolver
var (
	ErrInvalidIdentifier   = errors.New("invalid layer identifier")
	ErrLayerNotFound       = errors.New("layer not found")
	ErrNoTextLayersMatched = errors.New("no text layers matched")
	ErrDuplicateID         = errors.New("duplicate layer id")
	ErrInvalidLayer        = errors.New("invalid layer")
)

// Registry owns the layers of one screen in definition order, which is also
// compositing order (first = bottom).
type Registry struct {
	layers []*Layer
	byID   map[string]*Layer
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{byID: make(map[string]*Layer)}
}

// Add appends a layer on top of the stack. Ids must be unique and non-empty.
func (r *Registry) Add(l *Layer) error {
	if l == nil || l.Content == nil {
		return fmt.Errorf("%w: no content", ErrInvalidLayer)
	}
	if l.ID == "" {
		return fmt.Errorf("%w: empty id", ErrInvalidLayer)
	}
	if _, exists := r.byID[l.ID]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateID, l.ID)
	}
	r.layers = append(r.layers, l)
	r.byID[l.ID] = l
	return nil
}

// Len returns the number of layers
func (r *Registry) Len() int {
	return len(r.layers)
}

// All returns the layers bottom to top. The slice must not be modified.
func (r *Registry) All() []*Layer {
	return r.layers
}

// Get returns the layer with the given id, or nil
func (r *Registry) Get(id string) *Layer {
	return r.byID[id]
}

// ForEach iterates over layers bottom to top
func (r *Registry) ForEach(fn func(l *Layer)) {
	for _, l := range r.layers {
		fn(l)
	}
}

// Info is a read-only description of a layer
type Info struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Type    string   `json:"type"`
	Visible bool     `json:"visible"`
	Tags    []string `json:"tags"`

	// Frames is the frame count of a drawn layer, 0 for text
	Frames int `json:"frames,omitempty"`
}

// Snapshot returns an Info for every layer, bottom to top.
func (r *Registry) Snapshot() []Info {
	out := make([]Info, 0, len(r.layers))
	for _, l := range r.layers {
		info := Info{
			ID:      l.ID,
			Name:    l.Name,
			Type:    l.Kind().String(),
			Visible: l.Visible,
			Tags:    l.SortedTags(),
		}
		if d, ok := l.Content.(*Drawn); ok {
			info.Frames = d.FrameCount()
		}
		out = append(out, info)
	}
	return out
}
