package layer

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Identifier normalizes a user-supplied identifier. Strings are trimmed,
// integers and integral floats are formatted in base 10. Anything else, and
// anything that ends up empty, is ErrInvalidIdentifier.
func Identifier(v any) (string, error) {
	var s string
	switch x := v.(type) {
	case string:
		s = strings.TrimSpace(x)
	case int:
		s = strconv.Itoa(x)
	case int32:
		s = strconv.FormatInt(int64(x), 10)
	case int64:
		s = strconv.FormatInt(x, 10)
	case uint:
		s = strconv.FormatUint(uint64(x), 10)
	case uint32:
		s = strconv.FormatUint(uint64(x), 10)
	case uint64:
		s = strconv.FormatUint(x, 10)
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return "", fmt.Errorf("%w: %v", ErrInvalidIdentifier, x)
		}
		if x == math.Trunc(x) && math.Abs(x) < 1e15 {
			s = strconv.FormatInt(int64(x), 10)
		} else {
			s = strconv.FormatFloat(x, 'g', -1, 64)
		}
	case fmt.Stringer:
		s = strings.TrimSpace(x.String())
	default:
		return "", fmt.Errorf("%w: unsupported type %T", ErrInvalidIdentifier, v)
	}

	if s == "" {
		return "", fmt.Errorf("%w: empty", ErrInvalidIdentifier)
	}
	return s, nil
}

// Resolve returns the layers an identifier denotes. The first rule that
// matches anything wins: exact id, then every layer with that name, then
// every layer carrying that tag. Results are bottom to top.
func (r *Registry) Resolve(ident string) ([]*Layer, error) {
	if strings.TrimSpace(ident) == "" {
		return nil, fmt.Errorf("%w: empty", ErrInvalidIdentifier)
	}

	if l, ok := r.byID[ident]; ok {
		return []*Layer{l}, nil
	}

	if matches := r.filter(func(l *Layer) bool { return l.Name == ident }); len(matches) > 0 {
		return matches, nil
	}

	if matches := r.filter(func(l *Layer) bool { return l.HasTag(ident) }); len(matches) > 0 {
		return matches, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrLayerNotFound, ident)
}

// ResolveText resolves ident and keeps only text layers. dropped counts the
// non-text layers removed from a mixed match; that is not an error. A match
// with no text layers at all is ErrNoTextLayersMatched.
func (r *Registry) ResolveText(ident string) (texts []*Layer, dropped int, err error) {
	matches, err := r.Resolve(ident)
	if err != nil {
		return nil, 0, err
	}

	for _, l := range matches {
		if l.IsText() {
			texts = append(texts, l)
		}
	}
	if len(texts) == 0 {
		return nil, 0, fmt.Errorf("%w: %q matched %d layer(s)", ErrNoTextLayersMatched, ident, len(matches))
	}
	return texts, len(matches) - len(texts), nil
}

func (r *Registry) filter(pred func(l *Layer) bool) []*Layer {
	var out []*Layer
	for _, l := range r.layers {
		if pred(l) {
			out = append(out, l)
		}
	}
	return out
}
