package markup

import (
	"strings"

	"ansiscreen/pkg/engine/grid"
)

// Palette maps color names to RGB values.
type Palette map[string]grid.RGB

// DefaultPalette returns the 16 classic ANSI colors plus common aliases.
func DefaultPalette() Palette {
	return Palette{
		"black":          {R: 0, G: 0, B: 0},
		"red":            {R: 170, G: 0, B: 0},
		"green":          {R: 0, G: 170, B: 0},
		"yellow":         {R: 170, G: 85, B: 0}, // CGA brown
		"brown":          {R: 170, G: 85, B: 0},
		"blue":           {R: 0, G: 0, B: 170},
		"magenta":        {R: 170, G: 0, B: 170},
		"cyan":           {R: 0, G: 170, B: 170},
		"white":          {R: 170, G: 170, B: 170},
		"gray":           {R: 85, G: 85, B: 85},
		"grey":           {R: 85, G: 85, B: 85},
		"bright_black":   {R: 85, G: 85, B: 85},
		"bright_red":     {R: 255, G: 85, B: 85},
		"bright_green":   {R: 85, G: 255, B: 85},
		"bright_yellow":  {R: 255, G: 255, B: 85},
		"bright_blue":    {R: 85, G: 85, B: 255},
		"bright_magenta": {R: 255, G: 85, B: 255},
		"bright_cyan":    {R: 85, G: 255, B: 255},
		"bright_white":   {R: 255, G: 255, B: 255},
	}
}

// Lookup finds a color by exact name, falling back to a case-insensitive match.
func (p Palette) Lookup(name string) (grid.RGB, bool) {
	if c, ok := p[name]; ok {
		return c, true
	}
	lower := strings.ToLower(strings.TrimSpace(name))
	for k, c := range p {
		if strings.ToLower(k) == lower {
			return c, true
		}
	}
	return grid.RGB{}, false
}

// Merge returns a new palette with the entries of other layered over p.
func (p Palette) Merge(other Palette) Palette {
	out := make(Palette, len(p)+len(other))
	for k, v := range p {
		out[k] = v
	}
	for k, v := range other {
		out[k] = v
	}
	return out
}
