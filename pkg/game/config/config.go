// Package config loads the player configuration from YAML.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"

	"ansiscreen/pkg/engine/grid"
	"ansiscreen/pkg/engine/markup"
)

// ErrInvalidConfig is returned for configuration values out of range.
var ErrInvalidConfig = errors.New("invalid config")

// Default values
const (
	DefaultFPS       = 10
	MaxFPS           = 120
	DefaultLanguage  = "en"
	DefaultDomain    = "default"
	DefaultForeColor = "#aaaaaa"
)

// Config holds player settings.
type Config struct {
	// FPS is the animation tick rate.
	FPS int `yaml:"fps"`

	// Locale is the gotext library directory; empty disables translation.
	Locale   string `yaml:"locale"`
	Language string `yaml:"language"`
	Domain   string `yaml:"domain"`

	// DefaultFG is the hex glyph color of text layers defined without one.
	DefaultFG string `yaml:"default_fg"`

	// Palette maps markup color names to hex colors, layered over the
	// built-in ANSI palette.
	Palette map[string]string `yaml:"palette"`

	// Bindings maps action names to key codes, replacing the defaults for
	// those actions.
	Bindings map[string]string `yaml:"bindings"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		FPS:       DefaultFPS,
		Language:  DefaultLanguage,
		Domain:    DefaultDomain,
		DefaultFG: DefaultForeColor,
	}
}

// Load reads path. A missing file yields the defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, err
	}
	return Parse(data)
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks ranges and colors.
func (c Config) Validate() error {
	if c.FPS < 1 || c.FPS > MaxFPS {
		return fmt.Errorf("%w: fps %d not in 1..%d", ErrInvalidConfig, c.FPS, MaxFPS)
	}
	if _, err := c.Foreground(); err != nil {
		return err
	}
	if _, err := c.ColorPalette(); err != nil {
		return err
	}
	return nil
}

// Foreground returns DefaultFG as RGB. Empty means light gray.
func (c Config) Foreground() (grid.RGB, error) {
	if strings.TrimSpace(c.DefaultFG) == "" {
		return grid.LightGray, nil
	}
	return hexRGB("default_fg", c.DefaultFG)
}

// ColorPalette returns the built-in palette with the configured entries
// merged over it.
func (c Config) ColorPalette() (markup.Palette, error) {
	custom := make(markup.Palette, len(c.Palette))
	for name, hex := range c.Palette {
		rgb, err := hexRGB("palette."+name, hex)
		if err != nil {
			return nil, err
		}
		custom[strings.ToLower(name)] = rgb
	}
	return markup.DefaultPalette().Merge(custom), nil
}

func hexRGB(field, s string) (grid.RGB, error) {
	col, err := colorful.Hex(strings.TrimSpace(s))
	if err != nil {
		return grid.RGB{}, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, field, err)
	}
	r, g, b := col.RGB255()
	return grid.RGB{R: r, G: g, B: b}, nil
}
