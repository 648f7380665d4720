// Package markup parses [color=NAME]...[/color] spans into plain text plus a
// per-character color array.
package markup

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"ansiscreen/pkg/engine/grid"
)

// ErrInvalidMarkup is returned for unknown color names, unterminated or
// nested spans, and stray closing tags.
var ErrInvalidMarkup = errors.New("invalid markup")

// tagRegex matches an opening [color=NAME] or a closing [/color] token.
var tagRegex = regexp.MustCompile(`\[color=([^\]]*)\]|\[/color\]`)

// Result is the outcome of parsing a marked-up string.
// len(Colors) always equals the rune count of Text.
type Result struct {
	Text   string
	Colors []grid.RGB
}

// Contains returns true if s holds at least one markup token.
func Contains(s string) bool {
	return tagRegex.MatchString(s)
}

// Parse scans s left to right with one active color. Characters inside a
// span take the span's color from palette, all others take def.
func Parse(s string, def grid.RGB, palette Palette) (Result, error) {
	var text strings.Builder
	colors := make([]grid.RGB, 0, utf8.RuneCountInString(s))

	active := def
	inSpan := false
	openTag := ""

	emit := func(chunk string, c grid.RGB) {
		text.WriteString(chunk)
		for range chunk {
			colors = append(colors, c)
		}
	}

	lastIndex := 0
	for _, match := range tagRegex.FindAllStringSubmatchIndex(s, -1) {
		if match[0] > lastIndex {
			emit(s[lastIndex:match[0]], active)
		}
		token := s[match[0]:match[1]]

		if match[2] < 0 {
			// closing tag
			if !inSpan {
				return Result{}, fmt.Errorf("%w: %q without opening tag", ErrInvalidMarkup, token)
			}
			inSpan = false
			active = def
		} else {
			if inSpan {
				return Result{}, fmt.Errorf("%w: %q inside open span %q", ErrInvalidMarkup, token, openTag)
			}
			name := s[match[2]:match[3]]
			c, ok := palette.Lookup(name)
			if !ok {
				return Result{}, fmt.Errorf("%w: unknown color %q in %q", ErrInvalidMarkup, name, token)
			}
			inSpan = true
			openTag = token
			active = c
		}
		lastIndex = match[1]
	}

	if inSpan {
		return Result{}, fmt.Errorf("%w: unterminated span %q", ErrInvalidMarkup, openTag)
	}
	if lastIndex < len(s) {
		emit(s[lastIndex:], active)
	}

	return Result{Text: text.String(), Colors: colors}, nil
}

// Strip removes markup tokens without validating them.
func Strip(s string) string {
	return tagRegex.ReplaceAllString(s, "")
}
