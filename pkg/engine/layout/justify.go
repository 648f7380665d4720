package layout

import (
	"strings"
	"unicode/utf8"
)

// Glyph is one painted position of a laid-out line. Raw is the rune offset
// in the original text, or -1 for padding inserted by justification.
type Glyph struct {
	Col  int
	Raw  int
	Rune rune
}

// gapSizes distributes totalSpaces over gaps: floor(total/gaps) each, with
// the first total%gaps gaps getting one extra.
func gapSizes(gaps, totalSpaces int) []int {
	sizes := make([]int, gaps)
	base, extra := totalSpaces/gaps, totalSpaces%gaps
	for i := range sizes {
		sizes[i] = base
		if i < extra {
			sizes[i]++
		}
	}
	return sizes
}

// Justify spreads the words of line so it spans targetWidth cells. Lines
// with fewer than two words, or whose words cannot be separated by at least
// one space each within targetWidth, are returned unchanged.
func Justify(line string, targetWidth int) string {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return line
	}

	sum := 0
	for _, f := range fields {
		sum += utf8.RuneCountInString(f)
	}
	gaps := len(fields) - 1
	totalSpaces := targetWidth - sum
	if totalSpaces < gaps {
		return line
	}

	var sb strings.Builder
	for i, size := range gapSizes(gaps, totalSpaces) {
		sb.WriteString(fields[i])
		sb.WriteString(strings.Repeat(" ", size))
	}
	sb.WriteString(fields[gaps])
	return sb.String()
}

// Glyphs places the line's runes in columns starting at 0. When justify is
// set and the line is not the last of its paragraph, words are spread over
// width the same way Justify does.
func (l Line) Glyphs(width int, justify bool) []Glyph {
	runes := []rune(l.Text)
	if justify && !l.EndOfParagraph {
		if glyphs, ok := justifiedGlyphs(runes, l.Raw, width); ok {
			return glyphs
		}
	}

	out := make([]Glyph, len(runes))
	for i, r := range runes {
		out[i] = Glyph{Col: i, Raw: l.Raw[i], Rune: r}
	}
	return out
}

func justifiedGlyphs(runes []rune, raw []int, width int) ([]Glyph, bool) {
	spans := words(runes, 0, len(runes))
	if len(spans) < 2 {
		return nil, false
	}

	sum := 0
	for _, w := range spans {
		sum += w[1] - w[0]
	}
	gaps := len(spans) - 1
	totalSpaces := width - sum
	if totalSpaces < gaps {
		return nil, false
	}
	sizes := gapSizes(gaps, totalSpaces)

	out := make([]Glyph, 0, width)
	col := 0
	for i, w := range spans {
		for j := w[0]; j < w[1]; j++ {
			out = append(out, Glyph{Col: col, Raw: raw[j], Rune: runes[j]})
			col++
		}
		if i < gaps {
			for k := 0; k < sizes[i]; k++ {
				out = append(out, Glyph{Col: col, Raw: -1, Rune: ' '})
				col++
			}
		}
	}
	return out, true
}
