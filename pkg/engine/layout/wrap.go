// Package layout wraps and justifies text to a width measured in character
// cells. One rune occupies one cell.
package layout

import "unicode"

// Line is one wrapped line. Raw holds, for every displayed rune, its rune
// offset in the original text, so Text and Raw always have the same length.
type Line struct {
	Text string
	Raw  []int

	// EndOfParagraph is set on the last line before an explicit newline or
	// the end of the text.
	EndOfParagraph bool
}

// Len returns the displayed length in cells.
func (l Line) Len() int {
	return len(l.Raw)
}

// Lines performs the wrap. Both Wrap and BuildRawIndexMap are views over
// its result, so their breaks can never disagree.
//
// Explicit newlines split paragraphs first; empty paragraphs produce empty
// lines. Inside a paragraph whitespace-delimited words are packed greedily,
// breaking before a word that would overflow. Whitespace between words on
// the same line is kept as written; whitespace at a break is dropped. A word
// longer than width is hard-broken every width runes.
func Lines(text string, width int) []Line {
	if text == "" || width <= 0 {
		return nil
	}

	runes := []rune(text)
	var lines []Line

	pStart := 0
	for i := 0; i <= len(runes); i++ {
		if i < len(runes) && runes[i] != '\n' {
			continue
		}
		lines = append(lines, wrapParagraph(runes, pStart, i, width)...)
		pStart = i + 1
	}

	return lines
}

// wrapParagraph wraps runes[start:end], which contains no newline.
func wrapParagraph(runes []rune, start, end, width int) []Line {
	var lines []Line

	lineStart, lineEnd := -1, -1
	flush := func() {
		if lineStart < 0 {
			return
		}
		lines = append(lines, makeLine(runes, lineStart, lineEnd))
		lineStart, lineEnd = -1, -1
	}

	for _, w := range words(runes, start, end) {
		ws, we := w[0], w[1]

		if lineStart >= 0 && we-lineStart <= width {
			lineEnd = we
			continue
		}
		flush()

		// hard-break words that cannot fit on a line of their own
		for we-ws > width {
			lines = append(lines, makeLine(runes, ws, ws+width))
			ws += width
		}
		lineStart, lineEnd = ws, we
	}
	flush()

	if len(lines) == 0 {
		return []Line{{EndOfParagraph: true}}
	}
	lines[len(lines)-1].EndOfParagraph = true
	return lines
}

// words returns [start, end) rune offsets of every whitespace-delimited word.
func words(runes []rune, start, end int) [][2]int {
	var out [][2]int
	ws := -1
	for i := start; i < end; i++ {
		if unicode.IsSpace(runes[i]) {
			if ws >= 0 {
				out = append(out, [2]int{ws, i})
				ws = -1
			}
			continue
		}
		if ws < 0 {
			ws = i
		}
	}
	if ws >= 0 {
		out = append(out, [2]int{ws, end})
	}
	return out
}

func makeLine(runes []rune, start, end int) Line {
	raw := make([]int, 0, end-start)
	for i := start; i < end; i++ {
		raw = append(raw, i)
	}
	return Line{Text: string(runes[start:end]), Raw: raw}
}

// Wrap returns the wrapped lines of text as strings.
func Wrap(text string, width int) []string {
	lines := Lines(text, width)
	if lines == nil {
		return nil
	}
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = l.Text
	}
	return out
}

// BuildRawIndexMap returns, per wrapped line, the raw rune offset of every
// displayed character.
func BuildRawIndexMap(text string, width int) [][]int {
	lines := Lines(text, width)
	if lines == nil {
		return nil
	}
	out := make([][]int, len(lines))
	for i, l := range lines {
		out[i] = l.Raw
	}
	return out
}
