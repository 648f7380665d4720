package input

import (
	"bufio"
)

// ReadKey reads one key press from a raw-mode terminal stream and returns
// its code: a printable character as itself, or one of "arrow_up",
// "arrow_down", "arrow_left", "arrow_right", "enter", "space", "backspace",
// "tab", "escape", "ctrl_c". Unknown bytes and sequences yield "".
//
// An ESC is only treated as the start of a sequence when the rest of it has
// already arrived, so a lone Escape press is reported at once.
func ReadKey(r *bufio.Reader) (string, error) {
	b, err := r.ReadByte()
	if err != nil {
		return "", err
	}

	switch {
	case b == 0x1b:
		return readEscape(r)
	case b == 3:
		return "ctrl_c", nil
	case b == '\r' || b == '\n':
		return "enter", nil
	case b == '\t':
		return "tab", nil
	case b == ' ':
		return "space", nil
	case b == 127 || b == 8:
		return "backspace", nil
	case b > 32 && b < 127:
		return string(rune(b)), nil
	}
	return "", nil
}

// readEscape decodes what follows an ESC byte. CSI (ESC [) and SS3 (ESC O)
// arrow sequences map to arrow codes. Anything else, or nothing buffered,
// is a plain escape and the following byte is left for the next read.
func readEscape(r *bufio.Reader) (string, error) {
	if r.Buffered() == 0 {
		return "escape", nil
	}
	next, err := r.Peek(1)
	if err != nil {
		return "escape", nil
	}
	if next[0] != '[' && next[0] != 'O' {
		return "escape", nil
	}
	if _, err := r.ReadByte(); err != nil {
		return "", err
	}

	b3, err := r.ReadByte()
	if err != nil {
		return "", err
	}
	switch b3 {
	case 'A':
		return "arrow_up", nil
	case 'B':
		return "arrow_down", nil
	case 'C':
		return "arrow_right", nil
	case 'D':
		return "arrow_left", nil
	}
	// Unknown escape sequence - discard it
	return "", nil
}
