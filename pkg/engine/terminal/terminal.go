// Package terminal probes and configures the controlling terminal.
package terminal

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// GetSize returns the current terminal width and height.
// Falls back to defaults if the size cannot be determined.
func GetSize() (width, height int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// IsTerminal reports whether stdout is attached to a terminal.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// Fits reports whether a terminal of width x height can show cols x rows.
func Fits(width, height, cols, rows int) bool {
	return width >= cols && height >= rows
}

// CheckSize returns an error if the terminal is smaller than cols x rows.
func CheckSize(cols, rows int) error {
	w, h := GetSize()
	if !Fits(w, h, cols, rows) {
		return fmt.Errorf("terminal is %dx%d, need at least %dx%d", w, h, cols, rows)
	}
	return nil
}

// MakeRaw puts stdin into raw mode and returns a function restoring it.
func MakeRaw() (restore func(), err error) {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("cannot set terminal to raw mode: %w", err)
	}
	return func() {
		term.Restore(fd, oldState)
	}, nil
}
