package ebiten

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// keyCodes maps ebiten keys to the codes the terminal key reader produces,
// so both backends share one keymap.
var keyCodes = map[ebiten.Key]string{
	ebiten.KeyEscape:     "escape",
	ebiten.KeySpace:      "space",
	ebiten.KeyEnter:      "enter",
	ebiten.KeyTab:        "tab",
	ebiten.KeyBackspace:  "backspace",
	ebiten.KeyArrowUp:    "arrow_up",
	ebiten.KeyArrowDown:  "arrow_down",
	ebiten.KeyArrowLeft:  "arrow_left",
	ebiten.KeyArrowRight: "arrow_right",
	ebiten.KeyPeriod:     ".",
	ebiten.KeyComma:      ",",
	ebiten.KeyMinus:      "-",
	ebiten.KeyEqual:      "=",
	ebiten.KeySlash:      "/",
}

// shiftedCodes are the codes of keys typed with Shift held.
var shiftedCodes = map[ebiten.Key]string{
	ebiten.KeySlash:  "?",
	ebiten.KeyPeriod: ">",
	ebiten.KeyComma:  "<",
	ebiten.KeyMinus:  "_",
	ebiten.KeyEqual:  "+",
}

// keyCode returns the code of k, or "" for keys without one.
func keyCode(k ebiten.Key, shift bool) string {
	if code, ok := shiftedCodes[k]; ok && shift {
		return code
	}
	if code, ok := keyCodes[k]; ok {
		return code
	}
	// Letter keys are named "A".."Z", digit keys "Digit0".."Digit9"
	name := k.String()
	if len(name) == 1 && name[0] >= 'A' && name[0] <= 'Z' {
		return strings.ToLower(name)
	}
	if digit, ok := strings.CutPrefix(name, "Digit"); ok && len(digit) == 1 {
		return digit
	}
	return ""
}

// handleInput forwards keys pressed since the last update.
func (e *EbitenRenderer) handleInput() error {
	if e.callbacks.Key == nil {
		return nil
	}
	e.keys = inpututil.AppendJustPressedKeys(e.keys[:0])
	shift := ebiten.IsKeyPressed(ebiten.KeyShift)
	for _, k := range e.keys {
		code := keyCode(k, shift)
		if code == "" {
			continue
		}
		if err := e.callbacks.Key(code); err != nil {
			return err
		}
	}
	return nil
}
