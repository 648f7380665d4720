// Package input turns raw key presses from any display backend into player
// intents, in layers: raw event, debounced event, binding, intent.
package input

import (
	"sort"
	"strings"
	"time"
)

// Device represents a physical input source.
type Device int

const (
	DeviceKeyboard Device = iota + 1
	DeviceTerminal
)

// Action represents a high-level player intent.
type Action int

const (
	ActionNone Action = iota

	ActionQuit
	ActionTogglePlay
	ActionStep
	ActionNextScreen
	ActionPrevScreen
	ActionScreenshot
	ActionDump
	ActionHelp
)

var actionNames = map[Action]string{
	ActionQuit:       "quit",
	ActionTogglePlay: "toggle_play",
	ActionStep:       "step",
	ActionNextScreen: "next_screen",
	ActionPrevScreen: "prev_screen",
	ActionScreenshot: "screenshot",
	ActionDump:       "dump",
	ActionHelp:       "help",
}

// String returns the action name used in configuration files.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "none"
}

// ParseAction converts a configuration name to an Action.
func ParseAction(name string) (Action, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for a, n := range actionNames {
		if n == name {
			return a, true
		}
	}
	return ActionNone, false
}

// Intent is the 4th-layer, high-level description of what the player wants.
type Intent struct {
	Action Action
}

// RawInput is the 1st-layer event emitted directly from an input device.
// Code is a device-neutral key name (e.g. "q", "arrow_up", "space").
type RawInput struct {
	Device    Device
	Code      string
	Timestamp time.Time
}

// DebouncedInput is the 2nd-layer representation after debouncing.
// Terminal raw mode and ebiten's just-pressed query already deliver one
// event per press, so this is a thin conversion.
type DebouncedInput struct {
	Device Device
	Code   string
}

// NewDebouncedInput converts a raw event to a debounced event.
func NewDebouncedInput(raw RawInput) DebouncedInput {
	return DebouncedInput{
		Device: raw.Device,
		Code:   raw.Code,
	}
}

// reserved codes always keep their default binding.
var reserved = map[string]bool{
	"ctrl_c": true,
	"escape": true,
}

// Keymap maps key codes to actions (3rd layer). Several codes may point to
// the same action.
type Keymap struct {
	bindings map[string]Action
}

// DefaultKeymap returns the built-in bindings.
func DefaultKeymap() *Keymap {
	return &Keymap{bindings: map[string]Action{
		"q":      ActionQuit,
		"escape": ActionQuit,
		"ctrl_c": ActionQuit,

		"space": ActionTogglePlay,
		"p":     ActionTogglePlay,

		".": ActionStep,
		"s": ActionStep,

		"arrow_right": ActionNextScreen,
		"tab":         ActionNextScreen,
		"n":           ActionNextScreen,
		"arrow_left":  ActionPrevScreen,
		"b":           ActionPrevScreen,

		"x": ActionScreenshot,
		"d": ActionDump,

		"h": ActionHelp,
		"?": ActionHelp,
	}}
}

// MapToIntent applies the bindings to a debounced input and returns a
// high-level Intent.
func (k *Keymap) MapToIntent(ev DebouncedInput) Intent {
	if act, ok := k.bindings[ev.Code]; ok {
		return Intent{Action: act}
	}
	return Intent{Action: ActionNone}
}

// Resolve maps a raw key code straight to an Intent.
func (k *Keymap) Resolve(device Device, code string) Intent {
	return k.MapToIntent(NewDebouncedInput(RawInput{
		Device:    device,
		Code:      code,
		Timestamp: time.Now(),
	}))
}

// BindingsByAction returns the current bindings grouped by action.
func (k *Keymap) BindingsByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, act := range k.bindings {
		result[act] = append(result[act], code)
	}
	// Stable ordering so help text doesn't shuffle between runs.
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}

// SetSingleBinding replaces all bindings for the given action with a single
// code. Reserved codes are neither removed nor rebound.
func (k *Keymap) SetSingleBinding(action Action, code string) {
	for c, a := range k.bindings {
		if reserved[c] {
			continue
		}
		if a == action {
			delete(k.bindings, c)
		}
	}
	if code != "" && !reserved[code] {
		k.bindings[code] = action
	}
}
