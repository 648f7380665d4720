package input

import (
	"bufio"
	"bytes"
	"io"
	"reflect"
	"testing"
)

func TestReadKey(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"q", []string{"q"}},
		{"\x1b[A\x1b[B\x1bOC\x1b[D", []string{"arrow_up", "arrow_down", "arrow_right", "arrow_left"}},
		{" \r\t\x03\x7f", []string{"space", "enter", "tab", "ctrl_c", "backspace"}},
		{"\x1b\x1b", []string{"escape", "escape"}},
		{"\x1bp", []string{"escape", "p"}},
		{"\x1bq\x1b[A", []string{"escape", "q", "arrow_up"}},
		{"\x1b", []string{"escape"}},
		{"\x1b[Z.", []string{"", "."}},
		{"\x01", []string{""}},
	}
	for _, tc := range cases {
		r := bufio.NewReader(bytes.NewReader([]byte(tc.in)))
		var got []string
		for {
			key, err := ReadKey(r)
			if err == io.EOF {
				break
			}
			if err != nil {
				t.Fatalf("ReadKey(%q) error = %v", tc.in, err)
			}
			got = append(got, key)
		}
		if !reflect.DeepEqual(got, tc.want) {
			t.Errorf("ReadKey(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestKeymap_Defaults(t *testing.T) {
	k := DefaultKeymap()
	cases := map[string]Action{
		"q":           ActionQuit,
		"ctrl_c":      ActionQuit,
		"space":       ActionTogglePlay,
		"arrow_right": ActionNextScreen,
		"arrow_left":  ActionPrevScreen,
		"x":           ActionScreenshot,
		"z":           ActionNone,
	}
	for code, want := range cases {
		if got := k.Resolve(DeviceTerminal, code).Action; got != want {
			t.Errorf("Resolve(%q) = %v, want %v", code, got, want)
		}
	}
}

func TestKeymap_SetSingleBinding(t *testing.T) {
	k := DefaultKeymap()
	k.SetSingleBinding(ActionQuit, "k")

	if got := k.BindingsByAction()[ActionQuit]; !reflect.DeepEqual(got, []string{"ctrl_c", "escape", "k"}) {
		t.Errorf("quit bindings = %v, want reserved codes plus k", got)
	}
	if k.Resolve(DeviceTerminal, "q").Action != ActionNone {
		t.Error("old binding q still mapped")
	}

	k.SetSingleBinding(ActionTogglePlay, "escape")
	if k.Resolve(DeviceTerminal, "escape").Action != ActionQuit {
		t.Error("reserved code was rebound")
	}
}

func TestParseAction(t *testing.T) {
	for a := range actionNames {
		got, ok := ParseAction(a.String())
		if !ok || got != a {
			t.Errorf("ParseAction(%q) = %v, %v; want %v", a.String(), got, ok, a)
		}
	}
	if _, ok := ParseAction("fly"); ok {
		t.Error("ParseAction(fly) succeeded")
	}
	if ActionNone.String() != "none" {
		t.Errorf("ActionNone.String() = %q, want none", ActionNone.String())
	}
}
