package menu

import (
	"fmt"
	"strings"

	"ansiscreen/pkg/engine/input"
)

// BindingItem shows the keys bound to one action.
type BindingItem struct {
	Action input.Action
	Codes  []string
}

// Label returns "action  keys", with the keys highlighted.
func (b BindingItem) Label() string {
	codes := strings.Join(b.Codes, ", ")
	if codes == "" {
		codes = "(unbound)"
	}
	return fmt.Sprintf("%-12s [color=bright_yellow]%s[/color]", b.Action, codes)
}

// helpActions is the display order of the help screen.
var helpActions = []input.Action{
	input.ActionTogglePlay,
	input.ActionStep,
	input.ActionNextScreen,
	input.ActionPrevScreen,
	input.ActionScreenshot,
	input.ActionDump,
	input.ActionHelp,
	input.ActionQuit,
}

// Help returns the controls menu for the current bindings of k.
func Help(k *input.Keymap) Menu {
	byAction := k.BindingsByAction()
	items := make([]Item, len(helpActions))
	for i, action := range helpActions {
		items[i] = BindingItem{Action: action, Codes: byAction[action]}
	}
	return Menu{
		Title:        "Controls",
		Items:        items,
		Instructions: "Press any key to return",
	}
}
