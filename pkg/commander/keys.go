//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//

package commander

import (
	"fmt"
	"strings"

	tabpad "github.com/timburks/tabpad/pkg/types"
)

var keyNames = map[tabpad.Key]string{
	tabpad.KeyArrowDown:  "down",
	tabpad.KeyArrowLeft:  "left",
	tabpad.KeyArrowRight: "right",
	tabpad.KeyArrowUp:    "up",
	tabpad.KeyBackspace:  "backspace",
	tabpad.KeyDelete:     "delete",
	tabpad.KeyInsert:     "insert",
	tabpad.KeyEnd:        "end",
	tabpad.KeyEnter:      "enter",
	tabpad.KeyEsc:        "esc",
	tabpad.KeyHome:       "home",
	tabpad.KeyPgdn:       "pgdn",
	tabpad.KeyPgup:       "pgup",
	tabpad.KeySpace:      "space",
	tabpad.KeyTab:        "tab",
	tabpad.KeyCtrlSpace:  "ctrl+space",
	tabpad.KeyCtrlA:      "ctrl+a",
	tabpad.KeyCtrlB:      "ctrl+b",
	tabpad.KeyCtrlC:      "ctrl+c",
	tabpad.KeyCtrlD:      "ctrl+d",
	tabpad.KeyCtrlE:      "ctrl+e",
	tabpad.KeyCtrlF:      "ctrl+f",
	tabpad.KeyCtrlG:      "ctrl+g",
	tabpad.KeyCtrlJ:      "ctrl+j",
	tabpad.KeyCtrlK:      "ctrl+k",
	tabpad.KeyCtrlL:      "ctrl+l",
	tabpad.KeyCtrlN:      "ctrl+n",
	tabpad.KeyCtrlO:      "ctrl+o",
	tabpad.KeyCtrlP:      "ctrl+p",
	tabpad.KeyCtrlQ:      "ctrl+q",
	tabpad.KeyCtrlR:      "ctrl+r",
	tabpad.KeyCtrlS:      "ctrl+s",
	tabpad.KeyCtrlT:      "ctrl+t",
	tabpad.KeyCtrlU:      "ctrl+u",
	tabpad.KeyCtrlV:      "ctrl+v",
	tabpad.KeyCtrlW:      "ctrl+w",
	tabpad.KeyCtrlX:      "ctrl+x",
	tabpad.KeyCtrlY:      "ctrl+y",
	tabpad.KeyCtrlZ:      "ctrl+z",
	tabpad.KeyF1:         "f1",
	tabpad.KeyF2:         "f2",
	tabpad.KeyF3:         "f3",
	tabpad.KeyF4:         "f4",
	tabpad.KeyF5:         "f5",
	tabpad.KeyF6:         "f6",
	tabpad.KeyF7:         "f7",
	tabpad.KeyF8:         "f8",
	tabpad.KeyF9:         "f9",
	tabpad.KeyF10:        "f10",
	tabpad.KeyF11:        "f11",
	tabpad.KeyF12:        "f12",
}

// KeyName returns the name used for an event in key bindings, like "ctrl+s" or "alt+=".
// Plain characters have no name.
func KeyName(event *tabpad.Event) string {
	var name string
	if event.Key != tabpad.KeyUnsupported {
		name = keyNames[event.Key]
	} else if event.Ch != 0 && event.Alt {
		name = string(event.Ch)
	}
	if name == "" {
		return ""
	}
	if event.Alt {
		return "alt+" + name
	}
	return name
}

// DefaultKeys binds key names to commands.
func DefaultKeys() map[string]string {
	return map[string]string{
		"ctrl+t":     "(new-tab)",
		"ctrl+n":     "(new-window)",
		"f10":        "(next-window)",
		"ctrl+o":     "(open)",
		"ctrl+s":     "(save)",
		"f12":        "(save-as)",
		"ctrl+w":     "(close-tab)",
		"ctrl+q":     "(exit)",
		"ctrl+z":     "(undo)",
		"ctrl+y":     "(redo)",
		"ctrl+x":     "(cut)",
		"ctrl+c":     "(copy)",
		"ctrl+v":     "(paste)",
		"delete":     "(delete)",
		"backspace":  "(backspace)",
		"ctrl+f":     "(find)",
		"f3":         "(find-next)",
		"ctrl+r":     "(replace)",
		"ctrl+a":     "(select-all)",
		"f4":         "(word-wrap)",
		"f5":         "(font)",
		"f6":         "(text-color)",
		"f7":         "(background-color)",
		"alt+=":      "(zoom-in)",
		"alt+-":      "(zoom-out)",
		"alt+0":      "(zoom-reset)",
		"f8":         "(status-bar)",
		"f9":         "(dark-mode)",
		"alt+n":      "(next-tab)",
		"alt+p":      "(previous-tab)",
		"ctrl+space": "(set-mark)",
		"ctrl+e":     "(eval-expression)",
		"esc":        "(escape)",
		"left":       "(left)",
		"right":      "(right)",
		"up":         "(up)",
		"down":       "(down)",
		"home":       "(beginning-of-line)",
		"end":        "(end-of-line)",
		"pgup":       "(page-up)",
		"pgdn":       "(page-down)",
	}
}

// ValidateKeys checks that every binding names a known key and holds an expression.
func ValidateKeys(keys map[string]string) error {
	known := make(map[string]bool, len(keyNames))
	for _, name := range keyNames {
		known[name] = true
	}
	for name, expr := range keys {
		base := strings.TrimPrefix(name, "alt+")
		if !known[base] && !(strings.HasPrefix(name, "alt+") && len([]rune(base)) == 1) {
			return fmt.Errorf("unknown key %q", name)
		}
		if !strings.HasPrefix(strings.TrimSpace(expr), "(") {
			return fmt.Errorf("binding for %q is not an expression: %q", name, expr)
		}
	}
	return nil
}
