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

package editor

import (
	"fmt"

	tabpad "github.com/timburks/tabpad/pkg/types"
)

// CloseTab closes a document, first offering to save it if it is modified.
// If the registry becomes empty, a new empty tab is opened.
// done, if not nil, is called with true if the tab was closed.
func (e *Editor) CloseTab(d *Document, done func(closed bool)) {
	if d == nil || e.tabs.Index(d) < 0 {
		finish(done, false)
		return
	}
	remove := func() {
		e.tabs.Remove(d)
		if e.tabs.Len() == 0 {
			e.NewTab("", "")
		}
		finish(done, true)
	}
	if !e.tracker.IsModified(d) {
		remove()
		return
	}
	e.confirm(d, func(choice tabpad.Choice) {
		switch choice {
		case tabpad.ChoiceSave:
			e.tabs.Activate(d)
			e.Save(d, func(saved bool) {
				if saved {
					remove()
				} else {
					finish(done, false)
				}
			})
		case tabpad.ChoiceDiscard:
			remove()
		default:
			finish(done, false)
		}
	})
}

// CloseActiveTab closes the active tab.
func (e *Editor) CloseActiveTab() {
	e.CloseTab(e.tabs.Active(), nil)
}

// RequestClose offers to save each modified tab in order before the window closes.
// Cancelling, or a save that does not complete, stops the sequence and done gets false.
func (e *Editor) RequestClose(done func(ok bool)) {
	documents := e.tabs.Documents()
	var step func(i int)
	step = func(i int) {
		if i >= len(documents) {
			finish(done, true)
			return
		}
		d := documents[i]
		if !e.tracker.IsModified(d) {
			step(i + 1)
			return
		}
		e.tabs.Activate(d)
		e.confirm(d, func(choice tabpad.Choice) {
			switch choice {
			case tabpad.ChoiceSave:
				e.Save(d, func(saved bool) {
					if saved {
						step(i + 1)
					} else {
						finish(done, false)
					}
				})
			case tabpad.ChoiceDiscard:
				step(i + 1)
			default:
				finish(done, false)
			}
		})
	}
	step(0)
}

func (e *Editor) confirm(d *Document, done func(tabpad.Choice)) {
	if e.prompter == nil {
		done(tabpad.ChoiceCancel)
		return
	}
	e.prompter.Confirm(fmt.Sprintf("The document '%s' has been modified. Save changes?", d.label), done)
}
