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
	"errors"
	"fmt"
)

// ErrEmptySearch is returned when a search or replace is given no text to look for.
var ErrEmptySearch = errors.New("nothing to search for")

// LastSearch returns the term used by FindNext.
func (e *Editor) LastSearch() string {
	return e.lastSearch
}

// Find remembers term and selects its next occurrence in the active document.
func (e *Editor) Find(term string) error {
	if term == "" {
		return ErrEmptySearch
	}
	e.lastSearch = term
	e.FindNext()
	return nil
}

// FindNext selects the next occurrence of the last search term after the cursor,
// wrapping around to the start of the document. If there is no occurrence the
// cursor and selection are left as they were and a message is shown.
func (e *Editor) FindNext() bool {
	d := e.tabs.Active()
	if d == nil || e.lastSearch == "" {
		return false
	}
	cursor, anchor, marking := d.cursor, d.anchor, d.marking
	if d.findForward(e.lastSearch, d.cursor) {
		return true
	}
	if d.findForward(e.lastSearch, 0) {
		return true
	}
	d.cursor, d.anchor, d.marking = cursor, anchor, marking
	e.status.Show(fmt.Sprintf("Cannot find '%s'", e.lastSearch))
	return false
}

// Replace replaces the selection with replacement if the selection is exactly term,
// then moves on to the next occurrence of term.
func (e *Editor) Replace(term, replacement string) error {
	if term == "" {
		return ErrEmptySearch
	}
	e.lastSearch = term
	d := e.tabs.Active()
	if d == nil {
		return nil
	}
	if start, end, ok := d.Selection(); ok && d.buffer.Slice(start, end) == term {
		e.edit(d, replace(start, end, replacement))
	}
	e.FindNext()
	return nil
}
