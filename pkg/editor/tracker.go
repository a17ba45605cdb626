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

import "fmt"

// A Scope says where the modified flag lives.
type Scope int

const (
	// ScopeDocument keeps one modified flag per document.
	ScopeDocument Scope = iota
	// ScopeGlobal keeps one modified flag for all the documents in a window.
	// Saving any document clears it, so other modified documents stop prompting.
	ScopeGlobal
)

func ParseScope(name string) (Scope, error) {
	switch name {
	case "", "document":
		return ScopeDocument, nil
	case "global":
		return ScopeGlobal, nil
	default:
		return ScopeDocument, fmt.Errorf("unknown dirty scope %q (want document or global)", name)
	}
}

func (s Scope) String() string {
	if s == ScopeGlobal {
		return "global"
	}
	return "document"
}

// The Tracker records which documents have unsaved changes.
type Tracker struct {
	scope    Scope
	modified bool // the shared flag for ScopeGlobal
}

func NewTracker(scope Scope) *Tracker {
	return &Tracker{scope: scope}
}

func (t *Tracker) Scope() Scope {
	return t.scope
}

func (t *Tracker) MarkModified(d *Document) {
	if t.scope == ScopeGlobal {
		t.modified = true
		return
	}
	d.modified = true
}

func (t *Tracker) IsModified(d *Document) bool {
	if t.scope == ScopeGlobal {
		return t.modified
	}
	return d != nil && d.modified
}

func (t *Tracker) Clear(d *Document) {
	if t.scope == ScopeGlobal {
		t.modified = false
		return
	}
	d.modified = false
}
