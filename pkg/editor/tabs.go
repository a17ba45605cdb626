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

// Tabs is the ordered set of documents open in a window, with one active document.
type Tabs struct {
	documents []*Document
	active    int
}

func NewTabs() *Tabs {
	return &Tabs{active: -1}
}

// Add appends a document and makes it active.
func (t *Tabs) Add(d *Document) {
	t.documents = append(t.documents, d)
	t.active = len(t.documents) - 1
}

// Remove takes a document out of the tabs. When the active tab is removed,
// the tab that slides into its place becomes active, or the last tab if it was last.
func (t *Tabs) Remove(d *Document) bool {
	i := t.Index(d)
	if i < 0 {
		return false
	}
	t.documents = append(t.documents[:i], t.documents[i+1:]...)
	switch {
	case len(t.documents) == 0:
		t.active = -1
	case i < t.active:
		t.active--
	case i == t.active && t.active >= len(t.documents):
		t.active = len(t.documents) - 1
	}
	return true
}

// Active returns the active document, or nil if there are no tabs.
func (t *Tabs) Active() *Document {
	if t.active < 0 || t.active >= len(t.documents) {
		return nil
	}
	return t.documents[t.active]
}

func (t *Tabs) ActiveIndex() int {
	return t.active
}

func (t *Tabs) Len() int {
	return len(t.documents)
}

func (t *Tabs) Get(i int) *Document {
	if i < 0 || i >= len(t.documents) {
		return nil
	}
	return t.documents[i]
}

func (t *Tabs) Index(d *Document) int {
	for i, doc := range t.documents {
		if doc == d {
			return i
		}
	}
	return -1
}

// Documents returns a copy of the document list in tab order.
func (t *Tabs) Documents() []*Document {
	documents := make([]*Document, len(t.documents))
	copy(documents, t.documents)
	return documents
}

func (t *Tabs) Select(i int) bool {
	if i < 0 || i >= len(t.documents) {
		return false
	}
	t.active = i
	return true
}

func (t *Tabs) Activate(d *Document) bool {
	return t.Select(t.Index(d))
}

func (t *Tabs) Next() {
	if len(t.documents) > 0 {
		t.active = (t.active + 1) % len(t.documents)
	}
}

func (t *Tabs) Previous() {
	if len(t.documents) > 0 {
		t.active = (t.active - 1 + len(t.documents)) % len(t.documents)
	}
}
