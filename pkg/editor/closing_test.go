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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tabpad "github.com/timburks/tabpad/pkg/types"
)

func TestCloseUnmodifiedTab(t *testing.T) {
	e, p, _ := newTestEditor(ScopeDocument)
	d := e.NewTab("notes", "text")

	closed := false
	e.CloseTab(d, func(ok bool) { closed = ok })
	assert.True(t, closed)
	assert.Empty(t, p.confirms)
	assert.Equal(t, 1, e.GetTabs().Len())
	assert.Equal(t, -1, e.GetTabs().Index(d))
}

func TestCloseLastTabOpensEmptyTab(t *testing.T) {
	e, _, _ := newTestEditor(ScopeDocument)
	d := e.GetActiveDocument()
	e.CloseActiveTab()
	require.Equal(t, 1, e.GetTabs().Len())
	assert.NotEqual(t, d, e.GetActiveDocument())
	assert.Equal(t, "Untitled", e.GetActiveDocument().Label())
}

func TestCloseModifiedTabCancel(t *testing.T) {
	e, p, _ := newTestEditor(ScopeDocument)
	e.InsertText("draft")
	d := e.GetActiveDocument()

	p.choices = []tabpad.Choice{tabpad.ChoiceCancel}
	closed := true
	e.CloseTab(d, func(ok bool) { closed = ok })
	assert.False(t, closed)
	assert.Equal(t, []string{"The document 'Untitled' has been modified. Save changes?"}, p.confirms)
	assert.Equal(t, d, e.GetActiveDocument())
	assert.Equal(t, "draft", d.Text())
	assert.True(t, e.IsModified(d))
}

func TestCloseModifiedTabDiscard(t *testing.T) {
	e, p, _ := newTestEditor(ScopeDocument)
	e.InsertText("draft")
	d := e.GetActiveDocument()

	p.choices = []tabpad.Choice{tabpad.ChoiceDiscard}
	e.CloseTab(d, nil)
	require.Equal(t, 1, e.GetTabs().Len())
	assert.Equal(t, "", e.GetActiveDocument().Text())
}

func TestCloseModifiedTabSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "draft.txt")
	e, p, _ := newTestEditor(ScopeDocument)
	keep := e.NewTab("keep", "")
	e.GetTabs().Activate(e.GetTabs().Get(0))
	e.InsertText("draft")
	d := e.GetActiveDocument()

	p.choices = []tabpad.Choice{tabpad.ChoiceSave}
	p.answers = []string{path}
	e.CloseTab(d, nil)
	assert.Equal(t, keep, e.GetActiveDocument())
	assert.Equal(t, 1, e.GetTabs().Len())

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "draft", string(b))
}

func TestCloseModifiedTabSaveCancelledKeepsTab(t *testing.T) {
	e, p, _ := newTestEditor(ScopeDocument)
	e.InsertText("draft")
	d := e.GetActiveDocument()

	p.choices = []tabpad.Choice{tabpad.ChoiceSave}
	closed := true
	e.CloseTab(d, func(ok bool) { closed = ok })
	assert.False(t, closed)
	assert.Equal(t, d, e.GetActiveDocument())
	assert.Equal(t, []string{"Save as: "}, p.asks)
}

func TestRequestClose(t *testing.T) {
	dir := t.TempDir()
	e, p, _ := newTestEditor(ScopeDocument)
	first := e.GetActiveDocument()
	e.InsertText("one")
	e.NewTab("clean", "")
	third := e.NewTab("", "")
	e.InsertText("three")

	p.choices = []tabpad.Choice{tabpad.ChoiceDiscard, tabpad.ChoiceSave}
	p.answers = []string{filepath.Join(dir, "three.txt")}
	closed := false
	e.RequestClose(func(ok bool) { closed = ok })
	assert.True(t, closed)
	assert.Len(t, p.confirms, 2)
	assert.Equal(t, third, e.GetActiveDocument())
	assert.True(t, e.IsModified(first))
	assert.False(t, e.IsModified(third))
}

func TestRequestCloseCancelStops(t *testing.T) {
	e, p, _ := newTestEditor(ScopeDocument)
	first := e.GetActiveDocument()
	e.InsertText("one")
	e.NewTab("", "")
	e.InsertText("two")

	p.choices = []tabpad.Choice{tabpad.ChoiceCancel}
	closed := true
	e.RequestClose(func(ok bool) { closed = ok })
	assert.False(t, closed)
	assert.Len(t, p.confirms, 1)
	assert.Equal(t, first, e.GetActiveDocument(), "the tab being confirmed is selected")
}

func TestRequestCloseWithoutPrompterCancels(t *testing.T) {
	e := NewEditor(Options{Pasteboard: &MemoryPasteboard{}})
	e.InsertText("one")
	closed := true
	e.RequestClose(func(ok bool) { closed = ok })
	assert.False(t, closed)
}

func TestTrackerScopes(t *testing.T) {
	a, b := NewDocument("a", ""), NewDocument("b", "")

	tracker := NewTracker(ScopeDocument)
	tracker.MarkModified(a)
	assert.True(t, tracker.IsModified(a))
	assert.False(t, tracker.IsModified(b))
	tracker.Clear(a)
	assert.False(t, tracker.IsModified(a))

	global := NewTracker(ScopeGlobal)
	global.MarkModified(a)
	assert.True(t, global.IsModified(b))
	global.Clear(b)
	assert.False(t, global.IsModified(a))

	scope, err := ParseScope("global")
	require.NoError(t, err)
	assert.Equal(t, ScopeGlobal, scope)
	scope, err = ParseScope("")
	require.NoError(t, err)
	assert.Equal(t, ScopeDocument, scope)
	_, err = ParseScope("tab")
	assert.Error(t, err)
}

func TestGlobalScopeSaveClearsEveryTab(t *testing.T) {
	dir := t.TempDir()
	e, p, _ := newTestEditor(ScopeGlobal)
	first := e.GetActiveDocument()
	e.InsertText("one")
	second := e.NewTab("", "")
	e.InsertText("two")
	assert.True(t, e.IsModified(first))

	// Saving the first tab clears the shared flag, so the second is not offered.
	p.choices = []tabpad.Choice{tabpad.ChoiceSave}
	p.answers = []string{filepath.Join(dir, "one.txt")}
	closed := false
	e.RequestClose(func(ok bool) { closed = ok })
	assert.True(t, closed)
	assert.Len(t, p.confirms, 1)
	assert.False(t, e.IsModified(second))
	assert.Equal(t, "two", second.Text())
}

func TestGlobalScopeOpenClearsFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))

	e, _, _ := newTestEditor(ScopeGlobal)
	d := e.GetActiveDocument()
	e.InsertText("draft")
	_, err := e.OpenFile(path)
	require.NoError(t, err)
	assert.False(t, e.IsModified(d))
}
