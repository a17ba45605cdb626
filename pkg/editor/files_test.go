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
)

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("line one\nline two\n"), 0644))

	e, _, _ := newTestEditor(ScopeDocument)
	d, err := e.OpenFile(path)
	require.NoError(t, err)
	assert.Equal(t, d, e.GetActiveDocument())
	assert.Equal(t, 2, e.GetTabs().Len())
	assert.Equal(t, "notes.txt", d.Label())
	assert.Equal(t, path, d.Path())
	assert.Equal(t, "line one\nline two\n", d.Text())
	assert.False(t, e.IsModified(d))
}

func TestOpenFileDropsInvalidUTF8(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.txt")
	require.NoError(t, os.WriteFile(path, []byte("ok\xff\xfe!"), 0644))

	e, _, _ := newTestEditor(ScopeDocument)
	d, err := e.OpenFile(path)
	require.NoError(t, err)
	assert.Equal(t, "ok!", d.Text())
}

func TestOpenFileErrors(t *testing.T) {
	e, _, _ := newTestEditor(ScopeDocument)
	_, err := e.OpenFile(filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
	_, err = e.OpenFile(t.TempDir())
	assert.Error(t, err)
	assert.Equal(t, 1, e.GetTabs().Len())

	d, err := e.OpenOrCreate(filepath.Join(t.TempDir(), "new.txt"))
	require.NoError(t, err)
	assert.Equal(t, "new.txt", d.Label())
	assert.Equal(t, "", d.Text())
	assert.Equal(t, "", d.Path())
}

func TestOpenOrCreateAsksBeforeFirstSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "new.txt")
	e, p, _ := newTestEditor(ScopeDocument)
	d, err := e.OpenOrCreate(path)
	require.NoError(t, err)
	assert.Equal(t, "", d.Path())
	assert.False(t, e.Autosave())
	e.DiscardPristine()
	assert.Equal(t, d, e.GetActiveDocument(), "a named tab is kept")

	e.InsertText("x")
	assert.False(t, e.Autosave(), "autosave never creates the file")
	_, err = os.Stat(path)
	assert.ErrorIs(t, err, os.ErrNotExist)

	saved := true
	e.Save(d, func(ok bool) { saved = ok })
	assert.False(t, saved)
	assert.Equal(t, []string{"Save as: "}, p.asks)
	assert.Equal(t, []string{path}, p.initials)
	_, err = os.Stat(path)
	assert.ErrorIs(t, err, os.ErrNotExist)

	p.answers = []string{path}
	e.Save(d, func(ok bool) { saved = ok })
	require.True(t, saved)
	assert.Equal(t, path, d.Path())
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "x", string(b))
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello"), 0644))

	e, p, _ := newTestEditor(ScopeDocument)
	d, err := e.OpenFile(path)
	require.NoError(t, err)
	d.SetCursor(5)
	e.InsertText(", world\r\n")
	assert.Equal(t, "notes.txt*", d.Label())
	assert.True(t, e.IsModified(d))

	saved := false
	e.Save(d, func(ok bool) { saved = ok })
	require.True(t, saved)
	assert.Empty(t, p.asks, "a bound document saves without asking")
	assert.Equal(t, "notes.txt", d.Label())
	assert.False(t, e.IsModified(d))
	assert.Equal(t, "Saved to "+path, e.GetStatus().Message())

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello, world\r\n", string(b))
}

func TestSaveUnboundAsksForPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fresh.txt")
	e, p, _ := newTestEditor(ScopeDocument)
	e.InsertText("draft")
	d := e.GetActiveDocument()

	p.answers = []string{path}
	e.SaveActive()
	assert.Equal(t, []string{"Save as: "}, p.asks)
	assert.Equal(t, "fresh.txt", d.Label())
	assert.Equal(t, path, d.Path())
	assert.False(t, e.IsModified(d))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "draft", string(b))
}

func TestSaveAsCancelled(t *testing.T) {
	e, _, _ := newTestEditor(ScopeDocument)
	e.InsertText("draft")
	d := e.GetActiveDocument()

	saved := true
	e.SaveAs(d, func(ok bool) { saved = ok })
	assert.False(t, saved)
	assert.Equal(t, "Untitled", d.Label())
	assert.Equal(t, "", d.Path())
	assert.True(t, e.IsModified(d))
}

func TestSaveAsRebinds(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first.txt")
	second := filepath.Join(dir, "second.txt")
	require.NoError(t, os.WriteFile(first, []byte("text"), 0644))

	e, p, _ := newTestEditor(ScopeDocument)
	d, err := e.OpenFile(first)
	require.NoError(t, err)
	e.InsertText(">")

	p.answers = []string{second}
	e.SaveActiveAs()
	assert.Equal(t, "second.txt", d.Label())
	assert.Equal(t, second, d.Path())
	assert.False(t, e.IsModified(d))

	b, err := os.ReadFile(first)
	require.NoError(t, err)
	assert.Equal(t, "text", string(b))
	b, err = os.ReadFile(second)
	require.NoError(t, err)
	assert.Equal(t, ">text", string(b))
}

func TestSaveErrorIsVisible(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "notes.txt")
	e, p, _ := newTestEditor(ScopeDocument)
	p.answers = []string{path}
	d, err := e.OpenOrCreate(path)
	require.NoError(t, err)
	e.InsertText("x")

	saved := true
	e.Save(d, func(ok bool) { saved = ok })
	assert.False(t, saved)
	assert.True(t, e.IsModified(d))
	assert.Contains(t, e.GetStatus().Message(), "Error: ")
	assert.Equal(t, "notes.txt", d.Label(), "no marker without a file")
	assert.Equal(t, "", d.Path())
}

func TestPromptOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("hi"), 0644))

	e, p, _ := newTestEditor(ScopeDocument)
	p.answers = []string{path, filepath.Join(t.TempDir(), "missing.txt")}
	e.PromptOpen()
	assert.Equal(t, "hi", e.GetActiveDocument().Text())
	e.PromptOpen()
	assert.Contains(t, e.GetStatus().Message(), "Error: ")
	assert.Equal(t, 2, e.GetTabs().Len())
}

func TestFileChanged(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("one"), 0644))

	e, _, _ := newTestEditor(ScopeDocument)
	_, err := e.OpenFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{path}, e.Paths())

	e.FileChanged(path)
	assert.Equal(t, "", e.GetStatus().Message(), "unchanged contents are ignored")

	require.NoError(t, os.WriteFile(path, []byte("two"), 0644))
	e.FileChanged(path)
	assert.Equal(t, "notes.txt changed on disk", e.GetStatus().Message())
}

func TestOpenSaveReproducesBytes(t *testing.T) {
	original := []byte("first line\r\n\tsecond line\n\nlast line without newline ünïcödé")
	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, original, 0644))

	e, _, _ := newTestEditor(ScopeDocument)
	d, err := e.OpenFile(path)
	require.NoError(t, err)
	e.Save(d, nil)

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, original, b)
}
