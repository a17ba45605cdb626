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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindSelectsMatch(t *testing.T) {
	e, _, _ := newTestEditor(ScopeDocument)
	d := e.NewTab("", "hello world")
	d.SetCursor(0)

	require.NoError(t, e.Find("world"))
	start, end, ok := d.Selection()
	require.True(t, ok)
	assert.Equal(t, 6, start)
	assert.Equal(t, 11, end)
	assert.Equal(t, "world", e.LastSearch())
}

func TestFindNextWrapsAround(t *testing.T) {
	e, _, _ := newTestEditor(ScopeDocument)
	d := e.NewTab("", "ab ab ab")
	d.SetCursor(0)

	require.NoError(t, e.Find("ab"))
	assert.Equal(t, 2, d.Cursor())
	e.FindNext()
	assert.Equal(t, 5, d.Cursor())
	e.FindNext()
	assert.Equal(t, 8, d.Cursor())
	require.True(t, e.FindNext())
	start, end, _ := d.Selection()
	assert.Equal(t, 0, start)
	assert.Equal(t, 2, end)
}

func TestFindIsCaseSensitive(t *testing.T) {
	e, _, _ := newTestEditor(ScopeDocument)
	d := e.NewTab("", "Hello")
	d.SetCursor(0)
	require.NoError(t, e.Find("hello"))
	assert.False(t, d.HasSelection())
	assert.Equal(t, "Cannot find 'hello'", e.GetStatus().Message())
}

func TestFindMissRestoresSelection(t *testing.T) {
	e, _, _ := newTestEditor(ScopeDocument)
	d := e.NewTab("", "hello world")
	d.Select(1, 3)

	require.NoError(t, e.Find("xyz"))
	start, end, ok := d.Selection()
	require.True(t, ok)
	assert.Equal(t, 1, start)
	assert.Equal(t, 3, end)
	assert.Equal(t, 3, d.Cursor())
	assert.Equal(t, "Cannot find 'xyz'", e.GetStatus().Message())
}

func TestFindRejectsEmptyTerm(t *testing.T) {
	e, _, _ := newTestEditor(ScopeDocument)
	d := e.NewTab("", "hello")
	d.SetCursor(2)
	assert.ErrorIs(t, e.Find(""), ErrEmptySearch)
	assert.Equal(t, 2, d.Cursor())
	assert.Equal(t, "", e.LastSearch())
	assert.False(t, e.FindNext(), "no last search")
}

func TestReplace(t *testing.T) {
	e, _, _ := newTestEditor(ScopeDocument)
	d := e.NewTab("", "cat cat cat")
	d.SetCursor(0)

	// The first call only finds the term.
	require.NoError(t, e.Replace("cat", "dog"))
	assert.Equal(t, "cat cat cat", d.Text())
	assert.Equal(t, "cat", d.SelectedText())

	require.NoError(t, e.Replace("cat", "dog"))
	assert.Equal(t, "dog cat cat", d.Text())
	start, end, _ := d.Selection()
	assert.Equal(t, 4, start)
	assert.Equal(t, 7, end)
	assert.True(t, e.IsModified(d))

	require.NoError(t, e.Replace("cat", "dog"))
	require.NoError(t, e.Replace("cat", "dog"))
	assert.Equal(t, "dog dog dog", d.Text())
	assert.Equal(t, "Cannot find 'cat'", e.GetStatus().Message())

	e.Undo()
	assert.Equal(t, "dog dog cat", d.Text())
	assert.ErrorIs(t, e.Replace("", "x"), ErrEmptySearch)
}

func TestLastSearchIsSharedByTabs(t *testing.T) {
	e, _, _ := newTestEditor(ScopeDocument)
	first := e.NewTab("", "alpha beta")
	first.SetCursor(0)
	require.NoError(t, e.Find("beta"))

	second := e.NewTab("", "beta gamma")
	second.SetCursor(0)
	require.True(t, e.FindNext())
	assert.Equal(t, "beta", second.SelectedText())
}

func TestPromptFindAndReplace(t *testing.T) {
	e, p, _ := newTestEditor(ScopeDocument)
	d := e.NewTab("", "one two one")
	d.SetCursor(0)

	p.answers = []string{"one"}
	e.PromptFind()
	assert.Equal(t, "one", d.SelectedText())

	p.answers = []string{"one", ""}
	e.PromptReplace()
	assert.Equal(t, " two one", d.Text(), "an empty replacement deletes the match")
	assert.Equal(t, []string{"Find: ", "Replace: ", "Replace with: "}, p.asks)

	// Cancelling the dialog changes nothing.
	e.PromptFind()
	assert.Equal(t, " two one", d.Text())
	assert.Equal(t, "one", e.LastSearch())
}

func TestFindNextSingleMatchFromAnyCursor(t *testing.T) {
	e, _, _ := newTestEditor(ScopeDocument)
	d := e.NewTab("", "hello world")
	d.SetCursor(0)
	require.NoError(t, e.Find("world"))
	require.True(t, e.FindNext())
	start, end, _ := d.Selection()
	assert.Equal(t, 6, start)
	assert.Equal(t, 11, end)

	for cursor := 0; cursor <= d.CharCount(); cursor++ {
		d.SetCursor(cursor)
		require.True(t, e.FindNext())
		assert.Equal(t, "world", d.SelectedText(), "cursor %d", cursor)
		assert.Equal(t, 11, d.Cursor())
	}
}
