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

package watch

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcherReportsWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.txt")
	other := filepath.Join(dir, "other.txt")
	require.NoError(t, os.WriteFile(path, []byte("one"), 0644))

	w, err := NewWatcher()
	require.NoError(t, err)
	defer w.Close()
	require.NoError(t, w.Sync([]string{path}))
	assert.Equal(t, 1, w.Watching())

	require.NoError(t, os.WriteFile(other, []byte("ignored"), 0644))
	require.NoError(t, os.WriteFile(path, []byte("two"), 0644))

	select {
	case changed := <-w.Changes():
		assert.Equal(t, path, changed)
	case <-time.After(5 * time.Second):
		t.Fatal("no change reported")
	}
}

func TestWatcherSyncDropsDirectories(t *testing.T) {
	a := filepath.Join(t.TempDir(), "a.txt")
	b := filepath.Join(t.TempDir(), "b.txt")

	w, err := NewWatcher()
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, w.Sync([]string{a, b}))
	assert.Equal(t, 2, w.Watching())
	require.NoError(t, w.Sync([]string{b}))
	assert.Equal(t, 1, w.Watching())
	require.NoError(t, w.Sync(nil))
	assert.Equal(t, 0, w.Watching())
}

func TestWatcherSyncMissingDirectory(t *testing.T) {
	w, err := NewWatcher()
	require.NoError(t, err)
	defer w.Close()

	assert.Error(t, w.Sync([]string{filepath.Join(t.TempDir(), "missing", "a.txt")}))
	assert.Equal(t, 0, w.Watching())
}
