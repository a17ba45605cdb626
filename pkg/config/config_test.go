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

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/timburks/tabpad/pkg/editor"
)

func writeConfig(t *testing.T, text string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(text), 0644))
	return path
}

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	config, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 60*time.Second, config.AutosaveInterval.Duration())
	assert.Equal(t, 2*time.Second, config.StatusDuration.Duration())
	assert.True(t, config.DarkMode)
	assert.True(t, config.WordWrap)
	assert.Equal(t, "document", config.DirtyScope)
	assert.Equal(t, 10, config.Font.Size)
	assert.Equal(t, "(save)", config.Keys["ctrl+s"])
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
autosave_interval: 5m
status_duration: 3s
dark_mode: false
dirty_scope: global
font:
  family: Consolas
  size: 14
keys:
  ctrl+g: (find-next)
themes:
  dark:
    text: "#ffffff"
`)
	config, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 5*time.Minute, config.AutosaveInterval.Duration())
	assert.Equal(t, 3*time.Second, config.StatusDuration.Duration())
	assert.False(t, config.DarkMode)
	assert.Equal(t, "global", config.DirtyScope)
	assert.Equal(t, "(find-next)", config.Keys["ctrl+g"])
	assert.Equal(t, "(save)", config.Keys["ctrl+s"], "default bindings are kept")
	assert.Equal(t, "#ffffff", config.Themes.Dark.Text)
	assert.Equal(t, "#252525", config.Themes.Dark.Background)

	options := config.EditorOptions()
	assert.Equal(t, editor.ScopeGlobal, options.Scope)
	assert.Equal(t, editor.Font{Family: "Consolas", Size: 14}, options.Font)
	assert.False(t, options.DarkMode)
}

func TestLoadZeroAutosaveDisables(t *testing.T) {
	config, err := Load(writeConfig(t, "autosave_interval: 0s\n"))
	require.NoError(t, err)
	assert.Zero(t, config.AutosaveInterval)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	for name, text := range map[string]string{
		"duration": "autosave_interval: soon\n",
		"scope":    "dirty_scope: window\n",
		"font":     "font:\n  size: 0\n",
		"key":      "keys:\n  ctrl+shift+q: (exit)\n",
		"binding":  "keys:\n  ctrl+g: find-next\n",
		"color":    "themes:\n  light:\n    text: blue\n",
		"yaml":     "dark_mode: [\n",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, text))
			assert.Error(t, err)
		})
	}
}

func TestThemeSelection(t *testing.T) {
	config := Default()
	assert.Equal(t, DarkTheme(), config.Theme(true))
	assert.Equal(t, LightTheme(), config.Theme(false))
}
