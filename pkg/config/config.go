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

// Package config loads tabpad settings from a YAML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	colorful "github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"

	"github.com/timburks/tabpad/pkg/commander"
	"github.com/timburks/tabpad/pkg/editor"
)

// A Duration is a time.Duration written as a string like "60s" or "2m".
type Duration time.Duration

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	v, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*d = Duration(v)
	return nil
}

func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}

func (d Duration) Duration() time.Duration {
	return time.Duration(d)
}

// A Font names the family and point size new documents start with.
type Font struct {
	Family string `yaml:"family"`
	Size   int    `yaml:"size"`
}

// A Theme holds the hex colors used to draw a window.
type Theme struct {
	Text       string `yaml:"text"`
	Background string `yaml:"background"`
	Bar        string `yaml:"bar"`
	BarText    string `yaml:"bar_text"`
	Selection  string `yaml:"selection"`
	ActiveTab  string `yaml:"active_tab"`
}

type Themes struct {
	Dark  Theme `yaml:"dark"`
	Light Theme `yaml:"light"`
}

type Config struct {
	AutosaveInterval Duration          `yaml:"autosave_interval"`
	StatusDuration   Duration          `yaml:"status_duration"`
	DarkMode         bool              `yaml:"dark_mode"`
	DirtyScope       string            `yaml:"dirty_scope"`
	WordWrap         bool              `yaml:"word_wrap"`
	Font             Font              `yaml:"font"`
	LogFile          string            `yaml:"log_file"`
	WatchFiles       bool              `yaml:"watch_files"`
	Keys             map[string]string `yaml:"keys"`
	Themes           Themes            `yaml:"themes"`
}

func DarkTheme() Theme {
	return Theme{
		Text:       "#f0f0f0",
		Background: "#252525",
		Bar:        "#333333",
		BarText:    "#f0f0f0",
		Selection:  "#264f78",
		ActiveTab:  "#0078d7",
	}
}

func LightTheme() Theme {
	return Theme{
		Text:       "#000000",
		Background: "#ffffff",
		Bar:        "#e0e0e0",
		BarText:    "#000000",
		Selection:  "#add6ff",
		ActiveTab:  "#0078d7",
	}
}

// Default returns the settings used when no config file exists.
func Default() *Config {
	home, _ := os.UserHomeDir()
	return &Config{
		AutosaveInterval: Duration(editor.DefaultAutosaveInterval),
		StatusDuration:   Duration(editor.DefaultStatusDuration),
		DarkMode:         true,
		DirtyScope:       editor.ScopeDocument.String(),
		WordWrap:         true,
		Font:             Font{Size: editor.DefaultFontSize},
		LogFile:          filepath.Join(home, ".tabpadlog"),
		WatchFiles:       true,
		Keys:             commander.DefaultKeys(),
		Themes:           Themes{Dark: DarkTheme(), Light: LightTheme()},
	}
}

// DefaultPath is where Load looks when no path is given.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "tabpad", "config.yaml")
}

// Load reads a config file over the defaults. A missing file yields the defaults.
// Key bindings in the file are added to the default bindings.
func Load(path string) (*Config, error) {
	config := Default()
	if path == "" {
		return config, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return config, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	keys := config.Keys
	config.Keys = nil
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	for name, expr := range config.Keys {
		keys[name] = expr
	}
	config.Keys = keys
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return config, nil
}

// Validate reports the first setting that cannot be used.
func (c *Config) Validate() error {
	if c.AutosaveInterval < 0 {
		return fmt.Errorf("autosave_interval must not be negative")
	}
	if c.StatusDuration < 0 {
		return fmt.Errorf("status_duration must not be negative")
	}
	if _, err := editor.ParseScope(c.DirtyScope); err != nil {
		return err
	}
	if c.Font.Size < 1 {
		return fmt.Errorf("font size must be at least 1")
	}
	if err := commander.ValidateKeys(c.Keys); err != nil {
		return err
	}
	for name, theme := range map[string]Theme{"dark": c.Themes.Dark, "light": c.Themes.Light} {
		for _, hex := range []string{theme.Text, theme.Background, theme.Bar, theme.BarText, theme.Selection, theme.ActiveTab} {
			if _, err := colorful.Hex(hex); err != nil {
				return fmt.Errorf("theme %s: invalid color %q", name, hex)
			}
		}
	}
	return nil
}

// Theme returns the theme for the given mode.
func (c *Config) Theme(dark bool) Theme {
	if dark {
		return c.Themes.Dark
	}
	return c.Themes.Light
}

// EditorOptions converts the settings into options for a new window.
func (c *Config) EditorOptions() editor.Options {
	options := editor.DefaultOptions()
	options.Scope, _ = editor.ParseScope(c.DirtyScope)
	options.StatusDuration = c.StatusDuration.Duration()
	options.WordWrap = c.WordWrap
	options.Font = editor.Font{Family: c.Font.Family, Size: c.Font.Size}
	options.DarkMode = c.DarkMode
	return options
}
