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

// Package app runs the windows of a tabpad session in a single event loop.
package app

import (
	"log"
	"sort"
	"strings"
	"time"

	"github.com/timburks/tabpad/pkg/commander"
	"github.com/timburks/tabpad/pkg/config"
	"github.com/timburks/tabpad/pkg/editor"
	"github.com/timburks/tabpad/pkg/screen"
	tabpad "github.com/timburks/tabpad/pkg/types"
	"github.com/timburks/tabpad/pkg/watch"
)

// refreshInterval is how often the screen is redrawn while idle, so status messages expire.
const refreshInterval = 500 * time.Millisecond

// A Terminal shows windows and delivers input.
type Terminal interface {
	Size() tabpad.Size
	Render(view screen.View)
	Events() <-chan *tabpad.Event
}

// A Window is one notepad: an editor and the commander that drives it.
type Window struct {
	Editor    *editor.Editor
	Commander *commander.Commander
}

// The App owns the windows of a session.
type App struct {
	config  *config.Config
	windows []*Window
	active  int
	running bool
	watcher *watch.Watcher
	watched string // paths last given to the watcher
}

// NewApp creates a session with one window.
func NewApp(c *config.Config) *App {
	a := &App{config: c, running: true}
	a.NewWindow()
	return a
}

// NewWindow opens a window and makes it active.
func (a *App) NewWindow() {
	e := editor.NewEditor(a.config.EditorOptions())
	w := &Window{Editor: e}
	w.Commander = commander.NewCommander(e, a, a.config.Keys)
	a.windows = append(a.windows, w)
	a.active = len(a.windows) - 1
}

// NextWindow activates the next window.
func (a *App) NextWindow() {
	if len(a.windows) > 0 {
		a.active = (a.active + 1) % len(a.windows)
	}
}

// CloseWindow closes the window of c after offering to save its modified tabs.
// The session ends when its last window closes.
func (a *App) CloseWindow(c *commander.Commander) {
	w := a.window(c)
	if w == nil {
		return
	}
	w.Editor.RequestClose(func(ok bool) {
		if !ok {
			return
		}
		for i, candidate := range a.windows {
			if candidate == w {
				a.windows = append(a.windows[:i], a.windows[i+1:]...)
				break
			}
		}
		if len(a.windows) == 0 {
			a.running = false
			a.active = 0
			return
		}
		if a.active >= len(a.windows) {
			a.active = len(a.windows) - 1
		}
	})
}

func (a *App) window(c *commander.Commander) *Window {
	for _, w := range a.windows {
		if w.Commander == c {
			return w
		}
	}
	return nil
}

func (a *App) Active() *Window {
	if len(a.windows) == 0 {
		return nil
	}
	return a.windows[a.active]
}

func (a *App) ActiveIndex() int {
	return a.active
}

func (a *App) Windows() []*Window {
	return a.windows
}

func (a *App) IsRunning() bool {
	return a.running
}

// SetWatcher enables changed-on-disk notices for open files.
func (a *App) SetWatcher(w *watch.Watcher) {
	a.watcher = w
}

// HandleEvent delivers an event to the active window.
func (a *App) HandleEvent(event *tabpad.Event) error {
	switch event.Type {
	case tabpad.EventTick:
		a.Tick()
		return nil
	case tabpad.EventFile:
		a.FileChanged(event.Path)
		return nil
	}
	w := a.Active()
	if w == nil {
		return nil
	}
	return w.Commander.ProcessEvent(event)
}

// Tick autosaves the active document of every window.
func (a *App) Tick() {
	for _, w := range a.windows {
		w.Editor.Autosave()
	}
}

// FileChanged tells every window that a file was changed by another program.
func (a *App) FileChanged(path string) {
	for _, w := range a.windows {
		w.Editor.FileChanged(path)
	}
}

// Paths returns the sorted file paths open in all windows.
func (a *App) Paths() []string {
	seen := make(map[string]bool)
	paths := make([]string, 0)
	for _, w := range a.windows {
		for _, path := range w.Editor.Paths() {
			if !seen[path] {
				seen[path] = true
				paths = append(paths, path)
			}
		}
	}
	sort.Strings(paths)
	return paths
}

func (a *App) syncWatcher() {
	if a.watcher == nil {
		return
	}
	paths := a.Paths()
	key := strings.Join(paths, "\x00")
	if key == a.watched {
		return
	}
	a.watched = key
	if err := a.watcher.Sync(paths); err != nil {
		log.Printf("watch: %v", err)
	}
}

// Render draws the active window.
func (a *App) Render(t Terminal) {
	w := a.Active()
	if w == nil {
		return
	}
	size := t.Size()
	w.Commander.SetPageRows(screen.TextSize(size, w.Editor.StatusBarVisible).Rows)
	t.Render(screen.View{
		Editor:  w.Editor,
		Bar:     w.Commander,
		Theme:   a.config.Theme(w.Editor.DarkMode),
		Window:  a.active,
		Windows: len(a.windows),
	})
}

// Run handles terminal events, autosave ticks and file changes until the last window closes.
func (a *App) Run(t Terminal) {
	var tick <-chan time.Time
	if interval := a.config.AutosaveInterval.Duration(); interval > 0 {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		tick = ticker.C
	}
	refresh := time.NewTicker(refreshInterval)
	defer refresh.Stop()
	var changes <-chan string
	if a.watcher != nil {
		changes = a.watcher.Changes()
	}
	events := t.Events()
	for a.IsRunning() {
		a.syncWatcher()
		a.Render(t)
		var event *tabpad.Event
		select {
		case e, ok := <-events:
			if !ok {
				return
			}
			event = e
		case <-tick:
			event = &tabpad.Event{Type: tabpad.EventTick}
		case path := <-changes:
			event = &tabpad.Event{Type: tabpad.EventFile, Path: path}
		case <-refresh.C:
			continue
		}
		if err := a.HandleEvent(event); err != nil {
			log.Printf("%+v", err)
		}
	}
}
