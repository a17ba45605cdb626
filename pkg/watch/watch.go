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

// Package watch reports changes made by other programs to the files open in tabpad.
package watch

import (
	"log"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// A Watcher watches the directories of a set of files and reports writes to those files.
type Watcher struct {
	mu      sync.Mutex
	watcher *fsnotify.Watcher
	files   map[string]string // absolute path -> path as the editor knows it
	dirs    map[string]bool
	changes chan string
	done    chan struct{}
	wg      sync.WaitGroup
}

func NewWatcher() (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	w := &Watcher{
		watcher: fsw,
		files:   make(map[string]string),
		dirs:    make(map[string]bool),
		changes: make(chan string, 16),
		done:    make(chan struct{}),
	}
	w.wg.Add(1)
	go w.loop()
	return w, nil
}

// Changes delivers the paths of watched files that changed.
func (w *Watcher) Changes() <-chan string {
	return w.changes
}

// Sync makes the set of watched files equal to paths.
func (w *Watcher) Sync(paths []string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	files := make(map[string]string, len(paths))
	dirs := make(map[string]bool)
	for _, path := range paths {
		abs, err := filepath.Abs(path)
		if err != nil {
			return err
		}
		files[abs] = path
		dirs[filepath.Dir(abs)] = true
	}
	for dir := range w.dirs {
		if !dirs[dir] {
			if err := w.watcher.Remove(dir); err != nil {
				log.Printf("unwatch %s: %v", dir, err)
			}
		}
	}
	var failed error
	for dir := range dirs {
		if w.dirs[dir] {
			continue
		}
		if err := w.watcher.Add(dir); err != nil {
			delete(dirs, dir)
			failed = err
		}
	}
	w.files = files
	w.dirs = dirs
	return failed
}

// Watching returns the number of watched directories.
func (w *Watcher) Watching() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.dirs)
}

func (w *Watcher) Close() error {
	close(w.done)
	err := w.watcher.Close()
	w.wg.Wait()
	return err
}

func (w *Watcher) loop() {
	defer w.wg.Done()
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			w.mu.Lock()
			path, watched := w.files[filepath.Clean(event.Name)]
			w.mu.Unlock()
			if !watched {
				continue
			}
			select {
			case w.changes <- path:
			default:
				// A notice for this burst is already pending.
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("watch: %v", err)
		}
	}
}
