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
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ReadText reads a file as UTF-8 text. Byte sequences that are not valid UTF-8 are dropped.
func ReadText(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return strings.ToValidUTF8(string(b), ""), nil
}

// WriteText replaces the contents of a file with text.
func WriteText(path string, text string) error {
	return os.WriteFile(path, []byte(text), 0644)
}

// OpenFile reads a file into a new tab labelled with the file's name.
func (e *Editor) OpenFile(path string) (*Document, error) {
	info, err := os.Stat(path)
	if err == nil && info.IsDir() {
		return nil, fmt.Errorf("%s is a directory", path)
	}
	text, err := ReadText(path)
	if err != nil {
		return nil, err
	}
	d := e.NewTab(filepath.Base(path), text)
	d.path = path
	e.tracker.Clear(d)
	return d, nil
}

// OpenOrCreate opens a file. If the file does not exist it opens an empty tab
// named after it, and the path is offered when the tab is first saved.
func (e *Editor) OpenOrCreate(path string) (*Document, error) {
	d, err := e.OpenFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		d = e.NewTab(filepath.Base(path), "")
		d.suggested = path
		return d, nil
	}
	return d, err
}

// Save writes a document to its file. Documents without a file are saved with SaveAs.
// done, if not nil, is called with true once the document has been written.
func (e *Editor) Save(d *Document, done func(saved bool)) {
	if d == nil {
		finish(done, false)
		return
	}
	if d.path == "" {
		e.SaveAs(d, done)
		return
	}
	if err := WriteText(d.path, d.Text()); err != nil {
		e.status.Error(err)
		finish(done, false)
		return
	}
	d.label = strings.TrimSuffix(d.label, ModifiedMarker)
	e.tracker.Clear(d)
	e.status.Show("Saved to " + d.path)
	finish(done, true)
}

// SaveAs asks for a path and writes the document there.
func (e *Editor) SaveAs(d *Document, done func(saved bool)) {
	if d == nil || e.prompter == nil {
		finish(done, false)
		return
	}
	initial := d.path
	if initial == "" {
		initial = d.suggested
	}
	e.prompter.Ask("Save as: ", initial, func(path string, ok bool) {
		if !ok || path == "" {
			finish(done, false)
			return
		}
		if err := e.SaveAsPath(d, path); err != nil {
			e.status.Error(err)
			finish(done, false)
			return
		}
		finish(done, true)
	})
}

// SaveAsPath writes a document to path and binds the document to it.
func (e *Editor) SaveAsPath(d *Document, path string) error {
	if err := WriteText(path, d.Text()); err != nil {
		return err
	}
	d.label = filepath.Base(path)
	d.path = path
	d.suggested = ""
	e.tracker.Clear(d)
	e.status.Show("Saved to " + path)
	return nil
}

// SaveActive saves the active document.
func (e *Editor) SaveActive() {
	e.Save(e.tabs.Active(), nil)
}

// SaveActiveAs saves the active document under a new name.
func (e *Editor) SaveActiveAs() {
	e.SaveAs(e.tabs.Active(), nil)
}

// Paths returns the file paths bound to open documents.
func (e *Editor) Paths() []string {
	paths := make([]string, 0, e.tabs.Len())
	for _, d := range e.tabs.documents {
		if d.path != "" {
			paths = append(paths, d.path)
		}
	}
	return paths
}

// FileChanged reports a file that was changed by another program, if it
// no longer matches the document bound to it.
func (e *Editor) FileChanged(path string) {
	for _, d := range e.tabs.documents {
		if d.path != path {
			continue
		}
		text, err := ReadText(path)
		if err == nil && text == d.Text() {
			continue
		}
		e.status.Show(fmt.Sprintf("%s changed on disk", filepath.Base(path)))
	}
}

func finish(done func(bool), ok bool) {
	if done != nil {
		done(ok)
	}
}
