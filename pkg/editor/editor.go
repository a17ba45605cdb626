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
	"strings"
	"time"

	colorful "github.com/lucasb-eyer/go-colorful"

	tabpad "github.com/timburks/tabpad/pkg/types"
)

// A Prompter asks the user questions on behalf of the editor.
// Answers arrive through callbacks, which may run before the call returns.
type Prompter interface {
	// Confirm asks whether to save a modified document.
	Confirm(message string, done func(tabpad.Choice))
	// Ask reads a line of text. ok is false if the user cancelled.
	Ask(prompt string, initial string, done func(answer string, ok bool))
}

// Options configure a new Editor.
type Options struct {
	Scope          Scope
	StatusDuration time.Duration
	WordWrap       bool
	Font           Font
	DarkMode       bool
	Pasteboard     Pasteboard
	Prompter       Prompter
}

func DefaultOptions() Options {
	return Options{
		Scope:          ScopeDocument,
		StatusDuration: DefaultStatusDuration,
		WordWrap:       true,
		Font:           Font{Size: DefaultFontSize},
		DarkMode:       true,
	}
}

// The Editor manages the tabs of one notepad window.
type Editor struct {
	tabs       *Tabs
	tracker    *Tracker
	status     *Status
	prompter   Prompter
	pasteboard Pasteboard
	lastSearch string // shared by all tabs in the window
	wordWrap   bool   // initial word wrap for new documents
	font       Font   // initial font for new documents

	DarkMode         bool
	StatusBarVisible bool
}

// NewEditor creates an editor with one empty tab.
func NewEditor(options Options) *Editor {
	if options.Font.Size < 1 {
		options.Font.Size = DefaultFontSize
	}
	e := &Editor{
		tabs:             NewTabs(),
		tracker:          NewTracker(options.Scope),
		status:           NewStatus(options.StatusDuration),
		prompter:         options.Prompter,
		pasteboard:       options.Pasteboard,
		wordWrap:         options.WordWrap,
		font:             options.Font,
		DarkMode:         options.DarkMode,
		StatusBarVisible: true,
	}
	if e.pasteboard == nil {
		e.pasteboard = &SystemPasteboard{}
	}
	e.NewTab("", "")
	return e
}

func (e *Editor) SetPrompter(p Prompter) {
	e.prompter = p
}

func (e *Editor) GetTabs() *Tabs {
	return e.tabs
}

func (e *Editor) GetTracker() *Tracker {
	return e.tracker
}

func (e *Editor) GetStatus() *Status {
	return e.status
}

// GetActiveDocument returns the document targeted by commands.
func (e *Editor) GetActiveDocument() *Document {
	return e.tabs.Active()
}

func (e *Editor) IsModified(d *Document) bool {
	return e.tracker.IsModified(d)
}

// NewTab appends a document and makes it active. An empty title means "Untitled".
func (e *Editor) NewTab(title, content string) *Document {
	d := NewDocument(title, content)
	d.WordWrap = e.wordWrap
	d.Font = e.font
	e.tabs.Add(d)
	return d
}

// DiscardPristine closes untouched empty tabs, as long as another tab remains.
func (e *Editor) DiscardPristine() {
	for _, d := range e.tabs.Documents() {
		if e.tabs.Len() > 1 && d.pristine() && !e.tracker.IsModified(d) {
			e.tabs.Remove(d)
		}
	}
}

func (e *Editor) NextTab() {
	e.tabs.Next()
}

func (e *Editor) PreviousTab() {
	e.tabs.Previous()
}

// edit performs an operation on a document and records the modification.
func (e *Editor) edit(d *Document, op Operation) {
	d.perform(op)
	e.textChanged(d)
}

func (e *Editor) textChanged(d *Document) {
	e.tracker.MarkModified(d)
	if d.path != "" && !strings.HasSuffix(d.label, ModifiedMarker) {
		d.label += ModifiedMarker
	}
}

// InsertText types text at the cursor, replacing any selection.
func (e *Editor) InsertText(text string) {
	d := e.tabs.Active()
	if d == nil {
		return
	}
	if start, end, ok := d.Selection(); ok {
		e.edit(d, replace(start, end, text))
		return
	}
	if text == "" {
		return
	}
	e.edit(d, &InsertText{Offset: d.cursor, Text: text})
}

// Backspace deletes the selection, or the character before the cursor.
func (e *Editor) Backspace() {
	d := e.tabs.Active()
	if d == nil {
		return
	}
	if e.DeleteSelection() {
		return
	}
	if d.cursor > 0 {
		e.edit(d, &DeleteText{Start: d.cursor - 1, End: d.cursor})
	}
}

// Delete deletes the selection, or the character after the cursor.
func (e *Editor) Delete() {
	d := e.tabs.Active()
	if d == nil {
		return
	}
	if e.DeleteSelection() {
		return
	}
	if d.cursor < d.buffer.Len() {
		e.edit(d, &DeleteText{Start: d.cursor, End: d.cursor + 1})
	}
}

// DeleteSelection removes the selected text. It returns false if nothing was selected.
func (e *Editor) DeleteSelection() bool {
	d := e.tabs.Active()
	if d == nil {
		return false
	}
	start, end, ok := d.Selection()
	if !ok {
		return false
	}
	e.edit(d, &DeleteText{Start: start, End: end})
	return true
}

func (e *Editor) Copy() error {
	d := e.tabs.Active()
	if d == nil || !d.HasSelection() {
		return nil
	}
	return e.pasteboard.WriteAll(d.SelectedText())
}

func (e *Editor) Cut() error {
	d := e.tabs.Active()
	if d == nil || !d.HasSelection() {
		return nil
	}
	if err := e.pasteboard.WriteAll(d.SelectedText()); err != nil {
		return err
	}
	e.DeleteSelection()
	return nil
}

func (e *Editor) Paste() error {
	text, err := e.pasteboard.ReadAll()
	if err != nil {
		return err
	}
	e.InsertText(text)
	return nil
}

func (e *Editor) Undo() {
	if d := e.tabs.Active(); d != nil && d.Undo() {
		e.textChanged(d)
	}
}

func (e *Editor) Redo() {
	if d := e.tabs.Active(); d != nil && d.Redo() {
		e.textChanged(d)
	}
}

func (e *Editor) SelectAll() {
	if d := e.tabs.Active(); d != nil {
		d.SelectAll()
	}
}

func (e *Editor) ToggleWordWrap() {
	if d := e.tabs.Active(); d != nil {
		d.WordWrap = !d.WordWrap
	}
}

func (e *Editor) SetFont(value string) error {
	d := e.tabs.Active()
	if d == nil {
		return nil
	}
	font, err := ParseFont(value, d.Font.Size)
	if err != nil {
		return err
	}
	d.Font = font
	return nil
}

func (e *Editor) ZoomIn() {
	if d := e.tabs.Active(); d != nil {
		d.Font.Size++
	}
}

func (e *Editor) ZoomOut() {
	if d := e.tabs.Active(); d != nil && d.Font.Size > 1 {
		d.Font.Size--
	}
}

func (e *Editor) RestoreZoom() {
	if d := e.tabs.Active(); d != nil {
		d.Font.Size = DefaultFontSize
	}
}

// ErrInvalidColor is returned for colors that are not hex triplets.
var ErrInvalidColor = errors.New("invalid color")

func normalizeColor(value string) (string, error) {
	value = strings.TrimSpace(value)
	if !strings.HasPrefix(value, "#") {
		value = "#" + value
	}
	c, err := colorful.Hex(value)
	if err != nil {
		return "", fmt.Errorf("%w %q", ErrInvalidColor, value)
	}
	return c.Hex(), nil
}

func (e *Editor) SetTextColor(value string) error {
	d := e.tabs.Active()
	if d == nil {
		return nil
	}
	c, err := normalizeColor(value)
	if err != nil {
		return err
	}
	d.TextColor = c
	return nil
}

func (e *Editor) SetBackgroundColor(value string) error {
	d := e.tabs.Active()
	if d == nil {
		return nil
	}
	c, err := normalizeColor(value)
	if err != nil {
		return err
	}
	d.BackgroundColor = c
	return nil
}

func (e *Editor) ToggleStatusBar() {
	e.StatusBarVisible = !e.StatusBarVisible
}

func (e *Editor) ToggleDarkMode() {
	e.DarkMode = !e.DarkMode
}

// The prompting commands below ask for their input and then act on it.
// A cancelled or empty answer does nothing.

func (e *Editor) ask(prompt, initial string, act func(answer string) error) {
	if e.prompter == nil {
		return
	}
	e.prompter.Ask(prompt, initial, func(answer string, ok bool) {
		if !ok || answer == "" {
			return
		}
		if err := act(answer); err != nil {
			e.status.Error(err)
		}
	})
}

func (e *Editor) PromptOpen() {
	e.ask("Open: ", "", func(path string) error {
		_, err := e.OpenFile(path)
		return err
	})
}

func (e *Editor) PromptFind() {
	e.ask("Find: ", e.lastSearch, e.Find)
}

func (e *Editor) PromptReplace() {
	if e.prompter == nil {
		return
	}
	e.ask("Replace: ", e.lastSearch, func(term string) error {
		e.prompter.Ask("Replace with: ", "", func(replacement string, ok bool) {
			if !ok {
				return
			}
			if err := e.Replace(term, replacement); err != nil {
				e.status.Error(err)
			}
		})
		return nil
	})
}

func (e *Editor) PromptFont() {
	initial := ""
	if d := e.tabs.Active(); d != nil {
		initial = strings.TrimSuffix(d.Font.String(), "pt")
	}
	e.ask("Font: ", initial, e.SetFont)
}

func (e *Editor) PromptTextColor() {
	e.ask("Text color: ", "", e.SetTextColor)
}

func (e *Editor) PromptBackgroundColor() {
	e.ask("Background color: ", "", e.SetBackgroundColor)
}
