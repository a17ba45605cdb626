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
	"fmt"
	"strconv"
	"strings"

	tabpad "github.com/timburks/tabpad/pkg/types"
)

const (
	// DefaultTitle labels documents that have never been saved.
	DefaultTitle = "Untitled"
	// ModifiedMarker is appended to the label of a modified document with a file path.
	ModifiedMarker = "*"
	// DefaultFontSize is the point size restored by zoom-reset.
	DefaultFontSize = 10
)

// This is the number of the last document created. Use it to uniquely number documents.
var lastDocumentNumber = -1

// A Font describes how a document asks to be displayed.
type Font struct {
	Family string
	Size   int
}

func (f Font) String() string {
	if f.Family == "" {
		return fmt.Sprintf("%dpt", f.Size)
	}
	return fmt.Sprintf("%s %dpt", f.Family, f.Size)
}

// ParseFont reads a font description like "Monospace 12". A missing size keeps size.
func ParseFont(text string, size int) (Font, error) {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return Font{}, fmt.Errorf("empty font description")
	}
	font := Font{Size: size}
	last := fields[len(fields)-1]
	last = strings.TrimSuffix(last, "pt")
	if n, err := strconv.Atoi(last); err == nil {
		if n < 1 {
			return Font{}, fmt.Errorf("invalid font size %d", n)
		}
		font.Size = n
		fields = fields[:len(fields)-1]
	}
	font.Family = strings.Join(fields, " ")
	return font, nil
}

// A Document is one editable text buffer with its file binding and display label.
type Document struct {
	number    int
	buffer    *Buffer
	path      string // empty until the document is opened from or saved to a file
	suggested string // path offered when an unbound document is first saved
	label     string
	modified  bool // used when modifications are tracked per document
	cursor    int  // cursor offset
	anchor    int  // selection anchor offset, or -1
	marking   bool // true while cursor motion extends the selection
	undo      []Operation
	redo      []Operation

	WordWrap        bool
	Font            Font
	TextColor       string      // hex color, empty for the theme color
	BackgroundColor string      // hex color, empty for the theme color
	Offset          tabpad.Size // display offset, maintained by the screen
}

func NewDocument(title, content string) *Document {
	lastDocumentNumber++
	if title == "" {
		title = DefaultTitle
	}
	return &Document{
		number:   lastDocumentNumber,
		buffer:   NewBuffer(content),
		label:    title,
		anchor:   -1,
		WordWrap: true,
		Font:     Font{Size: DefaultFontSize},
	}
}

func (d *Document) GetNumber() int {
	return d.number
}

func (d *Document) GetBuffer() *Buffer {
	return d.buffer
}

func (d *Document) Text() string {
	return d.buffer.Text()
}

func (d *Document) Path() string {
	return d.path
}

func (d *Document) Label() string {
	return d.label
}

// CharCount returns the number of characters in the document.
func (d *Document) CharCount() int {
	return d.buffer.Len()
}

func (d *Document) Cursor() int {
	return d.cursor
}

// SetCursor moves the cursor and drops any selection.
func (d *Document) SetCursor(offset int) {
	d.setCursor(offset)
}

func (d *Document) setCursor(offset int) {
	d.cursor = clipToRange(offset, 0, d.buffer.Len())
	d.anchor = -1
	d.marking = false
}

// LineColumn returns the 1-based line and column of the cursor.
func (d *Document) LineColumn() tabpad.Point {
	p := d.buffer.PointAt(d.cursor)
	return tabpad.Point{Row: p.Row + 1, Col: p.Col + 1}
}

// Select selects the text from start to end and leaves the cursor at end.
func (d *Document) Select(start, end int) {
	n := d.buffer.Len()
	d.anchor = clipToRange(start, 0, n)
	d.cursor = clipToRange(end, 0, n)
	d.marking = false
}

func (d *Document) SelectAll() {
	d.Select(0, d.buffer.Len())
}

// Selection returns the ordered bounds of the selection.
func (d *Document) Selection() (start int, end int, ok bool) {
	if d.anchor < 0 || d.anchor == d.cursor {
		return d.cursor, d.cursor, false
	}
	if d.anchor < d.cursor {
		return d.anchor, d.cursor, true
	}
	return d.cursor, d.anchor, true
}

func (d *Document) HasSelection() bool {
	_, _, ok := d.Selection()
	return ok
}

func (d *Document) SelectedText() string {
	start, end, ok := d.Selection()
	if !ok {
		return ""
	}
	return d.buffer.Slice(start, end)
}

// SetMark starts extending the selection from the cursor, or stops if already marking.
func (d *Document) SetMark() {
	if d.marking {
		d.anchor = -1
		d.marking = false
		return
	}
	d.anchor = d.cursor
	d.marking = true
}

func (d *Document) ClearSelection() {
	d.anchor = -1
	d.marking = false
}

// MoveCursor moves the cursor one step in a direction, repeated multiplier times.
func (d *Document) MoveCursor(direction int, multiplier int) {
	p := d.buffer.PointAt(d.cursor)
	offset := d.cursor
	for i := 0; i < multiplier; i++ {
		switch direction {
		case tabpad.MoveLeft:
			if offset > 0 {
				offset--
			}
		case tabpad.MoveRight:
			if offset < d.buffer.Len() {
				offset++
			}
		case tabpad.MoveUp:
			if p.Row > 0 {
				p.Row--
			}
			offset = d.buffer.OffsetOf(p)
		case tabpad.MoveDown:
			if p.Row < d.buffer.GetRowCount()-1 {
				p.Row++
			}
			offset = d.buffer.OffsetOf(p)
		}
	}
	d.moveTo(offset)
}

func (d *Document) MoveToBeginningOfLine() {
	p := d.buffer.PointAt(d.cursor)
	p.Col = 0
	d.moveTo(d.buffer.OffsetOf(p))
}

func (d *Document) MoveToEndOfLine() {
	p := d.buffer.PointAt(d.cursor)
	p.Col = d.buffer.GetRowLength(p.Row)
	d.moveTo(d.buffer.OffsetOf(p))
}

// moveTo moves the cursor, keeping the anchor only while marking.
func (d *Document) moveTo(offset int) {
	d.cursor = clipToRange(offset, 0, d.buffer.Len())
	if !d.marking {
		d.anchor = -1
	}
}

// perform applies an edit and records its inverse for undo.
func (d *Document) perform(op Operation) {
	inverse := op.Perform(d)
	d.undo = append(d.undo, inverse)
	d.redo = nil
}

// Undo reverts the last edit. It returns false if there was nothing to undo.
func (d *Document) Undo() bool {
	if len(d.undo) == 0 {
		return false
	}
	last := len(d.undo) - 1
	op := d.undo[last]
	d.undo = d.undo[0:last]
	d.redo = append(d.redo, op.Perform(d))
	return true
}

// Redo reapplies the last undone edit. It returns false if there was nothing to redo.
func (d *Document) Redo() bool {
	if len(d.redo) == 0 {
		return false
	}
	last := len(d.redo) - 1
	op := d.redo[last]
	d.redo = d.redo[0:last]
	d.undo = append(d.undo, op.Perform(d))
	return true
}

// findForward selects the first occurrence of term at or after from.
func (d *Document) findForward(term string, from int) bool {
	i := d.buffer.Index(term, from)
	if i < 0 {
		return false
	}
	d.Select(i, i+len([]rune(term)))
	return true
}

// pristine reports whether the document is an untouched, unsaved, empty tab.
func (d *Document) pristine() bool {
	return d.path == "" && d.suggested == "" && d.buffer.Len() == 0 && len(d.undo) == 0
}
