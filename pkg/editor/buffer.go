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
	"strings"

	tabpad "github.com/timburks/tabpad/pkg/types"
)

// A Buffer holds the text of a document as a list of rows.
// Positions in a buffer are rune offsets; a line break counts as one rune.
// A buffer always has at least one row.
type Buffer struct {
	rows []*Row
}

func NewBuffer(text string) *Buffer {
	b := &Buffer{}
	b.LoadText(text)
	return b
}

func (b *Buffer) LoadText(text string) {
	lines := strings.Split(text, "\n")
	b.rows = make([]*Row, 0, len(lines))
	for _, line := range lines {
		b.rows = append(b.rows, NewRow(line))
	}
}

func (b *Buffer) Text() string {
	var sb strings.Builder
	for i, row := range b.rows {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(string(row.text))
	}
	return sb.String()
}

func (b *Buffer) GetRowCount() int {
	return len(b.rows)
}

func (b *Buffer) GetRow(i int) *Row {
	if i < 0 || i >= len(b.rows) {
		return nil
	}
	return b.rows[i]
}

func (b *Buffer) GetRowLength(i int) int {
	if i < 0 || i >= len(b.rows) {
		return 0
	}
	return b.rows[i].Length()
}

// Len returns the number of runes in the buffer, counting line breaks.
func (b *Buffer) Len() int {
	n := len(b.rows) - 1
	for _, row := range b.rows {
		n += row.Length()
	}
	return n
}

// PointAt converts an offset into a row and column.
func (b *Buffer) PointAt(offset int) tabpad.Point {
	offset = clipToRange(offset, 0, b.Len())
	for i, row := range b.rows {
		if offset <= row.Length() {
			return tabpad.Point{Row: i, Col: offset}
		}
		offset -= row.Length() + 1
	}
	last := len(b.rows) - 1
	return tabpad.Point{Row: last, Col: b.rows[last].Length()}
}

// OffsetOf converts a row and column into an offset, clipping both to the buffer.
func (b *Buffer) OffsetOf(p tabpad.Point) int {
	row := clipToRange(p.Row, 0, len(b.rows)-1)
	offset := 0
	for i := 0; i < row; i++ {
		offset += b.rows[i].Length() + 1
	}
	return offset + clipToRange(p.Col, 0, b.rows[row].Length())
}

// Slice returns the text between two offsets.
func (b *Buffer) Slice(start, end int) string {
	start, end = b.span(start, end)
	if start == end {
		return ""
	}
	p1 := b.PointAt(start)
	p2 := b.PointAt(end)
	if p1.Row == p2.Row {
		return string(b.rows[p1.Row].text[p1.Col:p2.Col])
	}
	var sb strings.Builder
	sb.WriteString(string(b.rows[p1.Row].text[p1.Col:]))
	for i := p1.Row + 1; i < p2.Row; i++ {
		sb.WriteByte('\n')
		sb.WriteString(string(b.rows[i].text))
	}
	sb.WriteByte('\n')
	sb.WriteString(string(b.rows[p2.Row].text[:p2.Col]))
	return sb.String()
}

// Insert adds text at an offset and returns the offset just past it.
func (b *Buffer) Insert(offset int, text string) int {
	offset = clipToRange(offset, 0, b.Len())
	if text == "" {
		return offset
	}
	p := b.PointAt(offset)
	row := b.rows[p.Row]
	tail := row.Split(p.Col)
	lines := strings.Split(text, "\n")
	row.Join(NewRow(lines[0]))
	if len(lines) == 1 {
		row.Join(tail)
		return offset + len([]rune(text))
	}
	added := make([]*Row, 0, len(lines)-1)
	for _, line := range lines[1:] {
		added = append(added, NewRow(line))
	}
	added[len(added)-1].Join(tail)
	rows := make([]*Row, 0, len(b.rows)+len(added))
	rows = append(rows, b.rows[:p.Row+1]...)
	rows = append(rows, added...)
	rows = append(rows, b.rows[p.Row+1:]...)
	b.rows = rows
	return offset + len([]rune(text))
}

// Delete removes the text between two offsets and returns it.
func (b *Buffer) Delete(start, end int) string {
	start, end = b.span(start, end)
	if start == end {
		return ""
	}
	deleted := b.Slice(start, end)
	p1 := b.PointAt(start)
	p2 := b.PointAt(end)
	first := b.rows[p1.Row]
	tail := b.rows[p2.Row].Split(p2.Col)
	first.Split(p1.Col)
	first.Join(tail)
	b.rows = append(b.rows[:p1.Row+1], b.rows[p2.Row+1:]...)
	return deleted
}

// Index returns the offset of the first occurrence of term at or after from, or -1.
func (b *Buffer) Index(term string, from int) int {
	needle := []rune(term)
	if len(needle) == 0 {
		return -1
	}
	text := []rune(b.Text())
	from = clipToRange(from, 0, len(text))
	for i := from; i+len(needle) <= len(text); i++ {
		if text[i] != needle[0] {
			continue
		}
		match := true
		for j := 1; j < len(needle); j++ {
			if text[i+j] != needle[j] {
				match = false
				break
			}
		}
		if match {
			return i
		}
	}
	return -1
}

func (b *Buffer) span(start, end int) (int, int) {
	if start > end {
		start, end = end, start
	}
	n := b.Len()
	return clipToRange(start, 0, n), clipToRange(end, 0, n)
}
