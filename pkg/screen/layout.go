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

package screen

import (
	runewidth "github.com/mattn/go-runewidth"

	"github.com/timburks/tabpad/pkg/editor"
	tabpad "github.com/timburks/tabpad/pkg/types"
)

// TabWidth is the number of cells a tab character occupies.
const TabWidth = 4

// A Line is one screen line of a document: a run of runes from one buffer row.
type Line struct {
	Row   int
	Start int // column of the first rune
	End   int // column after the last rune
}

// CellWidth returns the number of cells used to draw ch.
func CellWidth(ch rune) int {
	if ch == '\t' {
		return TabWidth
	}
	if w := runewidth.RuneWidth(ch); w > 0 {
		return w
	}
	return 1
}

func cells(text []rune) int {
	n := 0
	for _, ch := range text {
		n += CellWidth(ch)
	}
	return n
}

// Lines splits the rows of a buffer into screen lines.
// With wrap, rows are broken after the last space that fits in width cells,
// or at width when a row has no space to break at.
func Lines(b *editor.Buffer, width int, wrap bool) []Line {
	lines := make([]Line, 0, b.GetRowCount())
	for i := 0; i < b.GetRowCount(); i++ {
		text := b.GetRow(i).GetText()
		if !wrap || width < 1 {
			lines = append(lines, Line{Row: i, Start: 0, End: len(text)})
			continue
		}
		start, used, brk := 0, 0, -1
		for j, ch := range text {
			w := CellWidth(ch)
			if used+w > width && j > start {
				end := j
				if brk > start {
					end = brk
				}
				lines = append(lines, Line{Row: i, Start: start, End: end})
				start = end
				used = cells(text[start:j])
				brk = -1
			}
			used += w
			if ch == ' ' {
				brk = j + 1
			}
		}
		lines = append(lines, Line{Row: i, Start: start, End: len(text)})
	}
	return lines
}

// Locate returns the index of the line holding p and the cell column of p in that line.
func Locate(b *editor.Buffer, lines []Line, p tabpad.Point) (int, int) {
	for i, line := range lines {
		if line.Row != p.Row {
			continue
		}
		last := i+1 == len(lines) || lines[i+1].Row != p.Row
		if p.Col < line.End || last {
			text := b.GetRow(p.Row).GetText()
			col := p.Col
			if col > len(text) {
				col = len(text)
			}
			if col < line.Start {
				col = line.Start
			}
			return i, cells(text[line.Start:col])
		}
	}
	return 0, 0
}

// Scroll adjusts offset so that the cursor at line, cell is inside a view of size.
func Scroll(offset *tabpad.Size, line, cell int, size tabpad.Size, wrap bool) {
	if line < offset.Rows {
		offset.Rows = line
	}
	if size.Rows > 0 && line >= offset.Rows+size.Rows {
		offset.Rows = line - size.Rows + 1
	}
	if wrap {
		offset.Cols = 0
		return
	}
	if cell < offset.Cols {
		offset.Cols = cell
	}
	if size.Cols > 0 && cell >= offset.Cols+size.Cols {
		offset.Cols = cell - size.Cols + 1
	}
}
