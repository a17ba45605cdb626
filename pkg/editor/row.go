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

// A Row is one line of text in a buffer, without its line terminator.
type Row struct {
	text []rune
}

func NewRow(text string) *Row {
	return &Row{text: []rune(text)}
}

func (r *Row) GetText() []rune {
	return r.text
}

func (r *Row) String() string {
	return string(r.text)
}

func (r *Row) Length() int {
	return len(r.text)
}

// splits row at col, return a new row containing the remaining text.
func (r *Row) Split(col int) *Row {
	col = clipToRange(col, 0, len(r.text))
	after := make([]rune, len(r.text)-col)
	copy(after, r.text[col:])
	r.text = r.text[0:col:col]
	return &Row{text: after}
}

// joins rows by appending the passed-in row to the current row
func (r *Row) Join(other *Row) {
	r.text = append(r.text, other.text...)
}

func clipToRange(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
