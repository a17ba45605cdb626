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

// An Operation is an undoable edit of a document.
// Performing an operation returns another operation that is its inverse.
type Operation interface {
	Perform(d *Document) Operation
}

// InsertText inserts Text at Offset and leaves the cursor after it.
type InsertText struct {
	Offset int
	Text   string
}

func (op *InsertText) Perform(d *Document) Operation {
	end := d.buffer.Insert(op.Offset, op.Text)
	d.setCursor(end)
	return &DeleteText{Start: op.Offset, End: end}
}

// DeleteText removes the text between Start and End and leaves the cursor at Start.
type DeleteText struct {
	Start int
	End   int
}

func (op *DeleteText) Perform(d *Document) Operation {
	start := op.Start
	if op.End < start {
		start = op.End
	}
	deleted := d.buffer.Delete(op.Start, op.End)
	d.setCursor(start)
	return &InsertText{Offset: start, Text: deleted}
}

// Sequence performs a list of operations in order.
type Sequence struct {
	Operations []Operation
}

func (op *Sequence) Perform(d *Document) Operation {
	inverses := make([]Operation, len(op.Operations))
	for i, o := range op.Operations {
		inverses[len(op.Operations)-1-i] = o.Perform(d)
	}
	return &Sequence{Operations: inverses}
}

// replace builds the operation that replaces the text between start and end.
func replace(start, end int, text string) Operation {
	return &Sequence{
		Operations: []Operation{
			&DeleteText{Start: start, End: end},
			&InsertText{Offset: start, Text: text},
		},
	}
}
