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
	"log"

	"github.com/atotto/clipboard"
)

// A Pasteboard stores text for cut, copy and paste.
type Pasteboard interface {
	ReadAll() (string, error)
	WriteAll(text string) error
}

// SystemPasteboard uses the system clipboard and keeps a private copy
// for terminals where no clipboard is available.
type SystemPasteboard struct {
	text string
}

func (p *SystemPasteboard) WriteAll(text string) error {
	p.text = text
	if clipboard.Unsupported {
		return nil
	}
	if err := clipboard.WriteAll(text); err != nil {
		log.Printf("clipboard write: %v", err)
	}
	return nil
}

func (p *SystemPasteboard) ReadAll() (string, error) {
	if !clipboard.Unsupported {
		text, err := clipboard.ReadAll()
		if err == nil {
			return text, nil
		}
		log.Printf("clipboard read: %v", err)
	}
	return p.text, nil
}

// MemoryPasteboard keeps text in memory only.
type MemoryPasteboard struct {
	Text string
}

func (p *MemoryPasteboard) WriteAll(text string) error {
	p.Text = text
	return nil
}

func (p *MemoryPasteboard) ReadAll() (string, error) {
	return p.Text, nil
}
