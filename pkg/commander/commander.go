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

package commander

import (
	"log"

	"github.com/timburks/tabpad/pkg/editor"
	tabpad "github.com/timburks/tabpad/pkg/types"
)

// A Host owns the windows of a tabpad session.
type Host interface {
	NewWindow()
	NextWindow()
	CloseWindow(c *Commander)
}

// The Commander converts user input into commands to the editor of one window.
// It also answers the editor's questions by prompting on the message bar.
type Commander struct {
	editor   *editor.Editor
	host     Host
	batch    bool              // true if commander is running a lisp script
	mode     int               // commander mode
	keys     map[string]string // key name -> lisp expression
	pageRows int               // rows moved by page-up and page-down

	prompt string                       // prompt shown before the input
	input  []rune                       // text as it is being typed on the message bar
	answer func(answer string, ok bool) // receives the input when the prompt ends
	choose func(choice tabpad.Choice)   // receives the answer to a confirmation
}

func NewCommander(e *editor.Editor, host Host, keys map[string]string) *Commander {
	if keys == nil {
		keys = DefaultKeys()
	}
	c := &Commander{
		editor:   e,
		host:     host,
		mode:     tabpad.ModeEdit,
		keys:     keys,
		pageRows: 20,
	}
	e.SetPrompter(c)
	return c
}

func (c *Commander) GetEditor() *editor.Editor {
	return c.editor
}

func (c *Commander) GetMode() int {
	return c.mode
}

func (c *Commander) SetMode(m int) {
	c.mode = m
}

// SetBatch puts the commander in batch mode, where questions are answered with cancel.
func (c *Commander) SetBatch(batch bool) {
	c.batch = batch
}

func (c *Commander) SetPageRows(rows int) {
	if rows > 0 {
		c.pageRows = rows
	}
}

func (c *Commander) IsRunning() bool {
	return c.mode != tabpad.ModeQuit
}

func (c *Commander) ProcessEvent(event *tabpad.Event) error {
	switch event.Type {
	case tabpad.EventKey:
		return c.processKey(event)
	default:
		return nil
	}
}

func (c *Commander) processKey(event *tabpad.Event) error {
	switch c.mode {
	case tabpad.ModeEdit:
		return c.processKeyEditMode(event)
	case tabpad.ModePrompt:
		return c.processKeyPromptMode(event)
	case tabpad.ModeConfirm:
		return c.processKeyConfirmMode(event)
	}
	return nil
}

func (c *Commander) processKeyEditMode(event *tabpad.Event) error {
	e := c.editor
	if name := KeyName(event); name != "" {
		if expr, ok := c.keys[name]; ok {
			c.parseEval(expr)
			return nil
		}
	}
	switch event.Key {
	case tabpad.KeyEnter:
		e.InsertText("\n")
	case tabpad.KeyTab:
		e.InsertText("\t")
	case tabpad.KeySpace:
		e.InsertText(" ")
	}
	if event.Ch != 0 && !event.Alt {
		e.InsertText(string(event.Ch))
	}
	return nil
}

func (c *Commander) processKeyPromptMode(event *tabpad.Event) error {
	key := event.Key
	ch := event.Ch
	if key != tabpad.KeyUnsupported {
		switch key {
		case tabpad.KeyEsc:
			c.endPrompt("", false)
		case tabpad.KeyEnter:
			c.endPrompt(string(c.input), true)
		case tabpad.KeyBackspace:
			if len(c.input) > 0 {
				c.input = c.input[0 : len(c.input)-1]
			}
		case tabpad.KeySpace:
			c.input = append(c.input, ' ')
		case tabpad.KeyTab:
			c.input = append(c.input, '\t')
		}
		return nil
	}
	if ch != 0 {
		c.input = append(c.input, ch)
	}
	return nil
}

func (c *Commander) processKeyConfirmMode(event *tabpad.Event) error {
	switch {
	case event.Key == tabpad.KeyEnter, event.Ch == 's', event.Ch == 'S', event.Ch == 'y', event.Ch == 'Y':
		c.endConfirm(tabpad.ChoiceSave)
	case event.Ch == 'd', event.Ch == 'D', event.Ch == 'n', event.Ch == 'N':
		c.endConfirm(tabpad.ChoiceDiscard)
	case event.Key == tabpad.KeyEsc, event.Ch == 'c', event.Ch == 'C':
		c.endConfirm(tabpad.ChoiceCancel)
	}
	return nil
}

func (c *Commander) endPrompt(text string, ok bool) {
	done := c.answer
	c.answer = nil
	c.input = nil
	c.prompt = ""
	c.mode = tabpad.ModeEdit
	if done != nil {
		done(text, ok)
	}
}

func (c *Commander) endConfirm(choice tabpad.Choice) {
	done := c.choose
	c.choose = nil
	c.prompt = ""
	c.mode = tabpad.ModeEdit
	if done != nil {
		done(choice)
	}
}

// Ask starts reading a line of text on the message bar.
func (c *Commander) Ask(prompt string, initial string, done func(answer string, ok bool)) {
	if c.batch {
		done("", false)
		return
	}
	c.mode = tabpad.ModePrompt
	c.prompt = prompt
	c.input = []rune(initial)
	c.answer = done
}

// Confirm asks on the message bar whether to save, discard or cancel.
func (c *Commander) Confirm(message string, done func(tabpad.Choice)) {
	if c.batch {
		log.Printf("batch mode: cancelling %q", message)
		done(tabpad.ChoiceCancel)
		return
	}
	c.mode = tabpad.ModeConfirm
	c.prompt = message
	c.choose = done
}

// Quit closes the window's tabs, offering to save each modified one.
func (c *Commander) Quit() {
	if c.host != nil {
		c.host.CloseWindow(c)
		return
	}
	c.editor.RequestClose(func(ok bool) {
		if ok {
			c.mode = tabpad.ModeQuit
		}
	})
}

// GetMessageBarText returns the prompt being typed, or the status message.
func (c *Commander) GetMessageBarText(length int) string {
	var line string
	switch c.mode {
	case tabpad.ModePrompt:
		line = c.prompt + string(c.input)
	case tabpad.ModeConfirm:
		line = c.prompt + " [s]ave [d]iscard [c]ancel"
	default:
		line = c.editor.GetStatus().Message()
	}
	runes := []rune(line)
	if len(runes) > length {
		runes = runes[0:length]
	}
	return string(runes)
}

// GetPromptCursor returns the column of the cursor on the message bar while prompting.
func (c *Commander) GetPromptCursor() (int, bool) {
	if c.mode != tabpad.ModePrompt {
		return 0, false
	}
	return len([]rune(c.prompt)) + len(c.input), true
}
