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
	"log"

	"github.com/nsf/termbox-go"

	tabpad "github.com/timburks/tabpad/pkg/types"
)

// The Screen draws windows on the terminal and reads terminal events.
type Screen struct {
	palette *Palette
	events  chan *tabpad.Event
	done    chan struct{}
}

func NewScreen() (*Screen, error) {
	// Open the terminal.
	if err := termbox.Init(); err != nil {
		return nil, err
	}
	termbox.SetOutputMode(termbox.Output256)
	termbox.SetInputMode(termbox.InputAlt)
	s := &Screen{
		palette: NewPalette(),
		events:  make(chan *tabpad.Event),
		done:    make(chan struct{}),
	}
	go s.poll()
	return s, nil
}

func (s *Screen) Close() {
	close(s.done)
	termbox.Interrupt()
	termbox.Close()
}

// Events delivers key and resize events until the screen is closed.
func (s *Screen) Events() <-chan *tabpad.Event {
	return s.events
}

func (s *Screen) poll() {
	for {
		event := termbox.PollEvent()
		switch event.Type {
		case termbox.EventInterrupt:
			return
		case termbox.EventError:
			log.Printf("terminal: %v", event.Err)
			continue
		case termbox.EventResize:
			termbox.Flush()
		}
		e := translate(event)
		if e == nil {
			continue
		}
		select {
		case s.events <- e:
		case <-s.done:
			return
		}
	}
}

func translate(event termbox.Event) *tabpad.Event {
	switch event.Type {
	case termbox.EventKey:
		e := &tabpad.Event{
			Type: tabpad.EventKey,
			Ch:   event.Ch,
			Alt:  event.Mod&termbox.ModAlt != 0,
		}
		if event.Ch == 0 {
			e.Key = key(event.Key)
		}
		return e
	case termbox.EventResize:
		return &tabpad.Event{Type: tabpad.EventResize}
	default:
		return nil
	}
}

// Size returns the size of the terminal.
func (s *Screen) Size() tabpad.Size {
	cols, rows := termbox.Size()
	return tabpad.Size{Rows: rows, Cols: cols}
}

// Render draws a window and shows it.
func (s *Screen) Render(view View) {
	termbox.Clear(termbox.ColorDefault, termbox.ColorDefault)
	s.palette.Draw(s, s.Size(), view)
	termbox.Flush()
}

func (s *Screen) SetCell(col int, row int, c rune, fg tabpad.Color, bg tabpad.Color) {
	termbox.SetCell(col, row, c, termbox.Attribute(fg), termbox.Attribute(bg))
}

func (s *Screen) SetCursor(p tabpad.Point) {
	termbox.SetCursor(p.Col, p.Row)
}

func (s *Screen) HideCursor() {
	termbox.HideCursor()
}

func key(k termbox.Key) tabpad.Key {
	switch k {
	case termbox.KeyArrowDown:
		return tabpad.KeyArrowDown
	case termbox.KeyArrowLeft:
		return tabpad.KeyArrowLeft
	case termbox.KeyArrowRight:
		return tabpad.KeyArrowRight
	case termbox.KeyArrowUp:
		return tabpad.KeyArrowUp
	case termbox.KeyBackspace, termbox.KeyBackspace2:
		return tabpad.KeyBackspace
	case termbox.KeyDelete:
		return tabpad.KeyDelete
	case termbox.KeyInsert:
		return tabpad.KeyInsert
	case termbox.KeyEnd:
		return tabpad.KeyEnd
	case termbox.KeyEnter:
		return tabpad.KeyEnter
	case termbox.KeyEsc:
		return tabpad.KeyEsc
	case termbox.KeyHome:
		return tabpad.KeyHome
	case termbox.KeyPgdn:
		return tabpad.KeyPgdn
	case termbox.KeyPgup:
		return tabpad.KeyPgup
	case termbox.KeySpace:
		return tabpad.KeySpace
	case termbox.KeyTab:
		return tabpad.KeyTab
	case termbox.KeyCtrlSpace:
		return tabpad.KeyCtrlSpace
	case termbox.KeyCtrlA:
		return tabpad.KeyCtrlA
	case termbox.KeyCtrlB:
		return tabpad.KeyCtrlB
	case termbox.KeyCtrlC:
		return tabpad.KeyCtrlC
	case termbox.KeyCtrlD:
		return tabpad.KeyCtrlD
	case termbox.KeyCtrlE:
		return tabpad.KeyCtrlE
	case termbox.KeyCtrlF:
		return tabpad.KeyCtrlF
	case termbox.KeyCtrlG:
		return tabpad.KeyCtrlG
	case termbox.KeyCtrlJ:
		return tabpad.KeyCtrlJ
	case termbox.KeyCtrlK:
		return tabpad.KeyCtrlK
	case termbox.KeyCtrlL:
		return tabpad.KeyCtrlL
	case termbox.KeyCtrlN:
		return tabpad.KeyCtrlN
	case termbox.KeyCtrlO:
		return tabpad.KeyCtrlO
	case termbox.KeyCtrlP:
		return tabpad.KeyCtrlP
	case termbox.KeyCtrlQ:
		return tabpad.KeyCtrlQ
	case termbox.KeyCtrlR:
		return tabpad.KeyCtrlR
	case termbox.KeyCtrlS:
		return tabpad.KeyCtrlS
	case termbox.KeyCtrlT:
		return tabpad.KeyCtrlT
	case termbox.KeyCtrlU:
		return tabpad.KeyCtrlU
	case termbox.KeyCtrlV:
		return tabpad.KeyCtrlV
	case termbox.KeyCtrlW:
		return tabpad.KeyCtrlW
	case termbox.KeyCtrlX:
		return tabpad.KeyCtrlX
	case termbox.KeyCtrlY:
		return tabpad.KeyCtrlY
	case termbox.KeyCtrlZ:
		return tabpad.KeyCtrlZ
	case termbox.KeyF1:
		return tabpad.KeyF1
	case termbox.KeyF2:
		return tabpad.KeyF2
	case termbox.KeyF3:
		return tabpad.KeyF3
	case termbox.KeyF4:
		return tabpad.KeyF4
	case termbox.KeyF5:
		return tabpad.KeyF5
	case termbox.KeyF6:
		return tabpad.KeyF6
	case termbox.KeyF7:
		return tabpad.KeyF7
	case termbox.KeyF8:
		return tabpad.KeyF8
	case termbox.KeyF9:
		return tabpad.KeyF9
	case termbox.KeyF10:
		return tabpad.KeyF10
	case termbox.KeyF11:
		return tabpad.KeyF11
	case termbox.KeyF12:
		return tabpad.KeyF12
	default:
		return tabpad.KeyUnsupported
	}
}
