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

// Package types holds the values and interfaces shared by the tabpad packages.
package types

// Commander modes
const (
	ModeEdit    = 0
	ModePrompt  = 1
	ModeConfirm = 2
	ModeQuit    = 9999
)

// Move directions
const (
	MoveUp    = 0
	MoveDown  = 1
	MoveRight = 2
	MoveLeft  = 3
)

// Answers to a save confirmation.
type Choice int

const (
	ChoiceSave    Choice = 0
	ChoiceDiscard Choice = 1
	ChoiceCancel  Choice = 2
)

func (c Choice) String() string {
	switch c {
	case ChoiceSave:
		return "save"
	case ChoiceDiscard:
		return "discard"
	default:
		return "cancel"
	}
}

type Point struct {
	Row int
	Col int
}

type Size struct {
	Rows int
	Cols int
}

// A Color is a terminal color attribute. Zero is the terminal default.
type Color int

const ColorDefault Color = 0

// Event types
const (
	EventKey    = 0
	EventResize = 1
	EventTick   = 2
	EventFile   = 3
)

type Event struct {
	Type int
	Key  Key
	Ch   rune
	Alt  bool
	Path string // for EventFile
}

type Key uint16

const (
	KeyUnsupported Key = iota
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyArrowUp
	KeyBackspace
	KeyDelete
	KeyInsert
	KeyEnd
	KeyEnter
	KeyEsc
	KeyHome
	KeyPgdn
	KeyPgup
	KeySpace
	KeyTab
	KeyCtrlSpace
	KeyCtrlA
	KeyCtrlB
	KeyCtrlC
	KeyCtrlD
	KeyCtrlE
	KeyCtrlF
	KeyCtrlG
	KeyCtrlJ
	KeyCtrlK
	KeyCtrlL
	KeyCtrlN
	KeyCtrlO
	KeyCtrlP
	KeyCtrlQ
	KeyCtrlR
	KeyCtrlS
	KeyCtrlT
	KeyCtrlU
	KeyCtrlV
	KeyCtrlW
	KeyCtrlX
	KeyCtrlY
	KeyCtrlZ
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
)

// A Display is a grid of cells that can be drawn on.
type Display interface {
	SetCell(col int, row int, c rune, fg Color, bg Color)
	SetCursor(p Point)
	HideCursor()
}
