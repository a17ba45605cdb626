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
	"fmt"

	"github.com/timburks/tabpad/pkg/config"
	"github.com/timburks/tabpad/pkg/editor"
	tabpad "github.com/timburks/tabpad/pkg/types"
)

// A MessageBar supplies the bottom line of a window.
type MessageBar interface {
	GetMessageBarText(length int) string
	GetPromptCursor() (int, bool)
}

// A View is everything drawn for one window.
type View struct {
	Editor  *editor.Editor
	Bar     MessageBar
	Theme   config.Theme
	Window  int // index of the window being drawn
	Windows int // number of open windows
}

// colors are the terminal colors of a theme.
type colors struct {
	text, background     tabpad.Color
	bar, barText         tabpad.Color
	selection, activeTab tabpad.Color
}

func (p *Palette) colors(theme config.Theme, d *editor.Document) colors {
	c := colors{
		text:       p.Color(theme.Text),
		background: p.Color(theme.Background),
		bar:        p.Color(theme.Bar),
		barText:    p.Color(theme.BarText),
		selection:  p.Color(theme.Selection),
		activeTab:  p.Color(theme.ActiveTab),
	}
	if d != nil && d.TextColor != "" {
		c.text = p.Color(d.TextColor)
	}
	if d != nil && d.BackgroundColor != "" {
		c.background = p.Color(d.BackgroundColor)
	}
	return c
}

// TextSize returns the size of the text area of a window drawn in size.
func TextSize(size tabpad.Size, statusBar bool) tabpad.Size {
	rows := size.Rows - 2 // tab bar and message bar
	if statusBar {
		rows--
	}
	if rows < 0 {
		rows = 0
	}
	return tabpad.Size{Rows: rows, Cols: size.Cols}
}

// Draw renders a window onto a display of the given size.
func (p *Palette) Draw(display tabpad.Display, size tabpad.Size, view View) {
	e := view.Editor
	d := e.GetActiveDocument()
	c := p.colors(view.Theme, d)
	text := TextSize(size, e.StatusBarVisible)

	for row := 0; row < size.Rows; row++ {
		for col := 0; col < size.Cols; col++ {
			display.SetCell(col, row, ' ', c.text, c.background)
		}
	}
	drawTabBar(display, size, view, c)
	cursor, visible := drawText(display, text, d, c)
	if e.StatusBarVisible && size.Rows > 2 {
		drawLine(display, 1+text.Rows, size.Cols, StatusText(d), c.barText, c.bar)
	}
	if size.Rows > 1 {
		drawLine(display, size.Rows-1, size.Cols, view.Bar.GetMessageBarText(size.Cols), c.text, c.background)
	}
	if col, prompting := view.Bar.GetPromptCursor(); prompting {
		display.SetCursor(tabpad.Point{Row: size.Rows - 1, Col: col})
	} else if visible {
		display.SetCursor(cursor)
	} else {
		display.HideCursor()
	}
}

// TabLabels returns the text shown for each tab, prefixed by the window number when there are several windows.
func TabLabels(view View) []string {
	documents := view.Editor.GetTabs().Documents()
	labels := make([]string, 0, len(documents)+1)
	if view.Windows > 1 {
		labels = append(labels, fmt.Sprintf("[%d/%d]", view.Window+1, view.Windows))
	}
	for _, d := range documents {
		labels = append(labels, " "+d.Label()+" ")
	}
	return labels
}

func drawTabBar(display tabpad.Display, size tabpad.Size, view View, c colors) {
	if size.Rows < 1 {
		return
	}
	for col := 0; col < size.Cols; col++ {
		display.SetCell(col, 0, ' ', c.barText, c.bar)
	}
	labels := TabLabels(view)
	active := view.Editor.GetTabs().ActiveIndex()
	if view.Windows > 1 {
		active++
	}
	x := 0
	for i, label := range labels {
		bg := c.bar
		if i == active {
			bg = c.activeTab
		}
		for _, ch := range label {
			if x >= size.Cols {
				return
			}
			display.SetCell(x, 0, ch, c.barText, bg)
			x += CellWidth(ch)
		}
		x++
	}
}

// drawText draws the visible lines of a document and returns the screen position of its cursor.
func drawText(display tabpad.Display, size tabpad.Size, d *editor.Document, c colors) (tabpad.Point, bool) {
	if d == nil || size.Rows < 1 || size.Cols < 1 {
		return tabpad.Point{}, false
	}
	b := d.GetBuffer()
	lines := Lines(b, size.Cols, d.WordWrap)
	point := b.PointAt(d.Cursor())
	line, cell := Locate(b, lines, point)
	Scroll(&d.Offset, line, cell, size, d.WordWrap)

	start, end, selected := d.Selection()
	for y := 0; y < size.Rows; y++ {
		i := d.Offset.Rows + y
		if i >= len(lines) {
			break
		}
		l := lines[i]
		text := b.GetRow(l.Row).GetText()
		offset := b.OffsetOf(tabpad.Point{Row: l.Row, Col: l.Start})
		x := -d.Offset.Cols
		for k := l.Start; k < l.End; k++ {
			ch := text[k]
			w := CellWidth(ch)
			bg := c.background
			if selected && offset+k-l.Start >= start && offset+k-l.Start < end {
				bg = c.selection
			}
			if ch == '\t' {
				ch = ' '
			}
			for n := 0; n < w && ch == ' '; n++ {
				if x+n >= 0 && x+n < size.Cols {
					display.SetCell(x+n, 1+y, ' ', c.text, bg)
				}
			}
			if ch != ' ' && x >= 0 && x+w <= size.Cols {
				display.SetCell(x, 1+y, ch, c.text, bg)
			}
			x += w
		}
	}
	cursor := tabpad.Point{Row: 1 + line - d.Offset.Rows, Col: cell - d.Offset.Cols}
	return cursor, cursor.Col < size.Cols
}

// StatusText returns the status bar text for a document.
func StatusText(d *editor.Document) string {
	if d == nil {
		return ""
	}
	p := d.LineColumn()
	wrap := "Wrap: off"
	if d.WordWrap {
		wrap = "Wrap: on"
	}
	return fmt.Sprintf(" Line: %d, Column: %d | Characters: %d | %s | %s", p.Row, p.Col, d.CharCount(), d.Font, wrap)
}

func drawLine(display tabpad.Display, row int, width int, text string, fg, bg tabpad.Color) {
	x := 0
	for col := 0; col < width; col++ {
		display.SetCell(col, row, ' ', fg, bg)
	}
	for _, ch := range text {
		w := CellWidth(ch)
		if x+w > width {
			return
		}
		display.SetCell(x, row, ch, fg, bg)
		x += w
	}
}
