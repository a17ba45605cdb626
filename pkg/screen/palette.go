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
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"

	tabpad "github.com/timburks/tabpad/pkg/types"
)

// xterm is the 256-color terminal palette.
var xterm = buildXterm()

func buildXterm() []colorful.Color {
	colors := make([]colorful.Color, 0, 256)
	system := []string{
		"#000000", "#800000", "#008000", "#808000", "#000080", "#800080", "#008080", "#c0c0c0",
		"#808080", "#ff0000", "#00ff00", "#ffff00", "#0000ff", "#ff00ff", "#00ffff", "#ffffff",
	}
	for _, hex := range system {
		c, _ := colorful.Hex(hex)
		colors = append(colors, c)
	}
	levels := []uint8{0, 95, 135, 175, 215, 255}
	for _, r := range levels {
		for _, g := range levels {
			for _, b := range levels {
				colors = append(colors, colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255})
			}
		}
	}
	for i := 0; i < 24; i++ {
		v := float64(8+10*i) / 255
		colors = append(colors, colorful.Color{R: v, G: v, B: v})
	}
	return colors
}

// A Palette maps hex colors to the nearest terminal color.
type Palette struct {
	cache map[string]tabpad.Color
}

func NewPalette() *Palette {
	return &Palette{cache: make(map[string]tabpad.Color)}
}

// Color returns the terminal color closest to hex, or the default color if hex is not a color.
// In 256-color output mode, termbox numbers palette entries from one.
func (p *Palette) Color(hex string) tabpad.Color {
	if color, ok := p.cache[hex]; ok {
		return color
	}
	color := tabpad.ColorDefault
	if c, err := colorful.Hex(hex); err == nil {
		color = tabpad.Color(Nearest(c) + 1)
	}
	p.cache[hex] = color
	return color
}

// Nearest returns the index of the palette entry closest to c.
func Nearest(c colorful.Color) int {
	best, distance := 0, math.MaxFloat64
	for i, candidate := range xterm {
		if d := c.DistanceLab(candidate); d < distance {
			best, distance = i, d
		}
	}
	return best
}
