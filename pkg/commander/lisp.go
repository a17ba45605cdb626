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
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/steelseries/golisp"

	tabpad "github.com/timburks/tabpad/pkg/types"
)

// current is the commander that lisp primitives act on while an expression is evaluated.
var current *Commander

type command func(c *Commander, args []string) error

var commands = map[string]command{
	"new-tab": func(c *Commander, args []string) error {
		c.editor.NewTab(first(args), "")
		return nil
	},
	"new-window": func(c *Commander, args []string) error {
		if c.host == nil {
			return errors.New("new windows are not available")
		}
		c.host.NewWindow()
		return nil
	},
	"next-window": func(c *Commander, args []string) error {
		if c.host != nil {
			c.host.NextWindow()
		}
		return nil
	},
	"open": func(c *Commander, args []string) error {
		if len(args) == 0 {
			c.editor.PromptOpen()
			return nil
		}
		for _, path := range args {
			if _, err := c.editor.OpenFile(path); err != nil {
				return err
			}
		}
		return nil
	},
	"save": func(c *Commander, args []string) error {
		c.editor.SaveActive()
		return nil
	},
	"save-as": func(c *Commander, args []string) error {
		if len(args) == 0 {
			c.editor.SaveActiveAs()
			return nil
		}
		return c.editor.SaveAsPath(c.editor.GetActiveDocument(), args[0])
	},
	"close-tab": func(c *Commander, args []string) error {
		c.editor.CloseActiveTab()
		return nil
	},
	"exit": func(c *Commander, args []string) error {
		c.Quit()
		return nil
	},
	"undo": func(c *Commander, args []string) error {
		c.editor.Undo()
		return nil
	},
	"redo": func(c *Commander, args []string) error {
		c.editor.Redo()
		return nil
	},
	"cut": func(c *Commander, args []string) error {
		return c.editor.Cut()
	},
	"copy": func(c *Commander, args []string) error {
		return c.editor.Copy()
	},
	"paste": func(c *Commander, args []string) error {
		return c.editor.Paste()
	},
	"delete": func(c *Commander, args []string) error {
		c.editor.Delete()
		return nil
	},
	"backspace": func(c *Commander, args []string) error {
		c.editor.Backspace()
		return nil
	},
	"insert": func(c *Commander, args []string) error {
		c.editor.InsertText(strings.Join(args, ""))
		return nil
	},
	"find": func(c *Commander, args []string) error {
		if len(args) == 0 {
			c.editor.PromptFind()
			return nil
		}
		return c.editor.Find(args[0])
	},
	"find-next": func(c *Commander, args []string) error {
		c.editor.FindNext()
		return nil
	},
	"replace": func(c *Commander, args []string) error {
		if len(args) < 2 {
			c.editor.PromptReplace()
			return nil
		}
		return c.editor.Replace(args[0], args[1])
	},
	"select-all": func(c *Commander, args []string) error {
		c.editor.SelectAll()
		return nil
	},
	"word-wrap": func(c *Commander, args []string) error {
		c.editor.ToggleWordWrap()
		return nil
	},
	"font": func(c *Commander, args []string) error {
		if len(args) == 0 {
			c.editor.PromptFont()
			return nil
		}
		return c.editor.SetFont(strings.Join(args, " "))
	},
	"text-color": func(c *Commander, args []string) error {
		if len(args) == 0 {
			c.editor.PromptTextColor()
			return nil
		}
		return c.editor.SetTextColor(args[0])
	},
	"background-color": func(c *Commander, args []string) error {
		if len(args) == 0 {
			c.editor.PromptBackgroundColor()
			return nil
		}
		return c.editor.SetBackgroundColor(args[0])
	},
	"zoom-in": func(c *Commander, args []string) error {
		c.editor.ZoomIn()
		return nil
	},
	"zoom-out": func(c *Commander, args []string) error {
		c.editor.ZoomOut()
		return nil
	},
	"zoom-reset": func(c *Commander, args []string) error {
		c.editor.RestoreZoom()
		return nil
	},
	"status-bar": func(c *Commander, args []string) error {
		c.editor.ToggleStatusBar()
		return nil
	},
	"dark-mode": func(c *Commander, args []string) error {
		c.editor.ToggleDarkMode()
		return nil
	},
	"next-tab": func(c *Commander, args []string) error {
		c.editor.NextTab()
		return nil
	},
	"previous-tab": func(c *Commander, args []string) error {
		c.editor.PreviousTab()
		return nil
	},
	"set-mark": func(c *Commander, args []string) error {
		if d := c.editor.GetActiveDocument(); d != nil {
			d.SetMark()
		}
		return nil
	},
	"escape": func(c *Commander, args []string) error {
		if d := c.editor.GetActiveDocument(); d != nil {
			d.ClearSelection()
		}
		return nil
	},
	"left":  move(tabpad.MoveLeft, 1),
	"right": move(tabpad.MoveRight, 1),
	"up":    move(tabpad.MoveUp, 1),
	"down":  move(tabpad.MoveDown, 1),
	"page-up": func(c *Commander, args []string) error {
		return move(tabpad.MoveUp, c.pageRows)(c, args)
	},
	"page-down": func(c *Commander, args []string) error {
		return move(tabpad.MoveDown, c.pageRows)(c, args)
	},
	"beginning-of-line": func(c *Commander, args []string) error {
		if d := c.editor.GetActiveDocument(); d != nil {
			d.MoveToBeginningOfLine()
		}
		return nil
	},
	"end-of-line": func(c *Commander, args []string) error {
		if d := c.editor.GetActiveDocument(); d != nil {
			d.MoveToEndOfLine()
		}
		return nil
	},
	"eval-expression": func(c *Commander, args []string) error {
		if len(args) > 0 {
			c.editor.GetStatus().Show(c.parseEval(strings.Join(args, " ")))
			return nil
		}
		c.Ask("Eval: ", "", func(expr string, ok bool) {
			if ok && expr != "" {
				c.editor.GetStatus().Show(c.parseEval(expr))
			}
		})
		return nil
	},
}

func move(direction int, multiplier int) command {
	return func(c *Commander, args []string) error {
		if d := c.editor.GetActiveDocument(); d != nil {
			d.MoveCursor(direction, multiplier)
		}
		return nil
	}
}

func first(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

func init() {
	for name, cmd := range commands {
		golisp.MakePrimitiveFunction(name, "*", primitive(name, cmd))
	}
}

func primitive(name string, cmd command) func(*golisp.Data, *golisp.SymbolTableFrame) (*golisp.Data, error) {
	return func(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
		if current == nil {
			return nil, fmt.Errorf("%s: no window", name)
		}
		if err := cmd(current, stringArgs(args)); err != nil {
			return nil, err
		}
		return golisp.BooleanWithValue(true), nil
	}
}

// stringArgs converts evaluated lisp arguments to strings.
func stringArgs(args *golisp.Data) []string {
	values := make([]string, 0)
	for a := args; !golisp.NilP(a); a = golisp.Cdr(a) {
		v := golisp.Car(a)
		if golisp.StringP(v) {
			values = append(values, golisp.StringValue(v))
		} else {
			values = append(values, golisp.String(v))
		}
	}
	return values
}

// evaluate runs an expression with this commander as the target of the primitives.
func (c *Commander) evaluate(expr string) (string, error) {
	previous := current
	current = c
	defer func() {
		current = previous
	}()
	value, err := golisp.ParseAndEval(expr)
	if err != nil {
		return "", err
	}
	if value == nil {
		return "", nil
	}
	return golisp.String(value), nil
}

// parseEval evaluates an expression and shows any error on the message bar.
func (c *Commander) parseEval(expr string) string {
	result, err := c.evaluate(expr)
	if err != nil {
		log.Printf("eval %s: %v", expr, err)
		c.editor.GetStatus().Error(err)
	}
	return result
}

// ParseEval evaluates an expression against this commander's window.
func (c *Commander) ParseEval(expr string) string {
	return c.parseEval(expr)
}

// ParseEvalFile evaluates every expression in a script file.
func (c *Commander) ParseEvalFile(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	result, err := c.evaluate("(begin\n" + string(b) + "\n)")
	if err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}
	return result, nil
}
