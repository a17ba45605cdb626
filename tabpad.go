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

package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/timburks/tabpad/pkg/app"
	"github.com/timburks/tabpad/pkg/config"
	"github.com/timburks/tabpad/pkg/screen"
	"github.com/timburks/tabpad/pkg/watch"
)

var (
	configPath string
	script     string
	light      bool
	autosave   time.Duration
	dirtyScope string
)

var rootCmd = &cobra.Command{
	Use:   "tabpad [files...]",
	Short: "A tabbed notepad for the terminal",
	Long: `tabpad edits plain text files in tabs, with find and replace, undo, autosave
and a prompt to save modified tabs before they close. Commands are lisp
expressions that can be bound to keys or run from a script with --eval.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		return run(c, args)
	},
}

func init() {
	rootCmd.Flags().StringVar(&configPath, "config", "", "config file (default "+config.DefaultPath()+")")
	rootCmd.Flags().StringVar(&script, "eval", "", "run a lisp script against the files and exit")
	rootCmd.Flags().BoolVar(&light, "light", false, "start in light mode")
	rootCmd.Flags().DurationVar(&autosave, "autosave", 0, "autosave interval, 0 to disable")
	rootCmd.Flags().StringVar(&dirtyScope, "dirty-scope", "", "where unsaved changes are tracked: document or global")
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path := configPath
	if path == "" {
		path = config.DefaultPath()
	}
	c, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if light {
		c.DarkMode = false
	}
	if cmd.Flags().Changed("autosave") {
		c.AutosaveInterval = config.Duration(autosave)
	}
	if dirtyScope != "" {
		c.DirtyScope = dirtyScope
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func run(c *config.Config, filenames []string) error {
	// The app manages windows; each window has an editor and a commander.
	a := app.NewApp(c)
	w := a.Active()
	for _, filename := range filenames {
		if _, err := w.Editor.OpenOrCreate(filename); err != nil {
			log.Printf("%+v", err)
		}
	}
	w.Editor.DiscardPristine()

	if script != "" {
		// Run a tabpad script and exit.
		w.Commander.SetBatch(true)
		result, err := w.Commander.ParseEvalFile(script)
		if err != nil {
			return err
		}
		if result != "" {
			fmt.Println(result)
		}
		return nil
	}

	// Create a screen to manage display.
	s, err := screen.NewScreen()
	if err != nil {
		return err
	}
	defer s.Close()

	// Open a log file.
	f, err := os.OpenFile(c.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0666)
	if err != nil {
		return err
	}
	log.SetOutput(f)
	defer f.Close()

	if c.WatchFiles {
		watcher, err := watch.NewWatcher()
		if err != nil {
			log.Printf("watch: %v", err)
		} else {
			defer watcher.Close()
			a.SetWatcher(watcher)
		}
	}

	// Run the main event loop.
	a.Run(s)
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
