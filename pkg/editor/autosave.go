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

import "time"

// DefaultAutosaveInterval is the period between autosave attempts.
const DefaultAutosaveInterval = 60 * time.Second

// Autosave saves the active document if it has a file and unsaved changes.
// It returns true if the document was written.
func (e *Editor) Autosave() bool {
	d := e.tabs.Active()
	if d == nil || d.path == "" || !e.tracker.IsModified(d) {
		return false
	}
	saved := false
	e.Save(d, func(ok bool) {
		saved = ok
	})
	if saved {
		e.status.Show("Auto-saved")
	}
	return saved
}
