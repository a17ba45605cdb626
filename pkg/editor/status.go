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

// DefaultStatusDuration is how long a transient status message stays visible.
const DefaultStatusDuration = 2 * time.Second

// Status holds the transient message shown on the status bar.
type Status struct {
	message  string
	expires  time.Time
	duration time.Duration
	now      func() time.Time
}

func NewStatus(duration time.Duration) *Status {
	if duration <= 0 {
		duration = DefaultStatusDuration
	}
	return &Status{duration: duration, now: time.Now}
}

// Show displays a message for the default duration.
func (s *Status) Show(message string) {
	s.ShowFor(message, s.duration)
}

func (s *Status) ShowFor(message string, d time.Duration) {
	s.message = message
	s.expires = s.now().Add(d)
}

// Error displays an error until a later message replaces it.
func (s *Status) Error(err error) {
	s.message = "Error: " + err.Error()
	s.expires = time.Time{}
}

// Message returns the current message, or "" once it has expired.
func (s *Status) Message() string {
	if s.message == "" {
		return ""
	}
	if !s.expires.IsZero() && !s.now().Before(s.expires) {
		s.message = ""
	}
	return s.message
}

func (s *Status) Clear() {
	s.message = ""
}
