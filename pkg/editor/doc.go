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

// Package editor implements the documents and tabs of a tabpad window.
// An editor owns an ordered set of tabs, each holding a document, and
// tracks which documents have unsaved changes. Edits are made with
// operations that return their inverses, which makes them undoable.
// Saving, closing and searching are also implemented here; questions
// for the user go through a Prompter so that the same code runs under
// the terminal commander and in tests.
package editor
