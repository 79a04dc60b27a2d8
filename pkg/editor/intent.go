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

// An Intent is a command issued by the user.
type Intent interface {
	intent()
}

type InsertChar struct {
	Ch byte
}

type Backspace struct{}

type NewLine struct{}

type Undo struct{}

type Redo struct{}

type Search struct {
	Keyword string
}

type ReplaceAll struct {
	Old string
	New string
}

type Quit struct{}

func (InsertChar) intent() {}
func (Backspace) intent()  {}
func (NewLine) intent()    {}
func (Undo) intent()       {}
func (Redo) intent()       {}
func (Search) intent()     {}
func (ReplaceAll) intent() {}
func (Quit) intent()       {}
