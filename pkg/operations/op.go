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
package operations

import (
	"github.com/slate-editor/slate/pkg/buffer"
	slate "github.com/slate-editor/slate/pkg/types"
)

// An Action is one of Insert, Delete or Replace.
type Action interface {
	Perform(b *buffer.Buffer) error // applies the action as originally performed
	Revert(b *buffer.Buffer) error  // applies the inverse of the action
	Site() slate.Point
	String() string
	sealed()
}

// Op holds the position shared by all actions.
type Op struct {
	Cursor slate.Point
}

func (op *Op) Site() slate.Point {
	return op.Cursor
}

func (op *Op) sealed() {}

func (op *Op) moveCursor(b *buffer.Buffer, colOffset int) {
	b.SetCursor(slate.Point{Row: op.Cursor.Row, Col: op.Cursor.Col + colOffset})
}
