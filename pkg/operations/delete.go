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
	"fmt"

	"github.com/slate-editor/slate/pkg/buffer"
	slate "github.com/slate-editor/slate/pkg/types"
)

// Delete records a character removed from Cursor.
// Character is the removed value, which is needed to put it back.
type Delete struct {
	Op
	Character byte
}

func NewDelete(cursor slate.Point, c byte) *Delete {
	return &Delete{Op: Op{Cursor: cursor}, Character: c}
}

func (op *Delete) Perform(b *buffer.Buffer) error {
	if _, err := b.DeleteCharacter(op.Cursor.Row, op.Cursor.Col); err != nil {
		return err
	}
	op.moveCursor(b, 0)
	return nil
}

func (op *Delete) Revert(b *buffer.Buffer) error {
	if err := b.InsertCharacter(op.Cursor.Row, op.Cursor.Col, op.Character); err != nil {
		return err
	}
	op.moveCursor(b, 0)
	return nil
}

func (op *Delete) String() string {
	return fmt.Sprintf("delete %q at %d:%d", op.Character, op.Cursor.Row, op.Cursor.Col)
}
