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

// Replace records Old being replaced by New at Cursor.
// Both texts are kept so that replacements of different lengths revert exactly.
type Replace struct {
	Op
	Old string
	New string
}

func NewReplace(cursor slate.Point, old, replacement string) *Replace {
	return &Replace{Op: Op{Cursor: cursor}, Old: old, New: replacement}
}

// FromReplacement wraps a replacement made by Buffer.ReplaceAll.
func FromReplacement(r buffer.Replacement) *Replace {
	return NewReplace(slate.Point{Row: r.Row, Col: r.Col}, r.Old, r.New)
}

func (op *Replace) Perform(b *buffer.Buffer) error {
	if _, err := b.Overwrite(op.Cursor.Row, op.Cursor.Col, len(op.Old), op.New); err != nil {
		return err
	}
	op.moveCursor(b, len(op.New))
	return nil
}

func (op *Replace) Revert(b *buffer.Buffer) error {
	if _, err := b.Overwrite(op.Cursor.Row, op.Cursor.Col, len(op.New), op.Old); err != nil {
		return err
	}
	op.moveCursor(b, 0)
	return nil
}

func (op *Replace) String() string {
	return fmt.Sprintf("replace %q with %q at %d:%d", op.Old, op.New, op.Cursor.Row, op.Cursor.Col)
}
