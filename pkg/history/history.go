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

// Package history keeps the undo and redo stacks of an editing session.
package history

import (
	"errors"
	"log"

	"github.com/slate-editor/slate/pkg/buffer"
	"github.com/slate-editor/slate/pkg/operations"
)

// ErrEmptyHistory is returned by Undo and Redo when there is nothing to apply.
var ErrEmptyHistory = errors.New("empty history")

// A Log records performed actions so they can be undone and redone.
type Log struct {
	undo  []operations.Action // actions that can be undone, most recent last
	redo  []operations.Action // undone actions that can be redone, most recent last
	limit int                 // maximum undo depth, 0 for unbounded
}

func NewLog(limit int) *Log {
	if limit < 0 {
		limit = 0
	}
	return &Log{limit: limit}
}

// Record saves a performed action for undo. Recording a new action
// discards everything that could have been redone.
func (l *Log) Record(action operations.Action) {
	l.undo = append(l.undo, action)
	l.redo = nil
	if l.limit > 0 && len(l.undo) > l.limit {
		l.undo = l.undo[len(l.undo)-l.limit:]
	}
}

// Undo reverts the most recent action and moves it to the redo stack.
func (l *Log) Undo(b *buffer.Buffer) (operations.Action, error) {
	if len(l.undo) == 0 {
		return nil, ErrEmptyHistory
	}
	last := len(l.undo) - 1
	action := l.undo[last]
	if err := action.Revert(b); err != nil {
		log.Printf("undo %s failed: %v", action, err)
		return nil, err
	}
	l.undo = l.undo[0:last]
	l.redo = append(l.redo, action)
	return action, nil
}

// Redo performs the most recently undone action again and moves it back to the undo stack.
func (l *Log) Redo(b *buffer.Buffer) (operations.Action, error) {
	if len(l.redo) == 0 {
		return nil, ErrEmptyHistory
	}
	last := len(l.redo) - 1
	action := l.redo[last]
	if err := action.Perform(b); err != nil {
		log.Printf("redo %s failed: %v", action, err)
		return nil, err
	}
	l.redo = l.redo[0:last]
	l.undo = append(l.undo, action)
	return action, nil
}

func (l *Log) CanUndo() bool {
	return len(l.undo) > 0
}

func (l *Log) CanRedo() bool {
	return len(l.redo) > 0
}

func (l *Log) UndoCount() int {
	return len(l.undo)
}

func (l *Log) RedoCount() int {
	return len(l.redo)
}

// Clear empties both stacks.
func (l *Log) Clear() {
	l.undo = nil
	l.redo = nil
}
