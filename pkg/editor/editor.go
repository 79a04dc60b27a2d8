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

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/slate-editor/slate/pkg/buffer"
	"github.com/slate-editor/slate/pkg/history"
	"github.com/slate-editor/slate/pkg/operations"
	slate "github.com/slate-editor/slate/pkg/types"
)

// Editor states
const (
	StateRunning = 0
	StateStopped = 1
)

var (
	// ErrNotFound is returned when a search keyword does not occur in the document.
	ErrNotFound = errors.New("keyword not found")

	// ErrStopped is returned when an intent arrives after Quit.
	ErrStopped = errors.New("editor stopped")
)

// A Match is a search hit, numbered from 1 for display.
type Match struct {
	Line   int
	Column int
	Text   string // the whole line containing the match
}

// The Editor manages the editing of text in a Buffer.
type Editor struct {
	Buffer  *buffer.Buffer // document being edited
	history *history.Log   // undo and redo stacks
	state   int
}

// NewEditor creates a running editor with an empty document. historyLimit
// caps the undo depth; 0 leaves it unbounded.
func NewEditor(historyLimit int) *Editor {
	return &Editor{
		Buffer:  buffer.NewBuffer(),
		history: history.NewLog(historyLimit),
		state:   StateRunning,
	}
}

func (e *Editor) IsRunning() bool {
	return e.state == StateRunning
}

func (e *Editor) GetCursor() slate.Point {
	return e.Buffer.Cursor()
}

func (e *Editor) History() *history.Log {
	return e.history
}

// Perform applies an action and saves it for undo.
func (e *Editor) Perform(action operations.Action) error {
	if err := action.Perform(e.Buffer); err != nil {
		return err
	}
	e.history.Record(action)
	log.Printf("performed %s", action)
	return nil
}

// InsertChar inserts c at the cursor and advances the cursor past it.
func (e *Editor) InsertChar(c byte) error {
	return e.Perform(operations.NewInsert(e.Buffer.Cursor(), c))
}

// Backspace deletes the character before the cursor.
func (e *Editor) Backspace() error {
	cursor := e.Buffer.Cursor()
	line := e.Buffer.Line(cursor.Row)
	if cursor.Col <= 0 || cursor.Col > len(line) {
		return fmt.Errorf("backspace at %d:%d: %w", cursor.Row, cursor.Col, buffer.ErrOutOfBounds)
	}
	site := slate.Point{Row: cursor.Row, Col: cursor.Col - 1}
	return e.Perform(operations.NewDelete(site, line[site.Col]))
}

// NewLine moves the cursor to the start of the next line.
func (e *Editor) NewLine() {
	e.Buffer.InsertNewline()
}

func (e *Editor) Undo() (operations.Action, error) {
	action, err := e.history.Undo(e.Buffer)
	if err == nil {
		log.Printf("undid %s", action)
	}
	return action, err
}

func (e *Editor) Redo() (operations.Action, error) {
	action, err := e.history.Redo(e.Buffer)
	if err == nil {
		log.Printf("redid %s", action)
	}
	return action, err
}

// Search returns every occurrence of keyword in document order.
func (e *Editor) Search(keyword string) ([]Match, error) {
	positions := e.Buffer.Find(keyword)
	if len(positions) == 0 {
		return nil, fmt.Errorf("search for %q: %w", keyword, ErrNotFound)
	}
	matches := make([]Match, 0, len(positions))
	for _, p := range positions {
		matches = append(matches, Match{
			Line:   p.Row + 1,
			Column: p.Col + 1,
			Text:   e.Buffer.Line(p.Row),
		})
	}
	return matches, nil
}

// ReplaceAll replaces every occurrence of old and records one action per
// replacement. It returns the number of replacements.
func (e *Editor) ReplaceAll(old, replacement string) int {
	replacements := e.Buffer.ReplaceAll(old, replacement)
	for _, r := range replacements {
		action := operations.FromReplacement(r)
		e.history.Record(action)
		log.Printf("performed %s", action)
	}
	return len(replacements)
}

func (e *Editor) Quit() {
	e.state = StateStopped
}

// Dispatch handles an intent and returns the message to show the user.
// Reported conditions are also returned as errors; edits outside the
// document are dropped silently.
func (e *Editor) Dispatch(in Intent) (string, error) {
	if !e.IsRunning() {
		return "", ErrStopped
	}
	switch in := in.(type) {
	case InsertChar:
		return "", e.silently(e.InsertChar(in.Ch))
	case Backspace:
		return "", e.silently(e.Backspace())
	case NewLine:
		e.NewLine()
		return "", nil
	case Undo:
		if _, err := e.Undo(); err != nil {
			return "Nothing to undo!", err
		}
		return "", nil
	case Redo:
		if _, err := e.Redo(); err != nil {
			return "Nothing to redo!", err
		}
		return "", nil
	case Search:
		matches, err := e.Search(in.Keyword)
		if err != nil {
			return "Keyword not found.", err
		}
		reports := make([]string, 0, len(matches))
		for _, m := range matches {
			reports = append(reports, fmt.Sprintf("Found at line %d, column %d: %s", m.Line, m.Column, m.Text))
		}
		return strings.Join(reports, " | "), nil
	case ReplaceAll:
		count := e.ReplaceAll(in.Old, in.New)
		return fmt.Sprintf("Replaced %d occurrence(s) of %q with %q.", count, in.Old, in.New), nil
	case Quit:
		e.Quit()
		return "Closing the editor!", nil
	default:
		return "", fmt.Errorf("unknown intent %T", in)
	}
}

func (e *Editor) silently(err error) error {
	if errors.Is(err, buffer.ErrOutOfBounds) {
		log.Printf("ignored: %v", err)
		return nil
	}
	return err
}
