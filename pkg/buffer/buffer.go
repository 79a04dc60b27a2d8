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

// Package buffer holds the lines of a document and its cursor, and
// implements the primitive edits that operations are built from.
package buffer

import (
	"errors"
	"fmt"
	"strings"

	slate "github.com/slate-editor/slate/pkg/types"
)

// ErrOutOfBounds is returned when an edit refers to a position outside the document.
var ErrOutOfBounds = errors.New("position out of bounds")

// A Replacement records one occurrence rewritten by ReplaceAll.
// Col is the column of the occurrence at the moment it was replaced.
type Replacement struct {
	Row int
	Col int
	Old string
	New string
}

// A Buffer is a document being edited: an ordered list of rows and a cursor.
// A Buffer always has at least one row.
type Buffer struct {
	rows   []*Row
	cursor slate.Point
}

func NewBuffer() *Buffer {
	b := &Buffer{}
	b.rows = []*Row{NewRow("")}
	return b
}

// LoadBytes replaces the document with newline-separated text and homes the cursor.
func (b *Buffer) LoadBytes(bytes []byte) {
	lines := strings.Split(string(bytes), "\n")
	b.rows = make([]*Row, 0, len(lines))
	for _, line := range lines {
		b.rows = append(b.rows, NewRow(line))
	}
	b.cursor = slate.Point{}
}

func (b *Buffer) Bytes() []byte {
	return []byte(strings.Join(b.Lines(), "\n"))
}

func (b *Buffer) LineCount() int {
	return len(b.rows)
}

// Line returns the text of a row, or "" if the row does not exist.
func (b *Buffer) Line(row int) string {
	if !b.validRow(row) {
		return ""
	}
	return b.rows[row].String()
}

func (b *Buffer) Lines() []string {
	lines := make([]string, len(b.rows))
	for i, r := range b.rows {
		lines[i] = r.String()
	}
	return lines
}

func (b *Buffer) Cursor() slate.Point {
	return b.cursor
}

// SetCursor moves the cursor, clipping it to the document.
func (b *Buffer) SetCursor(p slate.Point) {
	b.cursor = p
	b.clampCursor()
}

func (b *Buffer) InsertCharacter(row, col int, c byte) error {
	if !b.validRow(row) {
		return fmt.Errorf("insert at row %d: %w", row, ErrOutOfBounds)
	}
	b.rows[row].InsertChar(col, c)
	return nil
}

// DeleteCharacterBefore removes the character just before col and returns it.
func (b *Buffer) DeleteCharacterBefore(row, col int) (byte, error) {
	if !b.validRow(row) || col <= 0 || col > b.rows[row].Length() {
		return 0, fmt.Errorf("delete before %d:%d: %w", row, col, ErrOutOfBounds)
	}
	c := b.rows[row].DeleteChar(col - 1)
	b.clampCursor()
	return c, nil
}

// DeleteCharacter removes the character at col and returns it.
func (b *Buffer) DeleteCharacter(row, col int) (byte, error) {
	if !b.validRow(row) || col < 0 || col >= b.rows[row].Length() {
		return 0, fmt.Errorf("delete at %d:%d: %w", row, col, ErrOutOfBounds)
	}
	c := b.rows[row].DeleteChar(col)
	b.clampCursor()
	return c, nil
}

// Overwrite replaces span characters starting at col with text and returns
// the characters it replaced. The span is cut short at the end of the row.
func (b *Buffer) Overwrite(row, col, span int, text string) (string, error) {
	if !b.validRow(row) || col < 0 || col > b.rows[row].Length() || span < 0 {
		return "", fmt.Errorf("overwrite at %d:%d: %w", row, col, ErrOutOfBounds)
	}
	old := b.rows[row].Splice(col, span, text)
	b.clampCursor()
	return old, nil
}

// ReplaceAll rewrites every non-overlapping occurrence of old with replacement,
// row by row and left to right. Scanning resumes after the inserted text,
// so replacement text is never matched again in the same pass.
func (b *Buffer) ReplaceAll(old, replacement string) []Replacement {
	replacements := make([]Replacement, 0)
	if old == "" {
		return replacements
	}
	for i, r := range b.rows {
		col := 0
		for {
			position := strings.Index(r.TextAfter(col), old)
			if position == -1 {
				break
			}
			position += col
			r.Splice(position, len(old), replacement)
			replacements = append(replacements, Replacement{Row: i, Col: position, Old: old, New: replacement})
			col = position + len(replacement)
		}
	}
	b.clampCursor()
	return replacements
}

// InsertNewline moves the cursor to the start of the next row, appending an
// empty row if the cursor is on the last one. Text after the cursor stays where it is.
func (b *Buffer) InsertNewline() {
	b.cursor.Row++
	if b.cursor.Row >= len(b.rows) {
		b.rows = append(b.rows, NewRow(""))
	}
	b.cursor.Col = 0
}

// Find returns the position of every occurrence of keyword, top to bottom.
func (b *Buffer) Find(keyword string) []slate.Point {
	matches := make([]slate.Point, 0)
	if keyword == "" {
		return matches
	}
	for i, r := range b.rows {
		line := r.String()
		from := 0
		for from < len(line) {
			position := strings.Index(line[from:], keyword)
			if position == -1 {
				break
			}
			matches = append(matches, slate.Point{Row: i, Col: from + position})
			from += position + 1
		}
	}
	return matches
}

func (b *Buffer) validRow(row int) bool {
	return row >= 0 && row < len(b.rows)
}

func (b *Buffer) clampCursor() {
	b.cursor.Row = clipToRange(b.cursor.Row, 0, len(b.rows)-1)
	b.cursor.Col = clipToRange(b.cursor.Col, 0, b.rows[b.cursor.Row].Length())
}
