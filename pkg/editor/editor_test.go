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
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slate-editor/slate/pkg/history"
	slate "github.com/slate-editor/slate/pkg/types"
)

const source = `THE GETTYSBURG ADDRESS:

Four score and seven years ago our fathers brought forth on this
continent a new nation, conceived in liberty and dedicated to the
proposition that all men are created equal.`

func setup(t *testing.T, text string) *Editor {
	e := NewEditor(0)
	e.Buffer.LoadBytes([]byte(text))
	return e
}

func typeText(t *testing.T, e *Editor, text string) {
	for i := 0; i < len(text); i++ {
		var intent Intent = InsertChar{Ch: text[i]}
		if text[i] == '\n' {
			intent = NewLine{}
		}
		_, err := e.Dispatch(intent)
		require.NoError(t, err)
	}
}

func assertCursorInBounds(t *testing.T, e *Editor) {
	cursor := e.GetCursor()
	require.GreaterOrEqual(t, cursor.Row, 0)
	require.Less(t, cursor.Row, e.Buffer.LineCount())
	require.GreaterOrEqual(t, cursor.Col, 0)
	require.LessOrEqual(t, cursor.Col, len(e.Buffer.Line(cursor.Row)))
}

func TestTypingAdvancesCursor(t *testing.T) {
	e := NewEditor(0)
	typeText(t, e, "hello\nworld")
	assert.Equal(t, []string{"hello", "world"}, e.Buffer.Lines())
	assert.Equal(t, slate.Point{Row: 1, Col: 5}, e.GetCursor())
	assert.Equal(t, 10, e.History().UndoCount())
}

func TestUndoRedoRoundTrip(t *testing.T) {
	e := setup(t, source)
	e.Buffer.SetCursor(slate.Point{Row: 2, Col: 4})
	typeText(t, e, "BIG LEAGUE ")
	_, err := e.Dispatch(Backspace{})
	require.NoError(t, err)
	e.ReplaceAll("the", "THE")
	final := e.Buffer.Lines()

	n := e.History().UndoCount()
	for i := 0; i < n; i++ {
		_, err := e.Undo()
		require.NoError(t, err)
	}
	assert.Equal(t, source, string(e.Buffer.Bytes()))

	for i := 0; i < n; i++ {
		_, err := e.Redo()
		require.NoError(t, err)
	}
	assert.Equal(t, final, e.Buffer.Lines())
}

func TestRandomEditsRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	e := setup(t, source)
	for i := 0; i < 500; i++ {
		switch n := r.Intn(10); {
		case n < 5:
			_, err := e.Dispatch(InsertChar{Ch: byte('a' + r.Intn(26))})
			require.NoError(t, err)
		case n < 7:
			_, err := e.Dispatch(Backspace{})
			require.NoError(t, err)
		case n < 8:
			e.Buffer.SetCursor(slate.Point{Row: r.Intn(e.Buffer.LineCount()), Col: r.Intn(40)})
		default:
			old := string(byte('a' + r.Intn(26)))
			replacements := []string{"", old, old + old}
			replacement := replacements[r.Intn(len(replacements))]
			if len(e.Buffer.Bytes()) > 2000 {
				replacement = ""
			}
			_, err := e.Dispatch(ReplaceAll{Old: old, New: replacement})
			require.NoError(t, err)
		}
		assertCursorInBounds(t, e)
	}
	final := e.Buffer.Lines()

	n := e.History().UndoCount()
	for i := 0; i < n; i++ {
		_, err := e.Undo()
		require.NoError(t, err)
		assertCursorInBounds(t, e)
	}
	assert.Equal(t, source, string(e.Buffer.Bytes()))

	for i := 0; i < n; i++ {
		_, err := e.Redo()
		require.NoError(t, err)
		assertCursorInBounds(t, e)
	}
	assert.Equal(t, final, e.Buffer.Lines())
}

func TestNewEditAfterUndoTruncatesRedo(t *testing.T) {
	e := NewEditor(0)
	typeText(t, e, "ab")
	_, err := e.Dispatch(Undo{})
	require.NoError(t, err)
	typeText(t, e, "c")

	message, err := e.Dispatch(Redo{})
	assert.ErrorIs(t, err, history.ErrEmptyHistory)
	assert.Equal(t, "Nothing to redo!", message)
	assert.Equal(t, "ac", e.Buffer.Line(0))
}

func TestInsertThenUndoRestoresLineAndCursor(t *testing.T) {
	e := setup(t, "hello")
	e.Buffer.SetCursor(slate.Point{Row: 0, Col: 2})
	_, err := e.Dispatch(InsertChar{Ch: 'X'})
	require.NoError(t, err)
	assert.Equal(t, "heXllo", e.Buffer.Line(0))
	assert.Equal(t, slate.Point{Row: 0, Col: 3}, e.GetCursor())

	_, err = e.Dispatch(Undo{})
	require.NoError(t, err)
	assert.Equal(t, "hello", e.Buffer.Line(0))
	assert.Equal(t, slate.Point{Row: 0, Col: 2}, e.GetCursor())
}

func TestBackspace(t *testing.T) {
	e := setup(t, "hello")
	e.Buffer.SetCursor(slate.Point{Row: 0, Col: 5})
	_, err := e.Dispatch(Backspace{})
	require.NoError(t, err)
	assert.Equal(t, "hell", e.Buffer.Line(0))
	assert.Equal(t, slate.Point{Row: 0, Col: 4}, e.GetCursor())

	_, err = e.Dispatch(Undo{})
	require.NoError(t, err)
	assert.Equal(t, "hello", e.Buffer.Line(0))
	assert.Equal(t, slate.Point{Row: 0, Col: 4}, e.GetCursor())

	_, err = e.Dispatch(Redo{})
	require.NoError(t, err)
	assert.Equal(t, "hell", e.Buffer.Line(0))
}

func TestBackspaceAtStartOfLineIsIgnored(t *testing.T) {
	e := setup(t, "hello")
	message, err := e.Dispatch(Backspace{})
	assert.NoError(t, err)
	assert.Equal(t, "", message)
	assert.Equal(t, "hello", e.Buffer.Line(0))
	assert.False(t, e.History().CanUndo())
}

func TestReplaceAllIsUndoneOneOccurrenceAtATime(t *testing.T) {
	e := setup(t, "cat sat on a cat")
	message, err := e.Dispatch(ReplaceAll{Old: "cat", New: "dog"})
	require.NoError(t, err)
	assert.Equal(t, `Replaced 2 occurrence(s) of "cat" with "dog".`, message)
	assert.Equal(t, "dog sat on a dog", e.Buffer.Line(0))
	assert.Equal(t, 2, e.History().UndoCount())

	_, err = e.Undo()
	require.NoError(t, err)
	assert.Equal(t, "dog sat on a cat", e.Buffer.Line(0))
	_, err = e.Undo()
	require.NoError(t, err)
	assert.Equal(t, "cat sat on a cat", e.Buffer.Line(0))
}

func TestReplaceAllWithLongerText(t *testing.T) {
	e := setup(t, "cat sat on a cat")
	assert.Equal(t, 2, e.ReplaceAll("cat", "tiger"))
	assert.Equal(t, "tiger sat on a tiger", e.Buffer.Line(0))

	for i := 0; i < 2; i++ {
		_, err := e.Undo()
		require.NoError(t, err)
	}
	assert.Equal(t, "cat sat on a cat", e.Buffer.Line(0))

	for i := 0; i < 2; i++ {
		_, err := e.Redo()
		require.NoError(t, err)
	}
	assert.Equal(t, "tiger sat on a tiger", e.Buffer.Line(0))
}

func TestUndoOnFreshEditor(t *testing.T) {
	e := NewEditor(0)
	message, err := e.Dispatch(Undo{})
	assert.ErrorIs(t, err, history.ErrEmptyHistory)
	assert.Equal(t, "Nothing to undo!", message)
	assert.Equal(t, []string{""}, e.Buffer.Lines())
	assert.True(t, e.IsRunning())
}

func TestSearch(t *testing.T) {
	e := setup(t, "cat sat on a cat\non the mat")
	matches, err := e.Search("on")
	require.NoError(t, err)
	assert.Equal(t, []Match{
		{Line: 1, Column: 9, Text: "cat sat on a cat"},
		{Line: 2, Column: 1, Text: "on the mat"},
	}, matches)

	message, err := e.Dispatch(Search{Keyword: "on"})
	require.NoError(t, err)
	assert.Equal(t, "Found at line 1, column 9: cat sat on a cat | Found at line 2, column 1: on the mat", message)
}

func TestSearchNotFound(t *testing.T) {
	e := setup(t, "cat sat on a cat")
	tests := []struct {
		name    string
		keyword string
	}{
		{name: "absent", keyword: "dog"},
		{name: "empty", keyword: ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			message, err := e.Dispatch(Search{Keyword: tc.keyword})
			assert.ErrorIs(t, err, ErrNotFound)
			assert.Equal(t, "Keyword not found.", message)
			assert.Equal(t, "cat sat on a cat", e.Buffer.Line(0))
		})
	}
}

func TestReplaceAllWithEmptyPattern(t *testing.T) {
	e := setup(t, "abc")
	message, err := e.Dispatch(ReplaceAll{Old: "", New: "x"})
	require.NoError(t, err)
	assert.Equal(t, `Replaced 0 occurrence(s) of "" with "x".`, message)
	assert.Equal(t, "abc", e.Buffer.Line(0))
	assert.False(t, e.History().CanUndo())
}

func TestNewLineDoesNotSplitLine(t *testing.T) {
	e := setup(t, "abc")
	e.Buffer.SetCursor(slate.Point{Row: 0, Col: 1})
	_, err := e.Dispatch(NewLine{})
	require.NoError(t, err)
	assert.Equal(t, []string{"abc", ""}, e.Buffer.Lines())
	assert.Equal(t, slate.Point{Row: 1, Col: 0}, e.GetCursor())
	assert.False(t, e.History().CanUndo())
}

func TestQuit(t *testing.T) {
	e := NewEditor(0)
	typeText(t, e, "a")
	_, err := e.Dispatch(Quit{})
	require.NoError(t, err)
	assert.False(t, e.IsRunning())

	_, err = e.Dispatch(InsertChar{Ch: 'b'})
	assert.ErrorIs(t, err, ErrStopped)
	assert.Equal(t, "a", e.Buffer.Line(0))
}

func TestHistoryLimit(t *testing.T) {
	e := NewEditor(3)
	typeText(t, e, "abcde")
	assert.Equal(t, 3, e.History().UndoCount())
}
