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
package commander

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/steelseries/golisp"

	"github.com/slate-editor/slate/pkg/editor"
)

// the editor that primitives act on while an expression is evaluated
var scriptEditor *editor.Editor

func init() {
	golisp.MakePrimitiveFunction("insert-text", "1", InsertTextImpl)
	golisp.MakePrimitiveFunction("insert-newline", "0", InsertNewlineImpl)
	golisp.MakePrimitiveFunction("backspace", "0", BackspaceImpl)
	golisp.MakePrimitiveFunction("undo", "0", UndoImpl)
	golisp.MakePrimitiveFunction("redo", "0", RedoImpl)
	golisp.MakePrimitiveFunction("find-text", "1", FindTextImpl)
	golisp.MakePrimitiveFunction("replace-all", "2", ReplaceAllImpl)
	golisp.MakePrimitiveFunction("buffer-text", "0", BufferTextImpl)
	golisp.MakePrimitiveFunction("cursor-position", "0", CursorPositionImpl)
	golisp.MakePrimitiveFunction("load-text", "1", LoadTextImpl)
}

func stringArgument(name string, val *golisp.Data) (string, error) {
	if !golisp.StringP(val) {
		return "", fmt.Errorf("%s requires a string argument", name)
	}
	return golisp.StringValue(val), nil
}

func InsertTextImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	text, err := stringArgument("insert-text", golisp.Car(args))
	if err != nil {
		return nil, err
	}
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			scriptEditor.NewLine()
			continue
		}
		if err := scriptEditor.InsertChar(text[i]); err != nil {
			return nil, err
		}
	}
	return golisp.IntegerWithValue(int64(len(text))), nil
}

func InsertNewlineImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	scriptEditor.NewLine()
	return golisp.BooleanWithValue(true), nil
}

func BackspaceImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	return golisp.BooleanWithValue(scriptEditor.Backspace() == nil), nil
}

func UndoImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	_, err = scriptEditor.Undo()
	return golisp.BooleanWithValue(err == nil), nil
}

func RedoImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	_, err = scriptEditor.Redo()
	return golisp.BooleanWithValue(err == nil), nil
}

// find-text returns a list of (line column) pairs numbered from 1.
func FindTextImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	keyword, err := stringArgument("find-text", golisp.Car(args))
	if err != nil {
		return nil, err
	}
	matches, err := scriptEditor.Search(keyword)
	if errors.Is(err, editor.ErrNotFound) {
		return golisp.ArrayToList([]*golisp.Data{}), nil
	}
	pairs := make([]*golisp.Data, 0, len(matches))
	for _, m := range matches {
		pairs = append(pairs, golisp.ArrayToList([]*golisp.Data{
			golisp.IntegerWithValue(int64(m.Line)),
			golisp.IntegerWithValue(int64(m.Column)),
		}))
	}
	return golisp.ArrayToList(pairs), nil
}

func ReplaceAllImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	old, err := stringArgument("replace-all", golisp.Car(args))
	if err != nil {
		return nil, err
	}
	replacement, err := stringArgument("replace-all", golisp.Cadr(args))
	if err != nil {
		return nil, err
	}
	count := scriptEditor.ReplaceAll(old, replacement)
	return golisp.IntegerWithValue(int64(count)), nil
}

func BufferTextImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	return golisp.StringWithValue(string(scriptEditor.Buffer.Bytes())), nil
}

// cursor-position returns (row column), numbered from 0.
func CursorPositionImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	cursor := scriptEditor.GetCursor()
	return golisp.ArrayToList([]*golisp.Data{
		golisp.IntegerWithValue(int64(cursor.Row)),
		golisp.IntegerWithValue(int64(cursor.Col)),
	}), nil
}

// load-text replaces the document and forgets its history.
func LoadTextImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	text, err := stringArgument("load-text", golisp.Car(args))
	if err != nil {
		return nil, err
	}
	scriptEditor.Buffer.LoadBytes([]byte(text))
	scriptEditor.History().Clear()
	return golisp.BooleanWithValue(true), nil
}

// ParseEval evaluates a lisp expression against the commander's editor and
// returns the printed value or the error.
func (c *Commander) ParseEval(command string) string {
	scriptEditor = c.editor
	value, err := golisp.ParseAndEval(command)
	if err != nil {
		log.Printf("ERR %+v", err)
		return err.Error()
	}
	log.Printf("SEXPR %+v", golisp.String(value))
	return golisp.String(value)
}

// ParseEvalFile evaluates every expression in a script file.
func (c *Commander) ParseEvalFile(filename string) (string, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return "", err
	}
	scriptEditor = c.editor
	value, err := golisp.ParseAndEval("(begin " + string(b) + "\n)")
	if err != nil {
		return "", fmt.Errorf("%s: %w", filename, err)
	}
	return golisp.String(value), nil
}
