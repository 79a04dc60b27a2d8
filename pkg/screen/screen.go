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

// Package screen draws an editor on the terminal and reads its key events.
package screen

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/nsf/termbox-go"

	"github.com/slate-editor/slate/pkg/editor"
	slate "github.com/slate-editor/slate/pkg/types"
)

// A MessageBar supplies the text of the bottom line of the screen.
type MessageBar interface {
	GetMessageBarText(length int) string
}

// The Screen draws the state of an Editor.
type Screen struct {
	size   slate.Size // screen size
	title  string
	marker string
}

// NewScreen opens the terminal. Close must be called to restore it.
func NewScreen(title, marker string) (*Screen, error) {
	if err := termbox.Init(); err != nil {
		return nil, err
	}
	termbox.SetInputMode(termbox.InputEsc)
	termbox.HideCursor()
	return &Screen{title: title, marker: marker}, nil
}

func (s *Screen) Close() {
	termbox.Close()
}

// Compose returns the rows of a full-screen view of a document: a header
// followed by every line, with the cursor marker inserted into the cursor's line.
func Compose(title string, lines []string, cursor slate.Point, marker string) []string {
	rows := []string{
		centered(title, 80),
		centered(strings.Repeat("-", len(title)+4), 80),
		"(Actions -> Ctrl+Z: Undo, Ctrl+Y: Redo, Ctrl+A: Search, Ctrl+R: Replace, Ctrl+X: Lisp, Ctrl+S: Exit)",
		strings.Repeat("=", 93),
	}
	for i, line := range lines {
		if i == cursor.Row {
			col := cursor.Col
			if col > len(line) {
				col = len(line)
			}
			line = line[0:col] + marker + line[col:]
		}
		rows = append(rows, line)
	}
	return rows
}

func centered(text string, width int) string {
	padding := (width - len(text)) / 2
	if padding < 0 {
		padding = 0
	}
	return strings.Repeat(" ", padding) + text
}

func (s *Screen) Render(e *editor.Editor, m MessageBar) {
	termbox.Clear(termbox.ColorDefault, termbox.ColorDefault)
	s.size.Cols, s.size.Rows = termbox.Size()

	rows := Compose(s.title, e.Buffer.Lines(), e.GetCursor(), s.marker)
	textRows := s.size.Rows - 1 // reserve the last row for the message bar
	// keep the cursor row onscreen
	offset := 0
	headerRows := len(rows) - e.Buffer.LineCount()
	if cursorRow := headerRows + e.GetCursor().Row; cursorRow >= textRows {
		offset = cursorRow - textRows + 1
	}
	for y := 0; y < textRows && y+offset < len(rows); y++ {
		s.drawRow(y, rows[y+offset], termbox.ColorDefault, termbox.ColorDefault)
	}
	if s.size.Rows > 0 {
		s.drawRow(s.size.Rows-1, m.GetMessageBarText(s.size.Cols), termbox.ColorBlack, termbox.ColorWhite)
	}
	termbox.Flush()
}

func (s *Screen) drawRow(y int, text string, fg, bg termbox.Attribute) {
	text = runewidth.Truncate(text, s.size.Cols, "")
	x := 0
	for _, ch := range text {
		termbox.SetCell(x, y, ch, fg, bg)
		x += runewidth.RuneWidth(ch)
	}
}

func (s *Screen) GetNextEvent() *slate.Event {
	event := termbox.PollEvent()
	switch event.Type {
	case termbox.EventResize:
		termbox.Flush()
		return &slate.Event{Type: slate.EventResize}
	case termbox.EventError:
		return &slate.Event{Type: slate.EventError}
	}
	return &slate.Event{
		Type: slate.EventKey,
		Key:  key(event.Key),
		Ch:   event.Ch,
	}
}

func key(k termbox.Key) slate.Key {
	switch k {
	case 0:
		return 0
	case termbox.KeyCtrlA:
		return slate.KeyCtrlA
	case termbox.KeyBackspace:
		return slate.KeyBackspace
	case termbox.KeyBackspace2:
		return slate.KeyBackspace2
	case termbox.KeyTab:
		return slate.KeyTab
	case termbox.KeyEnter:
		return slate.KeyEnter
	case termbox.KeyCtrlR:
		return slate.KeyCtrlR
	case termbox.KeyCtrlS:
		return slate.KeyCtrlS
	case termbox.KeyCtrlX:
		return slate.KeyCtrlX
	case termbox.KeyCtrlY:
		return slate.KeyCtrlY
	case termbox.KeyCtrlZ:
		return slate.KeyCtrlZ
	case termbox.KeyEsc:
		return slate.KeyEsc
	case termbox.KeySpace:
		return slate.KeySpace
	default:
		return slate.KeyUnsupported
	}
}
