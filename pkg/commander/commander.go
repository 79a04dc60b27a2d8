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

	"github.com/slate-editor/slate/pkg/editor"
	"github.com/slate-editor/slate/pkg/history"
	slate "github.com/slate-editor/slate/pkg/types"
)

// Commander modes
const (
	ModeEdit       = 0
	ModeSearch     = 1
	ModeReplaceOld = 2
	ModeReplaceNew = 3
	ModeLisp       = 4
)

// The Commander converts user input into intents for the Editor.
type Commander struct {
	editor     *editor.Editor
	mode       int    // commander mode
	debug      bool   // debug mode displays information about events (key codes, etc)
	promptText string // prompt text as it is being typed
	oldText    string // text to replace, saved while the new text is typed
	message    string // status message
}

func NewCommander(e *editor.Editor) *Commander {
	return &Commander{editor: e, mode: ModeEdit}
}

func (c *Commander) GetMode() int {
	return c.mode
}

func (c *Commander) SetDebug(debug bool) {
	c.debug = debug
}

func (c *Commander) IsRunning() bool {
	return c.editor.IsRunning()
}

func (c *Commander) GetMessage() string {
	return c.message
}

// IntentForKey maps a key event onto an intent. Search and ReplaceAll are
// returned without their text, which the caller collects separately.
// Keys without a meaning return false.
func IntentForKey(key slate.Key, ch rune) (editor.Intent, bool) {
	switch key {
	case 0:
		if ch >= 0x20 && ch <= 0x7E {
			return editor.InsertChar{Ch: byte(ch)}, true
		}
		return nil, false
	case slate.KeySpace:
		return editor.InsertChar{Ch: ' '}, true
	case slate.KeyCtrlZ:
		return editor.Undo{}, true
	case slate.KeyCtrlY:
		return editor.Redo{}, true
	case slate.KeyCtrlA:
		return editor.Search{}, true
	case slate.KeyCtrlR:
		return editor.ReplaceAll{}, true
	case slate.KeyEnter:
		return editor.NewLine{}, true
	case slate.KeyBackspace, slate.KeyBackspace2:
		return editor.Backspace{}, true
	case slate.KeyCtrlS:
		return editor.Quit{}, true
	default:
		return nil, false
	}
}

func (c *Commander) ProcessEvent(event *slate.Event) error {
	if c.debug {
		c.message = fmt.Sprintf("event=%+v", event)
	}
	switch event.Type {
	case slate.EventKey:
		return c.processKey(event)
	default:
		return nil
	}
}

func (c *Commander) processKey(event *slate.Event) error {
	switch c.mode {
	case ModeEdit:
		return c.processKeyEditMode(event)
	default:
		return c.processKeyPromptMode(event)
	}
}

func (c *Commander) processKeyEditMode(event *slate.Event) error {
	if event.Key == slate.KeyCtrlX {
		c.mode = ModeLisp
		c.promptText = "("
		return nil
	}
	intent, ok := IntentForKey(event.Key, event.Ch)
	if !ok {
		return nil
	}
	switch intent.(type) {
	case editor.Search:
		c.mode = ModeSearch
		c.promptText = ""
		return nil
	case editor.ReplaceAll:
		c.mode = ModeReplaceOld
		c.promptText = ""
		return nil
	}
	return c.dispatch(intent)
}

func (c *Commander) processKeyPromptMode(event *slate.Event) error {
	key := event.Key
	ch := event.Ch
	if key != 0 {
		switch key {
		case slate.KeyEsc:
			c.mode = ModeEdit
			c.promptText = ""
			c.message = ""
		case slate.KeyEnter:
			return c.finishPrompt()
		case slate.KeyBackspace, slate.KeyBackspace2:
			if len(c.promptText) > 0 {
				c.promptText = c.promptText[0 : len(c.promptText)-1]
			}
		case slate.KeySpace:
			c.promptText += " "
		}
	}
	if ch != 0 {
		c.promptText = c.promptText + string(ch)
	}
	return nil
}

func (c *Commander) finishPrompt() error {
	text := c.promptText
	c.promptText = ""
	switch c.mode {
	case ModeSearch:
		c.mode = ModeEdit
		return c.dispatch(editor.Search{Keyword: text})
	case ModeReplaceOld:
		c.oldText = text
		c.mode = ModeReplaceNew
		return nil
	case ModeReplaceNew:
		c.mode = ModeEdit
		return c.dispatch(editor.ReplaceAll{Old: c.oldText, New: text})
	case ModeLisp:
		c.mode = ModeEdit
		c.message = c.ParseEval(text)
	}
	return nil
}

// dispatch sends an intent to the editor and keeps its message for display.
// Conditions the editor reports to the user are not errors of the commander.
func (c *Commander) dispatch(intent editor.Intent) error {
	message, err := c.editor.Dispatch(intent)
	c.message = message
	if err != nil {
		log.Printf("%T: %v", intent, err)
		if errors.Is(err, history.ErrEmptyHistory) ||
			errors.Is(err, editor.ErrNotFound) ||
			errors.Is(err, editor.ErrStopped) {
			return nil
		}
		return err
	}
	return nil
}

// GetMessageBarText returns the text of the message bar: the active prompt or the last message.
func (c *Commander) GetMessageBarText(length int) string {
	var line string
	switch c.mode {
	case ModeSearch:
		line = "Enter keyword to search: " + c.promptText
	case ModeReplaceOld:
		line = "Enter keyword to replace: " + c.promptText
	case ModeReplaceNew:
		line = "Enter new word: " + c.promptText
	case ModeLisp:
		line = c.promptText
	default:
		line = c.message
	}
	if length >= 0 && len(line) > length {
		line = line[0:length]
	}
	return line
}
