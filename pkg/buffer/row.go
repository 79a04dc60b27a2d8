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
package buffer

// A row of text in the buffer. Text is held as bytes; each byte is one character.
type Row struct {
	Text []byte
}

func NewRow(text string) *Row {
	return &Row{Text: []byte(text)}
}

func (r *Row) String() string {
	return string(r.Text)
}

func (r *Row) Length() int {
	return len(r.Text)
}

// insert c at col, appending if col is past the end of the row
func (r *Row) InsertChar(col int, c byte) {
	col = clipToRange(col, 0, len(r.Text))
	line := make([]byte, 0, len(r.Text)+1)
	line = append(line, r.Text[0:col]...)
	line = append(line, c)
	line = append(line, r.Text[col:]...)
	r.Text = line
}

// delete character at col and return the deleted character
func (r *Row) DeleteChar(col int) byte {
	c := r.Text[col]
	r.Text = append(r.Text[0:col], r.Text[col+1:]...)
	return c
}

// replace span characters at col with text and return the replaced characters
func (r *Row) Splice(col, span int, text string) string {
	end := clipToRange(col+span, col, len(r.Text))
	old := string(r.Text[col:end])
	line := make([]byte, 0, len(r.Text)-len(old)+len(text))
	line = append(line, r.Text[0:col]...)
	line = append(line, text...)
	line = append(line, r.Text[end:]...)
	r.Text = line
	return old
}

// returns the text after a specified column
func (r *Row) TextAfter(col int) string {
	if col < len(r.Text) {
		return string(r.Text[col:])
	}
	return ""
}

func clipToRange(i, min, max int) int {
	if i > max {
		i = max
	}
	if i < min {
		i = min
	}
	return i
}
