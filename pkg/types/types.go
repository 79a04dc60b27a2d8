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

// Package types holds the vocabulary shared by the slate packages.
package types

// Event types
const (
	EventKey    = 0
	EventResize = 1
	EventError  = 2
)

type Point struct {
	Row int
	Col int
}

type Size struct {
	Rows int
	Cols int
}

// A Key is a control code delivered by the terminal. Printable characters
// arrive in Event.Ch with a zero Key.
type Key uint16

// Keys are numbered by their ASCII control codes.
const (
	KeyCtrlA      Key = 0x01
	KeyBackspace  Key = 0x08
	KeyTab        Key = 0x09
	KeyEnter      Key = 0x0D
	KeyCtrlR      Key = 0x12
	KeyCtrlS      Key = 0x13
	KeyCtrlX      Key = 0x18
	KeyCtrlY      Key = 0x19
	KeyCtrlZ      Key = 0x1A
	KeyEsc        Key = 0x1B
	KeySpace      Key = 0x20
	KeyBackspace2 Key = 0x7F

	KeyUnsupported Key = 0xFFFF
)

type Event struct {
	Type int
	Key  Key
	Ch   rune
}
