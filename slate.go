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
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"

	"github.com/slate-editor/slate/pkg/commander"
	"github.com/slate-editor/slate/pkg/config"
	"github.com/slate-editor/slate/pkg/editor"
	"github.com/slate-editor/slate/pkg/screen"
)

func main() {
	os.Exit(run())
}

func run() int {
	var script, configPath string
	debug := false

	for i := 1; i < len(os.Args); i++ {
		argi := os.Args[i]
		switch argi {
		case "--eval": // eval program
			i++
			if i < len(os.Args) {
				script = os.Args[i]
			} else {
				log.Output(1, "No file specified for --eval option")
				return 2
			}
		case "--config":
			i++
			if i < len(os.Args) {
				configPath = os.Args[i]
			} else {
				log.Output(1, "No file specified for --config option")
				return 2
			}
		case "--debug":
			debug = true
		default:
			log.Output(1, fmt.Sprintf("Unknown argument %s", argi))
			return 2
		}
	}

	cfg, err := config.Load(config.Path(configPath))
	if err != nil {
		log.Output(1, err.Error())
		return 1
	}

	// Open a log file.
	f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_RDWR, 0666)
	if err != nil {
		log.Output(1, err.Error())
		return 1
	}
	defer f.Close()
	log.SetOutput(f)
	log.SetPrefix("[" + uuid.New().String() + "] ")

	// The editor manages all text manipulation.
	e := editor.NewEditor(cfg.HistoryLimit)

	// The commander converts user inputs into intents for the editor.
	c := commander.NewCommander(e)
	c.SetDebug(debug)

	if script != "" {
		// Run a slate script and print the resulting document.
		if _, err := c.ParseEvalFile(script); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		fmt.Println(string(e.Buffer.Bytes()))
		return 0
	}

	// Create a screen to manage display.
	s, err := screen.NewScreen(cfg.Title, cfg.CursorMarker)
	if err != nil {
		log.Printf("opening terminal: %v", err)
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer s.Close()

	log.Printf("session started")
	// Run the main event loop.
	for c.IsRunning() {
		s.Render(e, c)
		err = c.ProcessEvent(s.GetNextEvent())
		if err != nil {
			log.Output(1, err.Error())
		}
	}
	log.Printf("session ended")
	return 0
}
