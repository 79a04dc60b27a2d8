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

// Package config reads slate's settings file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// EnvVar names the environment variable that points at the settings file.
const EnvVar = "SLATE_CONF"

type Config struct {
	LogFile      string `yaml:"log_file" toml:"log_file"`
	HistoryLimit int    `yaml:"history_limit" toml:"history_limit"` // 0 keeps every edit
	CursorMarker string `yaml:"cursor_marker" toml:"cursor_marker"`
	Title        string `yaml:"title" toml:"title"`
}

func Default() Config {
	return Config{
		LogFile:      filepath.Join(os.Getenv("HOME"), ".slatelog"),
		HistoryLimit: 0,
		CursorMarker: "|",
		Title:        "Slate: Text Editor",
	}
}

// Path returns the settings file to read: the explicit path if given,
// then $SLATE_CONF, then ~/.slate.yaml.
func Path(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if path, ok := os.LookupEnv(EnvVar); ok && path != "" {
		return path
	}
	return filepath.Join(os.Getenv("HOME"), ".slate.yaml")
}

// Load reads a settings file over the defaults. A missing file is not an error.
// Files ending in .toml are read as TOML, anything else as YAML.
func Load(path string) (Config, error) {
	c := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return c, nil
	}
	if err != nil {
		return c, err
	}
	if strings.HasSuffix(path, ".toml") {
		err = toml.Unmarshal(data, &c)
	} else {
		err = yaml.Unmarshal(data, &c)
	}
	if err != nil {
		return Default(), fmt.Errorf("reading %s: %w", path, err)
	}
	if c.HistoryLimit < 0 {
		c.HistoryLimit = 0
	}
	if c.CursorMarker == "" {
		c.CursorMarker = "|"
	}
	return c, nil
}
