// Copyright 2025 Florian Zenker (flo@znkr.io)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cli

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// fileConfig is the content of a config file. Every entry corresponds to the flag with the same
// name; flags given on the command line take precedence.
type fileConfig struct {
	Algorithm        *string `yaml:"algorithm"`
	Text             *bool   `yaml:"text"`
	IgnoreWhitespace *bool   `yaml:"ignore-whitespace"`
	ShowFunctionLine *bool   `yaml:"show-function-line"`
	FunctionPattern  *string `yaml:"function-pattern"`
	Unified          *int    `yaml:"unified"`
	Minimal          *bool   `yaml:"minimal"`
	IndentHeuristic  *bool   `yaml:"indent-heuristic"`
	Strict           *bool   `yaml:"strict"`
	MaxDepth         *int    `yaml:"max-depth"`
	MaxChunks        *int    `yaml:"max-chunks"`
	Width            *int    `yaml:"width"`
	Color            *string `yaml:"color"`
}

// loadConfigFile reads the config file, if one was given, and applies it to all flags that
// weren't set explicitly.
func (o *options) loadConfigFile(fs *pflag.FlagSet) error {
	if o.configPath == "" {
		return nil
	}
	content, err := os.ReadFile(o.configPath)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	cfg, err := parseConfig(content)
	if err != nil {
		return fmt.Errorf("parse config file %s: %w", o.configPath, err)
	}
	return cfg.apply(fs)
}

func parseConfig(content []byte) (*fileConfig, error) {
	cfg := &fileConfig{}
	dec := yaml.NewDecoder(bytes.NewReader(content))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return cfg, nil
}

// entry is a config file value in flag syntax.
type entry struct {
	name  string
	value string
	set   bool
}

func (cfg *fileConfig) apply(fs *pflag.FlagSet) error {
	for _, e := range []entry{
		str("algorithm", cfg.Algorithm),
		boolean("text", cfg.Text),
		boolean("ignore-whitespace", cfg.IgnoreWhitespace),
		boolean("show-function-line", cfg.ShowFunctionLine),
		str("function-pattern", cfg.FunctionPattern),
		integer("unified", cfg.Unified),
		boolean("minimal", cfg.Minimal),
		boolean("indent-heuristic", cfg.IndentHeuristic),
		boolean("strict", cfg.Strict),
		integer("max-depth", cfg.MaxDepth),
		integer("max-chunks", cfg.MaxChunks),
		integer("width", cfg.Width),
		str("color", cfg.Color),
	} {
		f := fs.Lookup(e.name)
		if !e.set || f == nil || f.Changed {
			continue
		}
		if err := f.Value.Set(e.value); err != nil {
			return fmt.Errorf("config entry %s: %w", e.name, err)
		}
	}
	return nil
}

func str(name string, v *string) entry {
	if v == nil {
		return entry{name: name}
	}
	return entry{name, *v, true}
}

func boolean(name string, v *bool) entry {
	if v == nil {
		return entry{name: name}
	}
	return entry{name, strconv.FormatBool(*v), true}
}

func integer(name string, v *int) entry {
	if v == nil {
		return entry{name: name}
	}
	return entry{name, strconv.Itoa(*v), true}
}
