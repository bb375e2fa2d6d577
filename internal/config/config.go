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

// Package config provides the configuration shared by the packages of this module.
//
// This package is an implementation detail, the configuration surface for users is provided via
// atomdiff.Option.
package config

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/charmbracelet/log"

	"znkr.io/atomdiff/internal/algo"
	"znkr.io/atomdiff/internal/engine"
)

// DefaultFunctionPattern matches lines that start a function in most C like languages, the same
// default that GNU diff uses for --show-function-line.
var DefaultFunctionPattern = regexp.MustCompile(`^[[:alpha:]$_]`)

// ColorConfig holds the SGR escape sequences used to color unified output. Empty sequences
// leave the corresponding part uncolored.
type ColorConfig struct {
	FileHeader string
	HunkHeader string
	Match      string
	Delete     string
	Insert     string
}

// Enabled reports whether any color is configured.
func (cc ColorConfig) Enabled() bool { return cc != ColorConfig{} }

// Config collects all configurable parameters of this module.
type Config struct {
	// Context is the number of unchanged atoms printed around changes.
	Context int

	// Graph and Root select the algorithm graph and its entry point.
	Graph *algo.Graph
	Root  algo.NodeID

	// Atomizer flags.
	ForceText        bool
	IgnoreWhitespace bool

	// ShowFunctionContext appends the nearest line above a hunk that matches FunctionPattern to
	// the hunk header.
	ShowFunctionContext bool
	FunctionPattern     *regexp.Regexp

	// IndentHeuristic shifts change boundaries to align with indentation after comparing.
	IndentHeuristic bool

	// Engine settings.
	Optimal   bool
	Strict    bool
	MaxDepth  int
	MaxChunks int

	// Width is the total line width of side by side output.
	Width int

	// Color configures colored unified output.
	Color ColorConfig

	// Logger receives debug output of the engine. Nil disables logging.
	Logger *log.Logger
}

// Default is the default configuration.
var Default = Config{
	Context:         3,
	Graph:           algo.Presets(),
	Root:            algo.MyersThenDivide.Root(),
	FunctionPattern: DefaultFunctionPattern,
	MaxDepth:        engine.DefaultMaxDepth,
	Width:           130,
}

// Flag describes a single config entry. It's used to detect options that are passed to a
// function that doesn't support them.
type Flag int

const (
	Context Flag = 1 << iota
	Algorithm
	ForceText
	IgnoreWhitespace
	FunctionContext
	Optimal
	Strict
	Limits
	Width
	Color
	Logger
	IndentHeuristic
)

// Compare are the flags accepted when comparing inputs. Formatting options are accepted as well,
// they become the defaults for formatting the result.
const Compare = Context | Algorithm | ForceText | IgnoreWhitespace | FunctionContext | Optimal | Strict | Limits | Width | Color | Logger | IndentHeuristic

// Format are the flags accepted by the formatters.
const Format = Context | FunctionContext | Width | Color

// Option is the mechanism used to expose the configuration to users.
type Option func(*Config) Flag

// FromOptions creates a configuration from a set of options.
func FromOptions(opts []Option, allowed Flag) Config {
	return Apply(Default, opts, allowed)
}

// Apply applies opts on top of base. It panics if an option is not allowed.
func Apply(base Config, opts []Option, allowed Flag) Config {
	cfg := base
	for _, opt := range opts {
		flag := opt(&cfg)
		if flag & ^allowed != 0 {
			panic("Option " + printFlag(flag) + " not allowed here")
		}
	}
	return cfg
}

var flagNames = []struct {
	flag Flag
	name string
}{
	{Context, "atomdiff.Context"},
	{Algorithm, "atomdiff.WithPreset/WithGraph"},
	{ForceText, "atomdiff.ForceText"},
	{IgnoreWhitespace, "atomdiff.IgnoreWhitespace"},
	{FunctionContext, "atomdiff.ShowFunctionContext/FunctionPattern"},
	{Optimal, "atomdiff.Optimal"},
	{Strict, "atomdiff.Strict"},
	{Limits, "atomdiff.MaxDepth/MaxChunks"},
	{Width, "textdiff.Width"},
	{Color, "textdiff.TerminalColors"},
	{Logger, "atomdiff.WithLogger"},
	{IndentHeuristic, "textdiff.IndentHeuristic"},
}

func printFlag(flag Flag) string {
	var names []string
	for _, f := range flagNames {
		if flag&f.flag != 0 {
			names = append(names, f.name)
		}
	}
	if len(names) == 0 {
		return fmt.Sprintf("Flag(%d)", int(flag))
	}
	return strings.Join(names, "|")
}
