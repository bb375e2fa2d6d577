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
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"

	"github.com/mattn/go-isatty"
	"github.com/spf13/pflag"

	"znkr.io/atomdiff"
	"znkr.io/atomdiff/textdiff"
)

// options holds the command line flags shared by all commands that compare files.
type options struct {
	configPath string
	debug      bool

	algorithm        string
	text             bool
	ignoreWhitespace bool
	functionLine     bool
	functionPattern  string
	context          int
	minimal          bool
	indentHeuristic  bool
	strict           bool
	maxDepth         int
	maxChunks        int

	ed         bool
	sideBySide bool
	width      int
	color      string
	labels     []string
}

func (o *options) register(fs *pflag.FlagSet) {
	fs.StringVar(&o.configPath, "config", "", "path to a YAML config file")
	fs.BoolVar(&o.debug, "debug", false, "enable debug logging")

	fs.StringVar(&o.algorithm, "algorithm", "default", "algorithm preset: myers-then-divide, myers-then-patience, patience-first, none")
	fs.BoolVarP(&o.text, "text", "a", false, "treat all files as text")
	fs.BoolVarP(&o.ignoreWhitespace, "ignore-whitespace", "w", false, "ignore changes in horizontal whitespace")
	fs.BoolVarP(&o.functionLine, "show-function-line", "p", false, "show the closest function line in hunk headers")
	fs.StringVar(&o.functionPattern, "function-pattern", "", "regular expression for function lines, implies -p")
	fs.IntVarP(&o.context, "unified", "U", 3, "number of context lines")
	fs.BoolVarP(&o.minimal, "minimal", "d", false, "try hard to find a minimal diff")
	fs.BoolVar(&o.indentHeuristic, "indent-heuristic", false, "shift change boundaries to match the indentation of the surrounding lines")
	fs.BoolVar(&o.strict, "strict", false, "fail instead of giving up on minimality when a resource limit is hit")
	fs.IntVar(&o.maxDepth, "max-depth", 0, "maximum recursion depth of the algorithm graph, 0 for the default")
	fs.IntVar(&o.maxChunks, "max-chunks", 0, "maximum number of chunks, 0 for no limit")

	fs.BoolVarP(&o.ed, "ed", "e", false, "output an ed script")
	fs.BoolVarP(&o.sideBySide, "side-by-side", "y", false, "output in two columns")
	fs.IntVarP(&o.width, "width", "W", 130, "output at most this many columns with --side-by-side")
	fs.StringVar(&o.color, "color", "auto", "colorize output: auto, always, never")
	fs.StringArrayVar(&o.labels, "label", nil, "use this label instead of the file name, can be given twice")
}

// compareOptions translates the flags into options for atomdiff.New.
func (o *options) compareOptions() ([]atomdiff.Option, error) {
	preset, err := atomdiff.ParsePreset(o.algorithm)
	if err != nil {
		return nil, err
	}
	opts := []atomdiff.Option{
		atomdiff.WithPreset(preset),
		atomdiff.Context(o.context),
	}
	if o.text {
		opts = append(opts, atomdiff.ForceText())
	}
	if o.ignoreWhitespace {
		opts = append(opts, atomdiff.IgnoreWhitespace())
	}
	switch {
	case o.functionPattern != "":
		re, err := regexp.Compile(o.functionPattern)
		if err != nil {
			return nil, fmt.Errorf("invalid function pattern: %w", err)
		}
		opts = append(opts, atomdiff.FunctionPattern(re))
	case o.functionLine:
		opts = append(opts, atomdiff.ShowFunctionContext())
	}
	if o.minimal {
		opts = append(opts, atomdiff.Optimal())
	}
	if o.indentHeuristic {
		opts = append(opts, textdiff.IndentHeuristic())
	}
	if o.strict {
		opts = append(opts, atomdiff.Strict())
	}
	if o.maxDepth != 0 {
		opts = append(opts, atomdiff.MaxDepth(o.maxDepth))
	}
	if o.maxChunks != 0 {
		opts = append(opts, atomdiff.MaxChunks(o.maxChunks))
	}
	return opts, nil
}

// formatOptions returns the options for the textdiff writers. Colors are only used for unified
// output.
func (o *options) formatOptions(w io.Writer) ([]atomdiff.Option, error) {
	opts := []atomdiff.Option{textdiff.Width(o.width)}
	useColor, err := colorEnabled(o.color, w)
	if err != nil {
		return nil, err
	}
	if useColor {
		opts = append(opts, textdiff.TerminalColors())
	}
	return opts, nil
}

func (o *options) validate() error {
	if o.ed && o.sideBySide {
		return errors.New("--ed and --side-by-side are mutually exclusive")
	}
	if len(o.labels) > 2 {
		return fmt.Errorf("--label given %d times, at most 2 are allowed", len(o.labels))
	}
	return nil
}

// label returns the label for input i, or name if there is none.
func (o *options) label(i int, name string) string {
	if i < len(o.labels) {
		return o.labels[i]
	}
	return name
}

func colorEnabled(mode string, w io.Writer) (bool, error) {
	switch mode {
	case "always":
		return true, nil
	case "never":
		return false, nil
	case "auto":
		f, ok := w.(*os.File)
		if !ok {
			return false, nil
		}
		return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()), nil
	default:
		return false, fmt.Errorf("invalid --color value %q, want auto, always, or never", mode)
	}
}
