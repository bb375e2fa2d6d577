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

package textdiff

import (
	"znkr.io/atomdiff"
	"znkr.io/atomdiff/internal/config"
	"znkr.io/atomdiff/textdiff/color"
)

// IndentHeuristic applies a heuristic to make diffs easier to read by improving the placement of
// change boundaries.
//
// Often, a group of inserted or deleted lines can be shifted up or down without changing the
// meaning of the result. The heuristic picks the position that aligns best with the indentation
// of the surrounding lines. It works best with code and structured text.
//
// The heuristic is applied when comparing, pass it to [atomdiff.Compare] or [atomdiff.New].
func IndentHeuristic() atomdiff.Option {
	return func(cfg *config.Config) config.Flag {
		cfg.IndentHeuristic = true
		return config.IndentHeuristic
	}
}

// Width sets the total width of side by side output. The default is 130 columns.
func Width(n int) atomdiff.Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Width = max(n, minWidth)
		return config.Width
	}
}

// TerminalColors colors unified output with ANSI escape sequences. Without options, the colors
// git uses are applied; opts replace individual colors.
func TerminalColors(opts ...color.Option) atomdiff.Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Color = color.Default()
		for _, opt := range opts {
			opt(&cfg.Color)
		}
		return config.Color
	}
}
