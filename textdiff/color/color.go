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

// Package color configures the SGR escape sequences used by textdiff.TerminalColors.
package color

import (
	"fmt"
	"strings"

	"znkr.io/atomdiff/internal/config"
)

// Reset ends a colored section.
const Reset = "\033[0m"

// Common SGR parameters.
const (
	Bold    = 1
	Red     = 31
	Green   = 32
	Yellow  = 33
	Blue    = 34
	Magenta = 35
	Cyan    = 36
)

// A Option makes it possible to configure custom colors in textdiff.TerminalColors.
type Option func(*config.ColorConfig)

// FileHeaders colors the "---" and "+++" lines of a unified diff.
func FileHeaders(params ...int) Option {
	code := format(params)
	return func(cc *config.ColorConfig) {
		cc.FileHeader = code
	}
}

// HunkHeaders colors hunk headers, the "@@ ... @@" part of the unified diff.
func HunkHeaders(params ...int) Option {
	code := format(params)
	return func(cc *config.ColorConfig) {
		cc.HunkHeader = code
	}
}

// Matches colors matching lines.
func Matches(params ...int) Option {
	code := format(params)
	return func(cc *config.ColorConfig) {
		cc.Match = code
	}
}

// Deletes colors deleted lines.
func Deletes(params ...int) Option {
	code := format(params)
	return func(cc *config.ColorConfig) {
		cc.Delete = code
	}
}

// Inserts colors inserted lines.
func Inserts(params ...int) Option {
	code := format(params)
	return func(cc *config.ColorConfig) {
		cc.Insert = code
	}
}

// Default returns the colors used by git: bold file headers, cyan hunk headers, red deletions and
// green insertions.
func Default() config.ColorConfig {
	return config.ColorConfig{
		FileHeader: format([]int{Bold}),
		HunkHeader: format([]int{Cyan}),
		Delete:     format([]int{Red}),
		Insert:     format([]int{Green}),
	}
}

func format(params []int) string {
	if len(params) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString("\033[")
	for i, v := range params {
		if i > 0 {
			sb.WriteRune(';')
		}
		fmt.Fprint(&sb, v)
	}
	sb.WriteRune('m')
	return sb.String()
}
