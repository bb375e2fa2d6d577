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

package atomdiff

import (
	"regexp"

	"github.com/charmbracelet/log"

	"znkr.io/atomdiff/internal/algo"
	"znkr.io/atomdiff/internal/config"
)

// Option configures comparisons and the formatting of their results.
type Option = config.Option

// Context sets the number of unchanged lines printed around changes. The default is 3.
func Context(n int) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Context = max(0, n)
		return config.Context
	}
}

// WithPreset selects one of the predefined algorithm graphs. The default is [MyersThenDivide].
func WithPreset(p Preset) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Graph = algo.Presets()
		cfg.Root = p.Root()
		return config.Algorithm
	}
}

// WithGraph runs the algorithm graph g starting at root. The graph is validated by [New].
func WithGraph(g *Graph, root NodeID) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Graph = g
		cfg.Root = root
		return config.Algorithm
	}
}

// ForceText treats all input as text, even if it looks binary.
func ForceText() Option {
	return func(cfg *config.Config) config.Flag {
		cfg.ForceText = true
		return config.ForceText
	}
}

// IgnoreWhitespace compares lines with runs of spaces and tabs collapsed and leading and trailing
// whitespace removed. Output still shows the original lines.
func IgnoreWhitespace() Option {
	return func(cfg *config.Config) config.Flag {
		cfg.IgnoreWhitespace = true
		return config.IgnoreWhitespace
	}
}

// ShowFunctionContext appends the closest line above each hunk that looks like the start of a
// function to the hunk header, like diff -p.
func ShowFunctionContext() Option {
	return func(cfg *config.Config) config.Flag {
		cfg.ShowFunctionContext = true
		return config.FunctionContext
	}
}

// FunctionPattern is like [ShowFunctionContext] but with a custom pattern to recognize function
// lines.
func FunctionPattern(re *regexp.Regexp) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.ShowFunctionContext = true
		cfg.FunctionPattern = re
		return config.FunctionContext
	}
}

// Optimal finds a minimal result irrespective of the cost. By default, the divide and conquer
// algorithm gives up on minimality for large inputs with many differences.
func Optimal() Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Optimal = true
		return config.Optimal
	}
}

// Strict reports a [ResourceExceededError] when an algorithm declines a range and there is no
// fallback, instead of marking the whole range as changed.
func Strict() Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Strict = true
		return config.Strict
	}
}

// MaxDepth limits the recursion depth of the algorithm graph. The default is 65536.
func MaxDepth(n int) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.MaxDepth = n
		return config.Limits
	}
}

// MaxChunks limits the number of chunks in a result. The default, 0, is no limit.
func MaxChunks(n int) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.MaxChunks = n
		return config.Limits
	}
}

// WithLogger sends debug information about algorithm decisions to logger.
func WithLogger(logger *log.Logger) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Logger = logger
		return config.Logger
	}
}
